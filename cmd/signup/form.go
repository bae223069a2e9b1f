package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"signup/internal/logger"
	"signup/internal/ui"
)

// runForm fetches the selection lists, then shows the full-screen form.
func (a *app) runForm(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	opts, err := a.client.FetchOptions(ctx)
	if err != nil {
		logger.Error(ctx, "could not load form options", zap.Error(err))
		return err
	}
	return ui.Run(ctx, opts, a.client)
}
