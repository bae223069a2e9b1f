package main

import (
	"github.com/spf13/cobra"

	"signup/internal/prompt"
)

func promptCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the form one question at a time",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			opts, err := a.client.FetchOptions(ctx)
			if err != nil {
				return err
			}
			_, err = prompt.Run(ctx, prompt.NewSurveyDriver(), opts, a.client)
			return err
		}),
	}
}
