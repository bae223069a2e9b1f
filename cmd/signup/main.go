// Package main provides the signup CLI: a terminal sign-up form backed by the
// remote form API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"signup/internal/api"
	"signup/internal/config"
	"signup/internal/logger"
	"signup/internal/telemetry"
)

// app carries what every subcommand needs once the root pre-run is done.
type app struct {
	configPath string
	cfg        *config.Config
	client     api.Client
	tracing    *telemetry.Provider
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Setup(cfg.Environment, cfg.Log.File, cfg.Log.Level); err != nil {
		return err
	}
	a.tracing, err = telemetry.Setup(cmd.Context(), cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return err
	}
	a.client = api.NewHTTPClient(cfg.Endpoint, api.WithTimeout(cfg.HTTP.Timeout))

	logger.Info(cmd.Context(), "config loaded",
		zap.String("endpoint", cfg.Endpoint),
		zap.Duration("timeout", cfg.HTTP.Timeout),
		zap.String("command", cmd.Name()))
	return nil
}

func (a *app) teardown(cmd *cobra.Command) {
	logger.Debug(cmd.Context(), "shutting down", zap.String("command", cmd.Name()))
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.tracing.Shutdown(ctx); err != nil {
		logger.Warn(cmd.Context(), "could not flush traces", zap.Error(err))
	}
	_ = logger.Sync()
}

// run wraps a RunE so teardown happens whether or not it fails. cobra skips
// post-run hooks after a RunE error.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.teardown(cmd)
		return fn(cmd, args)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "signup",
		Short: "Create an account from the terminal",
		Long: `signup shows a sign-up form (name, email, password, occupation, state),
fetching the occupation and state lists from the form endpoint and
submitting the completed form to the same endpoint.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.run(a.runForm),
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path (yaml)")

	root.AddCommand(
		promptCommand(a),
		optionsCommand(a),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "signup: %v\n", err)
		os.Exit(1)
	}
}
