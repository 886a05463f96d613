// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const logRole = "go-pass-vault"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := newRootCmd(buildInfo, run).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

type runFunc func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error

func newRootCmd(buildInfo models.AppBuildInfo, runApp runFunc) *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:           "vault",
		Short:         "Local encrypted password vault in your terminal",
		Version:       buildInfo.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetConfig(flags)
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			log := logger.NewClientLogger(logRole, cfg.Log.FilePath, cfg.Log.Level)
			defer log.Close()

			log.Info().
				Str("version", buildInfo.BuildVersion()).
				Str("commit", buildInfo.BuildCommit()).
				Str("vault", cfg.Storage.VaultPath).
				Dur("inactivity_delay", cfg.App.InactivityDelay).
				Msg("starting")

			return runApp(cmd.Context(), cfg, log)
		},
	}
	flags = config.BindFlags(cmd.Flags())

	return cmd
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return err
	}
	return app.Run(ctx)
}
