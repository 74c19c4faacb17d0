package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/designspec/designspec-web/internal/config"
	"github.com/designspec/designspec-web/internal/daemon"
	"github.com/designspec/designspec-web/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().Bool("dev", false, "Enable dev mode")

	startCmd.Flags().Bool(
		"browse",
		false,
		"Enable static file browsing (for development purposes only)",
	)

	_ = settings.BindPFlag("dev", startCmd.Flags().Lookup("dev"))
	_ = settings.BindPFlag("browse", startCmd.Flags().Lookup("browse"))

	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the DesignSpec web service",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.ReadConfig(configDir())
		if err != nil {
			return err //nolint:wrapcheck
		}

		if settings.GetBool("dev") {
			cfg.DevMode = true
		}

		if settings.GetBool("browse") {
			cfg.Webserver.BrowseStatic = true
		}

		if err = logger.Init(cfg.Log); err != nil {
			return err //nolint:wrapcheck
		}

		// the provider keeps using this context after start, it must not be canceled early
		ctx := context.Background()

		d, err := daemon.New(ctx, &cfg)
		if err != nil {
			return err //nolint:wrapcheck
		}

		return d.Start(ctx) //nolint:wrapcheck
	},
}
