package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pulsecoach/coachkit/internal/config"
	"github.com/pulsecoach/coachkit/internal/platform/logger"
)

var cfg *config.Config

// Execute runs the payload-lint CLI. It decodes recorded backend payload
// fixtures against the model layer so that backend drift (renamed fields,
// new enum tokens, dropped required fields) surfaces before a release
// instead of inside the apps.
func Execute() error {
	root := &cobra.Command{
		Use:           "payload-lint",
		Short:         "Validate recorded backend payloads against the coachkit models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load()
			if err != nil {
				return err
			}
			cfg = c
			logger.Setup(cfg.Log)
			return nil
		},
	}

	root.AddCommand(lintCmd(), mediaCmd())

	if err := root.Execute(); err != nil {
		slog.Error("payload-lint failed", "error", err)
		return err
	}
	return nil
}
