package commands

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pulsecoach/coachkit/api"
	"github.com/pulsecoach/coachkit/domain"
)

// Payload kinds the linter understands. Each maps to a decode of the
// corresponding enveloped entity list or aggregate.
const (
	kindUsers         = "users"
	kindExercises     = "exercises"
	kindPrograms      = "programs"
	kindNotifications = "notifications"
	kindSearch        = "search"
	kindPreferences   = "preferences"
	kindUnreadCount   = "unread-count"
)

func lintCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "lint [files...]",
		Short: "Decode payload fixture files and report validation failures",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failures := 0
			for _, path := range args {
				if err := lintFile(path, kind); err != nil {
					failures++
					slog.Error("payload failed validation", "file", path, "kind", kind, "error", err)
					continue
				}
				slog.Info("payload ok", "file", path, "kind", kind)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d payload(s) failed validation", failures, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", kindUsers,
		"payload kind: users, exercises, programs, notifications, search, preferences, unread-count")
	return cmd
}

func lintFile(path, kind string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	r := bytes.NewReader(raw)

	switch kind {
	case kindUsers:
		env, err := api.DecodeEnvelope[api.Page[domain.User]](r)
		if err != nil {
			return err
		}
		if env.HasData() {
			for i := range env.Data.Content {
				if err := env.Data.Content[i].Validate(); err != nil {
					return err
				}
			}
		}
	case kindExercises:
		env, err := api.DecodeEnvelope[api.Page[domain.Exercise]](r)
		if err != nil {
			return err
		}
		if env.HasData() {
			for i := range env.Data.Content {
				if err := env.Data.Content[i].Validate(); err != nil {
					return err
				}
			}
		}
	case kindPrograms:
		env, err := api.DecodeEnvelope[api.Page[domain.Program]](r)
		if err != nil {
			return err
		}
		if env.HasData() {
			for i := range env.Data.Content {
				if err := env.Data.Content[i].Validate(); err != nil {
					return err
				}
			}
		}
	case kindNotifications:
		env, err := api.DecodeEnvelope[api.Page[domain.AppNotification]](r)
		if err != nil {
			return err
		}
		if env.HasData() {
			for i := range env.Data.Content {
				if err := env.Data.Content[i].Validate(); err != nil {
					return err
				}
			}
		}
	case kindSearch:
		_, err := api.DecodeEnvelope[domain.SocialSearchResponse](r)
		return err
	case kindPreferences:
		_, err := api.DecodeEnvelope[domain.TrainerExercisePreferences](r)
		return err
	case kindUnreadCount:
		_, err := api.DecodeEnvelope[api.UnreadCountResponse](r)
		return err
	default:
		return fmt.Errorf("unknown payload kind %q", kind)
	}
	return nil
}
