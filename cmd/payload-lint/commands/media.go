package commands

import (
	"bytes"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pulsecoach/coachkit/api"
	"github.com/pulsecoach/coachkit/domain"
)

func mediaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "media [exercises-fixture]",
		Short: "Resolve video and thumbnail URLs for an exercises fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			env, err := api.DecodeEnvelope[api.Page[domain.Exercise]](bytes.NewReader(raw))
			if err != nil {
				return err
			}
			if !env.HasData() {
				slog.Info("fixture has no exercises")
				return nil
			}

			resolver := domain.MediaResolver{CDNBaseURL: cfg.CDN.BaseURL}
			for _, ex := range env.Data.Content {
				video, hasVideo := resolver.VideoURL(ex)
				thumb, hasThumb := resolver.ThumbnailURL(ex)
				slog.Info("exercise media",
					"id", ex.ID,
					"name", ex.Name,
					"persisted", ex.IsPersisted(),
					"video", video,
					"has_video", hasVideo,
					"thumbnail", thumb,
					"has_thumbnail", hasThumb)
			}
			return nil
		},
	}
}
