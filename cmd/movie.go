package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tkarvinen/moviedeck/internal/config"
	"github.com/tkarvinen/moviedeck/internal/poster"
)

// MovieCmd represents the movie detail command
type MovieCmd struct {
	ID         string `arg:"" help:"IMDb id (tt...) or bundled catalog id (Language_Year_Position)"`
	SavePoster bool   `help:"Download the poster image into the local poster directory"`
}

func (m *MovieCmd) Run() error {
	app, err := newAppFunc()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()
	detail := app.catalog.GetByID(ctx, m.ID)
	if detail == nil {
		return fmt.Errorf("movie %s not found", m.ID)
	}
	app.renderDetail(detail)

	if m.SavePoster {
		if !strings.HasPrefix(detail.PosterURL, "http") {
			slog.Warn("Movie has no downloadable poster", "id", detail.ID)
			return nil
		}
		path, err := poster.Save(ctx, detail.PosterURL, config.PosterDir, poster.Filename(detail.Title), 0)
		if err != nil {
			return fmt.Errorf("failed to save poster: %w", err)
		}
		slog.Info("Saved poster", "path", path)
	}
	return nil
}
