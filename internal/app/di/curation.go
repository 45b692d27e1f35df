package di

import (
	"context"
	"io"
	"log/slog"
	"os"

	"wallpaper_backend/internal/feature/curation/adapters/gemini"
	"wallpaper_backend/internal/feature/curation/adapters/vision"
	curationhandler "wallpaper_backend/internal/feature/curation/transport/handler"
	curationusecase "wallpaper_backend/internal/feature/curation/usecase"
	wallpaperusecase "wallpaper_backend/internal/feature/wallpapers/usecase"
)

// Curation bundles the optional moderation and tag suggestion components.
// Moderator and Handler are nil when their clients are not configured.
type Curation struct {
	Moderator wallpaperusecase.ImageModerator
	Handler   *curationhandler.CurationHandler

	closers []io.Closer
}

// Close releases the underlying API clients.
func (c *Curation) Close() {
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			slog.Warn("failed to close curation client", "error", err)
		}
	}
}

// NewCuration wires the Vision and Gemini clients when MODERATION=true and
// ADC credentials are available. Either client failing to start disables only
// the component it backs; the service keeps running without it.
func NewCuration(ctx context.Context) *Curation {
	c := &Curation{}
	if os.Getenv("MODERATION") != "true" {
		return c
	}

	detector, err := vision.NewSafeSearchClient(ctx)
	if err != nil {
		slog.Warn("image moderation disabled, vision client unavailable", "error", err)
		return c
	}
	c.closers = append(c.closers, detector)

	var tagger curationusecase.TagGenerator
	if tc, err := gemini.NewTagClient(ctx); err != nil {
		slog.Warn("tag suggestions disabled, gemini client unavailable", "error", err)
	} else {
		tagger = tc
	}

	uc := curationusecase.NewCurationUsecase(detector, tagger)
	c.Moderator = uc
	if tagger != nil {
		c.Handler = curationhandler.NewCurationHandler(uc)
	}
	return c
}
