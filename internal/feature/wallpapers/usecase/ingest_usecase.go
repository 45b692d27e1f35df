package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"wallpaper_backend/internal/feature/wallpapers/domain/entity"
)

// FeedRepository fetches curated wallpapers from an external provider.
// Defined here so the usecase does not depend on a concrete provider client.
type FeedRepository interface {
	// Fetch returns one page of curated wallpapers from the feed.
	Fetch(ctx context.Context, page, limit int) ([]entity.Wallpaper, error)
}

// ingestUsecase pulls curated wallpapers from a feed into the store.
type ingestUsecase struct {
	feed FeedRepository
	repo WallpaperRepository
}

// NewIngestUsecase creates a new ingestUsecase instance.
func NewIngestUsecase(feed FeedRepository, repo WallpaperRepository) *ingestUsecase {
	return &ingestUsecase{feed: feed, repo: repo}
}

// IngestCurated fetches one feed page and stores the wallpapers it did not
// already have. Reruns are idempotent: the image URL uniqueness makes
// previously ingested entries no-ops.
func (u *ingestUsecase) IngestCurated(ctx context.Context, page, limit int) (int64, error) {
	ws, err := u.feed.Fetch(ctx, page, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch feed page %d: %w", page, err)
	}
	if len(ws) == 0 {
		return 0, nil
	}

	inserted, err := u.repo.InsertCurated(ctx, ws)
	if err != nil {
		return 0, fmt.Errorf("failed to store curated wallpapers: %w", err)
	}

	slog.Info("curated ingest finished", "fetched", len(ws), "inserted", inserted, "page", page)
	return inserted, nil
}
