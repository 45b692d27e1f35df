package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"wallpaper_backend/internal/app/di"
	wallpaperadapters "wallpaper_backend/internal/feature/wallpapers/adapters"
	"wallpaper_backend/internal/feature/wallpapers/usecase"
	infradb "wallpaper_backend/internal/platform/db"
)

func main() {
	page := flag.Int("page", 1, "feed page to ingest")
	limit := flag.Int("limit", 30, "images per page")
	flag.Parse()

	cfg := infradb.LoadConfigFromEnv()
	if cfg.URL == "" {
		slog.Error("DATABASE_URL is not set")
		os.Exit(1)
	}
	db, err := infradb.ConnectWithRetry(cfg.URL, 60*time.Second, infradb.OpenPostgres)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if cfg.RunMigrations {
		if err := infradb.Migrate(db); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	feed := di.NewFeed()
	repo := wallpaperadapters.NewWallpaperPostgres(db)
	uc := usecase.NewIngestUsecase(feed, repo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	inserted, err := uc.IngestCurated(ctx, *page, *limit)
	if err != nil {
		slog.Error("ingest failed", "error", err)
		os.Exit(1)
	}
	slog.Info("ingest ok", "page", *page, "inserted", inserted)
}
