package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	wallpaperadapters "wallpaper_backend/internal/feature/wallpapers/adapters"
	"wallpaper_backend/internal/feature/wallpapers/usecase"
	"wallpaper_backend/internal/platform/cache"
)

// NewWallpaperRepository creates a WallpaperRepository implementation.
// If Redis is available, the postgres repository is wrapped with listing
// caching. Otherwise it is used directly.
func NewWallpaperRepository(rdb *redis.Client, db *gorm.DB) usecase.WallpaperRepository {
	repo := wallpaperadapters.NewWallpaperPostgres(db)
	if rdb != nil {
		return cache.NewCachingWallpaperRepository(rdb, 0, repo, "wallpapers")
	}
	return repo
}
