// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"wallpaper_backend/internal/feature/wallpapers/domain/entity"
	"wallpaper_backend/internal/feature/wallpapers/usecase"
)

// CachingWallpaperRepository decorates a WallpaperRepository with Redis
// caching of the listing query. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
type CachingWallpaperRepository struct {
	inner     usecase.WallpaperRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the interface.
var _ usecase.WallpaperRepository = (*CachingWallpaperRepository)(nil)

// NewCachingWallpaperRepository decorates a WallpaperRepository with Redis
// caching. If ttl is 0, it defaults to 5 minutes. If namespace is empty, it
// uses "wallpapers".
func NewCachingWallpaperRepository(rdb *redis.Client, ttl time.Duration, inner usecase.WallpaperRepository, namespace string) *CachingWallpaperRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "wallpapers"
	}
	return &CachingWallpaperRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// List retrieves the wallpaper listing, checking cache first then falling
// back to the database.
func (c *CachingWallpaperRepository) List(ctx context.Context) ([]entity.WallpaperStats, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.WallpaperStats
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Insert stores a wallpaper and invalidates the cached listing.
func (c *CachingWallpaperRepository) Insert(ctx context.Context, w *entity.Wallpaper) error {
	if err := c.inner.Insert(ctx, w); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// InsertCurated stores a curated batch and invalidates the cached listing.
func (c *CachingWallpaperRepository) InsertCurated(ctx context.Context, ws []entity.Wallpaper) (int64, error) {
	inserted, err := c.inner.InsertCurated(ctx, ws)
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		c.invalidate(ctx)
	}
	return inserted, nil
}

// UpsertRating saves a rating and invalidates the cached listing, since the
// listing carries rating aggregates.
func (c *CachingWallpaperRepository) UpsertRating(ctx context.Context, r *entity.Rating) error {
	if err := c.inner.UpsertRating(ctx, r); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// AverageRating is a pass-through; the per-wallpaper average is only read
// right after a write, when the cache would be stale anyway.
func (c *CachingWallpaperRepository) AverageRating(ctx context.Context, wallpaperID uint) (float64, error) {
	return c.inner.AverageRating(ctx, wallpaperID)
}

// AddComment stores a comment and invalidates the cached listing.
func (c *CachingWallpaperRepository) AddComment(ctx context.Context, comment *entity.Comment) error {
	if err := c.inner.AddComment(ctx, comment); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// IncrementDownloads bumps the download counter and invalidates the cached listing.
func (c *CachingWallpaperRepository) IncrementDownloads(ctx context.Context, wallpaperID uint) error {
	if err := c.inner.IncrementDownloads(ctx, wallpaperID); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// IncrementViews bumps the view counter and invalidates the cached listing.
func (c *CachingWallpaperRepository) IncrementViews(ctx context.Context, wallpaperID uint) error {
	if err := c.inner.IncrementViews(ctx, wallpaperID); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// invalidate drops every cache entry in the namespace (best effort).
func (c *CachingWallpaperRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// listKey generates the cache key of the listing query.
func (c *CachingWallpaperRepository) listKey() string {
	return c.namespace + ":list"
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingWallpaperRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
