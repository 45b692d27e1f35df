// Package adapters provides the repository implementations for the wallpapers feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wallpaper_backend/internal/feature/wallpapers/domain/entity"
	"wallpaper_backend/internal/feature/wallpapers/usecase"
)

// queryTimeout bounds every round trip to the store.
const queryTimeout = 3 * time.Second

// wallpaperPostgres is the Postgres implementation of WallpaperRepository.
// Tests run the same code against in-memory SQLite.
type wallpaperPostgres struct {
	db *gorm.DB
}

// Compile-time check that wallpaperPostgres implements WallpaperRepository.
var _ usecase.WallpaperRepository = (*wallpaperPostgres)(nil)

// NewWallpaperPostgres creates a new wallpaperPostgres instance with the given
// gorm.DB connection. Constructor for dependency injection.
func NewWallpaperPostgres(db *gorm.DB) *wallpaperPostgres {
	return &wallpaperPostgres{db: db}
}

// List returns every wallpaper newest first, joined with its rating average,
// rating count and comment count. DISTINCT keeps the two LEFT JOINs from
// multiplying each other's rows.
func (r *wallpaperPostgres) List(ctx context.Context) ([]entity.WallpaperStats, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var stats []entity.WallpaperStats
	err := r.db.WithContext(ctx).
		Model(&entity.Wallpaper{}).
		Select("wallpapers.id, wallpapers.title, wallpapers.image_url, wallpapers.source_type, " +
			"wallpapers.author, wallpapers.download_count, wallpapers.views, wallpapers.created_at, " +
			"COALESCE(AVG(ratings.rating), 0) AS avg_rating, " +
			"COUNT(DISTINCT ratings.id) AS rating_count, " +
			"COUNT(DISTINCT comments.id) AS comment_count").
		Joins("LEFT JOIN ratings ON ratings.wallpaper_id = wallpapers.id").
		Joins("LEFT JOIN comments ON comments.wallpaper_id = wallpapers.id").
		Group("wallpapers.id").
		Order("wallpapers.created_at DESC").
		Scan(&stats).Error
	if err != nil {
		return nil, translateStorageErr(err)
	}
	return stats, nil
}

// Insert persists a new wallpaper.
func (r *wallpaperPostgres) Insert(ctx context.Context, w *entity.Wallpaper) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(w).Error; err != nil {
		return translateStorageErr(err)
	}
	return nil
}

// InsertCurated inserts a batch of curated wallpapers, silently skipping any
// image URL that is already stored. Reruns of the seed job are idempotent.
func (r *wallpaperPostgres) InsertCurated(ctx context.Context, ws []entity.Wallpaper) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "image_url"}},
			DoNothing: true,
		}).
		Create(&ws)
	if tx.Error != nil {
		return 0, translateStorageErr(tx.Error)
	}
	return tx.RowsAffected, nil
}

// UpsertRating records a rating, replacing the user's previous rating for the
// same wallpaper. The conflict target is the (wallpaper_id, user_id) unique index.
func (r *wallpaperPostgres) UpsertRating(ctx context.Context, rating *entity.Rating) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallpaper_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating"}),
		}).
		Create(rating).Error
	if err != nil {
		return translateStorageErr(err)
	}
	return nil
}

// AverageRating returns the current average rating of a wallpaper, 0 when it
// has no ratings yet.
func (r *wallpaperPostgres) AverageRating(ctx context.Context, wallpaperID uint) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var avg float64
	err := r.db.WithContext(ctx).
		Model(&entity.Rating{}).
		Where("wallpaper_id = ?", wallpaperID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, translateStorageErr(err)
	}
	return avg, nil
}

// AddComment persists a new comment.
func (r *wallpaperPostgres) AddComment(ctx context.Context, c *entity.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return translateStorageErr(err)
	}
	return nil
}

// IncrementDownloads bumps the download counter in a single UPDATE so
// concurrent downloads never lose an increment.
func (r *wallpaperPostgres) IncrementDownloads(ctx context.Context, wallpaperID uint) error {
	return r.increment(ctx, wallpaperID, "download_count")
}

// IncrementViews bumps the view counter in a single UPDATE.
func (r *wallpaperPostgres) IncrementViews(ctx context.Context, wallpaperID uint) error {
	return r.increment(ctx, wallpaperID, "views")
}

func (r *wallpaperPostgres) increment(ctx context.Context, wallpaperID uint, column string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.db.WithContext(ctx).
		Model(&entity.Wallpaper{}).
		Where("id = ?", wallpaperID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error
	if err != nil {
		return translateStorageErr(err)
	}
	return nil
}

// translateStorageErr maps exhausted deadlines onto the storage-unavailable
// sentinel so handlers can answer 503 instead of leaking driver internals.
func translateStorageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return usecase.ErrStorageUnavailable
	}
	return err
}
