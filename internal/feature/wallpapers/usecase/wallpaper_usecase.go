package usecase

import (
	"context"
	"fmt"

	"wallpaper_backend/internal/feature/wallpapers/domain/entity"
)

// WallpaperRepository abstracts the persistence layer for wallpapers, ratings
// and comments. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type WallpaperRepository interface {
	// List returns all wallpapers newest first, with rating and comment aggregates.
	List(ctx context.Context) ([]entity.WallpaperStats, error)

	// Insert persists a new wallpaper.
	Insert(ctx context.Context, w *entity.Wallpaper) error

	// InsertCurated inserts a batch of curated wallpapers, skipping any whose
	// image URL is already present. It returns the number actually inserted.
	InsertCurated(ctx context.Context, ws []entity.Wallpaper) (int64, error)

	// UpsertRating records a user's rating, replacing any previous rating by
	// the same user for the same wallpaper.
	UpsertRating(ctx context.Context, r *entity.Rating) error

	// AverageRating returns the current average rating of a wallpaper.
	AverageRating(ctx context.Context, wallpaperID uint) (float64, error)

	// AddComment persists a new comment.
	AddComment(ctx context.Context, c *entity.Comment) error

	// IncrementDownloads bumps a wallpaper's download counter.
	IncrementDownloads(ctx context.Context, wallpaperID uint) error

	// IncrementViews bumps a wallpaper's view counter.
	IncrementViews(ctx context.Context, wallpaperID uint) error
}

// ImageModerator screens an image URL before it is published.
// Defined here so the usecase does not depend on the curation feature; a nil
// moderator disables screening.
type ImageModerator interface {
	// Review reports whether the image behind the URL is acceptable.
	Review(ctx context.Context, imageURL string) (bool, error)
}

// wallpaperUsecase implements the wallpaper operations.
type wallpaperUsecase struct {
	repo      WallpaperRepository
	moderator ImageModerator
}

// NewWallpaperUsecase creates a new wallpaperUsecase instance.
// moderator may be nil, in which case uploads are not screened.
func NewWallpaperUsecase(repo WallpaperRepository, moderator ImageModerator) *wallpaperUsecase {
	return &wallpaperUsecase{repo: repo, moderator: moderator}
}

// List returns all wallpapers with their aggregates, newest first.
func (u *wallpaperUsecase) List(ctx context.Context) ([]entity.WallpaperStats, error) {
	return u.repo.List(ctx)
}

// Upload publishes a user-uploaded wallpaper. An empty author defaults to
// "Anonymous". When a moderator is configured the image URL must pass review.
func (u *wallpaperUsecase) Upload(ctx context.Context, title, imageURL, author string) (*entity.Wallpaper, error) {
	if author == "" {
		author = "Anonymous"
	}

	if u.moderator != nil {
		ok, err := u.moderator.Review(ctx, imageURL)
		if err != nil {
			return nil, fmt.Errorf("moderation review failed: %w", err)
		}
		if !ok {
			return nil, ErrImageRejected
		}
	}

	w := &entity.Wallpaper{
		Title:      title,
		ImageURL:   imageURL,
		SourceType: entity.SourceUserUploaded,
		Author:     author,
	}
	if err := u.repo.Insert(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Rate records a rating and returns the wallpaper's new average.
func (u *wallpaperUsecase) Rate(ctx context.Context, wallpaperID uint, userID string, rating int) (float64, error) {
	if rating < 1 || rating > 5 {
		return 0, ErrInvalidRating
	}
	if userID == "" {
		userID = "anonymous"
	}

	r := &entity.Rating{WallpaperID: wallpaperID, UserID: userID, Rating: rating}
	if err := u.repo.UpsertRating(ctx, r); err != nil {
		return 0, err
	}
	return u.repo.AverageRating(ctx, wallpaperID)
}

// Comment adds a comment to a wallpaper and returns the stored row.
func (u *wallpaperUsecase) Comment(ctx context.Context, wallpaperID uint, userID, username, text string) (*entity.Comment, error) {
	if userID == "" {
		userID = "anonymous"
	}
	if username == "" {
		username = "Anonymous"
	}

	c := &entity.Comment{
		WallpaperID: wallpaperID,
		UserID:      userID,
		Username:    username,
		CommentText: text,
	}
	if err := u.repo.AddComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RecordDownload bumps a wallpaper's download counter.
func (u *wallpaperUsecase) RecordDownload(ctx context.Context, wallpaperID uint) error {
	return u.repo.IncrementDownloads(ctx, wallpaperID)
}

// RecordView bumps a wallpaper's view counter.
func (u *wallpaperUsecase) RecordView(ctx context.Context, wallpaperID uint) error {
	return u.repo.IncrementViews(ctx, wallpaperID)
}
