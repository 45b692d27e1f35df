// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"wallpaper_backend/internal/feature/auth/domain/entity"
	"wallpaper_backend/internal/feature/auth/usecase"
)

// queryTimeout bounds every round trip to the store. A database that does not
// answer in time surfaces as ErrStorageUnavailable instead of hanging the request.
const queryTimeout = 3 * time.Second

// uniqueViolation is the Postgres SQLSTATE for a unique constraint violation.
const uniqueViolation = "23505"

// userPostgres is the Postgres implementation of the UserRepository interface.
// The same code runs against the in-memory SQLite database in tests; gorm's
// error translation (TranslateError) keeps the duplicate-key mapping portable.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new userPostgres instance with the given gorm.DB
// connection. Constructor for dependency injection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts the user. The uniqueness of username and email is enforced by
// the database constraint, so two registrations racing past the usecase
// pre-check cannot both succeed; the loser gets usecase.ErrUserExists.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrUserExists
		}
		return translateStorageErr(err)
	}
	return nil
}

// FindByUsernameOrEmail retrieves a user whose username or email matches.
// It returns usecase.ErrUserNotFound when neither does.
func (r *userPostgres) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u entity.User
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, email).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, translateStorageErr(err)
	}
	return &u, nil
}

// FindByUsernameAndDigest retrieves the user matching both username and
// password digest. No-match is usecase.ErrUserNotFound, never an internal error.
func (r *userPostgres) FindByUsernameAndDigest(ctx context.Context, username, digest string) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u entity.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND password_hash = ?", username, digest).
		First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, translateStorageErr(err)
	}
	return &u, nil
}

// isUniqueViolation reports whether err is a unique constraint violation,
// either through gorm's translated error or the raw Postgres SQLSTATE.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// translateStorageErr maps exhausted deadlines onto the storage-unavailable
// sentinel so handlers can answer 503 instead of leaking driver internals.
func translateStorageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return usecase.ErrStorageUnavailable
	}
	return err
}
