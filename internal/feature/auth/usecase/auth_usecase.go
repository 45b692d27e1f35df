package usecase

import (
	"context"
	"errors"
	"fmt"

	"wallpaper_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUserExists when the username
	// or email is already taken, including when a concurrent registration won
	// the race and the uniqueness constraint fired.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsernameOrEmail retrieves a user matching either field.
	// It returns ErrUserNotFound when no such user exists.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// FindByUsernameAndDigest retrieves the user with the given username and
	// password digest. It returns ErrUserNotFound when no user matches; an
	// unknown username and a wrong digest are indistinguishable here.
	FindByUsernameAndDigest(ctx context.Context, username, digest string) (*entity.User, error)
}

// TokenIssuer mints bearer tokens for authenticated users.
// Defined here so the usecase does not depend on the token platform package.
type TokenIssuer interface {
	Issue(userID uint, username string) (string, error)
}

// authUsecase implements the registration and login flows.
type authUsecase struct {
	users  UserRepository
	issuer TokenIssuer
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, issuer TokenIssuer) *authUsecase {
	return &authUsecase{users: users, issuer: issuer}
}

// Register creates a new account and returns it with a freshly issued token.
// Uniqueness of username and email is checked up front for a friendly error,
// but the insert still relies on the storage constraint to settle races.
func (u *authUsecase) Register(ctx context.Context, username, email, password string) (*entity.User, string, error) {
	if _, err := u.users.FindByUsernameOrEmail(ctx, username, email); err == nil {
		return nil, "", ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, "", err
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: HashPassword(password),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	tokenStr, err := u.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, tokenStr, nil
}

// Login authenticates a user and returns the account with a new token.
// Lookup is by (username, digest) equality; both an unknown username and a
// wrong password surface as ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := u.users.FindByUsernameAndDigest(ctx, username, HashPassword(password))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	tokenStr, err := u.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, tokenStr, nil
}
