// Package token issues and verifies the signed bearer tokens that identify
// authenticated users. Tokens are self-contained (HS256 JWT) and are never
// stored server-side; once issued, expiry is the only thing that ends a session.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// EnvKeySecret is the environment variable holding the signing secret.
	EnvKeySecret = "JWT_SECRET"

	// DevelopmentSecret is the fallback secret for local runs. It is well known
	// and must never reach a release build; cmd/server enforces that.
	DevelopmentSecret = "default-secret-change-in-production"

	// DefaultTTL is how long an issued token stays usable.
	DefaultTTL = 7 * 24 * time.Hour
)

// Verification failures are distinct so logs and tests can tell them apart,
// even though the HTTP boundary collapses all three to 401.
var (
	// ErrTokenMalformed is returned when the token is not a three-part JWT.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenSignatureInvalid is returned when the signature does not match
	// the header and claims under the configured secret.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the token's expiry instant has passed.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned for any other verification failure.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Claims is the claim set carried by every issued token.
// The JSON keys are part of the wire contract with the frontend.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Codec signs and verifies bearer tokens with a shared symmetric secret.
// The secret is set once at startup and read-only afterwards.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec with the provided secret and token lifetime.
// A non-positive ttl falls back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the given user.
func (c *Codec) Issue(userID uint, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's structure, signature and expiry, and returns its
// claims. Only HMAC tokens are accepted; an RS256 token with a matching public
// key would otherwise slip through the keyfunc.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case err == nil && parsed.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, ErrTokenInvalid
	}
}
