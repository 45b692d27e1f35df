package usecase

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-256 digest of a password.
//
// The digest is deterministic on purpose: login looks accounts up by
// (username, digest) equality, which a salted scheme cannot support. The lack
// of a per-account salt and work factor is a known weakness of the stored
// format, kept for compatibility with the existing user table.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
