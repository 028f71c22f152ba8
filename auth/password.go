// Package auth implements the single shared admin credential: a fixed
// username plus the SHA-256 digest of one password.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
)

const (
	// DefaultUsername is the only accepted login name unless configured.
	DefaultUsername = "admin"

	// DefaultPasswordHash is the hex SHA-256 digest of "password".
	DefaultPasswordHash = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
)

// Authenticator checks credentials against one username and one digest.
type Authenticator struct {
	username string
	hash     string
}

// NewAuthenticator falls back to the defaults for empty arguments.
func NewAuthenticator(username, passwordHash string) *Authenticator {
	if username == "" {
		username = DefaultUsername
	}
	if passwordHash == "" {
		passwordHash = DefaultPasswordHash
	}
	return &Authenticator{
		username: username,
		hash:     strings.ToLower(strings.TrimSpace(passwordHash)),
	}
}

// HashPassword returns the lowercase hex SHA-256 digest of password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword returns ErrPasswordRequired for an empty password and
// ErrInvalidPassword when the digest does not match.
func (a *Authenticator) VerifyPassword(password string) error {
	if password == "" {
		return errs.NewPasswordRequiredError()
	}
	digest := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(a.hash)) != 1 {
		return errs.NewInvalidPasswordError()
	}
	return nil
}

// Login succeeds only for the configured username and a matching digest.
func (a *Authenticator) Login(username, password string) bool {
	if username != a.username {
		return false
	}
	return a.VerifyPassword(password) == nil
}

// Username returns the accepted login name.
func (a *Authenticator) Username() string {
	return a.username
}
