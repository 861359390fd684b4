package ports

import (
	"context"

	"github.com/accounthub/account-service/internal/core/domain"
)

// SignupInput carries the attributes accepted on self-registration. Role is
// deliberately absent; signup always produces a regular user.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
}

type AuthService interface {
	// Signup creates the account and returns it together with a freshly
	// issued token.
	Signup(ctx context.Context, in SignupInput) (*domain.User, string, error)

	// Login verifies credentials and returns a token.
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenService issues and verifies the bearer tokens that prove identity
// between requests.
type TokenService interface {
	Issue(subjectID string) (string, error)

	// Verify returns the subject id embedded in a valid token, or a 401
	// domain error when the signature, shape, or expiry check fails.
	Verify(token string) (string, error)
}

// PasswordHasher is the one-way credential hasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hashed. A mismatch is a
	// false return, not an error; an error means hashed is structurally
	// malformed.
	Verify(plaintext, hashed string) (bool, error)
}

// LoginThrottle bounds repeated failed logins per email. Implementations
// may be a no-op when no backing store is configured.
type LoginThrottle interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
