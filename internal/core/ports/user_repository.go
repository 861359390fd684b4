package ports

import (
	"context"

	"github.com/accounthub/account-service/internal/core/domain"
)

// UserRepository defines the persistence operations for user documents.
// Implementations return domain.ErrUserNotFound when no document matches,
// *domain.DuplicateKeyError on unique-index conflicts, and never expose
// driver-level errors unwrapped.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)

	// FindByEmail looks a user up by (lowercased) email. The password hash
	// is only populated when withPassword is true; read paths that do not
	// authenticate must not see credential material.
	FindByEmail(ctx context.Context, email string, withPassword bool) (*domain.User, error)

	Count(ctx context.Context) (int64, error)
	Find(ctx context.Context, skip, limit int64) ([]domain.User, error)

	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// UpdateByID applies the non-nil fields of patch and returns the
	// updated document.
	UpdateByID(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)

	DeleteByID(ctx context.Context, id string) error
}
