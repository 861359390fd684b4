package ports

import (
	"context"

	"github.com/accounthub/account-service/internal/core/domain"
)

// CreateUserInput carries the attributes of a direct user creation. Unlike
// signup it accepts an explicit role.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
	Role     string
}

// ListMeta describes a page of results.
type ListMeta struct {
	TotalDocs  int64 `json:"totalDocs"`
	TotalPages int64 `json:"totalPages"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
}

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, page, limit int64) ([]domain.User, ListMeta, error)

	// Update applies patch to the user identified by id. Only an admin or
	// the account owner may update; anyone else gets a 403 domain error.
	Update(ctx context.Context, actor *domain.User, id string, patch domain.UserPatch) (*domain.User, error)

	Delete(ctx context.Context, id string) error
}
