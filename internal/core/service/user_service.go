package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/accounthub/account-service/internal/core/domain"
	"github.com/accounthub/account-service/internal/core/ports"
)

var (
	errUserNotFound = domain.NewAPIError(http.StatusNotFound, "User not found")
	errNotYourAcct  = domain.NewAPIError(http.StatusForbidden, "Not your account")
)

// UserService implements the CRUD operations over user documents.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if err := domain.ValidateNewUser(in.Name, in.Email, in.Password, in.Age, role); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Age:          in.Age,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, page, limit int64) ([]domain.User, ports.ListMeta, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, ports.ListMeta{}, err
	}

	users, err := s.repo.Find(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, ports.ListMeta{}, err
	}

	meta := ports.ListMeta{
		TotalDocs:  total,
		TotalPages: (total + limit - 1) / limit,
		Page:       page,
		Limit:      limit,
	}
	return users, meta, nil
}

func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, patch domain.UserPatch) (*domain.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, errNotYourAcct
	}

	if err := domain.ValidatePatch(patch); err != nil {
		return nil, err
	}

	if patch.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &lowered
	}
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}

	user, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return errUserNotFound
		}
		return err
	}
	return nil
}
