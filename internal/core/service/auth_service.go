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

// dummyHash is a precomputed bcrypt hash compared against when the email is
// unknown, so the unknown-email and wrong-password paths cost the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

var (
	errMissingCredentials   = domain.NewAPIError(http.StatusBadRequest, "Provide email and password")
	errIncorrectCredentials = domain.NewAPIError(http.StatusUnauthorized, "Incorrect email or password")
	errTooManyAttempts      = domain.NewAPIError(http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
)

// AuthService implements signup and login.
type AuthService struct {
	repo     ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	throttle ports.LoginThrottle
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, throttle ports.LoginThrottle) *AuthService {
	if throttle == nil {
		throttle = NoopThrottle{}
	}
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, throttle: throttle}
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, string, error) {
	if err := domain.ValidateNewUser(in.Name, in.Email, in.Password, in.Age, ""); err != nil {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Age:          in.Age,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errMissingCredentials
	}
	email = strings.ToLower(strings.TrimSpace(email))

	blocked, err := s.throttle.TooManyAttempts(ctx, email)
	if err != nil {
		return "", err
	}
	if blocked {
		return "", errTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_, _ = s.hasher.Verify(password, dummyHash)
			return "", s.loginFailed(ctx, email)
		}
		return "", err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", s.loginFailed(ctx, email)
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID)
}

func (s *AuthService) loginFailed(ctx context.Context, email string) error {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		return err
	}
	return errIncorrectCredentials
}

// NoopThrottle disables login throttling. Used when no Redis address is
// configured.
type NoopThrottle struct{}

func (NoopThrottle) TooManyAttempts(context.Context, string) (bool, error) { return false, nil }
func (NoopThrottle) RecordFailure(context.Context, string) error           { return nil }
func (NoopThrottle) Reset(context.Context, string) error                   { return nil }
