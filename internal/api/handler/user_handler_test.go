package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/accounthub/account-service/internal/api/middleware"
	"github.com/accounthub/account-service/internal/core/domain"
	"github.com/accounthub/account-service/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, in ports.SignupInput) (*domain.User, string, error)
	loginFn  func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, string, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	listFn   func(ctx context.Context, page, limit int64) ([]domain.User, ports.ListMeta, error)
	updateFn func(ctx context.Context, actor *domain.User, id string, patch domain.UserPatch) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context, page, limit int64) ([]domain.User, ports.ListMeta, error) {
	return s.listFn(ctx, page, limit)
}

func (s *stubUserService) Update(ctx context.Context, actor *domain.User, id string, patch domain.UserPatch) (*domain.User, error) {
	return s.updateFn(ctx, actor, id, patch)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestUserHandler_Signup_Success(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{
		signupFn: func(_ context.Context, in ports.SignupInput) (*domain.User, string, error) {
			if in.Name != "Alice" || in.Email != "alice@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{
				ID:           "user-1",
				Name:         in.Name,
				Email:        in.Email,
				PasswordHash: "$2a$12$somethingsecret",
				Role:         domain.RoleUser,
			}, "signed-token", nil
		},
	}
	h := NewUserHandler(auth, &stubUserService{})

	req := jsonRequest(http.MethodPost, "/signup", `{"name":"Alice","email":"alice@example.com","password":"password123"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	// The password hash must never appear in any serialized user.
	if strings.Contains(rec.Body.String(), "password") || strings.Contains(rec.Body.String(), "somethingsecret") {
		t.Fatalf("response leaks credential material: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "success" || resp["token"] != "signed-token" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data, _ := resp["data"].(map[string]any)
	user, _ := data["user"].(map[string]any)
	if user["email"] != "alice@example.com" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestUserHandler_Signup_ErrorPropagates(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{
		signupFn: func(context.Context, ports.SignupInput) (*domain.User, string, error) {
			return nil, "", &domain.DuplicateKeyError{Field: "email"}
		},
	}
	h := NewUserHandler(auth, &stubUserService{})

	req := jsonRequest(http.MethodPost, "/signup", `{"name":"A","email":"a@b.com","password":"password123"}`)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Signup(c)
	if _, ok := err.(*domain.DuplicateKeyError); !ok {
		t.Fatalf("expected DuplicateKeyError to reach the translator, got %v", err)
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, error) {
			if email != "alice@example.com" || password != "password123" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", nil
		},
	}
	h := NewUserHandler(auth, &stubUserService{})

	req := jsonRequest(http.MethodPost, "/login", `{"email":"alice@example.com","password":"password123"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "success" || resp["token"] != "signed-token" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestUserHandler_List_PaginationParams(t *testing.T) {
	e := echo.New()
	users := &stubUserService{
		listFn: func(_ context.Context, page, limit int64) ([]domain.User, ports.ListMeta, error) {
			if page != 3 || limit != 5 {
				t.Fatalf("expected page=3 limit=5, got %d %d", page, limit)
			}
			return []domain.User{{ID: "user-1"}}, ports.ListMeta{TotalDocs: 11, TotalPages: 3, Page: page, Limit: limit}, nil
		},
	}
	h := NewUserHandler(&stubAuthService{}, users)

	req := httptest.NewRequest(http.MethodGet, "/users?page=3&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, _ := resp["data"].(map[string]any)
	meta, _ := data["meta"].(map[string]any)
	if meta["totalDocs"] != float64(11) || meta["totalPages"] != float64(3) {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestUserHandler_List_Defaults(t *testing.T) {
	e := echo.New()
	users := &stubUserService{
		listFn: func(_ context.Context, page, limit int64) ([]domain.User, ports.ListMeta, error) {
			if page != 1 || limit != 10 {
				t.Fatalf("expected defaults 1/10, got %d %d", page, limit)
			}
			return nil, ports.ListMeta{Page: page, Limit: limit}, nil
		},
	}
	h := NewUserHandler(&stubAuthService{}, users)

	req := httptest.NewRequest(http.MethodGet, "/users?page=abc", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestUserHandler_Get_NotFoundPropagates(t *testing.T) {
	e := echo.New()
	users := &stubUserService{
		getFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.NewAPIError(http.StatusNotFound, "User not found")
		},
	}
	h := NewUserHandler(&stubAuthService{}, users)

	req := httptest.NewRequest(http.MethodGet, "/users/missing", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Get(c)
	ae, ok := err.(*domain.APIError)
	if !ok || ae.Code != http.StatusNotFound {
		t.Fatalf("expected 404 APIError, got %v", err)
	}
}

func TestUserHandler_Update_RequiresResolvedUser(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubAuthService{}, &stubUserService{})

	req := jsonRequest(http.MethodPatch, "/users/user-2", `{"name":"X"}`)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("user-2")

	err := h.Update(c)
	ae, ok := err.(*domain.APIError)
	if !ok || ae.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
}

func TestUserHandler_Update_PassesActorAndPatch(t *testing.T) {
	e := echo.New()
	actor := &domain.User{ID: "user-1", Role: domain.RoleUser}
	users := &stubUserService{
		updateFn: func(_ context.Context, got *domain.User, id string, patch domain.UserPatch) (*domain.User, error) {
			if got.ID != "user-1" || id != "user-1" {
				t.Fatalf("unexpected actor/id: %s %s", got.ID, id)
			}
			if patch.Name == nil || *patch.Name != "Renamed" {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			if patch.Email != nil {
				t.Fatalf("absent fields must stay nil")
			}
			return &domain.User{ID: id, Name: *patch.Name}, nil
		},
	}
	h := NewUserHandler(&stubAuthService{}, users)

	req := jsonRequest(http.MethodPatch, "/users/user-1", `{"name":"Renamed"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user-1")
	c.Set(middleware.UserContextKey, actor)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_NoContent(t *testing.T) {
	e := echo.New()
	users := &stubUserService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "user-9" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewUserHandler(&stubAuthService{}, users)

	req := httptest.NewRequest(http.MethodDelete, "/users/user-9", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user-9")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
