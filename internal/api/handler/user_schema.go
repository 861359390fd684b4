package handler

import (
	"github.com/accounthub/account-service/internal/core/domain"
	"github.com/accounthub/account-service/internal/core/ports"
)

// errorResponse documents the envelope written by the error translator.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// --- Request types ---

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      *int   `json:"age"`
	Role     string `json:"role"`
}

// updateUserRequest is a partial update; absent fields stay untouched.
type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Age      *int    `json:"age"`
	Role     *string `json:"role"`
}

func (r updateUserRequest) patch() domain.UserPatch {
	return domain.UserPatch{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Age:      r.Age,
		Role:     r.Role,
	}
}

// --- Response types ---

// Success envelopes carry the literal string "success" in status; the error
// translator owns the matching "error" envelope.

type signupData struct {
	User *domain.User `json:"user"`
}

type signupResponse struct {
	Status string     `json:"status"`
	Token  string     `json:"token"`
	Data   signupData `json:"data"`
}

type loginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

type listData struct {
	Users []domain.User  `json:"users"`
	Meta  ports.ListMeta `json:"meta"`
}

type listResponse struct {
	Status string   `json:"status"`
	Data   listData `json:"data"`
}
