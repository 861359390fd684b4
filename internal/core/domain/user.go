package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User models an account holder. PasswordHash is never serialized; read
// operations return users without credential material unless the caller
// explicitly asks the repository for it.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Age          *int      `json:"age,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPatch carries the mutable attributes of a partial update. Nil fields
// are left untouched. Password is plaintext here; the service layer hashes
// it before the patch reaches the repository.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	Age      *int
	Role     *string
}
