package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// userSchema mirrors the persistence schema rules for a full user document.
// Password is the plaintext candidate; length rules apply before hashing.
type userSchema struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Age      *int   `validate:"omitempty,gte=0"`
	Role     string `validate:"omitempty,oneof=user admin"`
}

// ValidateNewUser checks a full document against the schema rules. Returns
// nil when everything passes, otherwise a ValidationError naming each
// offending field.
func ValidateNewUser(name, email, password string, age *int, role string) error {
	err := validate.Struct(userSchema{
		Name:     name,
		Email:    email,
		Password: password,
		Age:      age,
		Role:     role,
	})
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &ValidationError{}
	for _, fe := range ve {
		out.Fields = append(out.Fields, FieldError{
			Field:   fe.Field(),
			Message: schemaMessage(fe.Field(), fe.Tag(), fe.Value()),
		})
	}
	return out
}

// ValidatePatch checks only the fields present in a partial update.
func ValidatePatch(p UserPatch) error {
	out := &ValidationError{}

	check := func(field, tag string, value any) {
		if err := validate.Var(value, tag); err != nil {
			ve, ok := err.(validator.ValidationErrors)
			if !ok || len(ve) == 0 {
				return
			}
			out.Fields = append(out.Fields, FieldError{
				Field:   field,
				Message: schemaMessage(field, ve[0].Tag(), value),
			})
		}
	}

	if p.Name != nil {
		check("Name", "required", *p.Name)
	}
	if p.Email != nil {
		check("Email", "required,email", *p.Email)
	}
	if p.Password != nil {
		check("Password", "required,min=8", *p.Password)
	}
	if p.Age != nil {
		check("Age", "gte=0", *p.Age)
	}
	if p.Role != nil {
		check("Role", "oneof=user admin", *p.Role)
	}

	if len(out.Fields) == 0 {
		return nil
	}
	return out
}

// schemaMessage renders the human-readable message for a failed rule,
// matching the wording clients already depend on.
func schemaMessage(field, tag string, value any) string {
	switch field {
	case "Name":
		return "Name is required"
	case "Email":
		if tag == "required" {
			return "Email is required"
		}
		return fmt.Sprintf("%v is not a valid email!", value)
	case "Password":
		if tag == "required" {
			return "Password is required"
		}
		return "Password must be at least 8 characters"
	case "Age":
		return "Age must be positive"
	case "Role":
		return "Role must be either user or admin"
	}
	return fmt.Sprintf("%s failed validation (%s)", field, tag)
}
