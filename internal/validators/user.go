package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/kim-mccallum/recipe-app-api/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldName targets the display name of a user account.
	FieldName = "name"

	// FieldEmail targets the email address of a user account.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password supplied at signup or login.
	FieldPassword = "password"
)

// minPasswordLength is the minimum accepted password length at signup.
const minPasswordLength = 6

// UserValidator implements the Validator interface for user accounts.
// It accepts both value and pointer forms of [models.User] and allows
// optional field-level scoping via variadic field name arguments.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.User / *models.User
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// all signup-relevant fields are validated.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUser validates a single User model.
//
// Default validated fields (when none specified): Name, Email, Password.
//
// Returns the first encountered validation error or nil.
func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isValidEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(user.Password) < minPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail reports whether address parses as a bare RFC 5322 address.
// Display names ("Maya <maya@example.com>") are rejected: only the plain
// address form is accepted for account emails.
func isValidEmail(address string) bool {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return false
	}

	parsed, err := mail.ParseAddress(trimmed)
	if err != nil {
		return false
	}

	return parsed.Address == trimmed
}
