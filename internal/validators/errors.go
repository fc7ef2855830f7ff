package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrInvalidEmail        = errors.New("a valid email is required")
	ErrPasswordTooShort    = errors.New("password must be at least 6 characters long")
	ErrEmptyTitle          = errors.New("title is required")
	ErrDescriptionTooShort = errors.New("description must be at least 5 characters long")
	ErrEmptyIngredients    = errors.New("ingredients are required")
	ErrEmptyInstructions   = errors.New("instructions are required")
	ErrNoFieldsToUpdate    = errors.New("at least one field must be provided for update")
)
