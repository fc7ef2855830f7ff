package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/kim-mccallum/recipe-app-api/models"
)

// Field name constants for recipe validation.
const (
	// FieldTitle targets the recipe title.
	FieldTitle = "title"

	// FieldDescription targets the recipe description.
	FieldDescription = "description"

	// FieldIngredients targets the recipe ingredients text.
	FieldIngredients = "ingredients"

	// FieldInstructions targets the recipe preparation instructions.
	FieldInstructions = "instructions"
)

// minDescriptionLength is the minimum accepted description length,
// counted in runes so multibyte text is measured like any other.
const minDescriptionLength = 5

// RecipeValidator implements the Validator interface for recipes and
// partial recipe updates.
//
// For [models.Recipe] every content field must be present; for
// [models.RecipeUpdate] only the provided (non-nil) fields are checked,
// and at least one of them must be set.
type RecipeValidator struct {
}

// NewRecipeValidator constructs a new RecipeValidator
// and returns it as the Validator interface.
func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - models.Recipe / *models.Recipe
//   - models.RecipeUpdate / *models.RecipeUpdate
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Recipe:
		return v.validateRecipe(ctx, value, fields...)
	case *models.Recipe:
		return v.validateRecipe(ctx, *value, fields...)

	case models.RecipeUpdate:
		return v.validateRecipeUpdate(ctx, value)
	case *models.RecipeUpdate:
		return v.validateRecipeUpdate(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

// validateRecipe validates a full recipe as supplied at creation time.
//
// Default validated fields (when none specified):
// Title, Description, Ingredients, Instructions.
//
// Returns the first encountered validation error or nil.
func (v *RecipeValidator) validateRecipe(_ context.Context, recipe models.Recipe, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldIngredients, FieldInstructions}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(recipe.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if utf8.RuneCountInString(strings.TrimSpace(recipe.Description)) < minDescriptionLength {
				return ErrDescriptionTooShort
			}
		case FieldIngredients:
			if strings.TrimSpace(recipe.Ingredients) == "" {
				return ErrEmptyIngredients
			}
		case FieldInstructions:
			if strings.TrimSpace(recipe.Instructions) == "" {
				return ErrEmptyInstructions
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateRecipeUpdate validates a partial recipe update: at least one field
// must be provided, and every provided field must satisfy the same rules as
// at creation time.
func (v *RecipeValidator) validateRecipeUpdate(_ context.Context, update models.RecipeUpdate) error {
	if update.Title == nil && update.Description == nil && update.Ingredients == nil && update.Instructions == nil {
		return ErrNoFieldsToUpdate
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return ErrEmptyTitle
	}
	if update.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*update.Description)) < minDescriptionLength {
		return ErrDescriptionTooShort
	}
	if update.Ingredients != nil && strings.TrimSpace(*update.Ingredients) == "" {
		return ErrEmptyIngredients
	}
	if update.Instructions != nil && strings.TrimSpace(*update.Instructions) == "" {
		return ErrEmptyInstructions
	}

	return nil
}
