package store

import (
	"context"
	"io"

	"github.com/kim-mccallum/recipe-app-api/models"
)

// UserRepository persists user accounts and exposes lookups used by
// registration, login, and the public user listing.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetRecipeRefs(ctx context.Context, userID int64) ([]string, error)
}

// RecipeRepository persists recipes together with the per-user recipe
// reference set. Mutations that touch both tables run inside a single
// database transaction so that a recipe row and its owner's reference
// are always created and removed together.
type RecipeRepository interface {
	GetRecipeByID(ctx context.Context, recipeID string) (models.Recipe, error)
	GetRecipesByUserID(ctx context.Context, userID int64) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID string) (models.Recipe, error)
}

// ImageFileStorage stores uploaded image files on disk and removes them
// when their owning record goes away.
type ImageFileStorage interface {
	SaveImage(ctx context.Context, file io.Reader, filename string, size int64) (string, error)
	DeleteImage(ctx context.Context, imagePath string) error
}
