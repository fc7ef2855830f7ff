package service

import (
	"context"

	"github.com/kim-mccallum/recipe-app-api/models"
)

type AuthService interface {
	SignupUser(ctx context.Context, user models.User, image *models.ImageUpload) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
}

type RecipeService interface {
	GetRecipeByID(ctx context.Context, recipeID string) (models.Recipe, error)
	GetRecipesByUser(ctx context.Context, userID int64) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe, image *models.ImageUpload) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, userID int64, update models.RecipeUpdate) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID int64, recipeID string) error
}
