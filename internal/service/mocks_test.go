package service

import (
	"context"
	"io"

	"github.com/kim-mccallum/recipe-app-api/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	getAllUsersFn     func(ctx context.Context) ([]models.User, error)
	getRecipeRefsFn   func(ctx context.Context, userID int64) ([]string, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.getAllUsersFn != nil {
		return m.getAllUsersFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) GetRecipeRefs(ctx context.Context, userID int64) ([]string, error) {
	if m.getRecipeRefsFn != nil {
		return m.getRecipeRefsFn(ctx, userID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.RecipeRepository
// ─────────────────────────────────────────────

type mockRecipeRepository struct {
	getRecipeByIDFn      func(ctx context.Context, recipeID string) (models.Recipe, error)
	getRecipesByUserIDFn func(ctx context.Context, userID int64) ([]models.Recipe, error)
	createRecipeFn       func(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	updateRecipeFn       func(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error)
	deleteRecipeFn       func(ctx context.Context, recipeID string) (models.Recipe, error)
}

func (m *mockRecipeRepository) GetRecipeByID(ctx context.Context, recipeID string) (models.Recipe, error) {
	if m.getRecipeByIDFn != nil {
		return m.getRecipeByIDFn(ctx, recipeID)
	}
	return models.Recipe{ID: recipeID}, nil
}

func (m *mockRecipeRepository) GetRecipesByUserID(ctx context.Context, userID int64) ([]models.Recipe, error) {
	if m.getRecipesByUserIDFn != nil {
		return m.getRecipesByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockRecipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	if m.createRecipeFn != nil {
		return m.createRecipeFn(ctx, recipe)
	}
	return recipe, nil
}

func (m *mockRecipeRepository) UpdateRecipe(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error) {
	if m.updateRecipeFn != nil {
		return m.updateRecipeFn(ctx, update)
	}
	return models.Recipe{ID: update.ID}, nil
}

func (m *mockRecipeRepository) DeleteRecipe(ctx context.Context, recipeID string) (models.Recipe, error) {
	if m.deleteRecipeFn != nil {
		return m.deleteRecipeFn(ctx, recipeID)
	}
	return models.Recipe{ID: recipeID}, nil
}

// ─────────────────────────────────────────────
// Mock: store.ImageFileStorage
// ─────────────────────────────────────────────

type mockImageFileStorage struct {
	saveImageFn   func(ctx context.Context, file io.Reader, filename string, size int64) (string, error)
	deleteImageFn func(ctx context.Context, imagePath string) error
}

func (m *mockImageFileStorage) SaveImage(ctx context.Context, file io.Reader, filename string, size int64) (string, error) {
	if m.saveImageFn != nil {
		return m.saveImageFn(ctx, file, filename, size)
	}
	return "uploads/images/mock.png", nil
}

func (m *mockImageFileStorage) DeleteImage(ctx context.Context, imagePath string) error {
	if m.deleteImageFn != nil {
		return m.deleteImageFn(ctx, imagePath)
	}
	return nil
}
