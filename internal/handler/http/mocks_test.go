package http

import (
	"context"
	"testing"

	"github.com/kim-mccallum/recipe-app-api/internal/config"
	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/service"
	"github.com/kim-mccallum/recipe-app-api/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupUserFn  func(ctx context.Context, user models.User, image *models.ImageUpload) (models.User, error)
	loginFn       func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignupUser(ctx context.Context, user models.User, image *models.ImageUpload) (models.User, error) {
	return m.signupUserFn(ctx, user, image)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	getUsersFn func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return m.getUsersFn(ctx)
}

// ─────────────────────────────────────────────
// Mock RecipeService
// ─────────────────────────────────────────────

type mockRecipeService struct {
	getRecipeByIDFn    func(ctx context.Context, recipeID string) (models.Recipe, error)
	getRecipesByUserFn func(ctx context.Context, userID int64) ([]models.Recipe, error)
	createRecipeFn     func(ctx context.Context, recipe models.Recipe, image *models.ImageUpload) (models.Recipe, error)
	updateRecipeFn     func(ctx context.Context, userID int64, update models.RecipeUpdate) (models.Recipe, error)
	deleteRecipeFn     func(ctx context.Context, userID int64, recipeID string) error
}

func (m *mockRecipeService) GetRecipeByID(ctx context.Context, recipeID string) (models.Recipe, error) {
	return m.getRecipeByIDFn(ctx, recipeID)
}

func (m *mockRecipeService) GetRecipesByUser(ctx context.Context, userID int64) ([]models.Recipe, error) {
	return m.getRecipesByUserFn(ctx, userID)
}

func (m *mockRecipeService) CreateRecipe(ctx context.Context, recipe models.Recipe, image *models.ImageUpload) (models.Recipe, error) {
	return m.createRecipeFn(ctx, recipe, image)
}

func (m *mockRecipeService) UpdateRecipe(ctx context.Context, userID int64, update models.RecipeUpdate) (models.Recipe, error) {
	return m.updateRecipeFn(ctx, userID, update)
}

func (m *mockRecipeService) DeleteRecipe(ctx context.Context, userID int64, recipeID string) error {
	return m.deleteRecipeFn(ctx, userID, recipeID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler wired to the given service mocks. Nil
// mocks are fine for handlers the test never reaches.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	cfg := &config.StructuredConfig{}
	cfg.Storage.Files.UploadsDir = t.TempDir()
	return NewHandler(svcs, cfg, logger.Nop())
}
