package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/store"
	"github.com/kim-mccallum/recipe-app-api/internal/utils"
	"github.com/kim-mccallum/recipe-app-api/internal/validators"
	"github.com/kim-mccallum/recipe-app-api/models"
)

// recipeService is the concrete implementation of RecipeService. It
// orchestrates recipe CRUD: input validation, creator existence checks,
// ownership enforcement, image storage, and delegation to the repository,
// which performs the paired recipe/reference writes transactionally.
type recipeService struct {
	recipeRepository store.RecipeRepository
	userRepository   store.UserRepository
	imageStorage     store.ImageFileStorage
	validator        validators.Validator
	idGenerator      *utils.UUIDGenerator
	logger           *logger.Logger
}

// NewRecipeService constructs a RecipeService wired to the given storages.
func NewRecipeService(storages *store.Storages, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: storages.RecipeRepository,
		userRepository:   storages.UserRepository,
		imageStorage:     storages.ImageFileStorage,
		validator:        validators.NewRecipeValidator(),
		idGenerator:      utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

// GetRecipeByID returns a single recipe.
//
// Storage-level "not found" (store.ErrRecipeNotFound) passes through for the
// transport layer to map.
func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID string) (models.Recipe, error) {
	if recipeID == "" {
		return models.Recipe{}, ErrInvalidDataProvided
	}

	return s.recipeRepository.GetRecipeByID(ctx, recipeID)
}

// GetRecipesByUser returns every recipe owned by the given user, newest
// first. The user must exist: store.ErrNoUserWasFound passes through when
// it does not.
//
// Resolution is an explicit two-step fetch-then-join: the user's reference
// set first, then the recipe rows it names. An empty reference set yields
// store.ErrRecipeNotFound, so the listing answers 404 rather than an empty
// page.
func (s *recipeService) GetRecipesByUser(ctx context.Context, userID int64) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	if _, err := s.userRepository.FindUserByID(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("recipe listing for unknown user")
		return nil, err
	}

	refs, err := s.userRepository.GetRecipeRefs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, fmt.Errorf("user %d owns no recipes: %w", userID, store.ErrRecipeNotFound)
	}

	return s.recipeRepository.GetRecipesByUserID(ctx, userID)
}

// CreateRecipe validates and persists a new recipe for the authenticated
// creator.
//
// The recipe row and the creator's reference to it are written in one
// database transaction by the repository. The optional image is stored
// before the transaction; if the transaction then fails, the stored file is
// removed so no orphaned upload remains.
func (s *recipeService) CreateRecipe(ctx context.Context, recipe models.Recipe, image *models.ImageUpload) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, recipe); err != nil {
		log.Error().Err(err).Int64("creator_id", recipe.CreatorID).Msg("invalid recipe data provided")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// the creator must exist before anything is written
	if _, err := s.userRepository.FindUserByID(ctx, recipe.CreatorID); err != nil {
		log.Err(err).Int64("creator_id", recipe.CreatorID).Msg("recipe creation for unknown user")
		return models.Recipe{}, err
	}

	if image != nil {
		imagePath, saveErr := s.imageStorage.SaveImage(ctx, image.File, image.Filename, image.Size)
		if saveErr != nil {
			log.Err(saveErr).Str("func", "recipeService.CreateRecipe").Msg("failed to store recipe image")
			return models.Recipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, saveErr)
		}
		recipe.Image = imagePath
	}

	recipe.ID = s.idGenerator.Generate()

	saved, err := s.recipeRepository.CreateRecipe(ctx, recipe)
	if err != nil {
		if recipe.Image != "" {
			if cleanupErr := s.imageStorage.DeleteImage(ctx, recipe.Image); cleanupErr != nil {
				log.Err(cleanupErr).Str("image", recipe.Image).Msg("failed to remove image after failed recipe creation")
			}
		}

		log.Err(err).Int64("creator_id", recipe.CreatorID).Msg("recipe creation ended with error")
		return models.Recipe{}, fmt.Errorf("recipe creation ended with error: %w", err)
	}

	return saved, nil
}

// UpdateRecipe applies a partial update to a recipe owned by userID.
//
// Returns ErrNotRecipeOwner when the recipe exists but belongs to another
// user; store.ErrRecipeNotFound passes through when it does not exist.
func (s *recipeService) UpdateRecipe(ctx context.Context, userID int64, update models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Str("recipe_id", update.ID).Msg("invalid recipe update provided")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := s.checkOwnership(ctx, userID, update.ID); err != nil {
		return models.Recipe{}, err
	}

	updated, err := s.recipeRepository.UpdateRecipe(ctx, update)
	if err != nil {
		log.Err(err).Str("recipe_id", update.ID).Msg("recipe update ended with error")
		return models.Recipe{}, err
	}

	return updated, nil
}

// DeleteRecipe removes a recipe owned by userID together with the owner's
// reference to it, then removes the stored image in the background. The
// image removal is best-effort: the recipe is already gone, a leftover file
// only costs disk space.
func (s *recipeService) DeleteRecipe(ctx context.Context, userID int64, recipeID string) error {
	log := logger.FromContext(ctx)

	if recipeID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.checkOwnership(ctx, userID, recipeID); err != nil {
		return err
	}

	deleted, err := s.recipeRepository.DeleteRecipe(ctx, recipeID)
	if err != nil {
		log.Err(err).Str("recipe_id", recipeID).Msg("recipe deletion ended with error")
		return err
	}

	if deleted.Image != "" {
		// detached from the request: its context ends with the response
		go func(imagePath string) {
			cleanupCtx := s.logger.WithContext(context.Background())
			if cleanupErr := s.imageStorage.DeleteImage(cleanupCtx, imagePath); cleanupErr != nil {
				s.logger.Err(cleanupErr).Str("image", imagePath).Msg("failed to remove image of deleted recipe")
			}
		}(deleted.Image)
	}

	return nil
}

// checkOwnership fetches the recipe and verifies that userID created it.
func (s *recipeService) checkOwnership(ctx context.Context, userID int64, recipeID string) error {
	log := logger.FromContext(ctx)

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if !errors.Is(err, store.ErrRecipeNotFound) {
			log.Err(err).Str("recipe_id", recipeID).Msg("ownership check failed")
		}
		return err
	}

	if recipe.CreatorID != userID {
		log.Warn().
			Str("recipe_id", recipeID).
			Int64("creator_id", recipe.CreatorID).
			Int64("user_id", userID).
			Msg("rejected modification of foreign recipe")
		return ErrNotRecipeOwner
	}

	return nil
}
