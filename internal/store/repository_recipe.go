package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/models"
)

// recipeRepository is the PostgreSQL-backed implementation of
// [RecipeRepository]. It executes all recipe CRUD operations against the
// "recipes" table and keeps the "user_recipes" reference set in step with it.
//
// CreateRecipe and DeleteRecipe touch both tables and therefore run inside a
// single database transaction: either the recipe row and its owner reference
// are both written, or neither is.
type recipeRepository struct {
	*DB
	logger *logger.Logger
}

// NewRecipeRepository constructs a [RecipeRepository] backed by the provided
// database connection and logger.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		DB:     db,
		logger: logger,
	}
}

// GetRecipeByID retrieves a single recipe by its identifier.
//
// Returns [ErrRecipeNotFound] when no such recipe exists.
func (p *recipeRepository) GetRecipeByID(ctx context.Context, recipeID string) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	var recipe models.Recipe
	row := p.DB.QueryRowContext(ctx, getRecipeByID, recipeID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "recipeRepository.GetRecipeByID").
			Str("recipe_id", recipeID).
			Msg("failed to execute query for getting recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := scanRecipe(row, &recipe); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(err).
			Str("func", "recipeRepository.GetRecipeByID").
			Str("recipe_id", recipeID).
			Msg("failed to scan recipe row")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return recipe, nil
}

// GetRecipesByUserID retrieves every recipe referenced by the given user,
// newest first.
//
// Returns an empty slice when the user owns no recipes.
func (p *recipeRepository) GetRecipesByUserID(ctx context.Context, userID int64) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, getRecipesByUserID, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "recipeRepository.GetRecipesByUserID").
			Int64("user_id", userID).
			Msg("failed to execute query for getting user recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0, 20)

	for rows.Next() {
		var recipe models.Recipe

		if scanErr := scanRecipe(rows, &recipe); scanErr != nil {
			log.Err(scanErr).
				Str("func", "recipeRepository.GetRecipesByUserID").
				Int64("user_id", userID).
				Msg("failed to scan recipe row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		recipes = append(recipes, recipe)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "recipeRepository.GetRecipesByUserID").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return recipes, nil
}

// CreateRecipe persists a new recipe row and the owner's reference to it in
// a single transaction. The returned [models.Recipe] carries the
// server-assigned CreatedAt and UpdatedAt timestamps.
//
// A reference row without a recipe row (or the reverse) can never be
// observed: the transaction is rolled back if either INSERT fails.
func (p *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	var saved models.Recipe

	err := p.DB.withinTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createRecipe,
			recipe.ID,
			recipe.Title,
			recipe.Description,
			recipe.Image,
			recipe.Ingredients,
			recipe.Instructions,
			recipe.CreatorID,
		)
		if scanErr := scanRecipe(row, &saved); scanErr != nil {
			// RETURNING yields no row when the INSERT stored nothing
			if errors.Is(scanErr, sql.ErrNoRows) {
				log.Error().
					Str("func", "recipeRepository.CreateRecipe").
					Str("recipe_id", recipe.ID).
					Int64("creator_id", recipe.CreatorID).
					Msg("insert returned no row")
				return ErrRecipeNotSaved
			}

			log.Err(scanErr).
				Str("func", "recipeRepository.CreateRecipe").
				Str("recipe_id", recipe.ID).
				Int64("creator_id", recipe.CreatorID).
				Msg("failed to insert recipe")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		if _, execErr := tx.ExecContext(ctx, addRecipeRef, recipe.CreatorID, recipe.ID); execErr != nil {
			log.Err(execErr).
				Str("func", "recipeRepository.CreateRecipe").
				Str("recipe_id", recipe.ID).
				Int64("creator_id", recipe.CreatorID).
				Msg("failed to insert recipe reference")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		return nil
	})
	if err != nil {
		return models.Recipe{}, err
	}

	log.Info().
		Str("func", "recipeRepository.CreateRecipe").
		Str("recipe_id", saved.ID).
		Int64("creator_id", saved.CreatorID).
		Msg("successfully created recipe")

	return saved, nil
}

// UpdateRecipe applies a partial update to a recipe. Only the non-nil fields
// of the update are written; updated_at is always bumped.
//
// Returns the full updated row, or [ErrRecipeNotFound] when the target
// recipe does not exist.
func (p *recipeRepository) UpdateRecipe(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecipeQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "recipeRepository.UpdateRecipe").
			Str("recipe_id", update.ID).
			Msg("failed to build update query")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Recipe
	row := p.DB.QueryRowContext(ctx, query, args...)

	if scanErr := scanRecipe(row, &updated); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "recipeRepository.UpdateRecipe").
				Str("recipe_id", update.ID).
				Msg("recipe not found")
			return models.Recipe{}, ErrRecipeNotFound
		}

		log.Err(scanErr).
			Str("func", "recipeRepository.UpdateRecipe").
			Str("recipe_id", update.ID).
			Msg("failed to execute update query")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	log.Info().
		Str("func", "recipeRepository.UpdateRecipe").
		Str("recipe_id", updated.ID).
		Msg("successfully updated recipe")

	return updated, nil
}

// DeleteRecipe removes a recipe row together with every reference to it in
// a single transaction.
//
// The deleted row is returned so that callers can clean up derived
// resources (the stored image file). Returns [ErrRecipeNotFound] when the
// target recipe does not exist; in that case no reference rows are removed
// either, since the transaction is rolled back.
func (p *recipeRepository) DeleteRecipe(ctx context.Context, recipeID string) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	var deleted models.Recipe

	err := p.DB.withinTransaction(ctx, func(tx *sql.Tx) error {
		if _, execErr := tx.ExecContext(ctx, deleteRecipeRefs, recipeID); execErr != nil {
			log.Err(execErr).
				Str("func", "recipeRepository.DeleteRecipe").
				Str("recipe_id", recipeID).
				Msg("failed to delete recipe references")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		row := tx.QueryRowContext(ctx, deleteRecipe, recipeID)
		if scanErr := scanRecipe(row, &deleted); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return ErrRecipeNotFound
			}

			log.Err(scanErr).
				Str("func", "recipeRepository.DeleteRecipe").
				Str("recipe_id", recipeID).
				Msg("failed to delete recipe")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}

		return nil
	})
	if err != nil {
		return models.Recipe{}, err
	}

	log.Info().
		Str("func", "recipeRepository.DeleteRecipe").
		Str("recipe_id", recipeID).
		Msg("successfully deleted recipe")

	return deleted, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner, recipe *models.Recipe) error {
	return row.Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Description,
		&recipe.Image,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.CreatorID,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
}
