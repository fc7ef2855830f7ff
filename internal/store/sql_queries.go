package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/kim-mccallum/recipe-app-api/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash, image)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, name, email, password_hash, image, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, image, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, image, created_at
    FROM users
    WHERE user_id = $1;`

	getAllUsers = `SELECT user_id, name, email, password_hash, image, created_at
    FROM users
    ORDER BY created_at;`

	getUserRecipeRefs = `SELECT recipe_id
    FROM user_recipes
    WHERE user_id = $1;`

	getAllRecipeRefs = `SELECT user_id, recipe_id
    FROM user_recipes;`

	getRecipeByID = `SELECT id, title, description, image, ingredients, instructions, creator_id, created_at, updated_at
    FROM recipes
    WHERE id = $1;`

	getRecipesByUserID = `SELECT r.id, r.title, r.description, r.image, r.ingredients, r.instructions, r.creator_id, r.created_at, r.updated_at
    FROM recipes r
    JOIN user_recipes ur ON ur.recipe_id = r.id
    WHERE ur.user_id = $1
    ORDER BY r.created_at DESC;`

	createRecipe = `INSERT INTO recipes (id, title, description, image, ingredients, instructions, creator_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, title, description, image, ingredients, instructions, creator_id, created_at, updated_at;`

	addRecipeRef = `INSERT INTO user_recipes (user_id, recipe_id)
    VALUES ($1, $2);`

	deleteRecipeRefs = `DELETE FROM user_recipes
    WHERE recipe_id = $1;`

	deleteRecipe = `DELETE FROM recipes
    WHERE id = $1
    RETURNING id, title, description, image, ingredients, instructions, creator_id, created_at, updated_at;`
)

// buildUpdateRecipeQuery dynamically builds an UPDATE over the recipe
// fields present in the partial update. updated_at is always bumped and the
// full updated row is returned so callers get the canonical representation.
func buildUpdateRecipeQuery(update models.RecipeUpdate) (string, []any, error) {
	builder := sq.Update("recipes").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		Suffix("RETURNING id, title, description, image, ingredients, instructions, creator_id, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Ingredients != nil {
		builder = builder.Set("ingredients", *update.Ingredients)
	}
	if update.Instructions != nil {
		builder = builder.Set("instructions", *update.Instructions)
	}

	return builder.ToSql()
}
