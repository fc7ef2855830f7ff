package models

import "time"

// Recipe is a single user-owned recipe record.
//
// The owner reference is bidirectional in representation: Recipe stores
// CreatorID, and the owner's reference set (user_recipes) stores the recipe
// ID. A recipe's existence implies membership in its owner's reference set;
// the two are only ever written together inside one transaction.
type Recipe struct {
	// ID is the server-generated opaque identifier (UUID).
	ID string `json:"id"`

	// Title is the recipe's display title.
	Title string `json:"title"`

	// Description is a short free-text summary.
	Description string `json:"description"`

	// Image is the path of the recipe photo under the uploads prefix.
	Image string `json:"image"`

	// Ingredients is free text, one logical list as submitted.
	Ingredients string `json:"ingredients"`

	// Instructions is free text describing the preparation steps.
	Instructions string `json:"instructions"`

	// CreatorID references the owning user. Always resolves to an existing
	// user while the recipe exists.
	CreatorID int64 `json:"creator"`

	// CreatedAt is the timestamp when the recipe was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last field update.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}

// RecipeUpdate describes a partial update of a recipe. Nil fields are left
// untouched; only non-nil fields become SET clauses of the UPDATE.
type RecipeUpdate struct {
	// ID identifies the recipe being updated.
	ID string `json:"id"`

	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Ingredients  *string `json:"ingredients,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
}
