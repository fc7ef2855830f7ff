// Package store contains the persistence layer: PostgreSQL repositories for
// users, recipes, and the user→recipe reference set, plus a file-system
// store for uploaded images.
//
// Recipe creation and deletion write the "recipes" and "user_recipes"
// tables inside one transaction, so a recipe and its owner's reference are
// always observed together or not at all.
package store
