package store

import "github.com/kim-mccallum/recipe-app-api/internal/logger"

// Storages bundles every persistence backend the service layer depends on.
type Storages struct {
	UserRepository   UserRepository
	RecipeRepository RecipeRepository
	ImageFileStorage ImageFileStorage
}

// NewStorages wires the PostgreSQL repositories and the image file store
// into a single container.
func NewStorages(db *DB, uploadsDir string, log *logger.Logger) (*Storages, error) {
	images, err := NewImageFileStorage(uploadsDir, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		RecipeRepository: NewRecipeRepository(db, log),
		ImageFileStorage: images,
	}, nil
}
