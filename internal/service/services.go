package service

import (
	"github.com/kim-mccallum/recipe-app-api/internal/config"
	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/store"
)

type Services struct {
	AuthService   AuthService
	UserService   UserService
	RecipeService RecipeService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:   NewAuthService(storages.UserRepository, storages.ImageFileStorage, cfg.Auth, logger),
		UserService:   NewUserService(storages.UserRepository, logger),
		RecipeService: NewRecipeService(storages, logger),
	}
}
