package service

import (
	"context"
	"fmt"

	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/store"
	"github.com/kim-mccallum/recipe-app-api/models"
)

// userService is the concrete implementation of UserService. It serves the
// public user directory: every account together with its recipe references.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUsers returns every registered user with their recipe reference sets.
// The returned models still carry password hashes; callers serving them to
// clients must strip credentials first (see [models.User.Public]).
func (u *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.GetAllUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "userService.GetUsers").Msg("failed to get users")
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}
