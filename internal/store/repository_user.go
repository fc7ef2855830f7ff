package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table and
// reads the per-user recipe reference set from "user_recipes".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash, user.Image)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.Image, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// (already normalized) address.
//
// Returns [ErrNoUserWasFound] when no such user exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Image, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByID retrieves the user record with the given primary key.
//
// Returns [ErrNoUserWasFound] when no such user exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Image, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// GetAllUsers returns every registered user together with the recipe
// reference set each user owns.
//
// Two queries are issued: one over "users" and one over "user_recipes";
// the reference rows are merged into [models.User.Recipes] in memory.
// Returns an empty slice when no users are registered.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getAllUsers)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*userRepository.GetAllUsers").
			Msg("failed to execute query for getting all users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	users := make([]models.User, 0, 50)
	indexByID := make(map[int64]int)

	for rows.Next() {
		var user models.User

		scanErr := rows.Scan(
			&user.UserID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Image,
			&user.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*userRepository.GetAllUsers").
				Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		user.Recipes = []string{}
		indexByID[user.UserID] = len(users)
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*userRepository.GetAllUsers").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	refRows, queryErr := r.db.QueryContext(ctx, getAllRecipeRefs)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*userRepository.GetAllUsers").
			Msg("failed to execute query for getting recipe references")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer refRows.Close()

	for refRows.Next() {
		var userID int64
		var recipeID string

		if scanErr := refRows.Scan(&userID, &recipeID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*userRepository.GetAllUsers").
				Msg("failed to scan recipe reference row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if idx, ok := indexByID[userID]; ok {
			users[idx].Recipes = append(users[idx].Recipes, recipeID)
		}
	}

	if rowsErr := refRows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*userRepository.GetAllUsers").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// GetRecipeRefs returns the recipe IDs referenced by the given user.
//
// Returns an empty slice when the user owns no recipes.
func (r *userRepository) GetRecipeRefs(ctx context.Context, userID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.db.QueryContext(ctx, getUserRecipeRefs, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "*userRepository.GetRecipeRefs").
			Int64("user_id", userID).
			Msg("failed to execute query for getting recipe references")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	refs := make([]string, 0, 10)

	for rows.Next() {
		var recipeID string

		if scanErr := rows.Scan(&recipeID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*userRepository.GetRecipeRefs").
				Int64("user_id", userID).
				Msg("failed to scan recipe reference row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		refs = append(refs, recipeID)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*userRepository.GetRecipeRefs").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return refs, nil
}
