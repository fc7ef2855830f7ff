package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kim-mccallum/recipe-app-api/internal/config"
	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/store"
	"github.com/kim-mccallum/recipe-app-api/internal/utils"
	"github.com/kim-mccallum/recipe-app-api/internal/validators"
	"github.com/kim-mccallum/recipe-app-api/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// imageStorage persists optional avatar images uploaded at signup.
	imageStorage store.ImageFileStorage

	// validator enforces account field rules (name, email, password length)
	// before any persistence happens.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, imageStorage store.ImageFileStorage, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		imageStorage:   imageStorage,
		validator:      validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignupUser creates a new user account.
//
// It validates name, email, and password, normalizes the email, hashes the
// password with bcrypt, stores the optional avatar image, and delegates
// persistence to the UserRepository. If the database INSERT fails after the
// avatar was written, the orphaned file is removed again.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided wrapping the concrete validation error.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) SignupUser(ctx context.Context, user models.User, image *models.ImageUpload) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user.Email = NormalizeEmail(user.Email)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Str("func", "authService.SignupUser").Msg("failed to hash password")
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = ""
	user.PasswordHash = string(passwordHash)

	if image != nil {
		imagePath, saveErr := a.imageStorage.SaveImage(ctx, image.File, image.Filename, image.Size)
		if saveErr != nil {
			log.Err(saveErr).Str("func", "authService.SignupUser").Msg("failed to store avatar image")
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, saveErr)
		}
		user.Image = imagePath
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if user.Image != "" {
			if cleanupErr := a.imageStorage.DeleteImage(ctx, user.Image); cleanupErr != nil {
				log.Err(cleanupErr).Str("image", user.Image).Msg("failed to remove avatar after failed signup")
			}
		}

		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.Recipes = []string{}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by normalized email and compares the supplied
// password against the stored bcrypt hash.
//
// A missing account and a wrong password are both reported as
// ErrWrongPassword so that responses cannot be used to probe which emails
// are registered.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrWrongPassword if the account does not exist or the password does
//     not match.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, NormalizeEmail(user.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", user.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrWrongPassword
		}

		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if compareErr := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(user.Password)); compareErr != nil {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// NormalizeEmail lowercases and trims an email address so that lookups and
// the unique index treat addresses case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
