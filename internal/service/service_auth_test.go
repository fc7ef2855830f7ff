// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/kim-mccallum/recipe-app-api/internal/config"
	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/store"
	"github.com/kim-mccallum/recipe-app-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(users *mockUserRepository, images *mockImageFileStorage) AuthService {
	cfg := config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "recipe-app-test",
		TokenDuration: time.Hour,
	}
	return NewAuthService(users, images, cfg, logger.Nop())
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ─────────────────────────────────────────────
// SignupUser
// ─────────────────────────────────────────────

func TestSignupUser_Success(t *testing.T) {
	var captured models.User
	users := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			captured = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(users, &mockImageFileStorage{})

	created, err := svc.SignupUser(context.Background(), models.User{
		Name:     "Maya",
		Email:    "  Maya@Example.COM ",
		Password: "secret-password",
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "maya@example.com", captured.Email, "email must be normalized before persistence")
	assert.Empty(t, captured.Password, "plaintext password must not reach the repository")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(captured.PasswordHash), []byte("secret-password")))
	assert.NotNil(t, created.Recipes)
	assert.Empty(t, created.Recipes, "a fresh account owns no recipes")
}

func TestSignupUser_ValidationFailures(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockImageFileStorage{})
	ctx := context.Background()

	tests := []struct {
		name string
		user models.User
	}{
		{name: "Missing name", user: models.User{Email: "a@b.com", Password: "longenough"}},
		{name: "Bad email", user: models.User{Name: "Maya", Email: "nope", Password: "longenough"}},
		{name: "Short password", user: models.User{Name: "Maya", Email: "a@b.com", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignupUser(ctx, tt.user, nil)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestSignupUser_DuplicateEmail(t *testing.T) {
	users := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(users, &mockImageFileStorage{})

	_, err := svc.SignupUser(context.Background(), models.User{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "secret-password",
	}, nil)

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestSignupUser_RemovesAvatarWhenCreateFails(t *testing.T) {
	var deletedPath string
	users := &mockUserRepository{
		createUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	images := &mockImageFileStorage{
		saveImageFn: func(ctx context.Context, _ io.Reader, filename string, size int64) (string, error) {
			return "uploads/images/avatar.png", nil
		},
		deleteImageFn: func(ctx context.Context, imagePath string) error {
			deletedPath = imagePath
			return nil
		},
	}
	svc := newTestAuthService(users, images)

	_, err := svc.SignupUser(context.Background(), models.User{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "secret-password",
	}, &models.ImageUpload{Filename: "avatar.png", Size: 10})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	assert.Equal(t, "uploads/images/avatar.png", deletedPath, "orphaned avatar must be removed")
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	hash := hashOf(t, "secret-password")
	users := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			assert.Equal(t, "maya@example.com", email)
			return models.User{UserID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(users, &mockImageFileStorage{})

	found, err := svc.Login(context.Background(), models.User{Email: "Maya@Example.com", Password: "secret-password"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserID)
}

func TestLogin_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	hash := hashOf(t, "secret-password")

	unknown := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	wrongPassword := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: hash}, nil
		},
	}

	_, errUnknown := newTestAuthService(unknown, &mockImageFileStorage{}).
		Login(context.Background(), models.User{Email: "nobody@example.com", Password: "whatever-password"})
	_, errWrong := newTestAuthService(wrongPassword, &mockImageFileStorage{}).
		Login(context.Background(), models.User{Email: "maya@example.com", Password: "not-the-password"})

	assert.ErrorIs(t, errUnknown, ErrWrongPassword)
	assert.ErrorIs(t, errWrong, ErrWrongPassword)
	assert.Equal(t, errUnknown.Error(), errWrong.Error(), "responses must not reveal whether the email exists")
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockImageFileStorage{})

	_, err := svc.Login(context.Background(), models.User{Email: "", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLogin_RepositoryError(t *testing.T) {
	users := &mockUserRepository{
		findUserByEmailFn: func(ctx context.Context, email string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}
	svc := newTestAuthService(users, &mockImageFileStorage{})

	_, err := svc.Login(context.Background(), models.User{Email: "maya@example.com", Password: "secret-password"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrWrongPassword, "infrastructure failures must not masquerade as bad credentials")
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestCreateAndParseToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockImageFileStorage{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_InvalidInputs(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockImageFileStorage{})
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	// token signed with a different key
	otherCfg := config.Auth{TokenSignKey: "other-key", TokenIssuer: "recipe-app-test", TokenDuration: time.Hour}
	other := NewAuthService(&mockUserRepository{}, &mockImageFileStorage{}, otherCfg, logger.Nop())
	foreign, err := other.CreateToken(ctx, models.User{UserID: 1})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
