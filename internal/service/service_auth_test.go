package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evaldesk/evaldesk/internal/config"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/internal/utils"
	"github.com/evaldesk/evaldesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserRepository implements store.UserRepository for unit tests.
// Each method field can be overridden per test case.
type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	getUserByIDFn        func(ctx context.Context, id int64) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	findUserByEmailFn    func(ctx context.Context, email string) (models.User, error)
	getAllUsersFn        func(ctx context.Context) ([]models.User, error)
	updateUserFn         func(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	updatePasswordFn     func(ctx context.Context, id int64, hashedPassword string) error
	deleteUserFn         func(ctx context.Context, id int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFn(ctx, user)
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.getUserByIDFn(ctx, id)
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return m.findUserByUsernameFn(ctx, username)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFn(ctx, email)
}

func (m *mockUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return m.getAllUsersFn(ctx)
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	return m.updateUserFn(ctx, id, update)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	return m.updatePasswordFn(ctx, id, hashedPassword)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	return m.deleteUserFn(ctx, id)
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:       "test-sign-key",
		TokenAlgorithm:     "HS256",
		TokenDuration:      time.Minute,
		ResetTokenDuration: 15 * time.Minute,
	}
}

// storedUser returns an account fixture whose credential hash matches the
// given plaintext password.
func storedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{
		ID:             7,
		Username:       "alice",
		Email:          "alice@example.com",
		FirstName:      "Alice",
		LastName:       "Smith",
		HashedPassword: hash,
	}
}

func TestLogin_Success(t *testing.T) {
	user := storedUser(t, "open-sesame")
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, username string) (models.User, error) {
			require.Equal(t, "alice", username)
			return user, nil
		},
	}

	svc := NewAuthService(repo, testAppConfig(), logger.Nop())
	got, token, err := svc.Login(context.Background(), "alice", "open-sesame")

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, user.ID, token.Claims.UserID)
	assert.Equal(t, models.TokenPurposeAccess, token.Claims.Purpose)
	assert.Equal(t, "alice", token.Claims.Username)
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	user := storedUser(t, "open-sesame")

	unknownRepo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	knownRepo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}

	cfg := testAppConfig()
	_, _, unknownErr := NewAuthService(unknownRepo, cfg, logger.Nop()).Login(context.Background(), "bob", "whatever")
	_, _, wrongPwdErr := NewAuthService(knownRepo, cfg, logger.Nop()).Login(context.Background(), "alice", "wrong")

	// both failure modes must collapse to the same sentinel
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongPwdErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPwdErr.Error())
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAppConfig(), logger.Nop())

	_, _, err := svc.Login(context.Background(), "", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveToken_Success(t *testing.T) {
	user := storedUser(t, "pwd")
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
		getUserByIDFn: func(_ context.Context, id int64) (models.User, error) {
			require.Equal(t, user.ID, id)
			return user, nil
		},
	}

	svc := NewAuthService(repo, testAppConfig(), logger.Nop())
	_, token, err := svc.Login(context.Background(), "alice", "pwd")
	require.NoError(t, err)

	resolved, err := svc.ResolveToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, user.Username, resolved.Username)
}

func TestResolveToken_DeletedAccount(t *testing.T) {
	user := storedUser(t, "pwd")
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
		getUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := NewAuthService(repo, testAppConfig(), logger.Nop())
	_, token, err := svc.Login(context.Background(), "alice", "pwd")
	require.NoError(t, err)

	// a valid token whose subject no longer exists must not authenticate
	_, err = svc.ResolveToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolveToken_GarbageToken(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAppConfig(), logger.Nop())

	_, err := svc.ResolveToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestResolveToken_RejectsResetToken(t *testing.T) {
	user := storedUser(t, "pwd")
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
		getUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return user, nil
		},
	}

	svc := NewAuthService(repo, testAppConfig(), logger.Nop())
	resetToken, err := svc.CreateResetToken(context.Background(), user.Email)
	require.NoError(t, err)

	// a reset token must never pass as an access token
	_, err = svc.ResolveToken(context.Background(), resetToken.SignedString)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCreateResetToken_UnknownEmail(t *testing.T) {
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := NewAuthService(repo, testAppConfig(), logger.Nop())
	_, err := svc.CreateResetToken(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestResetPassword_Success(t *testing.T) {
	user := storedUser(t, "old-password")
	var storedHash string
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			require.Equal(t, user.Email, email)
			return user, nil
		},
		updatePasswordFn: func(_ context.Context, id int64, hashedPassword string) error {
			require.Equal(t, user.ID, id)
			storedHash = hashedPassword
			return nil
		},
	}

	svc := NewAuthService(repo, testAppConfig(), logger.Nop())
	resetToken, err := svc.CreateResetToken(context.Background(), user.Email)
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), resetToken.SignedString, "new-password")
	require.NoError(t, err)

	require.NotEmpty(t, storedHash)
	assert.NotEqual(t, "new-password", storedHash)
	assert.True(t, utils.VerifyPassword("new-password", storedHash))
}

func TestResetPassword_RejectsAccessToken(t *testing.T) {
	user := storedUser(t, "pwd")
	repo := &mockUserRepository{
		findUserByUsernameFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}

	svc := NewAuthService(repo, testAppConfig(), logger.Nop())
	_, accessToken, err := svc.Login(context.Background(), "alice", "pwd")
	require.NoError(t, err)

	// an access token must never drive a password reset
	err = svc.ResetPassword(context.Background(), accessToken.SignedString, "new-password")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAppConfig(), logger.Nop())

	err := svc.ResetPassword(context.Background(), "garbage", "new-password")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPassword_AccountGone(t *testing.T) {
	user := storedUser(t, "pwd")
	calls := 0
	repo := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			calls++
			if calls == 1 {
				return user, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	svc := NewAuthService(repo, testAppConfig(), logger.Nop())
	resetToken, err := svc.CreateResetToken(context.Background(), user.Email)
	require.NoError(t, err)

	err = svc.ResetPassword(context.Background(), resetToken.SignedString, "new-password")
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.ErrNoUserWasFound))
	assert.False(t, errors.Is(err, ErrInvalidResetToken))
}
