// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/service"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn            func(ctx context.Context, username, password string) (models.User, models.Token, error)
	resolveTokenFn     func(ctx context.Context, tokenString string) (models.User, error)
	createResetTokenFn func(ctx context.Context, email string) (models.Token, error)
	resetPasswordFn    func(ctx context.Context, tokenString, newPassword string) error
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, models.Token, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) ResolveToken(ctx context.Context, tokenString string) (models.User, error) {
	return m.resolveTokenFn(ctx, tokenString)
}

func (m *mockAuthService) CreateResetToken(ctx context.Context, email string) (models.Token, error) {
	return m.createResetTokenFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	return m.resetPasswordFn(ctx, tokenString, newPassword)
}

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// loginForm builds a form-encoded login request body.
func loginForm(username, password string) *strings.Reader {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	return strings.NewReader(form.Encode())
}

func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, password string) (models.User, models.Token, error) {
			require.Equal(t, "alice", username)
			require.Equal(t, "open-sesame", password)
			user := models.User{ID: 7, Username: "alice", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"}
			return user, stubToken("signed.jwt.token"), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/token", loginForm("alice", "open-sesame"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "Alice", resp.FirstName)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login/token", loginForm("alice", "wrong"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Incorrect username or password", resp.Message)
}

func TestResetPassword_Success(t *testing.T) {
	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, tokenString, newPassword string) error {
			require.Equal(t, "reset.jwt.token", tokenString)
			require.Equal(t, "new-password", newPassword)
			return nil
		},
	}

	body := `{"token":"reset.jwt.token","new_password":"new-password"}`
	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password/reset", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, _, _ string) error {
			return service.ErrInvalidResetToken
		},
	}

	body := `{"token":"bogus","new_password":"new-password"}`
	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password/reset", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.DetailResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Invalid password reset token.", resp.Detail)
}

func TestResetPassword_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password/reset", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.resetPassword(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateResetToken_Success(t *testing.T) {
	auth := &mockAuthService{
		createResetTokenFn: func(_ context.Context, email string) (models.Token, error) {
			require.Equal(t, "alice@example.com", email)
			return stubToken("reset.jwt.token"), nil
		},
	}

	body := `{"email":"alice@example.com"}`
	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password/reset-token", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createResetToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ResetTokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "reset.jwt.token", resp.ResetToken)
}

func TestCreateResetToken_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		createResetTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, store.ErrNoUserWasFound
		},
	}

	body := `{"email":"nobody@example.com"}`
	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password/reset-token", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.createResetToken(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.DetailResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Record not found.", resp.Detail)
}
