package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evaldesk/evaldesk/internal/config"
	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/internal/utils"
	"github.com/evaldesk/evaldesk/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt credentials, mints and resolves HMAC-signed JWTs, and
// drives the password-reset flow using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// tokenSignKey is the shared secret used to sign and verify every JWT.
	tokenSignKey string

	// tokenAlgorithm is the HMAC algorithm identifier pinned for both
	// signing and verification.
	tokenAlgorithm string

	// tokenDuration controls how long a newly issued access token remains
	// valid.
	tokenDuration time.Duration

	// resetTokenDuration controls how long a password-reset token remains
	// valid.
	resetTokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     userRepository,
		tokenSignKey:       cfg.TokenSignKey,
		tokenAlgorithm:     cfg.TokenAlgorithm,
		tokenDuration:      cfg.TokenDuration,
		resetTokenDuration: cfg.ResetTokenDuration,
		logger:             logger,
	}
}

// Login authenticates a username/password pair and issues an access token.
//
// An unknown username is made indistinguishable from a wrong password: both
// paths return ErrInvalidCredentials, and the bcrypt comparison runs against
// the stored hash only when an account exists. Neither the plaintext
// password nor the stored hash is ever logged.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("func", "*authService.Login").Msg("empty username or password")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("func", "*authService.Login").Str("username", username).Msg("user lookup failed")
		}
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(password, user.HashedPassword) {
		log.Warn().Str("func", "*authService.Login").Str("username", username).Msg("password verification failed")
		return models.User{}, models.Token{}, ErrInvalidCredentials
	}

	token, err := a.issueToken(user, models.TokenPurposeAccess, a.tokenDuration)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("id", user.ID).Msg("access token signing failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return user, token, nil
}

// ResolveToken validates an access token and re-fetches the account it
// names.
//
// The returned user is always the live database record, never the token's
// display claims. Every failure mode collapses to ErrUnauthenticated: a bad
// signature, an expired token, a reset-purpose token presented as an access
// token, and a subject account that has since been deleted.
func (a *authService) ResolveToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenAlgorithm)
	if err != nil {
		return models.User{}, ErrUnauthenticated
	}

	if token.Claims.Purpose != "" && token.Claims.Purpose != models.TokenPurposeAccess {
		log.Warn().Str("func", "*authService.ResolveToken").Str("purpose", token.Claims.Purpose).Msg("token purpose is not access")
		return models.User{}, ErrUnauthenticated
	}

	user, err := a.userRepository.GetUserByID(ctx, token.Claims.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("func", "*authService.ResolveToken").Int64("id", token.Claims.UserID).Msg("subject lookup failed")
		}
		return models.User{}, ErrUnauthenticated
	}

	return user, nil
}

// CreateResetToken issues a password-reset token for the account registered
// under email.
//
// The token carries the reset purpose and the account email; it is rejected
// by ResolveToken and accepted only by ResetPassword. Returns
// store.ErrNoUserWasFound if no account matches the email.
func (a *authService) CreateResetToken(ctx context.Context, email string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateResetToken").Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	token, err := a.issueToken(user, models.TokenPurposePasswordReset, a.resetTokenDuration)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateResetToken").Int64("id", user.ID).Msg("reset token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResetPassword validates a reset token and replaces the credential of the
// account it references.
//
// The token must verify and carry the reset purpose, otherwise
// ErrInvalidResetToken is returned. A valid token referencing an account
// that no longer exists yields store.ErrNoUserWasFound, a distinct outcome
// from a bad token. The new password is bcrypt-hashed before storage.
func (a *authService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenAlgorithm)
	if err != nil {
		return ErrInvalidResetToken
	}

	if token.Claims.Purpose != models.TokenPurposePasswordReset {
		log.Warn().Str("func", "*authService.ResetPassword").Str("purpose", token.Claims.Purpose).Msg("token purpose is not password_reset")
		return ErrInvalidResetToken
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Claims.Email)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Int64("id", user.ID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Int64("id", user.ID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// issueToken signs a JWT for user with the given purpose and lifetime. The
// display claims are a client convenience; only the subject identifier is
// trust-bearing.
func (a *authService) issueToken(user models.User, purpose string, duration time.Duration) (models.Token, error) {
	claims := models.TokenClaims{
		UserID:    user.ID,
		Purpose:   purpose,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}

	return utils.GenerateJWTToken(claims, duration, a.tokenSignKey, a.tokenAlgorithm)
}
