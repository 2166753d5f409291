package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evaldesk/evaldesk/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnsupportedAlgorithm is returned when the configured signing algorithm
// identifier does not name an HMAC signing method.
var ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")

// signingMethod resolves an algorithm identifier (e.g. "HS256") to an HMAC
// signing method. Only HMAC methods are accepted: the application signs with
// a shared secret, and allowing an asymmetric method identifier here would
// open the classic algorithm-confusion hole.
func signingMethod(algorithm string) (*jwt.SigningMethodHMAC, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok || method == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}

	return method, nil
}

// GenerateJWTToken creates a signed JWT carrying the given claim set.
//
// The expiry is computed at encode time as now + tokenDuration and stored as
// an absolute instant, alongside an issued-at claim. The claims' Purpose
// field is preserved so that access and password-reset tokens cannot be
// exchanged for one another.
//
// Parameters:
//
//	claims        - application claim set; UserID is the token subject
//	tokenDuration - how long the token remains valid
//	signKey       - shared secret used for HMAC signing
//	algorithm     - HMAC algorithm identifier (e.g. "HS256")
//
// Returns the token model with its compact signed string, or an error if the
// parameters are invalid or signing fails.
func GenerateJWTToken(claims models.TokenClaims, tokenDuration time.Duration, signKey, algorithm string) (models.Token, error) {
	if tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT token")
	}

	method, err := signingMethod(algorithm)
	if err != nil {
		return models.Token{}, err
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))

	token := jwt.NewWithClaims(method, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Algorithm check: the token header must declare exactly the expected
//     algorithm (jwt.WithValidMethods), rejecting algorithm confusion
//   - Expiration: the exp claim is required and must be in the future
//   - Subject presence: a zero user identifier is rejected
//
// On any failure the returned error is non-nil and no claim of the token may
// be trusted.
func ValidateAndParseJWTToken(tokenString, signKey, algorithm string) (models.Token, error) {
	if _, err := signingMethod(algorithm); err != nil {
		return models.Token{}, err
	}

	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{algorithm}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == 0 {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token string from an Authorization header
// value of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
