// SPDX-License-Identifier: Apache-2.0

package config

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// Defaults applied after merging all configuration sources.
const (
	// DefaultTokenAlgorithm is the HMAC algorithm used when none is
	// configured.
	DefaultTokenAlgorithm = "HS256"

	// DefaultTokenDuration keeps access tokens deliberately short-lived;
	// callers must not cache a resolved identity beyond a single request.
	DefaultTokenDuration = time.Minute

	// DefaultResetTokenDuration bounds the password-reset window.
	DefaultResetTokenDuration = 15 * time.Minute

	// DefaultHTTPAddress is the listen address used when none is configured.
	DefaultHTTPAddress = ":8080"

	// DefaultRequestTimeout bounds a single inbound request.
	DefaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills zero-valued fields of the merged config.
//
// When no token sign key is supplied, a fresh random 32-byte URL-safe secret
// is generated. This mirrors the historical behavior of the system: every
// process start invalidates all previously issued, not-yet-expired tokens,
// forcing re-login after a deploy. Operators who want tokens to survive
// restarts must configure a stable APP_TOKEN_SIGN_KEY.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = randomSignKey()
	}
	if cfg.App.TokenAlgorithm == "" {
		cfg.App.TokenAlgorithm = DefaultTokenAlgorithm
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.ResetTokenDuration == 0 {
		cfg.App.ResetTokenDuration = DefaultResetTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// randomSignKey returns a fresh random 32-byte secret in URL-safe base64.
func randomSignKey() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		// crypto/rand never fails on supported platforms; a failure here
		// means the process cannot do anything cryptographic at all.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(key)
}
