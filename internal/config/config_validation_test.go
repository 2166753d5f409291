package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultTokenAlgorithm, cfg.App.TokenAlgorithm)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultResetTokenDuration, cfg.App.ResetTokenDuration)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.NotEmpty(t, cfg.App.TokenSignKey)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.App.TokenSignKey = "configured-key"
	cfg.App.TokenAlgorithm = "HS512"
	cfg.App.TokenDuration = 2 * time.Hour
	cfg.Server.HTTPAddress = ":9090"

	cfg.applyDefaults()

	assert.Equal(t, "configured-key", cfg.App.TokenSignKey)
	assert.Equal(t, "HS512", cfg.App.TokenAlgorithm)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
}

func TestApplyDefaults_RandomSignKeyPerProcess(t *testing.T) {
	first := &StructuredConfig{}
	second := &StructuredConfig{}

	first.applyDefaults()
	second.applyDefaults()

	// an unset sign key yields a fresh secret, so each generated key differs
	require.NotEmpty(t, first.App.TokenSignKey)
	assert.NotEqual(t, first.App.TokenSignKey, second.App.TokenSignKey)
}

func TestValidate_RequiresDSN(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	err := cfg.validate()
	require.ErrorIs(t, err, ErrInvalidStorageConfigs)

	cfg.Storage.DB.DSN = "postgres://localhost:5432/evaldesk"
	assert.NoError(t, cfg.validate())
}
