package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Setenv("FIREBASE_PROJECT_ID", "test-project")
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "/tmp/creds.json")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("CLIENT_URL", "http://localhost:3000")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "test-project", cfg.FirebaseProjectID)
	assert.Equal(t, "http://localhost:3000", cfg.ClientURL)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "release")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestLoadConfigRequiresProjectID(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FIREBASE_PROJECT_ID", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FIREBASE_PROJECT_ID")
}

func TestLoadConfigRequiresCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOOGLE_APPLICATION_CREDENTIALS", "")

	_, err := LoadConfig()
	require.Error(t, err)

	// Either credentials source satisfies the requirement.
	t.Setenv("FIREBASE_SERVICE_ACCOUNT_JSON_BASE64", "eyJmYWtlIjogdHJ1ZX0=")
	viper.Reset()
	_, err = LoadConfig()
	assert.NoError(t, err)
}

func TestLoadConfigRequiresClientURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CLIENT_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLIENT_URL")
}
