package session_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/azwarden/internal/session"
	"github.com/systmms/azwarden/tests/testutil"
)

func TestFromEnvironment(t *testing.T) {
	testutil.UnsetEnv(t, session.RecognizedEnvVars()...)
	testutil.SetupTestEnv(t, map[string]string{
		session.EnvSubscriptionID: "ea42f556-5106-4743-99b0-c129bfa71a47",
		session.EnvTenantID:       "tenant",
	})

	cfg := session.FromEnvironment()

	assert.Equal(t, "ea42f556-5106-4743-99b0-c129bfa71a47", cfg.Get(session.EnvSubscriptionID))
	assert.Equal(t, "tenant", cfg.Get(session.EnvTenantID))
	assert.False(t, cfg.IsSet(session.EnvClientID))
	assert.Empty(t, cfg.Get(session.EnvClientID))
}

func TestFromEnvironmentEmptyValueIsUnset(t *testing.T) {
	testutil.UnsetEnv(t, session.RecognizedEnvVars()...)
	testutil.SetupTestEnv(t, map[string]string{
		session.EnvClientID:       "",
		session.EnvSubscriptionID: "sub1",
	})

	cfg := session.FromEnvironment()

	// `export AZURE_CLIENT_ID=` must not count as a configured client id,
	// otherwise it could drag selection into a partial service principal.
	assert.False(t, cfg.IsSet(session.EnvClientID))
	assert.True(t, cfg.IsSet(session.EnvSubscriptionID))
}

func TestFromEnvironmentIsASnapshot(t *testing.T) {
	testutil.UnsetEnv(t, session.RecognizedEnvVars()...)
	testutil.SetupTestEnv(t, map[string]string{
		session.EnvSubscriptionID: "before",
	})

	cfg := session.FromEnvironment()
	require.NoError(t, os.Setenv(session.EnvSubscriptionID, "after"))

	assert.Equal(t, "before", cfg.Get(session.EnvSubscriptionID))
}
