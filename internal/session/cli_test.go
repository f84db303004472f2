package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/azwarden/internal/session"
	"github.com/systmms/azwarden/tests/testutil"
)

const azAccountShow = "az account show --output json"

func TestCLIResolverDefaultSubscription(t *testing.T) {
	t.Parallel()

	exec := testutil.NewMockCommandExecutor()
	exec.Responses[azAccountShow] = testutil.MockResponse{
		Stdout: []byte(`{"id": "cli-default-sub", "name": "Pay-As-You-Go", "tenantId": "cli-tenant"}`),
	}

	r := &session.CLIResolver{Exec: exec}
	s, err := r.Resolve(context.Background(), session.RawConfig{})
	require.NoError(t, err)

	assert.Equal(t, session.ModeCLI, s.Mode())
	assert.Equal(t, "cli-default-sub", s.SubscriptionID())

	tenant, err := s.TenantID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cli-tenant", tenant)

	assert.NoError(t, s.Allow(session.CapabilityBlobStorage))
}

func TestCLIResolverEnvSubscriptionOverridesDefault(t *testing.T) {
	t.Parallel()

	exec := testutil.NewMockCommandExecutor()
	exec.Responses[azAccountShow] = testutil.MockResponse{
		Stdout: []byte(`{"id": "cli-default-sub", "tenantId": "cli-tenant"}`),
	}

	r := &session.CLIResolver{Exec: exec}
	s, err := r.Resolve(context.Background(), session.RawConfig{
		session.EnvSubscriptionID: "explicit-sub",
	})
	require.NoError(t, err)

	assert.Equal(t, "explicit-sub", s.SubscriptionID())
}

func TestCLIResolverNoLogin(t *testing.T) {
	t.Parallel()

	exec := testutil.NewMockCommandExecutor()
	exec.Responses[azAccountShow] = testutil.MockResponse{
		Stderr: []byte("ERROR: Please run 'az login' to setup account."),
		Err:    errors.New("exit status 1"),
	}

	r := &session.CLIResolver{Exec: exec}
	_, err := r.Resolve(context.Background(), session.RawConfig{})

	var authErr *session.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, session.NoCliSession, authErr.Reason)
	assert.Contains(t, authErr.Error(), "az login")
}

func TestCLIResolverMalformedAccountOutput(t *testing.T) {
	t.Parallel()

	exec := testutil.NewMockCommandExecutor()
	exec.Responses[azAccountShow] = testutil.MockResponse{
		Stdout: []byte("not json"),
	}

	r := &session.CLIResolver{Exec: exec}
	_, err := r.Resolve(context.Background(), session.RawConfig{})

	var authErr *session.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, session.NoCliSession, authErr.Reason)
}
