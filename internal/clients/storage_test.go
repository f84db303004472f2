package clients_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/azwarden/internal/clients"
	"github.com/systmms/azwarden/internal/session"
)

func accessTokenSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.AccessTokenResolver{}.Resolve(context.Background(), session.RawConfig{
		session.EnvAccessToken:    "token",
		session.EnvSubscriptionID: "sub1",
	})
	require.NoError(t, err)
	return s
}

func cliSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New(session.ModeCLI, "sub1", "tenant", session.NewStaticTokenCredential("x"), nil)
	require.NoError(t, err)
	return s
}

func TestNewBlobClientDeniedForAccessTokenSession(t *testing.T) {
	t.Parallel()

	_, _, err := clients.NewBlobClient(accessTokenSession(t), "https://mystorage.blob.core.windows.net/logs")

	var authErr *session.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, session.CapabilityDenied, authErr.Reason)
	assert.Equal(t, session.CapabilityBlobStorage, authErr.Capability)
}

func TestNewQueueClientDeniedForAccessTokenSession(t *testing.T) {
	t.Parallel()

	_, _, err := clients.NewQueueClient(accessTokenSession(t), "https://mystorage.queue.core.windows.net/notifications")

	var authErr *session.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, session.CapabilityDenied, authErr.Reason)
	assert.Equal(t, session.CapabilityQueueStorage, authErr.Capability)
}

func TestNewBlobClientParsesTarget(t *testing.T) {
	t.Parallel()

	client, target, err := clients.NewBlobClient(cliSession(t), "https://mystorage.blob.core.windows.net/logs/prefix")
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, "mystorage", target.AccountName)
	assert.Equal(t, "logs", target.Name)
	assert.Equal(t, "prefix", target.Prefix)
}

func TestNewQueueClientParsesTarget(t *testing.T) {
	t.Parallel()

	client, target, err := clients.NewQueueClient(cliSession(t), "https://mystorage.queue.core.windows.net/notifications")
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, "notifications", target.Name)
}

func TestNewBlobClientRejectsBadURI(t *testing.T) {
	t.Parallel()

	_, _, err := clients.NewBlobClient(cliSession(t), "mystorage/logs")
	assert.Error(t, err)
}

func TestNewManagementAllowedForAccessTokenSession(t *testing.T) {
	t.Parallel()

	m, err := clients.NewManagement(accessTokenSession(t))
	require.NoError(t, err)
	assert.NotNil(t, m)
}
