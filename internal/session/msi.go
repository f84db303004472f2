package session

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// ManagedIdentityResolver delegates to the platform identity endpoint.
// AZURE_CLIENT_ID selects a user-assigned identity; without it the host's
// system-assigned identity is used. Off Azure infrastructure the endpoint is
// unreachable, which surfaces as IdentityEndpointUnavailable.
type ManagedIdentityResolver struct{}

func (ManagedIdentityResolver) Mode() AuthMode { return ModeManagedIdentitySystem }

func (ManagedIdentityResolver) Resolve(ctx context.Context, cfg RawConfig) (*Session, error) {
	mode := ModeManagedIdentitySystem
	var opts *azidentity.ManagedIdentityCredentialOptions
	if clientID := cfg.Get(EnvClientID); clientID != "" {
		mode = ModeManagedIdentityUser
		opts = &azidentity.ManagedIdentityCredentialOptions{
			ID: azidentity.ClientID(clientID),
		}
	}

	cred, err := azidentity.NewManagedIdentityCredential(opts)
	if err != nil {
		return nil, &AuthError{Reason: IdentityEndpointUnavailable, Mode: mode, Err: err}
	}
	return New(mode, cfg.Get(EnvSubscriptionID), "", cred, cfg)
}
