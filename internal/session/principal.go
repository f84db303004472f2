package session

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// ServicePrincipalResolver builds a client secret credential from the
// tenant/client/secret triple. Resolution is deliberately side-effect free:
// the secret is not validated against Entra ID here, a bad credential
// surfaces on the first real API call.
type ServicePrincipalResolver struct{}

func (ServicePrincipalResolver) Mode() AuthMode { return ModeServicePrincipal }

func (ServicePrincipalResolver) Resolve(ctx context.Context, cfg RawConfig) (*Session, error) {
	tenant := cfg.Get(EnvTenantID)
	cred, err := azidentity.NewClientSecretCredential(
		tenant,
		cfg.Get(EnvClientID),
		cfg.Get(EnvClientSecret),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("service principal credential: %w", err)
	}
	return New(ModeServicePrincipal, cfg.Get(EnvSubscriptionID), tenant, cred, cfg)
}
