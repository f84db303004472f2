package clients

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/systmms/azwarden/internal/session"
)

// providersAPI is the slice of the ARM providers client the version lookup
// needs, kept narrow so tests can fake provider listings.
type providersAPI interface {
	Get(ctx context.Context, resourceProviderNamespace string, options *armresources.ProvidersClientGetOptions) (armresources.ProvidersClientGetResponse, error)
}

// Management bundles the management-plane clients for a session's
// subscription.
type Management struct {
	session   *session.Session
	providers providersAPI

	mu          sync.Mutex
	apiVersions map[string]string
}

// NewManagement creates management-plane client factories for the session.
func NewManagement(s *session.Session) (*Management, error) {
	if err := s.Allow(session.CapabilityManagementPlane); err != nil {
		return nil, err
	}
	providers, err := armresources.NewProvidersClient(s.SubscriptionID(), s.Credential(), nil)
	if err != nil {
		return nil, fmt.Errorf("management clients: %w", err)
	}
	return &Management{
		session:     s,
		providers:   providers,
		apiVersions: make(map[string]string),
	}, nil
}

// ResourceGroups returns a resource groups client for the session's
// subscription.
func (m *Management) ResourceGroups() (*armresources.ResourceGroupsClient, error) {
	return armresources.NewResourceGroupsClient(m.session.SubscriptionID(), m.session.Credential(), nil)
}

// Resources returns a generic ARM resources client.
func (m *Management) Resources() (*armresources.Client, error) {
	return armresources.NewClient(m.session.SubscriptionID(), m.session.Credential(), nil)
}

// ProviderAPIVersion returns the latest non-preview API version for the
// resource type of resourceID, falling back to the newest preview version
// when nothing else is offered. Results are memoized per namespace and
// resource type.
func (m *Management) ProviderAPIVersion(ctx context.Context, resourceID string) (string, error) {
	parsed, err := arm.ParseResourceID(resourceID)
	if err != nil {
		return "", fmt.Errorf("provider api version: %w", err)
	}
	namespace := parsed.ResourceType.Namespace
	resourceType := parsed.ResourceType.Type

	cacheKey := namespace + "/" + resourceType
	m.mu.Lock()
	if v, ok := m.apiVersions[cacheKey]; ok {
		m.mu.Unlock()
		return v, nil
	}
	m.mu.Unlock()

	resp, err := m.providers.Get(ctx, namespace, nil)
	if err != nil {
		return "", fmt.Errorf("provider api version for %s: %w", namespace, err)
	}

	for _, rt := range resp.ResourceTypes {
		if rt == nil || rt.ResourceType == nil || !strings.EqualFold(*rt.ResourceType, resourceType) {
			continue
		}
		version := pickAPIVersion(rt.APIVersions)
		if version == "" {
			break
		}
		m.mu.Lock()
		m.apiVersions[cacheKey] = version
		m.mu.Unlock()
		return version, nil
	}
	return "", fmt.Errorf("provider api version: no versions for %s/%s", namespace, resourceType)
}

// pickAPIVersion prefers the first stable version; API versions arrive
// newest first.
func pickAPIVersion(versions []*string) string {
	var fallback string
	for _, v := range versions {
		if v == nil {
			continue
		}
		if fallback == "" {
			fallback = *v
		}
		if !strings.Contains(strings.ToLower(*v), "preview") {
			return *v
		}
	}
	return fallback
}
