package session

import (
	"context"
	"fmt"
	"sort"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/golang-jwt/jwt/v5"
)

// OAuth scopes for the two resource endpoints the plugin talks to.
const (
	ScopeManagement = "https://management.azure.com/.default"
	ScopeStorage    = "https://storage.azure.com/.default"
)

// Session is an immutable resolved credential handle. It carries the target
// subscription, the active authentication mode, the mode's capability set,
// and an azcore.TokenCredential that downstream SDK clients authenticate
// with. Sessions are constructed by resolvers and replaced, never mutated;
// a refresh produces a new Session while holders of the old one keep a
// usable handle.
type Session struct {
	subscriptionID string
	tenantID       string
	mode           AuthMode
	credential     azcore.TokenCredential
	capabilities   map[Capability]bool
	cfg            RawConfig
}

// New builds a Session for an externally constructed credential. The
// subscription must be known by resolution time regardless of mode.
func New(mode AuthMode, subscriptionID, tenantID string, cred azcore.TokenCredential, cfg RawConfig) (*Session, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("session: subscription id must not be empty")
	}
	if cred == nil {
		return nil, fmt.Errorf("session: credential must not be nil")
	}
	return &Session{
		subscriptionID: subscriptionID,
		tenantID:       tenantID,
		mode:           mode,
		credential:     cred,
		capabilities:   capabilitiesFor(mode),
		cfg:            cfg,
	}, nil
}

// withSubscription returns a copy of s targeting a different subscription.
// Used for explicit overrides; the credential is shared.
func (s *Session) withSubscription(subscriptionID string) *Session {
	clone := *s
	clone.subscriptionID = subscriptionID
	return &clone
}

// SubscriptionID returns the subscription this session operates on.
func (s *Session) SubscriptionID() string { return s.subscriptionID }

// Mode returns the authentication mode the session was resolved with.
func (s *Session) Mode() AuthMode { return s.mode }

// Credential returns the credential for constructing SDK clients. The
// caller must not log or serialize tokens obtained from it.
func (s *Session) Credential() azcore.TokenCredential { return s.credential }

// Capabilities returns the session's capability set in stable order.
func (s *Session) Capabilities() []Capability {
	out := make([]Capability, 0, len(s.capabilities))
	for c := range s.capabilities {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Token acquires a bearer token for the given scope, defaulting to the
// management scope. Failures from the external delegates are classified per
// mode: the CLI reports a missing login, managed identity an unreachable
// endpoint. Raw access tokens are returned as-is; their expiry surfaces only
// when a downstream call rejects them.
func (s *Session) Token(ctx context.Context, scope string) (azcore.AccessToken, error) {
	if scope == "" {
		scope = ScopeManagement
	}
	tk, err := s.credential.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{scope}})
	if err != nil {
		switch s.mode {
		case ModeCLI:
			return azcore.AccessToken{}, &AuthError{Reason: NoCliSession, Mode: s.mode, Err: err}
		case ModeManagedIdentitySystem, ModeManagedIdentityUser:
			return azcore.AccessToken{}, &AuthError{Reason: IdentityEndpointUnavailable, Mode: s.mode, Err: err}
		}
		return azcore.AccessToken{}, fmt.Errorf("session: token acquisition failed: %w", err)
	}
	return tk, nil
}

// TenantID returns the tenant the session authenticates against. For raw
// access tokens the tenant is not configured anywhere, so it is read from
// the token's tid claim without signature verification. Managed identity
// sessions have no known tenant and return the empty string.
func (s *Session) TenantID(ctx context.Context) (string, error) {
	if s.mode != ModeAccessToken {
		return s.tenantID, nil
	}
	tk, err := s.Token(ctx, ScopeManagement)
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tk.Token, claims); err != nil {
		return "", fmt.Errorf("session: cannot decode access token: %w", err)
	}
	tid, _ := claims["tid"].(string)
	return tid, nil
}

// FunctionTargetSubscriptionID returns the subscription function-app
// deployments should target. AZURE_FUNCTION_SUBSCRIPTION_ID overrides the
// session's own subscription.
func (s *Session) FunctionTargetSubscriptionID() string {
	if v := s.cfg.Get(EnvFunctionSubscriptionID); v != "" {
		return v
	}
	return s.subscriptionID
}

// Config returns the environment snapshot the session was resolved from.
func (s *Session) Config() RawConfig { return s.cfg }
