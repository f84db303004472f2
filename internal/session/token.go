package session

import (
	"context"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/golang-jwt/jwt/v5"

	"github.com/systmms/azwarden/internal/secure"
)

// StaticTokenCredential adapts a literal bearer token to
// azcore.TokenCredential. It has no refresh path: GetToken always returns
// the same token, and expiry is discovered reactively when a downstream
// call rejects it. The token is held encrypted between uses.
type StaticTokenCredential struct {
	token     *secure.Buffer
	expiresOn time.Time
}

// NewStaticTokenCredential wraps a raw token. When the token parses as a
// JWT, its exp claim is reported as ExpiresOn metadata; opaque tokens get a
// zero expiry. Neither case triggers proactive rejection.
func NewStaticTokenCredential(raw string) *StaticTokenCredential {
	var expiresOn time.Time
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			expiresOn = exp.Time
		}
	}
	return &StaticTokenCredential{
		token:     secure.NewBuffer([]byte(raw)),
		expiresOn: expiresOn,
	}
}

// GetToken implements azcore.TokenCredential. The requested scopes are
// ignored; the token was scoped at issue time.
func (c *StaticTokenCredential) GetToken(ctx context.Context, _ policy.TokenRequestOptions) (azcore.AccessToken, error) {
	var raw string
	if err := c.token.Reveal(func(b []byte) error {
		// The SDK wants a string; the plaintext copy is unavoidable here.
		raw = string(b)
		return nil
	}); err != nil {
		return azcore.AccessToken{}, err
	}
	return azcore.AccessToken{Token: raw, ExpiresOn: c.expiresOn}, nil
}

// AccessTokenResolver wraps AZURE_ACCESS_TOKEN as a bearer credential.
// Once the token expires the caller must re-resolve with a fresh one.
type AccessTokenResolver struct{}

func (AccessTokenResolver) Mode() AuthMode { return ModeAccessToken }

func (AccessTokenResolver) Resolve(ctx context.Context, cfg RawConfig) (*Session, error) {
	cred := NewStaticTokenCredential(cfg.Get(EnvAccessToken))
	return New(ModeAccessToken, cfg.Get(EnvSubscriptionID), "", cred, cfg)
}
