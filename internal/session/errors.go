package session

import (
	"fmt"
	"strings"
)

// ConfigReason classifies static configuration failures detected before any
// network call. They indicate operator misconfiguration and are never retried.
type ConfigReason string

const (
	// MissingSubscription means the selected mode requires
	// AZURE_SUBSCRIPTION_ID and it is not set.
	MissingSubscription ConfigReason = "missing_subscription"

	// IncompletePrincipal means some but not all of the service principal
	// variables are set. Falling through to CLI authentication here would
	// silently mask a mistyped or partially exported credential.
	IncompletePrincipal ConfigReason = "incomplete_principal"
)

// ConfigurationError reports an invalid combination of environment variables.
// Missing names the variables that would complete the selected mode.
type ConfigurationError struct {
	Reason  ConfigReason
	Missing []string
}

func (e *ConfigurationError) Error() string {
	switch e.Reason {
	case MissingSubscription:
		return fmt.Sprintf("azure authentication: %s must be set for the selected mode", EnvSubscriptionID)
	case IncompletePrincipal:
		return fmt.Sprintf("azure authentication: incomplete service principal configuration, missing %s",
			strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("azure authentication: invalid configuration (%s)", e.Reason)
}

// AuthReason classifies failures detected during or after credential
// resolution.
type AuthReason string

const (
	// NoCliSession means the external Azure CLI reported no logged-in
	// account.
	NoCliSession AuthReason = "no_cli_session"

	// IdentityEndpointUnavailable means the managed identity endpoint could
	// not be reached, typically because the process is not running on Azure
	// infrastructure.
	IdentityEndpointUnavailable AuthReason = "identity_endpoint_unavailable"

	// TokenExpired means a downstream call rejected a raw access token.
	// Raw tokens have no refresh path; the caller must re-resolve.
	TokenExpired AuthReason = "token_expired"

	// CapabilityDenied means the session's mode does not permit the
	// requested downstream capability. This is always a configuration or
	// programming error, never transient.
	CapabilityDenied AuthReason = "capability_denied"
)

// AuthError reports a credential resolution or authorization failure.
type AuthError struct {
	Reason     AuthReason
	Mode       AuthMode
	Capability Capability
	Err        error
}

func (e *AuthError) Error() string {
	switch e.Reason {
	case NoCliSession:
		if e.Err != nil {
			return fmt.Sprintf("azure cli authentication: no logged-in account: %v", e.Err)
		}
		return "azure cli authentication: no logged-in account"
	case IdentityEndpointUnavailable:
		return fmt.Sprintf("managed identity: endpoint unavailable: %v", e.Err)
	case TokenExpired:
		return fmt.Sprintf("access token rejected as expired; re-resolve the session: %v", e.Err)
	case CapabilityDenied:
		return fmt.Sprintf("capability %s is not available under %s authentication", e.Capability, e.Mode)
	}
	return fmt.Sprintf("azure authentication failed (%s): %v", e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }
