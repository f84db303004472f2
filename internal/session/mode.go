package session

// AuthMode identifies the authentication mode a session was resolved with.
// Exactly one mode is active per session.
type AuthMode string

const (
	ModeCLI                   AuthMode = "cli"
	ModeServicePrincipal      AuthMode = "service_principal"
	ModeManagedIdentitySystem AuthMode = "msi_system"
	ModeManagedIdentityUser   AuthMode = "msi_user"
	ModeAccessToken           AuthMode = "access_token"
)

// selectionRule is one row of the mode selection table. The first rule whose
// trigger matches wins; its required variables must then all be present or
// selection fails with onMissing.
type selectionRule struct {
	trigger   func(RawConfig) bool
	mode      func(RawConfig) AuthMode
	required  []string
	onMissing ConfigReason
}

// selectionRules encodes the authentication priority order as data:
// raw access token, then managed identity, then service principal, and
// finally the Azure CLI fallback. The ordering is load-bearing and matches
// the tool's documented behavior exactly.
var selectionRules = []selectionRule{
	{
		// A raw token beats everything else that happens to be exported.
		trigger:   func(c RawConfig) bool { return c.IsSet(EnvAccessToken) },
		mode:      func(RawConfig) AuthMode { return ModeAccessToken },
		required:  []string{EnvSubscriptionID},
		onMissing: MissingSubscription,
	},
	{
		// AZURE_USE_MSI is a presence flag. The documentation says "set to
		// any value", so "0" and "false" still select managed identity.
		trigger: func(c RawConfig) bool { return c.IsSet(EnvUseMSI) },
		mode: func(c RawConfig) AuthMode {
			if c.IsSet(EnvClientID) {
				return ModeManagedIdentityUser
			}
			return ModeManagedIdentitySystem
		},
		required:  []string{EnvSubscriptionID},
		onMissing: MissingSubscription,
	},
	{
		// Any service principal variable commits to service principal mode;
		// a partial set is an error rather than a silent CLI fallback.
		trigger: func(c RawConfig) bool {
			return c.anySet(EnvTenantID, EnvClientID, EnvClientSecret)
		},
		mode:      func(RawConfig) AuthMode { return ModeServicePrincipal },
		required:  []string{EnvTenantID, EnvClientID, EnvClientSecret, EnvSubscriptionID},
		onMissing: IncompletePrincipal,
	},
}

// Select picks the authentication mode for cfg, or fails with a
// *ConfigurationError naming the missing variables. It is a pure function:
// no I/O happens here, network access is deferred to the chosen resolver.
//
// When no rule matches, Azure CLI authentication is selected. In that mode
// AZURE_SUBSCRIPTION_ID is optional; when set it overrides the CLI's
// currently selected subscription.
func Select(cfg RawConfig) (AuthMode, error) {
	for _, rule := range selectionRules {
		if !rule.trigger(cfg) {
			continue
		}
		if missing := cfg.missing(rule.required...); len(missing) > 0 {
			return "", &ConfigurationError{Reason: rule.onMissing, Missing: missing}
		}
		return rule.mode(cfg), nil
	}
	return ModeCLI, nil
}
