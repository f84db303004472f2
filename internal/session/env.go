package session

import "os"

// Environment variable names recognized by the Azure session layer.
const (
	EnvTenantID       = "AZURE_TENANT_ID"
	EnvSubscriptionID = "AZURE_SUBSCRIPTION_ID"
	EnvClientID       = "AZURE_CLIENT_ID"
	EnvClientSecret   = "AZURE_CLIENT_SECRET"
	EnvUseMSI         = "AZURE_USE_MSI"
	EnvAccessToken    = "AZURE_ACCESS_TOKEN"

	// Dedicated variables for function-app deployments. They override the
	// regular service principal variables when exporting an authorization
	// document and when targeting a different subscription.
	EnvFunctionTenantID       = "AZURE_FUNCTION_TENANT_ID"
	EnvFunctionClientID       = "AZURE_FUNCTION_CLIENT_ID"
	EnvFunctionClientSecret   = "AZURE_FUNCTION_CLIENT_SECRET"
	EnvFunctionSubscriptionID = "AZURE_FUNCTION_SUBSCRIPTION_ID"
)

var recognizedVars = []string{
	EnvTenantID,
	EnvSubscriptionID,
	EnvClientID,
	EnvClientSecret,
	EnvUseMSI,
	EnvAccessToken,
	EnvFunctionTenantID,
	EnvFunctionClientID,
	EnvFunctionClientSecret,
	EnvFunctionSubscriptionID,
}

// RawConfig is an immutable snapshot of the recognized environment variables.
// A variable set to the empty string is treated as not set, so a stray
// `export AZURE_CLIENT_ID=` cannot push mode selection into a partial
// service principal configuration.
//
// Mode selection and the resolvers operate on a RawConfig value rather than
// reading the process environment, which keeps them pure and testable.
type RawConfig map[string]string

// RecognizedEnvVars returns the variable names the session layer reads.
func RecognizedEnvVars() []string {
	out := make([]string, len(recognizedVars))
	copy(out, recognizedVars)
	return out
}

// FromEnvironment captures the recognized variables from the process
// environment. The snapshot does not change if the environment is modified
// afterwards.
func FromEnvironment() RawConfig {
	cfg := make(RawConfig, len(recognizedVars))
	for _, name := range recognizedVars {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			cfg[name] = v
		}
	}
	return cfg
}

// Get returns the value for name, or the empty string when not set.
func (c RawConfig) Get(name string) string { return c[name] }

// IsSet reports whether name has a non-empty value.
func (c RawConfig) IsSet(name string) bool {
	_, ok := c[name]
	return ok
}

// anySet reports whether at least one of the named variables is set.
func (c RawConfig) anySet(names ...string) bool {
	for _, n := range names {
		if c.IsSet(n) {
			return true
		}
	}
	return false
}

// missing returns the subset of names that are not set, in input order.
func (c RawConfig) missing(names ...string) []string {
	var out []string
	for _, n := range names {
		if !c.IsSet(n) {
			out = append(out, n)
		}
	}
	return out
}
