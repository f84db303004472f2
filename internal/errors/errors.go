// Package errors carries the operator-facing error surface of the CLI:
// errors that should be shown with remediation hints rather than a bare
// message.
package errors

import (
	"errors"
	"strings"
)

// UserError is an error with enough context for an operator to act on.
type UserError struct {
	Message    string
	Details    string
	Suggestion string
	Err        error
}

func (e UserError) Error() string {
	var parts []string

	if e.Message != "" {
		parts = append(parts, e.Message)
	} else if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if e.Details != "" {
		parts = append(parts, "\n  Details: "+e.Details)
	}

	if e.Suggestion != "" {
		parts = append(parts, "\n  💡 Try: "+e.Suggestion)
	}

	return strings.Join(parts, "")
}

func (e UserError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps err as a UserError carrying an Azure-specific
// remediation hint.
func WithSuggestion(message string, err error) error {
	if err == nil {
		return nil
	}
	return UserError{
		Message:    message,
		Details:    err.Error(),
		Suggestion: AzureSuggestion(err),
		Err:        err,
	}
}

// AzureSuggestion maps common Azure authentication failures to remediation
// hints.
func AzureSuggestion(err error) string {
	errStr := strings.ToLower(errorText(err))

	switch {
	case strings.Contains(errStr, "az login") || strings.Contains(errStr, "no logged-in"):
		return "Run 'az login' to authenticate with the Azure CLI"
	case strings.Contains(errStr, "managed identity") || strings.Contains(errStr, "identity endpoint"):
		return "Check that managed identity is enabled on this host and assigned appropriate roles"
	case strings.Contains(errStr, "invalid_client_secret"):
		return "Check that the client secret is correct and not expired"
	case strings.Contains(errStr, "invalid_client") || strings.Contains(errStr, "unauthorized_client"):
		return "Check AZURE_CLIENT_ID and ensure the application is registered in the correct tenant"
	case strings.Contains(errStr, "tenant"):
		return "Check that AZURE_TENANT_ID is correct"
	case strings.Contains(errStr, "expired"):
		return "The token has expired; re-resolve with a fresh AZURE_ACCESS_TOKEN"
	case strings.Contains(errStr, "subscription"):
		return "Set AZURE_SUBSCRIPTION_ID to the target subscription"
	case strings.Contains(errStr, "timeout"):
		return "Network timeout - check connectivity to Azure endpoints"
	default:
		return "Check Azure credentials: try 'az login', or verify the exported AZURE_* variables"
	}
}

func errorText(err error) string {
	var sb strings.Builder
	for err != nil {
		sb.WriteString(err.Error())
		sb.WriteString(" ")
		err = errors.Unwrap(err)
	}
	return sb.String()
}
