package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	uerr "github.com/systmms/azwarden/internal/errors"
)

func TestUserErrorFormat(t *testing.T) {
	t.Parallel()

	e := uerr.UserError{
		Message:    "authentication failed",
		Details:    "AADSTS700016: application not found",
		Suggestion: "Check AZURE_CLIENT_ID",
	}

	out := e.Error()
	assert.Contains(t, out, "authentication failed")
	assert.Contains(t, out, "Details: AADSTS700016")
	assert.Contains(t, out, "💡 Try: Check AZURE_CLIENT_ID")
}

func TestUserErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("root cause")
	err := uerr.WithSuggestion("resolution failed", cause)
	assert.ErrorIs(t, err, cause)
}

func TestWithSuggestionNil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, uerr.WithSuggestion("anything", nil))
}

func TestAzureSuggestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "cli_not_logged_in",
			err:  stderrors.New("ERROR: please run 'az login' to setup account"),
			want: "az login",
		},
		{
			name: "identity_endpoint",
			err:  stderrors.New("managed identity endpoint not reachable"),
			want: "managed identity",
		},
		{
			name: "bad_secret",
			err:  stderrors.New("AADSTS7000215: invalid_client_secret provided"),
			want: "client secret",
		},
		{
			name: "expired_token",
			err:  stderrors.New("token is expired"),
			want: "AZURE_ACCESS_TOKEN",
		},
		{
			name: "wrapped_cause",
			err:  fmt.Errorf("resolve: %w", stderrors.New("request timeout")),
			want: "connectivity",
		},
		{
			name: "unknown",
			err:  stderrors.New("something else entirely"),
			want: "az login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, uerr.AzureSuggestion(tt.err), tt.want)
		})
	}
}
