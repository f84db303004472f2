package logging_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/systmms/azwarden/internal/logging"
)

func capture(debug bool) (*logging.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logging.New(debug, true)
	l.SetOutput(&buf)
	return l, &buf
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	l, buf := capture(false)

	l.Info("resolved %s session", "cli")
	l.Warn("token expires soon")
	l.Error("resolution failed")

	out := buf.String()
	assert.Contains(t, out, "✓ resolved cli session")
	assert.Contains(t, out, "⚠ token expires soon")
	assert.Contains(t, out, "✗ resolution failed")
}

func TestLoggerDebugSuppressed(t *testing.T) {
	t.Parallel()

	l, buf := capture(false)
	l.Debug("selected mode %s", "cli")
	assert.Empty(t, buf.String())

	l, buf = capture(true)
	l.Debug("selected mode %s", "cli")
	assert.Contains(t, buf.String(), "[DEBUG] selected mode cli")
}

func TestSecretNeverPrints(t *testing.T) {
	t.Parallel()

	s := logging.Secret("hunter2-client-secret")

	for _, verb := range []string{"%s", "%v", "%#v", "%q"} {
		out := fmt.Sprintf(verb, s)
		assert.NotContains(t, out, "hunter2", "verb %s leaked the secret", verb)
		assert.Contains(t, out, "[REDACTED]")
	}
}

func TestRedact(t *testing.T) {
	t.Parallel()

	out := logging.Redact("secret=topsecretvalue id=abc", []string{"topsecretvalue"})
	assert.Equal(t, "secret=[REDACTED] id=abc", out)

	// Very short secrets are left alone so common substrings survive.
	out = logging.Redact("path=/a/b", []string{"a"})
	assert.Equal(t, "path=/a/b", out)
}
