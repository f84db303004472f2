// Package testutil provides testing helpers shared across packages.
package testutil

import (
	"os"
	"testing"
)

// SetupTestEnv sets environment variables for the duration of a test. The
// original environment is restored via t.Cleanup, even if the test fails.
//
// An empty value in vars sets the variable to the empty string (set but
// empty), which the session layer treats as unset.
func SetupTestEnv(t *testing.T, vars map[string]string) {
	t.Helper()

	original := make(map[string]string)
	var unset []string

	for key, value := range vars {
		if orig, ok := os.LookupEnv(key); ok {
			original[key] = orig
		} else {
			unset = append(unset, key)
		}

		if err := os.Setenv(key, value); err != nil {
			t.Fatalf("Failed to set environment variable %s: %v", key, err)
		}
	}

	t.Cleanup(func() {
		for key, value := range original {
			if err := os.Setenv(key, value); err != nil {
				t.Errorf("Failed to restore environment variable %s: %v", key, err)
			}
		}
		for _, key := range unset {
			if err := os.Unsetenv(key); err != nil {
				t.Errorf("Failed to unset environment variable %s: %v", key, err)
			}
		}
	})
}

// UnsetEnv removes the named variables for the duration of a test,
// restoring any previous values via t.Cleanup.
func UnsetEnv(t *testing.T, names ...string) {
	t.Helper()

	original := make(map[string]string)
	for _, key := range names {
		if orig, ok := os.LookupEnv(key); ok {
			original[key] = orig
		}
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset environment variable %s: %v", key, err)
		}
	}

	t.Cleanup(func() {
		for key, value := range original {
			if err := os.Setenv(key, value); err != nil {
				t.Errorf("Failed to restore environment variable %s: %v", key, err)
			}
		}
	})
}
