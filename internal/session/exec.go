package session

import (
	"bytes"
	"context"
	"os/exec"
)

// CommandExecutor runs an external command and returns its output streams.
// The CLI resolver shells out through this interface so tests can substitute
// canned az output.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// systemExecutor is the production CommandExecutor backed by os/exec.
type systemExecutor struct{}

func (systemExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
