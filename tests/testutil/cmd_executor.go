package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockCommandExecutor provides a configurable stand-in for the session
// layer's command executor, so tests can script az CLI behavior without an
// installed binary.
type MockCommandExecutor struct {
	mu sync.Mutex

	// Responses maps "command arg1 arg2 ..." to a canned response.
	Responses map[string]MockResponse

	// RecordedCalls stores every Execute invocation for verification.
	RecordedCalls []RecordedCall
}

// MockResponse is the scripted output for one command pattern.
type MockResponse struct {
	Stdout []byte
	Stderr []byte
	Err    error
}

// RecordedCall captures one Execute invocation.
type RecordedCall struct {
	Command string
	Args    []string
}

// NewMockCommandExecutor creates an empty mock executor.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Responses: make(map[string]MockResponse),
	}
}

// Execute returns the scripted response for the command, or an error when
// nothing matches.
func (m *MockCommandExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RecordedCalls = append(m.RecordedCalls, RecordedCall{Command: name, Args: args})

	key := strings.Join(append([]string{name}, args...), " ")
	if resp, ok := m.Responses[key]; ok {
		return resp.Stdout, resp.Stderr, resp.Err
	}
	return nil, nil, fmt.Errorf("mock executor: no response configured for %q", key)
}

// CallCount returns the number of Execute invocations so far.
func (m *MockCommandExecutor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.RecordedCalls)
}
