package session

import (
	"context"
	"sync"
	"time"

	"github.com/systmms/azwarden/internal/logging"
	"github.com/systmms/azwarden/internal/metrics"
)

// Manager resolves a session once and serves the cached handle for the
// process lifetime. The mutex is held across the resolver call, so
// concurrent first callers block on a single in-flight resolution instead
// of spawning duplicate CLI subprocesses or identity-endpoint requests, and
// every caller observes the same Session. The cached slot is only written
// after resolution fully succeeds; a failed attempt leaves it empty and the
// next Get retries.
type Manager struct {
	mu      sync.Mutex
	current *Session

	cfg                  RawConfig
	subscriptionOverride string
	resolver             Resolver
	exec                 CommandExecutor
	log                  *logging.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfig pins the manager to a fixed configuration snapshot instead of
// reading the process environment on first resolution.
func WithConfig(cfg RawConfig) Option {
	return func(m *Manager) { m.cfg = cfg }
}

// WithSubscription overrides the subscription of the resolved session,
// whatever mode produced it.
func WithSubscription(id string) Option {
	return func(m *Manager) { m.subscriptionOverride = id }
}

// WithResolver bypasses mode selection and resolves through r. Used for
// authorization-file authentication and by tests.
func WithResolver(r Resolver) Option {
	return func(m *Manager) { m.resolver = r }
}

// WithExecutor substitutes the command executor used by CLI resolution.
func WithExecutor(e CommandExecutor) Option {
	return func(m *Manager) { m.exec = e }
}

// WithLogger sets the logger for resolution events.
func WithLogger(l *logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// NewManager creates a session manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		log: logging.New(false, false),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get returns the cached session, resolving it on first call. All callers
// receive the same handle until Refresh replaces it.
func (m *Manager) Get(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return m.current, nil
	}

	s, err := m.resolveLocked(ctx)
	if err != nil {
		return nil, err
	}
	m.current = s
	return s, nil
}

// Refresh forces re-resolution and atomically replaces the cached session.
// The previous handle stays valid for operations already holding it, but
// subsequent Get calls return the new one. Refresh is mutually exclusive
// with Get and with itself.
func (m *Manager) Refresh(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.resolveLocked(ctx)
	if err != nil {
		return nil, err
	}
	m.current = s
	metrics.RecordRefresh()
	return s, nil
}

// Current returns the cached session without triggering resolution, or nil.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Manager) resolveLocked(ctx context.Context) (*Session, error) {
	cfg := m.cfg
	if cfg == nil {
		cfg = FromEnvironment()
	}

	resolver := m.resolver
	if resolver == nil {
		mode, err := Select(cfg)
		if err != nil {
			metrics.RecordResolution("none", "config_error", 0)
			return nil, err
		}
		resolver = resolverFor(mode, m.exec)
	}

	start := time.Now()
	s, err := resolver.Resolve(ctx, cfg)
	if err != nil {
		metrics.RecordResolution(string(resolver.Mode()), "error", time.Since(start))
		return nil, err
	}

	if m.subscriptionOverride != "" {
		s = s.withSubscription(m.subscriptionOverride)
	}

	metrics.RecordResolution(string(s.Mode()), "ok", time.Since(start))
	m.log.Debug("created session with %s authentication, subscription %s", s.Mode(), s.SubscriptionID())
	return s, nil
}

// The default manager backs the package-level Get and Refresh used by
// resource clients running inside the policy engine's worker pool.
var defaultManager = NewManager()

// Get resolves (once) and returns the process-wide session.
func Get(ctx context.Context) (*Session, error) { return defaultManager.Get(ctx) }

// Refresh re-resolves the process-wide session.
func Refresh(ctx context.Context) (*Session, error) { return defaultManager.Refresh(ctx) }
