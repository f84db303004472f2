package session

import "context"

// Resolver produces a resolved Session for one authentication mode. A
// resolver owns the only external call in this subsystem (CLI subprocess or
// identity endpoint); mode selection and capability checks never touch the
// network.
type Resolver interface {
	// Mode returns the authentication mode this resolver implements.
	Mode() AuthMode

	// Resolve constructs the session. Static misconfiguration has already
	// been rejected by Select, so failures here are *AuthError.
	Resolve(ctx context.Context, cfg RawConfig) (*Session, error)
}

// resolverFor maps a selected mode to its resolver.
func resolverFor(mode AuthMode, exec CommandExecutor) Resolver {
	switch mode {
	case ModeAccessToken:
		return &AccessTokenResolver{}
	case ModeManagedIdentitySystem, ModeManagedIdentityUser:
		return &ManagedIdentityResolver{}
	case ModeServicePrincipal:
		return &ServicePrincipalResolver{}
	default:
		return &CLIResolver{Exec: exec}
	}
}
