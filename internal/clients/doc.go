// Package clients constructs the downstream Azure SDK clients a resolved
// session is allowed to use. Every factory consults the session's
// capability set first and propagates a capability denial verbatim, so a
// disallowed client (storage under raw-token authentication) fails here,
// synchronously, instead of as an opaque authorization error deep in the
// network stack.
package clients
