package session

import "github.com/systmms/azwarden/internal/metrics"

// Capability names a class of downstream clients a session may construct.
type Capability string

const (
	CapabilityManagementPlane Capability = "management"
	CapabilityBlobStorage     Capability = "blob_storage"
	CapabilityQueueStorage    Capability = "queue_storage"
)

// capabilitiesFor returns the capability set granted by an authentication
// mode. Raw access tokens are scoped to the management plane at issue time,
// so storage capabilities are structurally excluded for them rather than
// discovered as authorization failures at the network layer.
func capabilitiesFor(mode AuthMode) map[Capability]bool {
	if mode == ModeAccessToken {
		return map[Capability]bool{
			CapabilityManagementPlane: true,
		}
	}
	return map[Capability]bool{
		CapabilityManagementPlane: true,
		CapabilityBlobStorage:     true,
		CapabilityQueueStorage:    true,
	}
}

// Allow reports whether the session may construct clients for the requested
// capability. Every downstream client factory must call this before
// construction and propagate the error verbatim; the check is synchronous
// and involves no network I/O.
func (s *Session) Allow(c Capability) error {
	if s.capabilities[c] {
		return nil
	}
	metrics.RecordCapabilityDenied(string(c))
	return &AuthError{Reason: CapabilityDenied, Mode: s.mode, Capability: c}
}
