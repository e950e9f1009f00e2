package ports

import "fmt"

// UpstreamError wraps a failed, timed-out, or malformed response from
// an external API. The orchestrator propagates it unchanged.
type UpstreamError struct {
	Service string // "spotify" or "openrouteservice"
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
