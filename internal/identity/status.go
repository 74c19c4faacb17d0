package identity

// Status is the process-wide resolution state of the identity provider.
type Status int32

const (
	// StatusUnresolved is the state before the loader ran.
	StatusUnresolved Status = iota
	// StatusActive means a provider was constructed and enforces access.
	StatusActive
	// StatusUnavailable means no provider is present, requests pass through.
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unresolved"
	}
}
