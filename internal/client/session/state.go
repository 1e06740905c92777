package session

// State is the process-wide authentication state.
//
//	UNINITIALIZED -> RESTORING -> AUTHENTICATED | ANONYMOUS
//	AUTHENTICATED -> ANONYMOUS      (Clear)
//	ANONYMOUS     -> AUTHENTICATED  (Commit)
type State int

const (
	StateUninitialized State = iota
	StateRestoring
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "UNINITIALIZED"
	case StateRestoring:
		return "RESTORING"
	case StateAuthenticated:
		return "AUTHENTICATED"
	case StateAnonymous:
		return "ANONYMOUS"
	default:
		return "UNKNOWN"
	}
}
