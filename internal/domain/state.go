package domain

// Status is the presentation status of a catalog screen
type Status int

const (
	// StatusLoading means a fetch is in flight or has not started yet
	StatusLoading Status = iota

	// StatusLoaded means the last fetch succeeded
	StatusLoaded

	// StatusError means the last fetch failed
	StatusError
)

// String returns the string representation of Status
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// IsSettled returns true once a fetch attempt has completed
func (s Status) IsSettled() bool {
	return s == StatusLoaded || s == StatusError
}

// State is a snapshot of a catalog. Items always holds the last list that
// loaded successfully: it equals the loaded list when Status is StatusLoaded
// and is left untouched (stale) when Status is StatusError.
type State[T Item] struct {
	Status  Status
	Items   []T
	Err     *FetchError // set only when Status is StatusError
	Message string      // description of Err, empty otherwise
}

// StateObserver receives every state transition of a catalog
type StateObserver[T Item] interface {
	OnState(state State[T])
}

// StateObserverFunc adapts a function to StateObserver
type StateObserverFunc[T Item] func(state State[T])

// OnState calls f(state)
func (f StateObserverFunc[T]) OnState(state State[T]) {
	f(state)
}
