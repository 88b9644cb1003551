package domain

import "errors"

// ErrorKind is the closed set of reasons a fetch can fail
type ErrorKind int

const (
	KindInvalidURL ErrorKind = iota + 1
	KindNoData
	KindDecoding
	KindNetwork
)

// String returns a stable identifier for logging
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindNoData:
		return "no_data"
	case KindDecoding:
		return "decoding_error"
	case KindNetwork:
		return "network_error"
	default:
		return "unknown"
	}
}

// FetchError is the only error type surfaced by the fetch client and the
// repositories. Err is set for KindNetwork; other kinds may carry a cause
// for logging but it never shows up in the description.
type FetchError struct {
	Kind ErrorKind
	Err  error
}

// Sentinel errors for matching with errors.Is
var (
	// ErrInvalidURL indicates the endpoint is not a well-formed URL
	ErrInvalidURL = &FetchError{Kind: KindInvalidURL}

	// ErrNoData indicates a successful response with an empty body
	ErrNoData = &FetchError{Kind: KindNoData}

	// ErrDecoding indicates the payload does not match the expected shape
	ErrDecoding = &FetchError{Kind: KindDecoding}

	// ErrNetwork indicates a transport failure or a non-200 status
	ErrNetwork = &FetchError{Kind: KindNetwork}
)

// NewFetchError creates a FetchError of the given kind
func NewFetchError(kind ErrorKind, err error) *FetchError {
	return &FetchError{Kind: kind, Err: err}
}

// NetworkError wraps a transport or unclassified failure
func NetworkError(cause error) *FetchError {
	return &FetchError{Kind: KindNetwork, Err: cause}
}

// Error returns the human-readable description
func (e *FetchError) Error() string {
	switch e.Kind {
	case KindInvalidURL:
		return "Invalid URL"
	case KindNoData:
		return "No data received"
	case KindDecoding:
		return "Failed to decode data"
	case KindNetwork:
		if e.Err != nil {
			return "Network error: " + e.Err.Error()
		}
		return "Network error"
	default:
		return "Unknown error"
	}
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels, so errors.Is(err, ErrNetwork) holds for every
// network error regardless of its cause.
func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	if !ok || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// AsFetchError finds a FetchError anywhere in err's chain
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
