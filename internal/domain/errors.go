package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLocale is returned by formatters when no locale data exists
// for the requested tag. Callers fall back to a fixed, locale-free pattern.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// FetchErrorKind classifies why an upstream read failed.
type FetchErrorKind int

const (
	// Unreachable covers connection and transport failures.
	Unreachable FetchErrorKind = iota + 1
	// Timeout means the per-call deadline elapsed before a response arrived.
	Timeout
	// BadStatus means the upstream answered with a non-2xx status code.
	BadStatus
	// MalformedPayload means the body was not a JSON envelope of the expected shape.
	MalformedPayload
)

func (k FetchErrorKind) String() string {
	switch k {
	case Unreachable:
		return "unreachable"
	case Timeout:
		return "timeout"
	case BadStatus:
		return "bad_status"
	case MalformedPayload:
		return "malformed_payload"
	default:
		return "unknown"
	}
}

// FetchError is the only error type a source client returns.
// Status is set for BadStatus only.
type FetchError struct {
	Source string
	Kind   FetchErrorKind
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Kind == BadStatus {
		return fmt.Sprintf("source %s: %s: status %d", e.Source, e.Kind, e.Status)
	}
	if e.Err == nil {
		return fmt.Sprintf("source %s: %s", e.Source, e.Kind)
	}
	return fmt.Sprintf("source %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// FetchErrorKindOf reports the kind of the first FetchError in err's chain.
// ok is false when err carries no FetchError.
func FetchErrorKindOf(err error) (kind FetchErrorKind, ok bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
