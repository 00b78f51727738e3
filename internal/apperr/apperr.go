// Package apperr carries machine-readable error kinds across the core so the
// HTTP layer can map failures to transport status codes without string
// matching.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the boundary layer.
type Kind int

const (
	// KindUnknown is the zero value; errors without a kind map to it.
	KindUnknown Kind = iota
	// KindInvalidParameter marks out-of-range or malformed caller input.
	KindInvalidParameter
	// KindNotFound marks a reference to an entity absent from the current
	// generation. Recoverable, not a fault.
	KindNotFound
	// KindResourceExhausted marks generation parameters that would exceed
	// the configured row bounds.
	KindResourceExhausted
)

// Code returns the stable wire identifier for the kind.
func (k Kind) Code() string {
	switch k {
	case KindInvalidParameter:
		return "invalid_parameter"
	case KindNotFound:
		return "not_found"
	case KindResourceExhausted:
		return "resource_exhausted"
	default:
		return "internal"
	}
}

// Error is a kinded error with a human-readable message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// InvalidParameter builds a KindInvalidParameter error.
func InvalidParameter(format string, args ...any) error {
	return &Error{Kind: KindInvalidParameter, Msg: fmt.Sprintf(format, args...)}
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// ResourceExhausted builds a KindResourceExhausted error.
func ResourceExhausted(format string, args ...any) error {
	return &Error{Kind: KindResourceExhausted, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, unwrapping as needed.
// Unkinded errors yield KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
