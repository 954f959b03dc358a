// Package errs provides the unified error type used across the connector.
//
// The native layer wraps ODBC return codes into *errs.Error before returning
// them to callers. Callers use the Is* predicates to handle errors without
// inspecting driver-level codes.
//
// Usage:
//
//	// In the driver — wrap native failures:
//	return errs.Wrap(errs.ErrKindQueryFailed, "statement execution failed", nativeErr)
//
//	// In a caller — check error kind:
//	if errs.IsConnectionFailed(err) {
//	    retryLater()
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrKind categorises an error without exposing native ODBC return codes.
// The driver maps every failure to one of these kinds, giving callers a
// single consistent API.
type ErrKind int

const (
	ErrKindUnknown          ErrKind = iota
	ErrKindLoadFailed               // driver-manager library or entry point missing
	ErrKindConnectionFailed         // cannot reach or authenticate to the data source
	ErrKindQueryFailed              // execution, introspection, or fetch error
	ErrKindInvalidInput             // bad arguments from the caller
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindLoadFailed:
		return "load_failed"
	case ErrKindConnectionFailed:
		return "connection_failed"
	case ErrKindQueryFailed:
		return "query_failed"
	case ErrKindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by all connector operations.
// The driver produces it; callers inspect it via the Is* predicates below.
type Error struct {
	Kind    ErrKind
	Message string
	Cause   error // original native-level error, preserved for logging
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// --- Constructors ---

// New creates an *Error with the given kind and message and no cause.
func New(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Wrap creates an *Error with the given kind, message, and an underlying cause.
func Wrap(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// --- Predicates ---

// IsLoadFailed reports whether err was caused by a failure to open the
// driver-manager library or resolve one of its entry points.
func IsLoadFailed(err error) bool {
	return kindOf(err) == ErrKindLoadFailed
}

// IsConnectionFailed reports whether err is a connectivity or auth failure.
func IsConnectionFailed(err error) bool {
	return kindOf(err) == ErrKindConnectionFailed
}

// IsQueryFailed reports whether err is a statement execution or fetch failure.
func IsQueryFailed(err error) bool {
	return kindOf(err) == ErrKindQueryFailed
}

// IsInvalidInput reports whether err was caused by bad input from the caller.
func IsInvalidInput(err error) bool {
	return kindOf(err) == ErrKindInvalidInput
}

// kindOf extracts the ErrKind from any error in the chain.
func kindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}
