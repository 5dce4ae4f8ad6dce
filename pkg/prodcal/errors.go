package prodcal

import (
	"errors"
	"fmt"
)

// Kind classifies failures surfaced by the client
type Kind uint8

const (
	// KindUnknown is for unclassified errors
	KindUnknown Kind = iota

	// KindConfiguration is for a missing token or other client setup faults
	KindConfiguration

	// KindValidation is for out of range quarter or month numbers
	KindValidation

	// KindState is for a second period specifier on the same query
	KindState

	// KindPrecondition is for a terminal call on an incomplete query (no period, country or date)
	KindPrecondition

	// KindTransport is for failed calls and non-2xx statuses
	KindTransport

	// KindProtocol is for empty bodies and non-ok service statuses
	KindProtocol

	// KindDecode is for bodies that do not match the expected shape
	KindDecode
)

var kindNames = map[Kind]string{
	KindUnknown:       "unknown",
	KindConfiguration: "configuration",
	KindValidation:    "validation",
	KindState:         "state",
	KindPrecondition:  "precondition",
	KindTransport:     "transport",
	KindProtocol:      "protocol",
	KindDecode:        "decode",
}

// String returns the kind name
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Sentinels for errors.Is. Only the kind is compared.
var (
	ErrConfiguration = &Error{kind: KindConfiguration, msg: "configuration error"}
	ErrValidation    = &Error{kind: KindValidation, msg: "validation error"}
	ErrState         = &Error{kind: KindState, msg: "state error"}
	ErrPrecondition  = &Error{kind: KindPrecondition, msg: "precondition failed"}
	ErrTransport     = &Error{kind: KindTransport, msg: "transport error"}
	ErrProtocol      = &Error{kind: KindProtocol, msg: "protocol error"}
	ErrDecode        = &Error{kind: KindDecode, msg: "decode error"}
)

// Error is the structured error returned by every operation of the package.
// op names the failing operation, status holds the HTTP status for transport
// failures, orig is the wrapped cause.
type Error struct {
	kind   Kind
	op     string
	msg    string
	status int
	orig   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.msg
	if e.op != "" {
		msg = e.op + ": " + msg
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", msg, e.orig)
	}
	return msg
}

// Unwrap returns the wrapped error, if any
func (e *Error) Unwrap() error { return e.orig }

// Kind returns the error kind
func (e *Error) Kind() Kind { return e.kind }

// Op returns the operation label, if set
func (e *Error) Op() string { return e.op }

// StatusCode returns the HTTP status of a transport failure, 0 otherwise
func (e *Error) StatusCode() int { return e.status }

// Is matches sentinels by kind. A precondition failure also counts as a
// configuration error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.kind == e.kind {
		return true
	}
	return e.kind == KindPrecondition && t.kind == KindConfiguration
}

// KindOf extracts the Kind from any error, defaulting to KindUnknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindUnknown
}

// StatusCode returns the HTTP status carried by err, if any
func StatusCode(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.status != 0 {
		return e.status, true
	}
	return 0, false
}

func newError(kind Kind, op, format string, a ...any) error {
	return &Error{kind: kind, op: op, msg: fmt.Sprintf(format, a...)}
}

func wrapError(orig error, kind Kind, op, msg string) error {
	return &Error{kind: kind, op: op, msg: msg, orig: orig}
}
