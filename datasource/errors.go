package datasource

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies why a lookup against a provider failed
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidInput
	KindNotFound
	KindMalformed
	KindTransport
)

// Sentinel errors matching each Kind through errors.Is
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrMalformed    = errors.New("malformed response")
	ErrTransport    = errors.New("transport failure")
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid input"
	case KindNotFound:
		return "not found"
	case KindMalformed:
		return "malformed response"
	case KindTransport:
		return "transport failure"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindNotFound:
		return ErrNotFound
	case KindMalformed:
		return ErrMalformed
	case KindTransport:
		return ErrTransport
	default:
		return nil
	}
}

// LookupError is returned by providers for every failed geocode or forecast call
type LookupError struct {
	Op   string // "geocode" or "forecast"
	Kind Kind
	Err  error
}

// NewError builds a LookupError for op
func NewError(op string, kind Kind, err error) error {
	return &LookupError{Op: op, Kind: kind, Err: err}
}

func (e *LookupError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind
func (e *LookupError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf extracts the Kind of err. Context cancellation and deadlines count as
// transport failures.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var le *LookupError
	if errors.As(err, &le) {
		return le.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindTransport
	}
	return KindUnknown
}
