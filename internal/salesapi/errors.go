package salesapi

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed fetch.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota + 1 // unreachable host or timeout
	KindHTTP                         // non-200 status
	KindParse                        // malformed or unexpected JSON
	KindMissingField                 // expected key absent from valid JSON
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network failure"
	case KindHTTP:
		return "http error"
	case KindParse:
		return "parse error"
	case KindMissingField:
		return "missing field"
	default:
		return "unknown"
	}
}

// FetchError is returned by every Client call that did not produce a usable
// document.
type FetchError struct {
	Kind       ErrorKind
	Path       string
	StatusCode int    // set for KindHTTP
	Field      string // set for KindMissingField
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("salesapi: GET %s: status %d", e.Path, e.StatusCode)
	case KindMissingField:
		return fmt.Sprintf("salesapi: GET %s: missing field %q", e.Path, e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("salesapi: GET %s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("salesapi: GET %s: %s", e.Path, e.Kind)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a FetchError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}

// Describe returns a short user-facing reason for err.
func Describe(err error) string {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return "unexpected error"
	}
	switch fe.Kind {
	case KindNetwork:
		return "service unreachable"
	case KindHTTP:
		return fmt.Sprintf("service returned HTTP %d", fe.StatusCode)
	case KindParse:
		return "unexpected response from service"
	case KindMissingField:
		return fmt.Sprintf("response is missing %q", fe.Field)
	default:
		return "unexpected error"
	}
}
