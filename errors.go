package eppmap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalid is matched by every *ValidationError.
	ErrInvalid = errors.New("invalid element")
	// ErrMissingRootName is returned when a reusable element is decoded
	// before its parent bound the root name it is expected under.
	ErrMissingRootName = errors.New("root name not set")
)

// ErrUnexpectedObject indicates Decode was handed an element other than the
// one it maps.
type ErrUnexpectedObject string

func (e ErrUnexpectedObject) Error() string {
	return fmt.Sprintf("unexpected element, want %s", string(e))
}

// ErrNoMapping indicates a factory has no type for the element it was given.
type ErrNoMapping string

func (e ErrNoMapping) Error() string {
	return fmt.Sprintf("no such mapping: %s", string(e))
}

// ValidationError lists the rules an element violated.
type ValidationError struct {
	Element    string
	Violations []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("invalid %s: %s", e.Element, strings.Join(msgs, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

func (e *ValidationError) Unwrap() []error { return e.Violations }

// DecodeError reports an element or attribute that could not be parsed.
type DecodeError struct {
	Element string
	Field   string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s: %v", e.Element, e.Err)
	}
	return fmt.Sprintf("decode %s: %s: %v", e.Element, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
