package eppmap

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// Violations accumulates the rules an element breaks during Validate.
type Violations struct {
	element string
	err     error
}

// Check starts collecting violations for the named element.
func Check(element string) *Violations {
	return &Violations{element: element}
}

// Add records a violation.
func (v *Violations) Add(format string, args ...any) {
	v.err = multierr.Append(v.err, fmt.Errorf(format, args...))
}

// Require records "field is required" unless ok.
func (v *Violations) Require(ok bool, field string) {
	if !ok {
		v.Add("%s is required", field)
	}
}

// AtLeast records a violation when val < floor.
func (v *Violations) AtLeast(field string, val, floor int) {
	if val < floor {
		v.Add("%s %d is less than %d", field, val, floor)
	}
}

// Between records a violation when val is outside [lo, hi].
func (v *Violations) Between(field string, val, lo, hi int) {
	if val < lo || val > hi {
		v.Add("%s %d is outside %d..%d", field, val, lo, hi)
	}
}

// OneOf records a violation when val is not in allowed. An empty val is
// reported as missing.
func (v *Violations) OneOf(field, val string, allowed ...string) {
	switch {
	case val == "":
		v.Add("%s is required", field)
	case !slices.Contains(allowed, val):
		v.Add("%s %q is not one of %v", field, val, allowed)
	}
}

// OptOneOf is OneOf for optional values: empty passes.
func (v *Violations) OptOneOf(field, val string, allowed ...string) {
	if val != "" {
		v.OneOf(field, val, allowed...)
	}
}

// ExactlyOne records a violation unless exactly one of a and b holds.
func (v *Violations) ExactlyOne(aName string, a bool, bName string, b bool) {
	switch {
	case a && b:
		v.Add("%s and %s are mutually exclusive", aName, bName)
	case !a && !b:
		v.Add("one of %s or %s is required", aName, bName)
	}
}

// Nested folds the result of a child's Validate into v, prefixing each
// violation with path.
func (v *Violations) Nested(path string, err error) {
	if err == nil {
		return
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		v.err = multierr.Append(v.err, fmt.Errorf("%s: %w", path, err))
		return
	}
	for _, c := range ve.Violations {
		v.err = multierr.Append(v.err, fmt.Errorf("%s: %w", path, c))
	}
}

// Child validates a required child element.
func (v *Violations) Child(path string, e Element, present bool) {
	if !present {
		v.Add("%s is required", path)
		return
	}
	v.Nested(path, e.Validate())
}

// Err returns nil when nothing was recorded, otherwise a *ValidationError.
func (v *Violations) Err() error {
	if v.err == nil {
		return nil
	}
	return &ValidationError{Element: v.element, Violations: multierr.Errors(v.err)}
}
