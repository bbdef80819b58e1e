package eppmap

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equal reports whether a and b are the same concrete type with equal
// fields, recursing into nested elements and lists. Lists compare in order;
// nil and empty lists are equal; times compare by instant.
func Equal(a, b Element) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// Diff returns a human readable difference between a and b, or "" when they
// are Equal.
func Diff(a, b Element) string {
	return cmp.Diff(a, b, cmpopts.EquateEmpty())
}

// ClonePtr returns a pointer to a copy of *p, or nil.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CloneSlice copies a slice of plain values, preserving nil.
func CloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

// CloneAll deep-copies a slice of elements through their Clone methods.
func CloneAll[T any, PT interface {
	*T
	Clone() PT
}](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i := range s {
		out[i] = *PT(&s[i]).Clone()
	}
	return out
}

// Int returns a pointer to v, for optional integer fields.
func Int(v int) *int { return &v }
