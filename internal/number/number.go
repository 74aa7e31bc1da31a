// Package number implements the two arithmetic backends an interpreter run
// may use: a small range-checked integer, and an arbitrary precision integer.
//
// All operations take a small literal operand, since programs can only ever
// name a single decimal digit; operations mutate their receiver in place, and
// a Number must be Copy-ed before being shared.
package number

import (
	"fmt"

	"github.com/jcorbin/gonaz/internal/fault"
)

// Number is an arithmetic value in one of the two backends.
type Number interface {
	// Valid returns false for the uninitialized sentinel value.
	Valid() bool

	// Copy returns an independent copy.
	Copy() Number

	Add(n int) error
	Mul(n int) error
	Div(n int) error
	Rem(n int) error

	// Compare returns the sign of the difference between the receiver and
	// other, which must be of the same backend.
	Compare(other Number) (int, error)

	// Glyph returns the rune that printing the value produces; ok is false
	// for values that print nothing.
	Glyph() (r rune, ok bool, err error)

	// String returns a debug representation of the value.
	String() string
}

// Domain selects the arithmetic backend for an interpreter run.
type Domain int

// Domains.
const (
	BoundedDomain Domain = iota
	UnboundedDomain
)

// From creates a number with the given value.
func (d Domain) From(i int) Number {
	if d == UnboundedDomain {
		return UnboundedFrom(i)
	}
	return BoundedFrom(i)
}

// Invalid returns the uninitialized sentinel value.
func (d Domain) Invalid() Number {
	if d == UnboundedDomain {
		return &Unbounded{}
	}
	return &Bounded{val: boundedInvalid}
}

func (d Domain) String() string {
	switch d {
	case BoundedDomain:
		return "bounded"
	case UnboundedDomain:
		return "unbounded"
	}
	return fmt.Sprintf("Domain(%d)", int(d))
}

var errUninitialized = fault.Errorf(fault.UndefinedReference, "use of an uninitialized number")

func mismatchError(a, b Number) error {
	return fmt.Errorf("cannot compare %T with %T", a, b)
}
