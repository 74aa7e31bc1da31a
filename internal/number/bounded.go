package number

import (
	"strconv"

	"github.com/jcorbin/gonaz/internal/fault"
)

const (
	boundedMin     = -127
	boundedMax     = 127
	boundedInvalid = -128
)

// Bounded is an integer restricted to [-127, 127]; any operation that would
// leave that range fails rather than wrapping or saturating.
type Bounded struct{ val int }

// BoundedFrom creates a bounded number; the value is not range checked.
func BoundedFrom(i int) *Bounded { return &Bounded{val: i} }

// Int returns the value.
func (b *Bounded) Int() int { return b.val }

// Valid returns false for the uninitialized sentinel -128.
func (b *Bounded) Valid() bool { return b.val != boundedInvalid }

// Copy returns a new Bounded holding the same value.
func (b *Bounded) Copy() Number { return &Bounded{val: b.val} }

func (b *Bounded) set(val int, op string, n int) error {
	if val < boundedMin || val > boundedMax {
		return fault.Errorf(fault.Range, "%v %v %v = %v is out of range", b.val, op, n, val)
	}
	b.val = val
	return nil
}

// Add adds n, failing if the result leaves [-127, 127].
func (b *Bounded) Add(n int) error {
	if !b.Valid() {
		return errUninitialized
	}
	return b.set(b.val+n, "+", n)
}

// Mul multiplies by n, failing if the result leaves [-127, 127].
func (b *Bounded) Mul(n int) error {
	if !b.Valid() {
		return errUninitialized
	}
	return b.set(b.val*n, "*", n)
}

// Div divides by n rounding towards negative infinity.
func (b *Bounded) Div(n int) error {
	if !b.Valid() {
		return errUninitialized
	}
	if n == 0 {
		return fault.Errorf(fault.Domain, "division by zero")
	}
	q := b.val / n
	if (b.val < 0) != (n < 0) && b.val%n != 0 {
		q--
	}
	b.val = q
	return nil
}

// Rem replaces the value with its truncated remainder by n; unlike Div, the
// sign of the result follows the dividend.
func (b *Bounded) Rem(n int) error {
	if !b.Valid() {
		return errUninitialized
	}
	if n == 0 {
		return fault.Errorf(fault.Domain, "remainder by zero")
	}
	b.val %= n
	return nil
}

// Compare returns the sign of b - other.
func (b *Bounded) Compare(other Number) (int, error) {
	o, ok := other.(*Bounded)
	if !ok {
		return 0, mismatchError(b, other)
	}
	if !b.Valid() || !o.Valid() {
		return 0, errUninitialized
	}
	switch d := b.val - o.val; {
	case d < 0:
		return -1, nil
	case d > 0:
		return 1, nil
	}
	return 0, nil
}

// Glyph renders 0-9 as digits, 10 as a line break, and 32-126 as ASCII; all
// other values are unprintable.
func (b *Bounded) Glyph() (rune, bool, error) {
	switch v := b.val; {
	case !b.Valid():
		return 0, false, errUninitialized
	case 0 <= v && v <= 9:
		return rune('0' + v), true, nil
	case v == 10, 32 <= v && v <= 126:
		return rune(v), true, nil
	default:
		return 0, false, fault.Errorf(fault.Domain, "cannot print %v", v)
	}
}

func (b *Bounded) String() string { return strconv.Itoa(b.val) }
