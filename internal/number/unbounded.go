package number

import (
	"math"
	"strconv"
	"strings"

	"github.com/jcorbin/gonaz/internal/fault"
)

const (
	minCapacity  = 2
	slowCapacity = 1000 // past this capacity, grow by at most growCap limbs
	growCap      = 10
)

// Unbounded is an arbitrary precision sign-magnitude integer.
//
// The magnitude is stored as little-endian 32-bit limbs with no trailing zero
// limb, except for the single limb that represents zero. There is no
// canonical sign for zero; comparison treats -0 and +0 as equal. The zero
// value, having no limbs at all, is the uninitialized sentinel.
type Unbounded struct {
	neg   bool
	limbs []uint32
}

// UnboundedFrom creates an unbounded number with the given value.
func UnboundedFrom(i int) *Unbounded {
	var u Unbounded
	var mag uint64
	if i < 0 {
		u.neg = true
		mag = uint64(-(i + 1)) + 1
	} else {
		mag = uint64(i)
	}
	u.limbs = make([]uint32, 1, minCapacity)
	u.limbs[0] = uint32(mag)
	if hi := uint32(mag >> 32); hi != 0 {
		u.limbs = append(u.limbs, hi)
	}
	return &u
}

// Valid returns false for the uninitialized sentinel.
func (u *Unbounded) Valid() bool { return len(u.limbs) > 0 }

// Copy returns an independent copy with the same capacity.
func (u *Unbounded) Copy() Number {
	if !u.Valid() {
		return &Unbounded{}
	}
	limbs := make([]uint32, len(u.limbs), cap(u.limbs))
	copy(limbs, u.limbs)
	return &Unbounded{neg: u.neg, limbs: limbs}
}

// Negative returns true if the sign is negative; this includes -0.
func (u *Unbounded) Negative() bool { return u.neg }

// Limbs returns a copy of the little-endian magnitude limbs.
func (u *Unbounded) Limbs() []uint32 { return append([]uint32(nil), u.limbs...) }

func (u *Unbounded) isZero() bool { return len(u.limbs) == 1 && u.limbs[0] == 0 }

// grownCapacity returns the capacity that a full limb slice of the given
// capacity grows to.
func grownCapacity(old int) int {
	if old < minCapacity {
		return minCapacity
	}
	inc := old / 2
	if inc < 1 {
		inc = 1
	}
	if old > slowCapacity && inc > growCap {
		inc = growCap
	}
	return old + inc
}

func (u *Unbounded) push(limb uint32) {
	if len(u.limbs) == cap(u.limbs) {
		limbs := make([]uint32, len(u.limbs), grownCapacity(cap(u.limbs)))
		copy(limbs, u.limbs)
		u.limbs = limbs
	}
	u.limbs = append(u.limbs, limb)
}

func (u *Unbounded) trim() {
	i := len(u.limbs)
	for i > 1 && u.limbs[i-1] == 0 {
		i--
	}
	u.limbs = u.limbs[:i]
}

func literal(n int) (neg bool, mag uint32, err error) {
	m := int64(n)
	if neg = m < 0; neg {
		m = -m
	}
	if m < 0 || m > math.MaxUint32 {
		return false, 0, fault.Errorf(fault.Domain, "literal %v does not fit in a limb", n)
	}
	return neg, uint32(m), nil
}

func (u *Unbounded) addMag(m uint32) {
	carry := uint64(m)
	for i := 0; carry != 0 && i < len(u.limbs); i++ {
		s := uint64(u.limbs[i]) + carry
		u.limbs[i] = uint32(s)
		carry = s >> 32
	}
	if carry != 0 {
		u.push(uint32(carry))
	}
}

func (u *Unbounded) subMag(m uint32) {
	if len(u.limbs) == 1 {
		if u.limbs[0] >= m {
			u.limbs[0] -= m
		} else {
			u.limbs[0] = m - u.limbs[0]
			u.neg = !u.neg
		}
		return
	}

	// any multi-limb magnitude exceeds m, so the borrow stops below the top limb
	borrow := u.limbs[0] < m
	u.limbs[0] -= m
	for i := 1; borrow && i < len(u.limbs); i++ {
		borrow = u.limbs[i] == 0
		u.limbs[i]--
	}
	u.trim()
}

// Add adds n; a literal of the opposite sign subtracts its magnitude,
// possibly flipping the sign.
func (u *Unbounded) Add(n int) error {
	if !u.Valid() {
		return errUninitialized
	}
	neg, m, err := literal(n)
	if err != nil {
		return err
	}
	if m == 0 {
		return nil
	}
	if neg == u.neg {
		u.addMag(m)
	} else {
		u.subMag(m)
	}
	return nil
}

// Mul multiplies by n; the resulting sign is the exclusive-or of both signs.
func (u *Unbounded) Mul(n int) error {
	if !u.Valid() {
		return errUninitialized
	}
	neg, m, err := literal(n)
	if err != nil {
		return err
	}
	var carry uint64
	for i, limb := range u.limbs {
		p := uint64(limb)*uint64(m) + carry
		u.limbs[i] = uint32(p)
		carry = p >> 32
	}
	if carry != 0 {
		u.push(uint32(carry))
	}
	u.trim()
	u.neg = u.neg != neg
	return nil
}

// divMag divides the magnitude in place, returning the remainder.
func (u *Unbounded) divMag(m uint32) uint32 {
	var rem uint64
	for i := len(u.limbs) - 1; i >= 0; i-- {
		cur := rem<<32 | uint64(u.limbs[i])
		u.limbs[i] = uint32(cur / uint64(m))
		rem = cur % uint64(m)
	}
	u.trim()
	return uint32(rem)
}

func (u *Unbounded) remMag(m uint32) uint32 {
	var rem uint64
	for i := len(u.limbs) - 1; i >= 0; i-- {
		rem = (rem<<32 | uint64(u.limbs[i])) % uint64(m)
	}
	return uint32(rem)
}

// Div divides by n, rounding towards negative infinity.
func (u *Unbounded) Div(n int) error {
	if !u.Valid() {
		return errUninitialized
	}
	neg, m, err := literal(n)
	if err != nil {
		return err
	}
	if m == 0 {
		return fault.Errorf(fault.Domain, "division by zero")
	}
	neg = u.neg != neg
	if rem := u.divMag(m); rem != 0 && neg {
		u.addMag(1)
	}
	u.neg = neg
	return nil
}

// Rem replaces the value with the magnitude remainder of division by n, which
// must be positive; the result is never negative, whatever the sign of the
// dividend.
func (u *Unbounded) Rem(n int) error {
	if !u.Valid() {
		return errUninitialized
	}
	if n <= 0 {
		return fault.Errorf(fault.Domain, "remainder by non-positive %v", n)
	}
	_, m, err := literal(n)
	if err != nil {
		return err
	}
	rem := u.remMag(m)
	u.limbs = u.limbs[:1]
	u.limbs[0] = rem
	u.neg = false
	return nil
}

func compareMag(a, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Compare orders by sign then magnitude; zero compares equal whatever its sign.
func (u *Unbounded) Compare(other Number) (int, error) {
	o, ok := other.(*Unbounded)
	if !ok {
		return 0, mismatchError(u, other)
	}
	if !u.Valid() || !o.Valid() {
		return 0, errUninitialized
	}
	if u.isZero() && o.isZero() {
		return 0, nil
	}
	if u.neg != o.neg {
		if u.neg {
			return -1, nil
		}
		return 1, nil
	}
	c := compareMag(u.limbs, o.limbs)
	if u.neg {
		c = -c
	}
	return c, nil
}

// Glyph renders single limb values below 10 as digits, 10 as a line break,
// and 11 through 31 as nothing at all; any other value renders as the code
// point in the low 16 bits of its least significant limb. Those bits may name
// a UTF-16 surrogate (U+D800 through U+DFFF), which is returned as is; writers
// like runeio.WriteRune then substitute U+FFFD.
func (u *Unbounded) Glyph() (rune, bool, error) {
	if !u.Valid() {
		return 0, false, errUninitialized
	}
	if u.neg && !u.isZero() {
		return 0, false, fault.Errorf(fault.Domain, "printing negative number %v is unimplemented", u)
	}
	if len(u.limbs) == 1 {
		switch v := u.limbs[0]; {
		case v < 10:
			return rune('0' + v), true, nil
		case v == 10:
			return '\n', true, nil
		case v < 32:
			return 0, false, nil
		}
	}
	return rune(u.limbs[0] & 0xffff), true, nil
}

// String returns the decimal representation, or "invalid".
func (u *Unbounded) String() string {
	if !u.Valid() {
		return "invalid"
	}
	if u.isZero() {
		return "0"
	}

	const chunk = 1000000000
	mag := Unbounded{limbs: append([]uint32(nil), u.limbs...)}
	var parts []string
	for !mag.isZero() {
		parts = append(parts, strconv.FormatUint(uint64(mag.divMag(chunk)), 10))
	}

	var sb strings.Builder
	if u.neg {
		sb.WriteByte('-')
	}
	for i := len(parts) - 1; i >= 0; i-- {
		if i < len(parts)-1 {
			for pad := 9 - len(parts[i]); pad > 0; pad-- {
				sb.WriteByte('0')
			}
		}
		sb.WriteString(parts[i])
	}
	return sb.String()
}
