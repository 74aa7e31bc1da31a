package main

import "strconv"

// pointer locates the next tuple to execute: either an offset into the
// toplevel program, or an offset into one of the defined functions.
type pointer struct {
	inFunction bool
	fn         int
	offset     int
}

func toplevel(offset int) pointer       { return pointer{offset: offset} }
func inFunction(fn, offset int) pointer { return pointer{inFunction: true, fn: fn, offset: offset} }

// at returns a pointer into the same code at a different offset.
func (p pointer) at(offset int) pointer {
	p.offset = offset
	return p
}

func (p pointer) String() string {
	if p.inFunction {
		return strconv.Itoa(p.fn) + ":" + strconv.Itoa(p.offset)
	}
	return "Toplevel:" + strconv.Itoa(p.offset)
}

// callStack holds every pointer that has yet to resume execution; the top
// runs next.
type callStack []pointer

func (cs *callStack) push(p pointer) { *cs = append(*cs, p) }

func (cs *callStack) pop() (p pointer, ok bool) {
	i := len(*cs) - 1
	if i < 0 {
		return pointer{}, false
	}
	p, *cs = (*cs)[i], (*cs)[:i]
	return p, true
}

// each calls f with every pointer, starting from the top.
func (cs callStack) each(f func(p pointer)) {
	for i := len(cs) - 1; i >= 0; i-- {
		f(cs[i])
	}
}

func (cs callStack) strings() []string {
	ss := make([]string, 0, len(cs))
	cs.each(func(p pointer) { ss = append(ss, p.String()) })
	return ss
}
