package main

import (
	"bytes"

	"github.com/jcorbin/gonaz/internal/fault"
)

const numFunctions = 10

// functionTable maps function numbers to their code; a slot may only be
// defined once.
type functionTable [numFunctions][]byte

// define copies text as the body of function i, up to the first line
// break, comment, or "0x" end marker.
func (ft *functionTable) define(i int, text []byte) error {
	if ft[i] != nil {
		return fault.Errorf(fault.Redefinition, "function %v already defined", i)
	}
	body := make([]byte, len(text))
	copy(body, text)
	for j, c := range body {
		if c == '\n' || c == '#' || (c == '0' && j+1 < len(body) && body[j+1] == 'x') {
			body = body[:j]
			break
		}
	}
	ft[i] = body
	return nil
}

func (ft *functionTable) lookup(i int) ([]byte, error) {
	if ft[i] == nil {
		return nil, fault.Errorf(fault.UndefinedReference, "call to undefined function %v", i)
	}
	return ft[i], nil
}

func (ft *functionTable) defined(i int) bool { return ft[i] != nil }

// source returns the body of function i with any blanked out comment
// padding removed, for display.
func (ft *functionTable) source(i int) string {
	return string(bytes.TrimRight(ft[i], " "))
}
