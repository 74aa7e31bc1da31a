// Package fault defines the kinds of fatal error an interpreter run may end with.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal error; every Kind is itself an error so that
// errors.Is(err, fault.Range) matches any Error of that kind.
type Kind int

// Error kinds.
const (
	Syntax             Kind = iota + 1 // malformed tuple or extended form
	UndefinedReference                 // empty function slot, uninitialized number
	Redefinition                       // function slot set twice
	Range                              // bounded arithmetic overflow
	Domain                             // invalid literal operand, unprintable value
	Protocol                           // lookahead buffer misuse
)

var kindNames = [...]string{
	Syntax:             "syntax error",
	UndefinedReference: "undefined reference",
	Redefinition:       "redefinition error",
	Range:              "range error",
	Domain:             "domain error",
	Protocol:           "protocol error",
}

func (k Kind) Error() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("fault kind %d", int(k))
}

// Error is a fatal error of some Kind with a detail message.
type Error struct {
	Kind
	Msg string
}

// Errorf creates a new Error of the given kind.
func Errorf(kind Kind, mess string, args ...interface{}) error {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	return Error{kind, mess}
}

func (err Error) Error() string {
	if err.Msg == "" {
		return err.Kind.Error()
	}
	return fmt.Sprintf("%v: %v", err.Kind, err.Msg)
}

func (err Error) Unwrap() error { return err.Kind }

// KindOf returns the Kind of the first Error found in err's chain, or 0.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return 0
}
