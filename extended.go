package main

import (
	"github.com/jcorbin/gonaz/internal/fault"
)

type outcomeKind int

const (
	outcomeContinue outcomeKind = iota
	outcomeYield
)

// outcome tells the scan loop how to proceed after an extended instruction:
// either continue scanning some bytes further on, or yield to the call stack.
type outcome struct {
	kind    outcomeKind
	advance int
}

func continueAt(advance int) outcome { return outcome{kind: outcomeContinue, advance: advance} }

var yield = outcome{kind: outcomeYield}

// extended executes the "x" instruction at the start of code, which is
// located at here.
func (vm *VM) extended(here pointer, code []byte) outcome {
	switch code[0] {
	case '0':
		return continueAt(2)
	case '1':
		return vm.defineFunction(here, code)
	case '2':
		return vm.storeVariable(here, code)
	case '3':
		return vm.conditionalCall(here, code)
	}
	vm.halt(fault.Errorf(fault.Syntax, "unknown extended opcode %q at %v", tupleAt(code, 0), here))
	return yield
}

// defineFunction implements "1xNf...": function N gets the code following
// "f". Execution resumes after the first "0x" tuple, or at the end of the
// line, whichever comes first.
func (vm *VM) defineFunction(here pointer, code []byte) outcome {
	if byteAt(code, 3) != 'f' {
		vm.halt(fault.Errorf(fault.Syntax, "1x at %v must be followed by Nf", here))
	}
	fn, ok := digitAt(code, 2)
	if !ok {
		vm.halt(fault.Errorf(fault.Syntax, "invalid function number %q in 1x at %v", byteAt(code, 2), here))
	}
	vm.haltif(vm.functions.define(fn, code[4:]))
	vm.logf("define %v: %q", fn, vm.functions.source(fn))

	end := 4
	for ; ; end += 2 {
		c := byteAt(code, end)
		if c == '\n' || c == 0 {
			break
		}
		// padding shifts tuple alignment by one
		if c == ' ' {
			end--
			continue
		}
		if c == '0' && byteAt(code, end+1) == 'x' {
			end += 2
			break
		}
	}
	return continueAt(end)
}

// storeVariable implements "2xNv": variable N gets a copy of the accumulator.
func (vm *VM) storeVariable(here pointer, code []byte) outcome {
	if byteAt(code, 3) != 'v' {
		vm.halt(fault.Errorf(fault.Syntax, "2x at %v must be followed by Nv", here))
	}
	i, ok := digitAt(code, 2)
	if !ok {
		vm.halt(fault.Errorf(fault.Syntax, "invalid variable number %q in 2x at %v", byteAt(code, 2), here))
	}
	vm.setVariable(i, vm.accumulator())
	return continueAt(4)
}

// conditionalCall implements "3xNvFc": when comparing the accumulator with
// variable N satisfies c (l: less, e: equal, g: greater) function F is called.
// Toplevel code resumes after the instruction once F returns; within a
// function, F replaces the rest of the caller.
func (vm *VM) conditionalCall(here pointer, code []byte) outcome {
	if byteAt(code, 3) != 'v' {
		vm.halt(fault.Errorf(fault.Syntax, "3x at %v must be followed by Nv", here))
	}
	cond := byteAt(code, 5)
	if cond != 'l' && cond != 'e' && cond != 'g' {
		vm.halt(fault.Errorf(fault.Syntax, "3x at %v must be followed by Nv then Fl, Fe, or Fg", here))
	}
	i, ok := digitAt(code, 2)
	if !ok {
		vm.halt(fault.Errorf(fault.Syntax, "invalid variable number %q in 3x at %v", byteAt(code, 2), here))
	}
	fn, ok := digitAt(code, 4)
	if !ok {
		vm.halt(fault.Errorf(fault.Syntax, "invalid function number %q in 3x at %v", byteAt(code, 4), here))
	}

	cmp, err := vm.acc.Compare(vm.vars[i])
	vm.haltif(err)
	if !(cmp < 0 && cond == 'l' || cmp == 0 && cond == 'e' || cmp > 0 && cond == 'g') {
		return continueAt(6)
	}

	vm.logf("branch %v to function %v", here, fn)
	if !here.inFunction {
		vm.stack.push(here.at(here.offset + 6))
	}
	vm.stack.push(inFunction(fn, 0))
	return yield
}
