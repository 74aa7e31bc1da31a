package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/gonaz/internal/fault"
	"github.com/jcorbin/gonaz/internal/fileinput"
	"github.com/jcorbin/gonaz/internal/flushio"
	"github.com/jcorbin/gonaz/internal/lookahead"
	"github.com/jcorbin/gonaz/internal/number"
	"github.com/jcorbin/gonaz/internal/runeio"
)

// VM interprets one program; it holds all interpreter state.
type VM struct {
	logfn func(mess string, args ...interface{})

	domain    number.Domain
	program   []byte
	functions functionTable
	registers

	stack callStack
	cur   pointer

	input fileinput.Input
	in    *lookahead.Reader
	out   flushio.WriteFlusher
}

var errHalt = errors.New("halt for debugging")

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

func (vm *VM) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if vm.out != nil {
			if ferr := vm.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()
	vm.logf("halt error: %v", err)
	panic(haltError{err})
}

func (vm *VM) haltif(err error) {
	if err != nil {
		vm.halt(err)
	}
}

func (vm *VM) logf(mess string, args ...interface{}) {
	if vm.logfn != nil {
		vm.logfn(mess, args...)
	}
}

func (vm *VM) init() {
	vm.registers.init(vm.domain)
	if vm.in == nil {
		vm.in = lookahead.NewReader(&vm.input)
	}
	if vm.out == nil {
		vm.out = flushio.NewWriteFlusher(io.Discard)
	}
}

func (vm *VM) run(ctx context.Context) {
	vm.init()
	vm.stack.push(toplevel(0))
	vm.execute(ctx)
}

// execute runs pointers off the top of the call stack until it is empty.
func (vm *VM) execute(ctx context.Context) {
	for {
		cur, ok := vm.stack.pop()
		if !ok {
			return
		}
		vm.cur = cur
		vm.scan(ctx, cur, vm.code(cur))
	}
}

func (vm *VM) code(p pointer) []byte {
	if !p.inFunction {
		return vm.program
	}
	code, err := vm.functions.lookup(p.fn)
	vm.haltif(err)
	return code
}

// scan executes tuples from code starting at cur, until the end of code or
// until control passes to another pointer on the call stack.
func (vm *VM) scan(ctx context.Context, cur pointer, code []byte) {
	for off := cur.offset; off < len(code); {
		if c := code[off]; c == ' ' || c == '\n' {
			off++
			continue
		}
		vm.haltif(ctx.Err())

		here := cur.at(off)
		vm.cur = here
		if vm.logfn != nil {
			vm.logf("exec %v %q acc:%v", here, tupleAt(code, off), vm.acc)
		}

		d, isDigit := digitAt(code, off)
		if !isDigit {
			vm.halt(fault.Errorf(fault.Syntax, "unexpected %q at %v, expected a digit", code[off], here))
		}

		switch letter := byteAt(code, off+1); letter {
		case 'a':
			vm.haltif(vm.acc.Add(d))
		case 's':
			vm.haltif(vm.acc.Add(-d))
		case 'm':
			vm.haltif(vm.acc.Mul(d))
		case 'p':
			vm.haltif(vm.acc.Rem(d))
		case 'd':
			vm.haltif(vm.acc.Div(d))

		case 'v':
			vm.setAccumulator(vm.variable(d))

		case 'n':
			v := vm.variable(d)
			vm.haltif(v.Mul(-1))
			vm.setVariable(d, v)

		case 'o':
			vm.print(d)

		case 'r':
			vm.read(d)

		case 'h':
			vm.halt(errHalt)

		case 'f':
			if off+2 < len(code) {
				vm.stack.push(cur.at(off + 2))
			}
			vm.stack.push(inFunction(d, 0))
			return

		case 'x':
			switch res := vm.extended(here, code[off:]); res.kind {
			case outcomeContinue:
				off += res.advance
				continue
			case outcomeYield:
				return
			}

		default:
			vm.halt(fault.Errorf(fault.Syntax, "unknown opcode %q at %v", tupleAt(code, off), here))
		}
		off += 2
	}
}

func (vm *VM) print(count int) {
	if count == 0 {
		return
	}
	r, ok, err := vm.acc.Glyph()
	vm.haltif(err)
	if ok {
		_, err = runeio.RepeatRune(vm.out, r, count)
		vm.haltif(err)
	}
}

func (vm *VM) read(position int) {
	if position != 1 {
		vm.halt(fault.Errorf(fault.Syntax, "reading input byte %v is not implemented, only 1r", position))
	}
	vm.haltif(vm.out.Flush())
	c, err := vm.in.ReadNth(position)
	switch {
	case err == io.EOF:
		vm.logf("read EOF")
		vm.setAccumulator(vm.domain.From(-1))
	case err != nil:
		vm.halt(fmt.Errorf("read failed: %w", err))
	default:
		vm.setAccumulator(vm.domain.From(int(c)))
	}
}

// byteAt returns code[i], or 0 past the end of code.
func byteAt(code []byte, i int) byte {
	if i < len(code) {
		return code[i]
	}
	return 0
}

func digitAt(code []byte, i int) (int, bool) {
	if c := byteAt(code, i); c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	return 0, false
}

func tupleAt(code []byte, i int) []byte {
	end := i + 2
	if end > len(code) {
		end = len(code)
	}
	return code[i:end]
}
