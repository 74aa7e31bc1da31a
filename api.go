package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/gonaz/internal/number"
	"github.com/jcorbin/gonaz/internal/panicerr"
)

// New creates a VM with the given options applied after the defaults.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Run executes the VM's program until its call stack empties, returning nil,
// or until a fatal error. Output is flushed in either case.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		vm.run(ctx)
		return vm.out.Flush()
	})
	var halted haltError
	if errors.As(err, &halted) {
		err = halted.error
	}
	return err
}

// Close releases any input streams.
func (vm *VM) Close() error { return vm.input.Close() }

func WithInput(r io.Reader) VMOption  { return withInput(r) }
func WithOutput(w io.Writer) VMOption { return withOutput(w) }
func WithTee(w io.Writer) VMOption    { return withTee(w) }

func WithDomain(dom number.Domain) VMOption { return domainOption(dom) }

// WithProgram sets the toplevel program code, which should already have
// been through NormalizeSource.
func WithProgram(code []byte) VMOption { return programOption(code) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
