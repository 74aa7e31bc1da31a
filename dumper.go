package main

import (
	"fmt"
	"io"
)

// vmDumper writes a human readable account of interpreter state.
type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	snap := dump.vm.snapshot(nil)
	for i, fn := range snap.Functions {
		fmt.Fprintf(dump.out, "Function %v: %v\n", i, fn)
	}
	for i, v := range snap.Variables {
		fmt.Fprintf(dump.out, "Var %v: %v\n", i, v)
	}
	fmt.Fprintf(dump.out, "Acc: %v\n", snap.Accumulator)
	fmt.Fprintf(dump.out, "Current: %v\n", snap.Current)
	fmt.Fprintf(dump.out, "Callstack:\n")
	for _, p := range snap.Callstack {
		fmt.Fprintf(dump.out, "  %v\n", p)
	}
	if snap.Buffered != "" {
		fmt.Fprintf(dump.out, "Buffered input: %v\n", snap.Buffered)
	}
}
