package main

import "github.com/jcorbin/gonaz/internal/number"

const numVariables = 10

// registers holds the accumulator and the general variables; all arithmetic
// happens on the accumulator in place, other access copies.
type registers struct {
	acc  number.Number
	vars [numVariables]number.Number
}

// init sets the accumulator to 0 and every variable to uninitialized,
// leaving any already set register alone.
func (regs *registers) init(dom number.Domain) {
	if regs.acc == nil {
		regs.acc = dom.From(0)
	}
	for i, v := range regs.vars {
		if v == nil {
			regs.vars[i] = dom.Invalid()
		}
	}
}

func (regs *registers) accumulator() number.Number { return regs.acc.Copy() }
func (regs *registers) setAccumulator(n number.Number) { regs.acc = n }

func (regs *registers) variable(i int) number.Number { return regs.vars[i].Copy() }
func (regs *registers) setVariable(i int, n number.Number) { regs.vars[i] = n }
