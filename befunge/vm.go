// Copyright 2011 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package befunge

import (
	"context"
	"io"

	"github.com/tliron/commonlog"
)

// State is the run state of a VM.
type State uint8

const (
	StateRunning State = iota
	StateHalted
)

func (s State) String() string {
	if s == StateHalted {
		return "halted"
	}
	return "running"
}

// DivZeroPolicy selects what / and % do with a zero divisor.
type DivZeroPolicy uint8

const (
	DivZeroPush  DivZeroPolicy = iota // push 0 and go on
	DivZeroFatal                      // stop with ZeroDivision
)

// Options tune a VM.  The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	DivZero  DivZeroPolicy
	EOFValue Cell  // pushed by & and ~ at end of input
	MaxStack int   // 0 = unbounded
	MaxSteps int64 // 0 = unbounded
	Rand     Randomizer
	Trace    bool
}

func DefaultOptions() *Options {
	return &Options{EOFValue: -1}
}

// VM runs one Befunge-93 program.  It owns its grid, which
// the program may rewrite with p.
type VM struct {
	grid    *Grid
	stack   *Stack
	ip      IP
	icell   Cell // cell being executed
	strmode bool
	state   State
	steps   int64
	in      Input
	out     Output
	opt     Options
	log     commonlog.Logger
}

// NewVM returns a VM at the top left corner of g heading right.
// A nil in behaves as exhausted input, a nil out discards
// everything.  A nil opt means DefaultOptions.
func NewVM(g *Grid, in Input, out Output, opt *Options) *VM {
	if opt == nil {
		opt = DefaultOptions()
	}
	vm := &VM{
		grid:  g,
		stack: NewStack(opt.MaxStack),
		ip:    IP{Dir: Right},
		in:    in,
		out:   out,
		opt:   *opt,
		log:   commonlog.GetLogger("befunge.vm"),
	}
	if vm.out == nil {
		vm.out = NewStreamOutput(io.Discard, nil)
	}
	if vm.opt.Rand == nil {
		vm.opt.Rand = NewRandomizer(0)
	}
	return vm
}

func (vm *VM) Grid() *Grid      { return vm.grid }
func (vm *VM) IP() IP           { return vm.ip }
func (vm *VM) State() State     { return vm.state }
func (vm *VM) StringMode() bool { return vm.strmode }
func (vm *VM) Steps() int64     { return vm.steps }

// Stack returns a copy of the data stack, bottom first.
func (vm *VM) Stack() []Cell {
	return vm.stack.Values()
}

func (vm *VM) trace() {
	if vm.opt.Trace {
		vm.log.Debugf("%s %q %s s:%v", vm.ip, printable(vm.icell), Decode(vm.icell), vm.stack.Values())
	}
}

// Step executes the cell under the instruction pointer and
// moves on.  A halted VM is left untouched and Step returns
// Halted.  Any other error is fatal and halts the VM.
func (vm *VM) Step() error {
	if vm.state == StateHalted {
		return Halted
	}
	if vm.opt.MaxSteps > 0 && vm.steps >= vm.opt.MaxSteps {
		vm.state = StateHalted
		return vm.newError(StepLimit)
	}
	vm.icell = vm.grid.Get(vm.ip.Row, vm.ip.Col)
	vm.trace()
	vm.steps++
	var err error
	if vm.strmode && vm.icell != '"' {
		err = vm.stack.Push(vm.icell)
	} else {
		err = ops[Decode(vm.icell)].f(vm)
	}
	if err != nil {
		vm.state = StateHalted
		if errno, ok := err.(Errno); ok {
			err = vm.newError(errno)
		}
		return err
	}
	if vm.state == StateRunning {
		vm.ip.Advance(vm.grid.height, vm.grid.width)
	}
	return nil
}

func (vm *VM) flush() error {
	if f, ok := vm.out.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Run steps the VM until it halts.  ctx is checked before
// every cycle; once it is done the VM halts without executing
// the pending cell and Run returns ctx.Err().  Output is
// flushed on the way out.
func (vm *VM) Run(ctx context.Context) (err error) {
	defer func() {
		if ferr := vm.flush(); ferr != nil && err == nil {
			err = vm.newIOError(ferr)
		}
	}()
	for vm.state == StateRunning {
		if err = ctx.Err(); err != nil {
			vm.state = StateHalted
			vm.log.Infof("cancelled at %s after %d steps", vm.ip, vm.steps)
			return err
		}
		if err = vm.Step(); err != nil {
			vm.log.Infof("stopped: %s", err)
			return err
		}
	}
	vm.log.Debugf("halted at %s after %d steps", vm.ip, vm.steps)
	return nil
}
