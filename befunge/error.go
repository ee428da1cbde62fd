package befunge

import "fmt"

// List of VM traps for Errno
const (
	Halted = Errno(iota)
	StackOverflow
	ZeroDivision
	IOError
	StepLimit
	EmptyProgram
	GridTooLarge
)

var strError = []string{
	"halted",
	"stack overflow",
	"zero division",
	"I/O error",
	"step limit exceeded",
	"empty program",
	"grid too large",
}

// Errno describes the reason for a VM trap.
type Errno int

func (e Errno) Error() string {
	return strError[e]
}

// Error describes the cause and the context of a VM trap.
type Error struct {
	Errno Errno // nature of the trap
	Err   error // I/O error when Errno is IOError
	IP    IP    // instruction pointer before the trap
	Instr Cell  // cell that raised the trap
	Stack []Cell
}

func (e *Error) Error() string {
	var msg = "befunge: "
	if e.Err != nil {
		msg += e.Err.Error()
	} else {
		msg += e.Errno.Error()
	}
	return msg + fmt.Sprintf(" at %s (%s)", e.IP, Decode(e.Instr))
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	errno, ok := target.(Errno)
	return ok && errno == e.Errno
}

func (vm *VM) newErrorFull(errno Errno, err error) error {
	return &Error{
		Errno: errno,
		Err:   err,
		IP:    vm.ip,
		Instr: vm.icell,
		Stack: vm.stack.Values(),
	}
}

func (vm *VM) newError(errno Errno) error {
	return vm.newErrorFull(errno, nil)
}

func (vm *VM) newIOError(e error) error {
	return vm.newErrorFull(IOError, e)
}

// LoadError reports a program that could not be turned into a grid.
type LoadError struct {
	Errno Errno
	Width int
	Line  int
}

func (e *LoadError) Error() string {
	switch e.Errno {
	case GridTooLarge:
		return fmt.Sprintf("befunge: %s: %d columns by %d lines", e.Errno, e.Width, e.Line)
	}
	return "befunge: " + e.Errno.Error()
}

func (e *LoadError) Is(target error) bool {
	errno, ok := target.(Errno)
	return ok && errno == e.Errno
}
