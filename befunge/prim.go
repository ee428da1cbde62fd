// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package befunge

import "io"

// Op is a decoded instruction.
type Op uint8

const (
	OpNop Op = iota
	OpDigit
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpNot
	OpGreater
	OpRight
	OpLeft
	OpUp
	OpDown
	OpRandom
	OpHorizontalIf
	OpVerticalIf
	OpStringMode
	OpDup
	OpSwap
	OpDrop
	OpOutInt
	OpOutChar
	OpBridge
	OpGet
	OpPut
	OpInInt
	OpInChar
	OpHalt
	numOps
)

// Decode maps a grid cell to its instruction.  Every value
// decodes; anything that is not an instruction is OpNop.
func Decode(c Cell) Op {
	if c >= '0' && c <= '9' {
		return OpDigit
	}
	switch c {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	case '%':
		return OpMod
	case '!':
		return OpNot
	case '`':
		return OpGreater
	case '>':
		return OpRight
	case '<':
		return OpLeft
	case '^':
		return OpUp
	case 'v':
		return OpDown
	case '?':
		return OpRandom
	case '_':
		return OpHorizontalIf
	case '|':
		return OpVerticalIf
	case '"':
		return OpStringMode
	case ':':
		return OpDup
	case '\\':
		return OpSwap
	case '$':
		return OpDrop
	case '.':
		return OpOutInt
	case ',':
		return OpOutChar
	case '#':
		return OpBridge
	case 'g':
		return OpGet
	case 'p':
		return OpPut
	case '&':
		return OpInInt
	case '~':
		return OpInChar
	case '@':
		return OpHalt
	}
	return OpNop
}

func (op Op) String() string {
	if op < numOps {
		return ops[op].name
	}
	return "?"
}

// nop ( -- )
func (vm *VM) nop() error {
	return nil
}

// 0-9 ( -- n )
func (vm *VM) digit() error {
	return vm.stack.Push(vm.icell - '0')
}

func flag(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

func (vm *VM) unaryOp(op func(c Cell) Cell) error {
	return vm.stack.Push(op(vm.stack.Pop()))
}

func (vm *VM) binaryOp(op func(a, b Cell) Cell) error {
	return vm.stack.Push(op(vm.stack.Pop2()))
}

// divOp is binaryOp for / and %, applying the zero divisor policy.
func (vm *VM) divOp(op func(a, b Cell) Cell) error {
	a, b := vm.stack.Pop2()
	if b == 0 {
		if vm.opt.DivZero == DivZeroFatal {
			return ZeroDivision
		}
		return vm.stack.Push(0)
	}
	return vm.stack.Push(op(a, b))
}

// + ( a b -- a+b )
func (vm *VM) add() error {
	return vm.binaryOp(func(a, b Cell) Cell { return a + b })
}

// - ( a b -- a-b )
func (vm *VM) sub() error {
	return vm.binaryOp(func(a, b Cell) Cell { return a - b })
}

// * ( a b -- a*b )
func (vm *VM) mul() error {
	return vm.binaryOp(func(a, b Cell) Cell { return a * b })
}

// / ( a b -- a/b )
func (vm *VM) div() error {
	return vm.divOp(func(a, b Cell) Cell { return a / b })
}

// % ( a b -- a%b )
func (vm *VM) mod() error {
	return vm.divOp(func(a, b Cell) Cell { return a % b })
}

// ! ( v -- flag )
func (vm *VM) not() error {
	return vm.unaryOp(func(c Cell) Cell { return flag(c == 0) })
}

// ` ( a b -- flag )
func (vm *VM) greater() error {
	return vm.binaryOp(func(a, b Cell) Cell { return flag(a > b) })
}

func (vm *VM) right() error { return vm.turn(Right) }
func (vm *VM) left() error  { return vm.turn(Left) }
func (vm *VM) up() error    { return vm.turn(Up) }
func (vm *VM) down() error  { return vm.turn(Down) }

func (vm *VM) turn(d Direction) error {
	vm.ip.Dir = d
	return nil
}

// ? ( -- )
func (vm *VM) random() error {
	return vm.turn(vm.opt.Rand.Direction())
}

// _ ( v -- )
func (vm *VM) horizontalIf() error {
	if vm.stack.Pop() == 0 {
		return vm.turn(Right)
	}
	return vm.turn(Left)
}

// | ( v -- )
func (vm *VM) verticalIf() error {
	if vm.stack.Pop() == 0 {
		return vm.turn(Down)
	}
	return vm.turn(Up)
}

// " ( -- )
func (vm *VM) stringMode() error {
	vm.strmode = !vm.strmode
	return nil
}

// : ( a -- a a )
func (vm *VM) dup() error {
	return vm.stack.dup()
}

// \ ( a b -- b a )
func (vm *VM) swap() error {
	return vm.stack.swap()
}

// $ ( a -- )
func (vm *VM) drop() error {
	vm.stack.Pop()
	return nil
}

// . ( n -- )
func (vm *VM) outInt() error {
	if err := vm.out.WriteInt(vm.stack.Pop()); err != nil {
		return vm.newIOError(err)
	}
	return nil
}

// , ( c -- )
func (vm *VM) outChar() error {
	if err := vm.out.WriteChar(vm.stack.Pop()); err != nil {
		return vm.newIOError(err)
	}
	return nil
}

// # ( -- )
func (vm *VM) bridge() error {
	vm.ip.Advance(vm.grid.height, vm.grid.width)
	return nil
}

// g ( x y -- c )
func (vm *VM) get() error {
	x, y := vm.stack.Pop2()
	return vm.stack.Push(vm.grid.Get(int(y), int(x)))
}

// p ( v x y -- )
func (vm *VM) put() error {
	x, y := vm.stack.Pop2()
	vm.grid.Set(int(y), int(x), vm.stack.Pop())
	return nil
}

func (vm *VM) input(read func(Input) (Cell, error)) error {
	if err := vm.flush(); err != nil {
		return vm.newIOError(err)
	}
	if vm.in == nil {
		return vm.stack.Push(vm.opt.EOFValue)
	}
	switch c, err := read(vm.in); err {
	case nil:
		return vm.stack.Push(c)
	case io.EOF:
		return vm.stack.Push(vm.opt.EOFValue)
	default:
		return vm.newIOError(err)
	}
}

// & ( -- n | eof )
func (vm *VM) inInt() error {
	return vm.input(Input.ReadInt)
}

// ~ ( -- c | eof )
func (vm *VM) inChar() error {
	return vm.input(Input.ReadChar)
}

// @ ( -- )
func (vm *VM) halt() error {
	vm.state = StateHalted
	return nil
}

var ops = [numOps]struct {
	name string
	f    func(*VM) error
}{
	OpNop:   {"nop", (*VM).nop},
	OpDigit: {"digit", (*VM).digit},
	// arithmetics
	OpAdd: {"+", (*VM).add},
	OpSub: {"-", (*VM).sub},
	OpMul: {"*", (*VM).mul},
	OpDiv: {"/", (*VM).div},
	OpMod: {"%", (*VM).mod},
	// logic
	OpNot:     {"!", (*VM).not},
	OpGreater: {"`", (*VM).greater},
	// flow
	OpRight:        {">", (*VM).right},
	OpLeft:         {"<", (*VM).left},
	OpUp:           {"^", (*VM).up},
	OpDown:         {"v", (*VM).down},
	OpRandom:       {"?", (*VM).random},
	OpHorizontalIf: {"_", (*VM).horizontalIf},
	OpVerticalIf:   {"|", (*VM).verticalIf},
	OpStringMode:   {`"`, (*VM).stringMode},
	OpBridge:       {"#", (*VM).bridge},
	OpHalt:         {"@", (*VM).halt},
	// stack
	OpDup:  {":", (*VM).dup},
	OpSwap: {`\`, (*VM).swap},
	OpDrop: {"$", (*VM).drop},
	// self-modification
	OpGet: {"g", (*VM).get},
	OpPut: {"p", (*VM).put},
	// io
	OpOutInt:  {".", (*VM).outInt},
	OpOutChar: {",", (*VM).outChar},
	OpInInt:   {"&", (*VM).inInt},
	OpInChar:  {"~", (*VM).inChar},
}
