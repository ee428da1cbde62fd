// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

package befunge

// Stack is the Befunge data stack.  Popping an empty stack
// yields 0.  A positive limit bounds the depth; pushing past
// it fails with StackOverflow.
type Stack struct {
	cells []Cell
	limit int
}

// NewStack returns an empty stack holding at most limit cells,
// or any number of cells if limit is not positive.
func NewStack(limit int) *Stack {
	return &Stack{limit: limit}
}

func (s *Stack) Depth() int {
	return len(s.cells)
}

func (s *Stack) Clear() {
	s.cells = s.cells[:0]
}

func (s *Stack) need(up int) error {
	if s.limit > 0 && len(s.cells)+up > s.limit {
		return StackOverflow
	}
	return nil
}

func (s *Stack) Push(c Cell) error {
	if err := s.need(1); err != nil {
		return err
	}
	s.cells = append(s.cells, c)
	return nil
}

// Pop removes and returns the top cell, or 0 if the stack is empty.
func (s *Stack) Pop() Cell {
	l := len(s.cells)
	if l == 0 {
		return 0
	}
	c := s.cells[l-1]
	s.cells = s.cells[:l-1]
	return c
}

// Pop2 pops b, then a.
func (s *Stack) Pop2() (a, b Cell) {
	b = s.Pop()
	a = s.Pop()
	return
}

// Peek returns the top cell, or 0 if the stack is empty.
func (s *Stack) Peek() Cell {
	if l := len(s.cells); l > 0 {
		return s.cells[l-1]
	}
	return 0
}

// dup ( a -- a a )
// An empty stack leaves two zeros, as if 0 had been popped.
func (s *Stack) dup() error {
	if len(s.cells) == 0 {
		if err := s.need(2); err != nil {
			return err
		}
		s.cells = append(s.cells, 0, 0)
		return nil
	}
	return s.Push(s.Peek())
}

// swap ( a b -- b a )
func (s *Stack) swap() error {
	if l := len(s.cells); l < 2 {
		if err := s.need(2 - l); err != nil {
			return err
		}
	}
	a, b := s.Pop2()
	s.cells = append(s.cells, b, a)
	return nil
}

// Values returns a copy of the stack, bottom first.
func (s *Stack) Values() []Cell {
	return append(make([]Cell, 0, len(s.cells)), s.cells...)
}
