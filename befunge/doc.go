// Copyright 2011, 2013 Vadim Vygonets. All rights reserved.
// Use of this source code is governed by the Bugroff
// license that can be found in the LICENSE file.

// Package befunge implements a Befunge-93 interpreter.
//
// A program is a rectangle of cells on a torus, loaded from
// text one row per line and padded with spaces.  The VM keeps
// one instruction pointer, starting at the top left corner
// heading right, and one stack of signed 64-bit cells.
// Popping an empty stack yields 0.
//
// Each cycle the VM executes the cell under the instruction
// pointer and moves one cell along its heading, wrapping
// around the edges.  Cells that are not instructions do
// nothing.  In string mode every cell but " is pushed as its
// code point.
//
// Stack effects are written ( before -- after ), top of stack
// rightmost.
//
//	0-9	( -- n )		push digit
//	+	( a b -- a+b )
//	-	( a b -- a-b )
//	*	( a b -- a*b )
//	/	( a b -- a/b )		truncated; b=0 per DivZeroPolicy
//	%	( a b -- a%b )		sign of a; b=0 per DivZeroPolicy
//	!	( v -- flag )		1 if v is 0, else 0
//	`	( a b -- flag )		1 if a>b, else 0
//	>	( -- )			head right
//	<	( -- )			head left
//	^	( -- )			head up
//	v	( -- )			head down
//	?	( -- )			head in a random direction
//	_	( v -- )		right if v is 0, else left
//	|	( v -- )		down if v is 0, else up
//	"	( -- )			toggle string mode
//	:	( a -- a a )		two zeros on an empty stack
//	\	( a b -- b a )
//	$	( a -- )
//	.	( n -- )		write n in decimal and a space
//	,	( c -- )		write code point c
//	#	( -- )			skip the next cell
//	g	( x y -- c )		push the cell at column x, row y
//	p	( v x y -- )		store v at column x, row y
//	&	( -- n )		read a decimal number
//	~	( -- c )		read a code point
//	@	( -- )			halt
//
// g and p wrap their coordinates like the instruction pointer.
// & and ~ push Options.EOFValue once input is exhausted.
//
// Fatal conditions stop the VM with an *Error: output failure,
// a stack deeper than Options.MaxStack, more cycles than
// Options.MaxSteps, and a zero divisor under DivZeroFatal.
package befunge
