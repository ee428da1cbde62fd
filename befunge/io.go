package befunge

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Input is the source for & and ~.  Both methods return io.EOF
// once the input is exhausted.
type Input interface {
	ReadInt() (Cell, error)
	ReadChar() (Cell, error)
}

// Output is the sink for . and ,.
type Output interface {
	WriteInt(c Cell) error
	WriteChar(c Cell) error
}

// Flusher is implemented by outputs that buffer.  The VM
// flushes before reading input and when it stops.
type Flusher interface {
	Flush() error
}

type streamInput struct {
	r *bufio.Reader
}

// NewStreamInput reads text in the given encoding from r.
// A nil encoding means UTF-8.
func NewStreamInput(r io.Reader, enc encoding.Encoding) Input {
	if enc == nil {
		enc = unicode.UTF8
	}
	return &streamInput{r: bufio.NewReader(enc.NewDecoder().Reader(r))}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ReadInt skips anything that does not start a decimal number,
// reads an optionally negative number and swallows one newline
// directly after it.
func (in *streamInput) ReadInt() (Cell, error) {
	var (
		num []rune
		r   rune
		err error
	)
	for {
		if r, _, err = in.r.ReadRune(); err != nil {
			return 0, err
		}
		if isDigit(r) {
			break
		}
		if r == '-' {
			next, _, err := in.r.ReadRune()
			if err != nil {
				return 0, err
			}
			if isDigit(next) {
				num = append(num, '-')
				r = next
				break
			}
			in.r.UnreadRune()
		}
	}
	for ; err == nil && isDigit(r); r, _, err = in.r.ReadRune() {
		num = append(num, r)
	}
	switch {
	case err == io.EOF:
	case err != nil:
		return 0, err
	case r == '\r':
		if r, _, err = in.r.ReadRune(); err == nil && r != '\n' {
			in.r.UnreadRune()
		}
	case r != '\n':
		in.r.UnreadRune()
	}
	// out of range saturates
	n, _ := strconv.ParseInt(string(num), 10, 64)
	return Cell(n), nil
}

func (in *streamInput) ReadChar() (Cell, error) {
	r, _, err := in.r.ReadRune()
	if err != nil {
		return 0, err
	}
	return Cell(r), nil
}

type streamOutput struct {
	w   *bufio.Writer
	enc *encoding.Encoder
}

// NewStreamOutput writes text in the given encoding to w.
// Code points the encoding cannot represent are replaced.
// A nil encoding means UTF-8.
func NewStreamOutput(w io.Writer, enc encoding.Encoding) Output {
	if enc == nil {
		enc = unicode.UTF8
	}
	return &streamOutput{
		w:   bufio.NewWriter(w),
		enc: encoding.ReplaceUnsupported(enc.NewEncoder()),
	}
}

func (out *streamOutput) WriteInt(c Cell) error {
	_, err := fmt.Fprintf(out.w, "%d ", c)
	return err
}

func (out *streamOutput) WriteChar(c Cell) error {
	r := rune(c)
	if Cell(r) != c {
		r = utf8.RuneError
	}
	s, err := out.enc.String(string(r))
	if err != nil {
		return err
	}
	_, err = out.w.WriteString(s)
	return err
}

func (out *streamOutput) Flush() error {
	return out.w.Flush()
}

// ValueInput serves a fixed list of values to both & and ~.
type ValueInput struct {
	values []Cell
}

func NewValueInput(values ...Cell) *ValueInput {
	return &ValueInput{values: values}
}

func (in *ValueInput) next() (Cell, error) {
	if len(in.values) == 0 {
		return 0, io.EOF
	}
	c := in.values[0]
	in.values = in.values[1:]
	return c, nil
}

func (in *ValueInput) ReadInt() (Cell, error)  { return in.next() }
func (in *ValueInput) ReadChar() (Cell, error) { return in.next() }

// Len returns the number of values not yet read.
func (in *ValueInput) Len() int {
	return len(in.values)
}
