// Package console feeds & and ~ from an interactive terminal
// with line editing.
package console

import (
	"errors"
	"io"

	"github.com/peterh/liner"

	"github.com/AtheMathmo/rubefunge-93/befunge"
)

type prompter interface {
	Prompt(prompt string) (string, error)
}

// lineReader turns prompted lines into a byte stream.
type lineReader struct {
	p      prompter
	prompt string
	buf    []byte
	eof    bool
}

func (r *lineReader) Read(b []byte) (int, error) {
	for len(r.buf) == 0 {
		if r.eof {
			return 0, io.EOF
		}
		line, err := r.p.Prompt(r.prompt)
		switch {
		case err == nil:
			r.buf = append([]byte(line), '\n')
		case errors.Is(err, io.EOF), errors.Is(err, liner.ErrPromptAborted):
			r.eof = true
		default:
			return 0, err
		}
	}
	n := copy(b, r.buf)
	r.buf = r.buf[n:]
	return n, nil
}

// Console is a befunge.Input reading lines from the terminal.
// Ctrl-D and Ctrl-C end the input.
type Console struct {
	befunge.Input
	state *liner.State
}

// New puts the terminal in line editing mode.  Close restores it.
func New(prompt string) *Console {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	return &Console{
		Input: befunge.NewStreamInput(&lineReader{p: st, prompt: prompt}, nil),
		state: st,
	}
}

func (c *Console) Close() error {
	return c.state.Close()
}
