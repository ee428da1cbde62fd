package befunge

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestStreamInputReadInt(t *testing.T) {
	in := NewStreamInput(strings.NewReader("12 -3\nx45\n-\n-7"), nil)
	for _, want := range []Cell{12, -3, 45, -7} {
		got, err := in.ReadInt()
		if err != nil {
			t.Fatalf("ReadInt: %v, want %d", err, want)
		}
		if got != want {
			t.Errorf("ReadInt = %d, want %d", got, want)
		}
	}
	if _, err := in.ReadInt(); err != io.EOF {
		t.Errorf("ReadInt at end = %v, want io.EOF", err)
	}
}

func TestStreamInputNoNumber(t *testing.T) {
	in := NewStreamInput(strings.NewReader("abc -\n"), nil)
	if _, err := in.ReadInt(); err != io.EOF {
		t.Errorf("ReadInt without digits = %v, want io.EOF", err)
	}
}

func TestStreamInputSaturates(t *testing.T) {
	in := NewStreamInput(strings.NewReader("99999999999999999999999"), nil)
	got, err := in.ReadInt()
	if err != nil {
		t.Fatal(err)
	}
	if got != 1<<63-1 {
		t.Errorf("ReadInt = %d, want max int64", got)
	}
}

func TestStreamInputMixed(t *testing.T) {
	cases := []struct {
		src  string
		want []Cell
	}{
		{"5\nab", []Cell{5, 'a', 'b'}},
		{"5\r\nb", []Cell{5, 'b'}},
		{"5 b", []Cell{5, ' ', 'b'}},
		{"5\rb", []Cell{5, 'b'}},
	}
	for _, c := range cases {
		in := NewStreamInput(strings.NewReader(c.src), nil)
		n, err := in.ReadInt()
		if err != nil || n != c.want[0] {
			t.Errorf("%q: ReadInt = %d, %v", c.src, n, err)
			continue
		}
		for _, want := range c.want[1:] {
			if got, err := in.ReadChar(); err != nil || got != want {
				t.Errorf("%q: ReadChar = %q, %v; want %q", c.src, rune(got), err, rune(want))
			}
		}
		if _, err := in.ReadChar(); err != io.EOF {
			t.Errorf("%q: ReadChar at end = %v, want io.EOF", c.src, err)
		}
	}
}

func TestStreamInputEncoding(t *testing.T) {
	in := NewStreamInput(strings.NewReader("é"), nil)
	if c, _ := in.ReadChar(); c != 0xe9 {
		t.Errorf("utf-8 ReadChar = %#x, want 0xe9", c)
	}
	in = NewStreamInput(bytes.NewReader([]byte{0xe9}), charmap.ISO8859_1)
	if c, _ := in.ReadChar(); c != 0xe9 {
		t.Errorf("latin1 ReadChar = %#x, want 0xe9", c)
	}
}

func TestStreamOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewStreamOutput(&buf, nil)
	out.WriteInt(7)
	out.WriteInt(-12)
	out.WriteChar('A')
	out.WriteChar(0xe9)
	out.WriteChar(-1)
	if buf.Len() != 0 {
		t.Errorf("output not buffered: %q", buf.String())
	}
	if err := out.(Flusher).Flush(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "7 -12 Aé�"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestStreamOutputLatin1(t *testing.T) {
	var buf bytes.Buffer
	out := NewStreamOutput(&buf, charmap.ISO8859_1)
	if err := out.WriteChar(0xe9); err != nil {
		t.Fatal(err)
	}
	if err := out.WriteChar('中'); err != nil {
		t.Fatalf("unsupported rune: %v", err)
	}
	out.(Flusher).Flush()
	got := buf.Bytes()
	if len(got) != 2 || got[0] != 0xe9 {
		t.Errorf("latin1 output = %q", got)
	}
}

func TestValueInput(t *testing.T) {
	in := NewValueInput(3, 'x')
	if n, err := in.ReadInt(); n != 3 || err != nil {
		t.Errorf("ReadInt = %d, %v", n, err)
	}
	if in.Len() != 1 {
		t.Errorf("Len = %d, want 1", in.Len())
	}
	if c, err := in.ReadChar(); c != 'x' || err != nil {
		t.Errorf("ReadChar = %d, %v", c, err)
	}
	if _, err := in.ReadInt(); err != io.EOF {
		t.Errorf("ReadInt at end = %v, want io.EOF", err)
	}
}
