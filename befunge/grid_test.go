package befunge

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func mustLoad(t *testing.T, src string) *Grid {
	t.Helper()
	g, err := LoadString(src)
	if err != nil {
		t.Fatalf("LoadString(%q): %v", src, err)
	}
	return g
}

func TestLoadDimensions(t *testing.T) {
	cases := []struct {
		src           string
		width, height int
	}{
		{"@", 1, 1},
		{"ab\nc", 2, 2},
		{"ab\nc\n", 2, 2},
		{"ab\r\ncde\r\n", 3, 2},
		{"ab\n\n", 2, 2},
		{"a\n\nbcd", 3, 3},
		{"é@", 2, 1},
	}
	for _, c := range cases {
		g := mustLoad(t, c.src)
		if g.Width() != c.width || g.Height() != c.height {
			t.Errorf("%q: %dx%d, want %dx%d", c.src, g.Width(), g.Height(), c.width, c.height)
		}
	}
}

func TestLoadPadsWithSpaces(t *testing.T) {
	g := mustLoad(t, "abc\nd\r\n")
	want := [][]Cell{{'a', 'b', 'c'}, {'d', ' ', ' '}}
	for y, row := range want {
		for x, c := range row {
			if got := g.Get(y, x); got != c {
				t.Errorf("Get(%d, %d) = %q, want %q", y, x, rune(got), rune(c))
			}
		}
	}
}

func TestLoadEmpty(t *testing.T) {
	for _, src := range []string{"", "\n", "\n\n\r\n"} {
		if _, err := LoadString(src); !errors.Is(err, EmptyProgram) {
			t.Errorf("LoadString(%q) = %v, want EmptyProgram", src, err)
		}
	}
}

func TestLoadLimits(t *testing.T) {
	cases := []struct {
		src string
		lim Limits
		ok  bool
	}{
		{"abc", Limits{MaxWidth: 3}, true},
		{"abcd", Limits{MaxWidth: 3}, false},
		{"a\nb", Limits{MaxHeight: 2}, true},
		{"a\nb\nc", Limits{MaxHeight: 2}, false},
		{strings.Repeat("x", 80) + "\n" + strings.Repeat("y\n", 24), Limits{80, 25}, true},
	}
	for _, c := range cases {
		_, err := Load(strings.NewReader(c.src), c.lim)
		if c.ok && err != nil {
			t.Errorf("%q with %+v: %v", c.src, c.lim, err)
		}
		if !c.ok && !errors.Is(err, GridTooLarge) {
			t.Errorf("%q with %+v = %v, want GridTooLarge", c.src, c.lim, err)
		}
	}
}

func TestLoadEncoded(t *testing.T) {
	g, err := LoadEncoded(bytes.NewReader([]byte{0xe9, '@'}), charmap.ISO8859_1, Limits{})
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Get(0, 0); got != 0xe9 {
		t.Errorf("latin1 cell = %#x, want 0xe9", got)
	}
}

func TestGridToroidal(t *testing.T) {
	g := mustLoad(t, "abc\ndef\nghi\njkl")
	h, w := g.Height(), g.Width()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := g.Get(row, col)
			for _, off := range [][2]int{{h, 0}, {-h, 0}, {0, w}, {0, -w}, {3 * h, -5 * w}} {
				if got := g.Get(row+off[0], col+off[1]); got != c {
					t.Errorf("Get(%d, %d) = %q, Get(%d, %d) = %q",
						row, col, rune(c), row+off[0], col+off[1], rune(got))
				}
			}
		}
	}
}

func TestGridSetGet(t *testing.T) {
	g := NewGrid(3, 4)
	coords := [][2]int{{0, 0}, {2, 3}, {-1, -1}, {5, 9}, {-100, 37}}
	for i, rc := range coords {
		v := Cell(1000 + i)
		g.Set(rc[0], rc[1], v)
		if got := g.Get(rc[0], rc[1]); got != v {
			t.Errorf("Set then Get at %v = %d, want %d", rc, got, v)
		}
	}
	if got := g.Get(2, 3); got != 1002 {
		t.Errorf("(-1,-1) did not wrap to (2,3): %d", got)
	}
}

func TestGridString(t *testing.T) {
	g := mustLoad(t, "a b\nc")
	if got := g.String(); got != "a b\nc\n" {
		t.Errorf("String = %q", got)
	}
	g.Set(1, 0, 0)
	g.Set(1, 1, -1)
	if got := g.String(); got != "a b\n..\n" {
		t.Errorf("String with unprintable cells = %q", got)
	}
}
