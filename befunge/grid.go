package befunge

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Cell is a value on the stack or in the grid.
type Cell int64

const space = Cell(' ')

// Limits bound the grid dimensions accepted by the loader.
// Zero means unbounded.
type Limits struct {
	MaxWidth, MaxHeight int
}

// Grid is the program text laid out on a torus.  Its
// dimensions are fixed at load time; cells stay writable.
type Grid struct {
	cells         []Cell
	width, height int
}

// NewGrid returns a height by width grid filled with spaces.
func NewGrid(height, width int) *Grid {
	g := &Grid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	for i := range g.cells {
		g.cells[i] = space
	}
	return g
}

// LoadString is Load for program text already in memory.
func LoadString(src string) (*Grid, error) {
	return Load(strings.NewReader(src), Limits{})
}

// Load reads UTF-8 program text.
func Load(r io.Reader, lim Limits) (*Grid, error) {
	return LoadEncoded(r, unicode.UTF8, lim)
}

// LoadEncoded reads program text in the given encoding, one
// grid row per line.  Short lines are padded with spaces.
func LoadEncoded(r io.Reader, enc encoding.Encoding, lim Limits) (*Grid, error) {
	var (
		br    = bufio.NewReader(enc.NewDecoder().Reader(r))
		lines [][]rune
		width int
	)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if line == "" && err == io.EOF {
			break
		}
		row := []rune(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		if len(row) > width {
			width = len(row)
		}
		lines = append(lines, row)
		if lim.MaxWidth > 0 && width > lim.MaxWidth ||
			lim.MaxHeight > 0 && len(lines) > lim.MaxHeight {
			return nil, &LoadError{Errno: GridTooLarge, Width: width, Line: len(lines)}
		}
		if err == io.EOF {
			break
		}
	}
	if width == 0 {
		return nil, &LoadError{Errno: EmptyProgram}
	}
	g := NewGrid(len(lines), width)
	for y, row := range lines {
		for x, c := range row {
			g.cells[y*width+x] = Cell(c)
		}
	}
	commonlog.GetLogger("befunge.grid").Debugf("loaded %dx%d grid", width, len(lines))
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(row, col int) int {
	return wrap(row, g.height)*g.width + wrap(col, g.width)
}

// Get returns the cell at (row, col), wrapping both coordinates.
func (g *Grid) Get(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set stores v at (row, col), wrapping both coordinates.
func (g *Grid) Set(row, col int, v Cell) {
	g.cells[g.index(row, col)] = v
}

// String renders the grid one line per row.  Cells that are
// not printable runes show as '.'.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		line := make([]rune, g.width)
		for x := range line {
			line[x] = printable(g.cells[y*g.width+x])
		}
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func printable(c Cell) rune {
	if c >= 0 && c <= utf8.MaxRune && strconv.IsPrint(rune(c)) {
		return rune(c)
	}
	return '.'
}
