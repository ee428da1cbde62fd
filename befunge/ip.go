package befunge

import "fmt"

// Direction is the heading of the instruction pointer.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

var directions = []struct {
	name       string
	drow, dcol int
}{
	Right: {"right", 0, 1},
	Down:  {"down", 1, 0},
	Left:  {"left", 0, -1},
	Up:    {"up", -1, 0},
}

func (d Direction) String() string {
	if int(d) < len(directions) {
		return directions[d].name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Delta returns the row and column step of one move in direction d.
func (d Direction) Delta() (drow, dcol int) {
	return directions[d].drow, directions[d].dcol
}

// IP is the instruction pointer: a grid position and a heading.
type IP struct {
	Row, Col int
	Dir      Direction
}

func (ip IP) String() string {
	return fmt.Sprintf("(%d,%d) %s", ip.Col, ip.Row, ip.Dir)
}

// Advance moves ip one cell along its heading on a torus of
// the given height and width.
func (ip *IP) Advance(height, width int) {
	drow, dcol := ip.Dir.Delta()
	ip.Row = wrap(ip.Row+drow, height)
	ip.Col = wrap(ip.Col+dcol, width)
}

// wrap reduces n into [0, m).
func wrap(n, m int) int {
	return (n%m + m) % m
}
