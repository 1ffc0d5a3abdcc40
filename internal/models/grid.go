package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("width and height must be at least 1")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
)

// Position is a cell coordinate; y grows southwards.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Grid owns the places of the world, indexed row-major by (y, x).
type Grid struct {
	Width  int
	Height int
	Start  Position

	cells [][]*Place
}

// NewGrid builds a grid whose places come from place, called in row-major
// order. The centre cell is then replaced by a start place.
func NewGrid(width, height int, place func(x, y int) *Place) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("new grid %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	g := &Grid{
		Width:  width,
		Height: height,
		Start:  Position{X: width / 2, Y: height / 2},
		cells:  make([][]*Place, height),
	}
	for y := 0; y < height; y++ {
		row := make([]*Place, width)
		for x := 0; x < width; x++ {
			row[x] = place(x, y)
		}
		g.cells[y] = row
	}
	g.cells[g.Start.Y][g.Start.X] = NewStartPlace()
	return g, nil
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// CellAt returns the place at (x, y).
func (g *Grid) CellAt(x, y int) (*Place, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("cell (%d, %d) on %dx%d grid: %w", x, y, g.Width, g.Height, ErrOutOfBounds)
	}
	return g.cells[y][x], nil
}

// StartPlace returns the place at the start position.
func (g *Grid) StartPlace() *Place {
	return g.cells[g.Start.Y][g.Start.X]
}

// ChartNeighbors charts the orthogonal neighbours of (x, y) that exist.
func (g *Grid) ChartNeighbors(x, y int) {
	for _, d := range []Position{{0, -1}, {0, 1}, {1, 0}, {-1, 0}} {
		nx, ny := x+d.X, y+d.Y
		if g.InBounds(nx, ny) {
			g.cells[ny][nx].Chart()
		}
	}
}

// IsFullyCharted reports whether every place has been charted.
func (g *Grid) IsFullyCharted() bool {
	for _, row := range g.cells {
		for _, p := range row {
			if !p.Charted() {
				return false
			}
		}
	}
	return true
}

// ChartedCount returns how many places have been charted.
func (g *Grid) ChartedCount() int {
	n := 0
	for _, row := range g.cells {
		for _, p := range row {
			if p.Charted() {
				n++
			}
		}
	}
	return n
}

// Each calls fn for every place in row-major order.
func (g *Grid) Each(fn func(x, y int, p *Place)) {
	for y, row := range g.cells {
		for x, p := range row {
			fn(x, y, p)
		}
	}
}
