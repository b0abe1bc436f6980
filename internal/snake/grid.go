// Package snake implements the snake simulation: the playfield bounds, food
// placement, the snake body, input arbitration and the tick engine that
// drives them.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Playfield dimensions.
const (
	GridWidth  = 32
	GridHeight = 16

	minGridSide = 4
)

// ErrGridTooSmall is returned when a grid leaves no interior for food.
var ErrGridTooSmall = errors.New("snake: grid too small")

// Grid is the immutable playfield. The outermost ring of cells is the border.
type Grid struct {
	Width  int
	Height int
}

// ClassicGrid returns the fixed 32x16 playfield.
func ClassicGrid() Grid {
	return Grid{Width: GridWidth, Height: GridHeight}
}

// NewGrid validates the dimensions and returns a Grid.
func NewGrid(width, height int) (Grid, error) {
	if width < minGridSide || height < minGridSide {
		return Grid{}, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrGridTooSmall, width, height, minGridSide, minGridSide)
	}
	return Grid{Width: width, Height: height}, nil
}

// IsBorder reports whether p lies on the outer ring of the grid.
func (g Grid) IsBorder(p core.Position) bool {
	return p.X == 0 || p.X == g.Width-1 || p.Y == 0 || p.Y == g.Height-1
}

// Interior reports whether p lies strictly inside the border.
func (g Grid) Interior(p core.Position) bool {
	return p.X >= 1 && p.X <= g.Width-2 && p.Y >= 1 && p.Y <= g.Height-2
}

// Center returns the spawn cell for the head.
func (g Grid) Center() core.Position {
	return core.Pos(g.Width/2, g.Height/2)
}

// Border returns every border cell, row by row.
func (g Grid) Border() []core.Position {
	cells := make([]core.Position, 0, 2*g.Width+2*(g.Height-2))
	for x := 0; x < g.Width; x++ {
		cells = append(cells, core.Pos(x, 0))
	}
	for y := 1; y < g.Height-1; y++ {
		cells = append(cells, core.Pos(0, y), core.Pos(g.Width-1, y))
	}
	for x := 0; x < g.Width; x++ {
		cells = append(cells, core.Pos(x, g.Height-1))
	}
	return cells
}
