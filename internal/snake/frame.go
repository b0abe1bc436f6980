package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Cell is a position tagged with what should be drawn there.
type Cell struct {
	Pos      core.Position
	Category core.Category
}

// Frame is everything a renderer needs for one tick.
type Frame struct {
	Tick     uint64
	Width    int
	Height   int
	Cells    []Cell // border, food, body, head in draw order
	Score    int
	GameOver bool
}

// Renderer receives one frame per tick. Draw must not retain Cells beyond
// the call unless it copies them.
type Renderer interface {
	Draw(f Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(Frame)

// Draw calls fn(f).
func (fn RendererFunc) Draw(f Frame) {
	fn(f)
}

type discardRenderer struct{}

func (discardRenderer) Draw(Frame) {}

// buildFrame lays out the state for drawing. The head goes last so it wins
// when it overlaps the body or food.
func buildFrame(s *GameState) Frame {
	border := s.Grid.Border()
	cells := make([]Cell, 0, len(border)+len(s.Snake.Body)+2)
	for _, p := range border {
		cells = append(cells, Cell{Pos: p, Category: core.CategoryBorder})
	}
	cells = append(cells, Cell{Pos: s.Food, Category: core.CategoryFood})
	for _, p := range s.Snake.Body {
		cells = append(cells, Cell{Pos: p, Category: core.CategoryBody})
	}
	cells = append(cells, Cell{Pos: s.Snake.Head, Category: core.CategoryHead})

	return Frame{
		Tick:     s.Tick,
		Width:    s.Grid.Width,
		Height:   s.Grid.Height,
		Cells:    cells,
		Score:    s.Score,
		GameOver: s.Over,
	}
}
