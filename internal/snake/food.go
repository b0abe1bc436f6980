package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Rand is the subset of *rand.Rand used for food placement.
type Rand interface {
	Intn(n int) int
}

// PlaceFood draws a uniformly random interior cell: x in [1, W-2] and
// y in [1, H-2]. It does not look at the snake, so food may land on the body.
func PlaceFood(g Grid, rng Rand) core.Position {
	return core.Position{
		X: 1 + rng.Intn(g.Width-2),
		Y: 1 + rng.Intn(g.Height-2),
	}
}
