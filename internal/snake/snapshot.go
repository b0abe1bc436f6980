package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Phase is the engine's state machine position.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseGameOver Phase = "game_over"
)

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Score    int
	BodyLen  int
	HeadX    int
	HeadY    int
	Dir      core.Heading
	FoodX    int
	FoodY    int
	Phase    Phase
	EndCause Cause
}

// Snapshot returns the current game snapshot.
func (e *Engine) Snapshot() Snapshot {
	phase := PhaseRunning
	if e.state.Over {
		phase = PhaseGameOver
	}
	return Snapshot{
		Tick:     e.state.Tick,
		Score:    e.state.Score,
		BodyLen:  e.state.Snake.Len(),
		HeadX:    e.state.Snake.Head.X,
		HeadY:    e.state.Snake.Head.Y,
		Dir:      e.state.Heading,
		FoodX:    e.state.Food.X,
		FoodY:    e.state.Food.Y,
		Phase:    phase,
		EndCause: e.state.Cause,
	}
}

// DebugState returns a string representation of the game state.
func (e *Engine) DebugState() string {
	s := e.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Phase: %s\n", s.Tick, s.Score, s.Phase)
	fmt.Fprintf(&b, "Body len: %d, Direction: %s\n", s.BodyLen, s.Dir)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", s.HeadX, s.HeadY, s.FoodX, s.FoodY)
	if s.Phase == PhaseGameOver {
		fmt.Fprintf(&b, "Cause: %s\n", s.EndCause)
	}
	return b.String()
}
