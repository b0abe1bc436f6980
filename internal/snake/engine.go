package snake

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Fixed game parameters.
const (
	StartScore  = 5
	InputWindow = 500 * time.Millisecond // measured from the start of a tick
	TickPace    = 100 * time.Millisecond
)

// Cause records why a game ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	default:
		return "unknown"
	}
}

// GameState is the complete simulation state. It is owned by one Engine.
type GameState struct {
	Grid    Grid
	Snake   Snake
	Food    core.Position
	Score   int
	Heading core.Heading // heading for the next advance
	Over    bool
	Cause   Cause
	Tick    uint64
}

// Outcome is the result of one tick.
type Outcome struct {
	Tick     uint64
	Score    int
	GameOver bool
	Cause    Cause
}

// Engine runs one game from spawn to game over. Engines are not safe for
// concurrent use; one goroutine calls Tick or Run.
type Engine struct {
	state    GameState
	keys     <-chan core.Key
	rng      Rand
	clock    Clock
	arbiter  *Arbiter
	renderer Renderer
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed makes food placement reproducible.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source used for food placement.
func WithRand(rng Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithRenderer sets the frame sink.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithLogger sets the logger for game events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an engine reading turn keys from keys. The snake spawns at the
// grid centre heading right with an empty body and the starting score.
func New(keys <-chan core.Key, opts ...Option) *Engine {
	e := &Engine{
		keys:     keys,
		clock:    realClock{},
		renderer: discardRenderer{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.arbiter = NewArbiter(e.clock)

	grid := ClassicGrid()
	e.state = GameState{
		Grid:    grid,
		Snake:   NewSnake(grid.Center()),
		Score:   StartScore,
		Heading: core.HeadingRight,
	}
	e.state.Food = PlaceFood(grid, e.rng)
	return e
}

// Tick runs one simulation step:
//
//  1. evaluate collisions for the head produced by the previous tick
//  2. emit a frame; stop here if the game is over
//  3. advance with the heading resolved last window and trim to score
//  4. collect input until InputWindow after the tick started
//  5. wait TickPace
//
// Once the game is over Tick does nothing and returns the final outcome.
func (e *Engine) Tick(ctx context.Context) Outcome {
	if e.state.Over {
		return e.outcome()
	}

	start := e.clock.Now()
	e.state.Tick++

	e.evaluate()
	e.renderer.Draw(buildFrame(&e.state))
	if e.state.Over {
		e.logger.Debug("game over",
			"cause", e.state.Cause,
			"score", e.state.Score,
			"tick", e.state.Tick,
		)
		return e.outcome()
	}

	e.state.Snake.Advance(e.state.Heading)
	e.state.Snake.TrimToScore(e.state.Score)

	e.state.Heading = e.arbiter.Resolve(ctx, e.keys, e.state.Heading, start.Add(InputWindow))

	select {
	case <-ctx.Done():
	case <-e.clock.After(TickPace):
	}

	return e.outcome()
}

// evaluate checks the head against walls, the body and the food.
func (e *Engine) evaluate() {
	s := &e.state
	head := s.Snake.Head

	// Anything off the interior is wall; the head can only reach the
	// border ring since it moves one cell per tick.
	if !s.Grid.Interior(head) {
		s.Over = true
		s.Cause = CauseWall
	}

	if s.Snake.CollidesWithBody(head) {
		s.Over = true
		if s.Cause == CauseNone {
			s.Cause = CauseSelf
		}
	}

	if head == s.Food {
		s.Score++
		s.Food = PlaceFood(s.Grid, e.rng)
		e.logger.Debug("food eaten", "score", s.Score, "food", s.Food)
	}
}

// Run ticks until the game ends or ctx is cancelled. Cancellation returns
// the outcome so far together with ctx.Err().
func (e *Engine) Run(ctx context.Context) (Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return e.outcome(), err
		}
		if out := e.Tick(ctx); out.GameOver {
			return out, nil
		}
	}
}

// State returns a copy of the current state.
func (e *Engine) State() GameState {
	s := e.state
	s.Snake = e.state.Snake.Clone()
	return s
}

// Over reports whether the game has ended.
func (e *Engine) Over() bool {
	return e.state.Over
}

func (e *Engine) outcome() Outcome {
	return Outcome{
		Tick:     e.state.Tick,
		Score:    e.state.Score,
		GameOver: e.state.Over,
		Cause:    e.state.Cause,
	}
}
