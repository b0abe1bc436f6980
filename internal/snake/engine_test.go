package snake

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// newTestEngine returns an engine whose timers fire immediately and whose
// food sits out of the way at (2,2).
func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithSeed(1), WithClock(instantClock{now: epoch})}, opts...)
	e := New(nil, opts...)
	e.state.Food = core.Pos(2, 2)
	return e
}

// tickWithKeys runs one non-terminal tick, feeding keys during the window.
func tickWithKeys(t *testing.T, e *Engine, clk *manualClock, keys chan<- core.Key, ks ...core.Key) Outcome {
	t.Helper()

	done := make(chan Outcome, 1)
	go func() {
		done <- e.Tick(context.Background())
	}()

	for _, k := range ks {
		select {
		case keys <- k:
		case <-time.After(time.Second):
			t.Fatalf("key %v not consumed", k)
		}
	}
	clk.fire <- clk.now // input window
	clk.fire <- clk.now // pacing

	return <-done
}

func TestNewEngineInitialState(t *testing.T) {
	e := New(nil, WithSeed(7))
	s := e.State()

	if s.Snake.Head != core.Pos(16, 8) {
		t.Errorf("Head = %v, expected (16,8)", s.Snake.Head)
	}
	if s.Snake.Len() != 0 {
		t.Errorf("Body len = %d, expected 0", s.Snake.Len())
	}
	if s.Score != StartScore {
		t.Errorf("Score = %d, expected %d", s.Score, StartScore)
	}
	if s.Heading != core.HeadingRight {
		t.Errorf("Heading = %v, expected right", s.Heading)
	}
	if !s.Grid.Interior(s.Food) {
		t.Errorf("initial food %v is not interior", s.Food)
	}
	if s.Over {
		t.Error("new engine should not be over")
	}
}

func TestFirstTickScenario(t *testing.T) {
	e := newTestEngine(t)

	out := e.Tick(context.Background())
	s := e.State()

	if out.GameOver {
		t.Fatal("first tick should not end the game")
	}
	if s.Snake.Head != core.Pos(17, 8) {
		t.Errorf("Head = %v, expected (17,8)", s.Snake.Head)
	}
	if s.Snake.Len() != 1 || s.Snake.Body[0] != core.Pos(16, 8) {
		t.Errorf("Body = %v, expected [(16,8)]", s.Snake.Body)
	}
	if s.Score != StartScore {
		t.Errorf("Score = %d, expected %d", s.Score, StartScore)
	}
}

func TestBorderDeathOneTickAfterCrossing(t *testing.T) {
	e := newTestEngine(t)
	e.state.Snake = NewSnake(core.Pos(1, 8))
	e.state.Heading = core.HeadingLeft

	out := e.Tick(context.Background())
	if out.GameOver {
		t.Fatal("game should not end on the tick that moves onto the border")
	}
	head := e.State().Snake.Head
	if head != core.Pos(0, 8) || !e.state.Grid.IsBorder(head) {
		t.Fatalf("Head = %v, expected border cell (0,8)", head)
	}

	out = e.Tick(context.Background())
	if !out.GameOver {
		t.Fatal("collision check after crossing should end the game")
	}
	if out.Cause != CauseWall {
		t.Errorf("Cause = %v, expected wall", out.Cause)
	}
	// The snake does not move on the terminal tick
	if e.State().Snake.Head != core.Pos(0, 8) {
		t.Errorf("Head moved to %v on the terminal tick", e.State().Snake.Head)
	}
}

func TestEatingFood(t *testing.T) {
	e := newTestEngine(t, WithRand(&seqRand{vals: []int{2, 3}}))
	e.state.Food = core.Pos(10, 5)
	e.state.Snake = NewSnake(core.Pos(9, 5))

	e.Tick(context.Background())
	if e.state.Snake.Head != core.Pos(10, 5) {
		t.Fatalf("Head = %v, expected (10,5)", e.state.Snake.Head)
	}
	if e.state.Score != StartScore {
		t.Fatalf("Score = %d, food must not be counted before the next evaluation", e.state.Score)
	}

	e.Tick(context.Background())
	s := e.State()
	if s.Score != StartScore+1 {
		t.Errorf("Score = %d, expected %d", s.Score, StartScore+1)
	}
	if s.Food != core.Pos(3, 4) {
		t.Errorf("Food = %v, expected relocation to (3,4)", s.Food)
	}
	if !s.Grid.Interior(s.Food) {
		t.Errorf("Food %v is not interior", s.Food)
	}
}

func TestBodyLengthTracksScore(t *testing.T) {
	e := newTestEngine(t)
	e.state.Snake = NewSnake(core.Pos(2, 8))

	// Body fills up after five moves; food is reached on the seventh
	e.state.Food = core.Pos(9, 8)
	e.rng = &seqRand{vals: []int{0}}

	expectedLens := []int{1, 2, 3, 4, 5, 5, 5, 6, 6}
	for i, want := range expectedLens {
		e.Tick(context.Background())
		s := e.State()
		if s.Snake.Len() > s.Score {
			t.Fatalf("tick %d: body len %d exceeds score %d", i+1, s.Snake.Len(), s.Score)
		}
		if s.Snake.Len() != want {
			t.Errorf("tick %d: body len = %d, expected %d", i+1, s.Snake.Len(), want)
		}
	}
}

func TestSelfCollision(t *testing.T) {
	e := newTestEngine(t)
	e.state.Score = 10
	e.state.Snake = Snake{
		Head: core.Pos(5, 5),
		Body: []core.Position{core.Pos(6, 5), core.Pos(6, 6), core.Pos(5, 6), core.Pos(4, 6), core.Pos(4, 5)},
	}
	e.state.Heading = core.HeadingRight

	if out := e.Tick(context.Background()); out.GameOver {
		t.Fatal("moving into the body is detected on the next evaluation, not the same tick")
	}
	if !e.state.Snake.CollidesWithBody(e.state.Snake.Head) {
		t.Fatalf("Head %v should sit on the body", e.state.Snake.Head)
	}

	out := e.Tick(context.Background())
	if !out.GameOver || out.Cause != CauseSelf {
		t.Errorf("outcome = %+v, expected self collision", out)
	}
}

func TestSelfCollisionWithTurns(t *testing.T) {
	clk := newManualClock()
	keys := make(chan core.Key)
	e := New(keys, WithSeed(3), WithClock(clk))
	e.state.Food = core.Pos(2, 2)

	// Loop back onto the spawn cell: right, down, left, up
	tickWithKeys(t, e, clk, keys, core.KeyDown)
	tickWithKeys(t, e, clk, keys, core.KeyLeft)
	tickWithKeys(t, e, clk, keys, core.KeyUp)
	tickWithKeys(t, e, clk, keys)

	if e.state.Snake.Head != core.Pos(16, 8) {
		t.Fatalf("Head = %v, expected (16,8)", e.state.Snake.Head)
	}

	out := e.Tick(context.Background())
	if !out.GameOver || out.Cause != CauseSelf {
		t.Errorf("outcome = %+v, expected self collision", out)
	}
}

func TestReversalKeyIgnoredByEngine(t *testing.T) {
	clk := newManualClock()
	keys := make(chan core.Key)
	e := New(keys, WithSeed(3), WithClock(clk))
	e.state.Food = core.Pos(2, 2)

	tickWithKeys(t, e, clk, keys, core.KeyLeft, core.KeyUp)
	if e.state.Heading != core.HeadingUp {
		t.Errorf("Heading = %v, expected up", e.state.Heading)
	}

	tickWithKeys(t, e, clk, keys)
	if e.state.Snake.Head != core.Pos(17, 7) {
		t.Errorf("Head = %v, expected (17,7)", e.state.Snake.Head)
	}
}

func TestTickTiming(t *testing.T) {
	clk := newManualClock()
	keys := make(chan core.Key)
	e := New(keys, WithSeed(3), WithClock(clk))
	e.state.Food = core.Pos(2, 2)

	tickWithKeys(t, e, clk, keys)

	got := clk.requested()
	if len(got) != 2 || got[0] != InputWindow || got[1] != TickPace {
		t.Errorf("timer durations = %v, expected [%v %v]", got, InputWindow, TickPace)
	}
}

func TestTerminalStateIsFinal(t *testing.T) {
	e := newTestEngine(t)
	e.state.Snake = NewSnake(core.Pos(0, 8))

	first := e.Tick(context.Background())
	if !first.GameOver {
		t.Fatal("expected game over")
	}
	again := e.Tick(context.Background())
	if again != first {
		t.Errorf("Tick after game over = %+v, expected %+v", again, first)
	}
	if !e.Over() {
		t.Error("Over() should stay true")
	}
}

func TestRunUntilWall(t *testing.T) {
	e := newTestEngine(t)

	out, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	// 15 moves from x=16 to x=31, detected on the 16th evaluation
	if out.Tick != 16 {
		t.Errorf("Tick = %d, expected 16", out.Tick)
	}
	if out.Cause != CauseWall || !out.GameOver {
		t.Errorf("outcome = %+v, expected wall death", out)
	}
}

func TestRunCancelled(t *testing.T) {
	e := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := e.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if out.Tick != 0 || out.GameOver {
		t.Errorf("outcome = %+v, expected untouched game", out)
	}
}

func TestFramesEmitted(t *testing.T) {
	var frames []Frame
	e := newTestEngine(t, WithRenderer(RendererFunc(func(f Frame) {
		frames = append(frames, f)
	})))

	out, _ := e.Run(context.Background())
	if len(frames) != int(out.Tick) {
		t.Fatalf("got %d frames for %d ticks", len(frames), out.Tick)
	}

	first := frames[0]
	borderCells := 2*GridWidth + 2*GridHeight - 4
	if len(first.Cells) != borderCells+2 {
		t.Errorf("first frame has %d cells, expected %d", len(first.Cells), borderCells+2)
	}
	if last := first.Cells[len(first.Cells)-1]; last.Category != core.CategoryHead || last.Pos != core.Pos(16, 8) {
		t.Errorf("last cell = %+v, expected head at (16,8)", last)
	}

	final := frames[len(frames)-1]
	if !final.GameOver || final.Score != out.Score {
		t.Errorf("final frame = over:%v score:%d, expected over with score %d", final.GameOver, final.Score, out.Score)
	}

	// Frames show the state before the move: frame n has n-1 body segments
	if got := frames[3].Cells; countCategory(got, core.CategoryBody) != 3 {
		t.Errorf("frame 4 has %d body cells, expected 3", countCategory(got, core.CategoryBody))
	}
}

func countCategory(cells []Cell, c core.Category) int {
	n := 0
	for _, cell := range cells {
		if cell.Category == c {
			n++
		}
	}
	return n
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	run := func() Snapshot {
		e := New(nil, WithSeed(12345), WithClock(instantClock{now: epoch}))
		e.Run(context.Background()) //nolint:errcheck // background context never cancels
		return e.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1 != snap2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.Phase != PhaseGameOver {
		t.Errorf("Phase = %v, expected game over", snap1.Phase)
	}
}

func TestEngineLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	e := newTestEngine(t, WithLogger(logger))
	e.state.Food = core.Pos(17, 8)
	e.Run(context.Background()) //nolint:errcheck // background context never cancels

	out := buf.String()
	if !strings.Contains(out, "food eaten") {
		t.Errorf("log missing food event: %q", out)
	}
	if !strings.Contains(out, "game over") || !strings.Contains(out, "cause=wall") {
		t.Errorf("log missing game over event: %q", out)
	}
}

func TestDebugState(t *testing.T) {
	e := newTestEngine(t)
	e.state.Snake = NewSnake(core.Pos(0, 3))
	e.Tick(context.Background())

	out := e.DebugState()
	for _, want := range []string{"Phase: game_over", "Head: (0, 3)", "Cause: wall"} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState() missing %q:\n%s", want, out)
		}
	}
}
