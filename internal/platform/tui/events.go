package tui

import (
	"context"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// frameMsg carries a frame emitted by the engine of one game session.
type frameMsg struct {
	session int
	frame   snake.Frame
}

// endedMsg is sent once when a session's engine stops.
type endedMsg struct {
	session int
	outcome snake.Outcome
	err     error
}

// frameSink is a snake.Renderer that keeps only the newest undelivered
// frame. The engine never blocks on a slow terminal.
type frameSink struct {
	ch chan snake.Frame
}

func newFrameSink() *frameSink {
	return &frameSink{ch: make(chan snake.Frame, 1)}
}

// Draw implements snake.Renderer. It must only be called from the engine
// goroutine.
func (s *frameSink) Draw(f snake.Frame) {
	f.Cells = slices.Clone(f.Cells)
	select {
	case s.ch <- f:
		return
	default:
	}
	// Replace the stale frame
	select {
	case <-s.ch:
	default:
	}
	s.ch <- f
}

// close signals that no more frames will be drawn.
func (s *frameSink) close() {
	close(s.ch)
}

// waitForFrame returns a command that delivers the next frame of a session.
// It yields nil once the sink is closed.
func waitForFrame(id int, sink *frameSink) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-sink.ch
		if !ok {
			return nil
		}
		return frameMsg{session: id, frame: f}
	}
}

// runEngine returns a command that runs a game to completion.
func runEngine(ctx context.Context, id int, eng *snake.Engine, sink *frameSink) tea.Cmd {
	return func() tea.Msg {
		out, err := eng.Run(ctx)
		sink.close()
		return endedMsg{session: id, outcome: out, err: err}
	}
}
