package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the head plus the trail of body segments it left behind.
// Body is ordered oldest first: Body[0] is the tail end, the last element is
// the segment laid down most recently.
type Snake struct {
	Head core.Position
	Body []core.Position
}

// NewSnake returns a snake with no body at the given head position.
func NewSnake(head core.Position) Snake {
	return Snake{Head: head}
}

// Advance lays a segment at the current head and moves the head one cell.
func (s *Snake) Advance(h core.Heading) {
	s.Body = append(s.Body, s.Head)
	s.Head = s.Head.Step(h)
}

// TrimToScore drops the oldest segments until the body is no longer than score.
func (s *Snake) TrimToScore(score int) {
	if n := len(s.Body) - max(score, 0); n > 0 {
		s.Body = slices.Delete(s.Body, 0, n)
	}
}

// CollidesWithBody reports whether any segment sits on p.
func (s *Snake) CollidesWithBody(p core.Position) bool {
	return slices.Contains(s.Body, p)
}

// Len returns the number of body segments, head excluded.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Clone returns a copy that shares no memory with s.
func (s Snake) Clone() Snake {
	return Snake{Head: s.Head, Body: slices.Clone(s.Body)}
}
