package game

import "github.com/kuredoro/termsnake/core"

// Snake is a head followed by a chain of tail segments, closest first.
type Snake struct {
	Head core.Position
	Dir  core.Direction
	Tail []core.Position
}

func NewSnake() *Snake {
	return &Snake{
		Head: core.Vec(core.CellWidth, 1),
		Dir:  core.Right(),
	}
}

// Turn points the snake at d unless d would reverse it into itself.
func (s *Snake) Turn(d core.Direction) {
	if d == core.Opposite(s.Dir) {
		return
	}

	s.Dir = d
}

// Next returns where the head would be after one more step.
func (s *Snake) Next() core.Position {
	return core.Add(s.Head, s.Dir)
}

// Advance moves every segment into the place of the one ahead of it and
// steps the head forward.
func (s *Snake) Advance() {
	if len(s.Tail) != 0 {
		for i := len(s.Tail) - 1; i > 0; i-- {
			s.Tail[i] = s.Tail[i-1]
		}
		s.Tail[0] = s.Head
	}

	s.Head = s.Next()
}

// Grow appends a segment one step behind the last one.
func (s *Snake) Grow() {
	last := s.Head
	if len(s.Tail) != 0 {
		last = s.Tail[len(s.Tail)-1]
	}

	s.Tail = append(s.Tail, core.Add(last, core.Opposite(s.Dir)))
}

// Bites reports whether p is taken by a tail segment.
func (s *Snake) Bites(p core.Position) bool {
	for _, seg := range s.Tail {
		if seg == p {
			return true
		}
	}
	return false
}

func (s *Snake) Len() int {
	return len(s.Tail) + 1
}
