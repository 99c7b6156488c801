package game

import "github.com/kuredoro/termsnake/core"

// Snapshot is a copy of the game state at the end of a tick.
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Head      core.Position
	Dir       core.Direction
	Tail      []core.Position
	Apple     core.Position
	Over      bool
	Collision core.Position
	Blink     bool
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:   g.tick,
		Width:  g.Board.Width,
		Height: g.Board.Height,
		Head:   g.Snake.Head,
		Dir:    g.Snake.Dir,
		Tail:   append([]core.Position(nil), g.Snake.Tail...),
		Apple:  g.Apple,
	}

	if st, ok := g.state.(GameOver); ok {
		s.Over = true
		s.Collision = st.Point
		s.Blink = st.Blink
	}

	return s
}
