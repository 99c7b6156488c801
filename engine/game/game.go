package game

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/kuredoro/termsnake/core"
)

type Game struct {
	Snake *Snake
	Apple core.Position
	Board Board

	state State
	tick  uint64
	r     *rand.Rand
}

// New starts a game on board b. The board must be at least MinWidth by
// MinHeight. Apples are placed with r.
func New(b Board, r *rand.Rand) *Game {
	g := &Game{
		Snake: NewSnake(),
		Board: b,
		state: Playing{},
		r:     r,
	}

	g.spawnApple()
	return g
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Over() bool {
	_, over := g.state.(GameOver)
	return over
}

// Update runs one tick with the command read during it.
func (g *Game) Update(cmd core.Command) {
	g.tick++

	switch st := g.state.(type) {
	case GameOver:
		st.Blink = !st.Blink
		g.state = st
		return
	case Playing:
	}

	if d, ok := cmd.Direction(); ok {
		g.Snake.Turn(d)
	}

	next := g.Snake.Next()
	if g.Board.IsWall(next) || g.Snake.Bites(next) {
		g.state = GameOver{Point: next}
		log.Info().
			Stringer("point", next).
			Int("length", g.Snake.Len()).
			Uint64("tick", g.tick).
			Msg("Snake crashed")
		return
	}

	if g.Snake.Head == g.Apple {
		g.Snake.Grow()
		log.Info().
			Stringer("apple", g.Apple).
			Int("length", g.Snake.Len()).
			Msg("Apple eaten")
		g.spawnApple()
	}

	g.Snake.Advance()
}

// spawnApple places the apple on a random interior cell. The snake may
// be lying there already.
func (g *Game) spawnApple() {
	cols, rows := g.Board.Cells()
	cell := core.Vec(1+g.r.Intn(cols), 1+g.r.Intn(rows))

	g.Apple = core.Multiply(cell, core.Vec(core.CellWidth, 1))
}
