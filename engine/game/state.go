package game

import "github.com/kuredoro/termsnake/core"

// State is either Playing or GameOver.
type State interface {
	state()
}

type Playing struct{}

// GameOver is terminal. Point is where the head would have hit; Blink
// flips on every tick.
type GameOver struct {
	Point core.Position
	Blink bool
}

func (Playing) state()  {}
func (GameOver) state() {}
