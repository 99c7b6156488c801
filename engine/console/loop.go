package console

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sanity-io/litter"

	"github.com/kuredoro/termsnake/core"
	"github.com/kuredoro/termsnake/engine/console/menu"
	"github.com/kuredoro/termsnake/engine/game"
)

// Poller hands out at most one command per call and never blocks.
type Poller interface {
	Poll() core.Command
}

// Loop drives a game: poll, update, render, sleep.
type Loop struct {
	game *game.Game
	sink Sink
	keys Poller
	menu *menu.Menu
	tick time.Duration

	log zerolog.Logger
}

func NewLoop(g *game.Game, sink Sink, keys Poller, tick time.Duration) *Loop {
	return &Loop{
		game: g,
		sink: sink,
		keys: keys,
		menu: menu.Controls(),
		tick: tick,
		log:  log.Logger.With().Str("component", "loop").Logger(),
	}
}

// Run plays until a quit command arrives or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info().
		Int("width", l.game.Board.Width).
		Int("height", l.game.Board.Height).
		Dur("tick", l.tick).
		Msg("Game started")

	Render(l.sink, l.game, l.menu)

	timer := time.NewTimer(l.tick)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.log.Info().Err(ctx.Err()).Msg("Game interrupted")
			return nil
		case <-timer.C:
		}

		cmd := l.keys.Poll()
		if cmd == core.Quit {
			l.log.Info().Uint64("tick", l.game.Snapshot().Tick).Msg("Quit")
			return nil
		}

		over := l.game.Over()
		l.game.Update(cmd)
		if !over && l.game.Over() {
			l.log.Debug().Msg(litter.Sdump(l.game.Snapshot()))
		}

		Render(l.sink, l.game, l.menu)
		timer.Reset(l.tick)
	}
}
