package console

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/termsnake/core"
)

// keyBuffer is how many keystrokes may wait for the game to read them.
const keyBuffer = 16

var key2Command = map[tcell.Key]core.Command{
	tcell.KeyLeft:   core.TurnLeft,
	tcell.KeyDown:   core.TurnDown,
	tcell.KeyUp:     core.TurnUp,
	tcell.KeyRight:  core.TurnRight,
	tcell.KeyEscape: core.Quit,
	tcell.KeyCtrlC:  core.Quit,
}

// CommandFor maps a key event to a game command.
func CommandFor(ev *tcell.EventKey) core.Command {
	if ev.Key() == tcell.KeyRune {
		return core.CommandFor(ev.Rune())
	}
	return key2Command[ev.Key()]
}

// KeySource buffers keystrokes from a screen so the game can take them
// one per tick without blocking.
type KeySource struct {
	s    tcell.Screen
	cmds chan core.Command
}

func NewKeySource(s tcell.Screen) *KeySource {
	return &KeySource{
		s:    s,
		cmds: make(chan core.Command, keyBuffer),
	}
}

// Run reads screen events until the screen is finalized.
func (k *KeySource) Run() error {
	for {
		ev := k.s.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			k.s.Sync()
		case *tcell.EventKey:
			cmd := CommandFor(ev)
			if cmd == core.None {
				continue
			}

			select {
			case k.cmds <- cmd:
				continue
			default:
			}

			if cmd != core.Quit {
				log.Warn().Stringer("command", cmd).Msg("Key buffer full, dropping keystroke")
				continue
			}

			// Turns queued ahead of a quit no longer matter.
		drain:
			for {
				select {
				case <-k.cmds:
				default:
					break drain
				}
			}
			k.cmds <- cmd
		}
	}
}

// Poll returns the oldest buffered command, or core.None.
func (k *KeySource) Poll() core.Command {
	select {
	case cmd := <-k.cmds:
		return cmd
	default:
		return core.None
	}
}
