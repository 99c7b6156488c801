package console

import (
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/kuredoro/termsnake/core"
	"github.com/kuredoro/termsnake/engine/game"
)

// CheckTerminal fails unless f is attached to a terminal.
func CheckTerminal(f *os.File) error {
	if !term.IsTerminal(int(f.Fd())) {
		return &core.TerminalError{Op: "check " + f.Name(), Err: core.ErrNotTerminal}
	}
	return nil
}

// Session owns the terminal for the duration of a game. Close hands it
// back in the state it was found and is safe to call more than once.
type Session struct {
	Screen tcell.Screen

	once sync.Once
}

// NewSession takes over the controlling terminal.
func NewSession() (*Session, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, &core.TerminalError{Op: "open", Err: err}
	}

	return Open(s)
}

// Open initializes s and wraps it in a Session.
func Open(s tcell.Screen) (*Session, error) {
	if err := s.Init(); err != nil {
		return nil, &core.TerminalError{Op: "init", Err: err}
	}

	s.SetStyle(defStyle)
	s.DisableMouse()
	s.HideCursor()
	s.Clear()

	return &Session{Screen: s}, nil
}

// Board sizes a board to the terminal, leaving the last row for the
// hotkey bar.
func (s *Session) Board(maxW, maxH int) (game.Board, error) {
	w, h := s.Screen.Size()

	b, ok := game.NewBoard(w, h-1, maxW, maxH)
	if !ok {
		return b, &core.TerminalError{Op: "size", Err: core.ErrTerminalTooSmall}
	}

	return b, nil
}

func (s *Session) Close() {
	s.once.Do(func() {
		s.Screen.Clear()
		s.Screen.ShowCursor(0, 0)
		s.Screen.Show()
		s.Screen.Fini()
	})
}
