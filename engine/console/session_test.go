package console_test

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kuredoro/termsnake/core"
	"github.com/kuredoro/termsnake/engine/console"
	"github.com/kuredoro/termsnake/engine/console/consoletest"
	"github.com/kuredoro/termsnake/engine/game"
)

func TestSession(t *testing.T) {
	t.Run("board fits the terminal above the hotkey bar", func(t *testing.T) {
		s := tcell.NewSimulationScreen("UTF-8")
		sess, err := console.Open(s)
		if err != nil {
			t.Fatalf("open session: %v", err)
		}
		defer sess.Close()

		s.SetSize(81, 30)

		b, err := sess.Board(100, 100)
		if err != nil {
			t.Fatalf("got error %v", err)
		}
		if want := (game.Board{Width: 80, Height: 29}); b != want {
			t.Errorf("got board %+v, want %+v", b, want)
		}

		b, err = sess.Board(40, 20)
		if err != nil {
			t.Fatalf("got error %v", err)
		}
		if want := (game.Board{Width: 40, Height: 20}); b != want {
			t.Errorf("got board %+v, want %+v", b, want)
		}
	})

	t.Run("tiny terminal is refused", func(t *testing.T) {
		s := tcell.NewSimulationScreen("UTF-8")
		sess, err := console.Open(s)
		if err != nil {
			t.Fatalf("open session: %v", err)
		}
		defer sess.Close()

		s.SetSize(8, 4)

		_, err = sess.Board(100, 100)

		var termErr *core.TerminalError
		if !errors.As(err, &termErr) || !errors.Is(err, core.ErrTerminalTooSmall) {
			t.Errorf("got error %v, want a too small terminal error", err)
		}
	})

	t.Run("close restores the terminal once", func(t *testing.T) {
		s := newRecordingScreen()
		sess, err := console.Open(s)
		if err != nil {
			t.Fatalf("open session: %v", err)
		}

		s.SetSize(6, 2)
		s.SetContent(1, 1, 'x', nil, tcell.StyleDefault.Foreground(tcell.ColorRed))
		s.Show()
		s.reset()

		sess.Close()
		sess.Close()

		want := []string{"Clear", "ShowCursor", "Show", "Fini"}
		got := s.recorded()
		if len(got) != len(want) {
			t.Fatalf("got calls %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("call #%d is %s, want %s", i, got[i], want[i])
			}
		}

		reset := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
		for i, c := range s.lastFrame {
			if len(c.Runes) != 0 && (len(c.Runes) != 1 || c.Runes[0] != ' ') {
				t.Errorf("cell #%d still shows %q", i, string(c.Runes))
			}
			if c.Style != reset {
				t.Errorf("cell #%d has style %v, want the reset style", i, consoletest.Tag(c.Style))
			}
		}
	})
}

// recordingScreen notes the calls that hand the terminal back and the
// last frame shown before Fini.
type recordingScreen struct {
	tcell.SimulationScreen

	mu        sync.Mutex
	calls     []string
	lastFrame []tcell.SimCell
	synced    chan struct{}
}

func newRecordingScreen() *recordingScreen {
	return &recordingScreen{
		SimulationScreen: tcell.NewSimulationScreen("UTF-8"),
		synced:           make(chan struct{}, 8),
	}
}

func (r *recordingScreen) record(call string) {
	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()
}

func (r *recordingScreen) recorded() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recordingScreen) reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func (r *recordingScreen) Clear() {
	r.record("Clear")
	r.SimulationScreen.Clear()
}

func (r *recordingScreen) ShowCursor(x, y int) {
	r.record("ShowCursor")
	r.SimulationScreen.ShowCursor(x, y)
}

func (r *recordingScreen) Show() {
	r.record("Show")
	r.SimulationScreen.Show()
}

func (r *recordingScreen) Sync() {
	r.record("Sync")
	r.SimulationScreen.Sync()
	select {
	case r.synced <- struct{}{}:
	default:
	}
}

func (r *recordingScreen) Fini() {
	r.record("Fini")
	cells, _, _ := r.SimulationScreen.GetContents()
	r.lastFrame = append([]tcell.SimCell(nil), cells...)
	r.SimulationScreen.Fini()
}

func TestCheckTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	err = console.CheckTerminal(f)
	if !errors.Is(err, core.ErrNotTerminal) {
		t.Errorf("got error %v, want ErrNotTerminal", err)
	}
}
