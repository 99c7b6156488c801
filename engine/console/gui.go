package console

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	welcome    = `Welcome to the terminal snake game.`
	navigation = `Steer with h j k l, eat apples, avoid the walls and your tail`
)

// Cover is the title screen. play and quit run when the matching button
// is pressed.
func Cover(play, quit func()) (content tview.Primitive, focus []tview.Primitive) {
	// Create a frame for the subtitle and navigation infos.
	frame := tview.NewFrame(tview.NewBox()).
		SetBorders(0, 0, 0, 0, 0, 0).
		AddText(welcome, true, tview.AlignCenter, tcell.ColorGreen).
		AddText("", true, tview.AlignCenter, tcell.ColorWhite).
		AddText(navigation, true, tview.AlignCenter, tcell.ColorDarkMagenta)

	playBtn := tview.NewButton("Play").SetSelectedFunc(play)
	quitBtn := tview.NewButton("Quit").SetSelectedFunc(quit)

	// Create a Flex layout that centers the logo and subtitle.
	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(tview.NewBox(), 0, 5, false).
		AddItem(frame, 3, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexColumn).
			AddItem(tview.NewBox(), 0, 1, false).
			AddItem(playBtn, 20, 1, true).
			AddItem(quitBtn, 20, 1, false).
			AddItem(tview.NewBox(), 0, 1, false), 1, 1, true).
		AddItem(tview.NewBox(), 0, 5, false)
	return flex, []tview.Primitive{playBtn, quitBtn}
}

// RunCover shows the title screen on s, or on the terminal if s is nil,
// until the player picks a button or ctx is done. It reports whether they
// chose to play.
func RunCover(ctx context.Context, s tcell.Screen) (play bool, err error) {
	app := tview.NewApplication()
	if s != nil {
		app.SetScreen(s)
	}

	content, buttons := Cover(func() {
		play = true
		app.Stop()
	}, app.Stop)

	focused := 0
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyTab || event.Key() == tcell.KeyBacktab:
			focused = (focused + 1) % len(buttons)
			app.SetFocus(buttons[focused])
			return nil
		case event.Key() == tcell.KeyEscape || event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Rune() == 'p':
			play = true
			app.Stop()
			return nil
		}
		return event
	})

	done := make(chan struct{})
	defer close(done)

	// Leaving goes through the event loop so the screen is finalized even
	// if Run has not started yet.
	go func() {
		select {
		case <-ctx.Done():
			app.QueueEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
		case <-done:
		}
	}()

	if err := app.SetRoot(content, true).EnableMouse(true).Run(); err != nil {
		return false, err
	}
	return play && ctx.Err() == nil, nil
}
