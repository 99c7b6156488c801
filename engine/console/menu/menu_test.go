package menu_test

import (
	"testing"

	"github.com/kuredoro/termsnake/engine/console/consoletest"
	"github.com/kuredoro/termsnake/engine/console/menu"
)

func TestMenu(t *testing.T) {
	t.Run("empty menu draws nothing", func(t *testing.T) {
		s := consoletest.NewScreen(t, 4, 4)

		m := menu.New(nil)

		m.Draw(s, 2)
		s.Show()

		want := []string{
			"    ",
			"    ",
			"    ",
			"    ",
		}

		consoletest.AssertSimulationScreen(t, s, want)
	})

	t.Run("items are laid out on the row", func(t *testing.T) {
		s := consoletest.NewScreen(t, 16, 2)

		m := menu.New([]menu.MenuItem{
			{Hotkey: "h", Name: "left"},
			{Hotkey: "q", Name: "quit"},
		})

		m.Draw(s, 1)
		s.Show()

		want := []string{
			"                ",
			"h left  q quit  ",
		}

		consoletest.AssertSimulationScreen(t, s, want)
		consoletest.AssertCellStyle(t, s, 0, 1, m.GetButtonStyle())
		consoletest.AssertCellStyle(t, s, 2, 1, m.GetBackgroundStyle())
		consoletest.AssertCellStyle(t, s, 8, 1, consoletest.NewTag("[black:lightcyan]").Style())
	})

	t.Run("cut off at the edge", func(t *testing.T) {
		s := consoletest.NewScreen(t, 10, 1)

		menu.Controls().Draw(s, 0)
		s.Show()

		consoletest.AssertSimulationScreen(t, s, []string{"h left  j "})
	})

	t.Run("row off screen", func(t *testing.T) {
		s := consoletest.NewScreen(t, 10, 1)

		menu.Controls().Draw(s, 1)
		s.Show()

		consoletest.AssertSimulationScreen(t, s, []string{"          "})
	})
}
