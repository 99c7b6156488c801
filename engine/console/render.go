package console

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kuredoro/termsnake/core"
	"github.com/kuredoro/termsnake/engine/console/menu"
	"github.com/kuredoro/termsnake/engine/game"
)

// Sink is a character-cell display. tcell.Screen satisfies it.
type Sink interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// pixel fills one board cell.
const pixel = "██"

const gameOverText = "GAME OVER"

var (
	defStyle   = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorReset)
	headStyle  = tcell.StyleDefault.Foreground(tcell.ColorLime).Background(tcell.ColorReset)
	tailStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorReset)
	appleStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorReset)
	crashStyle = [2]tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorReset),
		tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorReset),
	}
	captionStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// drawText writes text from (x, y) onward and returns the column after it.
func drawText(s Sink, x, y int, style tcell.Style, text string) int {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	return col
}

func drawCell(s Sink, p core.Position, style tcell.Style) {
	drawText(s, p.X, p.Y, style, pixel)
}

func drawBoard(s Sink, b game.Board) {
	for row := 1; row < b.Height-1; row++ {
		for col := core.CellWidth; col < b.Width-core.CellWidth; col++ {
			s.SetContent(col, row, ' ', nil, defStyle)
		}
	}

	right := b.Width - core.CellWidth
	for col := 0; col <= right; col += core.CellWidth {
		drawCell(s, core.Vec(col, 0), wallStyle)
		drawCell(s, core.Vec(col, b.Height-1), wallStyle)
	}
	for row := 1; row < b.Height-1; row++ {
		drawCell(s, core.Vec(0, row), wallStyle)
		drawCell(s, core.Vec(right, row), wallStyle)
	}
}

func drawSnake(s Sink, snake *game.Snake) {
	for _, seg := range snake.Tail {
		drawCell(s, seg, tailStyle)
	}
	drawCell(s, snake.Head, headStyle)
}

func drawGameOver(s Sink, b game.Board, over game.GameOver) {
	style := crashStyle[0]
	if over.Blink {
		style = crashStyle[1]
	}
	drawCell(s, over.Point, style)

	text := " " + gameOverText + " "
	x := (b.Width - runewidth.StringWidth(text)) / 2
	drawText(s, x, b.Height/2, captionStyle, text)
}

// Render draws one frame of g and flushes it. The hotkey bar m, if any,
// goes on the row under the board.
func Render(s Sink, g *game.Game, m *menu.Menu) {
	drawBoard(s, g.Board)
	drawCell(s, g.Apple, appleStyle)
	drawSnake(s, g.Snake)

	switch st := g.State().(type) {
	case game.GameOver:
		drawGameOver(s, g.Board, st)
	case game.Playing:
	}

	if m != nil {
		m.Draw(s, g.Board.Height)
	}

	s.Show()
}
