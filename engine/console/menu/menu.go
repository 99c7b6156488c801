package menu

import "github.com/gdamore/tcell/v2"

var (
	backgroundStyleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	buttonStyleDefault     = tcell.StyleDefault.Background(tcell.ColorLightCyan).Foreground(tcell.ColorBlack)
)

// Canvas is the part of tcell.Screen a menu draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

type MenuItem struct {
	Hotkey string
	Name   string
}

// Menu is a single line of hotkeys and what they do.
type Menu struct {
	items []MenuItem
}

func New(items []MenuItem) *Menu {
	return &Menu{items: items}
}

// Controls lists the keys the game understands.
func Controls() *Menu {
	return New([]MenuItem{
		{Hotkey: "h", Name: "left"},
		{Hotkey: "j", Name: "down"},
		{Hotkey: "k", Name: "up"},
		{Hotkey: "l", Name: "right"},
		{Hotkey: "q", Name: "quit"},
	})
}

// Draw lays the items out on row, cutting them off at the canvas edge.
// Nothing is drawn if row is off the canvas.
func (m *Menu) Draw(s Canvas, row int) {
	width, height := s.Size()
	if row < 0 || row >= height {
		return
	}

	col := 0
	put := func(text string, style tcell.Style) {
		for _, r := range text {
			if col >= width {
				return
			}
			s.SetContent(col, row, r, nil, style)
			col++
		}
	}

	for i, item := range m.items {
		if i > 0 {
			put("  ", m.GetBackgroundStyle())
		}
		put(item.Hotkey, m.GetButtonStyle())
		put(" "+item.Name, m.GetBackgroundStyle())
	}
}

func (m *Menu) GetBackgroundStyle() tcell.Style {
	return backgroundStyleDefault
}

func (m *Menu) GetButtonStyle() tcell.Style {
	return buttonStyleDefault
}
