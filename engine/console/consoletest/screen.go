// Package consoletest has helpers for checking what was drawn on a
// tcell.SimulationScreen.
package consoletest

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/gdamore/tcell/v2"
)

var tagPattern = regexp.MustCompile(`\[([a-zA-Z]+|#[0-9a-zA-Z]{6}|\-)?(:([a-zA-Z]+|#[0-9a-zA-Z]{6}|\-)?(:([01]+|[bdilrsu]+|\-)?)?)?\]`)

// Tag is a style written as "[fg:bg:attrs]".
type Tag tcell.Style

func NewTag(str string) Tag {
	style := tcell.StyleDefault

	parts := tagPattern.FindStringSubmatch(str)

	if len(parts) >= 2 && parts[1] != "" && parts[1] != "-" {
		style = style.Foreground(tcell.GetColor(parts[1]))
	}

	if len(parts) >= 4 && parts[3] != "" && parts[3] != "-" {
		style = style.Background(tcell.GetColor(parts[3]))
	}

	if len(parts) >= 6 && parts[5] != "" && parts[5] != "-" {
		mask, err := strconv.ParseInt(parts[5], 2, 64)
		if err != nil {
			panic(fmt.Errorf("attempt to create a tag from a malformed string %q: attributes: %v", str, err))
		}

		style = style.Attributes(tcell.AttrMask(mask))
	}

	return Tag(style)
}

func (t Tag) String() string {
	fg, bg, attr := tcell.Style(t).Decompose()

	return fmt.Sprintf("[#%06x:#%06x:%b]", fg.Hex(), bg.Hex(), attr)
}

func (t Tag) Style() tcell.Style {
	return tcell.Style(t)
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// NewScreen returns an initialized simulation screen of the given size.
func NewScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	t.Cleanup(s.Fini)

	return s
}

// AssertSimulationScreen compares the screen with want row by row. A
// space in want also matches a cell that was never written.
func AssertSimulationScreen(t *testing.T, got tcell.SimulationScreen, want []string) {
	t.Helper()

	gotCells, w, h := got.GetContents()
	wantCells, wantWidth, wantHeight := SimCellsFromStrings(want)

	if w != wantWidth || h != wantHeight {
		t.Fatalf("got simulation screen of size %dx%d, want %dx%d", w, h, wantWidth, wantHeight)
		return
	}

	if len(gotCells) != len(wantCells) {
		t.Fatalf("got simulation screen that contains %d cells, want %d, even though the "+
			"reported dimensions (%dx%d) coincide", len(gotCells), len(wantCells), w, h)
	}

	for i := range gotCells {
		if len(gotCells[i].Runes) == 0 && len(wantCells[i].Runes) == 1 && wantCells[i].Runes[0] == ' ' {
			continue
		}

		if !runesEqual(gotCells[i].Runes, wantCells[i].Runes) {
			t.Errorf("at %dx%d got simcell with contents %q, want %q", i%w+1, i/w+1,
				string(gotCells[i].Runes), string(wantCells[i].Runes))
		}
	}
}

// AssertCellStyle checks the style of the cell at column x, row y.
func AssertCellStyle(t *testing.T, got tcell.SimulationScreen, x, y int, want tcell.Style) {
	t.Helper()

	cells, w, h := got.GetContents()
	if x < 0 || x >= w || y < 0 || y >= h {
		t.Fatalf("cell %dx%d is outside the %dx%d screen", x, y, w, h)
	}

	if style := cells[y*w+x].Style; style != want {
		t.Errorf("at %dx%d got style %v, want %v", x, y, Tag(style), Tag(want))
	}
}

// SimCellsFromStrings turns rows of text into simulation cells. Every
// rune takes one cell.
func SimCellsFromStrings(rows []string) ([]tcell.SimCell, int, int) {
	if len(rows) == 0 {
		return nil, 0, 0
	}

	width := len([]rune(rows[0]))
	for i := range rows {
		if n := len([]rune(rows[i])); n != width {
			panic(fmt.Sprintf("inconsistent simulation screen row dimensions: "+
				"row #1 being %d columns wide, while row #%d being %d",
				width, i+1, n))
		}
	}

	cells := make([]tcell.SimCell, len(rows)*width)
	for y := range rows {
		for x, r := range []rune(rows[y]) {
			cells[width*y+x].Runes = []rune{r}
		}
	}

	return cells, width, len(rows)
}
