package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawRect renders a filled box at `x` and `y`, of size `width` and `height`.
// Will not call `Show()`.
func DrawRect(s tcell.Screen, x, y, width, height int, char rune, style tcell.Style) {
	for col := x; col < x+width; col++ {
		for row := y; row < y+height; row++ {
			s.SetContent(col, row, char, nil, style)
		}
	}
}

// DrawStr renders str at `x` and `y` and returns the number of cells
// advanced. Wide runes occupy their full cell width.
func DrawStr(s tcell.Screen, x, y int, str string, style tcell.Style) int {
	col := x
	for _, r := range str {
		s.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	return col - x
}
