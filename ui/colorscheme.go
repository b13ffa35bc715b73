package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fivemoreminix/vhl/syntax"
)

// A Colorscheme maps display categories to terminal styles. Components take
// it by reference so one scheme can serve every view.
type Colorscheme map[syntax.Category]tcell.Style

// GetStyle returns the style for the given category. If the category has no
// entry, the CategoryNone entry is used, or tcell's default style if the
// scheme has no CategoryNone either.
func (c *Colorscheme) GetStyle(cat syntax.Category) tcell.Style {
	if c != nil {
		if val, ok := (*c)[cat]; ok {
			return val
		}
		if cat != syntax.CategoryNone {
			if val, ok := (*c)[syntax.CategoryNone]; ok {
				return val
			}
		}
	}
	return tcell.StyleDefault
}

// DefaultColorscheme uses only the first 16 colors present in most colored
// terminals.
var DefaultColorscheme = Colorscheme{
	syntax.CategoryNone:              tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	syntax.CategoryBuiltinType:       tcell.Style{}.Foreground(tcell.ColorTeal).Background(tcell.ColorBlack),
	syntax.CategoryCareful:           tcell.Style{}.Foreground(tcell.ColorRed).Background(tcell.ColorBlack),
	syntax.CategoryAttribute:         tcell.Style{}.Foreground(tcell.ColorOlive).Background(tcell.ColorBlack),
	syntax.CategoryDeclaration:       tcell.Style{}.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	syntax.CategoryPreprocessor:      tcell.Style{}.Foreground(tcell.ColorPurple).Background(tcell.ColorBlack),
	syntax.CategoryOperator:          tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	syntax.CategorySeparator:         tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	syntax.CategoryDelimiter:         tcell.Style{}.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack),
	syntax.CategoryNumericLiteral:    tcell.Style{}.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack),
	syntax.CategoryFunctionName:      tcell.Style{}.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
	syntax.CategoryTypeName:          tcell.Style{}.Foreground(tcell.ColorAqua).Background(tcell.ColorBlack),
	syntax.CategoryKeyword:           tcell.Style{}.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	syntax.CategoryCharLiteral:       tcell.Style{}.Foreground(tcell.ColorMaroon).Background(tcell.ColorBlack),
	syntax.CategoryCallReference:     tcell.Style{}.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack),
	syntax.CategoryParameter:         tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	syntax.CategoryTupleReference:    tcell.Style{}.Foreground(tcell.ColorFuchsia).Background(tcell.ColorBlack),
	syntax.CategoryVariableReference: tcell.Style{}.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	syntax.CategoryComment:           tcell.Style{}.Foreground(tcell.ColorGray).Background(tcell.ColorBlack),
	syntax.CategoryString:            tcell.Style{}.Foreground(tcell.ColorMaroon).Background(tcell.ColorBlack),
}
