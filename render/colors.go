package render

import "github.com/gdamore/tcell/v2"

// Cell styles
var (
	StyleBorder = tcell.StyleDefault
	StyleScore  = tcell.StyleDefault.Bold(true)
	StyleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	StyleText   = tcell.StyleDefault
)
