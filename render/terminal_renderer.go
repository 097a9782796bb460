package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/parameter"
)

// TerminalRenderer draws game frames onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame renders the border, score, food and snake
func (r *TerminalRenderer) RenderFrame(snap game.Snapshot) {
	r.screen.Clear()

	r.drawBorder(snap.Grid.Width, snap.Grid.Height)
	r.drawText(parameter.ScoreColumn, 0, fmt.Sprintf(parameter.ScoreFormat, snap.Score), StyleScore)

	r.screen.SetContent(snap.Food.X, snap.Food.Y, parameter.GlyphFood, nil, StyleFood)

	// Body last so it covers food placed under it
	for _, p := range snap.Body {
		r.screen.SetContent(p.X, p.Y, parameter.GlyphBody, nil, StyleBody)
	}

	r.screen.Show()
}

// RenderGameOver replaces the board with the final score and retry prompt
func (r *TerminalRenderer) RenderGameOver(snap game.Snapshot) {
	r.screen.Clear()

	w, h := snap.Grid.Width, snap.Grid.Height
	lines := []string{
		parameter.GameOverText,
		fmt.Sprintf(parameter.FinalScoreText, snap.Score),
		parameter.RetryPromptText,
	}
	for i, line := range lines {
		r.drawText(w/2-len(line)/2, h/2-1+i, line, StyleText)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawBorder(w, h int) {
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, parameter.GlyphHorizontal, nil, StyleBorder)
		r.screen.SetContent(x, h-1, parameter.GlyphHorizontal, nil, StyleBorder)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, parameter.GlyphVertical, nil, StyleBorder)
		r.screen.SetContent(w-1, y, parameter.GlyphVertical, nil, StyleBorder)
	}
	for _, c := range [][2]int{{0, 0}, {w - 1, 0}, {0, h - 1}, {w - 1, h - 1}} {
		r.screen.SetContent(c[0], c[1], parameter.GlyphCorner, nil, StyleBorder)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
