package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/game"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func readRow(screen tcell.Screen, x, y, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = runeAt(screen, x+i, y)
	}
	return string(out)
}

func TestRenderFrame(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	r := NewTerminalRenderer(screen)

	snap := game.Snapshot{
		Grid:  core.Grid{Width: 40, Height: 12},
		Body:  []core.Point{{10, 5}, {9, 5}, {8, 5}},
		Food:  core.Point{X: 3, Y: 3},
		Score: 7,
	}
	r.RenderFrame(snap)

	corners := [][2]int{{0, 0}, {39, 0}, {0, 11}, {39, 11}}
	for _, c := range corners {
		if got := runeAt(screen, c[0], c[1]); got != '+' {
			t.Errorf("Expected corner '+' at %v, got %q", c, got)
		}
	}
	if got := runeAt(screen, 20, 11); got != '-' {
		t.Errorf("Expected bottom border '-', got %q", got)
	}
	if got := runeAt(screen, 39, 6); got != '|' {
		t.Errorf("Expected right border '|', got %q", got)
	}
	if got := readRow(screen, 2, 0, 8); got != "Score: 7" {
		t.Errorf("Expected score label, got %q", got)
	}
	if got := runeAt(screen, 3, 3); got != 'O' {
		t.Errorf("Expected food glyph at (3,3), got %q", got)
	}
	for _, p := range snap.Body {
		if got := runeAt(screen, p.X, p.Y); got != '#' {
			t.Errorf("Expected body glyph at %+v, got %q", p, got)
		}
	}
}

func TestRenderFrameBodyCoversFood(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	r := NewTerminalRenderer(screen)

	r.RenderFrame(game.Snapshot{
		Grid: core.Grid{Width: 40, Height: 12},
		Body: []core.Point{{4, 4}},
		Food: core.Point{X: 4, Y: 4},
	})

	if got := runeAt(screen, 4, 4); got != '#' {
		t.Errorf("Expected body over food, got %q", got)
	}
}

func TestRenderGameOver(t *testing.T) {
	screen := newTestScreen(t, 40, 12)
	r := NewTerminalRenderer(screen)

	r.RenderGameOver(game.Snapshot{
		Grid:  core.Grid{Width: 40, Height: 12},
		Score: 3,
		Phase: game.PhaseGameOver,
	})

	// "Game Over X_X !" is 15 wide: x = 20 - 7
	if got := readRow(screen, 13, 5, 15); got != "Game Over X_X !" {
		t.Errorf("Expected centered title, got %q", got)
	}
	// "Your score: 3" is 13 wide: x = 20 - 6
	if got := readRow(screen, 14, 6, 13); got != "Your score: 3" {
		t.Errorf("Expected final score, got %q", got)
	}
	// Prompt is 38 wide: x = 20 - 19
	if got := readRow(screen, 1, 7, 38); got != "Press 'R' to play again or 'Q' to quit" {
		t.Errorf("Expected retry prompt, got %q", got)
	}
	if got := runeAt(screen, 0, 0); got != ' ' {
		t.Errorf("Expected board cleared, got %q at origin", got)
	}
}
