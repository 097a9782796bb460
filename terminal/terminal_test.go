package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/input"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen, input.DefaultKeyTable())
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(term.Fini)
	return term, screen
}

func TestInitMeasuresGrid(t *testing.T) {
	term, screen := newTestTerminal(t)

	w, h := screen.Size()
	if got := term.Size(); got != (core.Grid{Width: w, Height: h}) {
		t.Errorf("Expected grid %dx%d, got %+v", w, h, got)
	}
}

func TestCheckSize(t *testing.T) {
	if err := checkSize(40, 12); err != nil {
		t.Errorf("Expected 40x12 accepted, got %v", err)
	}

	err := checkSize(20, 12)
	if err == nil {
		t.Fatal("Expected error for narrow terminal")
	}
	if !errors.Is(err, ErrTerminalTooSmall) {
		t.Errorf("Expected ErrTerminalTooSmall, got %v", err)
	}
	if errors.Cause(err) != ErrTerminalTooSmall {
		t.Errorf("Expected cause ErrTerminalTooSmall, got %v", errors.Cause(err))
	}
}

func TestPollDirectionTimesOut(t *testing.T) {
	term, _ := newTestTerminal(t)

	start := time.Now()
	if got := term.PollDirection(20 * time.Millisecond); got != input.IntentNone {
		t.Errorf("Expected IntentNone with no input, got %v", got)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Expected poll to wait for the timeout, returned after %v", elapsed)
	}
}

func TestPollDirectionSkipsUnboundKeys(t *testing.T) {
	term, screen := newTestTerminal(t)

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyUp, 0, tcell.ModNone)

	if got := term.PollDirection(time.Second); got != input.IntentUp {
		t.Errorf("Expected IntentUp, got %v", got)
	}
}

func TestPollDirectionInterrupt(t *testing.T) {
	term, screen := newTestTerminal(t)

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	if got := term.PollDirection(time.Second); got != input.IntentInterrupt {
		t.Errorf("Expected IntentInterrupt, got %v", got)
	}
}

func TestPollPrompt(t *testing.T) {
	term, screen := newTestTerminal(t)

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'R', tcell.ModNone)

	if got := term.PollPrompt(); got != input.IntentRetry {
		t.Errorf("Expected IntentRetry, got %v", got)
	}
}

func TestPollPromptAfterFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewWithScreen(screen, input.DefaultKeyTable())
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	term.Fini()
	term.Fini()

	if got := term.PollPrompt(); got != input.IntentQuit {
		t.Errorf("Expected IntentQuit after the screen closed, got %v", got)
	}
}
