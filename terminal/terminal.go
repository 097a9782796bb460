package terminal

import (
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/parameter"
	"github.com/lixenwraith/snake/render"
)

// Environment errors, fatal at the process boundary
var (
	ErrNotTerminal      = errors.New("stdout is not a terminal")
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// Terminal is the presentation adapter: it draws frames and turns key presses into intents
type Terminal struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	keys     *input.KeyTable

	events chan tcell.Event
	done   chan struct{}

	grid     core.Grid
	finiOnce sync.Once
}

// New creates a terminal bound to the process tty, Init opens it
func New(keys *input.KeyTable) *Terminal {
	return &Terminal{keys: keys}
}

// NewWithScreen uses an existing screen, e.g. tcell.NewSimulationScreen, and skips the tty check
func NewWithScreen(screen tcell.Screen, keys *input.KeyTable) *Terminal {
	return &Terminal{screen: screen, keys: keys}
}

// Init enters the alternate screen, measures the grid and starts the event pump
func (t *Terminal) Init() error {
	if t.screen == nil {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return ErrNotTerminal
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "create screen")
		}
		t.screen = screen
	}

	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}

	w, h := t.screen.Size()
	if err := checkSize(w, h); err != nil {
		t.screen.Fini()
		return err
	}
	t.grid = core.Grid{Width: w, Height: h}

	t.screen.HideCursor()
	t.screen.Clear()
	t.renderer = render.NewTerminalRenderer(t.screen)

	t.events = make(chan tcell.Event, parameter.EventQueueSize)
	t.done = make(chan struct{})
	core.Go(t.pump)

	return nil
}

// Fini restores the terminal. Safe to call multiple times
func (t *Terminal) Fini() {
	t.finiOnce.Do(func() {
		if t.done != nil {
			close(t.done)
		}
		if t.screen != nil {
			t.screen.Fini()
		}
	})
}

// Size returns the grid measured at Init
func (t *Terminal) Size() core.Grid {
	return t.grid
}

// Render draws one frame of play
func (t *Terminal) Render(snap game.Snapshot) {
	t.renderer.RenderFrame(snap)
}

// RenderGameOver draws the game-over screen
func (t *Terminal) RenderGameOver(snap game.Snapshot) {
	t.renderer.RenderGameOver(snap)
}

func checkSize(w, h int) error {
	if w < parameter.MinScreenWidth || h < parameter.MinScreenHeight {
		return errors.Wrapf(ErrTerminalTooSmall, "%dx%d, need at least %dx%d",
			w, h, parameter.MinScreenWidth, parameter.MinScreenHeight)
	}
	return nil
}
