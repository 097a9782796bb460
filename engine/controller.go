package engine

import (
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/kr/pretty"
	"github.com/pkg/errors"

	"github.com/lixenwraith/snake/game"
	"github.com/lixenwraith/snake/input"
)

// ErrInterrupted is returned by Run when the player aborts mid-round
var ErrInterrupted = errors.New("interrupted")

// Presenter is the terminal side of the loop
type Presenter interface {
	// PollDirection waits at most timeout for a steering or interrupt intent
	PollDirection(timeout time.Duration) input.Intent
	// PollPrompt blocks until retry or quit
	PollPrompt() input.Intent
	Render(snap game.Snapshot)
	RenderGameOver(snap game.Snapshot)
}

// Timing holds the two loop periods, independent of each other
type Timing struct {
	TickInterval time.Duration
	PollTimeout  time.Duration
}

// Controller drives a GameState at a fixed tick and runs the play/game-over/retry cycle
// It is the only writer of the state
type Controller struct {
	state  *game.GameState
	view   Presenter
	clock  Clock
	timing Timing

	round   int
	roundID string
}

// NewController wires a state to its presenter
func NewController(state *game.GameState, view Presenter, clock Clock, timing Timing) *Controller {
	return &Controller{
		state:  state,
		view:   view,
		clock:  clock,
		timing: timing,
	}
}

// Round returns the 1-based number of the current round
func (c *Controller) Round() int {
	return c.round
}

// Run plays rounds until the player quits from the game-over prompt (nil)
// or interrupts a round (ErrInterrupted)
func (c *Controller) Run() error {
	for {
		c.beginRound()

		if err := c.play(); err != nil {
			glog.Infof("[%s] round %d interrupted at tick %d, score %d", c.roundID, c.round, c.state.Tick(), c.state.Score())
			return err
		}

		if c.prompt() == input.IntentQuit {
			glog.Infof("[%s] quit after %d round(s)", c.roundID, c.round)
			return nil
		}
		c.state.Retry()
	}
}

func (c *Controller) beginRound() {
	c.round++
	c.roundID = uuid.NewString()
	glog.V(1).Infof("[%s] round %d started on %dx%d grid", c.roundID, c.round, c.state.Grid().Width, c.state.Grid().Height)
}

// play ticks until the snake collides
func (c *Controller) play() error {
	c.view.Render(c.state.Snapshot())

	for c.state.Phase() == game.PhasePlaying {
		start := c.clock.Now()

		intent := c.view.PollDirection(c.timing.PollTimeout)
		if intent == input.IntentInterrupt {
			return ErrInterrupted
		}
		if h, ok := intent.Heading(); ok {
			c.state.QueueDirection(h)
		}

		c.logOutcome(c.state.Step())
		c.view.Render(c.state.Snapshot())

		if remaining := c.timing.TickInterval - c.clock.Now().Sub(start); remaining > 0 {
			c.clock.Sleep(remaining)
		}
	}
	return nil
}

// prompt shows the game-over screen and waits for retry or quit
func (c *Controller) prompt() input.Intent {
	c.view.RenderGameOver(c.state.Snapshot())

	for {
		switch intent := c.view.PollPrompt(); intent {
		case input.IntentRetry, input.IntentQuit:
			glog.V(1).Infof("[%s] prompt answered: %v", c.roundID, intent)
			return intent
		}
	}
}

func (c *Controller) logOutcome(out game.Outcome) {
	switch out {
	case game.OutcomeAte:
		glog.V(1).Infof("[%s] tick %d: ate, score %d, length %d, food now at %+v",
			c.roundID, c.state.Tick(), c.state.Score(), c.state.Snake.Len(), c.state.Food.Position)
	case game.OutcomeCollided:
		glog.Infof("[%s] round %d over at tick %d, head %+v, score %d",
			c.roundID, c.round, c.state.Tick(), c.state.Snake.Head(), c.state.Score())
	}
	if glog.V(2) {
		glog.Infof("[%s] %# v", c.roundID, pretty.Formatter(c.state.Snapshot()))
	}
}
