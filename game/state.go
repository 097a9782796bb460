package game

import (
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// Phase is the macro state of a session
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Outcome describes what a single Step did
type Outcome uint8

const (
	OutcomeIdle     Outcome = iota // Step called outside the playing phase
	OutcomeMoved                   // Snake advanced without event
	OutcomeAte                     // Snake advanced onto food and grew
	OutcomeCollided                // Snake hit a wall or itself, game over
)

// Options fixes the session parameters shared by every round
type Options struct {
	Grid     core.Grid
	Growth   string // parameter.GrowthHeading or parameter.GrowthTrailing
	FoodMode string // parameter.FoodPermissive or parameter.FoodAvoidBody
	Rand     *rand.Rand
}

// GameState owns the snake, the food and the score of one round
// Not safe for concurrent use: only the controller goroutine touches it
type GameState struct {
	opts Options

	Snake *Snake
	Food  *Food

	score int
	phase Phase
	tick  uint64

	pending    core.Heading
	hasPending bool
}

// NewGameState creates a fresh round in the playing phase
func NewGameState(opts Options) *GameState {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	gs := &GameState{opts: opts}
	gs.reset()
	return gs
}

func (gs *GameState) reset() {
	gs.Snake = NewSnake(core.Point{X: parameter.SnakeStartX, Y: parameter.SnakeStartY}, gs.opts.Grid, gs.opts.Growth)
	gs.Food = NewFood(core.Point{X: parameter.FoodStartX, Y: parameter.FoodStartY}, gs.opts.Grid, gs.opts.Rand)
	if gs.opts.FoodMode == parameter.FoodAvoidBody {
		gs.Food.Avoid(gs.Snake)
	}
	gs.score = 0
	gs.phase = PhasePlaying
	gs.tick = 0
	gs.hasPending = false
}

// Score returns the food eaten this round
func (gs *GameState) Score() int {
	return gs.score
}

// Phase returns the current phase
func (gs *GameState) Phase() Phase {
	return gs.phase
}

// Tick returns the number of steps taken this round
func (gs *GameState) Tick() uint64 {
	return gs.tick
}

// Grid returns the playfield dimensions
func (gs *GameState) Grid() core.Grid {
	return gs.opts.Grid
}

// QueueDirection records a heading request for the next Step, later requests replace earlier ones
func (gs *GameState) QueueDirection(h core.Heading) {
	gs.pending = h
	gs.hasPending = true
}

// Step advances the round by one tick: turn, move, collide, eat
func (gs *GameState) Step() Outcome {
	if gs.phase != PhasePlaying {
		return OutcomeIdle
	}

	if gs.hasPending {
		gs.Snake.ChangeDirection(gs.pending)
		gs.hasPending = false
	}

	gs.Snake.Move()
	gs.tick++

	if gs.Snake.CheckCollision() {
		gs.phase = PhaseGameOver
		return OutcomeCollided
	}

	if gs.Snake.Head() == gs.Food.Position {
		gs.Snake.Eat(gs.Food)
		gs.score++
		return OutcomeAte
	}

	return OutcomeMoved
}

// Retry starts a new round from the initial layout, any phase
func (gs *GameState) Retry() {
	gs.reset()
}

// Snapshot is a read-only copy of the state for rendering and logging
type Snapshot struct {
	Grid    core.Grid
	Body    []core.Point
	Heading core.Heading
	Food    core.Point
	Score   int
	Phase   Phase
	Tick    uint64
}

// Snapshot copies the current state
func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		Grid:    gs.opts.Grid,
		Body:    gs.Snake.Body(),
		Heading: gs.Snake.Heading(),
		Food:    gs.Food.Position,
		Score:   gs.score,
		Phase:   gs.phase,
		Tick:    gs.tick,
	}
}
