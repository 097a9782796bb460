package game

import (
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// Snake is the player's creature: body is head-first and never empty
type Snake struct {
	body    []core.Point
	heading core.Heading
	grid    core.Grid
	growth  string

	// Cell released by the most recent Move, used by trailing growth
	vacated core.Point
}

// NewSnake creates a one-segment snake at start heading right
func NewSnake(start core.Point, grid core.Grid, growth string) *Snake {
	return &Snake{
		body:    []core.Point{start},
		heading: core.HeadingRight,
		grid:    grid,
		growth:  growth,
		vacated: start,
	}
}

// Head returns the head cell
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Tail returns the last segment
func (s *Snake) Tail() core.Point {
	return s.body[len(s.body)-1]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the current direction of travel
func (s *Snake) Heading() core.Heading {
	return s.heading
}

// Body returns a copy of the segments, head first
func (s *Snake) Body() []core.Point {
	body := make([]core.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Occupies reports whether any segment is on p
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Move shifts the whole body one cell along the heading, length unchanged
func (s *Snake) Move() {
	head := s.body[0].Add(s.heading.Vector())
	s.vacated = s.body[len(s.body)-1]

	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// ChangeDirection sets the heading unless it would reverse the snake onto itself
func (s *Snake) ChangeDirection(h core.Heading) {
	if h == s.heading.Opposite() {
		return
	}
	s.heading = h
}

// Eat consumes food under the head: the food relocates and the body grows by one
// Returns false and changes nothing if the head is elsewhere
func (s *Snake) Eat(f *Food) bool {
	if s.body[0] != f.Position {
		return false
	}

	var tail core.Point
	switch s.growth {
	case parameter.GrowthTrailing:
		tail = s.vacated
	default:
		// Offsets the tail by the heading, so the new segment can sit off the body line
		tail = s.Tail().Add(s.heading.Vector())
	}
	s.body = append(s.body, tail)

	// Relocate after growing so avoid-body placement sees the new tail
	f.Generate()
	return true
}

// CheckCollision reports whether the head hit a wall or another segment
func (s *Snake) CheckCollision() bool {
	head := s.body[0]
	if s.grid.OnBorder(head) {
		return true
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
