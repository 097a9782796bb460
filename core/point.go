package core

// Point represents a grid cell: X is the column, Y is the row
type Point struct {
	X, Y int
}

// Add returns p translated by v
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Heading is the direction the snake travels in
type Heading uint8

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

var headingVectors = [...]Point{
	HeadingUp:    {X: 0, Y: -1},
	HeadingDown:  {X: 0, Y: 1},
	HeadingLeft:  {X: -1, Y: 0},
	HeadingRight: {X: 1, Y: 0},
}

var headingNames = [...]string{
	HeadingUp:    "up",
	HeadingDown:  "down",
	HeadingLeft:  "left",
	HeadingRight: "right",
}

// Vector returns the unit offset of one step in heading h
// Rows grow downward, so Up is negative Y
func (h Heading) Vector() Point {
	return headingVectors[h]
}

// Opposite returns the 180° reversal of h
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

func (h Heading) String() string {
	if int(h) < len(headingNames) {
		return headingNames[h]
	}
	return "unknown"
}
