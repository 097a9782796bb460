package parameter

// Snake and food spawn cells, used at startup and on every retry
const (
	SnakeStartX = 10
	SnakeStartY = 10

	FoodStartX = 5
	FoodStartY = 5
)

// Growth modes select where the segment added after eating is placed
const (
	// GrowthHeading offsets the current tail by the heading vector (default)
	GrowthHeading = "heading"

	// GrowthTrailing re-appends the cell the tail vacated on the last move
	GrowthTrailing = "trailing"
)

// Food modes select which cells food may relocate to
const (
	// FoodPermissive picks any interior cell, including ones under the snake
	FoodPermissive = "permissive"

	// FoodAvoidBody never places food on an occupied cell
	FoodAvoidBody = "avoid-body"
)

// FoodMaxAttempts bounds random draws before falling back to a scan for a free cell
const FoodMaxAttempts = 64
