package parameter

// Glyphs
const (
	GlyphBody       = '#'
	GlyphFood       = 'O'
	GlyphCorner     = '+'
	GlyphHorizontal = '-'
	GlyphVertical   = '|'
)

// Minimum terminal size: the spawn cells and the game-over prompt must fit
const (
	MinScreenWidth  = 40
	MinScreenHeight = 12
)

// Text
const (
	ScoreColumn     = 2
	ScoreFormat     = "Score: %d"
	GameOverText    = "Game Over X_X !"
	FinalScoreText  = "Your score: %d"
	RetryPromptText = "Press 'R' to play again or 'Q' to quit"
)
