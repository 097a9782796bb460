package input

import "github.com/lixenwraith/snake/core"

// Intent is the semantic meaning of a key press
type Intent uint8

const (
	IntentNone Intent = iota

	// Steering, accepted while playing
	IntentUp
	IntentDown
	IntentLeft
	IntentRight

	// Game-over prompt
	IntentRetry
	IntentQuit

	// Ctrl+C or Esc while playing; raw mode swallows SIGINT
	IntentInterrupt
)

var intentNames = [...]string{
	IntentNone:      "none",
	IntentUp:        "up",
	IntentDown:      "down",
	IntentLeft:      "left",
	IntentRight:     "right",
	IntentRetry:     "retry",
	IntentQuit:      "quit",
	IntentInterrupt: "interrupt",
}

func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// Heading maps a steering intent to a heading, ok is false for anything else
func (i Intent) Heading() (h core.Heading, ok bool) {
	switch i {
	case IntentUp:
		return core.HeadingUp, true
	case IntentDown:
		return core.HeadingDown, true
	case IntentLeft:
		return core.HeadingLeft, true
	case IntentRight:
		return core.HeadingRight, true
	default:
		return 0, false
	}
}
