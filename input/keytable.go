package input

import "github.com/gdamore/tcell/v2"

// Context selects which bindings apply to a key press
type Context uint8

const (
	ContextPlaying Context = iota
	ContextPrompt
)

// KeyTable maps keys to intents per context
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	PlayingKeys  map[tcell.Key]Intent
	PlayingRunes map[rune]Intent

	PromptKeys  map[tcell.Key]Intent
	PromptRunes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		PlayingKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     IntentUp,
			tcell.KeyDown:   IntentDown,
			tcell.KeyLeft:   IntentLeft,
			tcell.KeyRight:  IntentRight,
			tcell.KeyCtrlC:  IntentInterrupt,
			tcell.KeyEscape: IntentInterrupt,
		},

		// vi motions steer too
		PlayingRunes: map[rune]Intent{
			'h': IntentLeft,
			'j': IntentDown,
			'k': IntentUp,
			'l': IntentRight,
		},

		PromptKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
		},

		PromptRunes: map[rune]Intent{
			'r': IntentRetry,
			'R': IntentRetry,
			'q': IntentQuit,
			'Q': IntentQuit,
		},
	}
}

// Resolve returns the intent for ev in ctx, IntentNone for unbound keys
func (kt *KeyTable) Resolve(ev *tcell.EventKey, ctx Context) Intent {
	keys, runes := kt.PlayingKeys, kt.PlayingRunes
	if ctx == ContextPrompt {
		keys, runes = kt.PromptKeys, kt.PromptRunes
	}

	if ev.Key() == tcell.KeyRune {
		return runes[ev.Rune()]
	}
	return keys[ev.Key()]
}
