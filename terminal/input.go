package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/input"
)

// pump forwards screen events to the events channel until the screen is finalized
func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// PollDirection waits up to timeout for one recognized key in the playing context
// Returns a steering intent, IntentInterrupt, or IntentNone on timeout
func (t *Terminal) PollDirection(timeout time.Duration) input.Intent {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return input.IntentNone
			}
			if intent := t.handle(ev, input.ContextPlaying); intent != input.IntentNone {
				return intent
			}
		case <-timer.C:
			return input.IntentNone
		}
	}
}

// PollPrompt blocks until retry or quit is pressed
// A closed event stream counts as quit so the caller cannot wait forever
func (t *Terminal) PollPrompt() input.Intent {
	for ev := range t.events {
		if intent := t.handle(ev, input.ContextPrompt); intent != input.IntentNone {
			return intent
		}
	}
	return input.IntentQuit
}

func (t *Terminal) handle(ev tcell.Event, ctx input.Context) input.Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.keys.Resolve(ev, ctx)
	case *tcell.EventResize:
		// Grid stays as measured at Init; just repaint
		t.screen.Sync()
	}
	return input.IntentNone
}
