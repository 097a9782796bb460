package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the simulation step period, and the frame cadence
	TickInterval = 100 * time.Millisecond

	// PollTimeout bounds the wait for a directional key within one tick
	PollTimeout = 100 * time.Millisecond

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 100
)
