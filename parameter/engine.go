package parameter

import "time"

// Event Queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer, must be a power of two
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1
)

// Host Loop
const (
	// InputChannelSize buffers decoded intents between the input poller and the host loop
	InputChannelSize = 64

	// RenderInterval is the redraw period, independent of the tick rate
	RenderInterval = 16 * time.Millisecond
)
