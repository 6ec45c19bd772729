package constant

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the simulated delta of a single frame after a stall
	// (suspended terminal, debugger) so bodies do not jump across the orbit
	MaxFrameDelta = 100 * time.Millisecond

	// EventChannelSize is the buffered capacity of the input poller channel
	EventChannelSize = 256
)

// Simulation Time Control
const (
	// TimeScaleMin and TimeScaleMax bound the user speed control
	TimeScaleMin = 0.1
	TimeScaleMax = 5.0

	// TimeScaleStep is the slider resolution; values snap to multiples of it
	TimeScaleStep = 0.1

	// TimeScaleDefault is the speed at startup
	TimeScaleDefault = 1.0
)

// Angle Bookkeeping
const (
	// AngleReduceThreshold is the magnitude past which accumulated angles are
	// folded back modulo 2π; far above anything a normal session reaches
	AngleReduceThreshold = 2 * 3.141592653589793 * 1e6
)
