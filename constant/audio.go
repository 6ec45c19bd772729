package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Chime voicing
const (
	// SelectChimeFreq is the fundamental played when a body is selected
	SelectChimeFreq     = 660.0
	SelectChimeOvertone = 990.0
	SelectChimeDuration = 180 * time.Millisecond
	SelectChimeAttack   = 5 * time.Millisecond
	SelectChimeRelease  = 140 * time.Millisecond

	// ResetSweep is the falling glide played on return to overview
	ResetSweepDuration = 300 * time.Millisecond
	ResetSweepFromFreq = 520.0
	ResetSweepToFreq   = 260.0
	ResetSweepAttack   = 10 * time.Millisecond
	ResetSweepRelease  = 200 * time.Millisecond

	// ChimeVolume is the peak amplitude of all chimes
	ChimeVolume = 0.18
)
