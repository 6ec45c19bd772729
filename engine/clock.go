package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

// TimeProvider supplies wall-clock readings to the camera and debounce timers
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock with its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// SimClock holds the user time controls and accumulates simulated time
// Wall time keeps flowing for the camera while the simulation is paused
type SimClock struct {
	paused    bool
	timeScale float64
	elapsed   float64 // scaled seconds while running
}

func NewSimClock(timeScale float64) *SimClock {
	c := &SimClock{timeScale: constant.TimeScaleDefault}
	c.SetTimeScale(timeScale)
	return c
}

func (c *SimClock) Paused() bool {
	return c.paused
}

func (c *SimClock) SetPaused(p bool) {
	c.paused = p
}

// TogglePause flips the pause state and returns the new state
func (c *SimClock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

func (c *SimClock) TimeScale() float64 {
	return c.timeScale
}

// SetTimeScale snaps to the slider step and clamps to the slider range
func (c *SimClock) SetTimeScale(v float64) float64 {
	v = vmath.Snap(v, constant.TimeScaleStep)
	c.timeScale = vmath.Clamp(v, constant.TimeScaleMin, constant.TimeScaleMax)
	return c.timeScale
}

// StepTimeScale moves the speed by n slider steps
func (c *SimClock) StepTimeScale(n int) float64 {
	return c.SetTimeScale(c.timeScale + float64(n)*constant.TimeScaleStep)
}

// Advance accumulates a frame delta in seconds; ignored while paused
func (c *SimClock) Advance(delta float64) {
	if c.paused || !(delta > 0) {
		return
	}
	c.elapsed += delta * c.timeScale
}

// Elapsed returns accumulated scaled seconds
func (c *SimClock) Elapsed() float64 {
	return c.elapsed
}

// ClampFrameDelta converts a wall-clock gap into a tick delta in seconds,
// capping stalls at MaxFrameDelta and rejecting clock regressions
func ClampFrameDelta(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	if d > constant.MaxFrameDelta {
		d = constant.MaxFrameDelta
	}
	return d.Seconds()
}
