package camera

import (
	"time"

	"github.com/lixenwraith/orrery/vmath"
)

// Clock is the wall-time source driving transitions
type Clock interface {
	Now() time.Time
}

// Animator owns the single in-flight camera transition
// Every request allocates a new generation; a request made mid-flight
// re-bases from the live pose so the view never jumps
type Animator struct {
	clock Clock

	pose Pose // live pose as of the last Update or Transition

	from, to  Pose
	start     time.Time
	duration  time.Duration
	animating bool

	generation uint64
}

// NewAnimator starts idle at initial
func NewAnimator(clock Clock, initial Pose) *Animator {
	return &Animator{
		clock: clock,
		pose:  initial,
		from:  initial,
		to:    initial,
	}
}

// Transition begins or supersedes the current animation and returns its generation
// A non-positive duration jumps to the destination immediately
func (a *Animator) Transition(to Pose, duration time.Duration) uint64 {
	now := a.clock.Now()
	if a.animating {
		a.pose = a.sample(now)
	}

	a.generation++
	a.from = a.pose
	a.to = to
	a.start = now
	a.duration = duration

	if duration <= 0 {
		a.pose = to
		a.animating = false
		return a.generation
	}

	a.animating = true
	return a.generation
}

// Update advances the live pose to the current time and returns it
// Once the duration has elapsed the destination is emitted exactly and the
// animator goes idle
func (a *Animator) Update() Pose {
	if !a.animating {
		return a.pose
	}

	now := a.clock.Now()
	a.pose = a.sample(now)
	if now.Sub(a.start) >= a.duration {
		a.pose = a.to
		a.animating = false
	}
	return a.pose
}

// Set moves the camera directly, cancelling any transition
func (a *Animator) Set(p Pose) {
	a.generation++
	a.pose = p
	a.from = p
	a.to = p
	a.animating = false
}

func (a *Animator) sample(now time.Time) Pose {
	return Lerp(a.from, a.to, vmath.EaseInOutQuad(Progress(now.Sub(a.start), a.duration)))
}

// Pose returns the live pose without advancing time
func (a *Animator) Pose() Pose {
	return a.pose
}

// Destination is where the current or last transition ends
func (a *Animator) Destination() Pose {
	return a.to
}

func (a *Animator) Animating() bool {
	return a.animating
}

// Generation identifies the most recent request
func (a *Animator) Generation() uint64 {
	return a.generation
}

// Superseded reports whether a later request replaced gen
func (a *Animator) Superseded(gen uint64) bool {
	return gen != a.generation
}

// Progress is elapsed/duration clamped to [0, 1]; a non-positive duration
// counts as complete
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return vmath.Clamp01(float64(elapsed) / float64(duration))
}
