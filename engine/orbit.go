package engine

import (
	"math"

	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

// OrbitalState is the mutable per-body phase
// Angles accumulate without wrapping; Advance folds them back only past
// AngleReduceThreshold
type OrbitalState struct {
	AngleRadians    float64
	RotationRadians float64
}

// Motion is the fixed per-body kinematic description derived from catalog data
// Speeds are per second at time scale 1
type Motion struct {
	Radius        float64 // world units
	OrbitalSpeed  float64 // rad/s, 0 for the star
	RotationSpeed float64 // rad/s, negative for retrograde, 0 when period is 0
}

// MotionFor derives a body's motion from its periods and distance
func MotionFor(b celestial.Body) Motion {
	m := Motion{Radius: b.OrbitRadius()}
	if b.OrbitalPeriodDays > 0 {
		m.OrbitalSpeed = vmath.AngularSpeed(b.OrbitalPeriodDays, constant.OrbitalPeriodDivisor, constant.OrbitalSpeedScale)
	}
	if b.RotationPeriodDays != 0 {
		m.RotationSpeed = vmath.AngularSpeed(b.RotationPeriodDays, constant.RotationPeriodDivisor, constant.RotationSpeedScale)
	}
	return m
}

// Stationary reports bodies that never leave the origin
func (m Motion) Stationary() bool {
	return m.OrbitalSpeed == 0
}

// NewOrbitalState starts a body at a pseudo-random phase in [0, 2π)
func NewOrbitalState(rng *vmath.FastRand) OrbitalState {
	return OrbitalState{AngleRadians: rng.Angle()}
}

// Advance integrates one tick and returns the position derived from the
// updated angle
// delta is in seconds; negative or NaN deltas are treated as zero
func Advance(s *OrbitalState, m Motion, delta float64, paused bool, timeScale float64) vmath.Vec3F {
	if !paused && delta > 0 && timeScale > 0 {
		if m.OrbitalSpeed != 0 {
			s.AngleRadians = vmath.ReduceAngle(s.AngleRadians+m.OrbitalSpeed*timeScale*delta, constant.AngleReduceThreshold)
		}
		if m.RotationSpeed != 0 {
			s.RotationRadians = vmath.ReduceAngle(s.RotationRadians+m.RotationSpeed*timeScale*delta, constant.AngleReduceThreshold)
		}
	}
	return Position(*s, m)
}

// Position derives the world position of a state; the star stays at the origin
func Position(s OrbitalState, m Motion) vmath.Vec3F {
	if m.Stationary() || m.Radius == 0 || math.IsNaN(s.AngleRadians) {
		return vmath.Vec3F{}
	}
	return vmath.CircularPosition(m.Radius, s.AngleRadians)
}
