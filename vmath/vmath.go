package vmath

import "math"

// TwoPi is one full revolution in radians
const TwoPi = 2 * math.Pi

// Clamp restricts v to [lo, hi]; NaN collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 restricts v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// ReduceAngle folds an accumulated angle back into (-2π, 2π) once its
// magnitude exceeds threshold; trig results are unchanged by the fold
func ReduceAngle(a, threshold float64) float64 {
	if math.Abs(a) <= threshold {
		return a
	}
	return math.Mod(a, TwoPi)
}

// Snap rounds v to the nearest multiple of step
func Snap(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// --- Randomness ---

// FastRand is a xorshift64 generator; deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	// Top 53 bits fill the mantissa exactly
	return float64(r.Next()>>11) / (1 << 53)
}

// Angle returns a value in [0, 2π)
func (r *FastRand) Angle() float64 {
	return r.Float64() * TwoPi
}
