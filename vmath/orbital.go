package vmath

import "math"

// CircularPosition returns the point on a circular orbit of the given radius
// in the XZ plane; y is always 0
func CircularPosition(radius, angle float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{X: radius * c, Y: 0, Z: radius * s}
}

// AngularSpeed returns 2π/(period·divisor) scaled by factor, signed by the
// period; a zero period yields zero speed instead of dividing by zero
func AngularSpeed(period, divisor, factor float64) float64 {
	if period == 0 || divisor == 0 {
		return 0
	}
	return TwoPi / (math.Abs(period) * divisor) * Sign(period) * factor
}

// OrbitRing samples n+1 points around a circular orbit, closing the loop
func OrbitRing(radius float64, n int) []Vec3F {
	if n < 3 {
		n = 3
	}
	pts := make([]Vec3F, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = CircularPosition(radius, float64(i)/float64(n)*TwoPi)
	}
	return pts
}
