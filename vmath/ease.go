package vmath

// EaseInOutQuad starts and ends slowly and is fastest at p=0.5
// p is clamped to [0, 1]; the curve passes through (0,0), (0.5,0.5), (1,1)
func EaseInOutQuad(p float64) float64 {
	p = Clamp01(p)
	if p < 0.5 {
		return 2 * p * p
	}
	q := -2*p + 2
	return 1 - q*q/2
}
