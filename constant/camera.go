package constant

import "time"

// Overview pose the camera returns to on deselect or reset
var (
	DefaultEye    = [3]float64{0, 30, 50}
	DefaultTarget = [3]float64{0, 0, 0}
)

// Focus transition
const (
	// TransitionDuration is the default camera animation length
	TransitionDuration = 1000 * time.Millisecond

	// FocusDistanceFactor multiplies a body's rendered size to get eye distance
	FocusDistanceFactor = 15.0

	// Eye offset from the focused body, as fractions of the focus distance
	FocusOffsetX = -0.7
	FocusOffsetY = 0.5
	FocusOffsetZ = 0.7

	// RefocusDebounce coalesces per-frame position reports of the selected body
	RefocusDebounce = 100 * time.Millisecond
)

// Projection
const (
	// FieldOfViewDeg is the vertical field of view of the perspective camera
	FieldOfViewDeg = 60.0

	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	// NearPlane culls geometry closer than this to the eye
	NearPlane = 0.1
)

// Manual controls
const (
	// MinCameraDistance and MaxCameraDistance bound manual zoom
	MinCameraDistance = 5.0
	MaxCameraDistance = 200.0

	// ZoomStep is the distance factor of one zoom-in key press
	ZoomStep = 0.85

	// OrbitStep is the angle of one orbit key press in radians
	OrbitStep = 0.08

	// MaxElevation keeps the eye short of straight up or down
	MaxElevation = 1.45
)

// ReportDriftFactor is how far, in rendered sizes, a tracked body moves
// before its position is reported to navigation again
const ReportDriftFactor = 0.5
