// Package camera animates the viewer's eye and look-at target
package camera

import (
	"math"

	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

// Pose is an eye position and the point it looks at
type Pose struct {
	Eye    vmath.Vec3F
	Target vmath.Vec3F
}

// Overview is the whole-system pose used at startup and after deselect
func Overview() Pose {
	return Pose{
		Eye:    vmath.V3FFromArray(constant.DefaultEye),
		Target: vmath.V3FFromArray(constant.DefaultTarget),
	}
}

// FocusOn frames a body of the given rendered size at position
// Eye distance scales with size so small and large planets fill similar screen area
func FocusOn(position vmath.Vec3F, renderedSize float64) Pose {
	d := renderedSize * constant.FocusDistanceFactor
	offset := vmath.V3F(constant.FocusOffsetX*d, constant.FocusOffsetY*d, constant.FocusOffsetZ*d)
	return Pose{
		Eye:    vmath.V3FAdd(position, offset),
		Target: position,
	}
}

// Lerp interpolates eye and target independently
func Lerp(from, to Pose, t float64) Pose {
	return Pose{
		Eye:    vmath.V3FLerp(from.Eye, to.Eye, t),
		Target: vmath.V3FLerp(from.Target, to.Target, t),
	}
}

// Distance is the eye-to-target length
func (p Pose) Distance() float64 {
	return vmath.V3FMag(vmath.V3FSub(p.Eye, p.Target))
}

// Orbit swings the eye around the target by azimuth and elevation deltas in
// radians, keeping the distance; elevation stays short of the poles
func (p Pose) Orbit(dAzimuth, dElevation float64) Pose {
	off := vmath.V3FSub(p.Eye, p.Target)
	r := vmath.V3FMag(off)
	if r == 0 {
		return p
	}

	az := math.Atan2(off.X, off.Z) + dAzimuth
	el := math.Asin(vmath.Clamp(off.Y/r, -1, 1)) + dElevation
	el = vmath.Clamp(el, -constant.MaxElevation, constant.MaxElevation)

	sinEl, cosEl := math.Sincos(el)
	sinAz, cosAz := math.Sincos(az)
	p.Eye = vmath.V3FAdd(p.Target, vmath.V3F(r*cosEl*sinAz, r*sinEl, r*cosEl*cosAz))
	return p
}

// Zoom scales eye distance by factor, clamped to the controls' distance range
func (p Pose) Zoom(factor float64) Pose {
	off := vmath.V3FSub(p.Eye, p.Target)
	r := vmath.V3FMag(off)
	if r == 0 || factor <= 0 {
		return p
	}
	nr := vmath.Clamp(r*factor, constant.MinCameraDistance, constant.MaxCameraDistance)
	p.Eye = vmath.V3FAdd(p.Target, vmath.V3FScale(off, nr/r))
	return p
}
