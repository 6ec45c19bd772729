package render

import (
	"math"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

// Projector maps world points into a terminal viewport with a perspective look-at camera
type Projector struct {
	eye     vmath.Vec3F
	right   vmath.Vec3F
	up      vmath.Vec3F
	forward vmath.Vec3F

	// Viewport origin and size in cells
	originX, originY int
	width, height    int

	// focal is rows per unit at unit depth
	focal  float64
	cx, cy float64
}

// Projected is a screen-space point
type Projected struct {
	X, Y  float64 // Cell coordinates, X in columns
	Depth float64 // Distance along the view axis
}

// NewProjector builds a projector for pose over a viewport
func NewProjector(pose camera.Pose, originX, originY, width, height int) *Projector {
	forward := vmath.V3FNormalize(vmath.V3FSub(pose.Target, pose.Eye))
	if vmath.V3FMagSq(forward) == 0 {
		forward = vmath.V3F(0, 0, -1)
	}

	worldUp := vmath.V3F(0, 1, 0)
	right := vmath.V3FCross(forward, worldUp)
	if vmath.V3FMagSq(right) < 1e-12 {
		// Looking straight up or down
		right = vmath.V3F(1, 0, 0)
	}
	right = vmath.V3FNormalize(right)
	up := vmath.V3FCross(right, forward)

	fov := constant.FieldOfViewDeg * math.Pi / 180
	focal := float64(height) / 2 / math.Tan(fov/2)

	return &Projector{
		eye:     pose.Eye,
		right:   right,
		up:      up,
		forward: forward,
		originX: originX,
		originY: originY,
		width:   width,
		height:  height,
		focal:   focal,
		cx:      float64(originX) + float64(width)/2,
		cy:      float64(originY) + float64(height)/2,
	}
}

// View transforms a world point into camera space (x right, y up, z forward)
func (p *Projector) View(world vmath.Vec3F) vmath.Vec3F {
	d := vmath.V3FSub(world, p.eye)
	return vmath.V3F(vmath.V3FDot(d, p.right), vmath.V3FDot(d, p.up), vmath.V3FDot(d, p.forward))
}

// Project maps a world point to the screen
// ok is false behind the near plane
func (p *Projector) Project(world vmath.Vec3F) (Projected, bool) {
	v := p.View(world)
	if v.Z < constant.NearPlane {
		return Projected{}, false
	}
	return p.screen(v), true
}

// ProjectDirection maps a direction at infinity, ignoring eye position
func (p *Projector) ProjectDirection(dir vmath.Vec3F) (Projected, bool) {
	v := vmath.V3F(vmath.V3FDot(dir, p.right), vmath.V3FDot(dir, p.up), vmath.V3FDot(dir, p.forward))
	if v.Z <= 0 {
		return Projected{}, false
	}
	return p.screen(v), true
}

func (p *Projector) screen(v vmath.Vec3F) Projected {
	inv := p.focal / v.Z
	return Projected{
		X:     p.cx + v.X*inv*constant.CellAspect,
		Y:     p.cy - v.Y*inv,
		Depth: v.Z,
	}
}

// Radius converts a world radius at depth into rows
// Column radius is Radius * CellAspect
func (p *Projector) Radius(worldRadius, depth float64) float64 {
	if depth < constant.NearPlane {
		return 0
	}
	return worldRadius * p.focal / depth
}

// Visible reports whether a screen point lies inside the viewport
func (p *Projector) Visible(pt Projected) bool {
	return pt.X >= float64(p.originX) && pt.X < float64(p.originX+p.width) &&
		pt.Y >= float64(p.originY) && pt.Y < float64(p.originY+p.height)
}
