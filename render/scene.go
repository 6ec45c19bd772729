package render

import (
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/vmath"
)

// star is a fixed direction on the background sphere
type star struct {
	dir        vmath.Vec3F
	brightness float64
}

// Status carries presentation state that lives outside the simulation
type Status struct {
	Muted      bool
	AudioReady bool
}

// Renderer draws simulation snapshots into a RenderBuffer
type Renderer struct {
	buf   *RenderBuffer
	stars []star

	// Ring geometry per planet id, rebuilt only when the catalog changes
	rings map[string][]vmath.Vec3F
}

// NewRenderer creates a renderer with a star field seeded by seed
func NewRenderer(seed uint64) *Renderer {
	rng := vmath.NewFastRand(seed)
	stars := make([]star, constant.StarCount)
	for i := range stars {
		// Uniform on the sphere
		z := 2*rng.Float64() - 1
		phi := rng.Angle()
		r := math.Sqrt(1 - z*z)
		stars[i] = star{
			dir:        vmath.V3F(r*math.Cos(phi), z, r*math.Sin(phi)),
			brightness: 0.35 + 0.65*rng.Float64(),
		}
	}
	return &Renderer{
		buf:   NewRenderBuffer(0, 0),
		stars: stars,
		rings: make(map[string][]vmath.Vec3F),
	}
}

// Buffer exposes the composited frame
func (r *Renderer) Buffer() *RenderBuffer {
	return r.buf
}

// Viewport returns the scene area below the controls bar
func Viewport(width, height int) (x, y, w, h int) {
	top := min(constant.HUDRows, height)
	return 0, top, width, height - top
}

// Compose renders a full frame into the buffer without touching a screen
func (r *Renderer) Compose(width, height int, snap engine.Snapshot, status Status) {
	if w, h := r.buf.Size(); w != width || h != height {
		r.buf.Resize(width, height)
	} else {
		r.buf.Clear()
	}
	if width <= 0 || height <= 0 {
		return
	}

	vx, vy, vw, vh := Viewport(width, height)
	if vh > 0 {
		proj := NewProjector(snap.Camera, vx, vy, vw, vh)
		r.drawStars(proj, snap)
		r.drawOrbits(proj, snap)
		r.drawBodies(proj, snap)
		r.drawLabels(proj, snap)
	}

	drawHUD(r.buf, snap, status)
	drawNavPanel(r.buf, snap)
	drawInfoPanel(r.buf, snap)
}

// Draw composes and flushes a frame to screen
func (r *Renderer) Draw(screen tcell.Screen, snap engine.Snapshot, status Status) {
	w, h := screen.Size()
	r.Compose(w, h, snap, status)
	r.buf.FlushToScreen(screen)
	screen.Show()
}

func (r *Renderer) drawStars(proj *Projector, snap engine.Snapshot) {
	for _, s := range r.stars {
		d := vmath.V3FRotateX(vmath.V3FRotateY(s.dir, snap.StarYaw), snap.StarPitch)
		pt, ok := proj.ProjectDirection(d)
		if !ok || !proj.Visible(pt) {
			continue
		}
		glyph := '.'
		if s.brightness > 0.85 {
			glyph = '+'
		}
		c := Scale(White, s.brightness*0.8)
		r.buf.SetFgOnly(int(pt.X), int(pt.Y), glyph, c, tcell.AttrNone)
	}
}

func (r *Renderer) ring(b celestial.Body) []vmath.Vec3F {
	pts, ok := r.rings[b.ID]
	if !ok || len(pts) != constant.OrbitSegments+1 {
		pts = vmath.OrbitRing(b.OrbitRadius(), constant.OrbitSegments)
		r.rings[b.ID] = pts
	}
	return pts
}

func (r *Renderer) drawOrbits(proj *Projector, snap engine.Snapshot) {
	for _, f := range snap.Bodies {
		if f.Body.IsStar() {
			continue
		}
		opacity := constant.OrbitOpacity
		switch {
		case f.Selected:
			opacity = constant.OrbitSelectedOpacity
		case f.Hovered:
			opacity = constant.OrbitHoverOpacity
		}
		c := Blend(Black, OrbitBase, opacity)

		pts := r.ring(f.Body)
		for i := 1; i < len(pts); i++ {
			a, okA := proj.Project(pts[i-1])
			b, okB := proj.Project(pts[i])
			if !okA || !okB {
				continue
			}
			r.line(proj, a, b, c)
		}
	}
}

// line plots a dotted segment between two screen points, clipped to the viewport
func (r *Renderer) line(proj *Projector, a, b Projected, c colorful.Color) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps > 4*(proj.width+proj.height) {
		// Segment passes very close to the eye
		return
	}
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		pt := Projected{X: a.X + dx*t, Y: a.Y + dy*t}
		if !proj.Visible(pt) {
			continue
		}
		x, y := int(pt.X), int(pt.Y)
		if cell, _ := r.buf.Get(x, y); cell.Rune != 0 && cell.Rune != '.' && cell.Rune != '+' {
			continue
		}
		r.buf.SetFgOnly(x, y, '·', c, tcell.AttrNone)
	}
}

// placed is a body projected for drawing
type placed struct {
	frame  engine.BodyFrame
	center Projected
	radius float64 // rows
}

// placeBodies projects visible bodies sorted far to near
func placeBodies(proj *Projector, snap engine.Snapshot) []placed {
	out := make([]placed, 0, len(snap.Bodies))
	for _, f := range snap.Bodies {
		pt, ok := proj.Project(f.Position)
		if !ok {
			continue
		}
		out = append(out, placed{
			frame:  f,
			center: pt,
			radius: proj.Radius(f.Body.RenderedSize(), pt.Depth),
		})
	}
	// Painter's algorithm: sort far to near
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].center.Depth > out[j].center.Depth
	})
	return out
}

func (r *Renderer) drawBodies(proj *Projector, snap engine.Snapshot) {
	var sunView vmath.Vec3F
	for _, f := range snap.Bodies {
		if f.Body.IsStar() {
			sunView = proj.View(f.Position)
		}
	}

	for _, p := range placeBodies(proj, snap) {
		base := p.frame.Body.RGB()
		if p.frame.Selected || p.frame.Hovered {
			base = p.frame.Body.Highlight()
		}

		if p.radius < 0.5 {
			if proj.Visible(p.center) {
				glyph := '•'
				if p.frame.Body.IsStar() {
					glyph = '*'
				}
				r.buf.SetFgOnly(int(p.center.X), int(p.center.Y), glyph, base, tcell.AttrBold)
			}
			continue
		}

		if p.frame.Body.IsStar() {
			r.drawGlow(proj, p, base)
			r.drawDisc(proj, p, base, nil)
			continue
		}

		light := vmath.V3FNormalize(vmath.V3FSub(sunView, proj.View(p.frame.Position)))
		r.drawDisc(proj, p, base, &light)
	}
}

// drawDisc fills a shaded disc; nil light renders emissive
func (r *Renderer) drawDisc(proj *Projector, p placed, base colorful.Color, light *vmath.Vec3F) {
	rr := p.radius
	rc := rr * constant.CellAspect

	minX := max(proj.originX, int(p.center.X-rc-1))
	maxX := min(proj.originX+proj.width-1, int(p.center.X+rc+1))
	minY := max(proj.originY, int(p.center.Y-rr-1))
	maxY := min(proj.originY+proj.height-1, int(p.center.Y+rr+1))

	spin := p.frame.RotationRadians
	ring := p.frame.Selected || p.frame.Hovered

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - p.center.X) / rc
			ny := (float64(sy) + 0.5 - p.center.Y) / rr
			distSq := nx*nx + ny*ny
			if distSq > 1 {
				continue
			}
			nz := math.Sqrt(1 - distSq)

			// Longitude bands make axial spin visible
			lon := math.Atan2(nx, nz) + spin
			band := 0.9 + 0.1*math.Sin(4*lon)

			intensity := band
			if light != nil {
				// View space: x right, y up, z away from the eye
				n := vmath.V3F(nx, -ny, -nz)
				lambert := math.Max(0, vmath.V3FDot(n, *light))
				intensity *= 0.2 + 0.8*lambert
			}
			c := Scale(base, intensity)

			if ring && distSq > 0.8 {
				c = Screen(c, Scale(White, 0.35))
			}
			r.buf.SetWithBg(sx, sy, ' ', c, c)
		}
	}
}

// drawGlow screens a halo around the star between its rim and SunGlowOuter
func (r *Renderer) drawGlow(proj *Projector, p placed, base colorful.Color) {
	outer := p.radius * constant.SunGlowOuter
	oc := outer * constant.CellAspect

	minX := max(proj.originX, int(p.center.X-oc-1))
	maxX := min(proj.originX+proj.width-1, int(p.center.X+oc+1))
	minY := max(proj.originY, int(p.center.Y-outer-1))
	maxY := min(proj.originY+proj.height-1, int(p.center.Y+outer+1))

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - p.center.X) / (p.radius * constant.CellAspect)
			ny := (float64(sy) + 0.5 - p.center.Y) / p.radius
			d := math.Sqrt(nx*nx + ny*ny)
			if d <= 1 || d > constant.SunGlowOuter {
				continue
			}
			alpha := 0.25
			if d <= constant.SunGlowInner {
				alpha = 0.5
			}
			// Falloff toward the outer edge
			alpha *= 1 - (d-1)/(constant.SunGlowOuter-1)
			r.buf.Set(sx, sy, 0, Black, base, BlendScreenBg, alpha, tcell.AttrNone)
		}
	}
}

func (r *Renderer) drawLabels(proj *Projector, snap engine.Snapshot) {
	for _, f := range snap.Bodies {
		if !f.Selected && !f.Hovered {
			continue
		}
		pt, ok := proj.Project(f.Position)
		if !ok {
			continue
		}
		rad := proj.Radius(f.Body.RenderedSize(), pt.Depth)
		y := int(pt.Y+rad) + 1
		name := f.Body.Name
		x := int(pt.X) - len(name)/2
		if y >= proj.originY+proj.height || y < proj.originY {
			continue
		}
		r.buf.WriteString(x, y, name, TextAccent, tcell.AttrBold)
	}
}

// Pick returns the frontmost body whose disc covers cell x, y
// Small bodies get a one-cell tolerance
func Pick(snap engine.Snapshot, width, height, x, y int) (string, bool) {
	vx, vy, vw, vh := Viewport(width, height)
	if vh <= 0 || y < vy {
		return "", false
	}
	proj := NewProjector(snap.Camera, vx, vy, vw, vh)

	bodies := placeBodies(proj, snap)
	// Nearest first
	for i := len(bodies) - 1; i >= 0; i-- {
		p := bodies[i]
		rr := math.Max(p.radius, 1)
		rc := math.Max(p.radius*constant.CellAspect, 1.5)
		nx := (float64(x) + 0.5 - p.center.X) / rc
		ny := (float64(y) + 0.5 - p.center.Y) / rr
		if nx*nx+ny*ny <= 1 {
			return p.frame.Body.ID, true
		}
	}
	return "", false
}
