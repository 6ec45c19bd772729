package engine

import (
	"time"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/navigation"
	"github.com/lixenwraith/orrery/vmath"
)

// Options configures a Simulation
type Options struct {
	Seed               uint64        // initial phases; 0 picks a fixed default
	TimeScale          float64       // initial speed
	TransitionDuration time.Duration // camera focus animation length
}

// DefaultOptions mirrors the constant table
func DefaultOptions() Options {
	return Options{
		Seed:               1,
		TimeScale:          constant.TimeScaleDefault,
		TransitionDuration: constant.TransitionDuration,
	}
}

// Simulation is the arena owning every piece of per-frame mutable state
// Single-threaded: Tick, input handlers and Snapshot all run on the frame loop
type Simulation struct {
	// ===== Immutable After Init =====
	bodies  []celestial.Body
	motions []Motion
	index   map[string]int

	// ===== Frame State =====
	states    []OrbitalState
	positions []vmath.Vec3F

	// lastReport is the position last handed to the navigator per body;
	// reports are sent only when a body drifts past ReportDriftFactor of its
	// rendered size, which keeps the refocus debounce from restarting every frame
	lastReport []vmath.Vec3F
	reported   []bool

	starYaw, starPitch float64

	clock    TimeProvider
	Time     *SimClock
	Camera   *camera.Animator
	Nav      *navigation.Navigator
	duration time.Duration
}

// NewSimulation builds the arena over the catalog
func NewSimulation(tp TimeProvider, opts Options) *Simulation {
	bodies := celestial.Catalog()
	rng := vmath.NewFastRand(opts.Seed)

	s := &Simulation{
		bodies:     bodies,
		motions:    make([]Motion, len(bodies)),
		index:      make(map[string]int, len(bodies)),
		states:     make([]OrbitalState, len(bodies)),
		positions:  make([]vmath.Vec3F, len(bodies)),
		lastReport: make([]vmath.Vec3F, len(bodies)),
		reported:   make([]bool, len(bodies)),
		clock:      tp,
		Time:       NewSimClock(opts.TimeScale),
		duration:   opts.TransitionDuration,
	}

	for i, b := range bodies {
		s.index[b.ID] = i
		s.motions[i] = MotionFor(b)
		s.states[i] = NewOrbitalState(rng)
		s.positions[i] = Position(s.states[i], s.motions[i])
	}

	s.Camera = camera.NewAnimator(tp, camera.Overview())
	s.Nav = navigation.NewNavigator(tp, s.Camera, opts.TransitionDuration)
	return s
}

// Tick advances one frame; delta is wall seconds since the previous tick
func (s *Simulation) Tick(delta float64) {
	paused := s.Time.Paused()
	scale := s.Time.TimeScale()
	s.Time.Advance(delta)

	for i := range s.bodies {
		s.positions[i] = Advance(&s.states[i], s.motions[i], delta, paused, scale)
	}

	if delta > 0 {
		s.starYaw += constant.StarDriftRateY * delta
		s.starPitch += constant.StarDriftRateX * delta
	}

	s.reportTracked()
	s.Nav.Update()
	s.Camera.Update()
}

// reportTracked forwards positions of the selected and hovered bodies
func (s *Simulation) reportTracked() {
	if id, ok := s.Nav.Selected(); ok {
		s.report(id)
	}
	if id, ok := s.Nav.Hovered(); ok {
		s.report(id)
	}
}

func (s *Simulation) report(id string) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	p := s.positions[i]
	if s.reported[i] {
		limit := s.bodies[i].RenderedSize() * constant.ReportDriftFactor
		if vmath.V3FMagSq(vmath.V3FSub(p, s.lastReport[i])) < limit*limit {
			return
		}
	}
	s.lastReport[i] = p
	s.reported[i] = true
	s.Nav.ReportPosition(id, p)
}

// --- Controls ---

// Select focuses a body at its live position, as a click on it would
func (s *Simulation) Select(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	p := s.positions[i]
	if !s.Nav.Select(id, &p) {
		return false
	}
	// The navigator already has this position
	s.lastReport[i] = p
	s.reported[i] = true
	return true
}

// SelectIndex selects the n-th planet (1-based, orbit order)
func (s *Simulation) SelectIndex(n int) bool {
	// Index 0 is the star
	if n < 1 || n >= len(s.bodies) {
		return false
	}
	return s.Select(s.bodies[n].ID)
}

// CycleSelection moves the selection through the planets by step, wrapping
func (s *Simulation) CycleSelection(step int) bool {
	planets := len(s.bodies) - 1
	cur := 0
	if id, ok := s.Nav.Selected(); ok {
		cur = s.index[id]
	}
	if cur == 0 && step < 0 {
		cur = 1
	}
	next := ((cur-1+step)%planets+planets)%planets + 1
	return s.SelectIndex(next)
}

// CycleHover moves the hover marker through the planets by step, wrapping
func (s *Simulation) CycleHover(step int) {
	planets := len(s.bodies) - 1
	cur := 0
	if id, ok := s.Nav.Hovered(); ok {
		cur = s.index[id]
	}
	if cur == 0 && step < 0 {
		cur = 1
	}
	next := ((cur-1+step)%planets+planets)%planets + 1
	s.Nav.Hover(s.bodies[next].ID)
}

// Hover marks id as hovered, an empty id clears the hover
func (s *Simulation) Hover(id string) {
	if id != "" {
		if _, ok := s.index[id]; !ok {
			return
		}
	}
	s.Nav.Hover(id)
}

// Deselect returns to the overview
func (s *Simulation) Deselect() {
	s.Nav.Deselect()
}

// OrbitCamera swings the view; manual moves cancel any focus animation
func (s *Simulation) OrbitCamera(dAzimuth, dElevation float64) {
	s.Camera.Set(s.Camera.Pose().Orbit(dAzimuth, dElevation))
}

// ZoomCamera scales the eye distance
func (s *Simulation) ZoomCamera(factor float64) {
	s.Camera.Set(s.Camera.Pose().Zoom(factor))
}

// --- Presentation ---

// BodyFrame is the per-body output of a tick
type BodyFrame struct {
	Body            celestial.Body
	Position        vmath.Vec3F
	RotationRadians float64
	Selected        bool
	Hovered         bool
	Tracked         bool
}

// Snapshot is everything the presentation layer reads for one frame
type Snapshot struct {
	Bodies     []BodyFrame
	Camera     camera.Pose
	SelectedID string
	HoveredID  string
	Focused    bool
	Paused     bool
	TimeScale  float64
	Elapsed    float64
	StarYaw    float64
	StarPitch  float64
}

// Snapshot copies the current frame state
func (s *Simulation) Snapshot() Snapshot {
	sel, _ := s.Nav.Selected()
	hov, _ := s.Nav.Hovered()

	frames := make([]BodyFrame, len(s.bodies))
	for i, b := range s.bodies {
		frames[i] = BodyFrame{
			Body:            b,
			Position:        s.positions[i],
			RotationRadians: s.states[i].RotationRadians,
			Selected:        b.ID == sel,
			Hovered:         b.ID == hov,
			Tracked:         s.Nav.Tracked(b.ID),
		}
	}

	return Snapshot{
		Bodies:     frames,
		Camera:     s.Camera.Pose(),
		SelectedID: sel,
		HoveredID:  hov,
		Focused:    s.Nav.Focused(),
		Paused:     s.Time.Paused(),
		TimeScale:  s.Time.TimeScale(),
		Elapsed:    s.Time.Elapsed(),
		StarYaw:    s.starYaw,
		StarPitch:  s.starPitch,
	}
}

// State returns the orbital state of id
func (s *Simulation) State(id string) (OrbitalState, bool) {
	i, ok := s.index[id]
	if !ok {
		return OrbitalState{}, false
	}
	return s.states[i], true
}

// PositionOf returns the world position of id as of the last tick
func (s *Simulation) PositionOf(id string) (vmath.Vec3F, bool) {
	i, ok := s.index[id]
	if !ok {
		return vmath.Vec3F{}, false
	}
	return s.positions[i], true
}
