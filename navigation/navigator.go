// Package navigation tracks the selected body and drives camera focus
package navigation

import (
	"log"
	"time"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

// Focuser accepts camera transition requests
type Focuser interface {
	Transition(to camera.Pose, duration time.Duration) uint64
}

// Listener observes selection changes; used for audio cues
type Listener interface {
	Selected(b celestial.Body)
	Deselected()
}

// Navigator is the process-wide selection state
// All methods run on the frame loop; it holds no locks
type Navigator struct {
	clock    camera.Clock
	cam      Focuser
	duration time.Duration
	lookup   func(id string) (celestial.Body, bool)
	listener Listener

	selected string // "" when nothing is selected
	hovered  string
	focused  bool

	// focusIssued marks that a focus transition was already requested for the
	// current selection; later reports for it are debounced
	focusIssued bool

	known    map[string]vmath.Vec3F
	debounce *Debouncer
}

// NewNavigator wires selection to a camera; duration <= 0 makes focus instant
func NewNavigator(clock camera.Clock, cam Focuser, duration time.Duration) *Navigator {
	return &Navigator{
		clock:    clock,
		cam:      cam,
		duration: duration,
		lookup:   celestial.Lookup,
		known:    make(map[string]vmath.Vec3F),
		debounce: NewDebouncer(constant.RefocusDebounce),
	}
}

func (n *Navigator) SetListener(l Listener) {
	n.listener = l
}

// Select focuses on id; position, when supplied, is the body's current world
// position. Reselecting a body whose focus was already requested does nothing.
// Returns false when the call was a no-op
func (n *Navigator) Select(id string, position *vmath.Vec3F) bool {
	body, ok := n.lookup(id)
	if !ok {
		log.Printf("navigation: select ignored, unknown body %q", id)
		return false
	}
	if id == n.selected && n.focusIssued {
		return false
	}

	n.debounce.Cancel()
	n.selected = id
	n.focusIssued = false
	if n.listener != nil {
		n.listener.Selected(body)
	}

	switch {
	case position != nil:
		n.known[id] = *position
		n.focus(body, *position)
	default:
		if p, ok := n.known[id]; ok {
			n.focus(body, p)
		}
		// Otherwise the first ReportPosition for id completes the focus
	}
	return true
}

// ReportPosition records the latest world position of id
// For the selected body the first report after selection focuses at once;
// later reports are coalesced through the debounce window
func (n *Navigator) ReportPosition(id string, position vmath.Vec3F) {
	body, ok := n.lookup(id)
	if !ok {
		return
	}
	n.known[id] = position

	if id != n.selected {
		return
	}
	if !n.focusIssued {
		n.focus(body, position)
		return
	}
	n.debounce.Schedule(n.clock.Now(), func() {
		// Selection may have changed while the task waited
		if n.selected == id {
			n.focus(body, position)
		}
	})
}

// Deselect clears the selection and returns the camera to the overview
func (n *Navigator) Deselect() {
	n.debounce.Cancel()
	had := n.selected != ""
	n.selected = ""
	n.focusIssued = false
	n.focused = false
	n.cam.Transition(camera.Overview(), n.duration)
	if had && n.listener != nil {
		n.listener.Deselected()
	}
}

// Update runs the debounced refocus once its window expires
func (n *Navigator) Update() {
	n.debounce.Poll(n.clock.Now())
}

func (n *Navigator) focus(body celestial.Body, position vmath.Vec3F) {
	n.cam.Transition(camera.FocusOn(position, body.RenderedSize()), n.duration)
	n.focusIssued = true
	n.focused = true
}

// Hover marks id as hovered; "" clears. Unknown ids clear the hover
func (n *Navigator) Hover(id string) {
	if _, ok := n.lookup(id); !ok {
		n.hovered = ""
		return
	}
	n.hovered = id
}

// Selected returns the selected id and whether one is set
func (n *Navigator) Selected() (string, bool) {
	return n.selected, n.selected != ""
}

func (n *Navigator) Hovered() (string, bool) {
	return n.hovered, n.hovered != ""
}

// Focused reports whether the camera is locked onto a body
func (n *Navigator) Focused() bool {
	return n.focused
}

// KnownPosition returns the last reported position of id
func (n *Navigator) KnownPosition(id string) (vmath.Vec3F, bool) {
	p, ok := n.known[id]
	return p, ok
}

// Tracked reports whether id has a known position
func (n *Navigator) Tracked(id string) bool {
	_, ok := n.known[id]
	return ok
}

// RefocusPending reports a debounced refocus waiting to run
func (n *Navigator) RefocusPending() bool {
	return n.debounce.Pending()
}
