package navigation

import (
	"testing"
	"time"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time          { return c.now }
func (c *stepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recordingFocuser captures transition requests
type recordingFocuser struct {
	requests []camera.Pose
}

func (r *recordingFocuser) Transition(to camera.Pose, _ time.Duration) uint64 {
	r.requests = append(r.requests, to)
	return uint64(len(r.requests))
}

func (r *recordingFocuser) last() camera.Pose {
	return r.requests[len(r.requests)-1]
}

type recordingListener struct {
	selected   []string
	deselected int
}

func (l *recordingListener) Selected(b celestial.Body) { l.selected = append(l.selected, b.ID) }
func (l *recordingListener) Deselected()               { l.deselected++ }

func newTestNavigator() (*Navigator, *recordingFocuser, *stepClock) {
	clk := &stepClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	cam := &recordingFocuser{}
	return NewNavigator(clk, cam, constant.TransitionDuration), cam, clk
}

func sizeOf(t *testing.T, id string) float64 {
	t.Helper()
	b, ok := celestial.Lookup(id)
	if !ok {
		t.Fatalf("Expected %s in catalog", id)
	}
	return b.RenderedSize()
}

func TestSelectWithPositionFocusesImmediately(t *testing.T) {
	nav, cam, _ := newTestNavigator()
	pos := vmath.V3F(10, 0, 0)

	if !nav.Select("mars", &pos) {
		t.Fatal("Expected selection to take effect")
	}
	if len(cam.requests) != 1 {
		t.Fatalf("Expected 1 transition, got %d", len(cam.requests))
	}

	want := camera.FocusOn(pos, sizeOf(t, "mars"))
	if got := cam.last(); got != want {
		t.Errorf("Expected focus pose %v, got %v", want, got)
	}
	if !nav.Focused() {
		t.Error("Expected focused after select")
	}
	if id, ok := nav.Selected(); !ok || id != "mars" {
		t.Errorf("Expected mars selected, got %q", id)
	}
}

func TestReselectSameBodyIsNoop(t *testing.T) {
	nav, cam, _ := newTestNavigator()
	pos := vmath.V3F(10, 0, 0)

	nav.Select("mars", &pos)
	if nav.Select("mars", nil) {
		t.Error("Expected reselect to report no-op")
	}
	if len(cam.requests) != 1 {
		t.Errorf("Expected no new transition, got %d total", len(cam.requests))
	}
}

func TestSelectFallsBackToKnownPosition(t *testing.T) {
	nav, cam, _ := newTestNavigator()
	known := vmath.V3F(-3, 0, 30)
	nav.ReportPosition("jupiter", known)

	nav.Select("jupiter", nil)
	if len(cam.requests) != 1 {
		t.Fatalf("Expected focus from tracked position, got %d transitions", len(cam.requests))
	}
	if got := cam.last().Target; got != known {
		t.Errorf("Expected target %v, got %v", known, got)
	}
}

func TestSelectDefersUntilFirstReport(t *testing.T) {
	nav, cam, _ := newTestNavigator()

	nav.Select("saturn", nil)
	if len(cam.requests) != 0 {
		t.Fatalf("Expected deferred focus, got %d transitions", len(cam.requests))
	}

	p := vmath.V3F(100, 0, 400)
	nav.ReportPosition("saturn", p)
	if len(cam.requests) != 1 {
		t.Fatalf("Expected immediate focus on first report, got %d transitions", len(cam.requests))
	}
	if got := cam.last().Target; got != p {
		t.Errorf("Expected target %v, got %v", p, got)
	}
}

func TestReportsAreDebounced(t *testing.T) {
	nav, cam, clk := newTestNavigator()
	start := vmath.V3F(32, 0, 0)
	nav.Select("venus", &start)

	p1 := vmath.V3F(31, 0, 1)
	p2 := vmath.V3F(30, 0, 2)

	nav.ReportPosition("venus", p1)
	clk.Advance(40 * time.Millisecond)
	nav.Update()
	nav.ReportPosition("venus", p2)

	if len(cam.requests) != 1 {
		t.Fatalf("Expected reports to wait for the window, got %d transitions", len(cam.requests))
	}

	clk.Advance(99 * time.Millisecond)
	nav.Update()
	if len(cam.requests) != 1 {
		t.Fatalf("Expected window to restart on the second report, got %d transitions", len(cam.requests))
	}

	clk.Advance(2 * time.Millisecond)
	nav.Update()
	if len(cam.requests) != 2 {
		t.Fatalf("Expected exactly one debounced transition, got %d total", len(cam.requests))
	}
	if got := cam.last().Target; got != p2 {
		t.Errorf("Expected only the latest report %v to apply, got %v", p2, got)
	}

	clk.Advance(time.Second)
	nav.Update()
	if len(cam.requests) != 2 {
		t.Errorf("Expected no further transitions, got %d", len(cam.requests))
	}
}

func TestReportForOtherBodyOnlyTracks(t *testing.T) {
	nav, cam, _ := newTestNavigator()
	pos := vmath.V3F(10, 0, 0)
	nav.Select("mars", &pos)

	other := vmath.V3F(1, 0, 1)
	nav.ReportPosition("earth", other)
	if len(cam.requests) != 1 {
		t.Errorf("Expected no transition for unselected body, got %d", len(cam.requests))
	}
	if got, ok := nav.KnownPosition("earth"); !ok || got != other {
		t.Errorf("Expected earth tracked at %v, got %v", other, got)
	}
	if nav.RefocusPending() {
		t.Error("Expected no refocus pending")
	}
}

func TestDeselectReturnsToOverview(t *testing.T) {
	nav, cam, clk := newTestNavigator()
	pos := vmath.V3F(10, 0, 0)
	nav.Select("mars", &pos)
	nav.ReportPosition("mars", vmath.V3F(9, 0, 1))

	nav.Deselect()
	if got := cam.last(); got != camera.Overview() {
		t.Errorf("Expected overview pose, got %v", got)
	}
	if nav.Focused() {
		t.Error("Expected unfocused after deselect")
	}
	if _, ok := nav.Selected(); ok {
		t.Error("Expected no selection")
	}

	// Pending refocus must not fire after deselect
	n := len(cam.requests)
	clk.Advance(time.Second)
	nav.Update()
	if len(cam.requests) != n {
		t.Errorf("Expected cancelled refocus, got %d new transitions", len(cam.requests)-n)
	}
}

func TestSwitchingSelectionDropsStaleRefocus(t *testing.T) {
	nav, cam, clk := newTestNavigator()
	a := vmath.V3F(10, 0, 0)
	nav.Select("mars", &a)
	nav.ReportPosition("mars", vmath.V3F(11, 0, 0))

	b := vmath.V3F(0, 0, 44)
	nav.Select("earth", &b)
	clk.Advance(time.Second)
	nav.Update()

	if got := cam.last().Target; got != b {
		t.Errorf("Expected camera to stay on earth %v, got %v", b, got)
	}
}

func TestUnknownBodyIgnored(t *testing.T) {
	nav, cam, _ := newTestNavigator()
	p := vmath.V3F(1, 2, 3)

	if nav.Select("pluto", &p) {
		t.Error("Expected unknown body select to be a no-op")
	}
	nav.ReportPosition("pluto", p)
	if nav.Tracked("pluto") {
		t.Error("Expected unknown body not to be tracked")
	}
	if len(cam.requests) != 0 {
		t.Errorf("Expected no transitions, got %d", len(cam.requests))
	}
}

func TestListenerNotified(t *testing.T) {
	nav, _, _ := newTestNavigator()
	l := &recordingListener{}
	nav.SetListener(l)

	p := vmath.V3F(10, 0, 0)
	nav.Select("mars", &p)
	nav.Select("mars", nil)
	nav.Deselect()
	nav.Deselect()

	if len(l.selected) != 1 || l.selected[0] != "mars" {
		t.Errorf("Expected one selection of mars, got %v", l.selected)
	}
	if l.deselected != 1 {
		t.Errorf("Expected one deselection, got %d", l.deselected)
	}
}

func TestHover(t *testing.T) {
	nav, _, _ := newTestNavigator()
	nav.Hover("neptune")
	if id, ok := nav.Hovered(); !ok || id != "neptune" {
		t.Errorf("Expected neptune hovered, got %q", id)
	}
	nav.Hover("")
	if _, ok := nav.Hovered(); ok {
		t.Error("Expected hover cleared")
	}
}

func TestDebouncerSingleSlot(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d := NewDebouncer(100 * time.Millisecond)

	ran := ""
	d.Schedule(now, func() { ran += "a" })
	d.Schedule(now.Add(10*time.Millisecond), func() { ran += "b" })

	if d.Poll(now.Add(100 * time.Millisecond)) {
		t.Error("Expected window to be measured from the latest schedule")
	}
	if !d.Poll(now.Add(110 * time.Millisecond)) {
		t.Fatal("Expected task to run at expiry")
	}
	if ran != "b" {
		t.Errorf("Expected only the latest task to run, got %q", ran)
	}
	if d.Poll(now.Add(time.Hour)) {
		t.Error("Expected task to run once")
	}

	d.Schedule(now, func() { ran += "c" })
	d.Cancel()
	d.Poll(now.Add(time.Hour))
	if ran != "b" {
		t.Errorf("Expected cancelled task not to run, got %q", ran)
	}
}
