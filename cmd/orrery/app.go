package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/render"
)

// app wires the simulation to a screen, input and sound
type app struct {
	screen   tcell.Screen
	sim      *engine.Simulation
	renderer *render.Renderer
	machine  *input.Machine
	sounds   *audio.SoundManager

	width, height int
}

func newApp(screen tcell.Screen, sim *engine.Simulation, renderer *render.Renderer, sounds *audio.SoundManager) *app {
	w, h := screen.Size()
	return &app{
		screen:   screen,
		sim:      sim,
		renderer: renderer,
		machine:  input.NewMachine(),
		sounds:   sounds,
		width:    w,
		height:   h,
	}
}

// handleEvent processes one terminal event and reports whether to keep running
func (a *app) handleEvent(ev tcell.Event) bool {
	in := a.machine.Process(ev)
	if in == nil {
		return true
	}
	return a.handleIntent(in)
}

// handleIntent applies an intent to the simulation
func (a *app) handleIntent(in *input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentEscape:
		// Escape backs out of a focus first, quits from the overview
		if _, ok := a.sim.Nav.Selected(); !ok {
			return false
		}
		a.sim.Deselect()

	case input.IntentResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()

	case input.IntentTogglePause:
		paused := a.sim.Time.TogglePause()
		log.Printf("paused=%v", paused)

	case input.IntentSpeedUp:
		log.Printf("time scale %.1f", a.sim.Time.StepTimeScale(1))

	case input.IntentSpeedDown:
		log.Printf("time scale %.1f", a.sim.Time.StepTimeScale(-1))

	case input.IntentSelectIndex:
		a.sim.SelectIndex(in.Index)

	case input.IntentSelectNext:
		a.sim.CycleSelection(1)

	case input.IntentSelectPrev:
		a.sim.CycleSelection(-1)

	case input.IntentHoverNext:
		a.sim.CycleHover(1)

	case input.IntentHoverPrev:
		a.sim.CycleHover(-1)

	case input.IntentSelectSun:
		a.sim.Select("sun")

	case input.IntentDeselect:
		a.sim.Deselect()

	case input.IntentToggleMute:
		log.Printf("muted=%v", a.sounds.ToggleMute())

	case input.IntentOrbitLeft:
		a.sim.OrbitCamera(-constant.OrbitStep, 0)

	case input.IntentOrbitRight:
		a.sim.OrbitCamera(constant.OrbitStep, 0)

	case input.IntentOrbitUp:
		a.sim.OrbitCamera(0, constant.OrbitStep)

	case input.IntentOrbitDown:
		a.sim.OrbitCamera(0, -constant.OrbitStep)

	case input.IntentZoomIn:
		a.sim.ZoomCamera(constant.ZoomStep)

	case input.IntentZoomOut:
		a.sim.ZoomCamera(1 / constant.ZoomStep)

	case input.IntentPointerMove:
		id, _ := render.Pick(a.sim.Snapshot(), a.width, a.height, in.X, in.Y)
		a.sim.Hover(id)

	case input.IntentClick:
		if id, ok := render.Pick(a.sim.Snapshot(), a.width, a.height, in.X, in.Y); ok {
			a.sim.Select(id)
		}
	}
	return true
}

// frame advances the simulation by the elapsed wall time and draws it
func (a *app) frame(delta time.Duration) {
	a.sim.Tick(engine.ClampFrameDelta(delta))
	a.renderer.Draw(a.screen, a.sim.Snapshot(), render.Status{
		Muted:      a.sounds.Muted(),
		AudioReady: a.sounds.Initialized(),
	})
}
