package input

import "github.com/gdamore/tcell/v2"

// Machine turns tcell events into intents
type Machine struct {
	keys *KeyTable

	// Last pointer cell, suppresses duplicate motion events
	pointerX int
	pointerY int
	buttons  tcell.ButtonMask
}

// NewMachine creates a machine with the default key table
func NewMachine() *Machine {
	return NewMachineWithKeys(DefaultKeyTable())
}

// NewMachineWithKeys creates a machine with a custom key table
func NewMachineWithKeys(keys *KeyTable) *Machine {
	return &Machine{
		keys:     keys,
		pointerX: -1,
		pointerY: -1,
	}
}

// Process parses a terminal event and returns an Intent
// Returns nil for unbound keys and redundant mouse motion
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= '1' && r <= '8' {
			return &Intent{Type: IntentSelectIndex, Index: int(r - '0')}
		}
		if t, ok := m.keys.Runes[r]; ok {
			return &Intent{Type: t}
		}
		return nil
	}

	if t, ok := m.keys.SpecialKeys[ev.Key()]; ok {
		return &Intent{Type: t}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	btn := ev.Buttons()
	prev := m.buttons
	m.buttons = btn

	switch {
	case btn&tcell.WheelUp != 0:
		return &Intent{Type: IntentZoomIn, X: x, Y: y}
	case btn&tcell.WheelDown != 0:
		return &Intent{Type: IntentZoomOut, X: x, Y: y}
	case btn&tcell.Button1 != 0 && prev&tcell.Button1 == 0:
		// Press edge only, held button motion is ignored
		m.pointerX, m.pointerY = x, y
		return &Intent{Type: IntentClick, X: x, Y: y}
	case btn == tcell.ButtonNone:
		if x == m.pointerX && y == m.pointerY {
			return nil
		}
		m.pointerX, m.pointerY = x, y
		return &Intent{Type: IntentPointerMove, X: x, Y: y}
	}
	return nil
}
