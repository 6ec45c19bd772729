package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C, Ctrl+Q
	IntentEscape     // ESC key (deselect, or quit from overview)
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Simulation clock
	IntentTogglePause // Space, p
	IntentSpeedUp     // +, =
	IntentSpeedDown   // -, _

	// Selection
	IntentSelectIndex // 1-8, Index carries the planet number
	IntentSelectNext  // Tab, n
	IntentSelectPrev  // Shift+Tab, N
	IntentHoverNext   // l
	IntentHoverPrev   // h
	IntentSelectSun   // s, 0
	IntentDeselect    // r, Backspace

	// Manual camera
	IntentOrbitLeft  // Left arrow
	IntentOrbitRight // Right arrow
	IntentOrbitUp    // Up arrow, k
	IntentOrbitDown  // Down arrow, j
	IntentZoomIn     // i, PgUp
	IntentZoomOut    // o, PgDn

	// Mouse
	IntentPointerMove // Motion without buttons, X/Y carry the cell
	IntentClick       // Left-click, X/Y carry the cell
)

var intentNames = map[IntentType]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentEscape:      "escape",
	IntentToggleMute:  "toggle_mute",
	IntentResize:      "resize",
	IntentTogglePause: "toggle_pause",
	IntentSpeedUp:     "speed_up",
	IntentSpeedDown:   "speed_down",
	IntentSelectIndex: "select_index",
	IntentSelectNext:  "select_next",
	IntentSelectPrev:  "select_prev",
	IntentHoverNext:   "hover_next",
	IntentHoverPrev:   "hover_prev",
	IntentSelectSun:   "select_sun",
	IntentDeselect:    "deselect",
	IntentOrbitLeft:   "orbit_left",
	IntentOrbitRight:  "orbit_right",
	IntentOrbitUp:     "orbit_up",
	IntentOrbitDown:   "orbit_down",
	IntentZoomIn:      "zoom_in",
	IntentZoomOut:     "zoom_out",
	IntentPointerMove: "pointer_move",
	IntentClick:       "click",
}

func (t IntentType) String() string {
	if s, ok := intentNames[t]; ok {
		return s
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type  IntentType
	Index int // 1-based planet number for IntentSelectIndex
	X     int // Cell column for mouse intents
	Y     int // Cell row for mouse intents
}
