package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
// Digits 1-8 are resolved by the Machine, not the table
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyCtrlQ:      IntentQuit,
			tcell.KeyEscape:     IntentEscape,
			tcell.KeyTab:        IntentSelectNext,
			tcell.KeyBacktab:    IntentSelectPrev,
			tcell.KeyBackspace:  IntentDeselect,
			tcell.KeyBackspace2: IntentDeselect,
			tcell.KeyLeft:       IntentOrbitLeft,
			tcell.KeyRight:      IntentOrbitRight,
			tcell.KeyUp:         IntentOrbitUp,
			tcell.KeyDown:       IntentOrbitDown,
			tcell.KeyPgUp:       IntentZoomIn,
			tcell.KeyPgDn:       IntentZoomOut,
		},

		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleMute,
			' ': IntentTogglePause,
			'p': IntentTogglePause,
			'+': IntentSpeedUp,
			'=': IntentSpeedUp,
			'-': IntentSpeedDown,
			'_': IntentSpeedDown,
			'n': IntentSelectNext,
			'N': IntentSelectPrev,
			'l': IntentHoverNext,
			'h': IntentHoverPrev,
			's': IntentSelectSun,
			'0': IntentSelectSun,
			'r': IntentDeselect,
			'k': IntentOrbitUp,
			'j': IntentOrbitDown,
			'i': IntentZoomIn,
			'o': IntentZoomOut,
		},
	}
}
