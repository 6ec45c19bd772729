package render

import colorful "github.com/lucasb-eyer/go-colorful"

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

// Blend Operations (0-15)
const (
	opReplace uint8 = 0x00
	opAlpha   uint8 = 0x01
	opAdd     uint8 = 0x02
	opMax     uint8 = 0x03
	opScreen  uint8 = 0x05
)

// Blend Flags
const (
	flagBg uint8 = 0x10 // Apply operation to Background
	flagFg uint8 = 0x20 // Apply operation to Foreground
)

// Pre-defined Blend Modes
const (
	BlendReplace = BlendMode(opReplace | flagBg | flagFg)
	BlendAlpha   = BlendMode(opAlpha | flagBg | flagFg)
	BlendAdd     = BlendMode(opAdd | flagBg | flagFg)
	BlendMax     = BlendMode(opMax | flagBg | flagFg)
	BlendScreen  = BlendMode(opScreen | flagBg | flagFg)

	// Targeted Modes
	BlendFgOnly   = BlendMode(opReplace | flagFg) // Replace Fg, Keep Bg
	BlendAlphaFg  = BlendMode(opAlpha | flagFg)   // Blend Fg, Keep Bg
	BlendScreenBg = BlendMode(opScreen | flagBg)
)

func apply(op uint8, dst, src colorful.Color, alpha float64) colorful.Color {
	switch op {
	case opAlpha:
		return Blend(dst, src, alpha)
	case opAdd:
		return Add(dst, src)
	case opMax:
		return Max(dst, src)
	case opScreen:
		return Screen(dst, Scale(src, alpha))
	}
	return src
}
