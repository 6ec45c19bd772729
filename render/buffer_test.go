package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestBufferBounds(t *testing.T) {
	b := NewRenderBuffer(4, 2)
	b.SetWithBg(-1, 0, 'x', White, White)
	b.SetWithBg(4, 0, 'x', White, White)
	b.SetWithBg(0, 2, 'x', White, White)

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if c, _ := b.Get(x, y); c.Rune != 0 {
				t.Errorf("Expected out-of-bounds writes to be dropped, got %q at %d,%d", c.Rune, x, y)
			}
		}
	}
	if _, ok := b.Get(4, 0); ok {
		t.Error("Expected Get out of bounds to fail")
	}
}

func TestBufferClearAfterResize(t *testing.T) {
	b := NewRenderBuffer(3, 3)
	b.SetWithBg(1, 1, 'x', White, White)
	b.Resize(5, 2)

	if w, h := b.Size(); w != 5 || h != 2 {
		t.Fatalf("Expected 5x2, got %dx%d", w, h)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 5; x++ {
			if c, _ := b.Get(x, y); c.Rune != 0 {
				t.Errorf("Expected cleared cell at %d,%d, got %q", x, y, c.Rune)
			}
		}
	}
}

func TestBlendModes(t *testing.T) {
	b := NewRenderBuffer(1, 1)
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}

	b.Set(0, 0, ' ', red, red, BlendReplace, 1, tcell.AttrNone)
	b.Set(0, 0, 0, blue, blue, BlendAlpha, 0.5, tcell.AttrNone)
	c, _ := b.Get(0, 0)
	if c.Bg.R < 0.49 || c.Bg.R > 0.51 || c.Bg.B < 0.49 || c.Bg.B > 0.51 {
		t.Errorf("Expected half blend, got %v", c.Bg)
	}
	if c.Rune != ' ' {
		t.Errorf("Expected zero rune to keep glyph, got %q", c.Rune)
	}

	b.Set(0, 0, 0, Black, White, BlendScreenBg, 1, tcell.AttrNone)
	c, _ = b.Get(0, 0)
	if c.Bg != White {
		t.Errorf("Expected screen with white to saturate, got %v", c.Bg)
	}
	if c.Fg == Black {
		t.Error("Expected background-only mode to keep foreground")
	}
}

func TestColorHelpers(t *testing.T) {
	if got := Add(colorful.Color{R: 0.8}, colorful.Color{R: 0.8}); got.R != 1 {
		t.Errorf("Expected additive clamp, got %v", got.R)
	}
	if got := Max(colorful.Color{R: 0.2, G: 0.9}, colorful.Color{R: 0.7, G: 0.1}); got.R != 0.7 || got.G != 0.9 {
		t.Errorf("Expected per-channel max, got %v", got)
	}
	if got := Blend(Black, White, 0); got != Black {
		t.Errorf("Expected zero alpha to keep dst, got %v", got)
	}
	if got := TcellColor(colorful.Color{R: 1, G: 0.5, B: 0}); got != tcell.NewRGBColor(255, 128, 0) {
		t.Errorf("Expected #FF8000, got %v", got)
	}
}

func TestFlushToScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 2)

	b := NewRenderBuffer(10, 2)
	b.WriteString(2, 1, "hi", White, tcell.AttrNone)
	b.FlushToScreen(screen)

	if r, _, _, _ := screen.GetContent(2, 1); r != 'h' {
		t.Errorf("Expected 'h', got %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("Expected blank cell, got %q", r)
	}
}
