package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/engine"
)

var numbers = message.NewPrinter(language.English)

const controlsHint = "[1-8] planet  [Tab] next  [h/l] hover  [arrows] orbit  [i/o] zoom  [Space] pause  [+/-] speed  [m] mute  [q] quit"

// drawHUD renders the controls bar on the top row
func drawHUD(buf *RenderBuffer, snap engine.Snapshot, status Status) {
	w, h := buf.Size()
	if h == 0 {
		return
	}
	buf.FillBg(0, 0, w, 1, PanelBg)

	x := buf.WriteString(1, 0, "ORRERY", TextAccent, tcell.AttrBold)

	state := fmt.Sprintf("  %.1fx", snap.TimeScale)
	if snap.Paused {
		state = "  PAUSED"
	}
	x = buf.WriteString(x, 0, state, TextNormal, tcell.AttrNone)

	if status.AudioReady {
		sound := "  sound on"
		if status.Muted {
			sound = "  muted"
		}
		x = buf.WriteString(x, 0, sound, TextDim, tcell.AttrNone)
	}

	x += 3
	if room := w - x - 1; room > 0 {
		buf.WriteString(x, 0, runewidth.Truncate(controlsHint, room, "…"), TextDim, tcell.AttrNone)
	}
}

// drawNavPanel lists the bodies with selection, hover and tracking markers
func drawNavPanel(buf *RenderBuffer, snap engine.Snapshot) {
	w, h := buf.Size()
	width := min(constant.NavPanelWidth, w)
	rows := len(snap.Bodies) + 2
	top := 2
	if h < top+rows || width < 8 {
		return
	}

	buf.FillBg(0, top, width, rows, PanelBg)
	buf.WriteString(1, top, "Bodies", TextDim, tcell.AttrBold)

	for i, f := range snap.Bodies {
		y := top + 1 + i

		marker := "  "
		fg := TextNormal
		switch {
		case f.Selected:
			marker = "> "
			fg = TextAccent
		case f.Hovered:
			marker = "* "
		}

		key := " "
		if i > 0 && i <= 8 {
			key = fmt.Sprintf("%d", i)
		}

		x := buf.WriteString(1, y, marker+key+" ", fg, tcell.AttrNone)
		x = buf.WriteString(x, y, "●", f.Body.RGB(), tcell.AttrNone)
		name := runewidth.Truncate(f.Body.Name, width-x-3, "")
		buf.WriteString(x+1, y, name, fg, tcell.AttrNone)
		if f.Tracked {
			buf.WriteString(width-2, y, "◦", TextDim, tcell.AttrNone)
		}
	}
}

// drawInfoPanel shows the selected body's data on the right edge
func drawInfoPanel(buf *RenderBuffer, snap engine.Snapshot) {
	if snap.SelectedID == "" {
		return
	}
	var body celestial.Body
	found := false
	for _, f := range snap.Bodies {
		if f.Body.ID == snap.SelectedID {
			body, found = f.Body, true
			break
		}
	}
	if !found {
		return
	}

	w, h := buf.Size()
	width := min(constant.InfoPanelWidth, w)
	inner := width - 4
	if inner < 10 {
		return
	}

	lines := InfoLines(body, inner)
	rows := len(lines) + 4
	top := 2
	if h < top+rows {
		rows = h - top
	}
	if rows <= 0 {
		return
	}
	left := w - width
	buf.FillBg(left, top, width, rows, PanelBg)

	buf.WriteString(left+2, top, body.Name, body.Highlight(), tcell.AttrBold)
	for i, line := range lines {
		y := top + 2 + i
		if y >= top+rows-1 {
			break
		}
		buf.WriteString(left+2, y, line, TextNormal, tcell.AttrNone)
	}
	buf.WriteString(left+2, top+rows-1, "[Esc] Return to Solar System", TextDim, tcell.AttrNone)
}

// InfoLines formats the data rows for a body, wrapped to width
func InfoLines(b celestial.Body, width int) []string {
	lines := []string{
		"Type: " + strings.ToUpper(b.Kind.Label()[:1]) + b.Kind.Label()[1:],
		numbers.Sprintf("Diameter: %d km", int64(math.Round(b.DiameterKm))),
	}

	if !b.IsStar() {
		lines = append(lines,
			numbers.Sprintf("Distance from Sun: %.1f million km", b.DistanceFromSunMillionKm),
			numbers.Sprintf("Orbital period: %.1f days", b.OrbitalPeriodDays),
		)
	}

	rot := numbers.Sprintf("Rotation period: %.1f days", math.Abs(b.RotationPeriodDays))
	if b.Retrograde() {
		rot += " (retrograde)"
	}
	lines = append(lines, rot)

	if b.FunFact != "" {
		lines = append(lines, "")
		lines = append(lines, wrap(b.FunFact, width)...)
	}

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if runewidth.StringWidth(l) > width {
			out = append(out, wrap(l, width)...)
			continue
		}
		out = append(out, l)
	}
	return out
}

// wrap breaks text on spaces into lines no wider than width
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && runewidth.StringWidth(cur.String())+1+runewidth.StringWidth(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
