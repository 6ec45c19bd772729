// Package celestial holds the static table of bodies drawn by the viewer
package celestial

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/vmath"
)

// Kind classifies a body
type Kind uint8

const (
	KindStar Kind = iota
	KindRocky
	KindGasGiant
	KindIceGiant
)

var kindNames = [...]string{
	KindStar:     "star",
	KindRocky:    "rocky",
	KindGasGiant: "gas-giant",
	KindIceGiant: "ice-giant",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Label is the human form used by the info panel ("gas giant")
func (k Kind) Label() string {
	switch k {
	case KindGasGiant:
		return "gas giant"
	case KindIceGiant:
		return "ice giant"
	}
	return k.String()
}

// Body is one immutable entry of the catalog
type Body struct {
	ID                       string
	Name                     string
	DiameterKm               float64
	DistanceFromSunMillionKm float64
	OrbitalPeriodDays        float64
	RotationPeriodDays       float64 // negative = retrograde
	Color                    string  // #RRGGBB
	Kind                     Kind
	FunFact                  string // empty for the star
}

// IsStar reports whether the body sits at the origin
func (b Body) IsStar() bool {
	return b.Kind == KindStar
}

// Retrograde reports spin opposite to the orbital direction
func (b Body) Retrograde() bool {
	return b.RotationPeriodDays < 0
}

// OrbitRadius is the orbit radius in world units
func (b Body) OrbitRadius() float64 {
	return b.DistanceFromSunMillionKm * constant.DistanceScale
}

// RenderedSize is the drawn radius in world units
// Planets clamp into [MinPlanetSize, MaxPlanetSize]; the star never drops
// below SunBaseSize
func (b Body) RenderedSize() float64 {
	if b.IsStar() {
		return max(b.DiameterKm*constant.SunScale, constant.SunBaseSize)
	}
	return vmath.Clamp(b.DiameterKm*constant.SizeScale, constant.MinPlanetSize, constant.MaxPlanetSize)
}

// RGB parses the body color; malformed entries fall back to white
func (b Body) RGB() colorful.Color {
	c, err := colorful.Hex(b.Color)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return c
}

// Highlight is the body color brightened for selection and hover
func (b Body) Highlight() colorful.Color {
	return Brighten(b.RGB(), constant.HighlightFactor)
}

// Brighten scales each channel by factor and clamps into gamut
func Brighten(c colorful.Color, factor float64) colorful.Color {
	return colorful.Color{R: c.R * factor, G: c.G * factor, B: c.B * factor}.Clamped()
}
