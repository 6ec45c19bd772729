package constant

// Scene
const (
	// StarCount is the number of background stars
	StarCount = 400

	// StarFieldRadius is the distance of the star sphere from the origin
	StarFieldRadius = 300.0

	// OrbitSegments is the number of line segments per orbit ring
	OrbitSegments = 64

	// OrbitOpacity, OrbitHoverOpacity and OrbitSelectedOpacity blend ring color into black
	OrbitOpacity         = 0.3
	OrbitHoverOpacity    = 0.6
	OrbitSelectedOpacity = 0.8

	// HighlightFactor brightens selected or hovered bodies
	HighlightFactor = 1.5

	// SunGlowInner and SunGlowOuter are halo radii as multiples of the sun radius
	SunGlowInner = 1.2
	SunGlowOuter = 1.5
)

// Overlay layout
const (
	// HUDRows is the number of rows reserved at the top for the controls bar
	HUDRows = 1

	// NavPanelWidth is the width of the planet navigation list
	NavPanelWidth = 18

	// InfoPanelWidth is the width of the selected-body info panel
	InfoPanelWidth = 40
)
