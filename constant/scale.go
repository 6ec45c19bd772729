package constant

// Visualization scale factors
// Real sizes and distances differ by too many orders of magnitude to be drawn
// together; these factors keep relative proportions while staying viewable
const (
	// SizeScale converts planet diameter (km) to world units
	SizeScale = 0.00002

	// SunScale converts the star diameter (km) to world units
	SunScale = 0.000005

	// DistanceScale converts distance from the sun (million km) to world units
	DistanceScale = 0.3

	// OrbitalSpeedScale speeds orbital motion up relative to real periods
	OrbitalSpeedScale = 0.5

	// RotationSpeedScale speeds axial spin up relative to real periods
	RotationSpeedScale = 5.0

	// SunBaseSize is the minimum rendered radius of the star
	SunBaseSize = 5.0

	// MinPlanetSize and MaxPlanetSize clamp rendered planet radius
	MinPlanetSize = 0.5
	MaxPlanetSize = 4.0

	// MinDistance is the minimum orbit spacing kept between neighbours
	MinDistance = 5.0
)

// Period divisors applied before the speed scales
const (
	OrbitalPeriodDivisor  = 20.0
	RotationPeriodDivisor = 10.0
)

// Ambient motion, independent of the time scale
const (
	// StarDriftRateY and StarDriftRateX rotate the background star field in rad/s
	StarDriftRateY = 0.0005
	StarDriftRateX = 0.0002
)
