package celestial

import (
	"errors"
	"fmt"
)

// Validation errors
var (
	ErrNoStar        = errors.New("catalog has no star")
	ErrMultipleStars = errors.New("catalog has more than one star")
	ErrStarOffOrigin = errors.New("star must have zero distance and orbital period")
	ErrNegativeValue = errors.New("negative physical value")
	ErrDuplicateID   = errors.New("duplicate body id")
	ErrEmptyID       = errors.New("empty body id")
)

// Sizes and distances are real values; the viewer applies the scale table
var sun = Body{
	ID:                       "sun",
	Name:                     "Sun",
	DiameterKm:               1392700,
	DistanceFromSunMillionKm: 0,
	OrbitalPeriodDays:        0,
	RotationPeriodDays:       27, // at equator
	Color:                    "#FDB813",
	Kind:                     KindStar,
}

var planets = []Body{
	{
		ID:                       "mercury",
		Name:                     "Mercury",
		DiameterKm:               4879,
		DistanceFromSunMillionKm: 57.9,
		OrbitalPeriodDays:        88,
		RotationPeriodDays:       58.6,
		Color:                    "#A9A9A9",
		Kind:                     KindRocky,
		FunFact:                  "Mercury has wrinkles! As the core of the planet cooled and contracted, the surface wrinkled, creating lobe-shaped scarps or cliffs.",
	},
	{
		ID:                       "venus",
		Name:                     "Venus",
		DiameterKm:               12104,
		DistanceFromSunMillionKm: 108.2,
		OrbitalPeriodDays:        224.7,
		RotationPeriodDays:       -243,
		Color:                    "#E6E6FA",
		Kind:                     KindRocky,
		FunFact:                  "Venus rotates in the opposite direction to most planets, meaning the Sun rises in the west and sets in the east.",
	},
	{
		ID:                       "earth",
		Name:                     "Earth",
		DiameterKm:               12756,
		DistanceFromSunMillionKm: 149.6,
		OrbitalPeriodDays:        365.2,
		RotationPeriodDays:       1,
		Color:                    "#6B93D6",
		Kind:                     KindRocky,
		FunFact:                  "Earth is the only planet not named after a god or goddess from Greek or Roman mythology.",
	},
	{
		ID:                       "mars",
		Name:                     "Mars",
		DiameterKm:               6792,
		DistanceFromSunMillionKm: 227.9,
		OrbitalPeriodDays:        687,
		RotationPeriodDays:       1.03,
		Color:                    "#E27B58",
		Kind:                     KindRocky,
		FunFact:                  "Mars has the largest dust storms in our solar system, sometimes covering the entire planet and lasting for months.",
	},
	{
		ID:                       "jupiter",
		Name:                     "Jupiter",
		DiameterKm:               142984,
		DistanceFromSunMillionKm: 778.6,
		OrbitalPeriodDays:        4331,
		RotationPeriodDays:       0.41, // under 10 hours
		Color:                    "#C88B3A",
		Kind:                     KindGasGiant,
		FunFact:                  "Jupiter's Great Red Spot is a storm that has been raging for at least 400 years and is big enough to fit three Earths inside.",
	},
	{
		ID:                       "saturn",
		Name:                     "Saturn",
		DiameterKm:               120536,
		DistanceFromSunMillionKm: 1433.5,
		OrbitalPeriodDays:        10747,
		RotationPeriodDays:       0.45,
		Color:                    "#E3E0C0",
		Kind:                     KindGasGiant,
		FunFact:                  "Saturn's rings are made mostly of ice chunks, with some rocky debris and dust. Some pieces are as small as grains of sand, while others are as big as mountains.",
	},
	{
		ID:                       "uranus",
		Name:                     "Uranus",
		DiameterKm:               51118,
		DistanceFromSunMillionKm: 2872.5,
		OrbitalPeriodDays:        30589,
		RotationPeriodDays:       -0.72,
		Color:                    "#D1E7E7",
		Kind:                     KindIceGiant,
		FunFact:                  "Uranus rotates on its side, with its axis pointing nearly 90 degrees away from the \"up-down\" axis of other planets.",
	},
	{
		ID:                       "neptune",
		Name:                     "Neptune",
		DiameterKm:               49528,
		DistanceFromSunMillionKm: 4495.1,
		OrbitalPeriodDays:        59800,
		RotationPeriodDays:       0.67,
		Color:                    "#5B5DDF",
		Kind:                     KindIceGiant,
		FunFact:                  "Neptune has the strongest winds in the solar system, reaching up to 2,100 kilometers per hour (1,300 mph).",
	},
}

var index map[string]int

func init() {
	index = make(map[string]int, len(planets)+1)
	for i, b := range Catalog() {
		index[b.ID] = i
	}
}

// Catalog returns every body, star first, planets in orbit order
// The returned slice is a copy
func Catalog() []Body {
	out := make([]Body, 0, len(planets)+1)
	out = append(out, sun)
	return append(out, planets...)
}

// Planets returns the planets in orbit order
func Planets() []Body {
	out := make([]Body, len(planets))
	copy(out, planets)
	return out
}

// Sun returns the star
func Sun() Body {
	return sun
}

// Lookup finds a body by id
func Lookup(id string) (Body, bool) {
	i, ok := index[id]
	if !ok {
		return Body{}, false
	}
	if i == 0 {
		return sun, true
	}
	return planets[i-1], true
}

// Validate checks catalog invariants and reports the first violation
func Validate(bodies []Body) error {
	seen := make(map[string]struct{}, len(bodies))
	stars := 0

	for _, b := range bodies {
		if b.ID == "" {
			return fmt.Errorf("%w: %q", ErrEmptyID, b.Name)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, b.ID)
		}
		seen[b.ID] = struct{}{}

		if b.DiameterKm < 0 || b.DistanceFromSunMillionKm < 0 || b.OrbitalPeriodDays < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeValue, b.ID)
		}

		if b.IsStar() {
			stars++
			if b.DistanceFromSunMillionKm != 0 || b.OrbitalPeriodDays != 0 {
				return fmt.Errorf("%w: %s", ErrStarOffOrigin, b.ID)
			}
		}
	}

	switch {
	case stars == 0:
		return ErrNoStar
	case stars > 1:
		return ErrMultipleStars
	}
	return nil
}
