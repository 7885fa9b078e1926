package genplanet

import (
	"github.com/Flokey82/genplanet/various"
	"github.com/Flokey82/go_gens/vectors"
)

// Spawn tags with suitability rules. Unknown tags score the neutral 0.5
// everywhere, so content packs can introduce new tags before the rules
// land here.
const (
	SpawnCamel        = "camel"
	SpawnPolarBear    = "polar_bear"
	SpawnCrocodile    = "crocodile"
	SpawnMountainGoat = "mountain_goat"
	SpawnWhale        = "whale"
	SpawnParrot       = "parrot"
)

// SpawnTags lists all tags with suitability rules.
var SpawnTags = []string{
	SpawnCamel,
	SpawnPolarBear,
	SpawnCrocodile,
	SpawnMountainGoat,
	SpawnWhale,
	SpawnParrot,
}

// GetSpawnSuitabilityLatLon scores the spawn tag at the given coordinates.
func (p *Planet) GetSpawnSuitabilityLatLon(lat, lon float64, tag string) float64 {
	return p.GetSpawnSuitability(various.ConvToVec3(various.LatLonToCartesian(lat, lon)), tag)
}

// GetSpawnSuitability scores how well the climate at the given direction
// suits the given spawn tag, from 0 (impossible) to 1 (ideal). Without a
// baked climate grid every tag scores the neutral 0.5.
func (p *Planet) GetSpawnSuitability(dir vectors.Vec3, tag string) float64 {
	c, ok := p.GetClimate(dir)
	if !ok {
		return 0.5
	}
	land := c.Class == ClassLowland || c.Class == ClassHighland
	switch tag {
	case SpawnCamel:
		// Hot dry land, nothing in the cold.
		if !land {
			return 0
		}
		return ramp(c.Insolation, 0.4, 0.75) * ramp(1-c.Precipitation, 0.55, 0.75)
	case SpawnPolarBear:
		// Cold coasts and sea ice.
		if c.Class == ClassDeepOcean {
			return 0
		}
		score := ramp(1-c.Insolation, 0.6, 0.8)
		if !c.Coastal {
			score *= 0.5
		}
		return score
	case SpawnCrocodile:
		// Warm wet shores.
		if c.Class == ClassDeepOcean || c.Class == ClassHighland {
			return 0
		}
		score := ramp(c.Insolation, 0.5, 0.75) * ramp(c.Precipitation, 0.3, 0.6)
		if !c.Coastal {
			score *= 0.4
		}
		return score
	case SpawnMountainGoat:
		if c.Class != ClassHighland {
			return 0
		}
		return ramp(1-c.Insolation, 0.1, 0.4)
	case SpawnWhale:
		switch c.Class {
		case ClassDeepOcean:
			return 1
		case ClassShallowWater:
			return 0.3
		}
		return 0
	case SpawnParrot:
		// Hot rainforest.
		if !land {
			return 0
		}
		return ramp(c.Insolation, 0.5, 0.75) * ramp(c.Precipitation, 0.45, 0.7)
	}
	return 0.5
}

// ramp maps v linearly from 0 at lo to 1 at hi, clamped on both ends.
func ramp(v, lo, hi float64) float64 {
	if v <= lo {
		return 0
	}
	if v >= hi {
		return 1
	}
	return (v - lo) / (hi - lo)
}
