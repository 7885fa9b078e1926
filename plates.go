package genplanet

import (
	"math"
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"
)

// Plate is a single tectonic plate, defined by a center direction on the
// unit sphere, a tangential drift vector, and a base elevation that is
// positive for continental plates and negative for oceanic ones.
type Plate struct {
	Pos         vectors.Vec3 // unit direction of the plate center
	Drift       vectors.Vec3 // tangential drift (perpendicular to Pos)
	Continental bool
	Base        float64 // base elevation contribution
}

// Collision weights per boundary type. Continent-continent collisions
// pile up the most crust, ocean-ocean the least.
const (
	collisionWeightCC    = 1.0
	collisionWeightMixed = 0.55
	collisionWeightOO    = 0.3
)

// generatePlates rolls the plate field for a planet. All randomness is
// drawn from rng in a fixed order, so the same seed always yields the
// same plates.
func generatePlates(rng *rand.Rand, numPlates int, continentalRatio float64) []*Plate {
	plates := make([]*Plate, 0, numPlates)
	for i := 0; i < numPlates; i++ {
		pos := randUnitVec3(rng)

		// Construct a tangential drift by crossing the center direction
		// with a random vector and rejecting near-parallel picks.
		var drift vectors.Vec3
		for {
			r := randUnitVec3(rng)
			drift = pos.Cross(r)
			if drift.Len() > 0.1 {
				break
			}
		}
		drift = drift.Normalize().Mul(0.4 + 0.6*rng.Float64())

		// Each plate draws its own class, so the continental count only
		// tracks the configured ratio on average.
		continental := rng.Float64() < continentalRatio
		var base float64
		if continental {
			base = 0.06 + 0.22*rng.Float64()
		} else {
			base = -0.26 + 0.14*rng.Float64()
		}
		plates = append(plates, &Plate{
			Pos:         pos,
			Drift:       drift,
			Continental: continental,
			Base:        base,
		})
	}
	return plates
}

// randUnitVec3 returns a uniformly distributed direction on the unit
// sphere. See: https://mathworld.wolfram.com/SpherePointPicking.html
func randUnitVec3(rng *rand.Rand) vectors.Vec3 {
	z := 2*rng.Float64() - 1
	theta := 2 * math.Pi * rng.Float64()
	r := math.Sqrt(1 - z*z)
	return vectors.Vec3{
		X: r * math.Cos(theta),
		Y: r * math.Sin(theta),
		Z: z,
	}
}

// nearestTwoPlates returns the indices of the closest and second closest
// plate for the given unit direction, plus the respective angular
// distance proxies (1 - dot, in [0,2]). The plate count is small, so a
// linear scan beats any spatial index here.
func nearestTwoPlates(plates []*Plate, v vectors.Vec3) (i1, i2 int, d1, d2 float64) {
	i1, i2 = -1, -1
	d1, d2 = math.MaxFloat64, math.MaxFloat64
	for i, p := range plates {
		d := 1 - v.Dot(p.Pos)
		if d < d1 {
			i2, d2 = i1, d1
			i1, d1 = i, d
		} else if d < d2 {
			i2, d2 = i, d
		}
	}
	return i1, i2, d1, d2
}

// convergence returns the signed convergence strength between two plates
// at the boundary between them. Positive values mean the plates drift
// toward each other (uplift), negative values mean they pull apart
// (rifts and trenches). The result is weighted by the boundary type.
func convergence(a, b *Plate) float64 {
	axis := b.Pos.Sub(a.Pos)
	if axis.Len() < 1e-9 {
		return 0
	}
	axis = axis.Normalize()
	relDrift := b.Drift.Sub(a.Drift)
	conv := -relDrift.Dot(axis)

	weight := collisionWeightOO
	if a.Continental && b.Continental {
		weight = collisionWeightCC
	} else if a.Continental || b.Continental {
		weight = collisionWeightMixed
	}
	return conv * weight
}
