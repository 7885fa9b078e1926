package genplanet

import (
	"math"
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"
)

// Raw elevation range produced by the pipeline, in planet-radius units.
// Negative values are below the nominal sea level of 0.
const (
	RawHeightMin = -0.35
	RawHeightMax = 0.45
)

// Tunables for the elevation pipeline. Gains are in raw elevation units,
// frequencies in cycles per unit sphere.
const (
	plateBoundaryBand = 0.1  // angular closeness (1-dot) band of boundary effects
	upliftGain        = 0.16 // scale of convergence uplift / rifting
	hotspotFreq       = 3.7
	hotspotThreshold  = 0.78
	hotspotGain       = 0.55

	warpFreq = 1.3
	warpAmp  = 0.18

	continentFreq       = 1.1
	continentDetailFreq = 2.4
	continentShaping    = 1.35 // sign-preserved pow exponent
	continentGain       = 0.24
	oceanBias           = -0.03

	coastalFlattenBand = 0.07 // elevation band around sea level that gets flattened

	ridgeFreq    = 3.1
	mountainGain = 0.15
	midFreq      = 6.5
	midGain      = 0.028
	fineFreq     = 14.0
	fineGain     = 0.011

	coastNoiseBand  = 0.028 // elevation band that gets coastline break-up noise
	coastCellAmp    = 0.02
	coastEroAmp     = 0.012
	coastFillFactor = 0.4 // sea fills slower than land erodes

	waveBand       = 0.02 // elevation band above sea level shaped by wave erosion
	beachRise      = 0.004
	beachStrength  = 0.75
	cliffThreshold = 0.8 // noise values above this keep their cliffs
	cliffFreq      = 2.2
)

// rollTerrainDrama picks the global relief multiplier for a planet.
// Half of all planets are subdued, very few are extreme.
func rollTerrainDrama(rng *rand.Rand) float64 {
	r := rng.Float64()
	switch {
	case r < 0.50:
		return 0.25 + 0.3*rng.Float64()
	case r < 0.80:
		return 0.55 + 0.45*rng.Float64()
	case r < 0.95:
		return 1.0 + 0.6*rng.Float64()
	default:
		return 1.6 + 0.8*rng.Float64()
	}
}

// evalRawHeight returns the elevation at the given unit direction before
// hypsometric compression, clamped to the raw height range. The function
// only reads immutable session state, so it is safe to call from any
// number of goroutines.
func (p *Planet) evalRawHeight(v vectors.Vec3) float64 {
	n := p.noise

	// Tectonic base: blend the base elevation of the two closest plates
	// by angular distance and add convergence uplift near the boundary.
	i1, i2, d1, d2 := nearestTwoPlates(p.Plates, v)
	p1, p2 := p.Plates[i1], p.Plates[i2]
	blend := d1 / (d1 + d2)
	elev := p1.Base*(1-blend) + p2.Base*blend

	// boundary is 1 on the boundary itself and fades to 0 once the
	// distance difference exceeds the boundary band.
	boundary := 1 - (d2-d1)/plateBoundaryBand
	if boundary < 0 {
		boundary = 0
	}
	elev += convergence(p1, p2) * upliftGain * boundary * boundary

	// Hotspot volcanism far from any boundary.
	if hot := n.continentDetail.Eval3Vec(v, hotspotFreq) - hotspotThreshold; hot > 0 {
		elev += hot * hotspotGain * (1 - boundary)
	}

	// Domain warp: all continent scale lookups below use a warped copy
	// of the direction so coastlines wander instead of following the
	// noise lattice.
	wv := vectors.Vec3{
		X: v.X + warpAmp*n.warpX.Eval3Signed(v.X*warpFreq, v.Y*warpFreq, v.Z*warpFreq),
		Y: v.Y + warpAmp*n.warpY.Eval3Signed(v.X*warpFreq, v.Y*warpFreq, v.Z*warpFreq),
		Z: v.Z + warpAmp*n.warpZ.Eval3Signed(v.X*warpFreq, v.Y*warpFreq, v.Z*warpFreq),
	}.Normalize()

	// Continent shape on top of the plate base. The sign-preserved pow
	// pushes mid values toward zero, which widens shelves and basins.
	cont := 0.65*n.continent.Eval3Signed(wv.X*continentFreq, wv.Y*continentFreq, wv.Z*continentFreq) +
		0.35*n.continentDetail.Eval3Signed(wv.X*continentDetailFreq, wv.Y*continentDetailFreq, wv.Z*continentDetailFreq)
	cont = signPow(cont, continentShaping)
	elev += cont*continentGain + oceanBias

	// The relief multiplier combines the per-planet drama roll with the
	// plains zone and coastal flattening. Both gates use the pre-relief
	// elevation so the relief terms cannot feed back into their own gate.
	relief := p.Drama
	relief *= plainsZone(n, v)

	depthFactor := math.Abs(elev-p.SeaLevel) / coastalFlattenBand
	if depthFactor > 1 {
		depthFactor = 1
	}
	gate := depthFactor
	if boundary > gate {
		gate = boundary
	}
	relief *= gate

	// Relief: one-sided ridged mountains plus two roughness bands.
	// The mid band only applies on land so the sea floor stays smooth.
	ridge := 1 - math.Abs(n.ridge.Eval3Signed(wv.X*ridgeFreq, wv.Y*ridgeFreq, wv.Z*ridgeFreq))
	elev += ridge * ridge * mountainGain * relief
	elev += n.fineDetail.Eval3Signed(v.X*fineFreq, v.Y*fineFreq, v.Z*fineFreq) * fineGain * relief
	if elev > p.SeaLevel {
		elev += n.midDetail.Eval3Signed(v.X*midFreq, v.Y*midFreq, v.Z*midFreq) * midGain * relief
	}

	// Coastline break-up: within a narrow band around sea level, blend
	// in cellular borders and erosion noise. Land is eroded at full
	// strength while the sea side only fills in at a fraction of it,
	// which keeps bays and inlets from silting up.
	if dist := math.Abs(elev - p.SeaLevel); dist < coastNoiseBand {
		bandFactor := 1 - dist/coastNoiseBand
		cell := n.coastCell.Eval3(v.X, v.Y, v.Z) - 0.5
		ero := n.coastErosion.Eval3Signed(v.X*ridgeFreq, v.Y*ridgeFreq, v.Z*ridgeFreq)
		delta := (cell*coastCellAmp + ero*coastEroAmp) * bandFactor
		if delta > 0 {
			delta *= coastFillFactor
		}
		elev += delta
	}

	// Wave erosion just above the waterline. Most coasts get flattened
	// into beaches, a small fraction keeps its cliffs.
	if elev > p.SeaLevel && elev < p.SeaLevel+waveBand {
		choice := n.coastErosion.Eval3(v.X*cliffFreq, v.Y*cliffFreq, v.Z*cliffFreq)
		if choice < cliffThreshold {
			t := (elev - p.SeaLevel) / waveBand
			target := p.SeaLevel + beachRise
			elev += (target - elev) * beachStrength * (1 - t)
		}
	}

	if elev < RawHeightMin {
		elev = RawHeightMin
	} else if elev > RawHeightMax {
		elev = RawHeightMax
	}
	return elev
}

// plainsZone returns the zone multiplier in [0,1] that suppresses relief
// in plains regions. The zone noise is extremely low frequency, so entire
// regions end up flat while others keep their full relief.
func plainsZone(n *noiseFields, v vectors.Vec3) float64 {
	zone := n.plains.Noise3D(v.X*0.7+7.3, v.Y*0.7+7.3, v.Z*0.7+7.3)*2.0 + 0.55
	if zone > 1 {
		return 1
	}
	if zone < 0.05 {
		return 0.05
	}
	return zone
}

// signPow raises the absolute value of x to the given exponent while
// keeping the sign of x.
func signPow(x, exp float64) float64 {
	if x < 0 {
		return -math.Pow(-x, exp)
	}
	return math.Pow(x, exp)
}
