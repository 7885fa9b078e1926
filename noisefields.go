package genplanet

import (
	"github.com/Flokey82/genplanet/noise"
	"github.com/aquilax/go-perlin"
)

// noiseFields bundles the independently seeded noise functions that drive
// terrain synthesis and climate variation. Each field gets its own seed
// derived from the planet seed, so the fields are uncorrelated but fully
// reproducible.
type noiseFields struct {
	continent       *noise.Noise // dominant low-frequency land/ocean signal
	continentDetail *noise.Noise // secondary continent shape + hotspot lookup
	ridge           *noise.Noise // folded into one-sided mountain ridges
	fineDetail      *noise.Noise // high-frequency roughness
	midDetail       *noise.Noise // mid-frequency roughness (land only)
	moisture        *noise.Noise // moisture estimate for biome coloring

	// Domain warp offsets, one per axis.
	warpX *noise.Noise
	warpY *noise.Noise
	warpZ *noise.Noise

	coastCell    *noise.Cellular // cellular coastline break-up
	coastErosion *noise.Noise    // coastline erosion + cliff/beach choice

	// Very low frequency zone noise that selects plains regions, and the
	// small local variation added to baked precipitation.
	plains    *perlin.Perlin
	variation *perlin.Perlin
}

// newNoiseFields returns the noise functions for the given planet seed.
func newNoiseFields(seed int64) *noiseFields {
	return &noiseFields{
		continent:       noise.NewNoise(4, 0.55, seed),
		continentDetail: noise.NewNoise(5, 0.55, seed+1),
		ridge:           noise.NewNoise(5, 0.6, seed+2),
		fineDetail:      noise.NewNoise(5, 0.5, seed+3),
		midDetail:       noise.NewNoise(4, 0.5, seed+4),
		moisture:        noise.NewNoise(4, 0.55, seed+5),
		warpX:           noise.NewNoise(3, 0.5, seed+6),
		warpY:           noise.NewNoise(3, 0.5, seed+7),
		warpZ:           noise.NewNoise(3, 0.5, seed+8),
		coastCell:       noise.NewCellular(seed+9, 42.0),
		coastErosion:    noise.NewNoise(4, 0.55, seed+10),
		plains:          perlin.NewPerlin(2.0, 2.5, 3, seed+11),
		variation:       perlin.NewPerlin(2.0, 3.0, 2, seed+12),
	}
}
