// Package genplanet generates seed driven procedural planets: a tectonic
// elevation field sampled onto subdivided icospheres, plus a baked climate
// grid with insolation, precipitation, and spawn data. A generated planet
// is immutable, so all queries are safe for concurrent use.
package genplanet

import (
	"log"
	"math/rand"
	"time"

	"github.com/Flokey82/genplanet/icosphere"
	"github.com/Flokey82/genplanet/various"
	"github.com/Flokey82/geoquad"
)

// Planet is a fully generated planet. Everything in here is computed once
// from the seed and configuration and never mutated afterwards.
type Planet struct {
	Seed     int64
	Config   *Config
	Plates   []*Plate
	Drama    float64        // global relief multiplier rolled per planet
	SeaLevel float64        // effective sea level (nominal or percentile fallback)
	Meshes   []*TerrainMesh // level of detail chain, Meshes[0] is the finest
	Climate  *ClimateGrid   // nil if the config skips the climate bake

	noise *noiseFields
	hypso *hypsoCurve
	tree  *geoquad.QuadTree // nearest vertex lookup on the finest mesh
}

// New generates a planet from the given seed with the default
// configuration.
func New(seed int64) (*Planet, error) {
	return NewFromConfig(seed, NewConfig())
}

// NewFromConfig generates a planet from the given seed and configuration.
func NewFromConfig(seed int64, cfg *Config) (*Planet, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Planet{
		Seed:   seed,
		Config: cfg,
		noise:  newNoiseFields(seed),
	}
	if err := p.generatePlanet(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Planet) generatePlanet() error {
	cfg := p.Config.TerrainConfig

	// Roll the plates and the global relief multiplier. All random draws
	// happen here in a fixed order, everything downstream is pure noise
	// evaluation.
	start := time.Now()
	rng := rand.New(rand.NewSource(p.Seed))
	p.Plates = generatePlates(rng, cfg.NumPlates, cfg.ContinentalRatio)
	p.Drama = rollTerrainDrama(rng)
	log.Println("Done plates in ", time.Since(start).String())

	// Sample the raw elevation at full resolution and calibrate the sea
	// level and the hypsometric curve from it.
	start = time.Now()
	ico, err := icosphere.New(cfg.SubdivisionLevel, cfg.Radius)
	if err != nil {
		return err
	}
	// Not enough land above the nominal sea level drops the sea to the
	// percentile that yields the minimum land ratio. Resampling with the
	// moved waterline shifts the coastal shaping and with it a few
	// vertices across the new shore, so adjust and resample until the
	// ratio holds. Every adjustment ends with a resample, so the final
	// heights and all later height queries share the same sea level.
	p.SeaLevel = cfg.SeaLevel
	raw := p.sampleRawHeights(ico)
	for tries := 0; landRatio(raw, p.SeaLevel) < cfg.MinLandRatio && tries < 4; tries++ {
		p.SeaLevel = heightPercentile(raw, 1-cfg.MinLandRatio)
		raw = p.sampleRawHeights(ico)
	}
	p.hypso = calibrateHypsoCurve(raw, p.SeaLevel)
	for i, h := range raw {
		raw[i] = p.compressHeight(h)
	}
	log.Println("Done elevation in ", time.Since(start).String())

	// Build the level of detail chain. Lower levels reuse a prefix of
	// the full resolution heights since subdivision only ever appends
	// vertices.
	start = time.Now()
	levels := cfg.MeshLevels
	if levels > cfg.SubdivisionLevel+1 {
		levels = cfg.SubdivisionLevel + 1
	}
	p.Meshes = make([]*TerrainMesh, levels)
	for i := 0; i < levels; i++ {
		level := cfg.SubdivisionLevel - i
		heights := make([]float64, icosphere.VerticesAtLevel(level))
		copy(heights, raw)
		mesh, err := p.buildTerrainMesh(level, heights)
		if err != nil {
			return err
		}
		p.Meshes[i] = mesh
	}
	p.tree = newQuadTreeFromLatLon(p.Meshes[0].LatLon)
	log.Println("Done meshes in ", time.Since(start).String())
	log.Println("Land fraction", p.Meshes[0].LandFraction(p.SeaLevel))

	// Bake the climate grid.
	if p.Config.ClimateConfig != nil {
		start = time.Now()
		p.Climate = p.bakeClimate()
		log.Println("Done climate in ", time.Since(start).String())
	}
	return nil
}

// sampleRawHeights evaluates the raw elevation for every vertex of the
// given sphere in parallel.
func (p *Planet) sampleRawHeights(ico *icosphere.Mesh) []float64 {
	heights := make([]float64, ico.NumVertices())
	various.KickOffChunkWorkers(len(heights), func(start, end int) {
		for i := start; i < end; i++ {
			heights[i] = p.evalRawHeight(ico.VertexDir(i))
		}
	})
	return heights
}

// compressHeight applies the calibrated hypsometric compression to a raw
// elevation value. Water depths pass through unchanged.
func (p *Planet) compressHeight(raw float64) float64 {
	if raw <= p.SeaLevel {
		return raw
	}
	return p.SeaLevel + p.hypso.compress(raw-p.SeaLevel)
}
