package genplanet

import (
	"math"
	"reflect"
	"sync"
	"testing"

	"github.com/Flokey82/genplanet/icosphere"
	"github.com/Flokey82/go_gens/vectors"
)

// testConfig returns a configuration small enough to keep planet
// generation in tests fast.
func testConfig() *Config {
	cfg := NewConfig()
	cfg.SubdivisionLevel = 4
	cfg.MeshLevels = 2
	cfg.GridWidth = 128
	cfg.GridHeight = 64
	return cfg
}

var (
	testPlanetOnce sync.Once
	testPlanetVal  *Planet
	testPlanetErr  error
)

// testPlanet returns a small planet shared by the tests in this package.
// Planets are immutable, so sharing one instance is safe.
func testPlanet(t *testing.T) *Planet {
	t.Helper()
	testPlanetOnce.Do(func() {
		testPlanetVal, testPlanetErr = NewFromConfig(1337, testConfig())
	})
	if testPlanetErr != nil {
		t.Fatalf("generating the shared test planet: %v", testPlanetErr)
	}
	return testPlanetVal
}

func TestNewFromConfigDeterministic(t *testing.T) {
	p := testPlanet(t)
	q, err := NewFromConfig(1337, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if p.SeaLevel != q.SeaLevel {
		t.Errorf("sea levels differ: %f != %f", p.SeaLevel, q.SeaLevel)
	}
	if p.Drama != q.Drama {
		t.Errorf("drama rolls differ: %f != %f", p.Drama, q.Drama)
	}
	if !reflect.DeepEqual(p.Meshes[0].Heights, q.Meshes[0].Heights) {
		t.Error("vertex heights differ between runs")
	}
	if !reflect.DeepEqual(p.Meshes[0].XYZ, q.Meshes[0].XYZ) {
		t.Error("vertex positions differ between runs")
	}
	if !reflect.DeepEqual(p.Climate.Precipitation, q.Climate.Precipitation) {
		t.Error("baked precipitation differs between runs")
	}
}

func TestNewFromConfigSeedVariation(t *testing.T) {
	p := testPlanet(t)
	cfg := testConfig()
	cfg.ClimateConfig = nil
	q, err := NewFromConfig(42, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if q.Climate != nil {
		t.Error("expected no climate grid without a climate config")
	}
	if reflect.DeepEqual(p.Meshes[0].Heights, q.Meshes[0].Heights) {
		t.Error("different seeds produced identical terrain")
	}
}

func TestMinLandRatio(t *testing.T) {
	p := testPlanet(t)
	if got := landRatio(p.Meshes[0].Heights, p.SeaLevel); got < p.Config.MinLandRatio-1e-9 {
		t.Errorf("land ratio %f below the configured minimum %f", got, p.Config.MinLandRatio)
	}
}

func TestSeaLevelFallbackConsistency(t *testing.T) {
	cfg := testConfig()
	cfg.SubdivisionLevel = 3
	cfg.MeshLevels = 1
	cfg.ClimateConfig = nil
	cfg.MinLandRatio = 0.6
	p, err := NewFromConfig(97, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if p.SeaLevel >= cfg.SeaLevel {
		t.Fatalf("sea level %f was not lowered below the nominal %f", p.SeaLevel, cfg.SeaLevel)
	}
	if got := landRatio(p.Meshes[0].Heights, p.SeaLevel); got < cfg.MinLandRatio-0.01 {
		t.Errorf("land ratio %f below the configured minimum %f", got, cfg.MinLandRatio)
	}
	// The meshed heights and the pure height query agree on the adjusted
	// waterline, so climate baking and spawn sampling see the same
	// surface as the meshes.
	ico, err := icosphere.New(cfg.SubdivisionLevel, cfg.Radius)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < ico.NumVertices(); i++ {
		got := p.GetHeight(ico.VertexDir(i))
		if want := p.Meshes[0].Heights[i]; math.Abs(got-want) > 1e-6 {
			t.Fatalf("vertex %d: query height %f, mesh height %f", i, got, want)
		}
	}
}

func TestMeshLevels(t *testing.T) {
	p := testPlanet(t)
	if len(p.Meshes) != 2 {
		t.Fatalf("expected 2 detail levels, got %d", len(p.Meshes))
	}
	for i, m := range p.Meshes {
		level := p.Config.SubdivisionLevel - i
		if m.Level != level {
			t.Errorf("mesh %d has level %d, want %d", i, m.Level, level)
		}
		if m.NumVertices() != icosphere.VerticesAtLevel(level) {
			t.Errorf("level %d has %d vertices, want %d", level, m.NumVertices(), icosphere.VerticesAtLevel(level))
		}
		if m.NumTriangles() != icosphere.TrianglesAtLevel(level) {
			t.Errorf("level %d has %d triangles, want %d", level, m.NumTriangles(), icosphere.TrianglesAtLevel(level))
		}
	}
	// Coarser levels share the heights of the finest mesh, so the detail
	// levels agree on the surface.
	fine, coarse := p.Meshes[0], p.Meshes[1]
	for i, h := range coarse.Heights {
		if h != fine.Heights[i] {
			t.Fatalf("height %d differs between detail levels", i)
		}
	}
}

func TestGetHeightScaleInvariant(t *testing.T) {
	p := testPlanet(t)
	v := vectors.Vec3{X: 0.3, Y: -0.5, Z: 0.81}
	if a, b := p.GetHeight(v), p.GetHeight(v.Mul(4)); a != b {
		t.Errorf("height depends on the direction scale: %f != %f", a, b)
	}
	if h := p.GetHeightLatLon(12.5, -33.1); h < RawHeightMin || h > RawHeightMax {
		t.Errorf("height %f out of the raw range", h)
	}
}

func TestNearestVertex(t *testing.T) {
	p := testPlanet(t)
	m := p.Meshes[0]
	for _, want := range []int{0, 7, 123, 2000, m.NumVertices() - 1} {
		lat, lon := m.LatLon[want][0], m.LatLon[want][1]
		got, ok := p.NearestVertex(lat, lon)
		if !ok || got != want {
			t.Errorf("NearestVertex(%f, %f) = %d, %v, want %d", lat, lon, got, ok, want)
		}
	}
}

func TestGetMeshHeightLatLon(t *testing.T) {
	p := testPlanet(t)
	m := p.Meshes[0]
	lat, lon := m.LatLon[123][0], m.LatLon[123][1]
	h, ok := p.GetMeshHeightLatLon(lat, lon)
	if !ok {
		t.Fatal("no mesh height at a mesh vertex")
	}
	if math.Abs(h-m.Heights[123]) > 1e-6 {
		t.Errorf("mesh height %f, want %f", h, m.Heights[123])
	}
	// The poles fall back to the nearest vertex.
	if h, ok = p.GetMeshHeightLatLon(90, 0); !ok || h < RawHeightMin || h > RawHeightMax {
		t.Errorf("polar mesh height %f, %v", h, ok)
	}
}

func TestPolarClimate(t *testing.T) {
	p := testPlanet(t)
	polar, ok := p.GetClimate(vectors.Vec3{Z: 1})
	if !ok {
		t.Fatal("test planet has no climate grid")
	}
	if polar.Insolation <= 0 || polar.Insolation > 0.25 {
		t.Errorf("polar insolation %f, want (0, 0.25]", polar.Insolation)
	}
	equator, _ := p.GetClimate(vectors.Vec3{X: 1})
	if equator.Insolation <= polar.Insolation {
		t.Errorf("equator %f not above pole %f", equator.Insolation, polar.Insolation)
	}
}

func TestGetPrecipitation(t *testing.T) {
	p := testPlanet(t)
	v := vectors.Vec3{X: 0.2, Y: 0.9, Z: -0.3}
	sample, ok := p.GetClimate(v)
	if !ok {
		t.Fatal("test planet has no climate grid")
	}
	if got := p.GetPrecipitation(v); got != sample.Precipitation {
		t.Errorf("GetPrecipitation = %f, want %f", got, sample.Precipitation)
	}
	if got := (&Planet{}).GetPrecipitation(v); got != 0 {
		t.Errorf("precipitation without a climate grid = %f, want 0", got)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := NewConfig().Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestNewFromConfigInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one plate", func(c *Config) { c.NumPlates = 1 }},
		{"no mesh levels", func(c *Config) { c.MeshLevels = 0 }},
		{"negative radius", func(c *Config) { c.Radius = -1 }},
		{"negative subdivision", func(c *Config) { c.SubdivisionLevel = -1 }},
		{"subdivision too deep", func(c *Config) { c.SubdivisionLevel = icosphere.MaxLevel + 1 }},
		{"bad land ratio", func(c *Config) { c.MinLandRatio = 1.5 }},
		{"bad continental ratio", func(c *Config) { c.ContinentalRatio = -0.1 }},
		{"negative smoothing", func(c *Config) { c.SmoothIterations = -1 }},
		{"zero grid", func(c *Config) { c.GridWidth = 0 }},
		{"bad eccentricity", func(c *Config) { c.Eccentricity = 1 }},
		{"zero sun", func(c *Config) { c.SunIntensity = 0 }},
		{"bad rotation", func(c *Config) { c.RotationDir = 0 }},
		{"missing terrain config", func(c *Config) { c.TerrainConfig = nil }},
	}
	for _, tc := range tests {
		cfg := testConfig()
		tc.mutate(cfg)
		if _, err := NewFromConfig(1, cfg); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
