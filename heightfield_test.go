package genplanet

import (
	"math"
	"math/rand"
	"testing"
)

// rawTestPlanet returns a planet with just enough state to evaluate the
// elevation pipeline, skipping the mesh and climate stages.
func rawTestPlanet(seed int64) *Planet {
	rng := rand.New(rand.NewSource(seed))
	return &Planet{
		Seed:     seed,
		noise:    newNoiseFields(seed),
		Plates:   generatePlates(rng, 12, 0.42),
		Drama:    rollTerrainDrama(rng),
		SeaLevel: 0.02,
	}
}

func TestEvalRawHeightRange(t *testing.T) {
	p := rawTestPlanet(1234)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		v := randUnitVec3(rng)
		if h := p.evalRawHeight(v); h < RawHeightMin || h > RawHeightMax {
			t.Fatalf("evalRawHeight(%v) = %f, out of [%f, %f]", v, h, RawHeightMin, RawHeightMax)
		}
	}
}

func TestEvalRawHeightDeterministic(t *testing.T) {
	a := rawTestPlanet(77)
	b := rawTestPlanet(77)
	c := rawTestPlanet(78)
	rng := rand.New(rand.NewSource(2))
	differs := false
	for i := 0; i < 200; i++ {
		v := randUnitVec3(rng)
		ha := a.evalRawHeight(v)
		if hb := b.evalRawHeight(v); ha != hb {
			t.Fatalf("same seed differs at %v: %f != %f", v, ha, hb)
		}
		if ha != c.evalRawHeight(v) {
			differs = true
		}
	}
	if !differs {
		t.Error("different seeds produced identical terrain")
	}
}

func TestRollTerrainDrama(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	subdued := 0
	const rolls = 10000
	for i := 0; i < rolls; i++ {
		d := rollTerrainDrama(rng)
		if d < 0.25 || d >= 2.4 {
			t.Fatalf("drama roll %f out of [0.25, 2.4)", d)
		}
		if d < 0.55 {
			subdued++
		}
	}
	if frac := float64(subdued) / rolls; frac < 0.45 || frac > 0.55 {
		t.Errorf("expected about half of all planets subdued, got %f", frac)
	}
}

func TestSignPow(t *testing.T) {
	tests := []struct{ x, exp, want float64 }{
		{0.5, 2, 0.25},
		{-0.5, 2, -0.25},
		{0, 1.35, 0},
		{1, 1.35, 1},
		{-1, 1.35, -1},
		{0.25, 0.5, 0.5},
	}
	for _, tc := range tests {
		if got := signPow(tc.x, tc.exp); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("signPow(%f, %f) = %f, want %f", tc.x, tc.exp, got, tc.want)
		}
	}
}

func TestPlainsZone(t *testing.T) {
	n := newNoiseFields(9)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		v := randUnitVec3(rng)
		if z := plainsZone(n, v); z < 0.05 || z > 1 {
			t.Fatalf("plainsZone(%v) = %f, out of [0.05, 1]", v, z)
		}
	}
}
