package genplanet

import (
	"math"
	"testing"

	"github.com/Flokey82/go_gens/vectors"
)

// uniformClimate returns a planet whose whole climate grid holds the
// given texel values, so suitability rules can be probed in isolation.
func uniformClimate(ins, precip float64, class TerrainClass, coastal bool) *Planet {
	g := &ClimateGrid{Width: 8, Height: 4}
	size := g.Width * g.Height
	g.Insolation = make([]float64, size)
	g.Precipitation = make([]float64, size)
	g.ThermalInertia = make([]float64, size)
	g.Mask = make([]uint8, size)
	for i := 0; i < size; i++ {
		g.Insolation[i] = ins
		g.Precipitation[i] = precip
		g.Mask[i] = encodeTerrainMask(class, coastal)
	}
	return &Planet{Climate: g}
}

func TestSpawnSuitability(t *testing.T) {
	tests := []struct {
		name   string
		planet *Planet
		tag    string
		want   float64
	}{
		{"camel desert", uniformClimate(0.9, 0.05, ClassLowland, false), SpawnCamel, 1},
		{"camel steppe", uniformClimate(0.5, 0.05, ClassLowland, false), SpawnCamel, (0.5 - 0.4) / (0.75 - 0.4)},
		{"camel tundra", uniformClimate(0.1, 0.05, ClassLowland, false), SpawnCamel, 0},
		{"camel at sea", uniformClimate(0.9, 0.05, ClassShallowWater, false), SpawnCamel, 0},
		{"polar bear coast", uniformClimate(0.05, 0.2, ClassShallowWater, true), SpawnPolarBear, 1},
		{"polar bear inland", uniformClimate(0.05, 0.2, ClassLowland, false), SpawnPolarBear, 0.5},
		{"polar bear tropics", uniformClimate(0.9, 0.2, ClassLowland, true), SpawnPolarBear, 0},
		{"polar bear open ocean", uniformClimate(0.05, 0.2, ClassDeepOcean, true), SpawnPolarBear, 0},
		{"crocodile swamp", uniformClimate(0.8, 0.7, ClassLowland, true), SpawnCrocodile, 1},
		{"crocodile inland", uniformClimate(0.8, 0.7, ClassLowland, false), SpawnCrocodile, 0.4},
		{"crocodile mountains", uniformClimate(0.8, 0.7, ClassHighland, true), SpawnCrocodile, 0},
		{"goat peaks", uniformClimate(0.5, 0.3, ClassHighland, false), SpawnMountainGoat, 1},
		{"goat plains", uniformClimate(0.5, 0.3, ClassLowland, false), SpawnMountainGoat, 0},
		{"whale deep water", uniformClimate(0.5, 0.5, ClassDeepOcean, false), SpawnWhale, 1},
		{"whale shelf", uniformClimate(0.5, 0.5, ClassShallowWater, true), SpawnWhale, 0.3},
		{"whale beached", uniformClimate(0.5, 0.5, ClassLowland, true), SpawnWhale, 0},
		{"parrot jungle", uniformClimate(0.8, 0.8, ClassLowland, false), SpawnParrot, 1},
		{"parrot desert", uniformClimate(0.8, 0.1, ClassLowland, false), SpawnParrot, 0},
		{"unknown tag", uniformClimate(0.8, 0.8, ClassLowland, false), "dragon", 0.5},
	}
	for _, tc := range tests {
		if got := tc.planet.GetSpawnSuitabilityLatLon(10, 20, tc.tag); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: suitability %f, want %f", tc.name, got, tc.want)
		}
	}
}

func TestSpawnSuitabilityBakedBands(t *testing.T) {
	p := testPlanet(t)
	g := p.Climate
	if g == nil {
		t.Fatal("test planet has no climate grid")
	}

	// The subtropical dry band of the baked grid holds perfect camel
	// habitat somewhere: hot, dry, and on land.
	found := false
	for y := 0; y < g.Height && !found; y++ {
		if math.Abs(g.latAt(y)) > 35 {
			continue
		}
		for x := 0; x < g.Width; x++ {
			lat, lon := g.TexelCenter(x, y)
			if p.GetSpawnSuitabilityLatLon(lat, lon, SpawnCamel) == 1 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no baked texel scores a perfect camel habitat")
	}

	// The cold high latitudes never do, land or water.
	for y := 0; y < g.Height; y++ {
		if math.Abs(g.latAt(y)) < 75 {
			continue
		}
		for x := 0; x < g.Width; x++ {
			lat, lon := g.TexelCenter(x, y)
			if got := p.GetSpawnSuitabilityLatLon(lat, lon, SpawnCamel); got != 0 {
				t.Fatalf("camel suitability %f at (%f, %f), want 0 in the cold", got, lat, lon)
			}
		}
	}
}

func TestSpawnSuitabilityNoClimate(t *testing.T) {
	p := &Planet{}
	for _, tag := range SpawnTags {
		if got := p.GetSpawnSuitability(vectors.Vec3{X: 1}, tag); got != 0.5 {
			t.Errorf("%s without a climate grid: %f, want the neutral 0.5", tag, got)
		}
	}
}

func TestSpawnTagsScored(t *testing.T) {
	// Every registered tag has a rule, so none of them scores the
	// neutral fallback on a fully hostile texel.
	p := uniformClimate(0.5, 0.5, ClassDeepOcean, false)
	for _, tag := range SpawnTags {
		if tag == SpawnWhale {
			continue
		}
		if got := p.GetSpawnSuitability(vectors.Vec3{X: 1}, tag); got == 0.5 {
			t.Errorf("%s scored the unknown tag fallback", tag)
		}
	}
}

func TestRamp(t *testing.T) {
	if got := ramp(0.5, 0, 1); got != 0.5 {
		t.Errorf("ramp(0.5, 0, 1) = %f", got)
	}
	if got := ramp(-1, 0, 1); got != 0 {
		t.Errorf("ramp below lo = %f", got)
	}
	if got := ramp(2, 0, 1); got != 1 {
		t.Errorf("ramp above hi = %f", got)
	}
	if got := ramp(0.3, 0.3, 0.6); got != 0 {
		t.Errorf("ramp at lo = %f, want 0", got)
	}
	if got := ramp(0.6, 0.3, 0.6); got != 1 {
		t.Errorf("ramp at hi = %f, want 1", got)
	}
	if got := ramp(0.45, 0.3, 0.6); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("ramp midpoint = %f, want 0.5", got)
	}
}
