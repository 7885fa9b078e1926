package genplanet

import (
	"math"
	"testing"

	"github.com/Flokey82/genplanet/various"
)

func TestAnnualInsolationMonotone(t *testing.T) {
	cfg := NewClimateConfig()
	prev := math.Inf(1)
	for lat := 0.0; lat <= 90; lat += 0.25 {
		ins := annualInsolation(lat, cfg)
		if ins < 0 || ins > 1 {
			t.Fatalf("insolation at %f = %f, out of [0, 1]", lat, ins)
		}
		if ins > prev+1e-12 {
			t.Fatalf("insolation rises toward the pole at %f: %f > %f", lat, ins, prev)
		}
		prev = ins
		if got := annualInsolation(-lat, cfg); got != ins {
			t.Fatalf("insolation asymmetric at latitude %f", lat)
		}
	}
	if polar := annualInsolation(90, cfg); polar <= 0 || polar > 0.25 {
		t.Errorf("polar insolation %f, want (0, 0.25]", polar)
	}
	if eq := annualInsolation(0, cfg); eq < 0.9 {
		t.Errorf("equatorial insolation %f, want at least 0.9", eq)
	}
}

func TestAnnualInsolationSunIntensity(t *testing.T) {
	dim := NewClimateConfig()
	dim.SunIntensity = 0.5
	bright := NewClimateConfig()
	if got, want := annualInsolation(45, dim), annualInsolation(45, bright); got >= want {
		t.Errorf("dim sun %f not below full sun %f", got, want)
	}
}

func TestDailyInsolation(t *testing.T) {
	cfg := NewClimateConfig()
	for day := 0; day < 365; day += 7 {
		for _, lat := range []float64{-80, -45, 0, 45, 80} {
			if ins := dailyInsolation(lat, day, cfg); ins < 0 || ins > 1 {
				t.Fatalf("day %d at %f: %f, out of [0, 1]", day, lat, ins)
			}
		}
	}
	// Northern summer beats northern winter at mid latitudes.
	if s, w := dailyInsolation(60, 172, cfg), dailyInsolation(60, 355, cfg); s <= w {
		t.Errorf("summer flux %f not above winter flux %f", s, w)
	}
}

func TestSolarDeclination(t *testing.T) {
	maxDecl := 0.0
	for day := 0; day < 365; day++ {
		if d := solarDeclination(day); d > maxDecl {
			maxDecl = d
		}
	}
	// The swing peaks at Earth's axial tilt around the June solstice.
	if deg := various.RadToDeg(maxDecl); math.Abs(deg-earthAxialTilt) > 0.5 {
		t.Errorf("peak declination %f degrees, want about %f", deg, earthAxialTilt)
	}
}

func TestOrbitDistanceFactor(t *testing.T) {
	if got := orbitDistanceFactor(100, 0); got != 1 {
		t.Errorf("circular orbit: %f, want 1", got)
	}
	const e = 0.0167
	if got := orbitDistanceFactor(0, e); math.Abs(got-(1+2*e)) > 1e-12 {
		t.Errorf("perihelion factor %f, want %f", got, 1+2*e)
	}
	if got := orbitDistanceFactor(182, e); got >= 1 {
		t.Errorf("aphelion factor %f, want below 1", got)
	}
}
