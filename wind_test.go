package genplanet

import (
	"math"
	"testing"
)

func TestGlobalWindBands(t *testing.T) {
	tests := []struct {
		lat  float64
		east float64 // expected sign of the east component
	}{
		{15, -1},  // northeast trades
		{45, 1},   // westerlies
		{75, -1},  // polar easterlies
		{-15, -1}, // southeast trades
		{-45, 1},
		{-75, -1},
	}
	for _, tc := range tests {
		v := globalWindVector(tc.lat, 1)
		if tc.east*v[0] <= 0 {
			t.Errorf("wind at %.0f = %v, want east component sign %+.0f", tc.lat, v, tc.east)
		}
	}
}

func TestGlobalWindCalmBelts(t *testing.T) {
	// Doldrums, horse latitudes, and the polar front carry no wind.
	for _, lat := range []float64{0, 30, -30, 60, -60, 90} {
		v := globalWindVector(lat, 1)
		if l := math.Hypot(v[0], v[1]); l > 1e-9 {
			t.Errorf("wind at %.0f = %v, want calm", lat, v)
		}
	}
}

func TestGlobalWindRetrograde(t *testing.T) {
	pro := globalWindVector(15, 1)
	retro := globalWindVector(15, -1)
	if math.Abs(pro[0]+retro[0]) > 1e-12 {
		t.Errorf("retrograde rotation should mirror the east component: %f vs %f", pro[0], retro[0])
	}
	if math.Abs(pro[1]-retro[1]) > 1e-12 {
		t.Errorf("retrograde rotation changed the north component: %f vs %f", pro[1], retro[1])
	}
}

func TestGlobalWindMagnitude(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 1.5 {
		v := globalWindVector(lat, 1)
		if l := math.Hypot(v[0], v[1]); l > 1+1e-12 {
			t.Errorf("wind at %f has magnitude %f above 1", lat, l)
		}
	}
}
