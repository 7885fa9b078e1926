package genplanet

import (
	"math"
	"sort"
)

// landRatio returns the fraction of samples at or above the given sea level.
func landRatio(heights []float64, seaLevel float64) float64 {
	if len(heights) == 0 {
		return 0
	}
	var land int
	for _, h := range heights {
		if h >= seaLevel {
			land++
		}
	}
	return float64(land) / float64(len(heights))
}

// heightPercentile returns the height value at the given quantile of the
// sorted sample set (0 is the lowest sample, 1 the highest).
func heightPercentile(heights []float64, q float64) float64 {
	sorted := make([]float64, len(heights))
	copy(sorted, heights)
	sort.Float64s(sorted)
	return sortedPercentile(sorted, q)
}

func sortedPercentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(float64(len(sorted)) * q)
	if idx < 0 {
		idx = 0
	} else if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Target land area fractions for the hypsometric bands, lowlands first.
// They follow Earth's hypsometric curve: about half of all land is
// lowland, and extreme peaks cover a vanishing fraction.
var hypsoBandFractions = [5]float64{0.51, 0.37, 0.11, 0.009, 0.001}

// Band edges as fractions of the maximum land relief.
var hypsoBandEdges = [4]float64{0.15, 0.45, 0.75, 0.92}

// hypsoCurve is a monotone piecewise remap of land relief (height above
// sea level) calibrated so the land area above each band edge matches the
// hypsometric band fractions. It is computed once per planet from the
// highest level of detail and shared by every height query.
type hypsoCurve struct {
	in  [5]float64 // sampled land relief percentiles plus the max relief
	out [5]float64 // band edges in relief units plus the max relief
}

// calibrateHypsoCurve builds the compression curve from the raw height
// samples of the full resolution sphere.
func calibrateHypsoCurve(heights []float64, seaLevel float64) *hypsoCurve {
	maxRelief := RawHeightMax - seaLevel
	land := make([]float64, 0, len(heights))
	for _, h := range heights {
		if h >= seaLevel {
			land = append(land, h-seaLevel)
		}
	}
	sort.Float64s(land)

	c := &hypsoCurve{}
	cum := 0.0
	for i := 0; i < 4; i++ {
		cum += hypsoBandFractions[i]
		c.in[i] = sortedPercentile(land, cum)
		c.out[i] = hypsoBandEdges[i] * maxRelief
	}
	c.in[4] = maxRelief
	c.out[4] = maxRelief

	// Degenerate or empty land distributions collapse to the identity
	// mapping. Otherwise force the input knots to increase strictly so
	// the curve stays monotone.
	if len(land) == 0 || c.in[3] <= 0 {
		for i := range c.in {
			c.in[i] = c.out[i]
		}
		return c
	}
	for i := 1; i < 5; i++ {
		if c.in[i] <= c.in[i-1] {
			c.in[i] = c.in[i-1] + 1e-9
		}
	}
	return c
}

// compress remaps land relief through the calibrated curve. Low
// elevations pass almost unchanged, high elevations get squeezed harder,
// and the extreme tail is compressed logarithmically so a few peaks can
// still stand out without blowing the height range.
func (c *hypsoCurve) compress(relief float64) float64 {
	if relief <= 0 {
		return relief
	}
	lo := 0.0
	loOut := 0.0
	for i := 0; i < 4; i++ {
		if relief <= c.in[i] {
			u := (relief - lo) / (c.in[i] - lo)
			return loOut + (c.out[i]-loOut)*math.Pow(u, segmentExponent(i))
		}
		lo, loOut = c.in[i], c.out[i]
	}
	// Logarithmic tail above the last knot.
	u := (relief - lo) / (c.in[4] - lo)
	if u > 1 {
		u = 1
	}
	return loOut + (c.out[4]-loOut)*math.Log1p(u*9)/math.Log1p(9)
}

// segmentExponent returns the shaping exponent of the given curve
// segment. Low segments are near linear, high segments compress harder.
func segmentExponent(i int) float64 {
	switch i {
	case 0:
		return 1.0
	case 1:
		return 0.92
	case 2:
		return 0.82
	default:
		return 0.7
	}
}
