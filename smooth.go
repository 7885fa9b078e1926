package genplanet

import (
	"math"

	"github.com/Flokey82/genplanet/various"
)

// Taubin lambda/mu smoothing factors. The negative mu pass undoes the
// shrinkage of the lambda pass, so repeated smoothing does not deflate
// the mesh. See: https://graphics.stanford.edu/courses/cs468-12-spring/LectureSlides/06_smoothing.pdf
const (
	taubinLambda = 0.5
	taubinMu     = -0.53
)

// Smoothing weights per vertex class.
const (
	weightCoastNeighbor = 0.15
	weightBeach         = 0.25
	weightPeak          = 0.3
	weightInland        = 0.5
	weightOceanBase     = 0.5
	weightOceanDepth    = 0.5 // extra weight at full depth

	beachReliefMax = 0.05 // land relief fraction that counts as beach
	peakReliefMin  = 0.75 // land relief fraction that counts as a peak
	oceanDepthFull = 0.25 // depth at which the ocean weight maxes out
)

// smoothPositions runs Taubin smoothing over the displaced vertex
// positions. Coastline vertices are pinned so the shoreline stays put,
// and each vertex is re-projected onto its original distance from the
// planet center after every pass. That limits the smoothing to the
// tangential direction, which evens out triangle shapes without eating
// away elevation.
func smoothPositions(pos, heights []float64, neighbors [][]int, seaLevel, strength float64, iterations int) {
	if iterations <= 0 || strength <= 0 {
		return
	}
	numVerts := len(pos) / 3

	weights := smoothWeights(heights, neighbors, seaLevel)
	radii := make([]float64, numVerts)
	for i := 0; i < numVerts; i++ {
		weights[i] *= strength
		radii[i] = math.Sqrt(pos[i*3]*pos[i*3] + pos[i*3+1]*pos[i*3+1] + pos[i*3+2]*pos[i*3+2])
	}

	buf := make([]float64, len(pos))
	for it := 0; it < iterations; it++ {
		smoothPass(pos, buf, neighbors, weights, radii, taubinLambda)
		smoothPass(buf, pos, neighbors, weights, radii, taubinMu)
	}
}

// smoothWeights classifies every vertex and assigns its smoothing
// weight. A coastline vertex (any neighbor on the opposite side of sea
// level) is pinned entirely, its direct neighbors move only a little,
// ocean floor smooths more the deeper it lies, and mountain peaks are
// damped so they keep their shape.
func smoothWeights(heights []float64, neighbors [][]int, seaLevel float64) []float64 {
	weights := make([]float64, len(heights))
	coast := make([]bool, len(heights))
	for i, h := range heights {
		land := h >= seaLevel
		for _, nb := range neighbors[i] {
			if (heights[nb] >= seaLevel) != land {
				coast[i] = true
				break
			}
		}
	}
	for i, h := range heights {
		if coast[i] {
			weights[i] = 0
			continue
		}
		nearCoast := false
		for _, nb := range neighbors[i] {
			if coast[nb] {
				nearCoast = true
				break
			}
		}
		if nearCoast {
			weights[i] = weightCoastNeighbor
			continue
		}
		if h < seaLevel {
			depth := (seaLevel - h) / oceanDepthFull
			if depth > 1 {
				depth = 1
			}
			weights[i] = weightOceanBase + weightOceanDepth*depth
			continue
		}
		rel := (h - seaLevel) / (RawHeightMax - seaLevel)
		switch {
		case rel < beachReliefMax:
			weights[i] = weightBeach
		case rel > peakReliefMin:
			weights[i] = weightPeak
		default:
			weights[i] = weightInland
		}
	}
	return weights
}

// smoothPass moves every vertex toward (or for negative factors, away
// from) the average of its neighbors and re-projects it onto its
// original radius.
func smoothPass(src, dst []float64, neighbors [][]int, weights, radii []float64, factor float64) {
	various.KickOffChunkWorkers(len(src)/3, func(start, end int) {
		for i := start; i < end; i++ {
			nbs := neighbors[i]
			f := weights[i] * factor
			if len(nbs) == 0 || f == 0 {
				dst[i*3] = src[i*3]
				dst[i*3+1] = src[i*3+1]
				dst[i*3+2] = src[i*3+2]
				continue
			}
			var ax, ay, az float64
			for _, nb := range nbs {
				ax += src[nb*3]
				ay += src[nb*3+1]
				az += src[nb*3+2]
			}
			inv := 1 / float64(len(nbs))
			ax *= inv
			ay *= inv
			az *= inv

			x := src[i*3] + (ax-src[i*3])*f
			y := src[i*3+1] + (ay-src[i*3+1])*f
			z := src[i*3+2] + (az-src[i*3+2])*f

			// Pin the vertex to its original distance from the center.
			scale := radii[i] / math.Sqrt(x*x+y*y+z*z)
			dst[i*3] = x * scale
			dst[i*3+1] = y * scale
			dst[i*3+2] = z * scale
		}
	})
}
