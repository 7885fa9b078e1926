package genplanet

import (
	"math"
	"testing"

	"github.com/Flokey82/genplanet/icosphere"
)

func TestSmoothWeights(t *testing.T) {
	// A chain of vertices crossing the waterline at 0.02.
	heights := []float64{-0.30, -0.30, -0.10, -0.01, 0.025, 0.03, 0.035, 0.20, 0.40, 0.40}
	neighbors := make([][]int, len(heights))
	for i := range neighbors {
		if i > 0 {
			neighbors[i] = append(neighbors[i], i-1)
		}
		if i < len(heights)-1 {
			neighbors[i] = append(neighbors[i], i+1)
		}
	}
	weights := smoothWeights(heights, neighbors, 0.02)
	want := []float64{
		1.0,                 // deep ocean
		1.0,                 // deep ocean
		weightCoastNeighbor, // next to the water side coast vertex
		0,                   // coast
		0,                   // coast
		weightCoastNeighbor, // next to the land side coast vertex
		weightBeach,
		weightInland,
		weightPeak,
		weightPeak,
	}
	for i := range want {
		if math.Abs(weights[i]-want[i]) > 1e-12 {
			t.Errorf("weight %d (height %.3f) = %f, want %f", i, heights[i], weights[i], want[i])
		}
	}
}

func TestSmoothWeightsOceanDepth(t *testing.T) {
	// Shallow sea floor away from any coast smooths less than the deep floor.
	heights := []float64{-0.145, -0.145, -0.145}
	neighbors := [][]int{{1, 2}, {0, 2}, {0, 1}}
	weights := smoothWeights(heights, neighbors, 0.02)
	want := weightOceanBase + weightOceanDepth*(0.02+0.145)/oceanDepthFull
	for i, w := range weights {
		if math.Abs(w-want) > 1e-12 {
			t.Errorf("weight %d = %f, want %f", i, w, want)
		}
	}
}

func TestSmoothPositions(t *testing.T) {
	ico, err := icosphere.New(2, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	numVerts := ico.NumVertices()
	heights := make([]float64, numVerts)
	for i := range heights {
		heights[i] = 0.3 * math.Sin(float64(i)*1.7)
	}
	pos := make([]float64, numVerts*3)
	for i := 0; i < numVerts; i++ {
		scale := 1 + heights[i]
		pos[i*3] = ico.XYZ[i*3] * scale
		pos[i*3+1] = ico.XYZ[i*3+1] * scale
		pos[i*3+2] = ico.XYZ[i*3+2] * scale
	}
	orig := append([]float64(nil), pos...)

	neighbors := ico.Neighbors()
	smoothPositions(pos, heights, neighbors, 0, 0.5, 4)

	coast := make([]bool, numVerts)
	for i := range coast {
		for _, nb := range neighbors[i] {
			if (heights[nb] >= 0) != (heights[i] >= 0) {
				coast[i] = true
				break
			}
		}
	}
	moved := false
	for i := 0; i < numVerts; i++ {
		r := math.Sqrt(pos[i*3]*pos[i*3] + pos[i*3+1]*pos[i*3+1] + pos[i*3+2]*pos[i*3+2])
		if want := 10 * (1 + heights[i]); math.Abs(r-want) > 1e-9 {
			t.Fatalf("vertex %d radius %f, want %f", i, r, want)
		}
		same := pos[i*3] == orig[i*3] && pos[i*3+1] == orig[i*3+1] && pos[i*3+2] == orig[i*3+2]
		if coast[i] && !same {
			t.Fatalf("coast vertex %d moved", i)
		}
		if !same {
			moved = true
		}
	}
	if !moved {
		t.Error("smoothing did not move any vertex")
	}
}

func TestSmoothPositionsNoop(t *testing.T) {
	pos := []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	heights := []float64{0.1, -0.1, 0.1}
	neighbors := [][]int{{1, 2}, {0, 2}, {0, 1}}
	orig := append([]float64(nil), pos...)

	smoothPositions(pos, heights, neighbors, 0, 0.5, 0)
	smoothPositions(pos, heights, neighbors, 0, 0, 3)
	for i := range pos {
		if pos[i] != orig[i] {
			t.Fatalf("position %d changed without iterations or strength", i)
		}
	}
}
