package noise

import "math"

// Cellular is a seeded 3D cellular (Worley) noise function. Each cell of a
// regular grid holds one feature point, and the noise value is the difference
// between the distances to the two closest feature points (F2-F1). This
// produces the cell-border ridges we use to break up coastlines.
// See: https://en.wikipedia.org/wiki/Worley_noise
type Cellular struct {
	Seed      int64
	Frequency float64
}

// NewCellular returns a new cellular noise function with the given seed and
// frequency (cells per unit distance).
func NewCellular(seed int64, frequency float64) *Cellular {
	return &Cellular{
		Seed:      seed,
		Frequency: frequency,
	}
}

// Eval3 returns the F2-F1 cell distance at the given point, normalized to
// the 0.0 to 1.0 range (0 on cell borders, approaching 1 at cell centers).
func (c *Cellular) Eval3(x, y, z float64) float64 {
	x *= c.Frequency
	y *= c.Frequency
	z *= c.Frequency

	cx := int64(math.Floor(x))
	cy := int64(math.Floor(y))
	cz := int64(math.Floor(z))

	f1 := math.MaxFloat64
	f2 := math.MaxFloat64

	// Check the feature points of the 3x3x3 cell neighborhood.
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				px, py, pz := c.featurePoint(cx+dx, cy+dy, cz+dz)
				distX := px - x
				distY := py - y
				distZ := pz - z
				dist := distX*distX + distY*distY + distZ*distZ
				if dist < f1 {
					f2 = f1
					f1 = dist
				} else if dist < f2 {
					f2 = dist
				}
			}
		}
	}

	res := math.Sqrt(f2) - math.Sqrt(f1)
	if res > 1 {
		res = 1
	}
	return res
}

// featurePoint returns the feature point of the given cell.
func (c *Cellular) featurePoint(cx, cy, cz int64) (x, y, z float64) {
	h := c.hash(cx, cy, cz)
	x = float64(cx) + float64(h&0xffff)/0xffff
	y = float64(cy) + float64((h>>16)&0xffff)/0xffff
	z = float64(cz) + float64((h>>32)&0xffff)/0xffff
	return x, y, z
}

// hash mixes the cell coordinates and the seed into a pseudorandom value
// (splitmix64 finalizer).
func (c *Cellular) hash(cx, cy, cz int64) uint64 {
	h := uint64(c.Seed)
	h ^= uint64(cx) * 0x9e3779b97f4a7c15
	h ^= uint64(cy) * 0xbf58476d1ce4e5b9
	h ^= uint64(cz) * 0x94d049bb133111eb
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}
