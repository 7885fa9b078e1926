package various

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

// Dot2 returns the dot product of two vectors.
func Dot2(a, b [2]float64) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Len2 returns the length of the given vector.
func Len2(a [2]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1])
}

// Normalize2 returns the normalized vector of the given vector.
func Normalize2(a [2]float64) [2]float64 {
	l := 1.0 / Len2(a)
	return [2]float64{
		a[0] * l,
		a[1] * l,
	}
}

// SetMagnitude2 returns the vector scaled to the given magnitude.
func SetMagnitude2(v [2]float64, mag float64) [2]float64 {
	oldMag := math.Sqrt(v[0]*v[0] + v[1]*v[1])
	if oldMag == 0 {
		return v
	}
	return [2]float64{v[0] * mag / oldMag, v[1] * mag / oldMag}
}

// Rotate2 returns the rotated vector of the given vector.
func Rotate2(v [2]float64, angle float64) [2]float64 {
	sin := math.Sin(angle)
	cos := math.Cos(angle)
	return [2]float64{
		v[0]*cos - v[1]*sin,
		v[0]*sin + v[1]*cos,
	}
}

// ConvToVec3 converts a float slice containing 3 values into a vectors.Vec3.
func ConvToVec3(xyz []float64) vectors.Vec3 {
	return vectors.Vec3{
		X: xyz[0],
		Y: xyz[1],
		Z: xyz[2],
	}
}
