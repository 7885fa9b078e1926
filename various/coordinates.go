package various

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// LatLonToCartesian converts latitude and longitude to x, y, z coordinates
// on the unit sphere.
// See: https://rbrundritt.wordpress.com/2008/10/14/conversion-between-spherical-and-cartesian-coordinates-systems/
func LatLonToCartesian(latDeg, lonDeg float64) []float64 {
	latRad := (latDeg / 180.0) * math.Pi
	lonRad := (lonDeg / 180.0) * math.Pi
	return []float64{
		math.Cos(latRad) * math.Cos(lonRad),
		math.Cos(latRad) * math.Sin(lonRad),
		math.Sin(latRad),
	}
}

// LatLonFromVec3 converts a vectors.Vec3 to latitude and longitude.
// See: https://rbrundritt.wordpress.com/2008/10/14/conversion-between-spherical-and-cartesian-coordinates-systems/
func LatLonFromVec3(position vectors.Vec3, sphereRadius float64) (float64, float64) {
	// See https://stackoverflow.com/questions/46247499/vector3-to-latitude-longitude
	return RadToDeg(math.Asin(position.Z / sphereRadius)), // theta
		RadToDeg(math.Atan2(position.Y, position.X)) // phi
}

// AddVecToLatLong adds a vector to a latitude and longitude in degrees.
// The vector's x coordinate is modified by the cosine of the latitude to
// account for the fact that the distance between degrees of longitude
// decreases as the latitude increases.
func AddVecToLatLong(lat, lon float64, vec [2]float64) (float64, float64) {
	return lat + vec[1], lon + vec[0]/math.Cos(DegToRad(lat+vec[1]))
}

// WrapLat clamps a latitude to the -90 to 90 degree range.
func WrapLat(latitude float64) float64 {
	if latitude > 90 {
		return 90
	} else if latitude < -90 {
		return -90
	}
	return latitude
}

// WrapLon wraps a longitude around to the -180 to 180 degree range.
func WrapLon(longitude float64) float64 {
	longitude = math.Mod(longitude+180, 360)
	if longitude < 0 {
		longitude += 360
	}
	return longitude - 180
}

// Haversine returns the great arc distance between two lat/long pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLatSin := math.Sin(DegToRad(lat2-lat1) / 2)
	dLonSin := math.Sin(DegToRad(lon2-lon1) / 2)
	a := dLatSin*dLatSin + dLonSin*dLonSin*math.Cos(DegToRad(lat1))*math.Cos(DegToRad(lat2))
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
