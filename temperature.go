package genplanet

import (
	"image/color"
	"math"

	"github.com/Flokey82/genbiome"
	"github.com/Flokey82/genplanet/various"
	"github.com/Flokey82/go_gens/gameconstants"
)

const (
	minTemp          = genbiome.MinTemperatureC
	maxTemp          = genbiome.MaxTemperatureC
	rangeTemp        = maxTemp - minTemp
	maxPrecipitation = genbiome.MaxPrecipitationDM
)

// maxAltitudeFactor is the elevation in meters that a relative elevation
// of 1.0 corresponds to when estimating temperature falloff.
const maxAltitudeFactor = gameconstants.EarthMaxElevation

// noise frequency for the moisture estimate baked into mesh colors
const moistureFreq = 2.0

// getMeanAnnualTemp returns the yearly mean temperature at the given
// latitude, mapped into the range that the Whittaker biomes are defined
// for.
// See: http://www-das.uwyo.edu/~geerts/cwx/notes/chap16/geo_clim.html
func getMeanAnnualTemp(lat float64) float64 {
	return math.Sin(various.DegToRad(90-math.Abs(lat)))*rangeTemp + minTemp
}

// getTempFalloffFromAltitude returns the temperature falloff at a given
// altitude in meters above sea level. (approx. 9.8 °C per 1000 m)
func getTempFalloffFromAltitude(height float64) float64 {
	if height < 0 {
		return 0.0
	}
	return gameconstants.EarthElevationTemperatureFalloff * height
}

// getWhittakerModBiome returns the Whittaker biome for the given
// latitude, relative elevation, and moisture (both 0.0-1.0).
func getWhittakerModBiome(latitude, elevation, moisture float64) int {
	return genbiome.GetWhittakerModBiome(
		int(getMeanAnnualTemp(latitude)-getTempFalloffFromAltitude(maxAltitudeFactor*elevation)),
		int(moisture*maxPrecipitation))
}

// getWhittakerModBiomeColor returns the Whittaker biome color for the
// given latitude, relative elevation, and moisture.
func getWhittakerModBiomeColor(latitude, elevation, moisture, intensity float64) color.NRGBA {
	return genbiome.GetWhittakerModBiomeColor(
		int(getMeanAnnualTemp(latitude)-getTempFalloffFromAltitude(maxAltitudeFactor*elevation)),
		int(moisture*maxPrecipitation), intensity)
}
