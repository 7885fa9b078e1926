package genplanet

import (
	"math"

	"github.com/Flokey82/genplanet/various"
)

// Insolation model tunables. Every latitude dependent factor is non
// increasing toward the poles, so the product is guaranteed to fall off
// monotonically from the equator.
const (
	insolationPolarFloor = 0.22 // fraction of peak flux that still reaches the poles
	insolationCosPower   = 1.2  // sharpness of the cosine falloff
	insolationTropicGain = 0.08 // extra flux inside the tropics
	insolationPolarLat   = 60.0 // latitude where the polar haze penalty starts
	insolationPolarLoss  = 0.15 // flux lost at the pole due to the penalty
)

// Earth's axial tilt in degrees, used to scale the declination swing to
// the configured tilt.
const earthAxialTilt = 23.44

// annualInsolation returns the yearly mean solar flux at the given
// latitude, normalized to the 0.0 to 1.0 range. The cosine falloff is
// boosted inside the tropics (where the sun passes overhead twice a
// year) and penalized above the polar latitude, and eccentric orbits
// lose a fraction of the mean flux.
func annualInsolation(lat float64, cfg *ClimateConfig) float64 {
	latAbs := math.Abs(lat)
	base := insolationPolarFloor +
		(1-insolationPolarFloor)*math.Pow(math.Cos(various.DegToRad(latAbs)), insolationCosPower)

	boost := 1.0
	if cfg.AxialTilt > 0 && latAbs < cfg.AxialTilt {
		boost = 1 + insolationTropicGain*(1-latAbs/cfg.AxialTilt)
	}

	penalty := 1.0
	if latAbs > insolationPolarLat {
		penalty = 1 - insolationPolarLoss*(latAbs-insolationPolarLat)/(90-insolationPolarLat)
	}

	// Eccentric orbits lose a little flux toward the poles, where the
	// longer winter outweighs the closer summer.
	ecc := 1 - 0.5*cfg.Eccentricity*latAbs/90
	ins := base * boost * penalty * ecc * cfg.SunIntensity
	if ins > 1 {
		return 1
	}
	if ins < 0 {
		return 0
	}
	return ins
}

// dailyInsolation returns the solar flux at the given latitude and day of
// the year. The declination shifts the subsolar point between the
// tropics, and the orbit distance term modulates the total flux over the
// year.
func dailyInsolation(lat float64, dayOfYear int, cfg *ClimateConfig) float64 {
	decl := various.RadToDeg(solarDeclination(dayOfYear)) * cfg.AxialTilt / earthAxialTilt
	effLat := various.WrapLat(lat - decl)
	ins := annualInsolation(effLat, cfg) * orbitDistanceFactor(dayOfYear, cfg.Eccentricity)
	if ins > 1 {
		return 1
	}
	return ins
}

// solarDeclination returns the solar declination in radians for the
// given day of the year (the angle between the sun rays and the equator
// plane of an Earth tilted planet).
// See: http://www.fao.org/3/X0490E/x0490e07.htm
func solarDeclination(dayOfYear int) float64 {
	return 0.409 * math.Sin((2.0*math.Pi/365.0)*float64(dayOfYear)-1.39)
}

// orbitDistanceFactor returns the relative flux change caused by the
// varying distance to the sun over an eccentric orbit, scaled from the
// inverse relative Earth-sun distance.
// See: http://www.fao.org/3/X0490E/x0490e07.htm
func orbitDistanceFactor(dayOfYear int, eccentricity float64) float64 {
	if eccentricity <= 0 {
		return 1
	}
	scale := 2 * eccentricity
	return 1 + scale*math.Cos((2.0*math.Pi/365.0)*float64(dayOfYear))
}
