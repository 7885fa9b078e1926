package genplanet

import (
	"math"

	"github.com/Flokey82/genplanet/various"
)

// Width of one atmospheric circulation cell in degrees latitude. Each
// hemisphere gets three cells (Hadley, mid latitude, polar).
const windCellWidth = 30.0

// Coriolis deflection applied to the surface flow, in degrees. The
// deflection grows slightly with latitude.
const (
	windDeflectBase = 55.0
	windDeflectGain = 20.0
)

// globalWindVector returns the prevailing surface wind at the given
// latitude as a {east, north} direction pair. The meridional flow of the
// three circulation cells alternates between equatorward and poleward,
// and the Coriolis deflection turns it into trade winds, westerlies, and
// polar easterlies. The magnitude follows a sine envelope across each
// cell, so the doldrums and the horse latitudes end up calm.
// See: https://en.wikipedia.org/wiki/Atmospheric_circulation
func globalWindVector(lat, rotationDir float64) [2]float64 {
	latAbs := math.Abs(lat)
	hemi := 1.0
	if lat < 0 {
		hemi = -1
	}
	cell := int(latAbs / windCellWidth)
	if cell > 2 {
		cell = 2
	}
	frac := (latAbs - float64(cell)*windCellWidth) / windCellWidth
	env := math.Sin(math.Pi * frac)

	// Hadley and polar cells flow equatorward at the surface, the mid
	// latitude cell flows poleward.
	cellSign := -1.0
	if cell == 1 {
		cellSign = 1.0
	}
	merid := [2]float64{0, cellSign * hemi * env}

	// Deflect to the right on prograde planets in the northern
	// hemisphere, mirrored for the south and for retrograde rotation.
	deflect := various.DegToRad(windDeflectBase + windDeflectGain*latAbs/90)
	return various.Rotate2(merid, -hemi*rotationDir*deflect)
}
