package genplanet

import (
	"math"

	"github.com/Flokey82/genplanet/various"
)

// ClimateGrid is the baked equirectangular climate of a planet. Each
// texel holds insolation, precipitation, thermal inertia, and a terrain
// mask byte. The grid is immutable once baked.
type ClimateGrid struct {
	Width          int
	Height         int
	Insolation     []float64
	Precipitation  []float64
	ThermalInertia []float64
	Mask           []uint8

	heights  []float64 // elevation sampled per texel during the bake
	seaLevel float64
}

// Precipitation model tunables.
const (
	advectSteps   = 12   // upwind samples gathered per texel
	advectStepDeg = 3.0  // degrees walked per upwind sample
	advectDecay   = 0.82 // moisture contribution decay per step

	cloudBaseRelief = 0.06 // elevation above sea level where orographic rain starts
	orographicGain  = 6.0
	rainShadowGain  = 18.0 // moisture rained out per unit of climb crossed upwind

	evapScale   = 1.0  // ocean evaporation per unit insolation
	reEvapScale = 0.7  // land re-evaporation per unit rain and insolation
	combineMain = 0.75 // weight of the first advection pass
	combineSec  = 0.45 // weight of the re-evaporated second pass

	variationFreq = 3.0
	variationAmp  = 0.04

	hadleyWet     = 1.5 // precipitation boost inside the ITCZ band
	hadleyDry     = 0.6 // suppression under the subtropical ridge
	hadleyWetLat  = 12.0
	hadleyDryLat  = 18.0
	hadleyDryEnd  = 32.0
	hadleyNeutral = 40.0
)

// Thermal inertia tunables. Open water stores far more heat than land,
// and wet lowlands more than dry peaks.
const (
	inertiaOceanBase  = 0.7
	inertiaOceanDepth = 0.25
	inertiaDepthFull  = 0.25 // depth at which ocean inertia maxes out
	inertiaLandBase   = 0.15
	inertiaLandPrecip = 0.25
	inertiaLandElev   = 0.1
	inertiaLandMin    = 0.1
	inertiaLandMax    = 0.45
)

// bakeClimate samples the shared height function onto the climate grid
// and runs the insolation, precipitation, and thermal inertia passes.
func (p *Planet) bakeClimate() *ClimateGrid {
	cfg := p.Config.ClimateConfig
	g := &ClimateGrid{
		Width:    cfg.GridWidth,
		Height:   cfg.GridHeight,
		seaLevel: p.SeaLevel,
	}
	size := g.Width * g.Height
	g.Insolation = make([]float64, size)
	g.Precipitation = make([]float64, size)
	g.ThermalInertia = make([]float64, size)
	g.Mask = make([]uint8, size)
	g.heights = make([]float64, size)

	// Elevation, insolation, and the terrain mask per texel.
	various.KickOffRowWorkers(g.Height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			lat := g.latAt(y)
			ins := annualInsolation(lat, cfg)
			for x := 0; x < g.Width; x++ {
				i := y*g.Width + x
				h := p.GetHeightLatLon(lat, g.lonAt(x))
				g.heights[i] = h
				g.Insolation[i] = ins
				g.Mask[i] = encodeTerrainMask(classifyHeight(h, p.SeaLevel), isCoastal(h, p.SeaLevel))
			}
		}
	})

	// One prevailing wind vector per row.
	winds := make([][2]float64, g.Height)
	for y := range winds {
		winds[y] = globalWindVector(g.latAt(y), cfg.RotationDir)
	}

	g.bakePrecipitation(p, winds)
	g.bakeThermalInertia()
	return g
}

// bakePrecipitation runs the five precipitation passes. Each pass runs
// over the full buffer before the next one starts, so every pass only
// reads completed data.
func (g *ClimateGrid) bakePrecipitation(p *Planet, winds [][2]float64) {
	size := len(g.heights)
	moisture := make([]float64, size)
	precipMain := make([]float64, size)
	moistureSec := make([]float64, size)
	precipSec := make([]float64, size)

	// Pass 1: the ocean evaporates in proportion to the insolation, land
	// contributes no moisture of its own.
	various.KickOffRowWorkers(g.Height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			for x := 0; x < g.Width; x++ {
				i := y*g.Width + x
				if g.heights[i] < g.seaLevel {
					moisture[i] = evapScale * g.Insolation[i]
				}
			}
		}
	})

	// Pass 2: carry the ocean moisture inland along the winds.
	g.advectPass(moisture, precipMain, winds)

	// Pass 3: part of the fallen rain evaporates again over warm land
	// and feeds a secondary moisture field.
	various.KickOffRowWorkers(g.Height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			for x := 0; x < g.Width; x++ {
				i := y*g.Width + x
				if g.heights[i] >= g.seaLevel {
					moistureSec[i] = reEvapScale * precipMain[i] * g.Insolation[i]
				}
			}
		}
	})

	// Pass 4: advect the re-evaporated moisture once more.
	g.advectPass(moistureSec, precipSec, winds)

	// Pass 5: weighted combine, Hadley cell bands, a little coherent
	// variation, clamped to the final range.
	various.KickOffRowWorkers(g.Height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			lat := g.latAt(y)
			hadley := hadleyFactor(lat)
			for x := 0; x < g.Width; x++ {
				i := y*g.Width + x
				dir := various.LatLonToCartesian(lat, g.lonAt(x))
				vn := p.noise.variation.Noise3D(
					dir[0]*variationFreq+13.7,
					dir[1]*variationFreq+13.7,
					dir[2]*variationFreq+13.7)
				pr := (combineMain*precipMain[i]+combineSec*precipSec[i])*hadley + vn*variationAmp
				if pr < 0 {
					pr = 0
				} else if pr > 1 {
					pr = 1
				}
				g.Precipitation[i] = pr
			}
		}
	})
}

// advectPass gathers moisture from upwind of every texel with
// exponential distance decay. Terrain above the cloud base wrings
// moisture out of the flow: rising terrain along the wind adds rain,
// and ridges crossed on the way deplete whatever is carried past them,
// which casts a rain shadow over the lee side.
func (g *ClimateGrid) advectPass(moisture, precip []float64, winds [][2]float64) {
	cloudBase := g.seaLevel + cloudBaseRelief
	various.KickOffRowWorkers(g.Height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			lat0 := g.latAt(y)
			for x := 0; x < g.Width; x++ {
				i := y*g.Width + x
				lat, lon := lat0, g.lonAt(x)
				wind := winds[y]

				var gathered, weightSum float64
				decay := 1.0
				carry := 1.0
				prevH := math.Inf(-1)
				for step := 0; step < advectSteps; step++ {
					// Walk backward against the wind, following the
					// band winds of whatever latitude we end up at.
					lat, lon = various.AddVecToLatLong(lat, lon,
						[2]float64{-wind[0] * advectStepDeg, -wind[1] * advectStepDeg})
					lat = various.WrapLat(lat)
					lon = various.WrapLon(lon)
					decay *= advectDecay
					hStep := math.Max(g.sampleBilinear(g.heights, lat, lon), cloudBase)
					// Moisture from farther upwind rained out climbing
					// the windward side of any ridge between its source
					// and this texel, so it arrives depleted. The climb
					// onto the texel itself is the slope term below, so
					// the first step never depletes.
					if climb := prevH - hStep; climb > 0 {
						carry /= 1 + rainShadowGain*climb
					}
					prevH = hStep
					gathered += decay * carry * g.sampleBilinear(moisture, lat, lon)
					weightSum += decay
					wind = winds[g.rowAt(lat)]
				}
				if weightSum > 0 {
					gathered /= weightSum
				}

				// Terrain gradient along the wind, restricted to the
				// part above the cloud base: rising terrain wrings
				// extra rain out of the arriving moisture, falling
				// terrain starts the rain shadow.
				upLat, upLon := various.AddVecToLatLong(lat0, g.lonAt(x),
					[2]float64{-winds[y][0] * advectStepDeg, -winds[y][1] * advectStepDeg})
				hUp := math.Max(g.sampleBilinear(g.heights, various.WrapLat(upLat), various.WrapLon(upLon)), cloudBase)
				hHere := math.Max(g.heights[i], cloudBase)
				rain := gathered + orographicGain*(hHere-hUp)*gathered
				if rain < 0 {
					rain = 0
				}
				precip[i] = rain
			}
		}
	})
}

// bakeThermalInertia derives the thermal inertia channel from the
// sampled elevation and the finished precipitation.
func (g *ClimateGrid) bakeThermalInertia() {
	various.KickOffRowWorkers(g.Height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			for x := 0; x < g.Width; x++ {
				i := y*g.Width + x
				h := g.heights[i]
				if h < g.seaLevel {
					depth := (g.seaLevel - h) / inertiaDepthFull
					if depth > 1 {
						depth = 1
					}
					g.ThermalInertia[i] = inertiaOceanBase + inertiaOceanDepth*depth
					continue
				}
				rel := (h - g.seaLevel) / (RawHeightMax - g.seaLevel)
				v := inertiaLandBase + inertiaLandPrecip*g.Precipitation[i] - inertiaLandElev*rel
				if v < inertiaLandMin {
					v = inertiaLandMin
				} else if v > inertiaLandMax {
					v = inertiaLandMax
				}
				g.ThermalInertia[i] = v
			}
		}
	})
}

// hadleyFactor returns the latitude band multiplier applied to the
// combined precipitation: rising air in the ITCZ wrings out extra rain,
// the descending branch of the Hadley cell dries the subtropics, and
// everything poleward stays neutral.
func hadleyFactor(lat float64) float64 {
	latAbs := math.Abs(lat)
	switch {
	case latAbs < hadleyWetLat:
		return hadleyWet
	case latAbs < hadleyDryLat:
		t := (latAbs - hadleyWetLat) / (hadleyDryLat - hadleyWetLat)
		return hadleyWet + (hadleyDry-hadleyWet)*t
	case latAbs < hadleyDryEnd:
		return hadleyDry
	case latAbs < hadleyNeutral:
		t := (latAbs - hadleyDryEnd) / (hadleyNeutral - hadleyDryEnd)
		return hadleyDry + (1-hadleyDry)*t
	}
	return 1
}

// latAt returns the latitude of the texel centers of the given row.
func (g *ClimateGrid) latAt(y int) float64 {
	return 90 - (float64(y)+0.5)*180/float64(g.Height)
}

// lonAt returns the longitude of the texel centers of the given column.
func (g *ClimateGrid) lonAt(x int) float64 {
	return (float64(x)+0.5)*360/float64(g.Width) - 180
}

// rowAt returns the row index of the given latitude.
func (g *ClimateGrid) rowAt(lat float64) int {
	y := int(math.Floor((90 - lat) / 180 * float64(g.Height)))
	if y < 0 {
		return 0
	}
	if y >= g.Height {
		return g.Height - 1
	}
	return y
}

// TexelAt returns the texel indices that contain the given coordinates.
// The longitude wraps around the date line, the latitude is clamped to
// the polar rows.
func (g *ClimateGrid) TexelAt(lat, lon float64) (x, y int) {
	x = int(math.Floor((various.WrapLon(lon) + 180) / 360 * float64(g.Width)))
	x = ((x % g.Width) + g.Width) % g.Width
	return x, g.rowAt(various.WrapLat(lat))
}

// TexelCenter returns the latitude and longitude of the center of the
// given texel. It is the exact inverse of TexelAt up to one texel.
func (g *ClimateGrid) TexelCenter(x, y int) (lat, lon float64) {
	return g.latAt(y), g.lonAt(x)
}

// sampleBilinear samples the given grid channel at fractional
// coordinates with bilinear filtering. The longitude axis wraps, the
// latitude axis clamps at the poles.
func (g *ClimateGrid) sampleBilinear(buf []float64, lat, lon float64) float64 {
	fx := (lon+180)/360*float64(g.Width) - 0.5
	fy := (90-lat)/180*float64(g.Height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := x0 + 1
	y1 := y0 + 1
	x0 = ((x0 % g.Width) + g.Width) % g.Width
	x1 = ((x1 % g.Width) + g.Width) % g.Width
	if y0 < 0 {
		y0 = 0
	} else if y0 >= g.Height {
		y0 = g.Height - 1
	}
	if y1 < 0 {
		y1 = 0
	} else if y1 >= g.Height {
		y1 = g.Height - 1
	}

	top := buf[y0*g.Width+x0]*(1-tx) + buf[y0*g.Width+x1]*tx
	bot := buf[y1*g.Width+x0]*(1-tx) + buf[y1*g.Width+x1]*tx
	return top*(1-ty) + bot*ty
}
