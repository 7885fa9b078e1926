package genplanet

import (
	"fmt"
	"sort"

	"github.com/Flokey82/genbiome"
	"github.com/Flokey82/genplanet/various"
	geojson "github.com/paulmach/go.geojson"
)

// GetGeoJSONPlates returns the plate centers, their drift vectors, and
// the sampled plate boundaries as a GeoJSON feature collection.
func (p *Planet) GetGeoJSONPlates() ([]byte, error) {
	geoJSON := geojson.NewFeatureCollection()
	for i, plate := range p.Plates {
		lat, lon := various.LatLonFromVec3(plate.Pos, 1.0)

		// Add the plate center to the GeoJSON as a feature.
		f := geojson.NewPointFeature([]float64{lon, lat})
		f.SetProperty("id", i)
		f.SetProperty("continental", plate.Continental)
		f.SetProperty("base", various.RoundToDecimals(plate.Base, 3))
		f.SetProperty("drift", various.RoundToDecimals(plate.Drift.Len(), 3))
		geoJSON.AddFeature(f)

		// Add the drift direction as a short line from the center.
		tip := plate.Pos.Add(plate.Drift.Mul(0.2)).Normalize()
		tipLat, tipLon := various.LatLonFromVec3(tip, 1.0)
		lf := geojson.NewLineStringFeature([][]float64{{lon, lat}, {tipLon, tipLat}})
		lf.ID = i
		geoJSON.AddFeature(lf)
	}

	// Sample the plate boundaries on a coarse grid: wherever the nearest
	// plate changes between neighboring cells, note a boundary point for
	// that plate pair.
	const step = 2.0
	boundaries := make(map[[2]int][][]float64)
	for lat := -88.0; lat <= 88.0; lat += step {
		for lon := -180.0; lon < 180.0; lon += step {
			here := p.nearestPlateAt(lat, lon)
			if east := p.nearestPlateAt(lat, lon+step); east != here {
				key := sortedPair(here, east)
				boundaries[key] = append(boundaries[key], []float64{various.WrapLon(lon + step/2), lat})
			}
			if north := p.nearestPlateAt(lat+step, lon); north != here {
				key := sortedPair(here, north)
				boundaries[key] = append(boundaries[key], []float64{lon, lat + step/2})
			}
		}
	}
	keys := make([][2]int, 0, len(boundaries))
	for key := range boundaries {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	for _, key := range keys {
		f := geojson.NewMultiPointFeature(boundaries[key]...)
		f.SetProperty("plates", fmt.Sprintf("%d-%d", key[0], key[1]))
		a, b := p.Plates[key[0]], p.Plates[key[1]]
		f.SetProperty("convergence", various.RoundToDecimals(convergence(a, b), 3))
		geoJSON.AddFeature(f)
	}
	return geoJSON.MarshalJSON()
}

// nearestPlateAt returns the index of the plate closest to the given
// coordinates.
func (p *Planet) nearestPlateAt(lat, lon float64) int {
	i1, _, _, _ := nearestTwoPlates(p.Plates, various.ConvToVec3(various.LatLonToCartesian(lat, lon)))
	return i1
}

func sortedPair(a, b int) [2]int {
	if a > b {
		return [2]int{b, a}
	}
	return [2]int{a, b}
}

// GetGeoJSONSpawns scans the climate grid for texels that suit the given
// spawn tag and returns the best locations as point features.
func (p *Planet) GetGeoJSONSpawns(tag string, maxFeatures int) ([]byte, error) {
	g := p.Climate
	if g == nil {
		return nil, fmt.Errorf("planet %d has no climate grid", p.Seed)
	}
	if maxFeatures <= 0 {
		maxFeatures = 100
	}

	geoJSON := geojson.NewFeatureCollection()
	added := 0
	stride := g.Width / 256
	if stride < 1 {
		stride = 1
	}
	for y := 0; y < g.Height && added < maxFeatures; y += stride {
		for x := 0; x < g.Width && added < maxFeatures; x += stride {
			lat, lon := g.TexelCenter(x, y)
			dir := various.ConvToVec3(various.LatLonToCartesian(lat, lon))
			score := p.GetSpawnSuitability(dir, tag)
			if score < 0.75 {
				continue
			}
			i := y*g.Width + x
			class, _ := decodeTerrainMask(g.Mask[i])

			f := geojson.NewPointFeature([]float64{lon, lat})
			f.SetProperty("tag", tag)
			f.SetProperty("score", various.RoundToDecimals(score, 2))
			f.SetProperty("class", class.String())
			if class == ClassLowland || class == ClassHighland {
				rel := (g.heights[i] - g.seaLevel) / (RawHeightMax - g.seaLevel)
				f.SetProperty("biome", genbiome.WhittakerModBiomeToString(
					getWhittakerModBiome(lat, rel, g.Precipitation[i])))
			}
			geoJSON.AddFeature(f)
			added++
		}
	}
	return geoJSON.MarshalJSON()
}
