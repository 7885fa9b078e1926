package genplanet

import (
	"github.com/Flokey82/genplanet/various"
	"github.com/Flokey82/geoquad"
	"github.com/Flokey82/go_gens/vectors"
)

// ClimateSample is the decoded content of one climate grid texel.
type ClimateSample struct {
	Insolation     float64
	Precipitation  float64
	ThermalInertia float64
	Class          TerrainClass
	Coastal        bool
}

// GetHeight returns the compressed elevation at the given direction.
// The result only depends on the generation seed and configuration, so
// any level of detail (and the climate baker) sees the same surface.
func (p *Planet) GetHeight(dir vectors.Vec3) float64 {
	return p.compressHeight(p.evalRawHeight(dir.Normalize()))
}

// GetHeightLatLon returns the compressed elevation at the given
// latitude and longitude in degrees.
func (p *Planet) GetHeightLatLon(lat, lon float64) float64 {
	return p.GetHeight(various.ConvToVec3(various.LatLonToCartesian(lat, lon)))
}

// GetClimate returns the climate texel covering the given direction.
// The second return value is false if the planet was generated without
// a climate grid.
func (p *Planet) GetClimate(dir vectors.Vec3) (ClimateSample, bool) {
	if p.Climate == nil {
		return ClimateSample{}, false
	}
	lat, lon := various.LatLonFromVec3(dir.Normalize(), 1.0)
	return p.Climate.SampleAt(lat, lon), true
}

// GetPrecipitation returns the baked precipitation at the given
// direction, or 0 if no climate grid was baked.
func (p *Planet) GetPrecipitation(dir vectors.Vec3) float64 {
	sample, ok := p.GetClimate(dir)
	if !ok {
		return 0
	}
	return sample.Precipitation
}

// SampleAt returns the decoded climate texel at the given latitude and
// longitude in degrees.
func (g *ClimateGrid) SampleAt(lat, lon float64) ClimateSample {
	x, y := g.TexelAt(lat, lon)
	i := y*g.Width + x
	class, coastal := decodeTerrainMask(g.Mask[i])
	return ClimateSample{
		Insolation:     g.Insolation[i],
		Precipitation:  g.Precipitation[i],
		ThermalInertia: g.ThermalInertia[i],
		Class:          class,
		Coastal:        coastal,
	}
}

// NearestVertex returns the index of the finest mesh vertex closest to
// the given latitude and longitude.
func (p *Planet) NearestVertex(lat, lon float64) (int, bool) {
	res, ok := p.tree.FindNearestNeighbor(geoquad.Point{Lat: lat, Lon: lon})
	if !ok {
		return 0, false
	}
	return res.Data.(int), true
}

// GetMeshHeightLatLon returns the elevation of the rendered surface
// under the given coordinates by interpolating the finest mesh. Unlike
// GetHeightLatLon this reflects the smoothing baked into the mesh, at
// mesh resolution.
func (p *Planet) GetMeshHeightLatLon(lat, lon float64) (float64, bool) {
	v, ok := p.NearestVertex(lat, lon)
	if !ok {
		return 0, false
	}
	return p.Meshes[0].interpolateHeight(lat, various.WrapLon(lon), v), true
}
