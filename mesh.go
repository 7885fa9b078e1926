package genplanet

import (
	"image/color"
	"math"

	"github.com/Flokey82/genplanet/icosphere"
	"github.com/Flokey82/genplanet/various"
	"github.com/Flokey82/geoquad"
	"github.com/Flokey82/go_gens/vectors"
	"github.com/chewxy/math32"
)

// TerrainMesh is one level of detail of the displaced planet surface.
// The position, normal, UV, and color buffers are laid out flat and
// render ready, while heights and latitude/longitude stay in float64 for
// queries and serialization.
type TerrainMesh struct {
	Level     int     // icosphere subdivision level
	Radius    float64 // planet radius the positions are scaled to
	XYZ       []float32
	Normals   []float32
	UV        []float32 // equirectangular texture coordinates
	Colors    []uint8   // RGBA biome colors
	Heights   []float64 // compressed elevation per vertex
	LatLon    [][2]float64
	Triangles []uint32

	vertTris [][]int32 // triangles incident to each vertex
}

// NumVertices returns the number of vertices in the mesh.
func (m *TerrainMesh) NumVertices() int {
	return len(m.XYZ) / 3
}

// NumTriangles returns the number of triangles in the mesh.
func (m *TerrainMesh) NumTriangles() int {
	return len(m.Triangles) / 3
}

// buildTerrainMesh assembles one level of detail from the given
// per-vertex heights (which must match the vertex count of the level).
// The positions are displaced along the vertex normal by the elevation,
// smoothed, and all render buffers are derived from the result.
func (p *Planet) buildTerrainMesh(level int, heights []float64) (*TerrainMesh, error) {
	ico, err := icosphere.New(level, p.Config.Radius)
	if err != nil {
		return nil, err
	}
	numVerts := ico.NumVertices()

	// Displace along the radial direction. The heights are relative to
	// the unit sphere, so a height of 0.1 pushes the vertex out from the
	// sea level sphere by 10 percent of the radius.
	pos := make([]float64, numVerts*3)
	for i := 0; i < numVerts; i++ {
		scale := 1 + heights[i]
		pos[i*3] = ico.XYZ[i*3] * scale
		pos[i*3+1] = ico.XYZ[i*3+1] * scale
		pos[i*3+2] = ico.XYZ[i*3+2] * scale
	}
	smoothPositions(pos, heights, ico.Neighbors(), p.SeaLevel,
		p.Config.SmoothStrength, p.Config.SmoothIterations)

	m := &TerrainMesh{
		Level:   level,
		Radius:  p.Config.Radius,
		XYZ:     make([]float32, numVerts*3),
		UV:      make([]float32, numVerts*2),
		Colors:  make([]uint8, numVerts*4),
		Heights: heights,
		LatLon:  ico.LatLon,
	}
	for i, v := range pos {
		m.XYZ[i] = float32(v)
	}
	m.Triangles = make([]uint32, len(ico.Triangles))
	for i, t := range ico.Triangles {
		m.Triangles[i] = uint32(t)
	}
	m.Normals = calcVertexNormals(m.XYZ, m.Triangles)
	m.vertTris = buildTriangleIncidence(numVerts, m.Triangles)

	for i := 0; i < numVerts; i++ {
		lat, lon := m.LatLon[i][0], m.LatLon[i][1]
		m.UV[i*2] = float32((lon + 180) / 360)
		m.UV[i*2+1] = float32((90 - lat) / 180)

		col := p.vertexColor(heights[i], lat, ico.VertexDir(i))
		m.Colors[i*4] = col.R
		m.Colors[i*4+1] = col.G
		m.Colors[i*4+2] = col.B
		m.Colors[i*4+3] = col.A
	}
	return m, nil
}

// vertexColor returns the biome color baked into the mesh. Water gets a
// depth shaded blue, land a Whittaker biome color from the estimated
// temperature and moisture.
func (p *Planet) vertexColor(h, lat float64, dir vectors.Vec3) color.NRGBA {
	if h < p.SeaLevel {
		depth := (p.SeaLevel - h) / (p.SeaLevel - RawHeightMin)
		return genBlue(1 - 0.7*depth)
	}
	relElev := (h - p.SeaLevel) / (RawHeightMax - p.SeaLevel)
	mois := p.noise.moisture.Eval3Vec(dir, moistureFreq)
	return getWhittakerModBiomeColor(lat, relElev, mois, 0.65+0.35*relElev)
}

// calcVertexNormals accumulates the face normals of all triangles into
// smooth per-vertex normals.
func calcVertexNormals(xyz []float32, tris []uint32) []float32 {
	normals := make([]float32, len(xyz))
	for i := 0; i < len(tris); i += 3 {
		a, b, c := tris[i]*3, tris[i+1]*3, tris[i+2]*3
		ux, uy, uz := xyz[b]-xyz[a], xyz[b+1]-xyz[a+1], xyz[b+2]-xyz[a+2]
		vx, vy, vz := xyz[c]-xyz[a], xyz[c+1]-xyz[a+1], xyz[c+2]-xyz[a+2]
		nx := uy*vz - uz*vy
		ny := uz*vx - ux*vz
		nz := ux*vy - uy*vx
		for _, vi := range [3]uint32{a, b, c} {
			normals[vi] += nx
			normals[vi+1] += ny
			normals[vi+2] += nz
		}
	}
	for i := 0; i < len(normals); i += 3 {
		l := math32.Sqrt(normals[i]*normals[i] + normals[i+1]*normals[i+1] + normals[i+2]*normals[i+2])
		if l > 0 {
			normals[i] /= l
			normals[i+1] /= l
			normals[i+2] /= l
		}
	}
	return normals
}

// buildTriangleIncidence returns for every vertex the list of triangles
// it is a corner of.
func buildTriangleIncidence(numVerts int, tris []uint32) [][]int32 {
	vertTris := make([][]int32, numVerts)
	for i := 0; i < len(tris); i += 3 {
		t := int32(i / 3)
		vertTris[tris[i]] = append(vertTris[tris[i]], t)
		vertTris[tris[i+1]] = append(vertTris[tris[i+1]], t)
		vertTris[tris[i+2]] = append(vertTris[tris[i+2]], t)
	}
	return vertTris
}

// edgeLength returns the distance between two vertices of the mesh.
func (m *TerrainMesh) edgeLength(a, b uint32) float64 {
	dx := float64(m.XYZ[a*3] - m.XYZ[b*3])
	dy := float64(m.XYZ[a*3+1] - m.XYZ[b*3+1])
	dz := float64(m.XYZ[a*3+2] - m.XYZ[b*3+2])
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// LandFraction returns the fraction of the mesh surface above the given
// sea level, weighted by triangle area. A triangle counts as land when
// the majority of its corners do.
func (m *TerrainMesh) LandFraction(seaLevel float64) float64 {
	var landArea, totalArea float64
	for i := 0; i < len(m.Triangles); i += 3 {
		v0, v1, v2 := m.Triangles[i], m.Triangles[i+1], m.Triangles[i+2]
		area := various.HeronsTriArea(
			m.edgeLength(v0, v1),
			m.edgeLength(v1, v2),
			m.edgeLength(v2, v0))
		totalArea += area

		land := 0
		for _, v := range [3]uint32{v0, v1, v2} {
			if m.Heights[v] > seaLevel {
				land++
			}
		}
		if land >= 2 {
			landArea += area
		}
	}
	if totalArea == 0 {
		return 0
	}
	return landArea / totalArea
}

// interpolateHeight returns the mesh height at the given coordinates by
// interpolating within the incident triangle of the given vertex that
// contains the point. Falls back to the vertex height when the point
// lies in none of them (which happens right at the poles, where the
// planar interpolation breaks down).
func (m *TerrainMesh) interpolateHeight(lat, lon float64, v int) float64 {
	pt := [2]float64{lon, lat}
	for _, t := range m.vertTris[v] {
		v0 := m.Triangles[t*3]
		v1 := m.Triangles[t*3+1]
		v2 := m.Triangles[t*3+2]

		var corners [3][2]float64
		for c, cv := range [3]uint32{v0, v1, v2} {
			cLat, cLon := m.LatLon[cv][0], m.LatLon[cv][1]
			// Shift triangles that wrap around the date line.
			if cLon-lon > 180 {
				cLon -= 360
			} else if cLon-lon < -180 {
				cLon += 360
			}
			corners[c] = [2]float64{cLon, cLat}
		}
		if various.IsPointInTriangle(corners[0], corners[1], corners[2], pt) {
			return various.CalcHeightInTriangle(corners[0], corners[1], corners[2], pt,
				m.Heights[v0], m.Heights[v1], m.Heights[v2])
		}
	}
	return m.Heights[v]
}

// newQuadTreeFromLatLon builds a quadtree over the given vertex
// positions for nearest vertex lookups by latitude and longitude.
func newQuadTreeFromLatLon(latLon [][2]float64) *geoquad.QuadTree {
	var points []geoquad.Point
	for i := range latLon {
		ll := latLon[i]
		points = append(points, geoquad.Point{
			Lat:  ll[0],
			Lon:  ll[1],
			Data: i,
		})
	}
	return geoquad.NewQuadTree(points)
}

// genBlue returns a blue color with the given intensity (0.0-1.0).
func genBlue(intensity float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(intensity * 255),
		G: uint8(intensity * 255),
		B: 255,
		A: 255,
	}
}
