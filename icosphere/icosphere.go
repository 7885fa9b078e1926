// Package icosphere builds triangulated spheres through recursive midpoint
// subdivision of a regular icosahedron.
package icosphere

import (
	"fmt"
	"math"
	"sort"

	"github.com/Flokey82/genplanet/various"
	"github.com/Flokey82/go_gens/vectors"
)

// MaxLevel is the highest allowed subdivision level. Each level quadruples
// the triangle count (20 * 4^n triangles), so anything beyond this gets
// expensive fast.
const MaxLevel = 8

// Mesh is a subdivided icosahedron projected onto a sphere of the given
// radius. Vertex positions are stored as flat x, y, z triplets.
type Mesh struct {
	XYZ       []float64    // vertex positions (x, y, z per vertex)
	LatLon    [][2]float64 // vertex latitude / longitude in degrees
	Triangles []int        // triangle vertex indices (three per triangle)
	Radius    float64      // sphere radius
	Level     int          // subdivision level

	neighbors [][]int // cached vertex adjacency
}

// VerticesAtLevel returns the number of vertices a mesh has at the given
// subdivision level.
func VerticesAtLevel(level int) int {
	return 10*(1<<(2*level)) + 2
}

// TrianglesAtLevel returns the number of triangles a mesh has at the given
// subdivision level.
func TrianglesAtLevel(level int) int {
	return 20 * (1 << (2 * level))
}

// New builds a sphere mesh at the given subdivision level and radius.
func New(level int, radius float64) (*Mesh, error) {
	if level < 0 || level > MaxLevel {
		return nil, fmt.Errorf("icosphere: subdivision level %d out of range [0, %d]", level, MaxLevel)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("icosphere: radius must be positive, got %f", radius)
	}

	// Golden ratio.
	t := (1.0 + math.Sqrt(5.0)) / 2.0

	// The 12 vertices of a regular icosahedron.
	xyz := []float64{
		-1, t, 0, 1, t, 0, -1, -t, 0, 1, -t, 0,
		0, -1, t, 0, 1, t, 0, -1, -t, 0, 1, -t,
		t, 0, -1, t, 0, 1, -t, 0, -1, -t, 0, 1,
	}

	// The 20 faces, wound so that all normals face outward.
	tris := []int{
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}

	m := &Mesh{
		XYZ:       xyz,
		Triangles: tris,
		Radius:    radius,
		Level:     level,
	}

	// Project the base vertices onto the sphere.
	for v := 0; v < len(m.XYZ)/3; v++ {
		m.projectVertex(v)
	}

	// Subdivide until we reach the requested level.
	for i := 0; i < level; i++ {
		m.subdivide()
	}

	// Cache the lat/lon coordinates of all vertices.
	m.LatLon = make([][2]float64, len(m.XYZ)/3)
	for v := range m.LatLon {
		lat, lon := various.LatLonFromVec3(various.ConvToVec3(m.XYZ[v*3:v*3+3]), m.Radius)
		m.LatLon[v] = [2]float64{lat, lon}
	}

	return m, nil
}

// NumVertices returns the number of vertices in the mesh.
func (m *Mesh) NumVertices() int {
	return len(m.XYZ) / 3
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles) / 3
}

// VertexDir returns the unit direction of the given vertex.
func (m *Mesh) VertexDir(v int) vectors.Vec3 {
	return vectors.Vec3{
		X: m.XYZ[v*3] / m.Radius,
		Y: m.XYZ[v*3+1] / m.Radius,
		Z: m.XYZ[v*3+2] / m.Radius,
	}
}

// projectVertex normalizes the given vertex onto the sphere surface.
func (m *Mesh) projectVertex(v int) {
	x := m.XYZ[v*3]
	y := m.XYZ[v*3+1]
	z := m.XYZ[v*3+2]
	scale := m.Radius / math.Sqrt(x*x+y*y+z*z)
	m.XYZ[v*3] = x * scale
	m.XYZ[v*3+1] = y * scale
	m.XYZ[v*3+2] = z * scale
}

// subdivide splits every triangle into four by inserting the midpoint of
// each edge. The midpoint cache is keyed by the sorted vertex index pair,
// which guarantees that each edge is only ever split once, so triangles
// sharing an edge share the inserted vertex. New vertices are appended
// after the existing ones, so the vertices of a lower level mesh are a
// stable prefix of every higher level mesh built from the same base.
func (m *Mesh) subdivide() {
	midpoints := make(map[[2]int]int)
	newTris := make([]int, 0, len(m.Triangles)*4)

	getMidpoint := func(i1, i2 int) int {
		key := [2]int{i1, i2}
		if i1 > i2 {
			key = [2]int{i2, i1}
		}
		if mid, ok := midpoints[key]; ok {
			return mid
		}

		// Insert the edge midpoint and push it onto the sphere.
		m.XYZ = append(m.XYZ,
			(m.XYZ[i1*3]+m.XYZ[i2*3])/2,
			(m.XYZ[i1*3+1]+m.XYZ[i2*3+1])/2,
			(m.XYZ[i1*3+2]+m.XYZ[i2*3+2])/2)
		mid := len(m.XYZ)/3 - 1
		m.projectVertex(mid)
		midpoints[key] = mid
		return mid
	}

	for i := 0; i < len(m.Triangles); i += 3 {
		v1 := m.Triangles[i]
		v2 := m.Triangles[i+1]
		v3 := m.Triangles[i+2]
		m1 := getMidpoint(v1, v2)
		m2 := getMidpoint(v2, v3)
		m3 := getMidpoint(v3, v1)

		// Same winding as the parent triangle.
		newTris = append(newTris,
			v1, m1, m3,
			v2, m2, m1,
			v3, m3, m2,
			m1, m2, m3)
	}
	m.Triangles = newTris
}

// Neighbors returns for every vertex the list of directly connected
// vertices (via shared triangle edges). The adjacency is built once and
// cached on the mesh.
func (m *Mesh) Neighbors() [][]int {
	if m.neighbors != nil {
		return m.neighbors
	}

	numVerts := m.NumVertices()
	seen := make([]map[int]bool, numVerts)
	for i := range seen {
		seen[i] = make(map[int]bool, 6)
	}
	addEdge := func(a, b int) {
		if !seen[a][b] {
			seen[a][b] = true
		}
		if !seen[b][a] {
			seen[b][a] = true
		}
	}
	for i := 0; i < len(m.Triangles); i += 3 {
		v1 := m.Triangles[i]
		v2 := m.Triangles[i+1]
		v3 := m.Triangles[i+2]
		addEdge(v1, v2)
		addEdge(v2, v3)
		addEdge(v3, v1)
	}

	nbs := make([][]int, numVerts)
	for v := range nbs {
		nb := make([]int, 0, len(seen[v]))
		for n := range seen[v] {
			nb = append(nb, n)
		}
		// Sort for deterministic iteration order.
		sort.Ints(nb)
		nbs[v] = nb
	}
	m.neighbors = nbs
	return nbs
}
