package genplanet

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Flokey82/genplanet/various"
)

// WriteTo writes the mesh buffers to the given writer.
func (m *TerrainMesh) WriteTo(w io.Writer) error {
	if err := binary.Write(w, byteorder, int64(m.Level)); err != nil {
		return err
	}
	if err := binary.Write(w, byteorder, m.Radius); err != nil {
		return err
	}
	if err := various.WriteFloat32Slice(w, m.XYZ); err != nil {
		return err
	}
	if err := various.WriteFloat32Slice(w, m.Normals); err != nil {
		return err
	}
	if err := various.WriteFloat32Slice(w, m.UV); err != nil {
		return err
	}
	if err := various.WriteByteSlice(w, m.Colors); err != nil {
		return err
	}
	if err := various.WriteFloatSlice(w, m.Heights); err != nil {
		return err
	}

	// Flatten the lat/lon pairs into a single slice.
	latLon := make([]float64, 0, len(m.LatLon)*2)
	for _, ll := range m.LatLon {
		latLon = append(latLon, ll[0], ll[1])
	}
	if err := various.WriteFloatSlice(w, latLon); err != nil {
		return err
	}
	return various.WriteUint32Slice(w, m.Triangles)
}

// ReadTerrainMesh reads a mesh written by WriteTo.
func ReadTerrainMesh(r io.Reader) (*TerrainMesh, error) {
	m := &TerrainMesh{}

	var level int64
	if err := binary.Read(r, byteorder, &level); err != nil {
		return nil, err
	}
	if err := binary.Read(r, byteorder, &m.Radius); err != nil {
		return nil, err
	}
	m.Level = int(level)

	var err error
	if m.XYZ, err = various.ReadFloat32Slice(r); err != nil {
		return nil, err
	}
	if m.Normals, err = various.ReadFloat32Slice(r); err != nil {
		return nil, err
	}
	if m.UV, err = various.ReadFloat32Slice(r); err != nil {
		return nil, err
	}
	if m.Colors, err = various.ReadByteSlice(r); err != nil {
		return nil, err
	}
	if m.Heights, err = various.ReadFloatSlice(r); err != nil {
		return nil, err
	}

	latLon, err := various.ReadFloatSlice(r)
	if err != nil {
		return nil, err
	}
	if len(latLon)%2 != 0 {
		return nil, fmt.Errorf("odd lat/lon buffer length %d", len(latLon))
	}
	m.LatLon = make([][2]float64, len(latLon)/2)
	for i := range m.LatLon {
		m.LatLon[i] = [2]float64{latLon[i*2], latLon[i*2+1]}
	}

	if m.Triangles, err = various.ReadUint32Slice(r); err != nil {
		return nil, err
	}

	numVerts := len(m.XYZ) / 3
	if len(m.Normals) != numVerts*3 || len(m.UV) != numVerts*2 ||
		len(m.Colors) != numVerts*4 || len(m.Heights) != numVerts || len(m.LatLon) != numVerts {
		return nil, fmt.Errorf("mesh buffer lengths do not match %d vertices", numVerts)
	}
	for _, t := range m.Triangles {
		if int(t) >= numVerts {
			return nil, fmt.Errorf("triangle index %d out of range for %d vertices", t, numVerts)
		}
	}
	m.vertTris = buildTriangleIncidence(numVerts, m.Triangles)
	return m, nil
}
