package genplanet

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Flokey82/genplanet/various"
)

var byteorder = binary.LittleEndian

// WriteTo writes the climate grid to the given writer.
func (g *ClimateGrid) WriteTo(w io.Writer) error {
	if err := binary.Write(w, byteorder, int64(g.Width)); err != nil {
		return err
	}
	if err := binary.Write(w, byteorder, int64(g.Height)); err != nil {
		return err
	}
	if err := binary.Write(w, byteorder, g.seaLevel); err != nil {
		return err
	}
	if err := various.WriteFloatSlice(w, g.Insolation); err != nil {
		return err
	}
	if err := various.WriteFloatSlice(w, g.Precipitation); err != nil {
		return err
	}
	if err := various.WriteFloatSlice(w, g.ThermalInertia); err != nil {
		return err
	}
	if err := various.WriteByteSlice(w, g.Mask); err != nil {
		return err
	}
	return various.WriteFloatSlice(w, g.heights)
}

// ReadClimateGrid reads a climate grid written by WriteTo.
func ReadClimateGrid(r io.Reader) (*ClimateGrid, error) {
	g := &ClimateGrid{}

	var width, height int64
	if err := binary.Read(r, byteorder, &width); err != nil {
		return nil, err
	}
	if err := binary.Read(r, byteorder, &height); err != nil {
		return nil, err
	}
	if err := binary.Read(r, byteorder, &g.seaLevel); err != nil {
		return nil, err
	}
	g.Width = int(width)
	g.Height = int(height)
	if g.Width <= 0 || g.Height <= 0 {
		return nil, fmt.Errorf("invalid climate grid size %dx%d", g.Width, g.Height)
	}

	var err error
	if g.Insolation, err = various.ReadFloatSlice(r); err != nil {
		return nil, err
	}
	if g.Precipitation, err = various.ReadFloatSlice(r); err != nil {
		return nil, err
	}
	if g.ThermalInertia, err = various.ReadFloatSlice(r); err != nil {
		return nil, err
	}
	if g.Mask, err = various.ReadByteSlice(r); err != nil {
		return nil, err
	}
	if g.heights, err = various.ReadFloatSlice(r); err != nil {
		return nil, err
	}

	size := g.Width * g.Height
	if len(g.Insolation) != size || len(g.Precipitation) != size ||
		len(g.ThermalInertia) != size || len(g.Mask) != size || len(g.heights) != size {
		return nil, fmt.Errorf("climate grid channel length does not match %dx%d texels", g.Width, g.Height)
	}
	return g, nil
}
