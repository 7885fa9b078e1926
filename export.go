package genplanet

import (
	"fmt"
	"image/png"
	"os"
)

// ExportPng renders the given display mode into an equirectangular PNG
// file.
func (p *Planet) ExportPng(name string, mode DisplayMode) error {
	img, err := p.RenderClimateMap(mode)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// ExportGeoJSON writes the plate features to a file.
func (p *Planet) ExportGeoJSON(name string) error {
	data, err := p.GetGeoJSONPlates()
	if err != nil {
		return err
	}
	return os.WriteFile(name, data, 0644)
}

// SaveClimate writes the baked climate grid to a file.
func (p *Planet) SaveClimate(name string) error {
	if p.Climate == nil {
		return fmt.Errorf("planet %d has no climate grid", p.Seed)
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return p.Climate.WriteTo(f)
}

// LoadClimate reads a climate grid written by SaveClimate.
func LoadClimate(name string) (*ClimateGrid, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadClimateGrid(f)
}

// SaveMesh writes the terrain mesh at the given detail level to a file.
func (p *Planet) SaveMesh(name string, level int) error {
	for _, m := range p.Meshes {
		if m.Level == level {
			f, err := os.Create(name)
			if err != nil {
				return err
			}
			defer f.Close()
			return m.WriteTo(f)
		}
	}
	return fmt.Errorf("planet %d has no mesh at level %d", p.Seed, level)
}

// LoadMesh reads a terrain mesh written by SaveMesh.
func LoadMesh(name string) (*TerrainMesh, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadTerrainMesh(f)
}
