package genplanet

import (
	"fmt"

	"github.com/Flokey82/genplanet/icosphere"
)

// Config is a struct that holds all configuration options for planet generation.
type Config struct {
	*TerrainConfig
	*ClimateConfig
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		TerrainConfig: NewTerrainConfig(),
		ClimateConfig: NewClimateConfig(),
	}
}

// Validate checks the configuration before any generation state is created.
// A nil ClimateConfig is valid and skips the climate bake.
func (cfg *Config) Validate() error {
	if cfg.TerrainConfig == nil {
		return fmt.Errorf("terrain configuration missing")
	}
	if err := cfg.TerrainConfig.Validate(); err != nil {
		return err
	}
	if cfg.ClimateConfig == nil {
		return nil
	}
	return cfg.ClimateConfig.Validate()
}

// TerrainConfig is a struct that holds all configuration options for terrain
// and mesh generation.
type TerrainConfig struct {
	SubdivisionLevel int     // Subdivision level of the highest-detail mesh
	MeshLevels       int     // Number of mesh detail levels to generate
	Radius           float64 // Planet radius
	SeaLevel         float64 // Nominal sea level (relative to radius)
	MinLandRatio     float64 // Minimum fraction of vertices above sea level
	NumPlates        int     // Number of tectonic plates
	ContinentalRatio float64 // Fraction of plates that are continental
	SmoothIterations int     // Taubin smoothing iterations per mesh
	SmoothStrength   float64 // Laplacian strength of the smoothing shrink pass
}

// NewTerrainConfig returns a new config for terrain generation.
func NewTerrainConfig() *TerrainConfig {
	return &TerrainConfig{
		SubdivisionLevel: 6,
		MeshLevels:       3,
		Radius:           60.0,
		SeaLevel:         0.02,
		MinLandRatio:     0.3,
		NumPlates:        12,
		ContinentalRatio: 0.42,
		SmoothIterations: 4,
		SmoothStrength:   0.5,
	}
}

// Validate checks the terrain configuration.
func (cfg *TerrainConfig) Validate() error {
	if cfg.SubdivisionLevel < 0 || cfg.SubdivisionLevel > icosphere.MaxLevel {
		return fmt.Errorf("subdivision level must be in [0, %d], got %d", icosphere.MaxLevel, cfg.SubdivisionLevel)
	}
	if cfg.MeshLevels < 1 {
		return fmt.Errorf("at least one mesh level is required, got %d", cfg.MeshLevels)
	}
	if cfg.Radius <= 0 {
		return fmt.Errorf("radius must be positive, got %f", cfg.Radius)
	}
	if cfg.NumPlates < 2 {
		return fmt.Errorf("at least two plates are required, got %d", cfg.NumPlates)
	}
	if cfg.MinLandRatio < 0 || cfg.MinLandRatio > 1 {
		return fmt.Errorf("minimum land ratio must be in [0, 1], got %f", cfg.MinLandRatio)
	}
	if cfg.ContinentalRatio < 0 || cfg.ContinentalRatio > 1 {
		return fmt.Errorf("continental ratio must be in [0, 1], got %f", cfg.ContinentalRatio)
	}
	if cfg.SmoothIterations < 0 {
		return fmt.Errorf("smoothing iterations must not be negative, got %d", cfg.SmoothIterations)
	}
	return nil
}

// ClimateConfig is a struct that holds all configuration options for the
// climate baking pass.
type ClimateConfig struct {
	GridWidth    int     // Width of the climate grid in texels
	GridHeight   int     // Height of the climate grid in texels
	AxialTilt    float64 // Axial tilt in degrees
	Eccentricity float64 // Orbital eccentricity
	SunIntensity float64 // Relative sun intensity
	RotationDir  float64 // Rotation direction, 1 for prograde, -1 for retrograde
}

// NewClimateConfig returns a new config for climate baking.
func NewClimateConfig() *ClimateConfig {
	return &ClimateConfig{
		GridWidth:    2048,
		GridHeight:   1024,
		AxialTilt:    23.44,
		Eccentricity: 0.0167,
		SunIntensity: 1.0,
		RotationDir:  1.0,
	}
}

// Validate checks the climate configuration.
func (cfg *ClimateConfig) Validate() error {
	if cfg.GridWidth <= 0 || cfg.GridHeight <= 0 {
		return fmt.Errorf("climate grid dimensions must be positive, got %dx%d", cfg.GridWidth, cfg.GridHeight)
	}
	if cfg.Eccentricity < 0 || cfg.Eccentricity >= 1 {
		return fmt.Errorf("eccentricity must be in [0, 1), got %f", cfg.Eccentricity)
	}
	if cfg.SunIntensity <= 0 {
		return fmt.Errorf("sun intensity must be positive, got %f", cfg.SunIntensity)
	}
	if cfg.RotationDir != 1 && cfg.RotationDir != -1 {
		return fmt.Errorf("rotation direction must be 1 or -1, got %f", cfg.RotationDir)
	}
	return nil
}
