package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the server settings.
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`

	Seed        int64 `yaml:"seed"`
	NumPlates   int   `yaml:"num_plates"`
	Subdivision int   `yaml:"subdivision"`
	GridWidth   int   `yaml:"grid_width"`
	GridHeight  int   `yaml:"grid_height"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Default returns a ServerConfig with sensible default values.
func Default() *ServerConfig {
	return &ServerConfig{
		Addr:        ":3333",
		StaticDir:   "static",
		Seed:        12345,
		NumPlates:   12,
		Subdivision: 6,
		GridWidth:   2048,
		GridHeight:  1024,
		LogLevel:    "info",
	}
}

var (
	flagConfig = flag.String("config", "", "path to config file")
	flagAddr   = flag.String("addr", "", "listen address")
	flagSeed   = flag.Int64("seed", 0, "the planet seed")
	flagPlates = flag.Int("num_plates", 0, "number of tectonic plates")
	flagSubdiv = flag.Int("subdivision", 0, "icosphere subdivision level")
	flagDebug  = flag.Bool("debug", false, "enable debug logging")
)

// loadConfig loads configuration with priority: defaults < file < flags.
func loadConfig() (*ServerConfig, error) {
	cfg := Default()
	if *flagConfig != "" {
		data, err := os.ReadFile(*flagConfig)
		if err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", *flagConfig, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", *flagConfig, err)
		}
	}
	applyFlags(cfg)
	return cfg, nil
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *ServerConfig) {
	if *flagAddr != "" {
		cfg.Addr = *flagAddr
	}
	if *flagSeed != 0 {
		cfg.Seed = *flagSeed
	}
	if *flagPlates > 0 {
		cfg.NumPlates = *flagPlates
	}
	if *flagSubdiv > 0 {
		cfg.Subdivision = *flagSubdiv
	}
	if *flagDebug {
		cfg.LogLevel = "debug"
	}
}
