package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/Flokey82/genplanet"
	"github.com/Flokey82/genplanet/logger"
	"go.uber.org/zap"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	seed       = flag.Int64("seed", 1234, "the planet seed")
	numPlates  = flag.Int("num_plates", 12, "number of tectonic plates")
	subdiv     = flag.Int("subdivision", 6, "icosphere subdivision level")
	exportPNG  = flag.Bool("export_png", false, "export biome and climate maps as PNG")
	exportMesh = flag.Bool("export_mesh", false, "export the terrain meshes")
	exportGeo  = flag.Bool("export_geojson", false, "export the plate features as GeoJSON")
	logLevel   = flag.String("log_level", "info", "log level (debug, info, warn, error)")
	logFile    = flag.String("log_file", "", "optional log file with rotation")
)

func main() {
	flag.Parse()
	if err := logger.Init(*logLevel, *logFile); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.Fatal("create cpu profile", zap.Error(err))
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg := genplanet.NewConfig()
	cfg.TerrainConfig.NumPlates = *numPlates
	cfg.TerrainConfig.SubdivisionLevel = *subdiv

	p, err := genplanet.NewFromConfig(*seed, cfg)
	if err != nil {
		logger.Fatal("generate planet", zap.Error(err))
	}
	logger.Info("planet generated",
		zap.Int64("seed", p.Seed),
		zap.Float64("sea_level", p.SeaLevel),
		zap.Int("meshes", len(p.Meshes)))

	if *exportPNG {
		exports := []struct {
			name string
			mode genplanet.DisplayMode
		}{
			{"biomes.png", genplanet.DisplayBiomes},
			{"elevation.png", genplanet.DisplayElevation},
			{"insolation.png", genplanet.DisplayInsolation},
			{"precipitation.png", genplanet.DisplayPrecipitation},
			{"inertia.png", genplanet.DisplayThermalInertia},
			{"mask.png", genplanet.DisplayTerrainMask},
		}
		for _, e := range exports {
			if err := p.ExportPng(e.name, e.mode); err != nil {
				logger.Fatal("export png", zap.String("name", e.name), zap.Error(err))
			}
		}
	}
	if *exportMesh {
		for _, m := range p.Meshes {
			name := fmt.Sprintf("mesh_%d.bin", m.Level)
			if err := p.SaveMesh(name, m.Level); err != nil {
				logger.Fatal("export mesh", zap.String("name", name), zap.Error(err))
			}
		}
		if err := p.SaveClimate("climate.bin"); err != nil {
			logger.Fatal("export climate", zap.Error(err))
		}
	}
	if *exportGeo {
		if err := p.ExportGeoJSON("plates.geojson"); err != nil {
			logger.Fatal("export geojson", zap.Error(err))
		}
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			logger.Fatal("create mem profile", zap.Error(err))
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
