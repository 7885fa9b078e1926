package main

import (
	"bytes"
	"compress/gzip"
	"flag"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"github.com/Flokey82/genplanet"
	"github.com/Flokey82/genplanet/logger"
	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var planet *genplanet.Planet

var json = jsoniter.Config{
	MarshalFloatWith6Digits: true,
	EscapeHTML:              false,
	SortMapKeys:             true,
}.Froze()

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// Initialize the config.
	pcfg := genplanet.NewConfig()
	pcfg.TerrainConfig.NumPlates = cfg.NumPlates
	pcfg.TerrainConfig.SubdivisionLevel = cfg.Subdivision
	pcfg.ClimateConfig.GridWidth = cfg.GridWidth
	pcfg.ClimateConfig.GridHeight = cfg.GridHeight

	// Generate the planet.
	p, err := genplanet.NewFromConfig(cfg.Seed, pcfg)
	if err != nil {
		logger.Fatal("generate planet", zap.Error(err))
	}
	planet = p

	// Start the server.
	router := mux.NewRouter()
	router.HandleFunc("/tiles/{z}/{x}/{y}", tileHandler)
	router.HandleFunc("/maps/{mode}", mapHandler)
	router.HandleFunc("/geojson/plates", geoJSONPlatesHandler)
	router.HandleFunc("/geojson/spawns/{tag}", geoJSONSpawnsHandler)
	router.HandleFunc("/query/{lat}/{lon}", queryHandler)
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
	logger.Info("listening", zap.String("addr", cfg.Addr), zap.Int64("seed", cfg.Seed))
	logger.Fatal("server stopped", zap.Error(http.ListenAndServe(cfg.Addr, router)))
}

// parseDisplayMode reads the 'd' url parameter.
func parseDisplayMode(req *http.Request) genplanet.DisplayMode {
	d := req.URL.Query().Get("d")
	if d == "" {
		d = "0"
	}
	displayMode, err := strconv.Atoi(d)
	if err != nil {
		panic(err)
	}
	return genplanet.DisplayMode(displayMode)
}

func tileHandler(res http.ResponseWriter, req *http.Request) {
	displayMode := parseDisplayMode(req)

	// Get the url parameter 'wind'.
	wind := req.URL.Query().Get("wind")
	if wind == "" {
		wind = "false"
	}

	// Get the tile coordinates and zoom level.
	vars := mux.Vars(req)
	tileX, err := strconv.Atoi(vars["x"])
	if err != nil {
		panic(err)
	}
	tileY, err := strconv.Atoi(vars["y"])
	if err != nil {
		panic(err)
	}
	tileZ, err := strconv.Atoi(vars["z"])
	if err != nil {
		panic(err)
	}

	// Get the tile image.
	img := planet.RenderTile(tileX, tileY, tileZ, displayMode, wind == "true")
	writeImage(res, img)
}

func mapHandler(res http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	mode, err := strconv.Atoi(vars["mode"])
	if err != nil {
		panic(err)
	}
	img, err := planet.RenderClimateMap(genplanet.DisplayMode(mode))
	if err != nil {
		panic(err)
	}
	writeImage(res, img)
}

func geoJSONPlatesHandler(res http.ResponseWriter, req *http.Request) {
	data, err := planet.GetGeoJSONPlates()
	if err != nil {
		panic(err)
	}
	writeGzipped(res, data, "application/json")
}

func geoJSONSpawnsHandler(res http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	// Get the url parameter 'max'.
	max := req.URL.Query().Get("max")
	if max == "" {
		max = "100"
	}
	maxFeatures, err := strconv.Atoi(max)
	if err != nil {
		panic(err)
	}
	data, err := planet.GetGeoJSONSpawns(vars["tag"], maxFeatures)
	if err != nil {
		panic(err)
	}
	writeGzipped(res, data, "application/json")
}

// pointQuery is the response of the point query endpoint.
type pointQuery struct {
	Lat            float64            `json:"lat"`
	Lon            float64            `json:"lon"`
	Height         float64            `json:"height"`
	MeshHeight     float64            `json:"mesh_height"`
	SeaLevel       float64            `json:"sea_level"`
	Class          string             `json:"class,omitempty"`
	Coastal        bool               `json:"coastal,omitempty"`
	Insolation     float64            `json:"insolation,omitempty"`
	Precipitation  float64            `json:"precipitation,omitempty"`
	ThermalInertia float64            `json:"thermal_inertia,omitempty"`
	NearestVertex  int                `json:"nearest_vertex"`
	Spawns         map[string]float64 `json:"spawns,omitempty"`
}

func queryHandler(res http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	lat, err := strconv.ParseFloat(vars["lat"], 64)
	if err != nil {
		panic(err)
	}
	lon, err := strconv.ParseFloat(vars["lon"], 64)
	if err != nil {
		panic(err)
	}

	resp := pointQuery{
		Lat:           lat,
		Lon:           lon,
		Height:        planet.GetHeightLatLon(lat, lon),
		SeaLevel:      planet.SeaLevel,
		NearestVertex: -1,
	}
	if idx, ok := planet.NearestVertex(lat, lon); ok {
		resp.NearestVertex = idx
	}
	if mh, ok := planet.GetMeshHeightLatLon(lat, lon); ok {
		resp.MeshHeight = mh
	}
	if g := planet.Climate; g != nil {
		s := g.SampleAt(lat, lon)
		resp.Class = s.Class.String()
		resp.Coastal = s.Coastal
		resp.Insolation = s.Insolation
		resp.Precipitation = s.Precipitation
		resp.ThermalInertia = s.ThermalInertia
		resp.Spawns = make(map[string]float64, len(genplanet.SpawnTags))
		for _, tag := range genplanet.SpawnTags {
			resp.Spawns[tag] = planet.GetSpawnSuitabilityLatLon(lat, lon, tag)
		}
	}

	data, err := json.Marshal(resp)
	if err != nil {
		panic(err)
	}
	res.Header().Set("Content-Type", "application/json")
	res.Header().Set("Content-Length", strconv.Itoa(len(data)))
	res.Write(data)
}

// writeImage writes the image to the response writer.
func writeImage(w http.ResponseWriter, img image.Image) {
	buffer := new(bytes.Buffer)
	if err := png.Encode(buffer, img); err != nil {
		logger.Error("unable to encode image", zap.Error(err))
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(buffer.Bytes())))
	if _, err := w.Write(buffer.Bytes()); err != nil {
		logger.Error("unable to write image", zap.Error(err))
	}
}

// writeGzipped writes the data gzip compressed with CORS headers.
func writeGzipped(res http.ResponseWriter, data []byte, contentType string) {
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	if _, err := w.Write(data); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}

	// Set the headers and write the data.
	zipped := b.Bytes()
	res.Header().Set("Content-Type", contentType)
	res.Header().Set("Content-Encoding", "gzip")
	res.Header().Set("Content-Length", strconv.Itoa(len(zipped)))
	res.Header().Set("Access-Control-Allow-Origin", "*")
	res.Header().Set("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept")
	res.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	res.Write(zipped)
}
