package genplanet

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/Flokey82/genplanet/various"
	"github.com/Flokey82/geoquad"
	"github.com/davvo/mercator"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
)

// DisplayMode selects what a rendered map shows.
type DisplayMode int

const (
	DisplayBiomes DisplayMode = iota
	DisplayElevation
	DisplayInsolation
	DisplayPrecipitation
	DisplayThermalInertia
	DisplayTerrainMask
)

// elevationGradient returns the blue to red gradient used for scalar maps.
func elevationGradient() colorgrad.Gradient {
	grad := colorgrad.NewGradient()
	grad.Colors(
		color.RGBA{0, 0, 255, 255},
		color.RGBA{0, 255, 255, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{255, 255, 0, 255},
		color.RGBA{255, 0, 0, 255},
	)
	cb, err := grad.Build()
	if err != nil {
		log.Fatal(err)
	}
	return cb
}

// RenderClimateMap renders one channel of the climate grid into an
// equirectangular image, one pixel per texel.
func (p *Planet) RenderClimateMap(mode DisplayMode) (image.Image, error) {
	g := p.Climate
	if g == nil {
		return nil, fmt.Errorf("planet %d has no climate grid", p.Seed)
	}
	grad := elevationGradient()
	dest := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	various.KickOffRowWorkers(g.Height, func(startRow, endRow int) {
		for y := startRow; y < endRow; y++ {
			lat := g.latAt(y)
			for x := 0; x < g.Width; x++ {
				dest.Set(x, y, g.texelColor(mode, y*g.Width+x, lat, grad))
			}
		}
	})
	return dest, nil
}

// texelColor returns the color of one climate texel in the given mode.
func (g *ClimateGrid) texelColor(mode DisplayMode, i int, lat float64, grad colorgrad.Gradient) color.Color {
	switch mode {
	case DisplayElevation:
		return genColor(grad.At((g.heights[i]-RawHeightMin)/(RawHeightMax-RawHeightMin)), 1.0)
	case DisplayInsolation:
		return genGray(g.Insolation[i])
	case DisplayPrecipitation:
		return genColor(grad.At(g.Precipitation[i]), 1.0)
	case DisplayThermalInertia:
		return genGray(g.ThermalInertia[i])
	case DisplayTerrainMask:
		class, coastal := decodeTerrainMask(g.Mask[i])
		col := maskClassColor(class)
		if coastal {
			col.R = 255
		}
		return col
	}

	// Biome view: depth shaded water, Whittaker colors on land fed by
	// the baked precipitation.
	h := g.heights[i]
	if h < g.seaLevel {
		depth := (g.seaLevel - h) / (g.seaLevel - RawHeightMin)
		return genBlue(1 - 0.7*depth)
	}
	rel := (h - g.seaLevel) / (RawHeightMax - g.seaLevel)
	return getWhittakerModBiomeColor(lat, rel, g.Precipitation[i], 0.65+0.35*rel)
}

// maskClassColor returns the flat palette color of a terrain class.
func maskClassColor(class TerrainClass) color.NRGBA {
	switch class {
	case ClassDeepOcean:
		return color.NRGBA{0, 0, 128, 255}
	case ClassShallowWater:
		return color.NRGBA{0, 128, 255, 255}
	case ClassLowland:
		return color.NRGBA{0, 160, 0, 255}
	}
	return color.NRGBA{128, 96, 64, 255}
}

const tileSize = 256

// sizeFromZoom returns the world size in pixels at the given zoom level.
func sizeFromZoom(zoom int) int {
	return int(math.Pow(2.0, float64(zoom)) * float64(tileSize))
}

func latLonToPixels(lat, lon float64, zoom int) (float64, float64) {
	return mercator.LatLonToPixels(-1*lat, lon, zoom)
}

// merc inverts the web mercator projection for 256 pixel tiles.
type merc struct {
	initialResolution float64
	originShift       float64
}

var merc256 = &merc{
	initialResolution: 2 * math.Pi * 6378137 / tileSize,
	originShift:       2 * math.Pi * 6378137 / 2,
}

// PixelsToLatLon converts absolute pixel coordinates at the given zoom
// level to lat/lon in WGS84.
func (m *merc) PixelsToLatLon(px, py float64, zoom int) (float64, float64) {
	res := m.initialResolution / math.Pow(2, float64(zoom))
	x := px*res - m.originShift
	y := py*res - m.originShift
	lon := (x / m.originShift) * 180.0
	lat := (y / m.originShift) * 180.0
	lat = 180 / math.Pi * (2*math.Atan(math.Exp(lat*math.Pi/180.0)) - math.Pi/2)
	return -lat, lon
}

// tileBoundingBox is the pixel bounding box of one map tile.
type tileBoundingBox struct {
	x1, y1 float64
	x2, y2 float64
	zoom   int
}

func newTileBoundingBox(tx, ty, zoom int) tileBoundingBox {
	return tileBoundingBox{
		x1:   float64(tx * tileSize),
		y1:   float64(ty * tileSize),
		x2:   float64((tx + 1) * tileSize),
		y2:   float64((ty + 1) * tileSize),
		zoom: zoom,
	}
}

// toLatLon returns the lat/lon coordinates of the north-west and
// south-east corners of the bounding box.
func (t *tileBoundingBox) toLatLon() (lat1, lon1, lat2, lon2 float64) {
	lat1, lon1 = merc256.PixelsToLatLon(t.x1, t.y1, t.zoom)
	lat2, lon2 = merc256.PixelsToLatLon(t.x2, t.y2, t.zoom)
	return
}

// RenderTile renders one web mercator map tile from the finest mesh.
// The triangles of the mesh are filled with their vertex colors (or a
// scalar gradient, depending on the mode), optionally with the
// prevailing wind drawn on top.
func (p *Planet) RenderTile(tx, ty, zoom int, mode DisplayMode, showWind bool) image.Image {
	mesh := p.Meshes[0]
	tbb := newTileBoundingBox(tx, ty, zoom)
	la1, lo1, la2, lo2 := tbb.toLatLon()
	if la1 > la2 {
		la1, la2 = la2, la1
	}
	if lo1 > lo2 {
		lo1, lo2 = lo2, lo1
	}

	// Add a margin so triangles reaching into the tile get drawn even
	// when their vertices lie outside of it.
	latMargin := 5 * (la2 - la1) / tileSize
	lonMargin := 5 * (lo2 - lo1) / tileSize

	// Pixel offset of the tile corner.
	dx, _ := latLonToPixels(la1, lo1, tbb.zoom)
	_, dy := latLonToPixels(la2, lo2, tbb.zoom)

	dest := image.NewRGBA(image.Rect(0, 0, tileSize, tileSize))
	gc := draw2dimg.NewGraphicContext(dest)
	gc.SetLineWidth(1)

	// Mark the vertices within the tile (plus margin).
	marked := make([]bool, mesh.NumVertices())
	qds := p.tree.FindPointsInRect(geoquad.Rect{
		MinLat: la1 - latMargin,
		MaxLat: la2 + latMargin,
		MinLon: lo1 - lonMargin,
		MaxLon: lo2 + lonMargin,
	})
	for _, qd := range qds {
		marked[qd.Data.(int)] = true
	}

	colorFunc := p.tileColorFunc(mode)
	for t := 0; t < len(mesh.Triangles); t += 3 {
		v0 := int(mesh.Triangles[t])
		v1 := int(mesh.Triangles[t+1])
		v2 := int(mesh.Triangles[t+2])
		if !marked[v0] && !marked[v1] && !marked[v2] {
			continue
		}

		refLon := mesh.LatLon[v0][1]
		var path [6]float64
		for c, v := range [3]int{v0, v1, v2} {
			vLat := mesh.LatLon[v][0]
			vLon := mesh.LatLon[v][1]

			// Check if the triangle wraps around the date line.
			if vLon-refLon > 120 {
				vLon -= 360
			} else if vLon-refLon < -120 {
				vLon += 360
			}
			px, py := latLonToPixels(vLat, vLon, tbb.zoom)
			path[c*2] = px - dx
			path[c*2+1] = py - dy
		}

		col := colorFunc(v0)
		gc.SetStrokeColor(col)
		gc.SetFillColor(col)
		gc.BeginPath()
		gc.MoveTo(path[0], path[1])
		gc.LineTo(path[2], path[3])
		gc.LineTo(path[4], path[5])
		gc.Close()
		gc.FillStroke()
	}

	if showWind {
		p.drawWindVectors(gc, mesh, marked, dx, dy, tbb.zoom)
	}
	return dest
}

// tileColorFunc returns the per-vertex color function for the given
// display mode. Climate modes fall back to the biome colors if no
// climate grid was baked.
func (p *Planet) tileColorFunc(mode DisplayMode) func(v int) color.Color {
	mesh := p.Meshes[0]
	switch mode {
	case DisplayElevation:
		grad := elevationGradient()
		return func(v int) color.Color {
			return genColor(grad.At((mesh.Heights[v]-RawHeightMin)/(RawHeightMax-RawHeightMin)), 1.0)
		}
	case DisplayInsolation, DisplayPrecipitation, DisplayThermalInertia, DisplayTerrainMask:
		if p.Climate == nil {
			break
		}
		g := p.Climate
		grad := elevationGradient()
		return func(v int) color.Color {
			x, y := g.TexelAt(mesh.LatLon[v][0], mesh.LatLon[v][1])
			return g.texelColor(mode, y*g.Width+x, mesh.LatLon[v][0], grad)
		}
	}
	return func(v int) color.Color {
		return color.NRGBA{
			R: mesh.Colors[v*4],
			G: mesh.Colors[v*4+1],
			B: mesh.Colors[v*4+2],
			A: mesh.Colors[v*4+3],
		}
	}
}

// drawWindVectors draws the prevailing wind as short strokes on top of
// the tile, one per marked vertex.
func (p *Planet) drawWindVectors(gc *draw2dimg.GraphicContext, mesh *TerrainMesh, marked []bool, dx, dy float64, zoom int) {
	rotDir := 1.0
	if p.Config.ClimateConfig != nil {
		rotDir = p.Config.ClimateConfig.RotationDir
	}
	gc.SetStrokeColor(color.NRGBA{0, 0, 0, 255})
	gc.SetLineWidth(1)
	for v, ok := range marked {
		if !ok {
			continue
		}
		lat := mesh.LatLon[v][0]
		lon := mesh.LatLon[v][1]
		wind := various.SetMagnitude2(globalWindVector(lat, rotDir), 1.5)
		eLat, eLon := various.AddVecToLatLong(lat, lon, wind)

		x1, y1 := latLonToPixels(lat, lon, zoom)
		x2, y2 := latLonToPixels(various.WrapLat(eLat), eLon, zoom)
		gc.BeginPath()
		gc.MoveTo(x1-dx, y1-dy)
		gc.LineTo(x2-dx, y2-dy)
		gc.Stroke()
	}
}

// genColor converts a color to NRGBA scaled by the given intensity.
func genColor(col color.Color, intensity float64) color.Color {
	var col2 color.NRGBA
	cr, cg, cb, _ := col.RGBA()
	col2.R = uint8(intensity * 255 * float64(cr) / float64(0xffff))
	col2.G = uint8(intensity * 255 * float64(cg) / float64(0xffff))
	col2.B = uint8(intensity * 255 * float64(cb) / float64(0xffff))
	col2.A = 255
	return col2
}

// genGray returns a gray color with the given intensity (0.0-1.0).
func genGray(intensity float64) color.NRGBA {
	v := uint8(intensity * 255)
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}
