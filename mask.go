package genplanet

// TerrainClass is a coarse elevation class stored in the lower two bits
// of a terrain mask texel.
type TerrainClass uint8

const (
	ClassDeepOcean TerrainClass = iota
	ClassShallowWater
	ClassLowland
	ClassHighland
)

func (c TerrainClass) String() string {
	switch c {
	case ClassDeepOcean:
		return "deep ocean"
	case ClassShallowWater:
		return "shallow water"
	case ClassLowland:
		return "lowland"
	case ClassHighland:
		return "highland"
	}
	return "unknown"
}

// Terrain mask bit layout: the lower two bits hold the terrain class,
// bit 2 marks texels close to the coastline. The upper bits are reserved.
const (
	maskClassBits  = 0x3
	maskCoastalBit = 0x4
)

const (
	classShallowDepth = 0.05 // water shallower than this is shallow water
	classLowlandMax   = 0.15 // land relief fraction below which land is lowland
	coastalProximity  = 0.02 // elevation distance from sea level that counts as coastal
)

// encodeTerrainMask packs a terrain class and the coastal flag into one
// mask byte.
func encodeTerrainMask(class TerrainClass, coastal bool) uint8 {
	m := uint8(class) & maskClassBits
	if coastal {
		m |= maskCoastalBit
	}
	return m
}

// decodeTerrainMask unpacks a mask byte into the terrain class and the
// coastal flag.
func decodeTerrainMask(m uint8) (TerrainClass, bool) {
	return TerrainClass(m & maskClassBits), m&maskCoastalBit != 0
}

// classifyHeight returns the terrain class for a compressed elevation
// value relative to the given sea level.
func classifyHeight(height, seaLevel float64) TerrainClass {
	if height < seaLevel {
		if seaLevel-height > classShallowDepth {
			return ClassDeepOcean
		}
		return ClassShallowWater
	}
	rel := (height - seaLevel) / (RawHeightMax - seaLevel)
	if rel < classLowlandMax {
		return ClassLowland
	}
	return ClassHighland
}

// isCoastal reports whether an elevation is close enough to the
// coastline to get the coastal mask bit.
func isCoastal(height, seaLevel float64) bool {
	dist := height - seaLevel
	if dist < 0 {
		dist = -dist
	}
	return dist < coastalProximity
}
