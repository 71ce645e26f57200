package gamedata

import "image/color"

// HeightFunc maps a world column to its terrain height. Implementations must
// be pure.
type HeightFunc func(x, z int) int

// Biome pairs a height function with the blocks that cover it.
type Biome struct {
	Name        string
	DisplayName string
	Height      HeightFunc
	Surface     string
	Subsurface  string
	Tint        *color.RGBA // optional
}

func (b Biome) Key() string { return b.Name }

// BiomeRegistry is the biome catalog.
type BiomeRegistry = Registry[Biome]

// NewBiomeRegistry creates an empty biome catalog.
func NewBiomeRegistry() *BiomeRegistry {
	return NewRegistry[Biome]("biome")
}
