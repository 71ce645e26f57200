package gen

import (
	"fmt"

	"github.com/OCharnyshevich/voxel-terrain/pkg/gamedata"
)

// Block names of the default catalog.
const (
	BlockGrass     = "grass"
	BlockDirt      = "dirt"
	BlockStone     = "stone"
	BlockGravel    = "gravel"
	BlockSand      = "sand"
	BlockSandstone = "sandstone"
	BlockLog       = "log"
	BlockLeaves    = "leaves"
)

// DefaultBlocks returns the default block catalog. Tile indices address a
// 16×16 atlas laid out like the classic terrain.png.
func DefaultBlocks() []gamedata.Block {
	return []gamedata.Block{
		{Name: BlockGrass, DisplayName: "Grass Block", Color: gamedata.MustHexColor("#5B8C32"), Top: gamedata.TileAt(0), Side: gamedata.TileAt(3), Bottom: gamedata.TileAt(2)},
		{Name: BlockDirt, DisplayName: "Dirt", Color: gamedata.MustHexColor("#8B5A2B"), Top: gamedata.TileAt(2), Side: gamedata.TileAt(2), Bottom: gamedata.TileAt(2)},
		{Name: BlockStone, DisplayName: "Stone", Color: gamedata.MustHexColor("#8A8A8A"), Top: gamedata.TileAt(1), Side: gamedata.TileAt(1), Bottom: gamedata.TileAt(1)},
		{Name: BlockGravel, DisplayName: "Gravel", Color: gamedata.MustHexColor("#7F7C78"), Top: gamedata.TileAt(19), Side: gamedata.TileAt(19), Bottom: gamedata.TileAt(19)},
		{Name: BlockSand, DisplayName: "Sand", Color: gamedata.MustHexColor("#C2B280"), Top: gamedata.TileAt(18), Side: gamedata.TileAt(18), Bottom: gamedata.TileAt(18)},
		{Name: BlockSandstone, DisplayName: "Sandstone", Color: gamedata.MustHexColor("#D2B48C"), Top: gamedata.TileAt(176), Side: gamedata.TileAt(192), Bottom: gamedata.TileAt(208)},
		{Name: BlockLog, DisplayName: "Log", Color: gamedata.MustHexColor("#6B5133"), Top: gamedata.TileAt(21), Side: gamedata.TileAt(20), Bottom: gamedata.TileAt(21)},
		{Name: BlockLeaves, DisplayName: "Leaves", Color: gamedata.MustHexColor("#3A6B1E"), Top: gamedata.TileAt(52), Side: gamedata.TileAt(52), Bottom: gamedata.TileAt(52)},
	}
}

// DefaultBiomes returns the four built-in biomes.
func DefaultBiomes() []gamedata.Biome {
	plainsTint := gamedata.MustHexColor("#91BD59")
	forestTint := gamedata.MustHexColor("#59AE30")
	return []gamedata.Biome{
		{Name: BiomeDesert, DisplayName: "Desert", Height: DesertHeight, Surface: BlockSand, Subsurface: BlockSandstone},
		{Name: BiomeRocky, DisplayName: "Rocky Hills", Height: RockyHeight, Surface: BlockStone, Subsurface: BlockGravel},
		{Name: BiomePlains, DisplayName: "Plains", Height: PlainsHeight, Surface: BlockGrass, Subsurface: BlockDirt, Tint: &plainsTint},
		{Name: BiomeForest, DisplayName: "Forest", Height: ForestHeight, Surface: BlockGrass, Subsurface: BlockDirt, Tint: &forestTint},
	}
}

// NewDefaultGameData registers the default catalogs into fresh registries.
func NewDefaultGameData() (*gamedata.GameData, error) {
	gd := gamedata.New()
	for _, b := range DefaultBlocks() {
		if err := gd.Blocks.Register(b); err != nil {
			return nil, err
		}
	}
	for _, b := range DefaultBiomes() {
		if err := gd.Biomes.Register(b); err != nil {
			return nil, err
		}
	}
	if err := gd.Validate(); err != nil {
		return nil, fmt.Errorf("default catalog: %w", err)
	}
	return gd, nil
}

// NewDefaultTerrain builds terrain over the default catalogs.
func NewDefaultTerrain(seed int64) (*Terrain, *gamedata.GameData, error) {
	gd, err := NewDefaultGameData()
	if err != nil {
		return nil, nil, err
	}
	t, err := NewTerrain(gd.Biomes, NewFields(seed), DefaultBands())
	if err != nil {
		return nil, nil, err
	}
	return t, gd, nil
}

