package gamedata

import "fmt"

// GameData bundles the catalogs one world is built from. Each world owns its
// own instance; nothing here is global.
type GameData struct {
	Blocks *BlockRegistry
	Biomes *BiomeRegistry
}

// New returns empty catalogs.
func New() *GameData {
	return &GameData{
		Blocks: NewBlockRegistry(),
		Biomes: NewBiomeRegistry(),
	}
}

// Validate checks that every biome references registered blocks.
func (gd *GameData) Validate() error {
	for _, b := range gd.Biomes.All() {
		if b.Height == nil {
			return fmt.Errorf("biome %q: missing height function", b.Name)
		}
		for _, name := range []string{b.Surface, b.Subsurface} {
			if _, err := gd.Blocks.Get(name); err != nil {
				return fmt.Errorf("biome %q: %w", b.Name, err)
			}
		}
	}
	return nil
}
