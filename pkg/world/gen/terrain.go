package gen

import (
	"github.com/OCharnyshevich/voxel-terrain/pkg/gamedata"
)

// Terrain answers height and biome queries for any world column. All methods
// are pure; chunks built from it can be dropped and regenerated at will.
type Terrain struct {
	biomes *gamedata.BiomeRegistry
	fields Fields
	bands  []resolvedBand
}

// NewTerrain resolves bands against biomes. Every band must name a
// registered biome.
func NewTerrain(biomes *gamedata.BiomeRegistry, fields Fields, bands []Band) (*Terrain, error) {
	resolved, err := resolveBands(biomes, bands)
	if err != nil {
		return nil, err
	}
	return &Terrain{
		biomes: biomes,
		fields: fields,
		bands:  resolved,
	}, nil
}

// Biomes returns the registry the terrain was built from.
func (t *Terrain) Biomes() *gamedata.BiomeRegistry { return t.biomes }

// Seed returns the world seed.
func (t *Terrain) Seed() int64 { return t.fields.Seed() }

// Selector returns the raw biome selector value at (x, z).
func (t *Terrain) Selector(x, z int) float64 {
	return t.fields.Selector(x, z)
}

// BiomeAt returns the biome of world column (x, z).
func (t *Terrain) BiomeAt(x, z int) gamedata.Biome {
	return selectBand(t.bands, t.fields.Selector(x, z))
}

// HeightAt returns the terrain height of world column (x, z).
func (t *Terrain) HeightAt(x, z int) int {
	return t.BiomeAt(x, z).Height(x, z)
}

// Columns computes the height and biome of every column of the chunk.
func (t *Terrain) Columns(pos ChunkPos) ColumnTable {
	var table ColumnTable
	ox, oz := pos.Origin()
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			wx, wz := ox+x, oz+z
			biome := t.BiomeAt(wx, wz)
			table[x][z] = Column{
				Height: biome.Height(wx, wz),
				Biome:  biome.Name,
			}
		}
	}
	return table
}
