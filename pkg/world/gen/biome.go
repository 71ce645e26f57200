package gen

import (
	"fmt"
	"math"

	"github.com/OCharnyshevich/voxel-terrain/pkg/gamedata"
)

// Built-in biome names.
const (
	BiomeDesert = "desert"
	BiomeRocky  = "rocky"
	BiomePlains = "plains"
	BiomeForest = "forest"
)

// Band assigns every selector value below Below (and at or above the previous
// band's bound) to a biome. The last band should use math.Inf(1).
type Band struct {
	Below float64
	Biome string
}

// DefaultBands partitions the selector range [-2, 2]:
//
//	(-inf, -1) desert | [-1, 0) rocky | [0, 1) plains | [1, +inf) forest
func DefaultBands() []Band {
	return []Band{
		{Below: -1, Biome: BiomeDesert},
		{Below: 0, Biome: BiomeRocky},
		{Below: 1, Biome: BiomePlains},
		{Below: math.Inf(1), Biome: BiomeForest},
	}
}

type resolvedBand struct {
	below float64
	biome gamedata.Biome
}

func resolveBands(biomes *gamedata.BiomeRegistry, bands []Band) ([]resolvedBand, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("no biome bands")
	}
	out := make([]resolvedBand, 0, len(bands))
	prev := math.Inf(-1)
	for _, b := range bands {
		if b.Below <= prev {
			return nil, fmt.Errorf("band %q: bound %v not above previous %v", b.Biome, b.Below, prev)
		}
		biome, err := biomes.Get(b.Biome)
		if err != nil {
			return nil, fmt.Errorf("resolve band: %w", err)
		}
		if biome.Height == nil {
			return nil, fmt.Errorf("biome %q: missing height function", b.Biome)
		}
		out = append(out, resolvedBand{below: b.Below, biome: biome})
		prev = b.Below
	}
	if !math.IsInf(prev, 1) {
		return nil, fmt.Errorf("last band %q must be unbounded", bands[len(bands)-1].Biome)
	}
	return out, nil
}

// selectBand returns the biome whose band contains v.
func selectBand(bands []resolvedBand, v float64) gamedata.Biome {
	for _, b := range bands {
		if v < b.below {
			return b.biome
		}
	}
	// NaN selectors fall through every comparison.
	return bands[len(bands)-1].biome
}
