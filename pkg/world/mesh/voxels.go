package mesh

import (
	"cmp"
	"slices"

	"github.com/OCharnyshevich/voxel-terrain/pkg/world/gen"
)

func sortedVoxels(o gen.Overlay) []gen.BlockPos {
	out := make([]gen.BlockPos, 0, len(o))
	for p := range o {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b gen.BlockPos) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Z, b.Z)
	})
	return out
}
