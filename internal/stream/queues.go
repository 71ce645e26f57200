package stream

import (
	"cmp"
	"slices"

	"github.com/OCharnyshevich/voxel-terrain/pkg/world/gen"
)

// Queues is the pending work planned for one observer chunk. A coordinate is
// never in both queues: loads are never resident and unloads always are.
type Queues struct {
	Observer gen.ChunkPos
	Seen     bool // Observer holds a real position
	Load     []gen.ChunkPos
	Unload   []gen.ChunkPos
}

// UpdateQueues plans the next load and unload work. The old plan is returned
// untouched unless the observer crossed into another chunk or force is set.
//
// Load holds every non-resident coordinate within the load radius, nearest
// first. Unload holds every resident coordinate outside the unload radius,
// farthest first. Equal distances are ordered by X then Z.
func UpdateQueues[V any](old Queues, observer gen.ChunkPos, resident map[gen.ChunkPos]V, t Tunables, force bool) Queues {
	if old.Seen && old.Observer == observer && !force {
		return old
	}

	q := Queues{Observer: observer, Seen: true}

	r := t.LoadRadius
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			if !Within(dx*dx+dz*dz, r) {
				continue
			}
			pos := gen.ChunkPos{X: observer.X + dx, Z: observer.Z + dz}
			if _, ok := resident[pos]; ok {
				continue
			}
			q.Load = append(q.Load, pos)
		}
	}

	for pos := range resident {
		if !Within(pos.DistSq(observer), t.UnloadRadius) {
			q.Unload = append(q.Unload, pos)
		}
	}

	slices.SortFunc(q.Load, func(a, b gen.ChunkPos) int {
		return compareByDistance(observer, a, b)
	})
	slices.SortFunc(q.Unload, func(a, b gen.ChunkPos) int {
		if c := cmp.Compare(b.DistSq(observer), a.DistSq(observer)); c != 0 {
			return c
		}
		return compareXZ(a, b)
	})
	return q
}

func compareByDistance(observer, a, b gen.ChunkPos) int {
	if c := cmp.Compare(a.DistSq(observer), b.DistSq(observer)); c != 0 {
		return c
	}
	return compareXZ(a, b)
}

func compareXZ(a, b gen.ChunkPos) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}
