package stream

import (
	"testing"

	"github.com/OCharnyshevich/voxel-terrain/pkg/world/gen"
)

func TestUpdateQueuesKeepsPlanForSameChunk(t *testing.T) {
	tun := Tunables{LoadRadius: 1, UnloadRadius: 2, MaxChunksPerTick: 1}
	resident := map[gen.ChunkPos]struct{}{}

	first := UpdateQueues(Queues{}, gen.ChunkPos{}, resident, tun, false)
	if !first.Seen || len(first.Load) != 9 {
		t.Fatalf("first plan = %+v, want 9 loads", first)
	}

	drained := first
	drained.Load = drained.Load[3:]
	again := UpdateQueues(drained, gen.ChunkPos{}, resident, tun, false)
	if len(again.Load) != 6 {
		t.Errorf("replanned without a chunk change: %d loads, want 6", len(again.Load))
	}

	forced := UpdateQueues(drained, gen.ChunkPos{}, resident, tun, true)
	if len(forced.Load) != 9 {
		t.Errorf("forced plan has %d loads, want 9", len(forced.Load))
	}
}

func TestUpdateQueuesOrdering(t *testing.T) {
	tun := Tunables{LoadRadius: 2, UnloadRadius: 3, MaxChunksPerTick: 1}
	observer := gen.ChunkPos{X: 10, Z: -4}
	resident := map[gen.ChunkPos]bool{
		{X: 10, Z: -4}: true, // observer chunk, stays
		{X: 0, Z: 0}:   true,
		{X: 20, Z: 0}:  true,
		{X: 10, Z: 2}:  true,
		{X: 14, Z: -4}: true,
	}

	q := UpdateQueues(Queues{}, observer, resident, tun, false)

	if len(q.Load) != coordsWithin(2)-1 {
		t.Errorf("load queue has %d entries, want %d", len(q.Load), coordsWithin(2)-1)
	}
	for i, pos := range q.Load {
		if resident[pos] {
			t.Errorf("resident %v in load queue", pos)
		}
		if i > 0 {
			prev := q.Load[i-1]
			if d, pd := pos.DistSq(observer), prev.DistSq(observer); d < pd {
				t.Errorf("load[%d] %v (d²=%d) after %v (d²=%d)", i, pos, d, prev, pd)
			} else if d == pd && (pos.X < prev.X || (pos.X == prev.X && pos.Z < prev.Z)) {
				t.Errorf("load[%d] %v tie not ordered by X then Z after %v", i, pos, prev)
			}
		}
	}

	want := []gen.ChunkPos{{X: 0, Z: 0}, {X: 20, Z: 0}, {X: 10, Z: 2}, {X: 14, Z: -4}}
	if len(q.Unload) != len(want) {
		t.Fatalf("unload = %v, want %v", q.Unload, want)
	}
	for i := range want {
		if q.Unload[i] != want[i] {
			t.Errorf("unload[%d] = %v, want %v", i, q.Unload[i], want[i])
		}
	}
}
