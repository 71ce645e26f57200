package gen

// Overlay is a sparse set of voxels placed on top of generated terrain,
// keyed by world position and naming a registered block.
type Overlay map[BlockPos]string

// Decorator produces an overlay for one chunk. It receives the chunk's
// column table so placement can follow heights and biomes. Decorators must be
// deterministic in (pos, columns) since chunks are regenerated on reload.
type Decorator interface {
	Decorate(pos ChunkPos, columns *ColumnTable) (Overlay, error)
}

// DecoratorFunc adapts a function to Decorator.
type DecoratorFunc func(pos ChunkPos, columns *ColumnTable) (Overlay, error)

func (f DecoratorFunc) Decorate(pos ChunkPos, columns *ColumnTable) (Overlay, error) {
	return f(pos, columns)
}

// Merge copies every voxel of src into o. Later overlays win on conflicts.
func (o Overlay) Merge(src Overlay) {
	for p, name := range src {
		o[p] = name
	}
}

// Within returns the voxels of o whose column lies inside chunk pos.
func (o Overlay) Within(pos ChunkPos) Overlay {
	out := make(Overlay)
	for p, name := range o {
		if ChunkPosOfBlock(p.X, p.Z) == pos {
			out[p] = name
		}
	}
	return out
}
