package gen

import "math"

// ChunkSize is the number of columns along each horizontal side of a chunk.
const ChunkSize = 16

// ChunkPos identifies a chunk by its X and Z coordinates.
type ChunkPos struct{ X, Z int }

// ChunkPosAt returns the chunk containing world position (x, z).
func ChunkPosAt(x, z float64) ChunkPos {
	return ChunkPos{
		X: int(math.Floor(x / ChunkSize)),
		Z: int(math.Floor(z / ChunkSize)),
	}
}

// ChunkPosOfBlock returns the chunk containing world column (x, z).
func ChunkPosOfBlock(x, z int) ChunkPos {
	return ChunkPos{X: floorDiv(x, ChunkSize), Z: floorDiv(z, ChunkSize)}
}

// Origin returns the world coordinates of the chunk's (0, 0) column.
func (p ChunkPos) Origin() (x, z int) {
	return p.X * ChunkSize, p.Z * ChunkSize
}

// DistSq returns the squared chunk-grid distance between p and o.
func (p ChunkPos) DistSq(o ChunkPos) int {
	dx := p.X - o.X
	dz := p.Z - o.Z
	return dx*dx + dz*dz
}

// BlockPos is a world voxel position.
type BlockPos struct {
	X, Y, Z int
}

// Column is the generated state of one world column.
type Column struct {
	Height int
	Biome  string
}

// ColumnTable holds a chunk's columns indexed [x][z] in local coordinates.
type ColumnTable [ChunkSize][ChunkSize]Column

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
