package stream

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/voxel-terrain/pkg/world/gen"
	"github.com/OCharnyshevich/voxel-terrain/pkg/world/mesh"
)

// ChunkBuilder computes the mesh of a chunk.
type ChunkBuilder interface {
	Build(pos gen.ChunkPos) (*mesh.Mesh, error)
}

// Chunk is a resident chunk. ID keys the renderer-side resources the Scene
// creates for it.
type Chunk struct {
	Pos     gen.ChunkPos
	ID      uuid.UUID
	Mesh    *mesh.Mesh
	Visible bool
}

// Scene publishes built chunks to a renderer. Attach is called once a chunk
// is fully built, Detach before its mesh is released.
type Scene interface {
	Attach(c *Chunk)
	Detach(c *Chunk)
	SetVisible(c *Chunk, visible bool)
}

// LogScene is a Scene that only logs, used by headless runs.
type LogScene struct {
	log *slog.Logger
}

// NewLogScene creates a LogScene writing debug records to log.
func NewLogScene(log *slog.Logger) *LogScene {
	return &LogScene{log: log}
}

func (s *LogScene) Attach(c *Chunk) {
	s.log.Debug("chunk attached",
		"x", c.Pos.X, "z", c.Pos.Z, "id", c.ID,
		"quads", c.Mesh.QuadCount(), "biome", c.Mesh.DominantBiome)
}

func (s *LogScene) Detach(c *Chunk) {
	s.log.Debug("chunk detached", "x", c.Pos.X, "z", c.Pos.Z, "id", c.ID)
}

func (s *LogScene) SetVisible(c *Chunk, visible bool) {
	s.log.Debug("chunk visibility", "x", c.Pos.X, "z", c.Pos.Z, "visible", visible)
}
