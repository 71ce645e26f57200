// Package mesh turns generated terrain into renderable chunk buffers.
//
// Building is pure: a Mesh is plain slices computed from the terrain and
// catalogs, with no renderer state. Publishing it is the caller's job.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OCharnyshevich/voxel-terrain/pkg/atlas"
	"github.com/OCharnyshevich/voxel-terrain/pkg/world/gen"
)

// Mesh holds the buffers of one chunk. Vertex positions are local to Origin.
// A Mesh must not be modified after Build returns it.
type Mesh struct {
	Pos    gen.ChunkPos
	Origin mgl32.Vec3

	Vertices []mgl32.Vec3
	Normals  []mgl32.Vec3
	UVs      []mgl32.Vec2
	Colors   []mgl32.Vec4 // fallback block colors, used when Textured is false
	Indices  []uint32

	// Textured reports whether UVs address a loaded atlas image.
	Textured bool

	DominantBiome string
	Columns       gen.ColumnTable
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// QuadCount returns the number of emitted quads.
func (m *Mesh) QuadCount() int { return len(m.Vertices) / 4 }

// Triangles calls fn with every triangle in world space until fn returns
// false. Collision layers derive their shapes from this walk.
func (m *Mesh) Triangles(fn func(a, b, c mgl32.Vec3) bool) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Add(m.Origin)
		b := m.Vertices[m.Indices[i+1]].Add(m.Origin)
		c := m.Vertices[m.Indices[i+2]].Add(m.Origin)
		if !fn(a, b, c) {
			return
		}
	}
}

func (m *Mesh) addQuad(cell [3]int, dir *direction, uv atlas.Quad, color mgl32.Vec4) {
	base := uint32(len(m.Vertices))
	for i, off := range dir.corners {
		m.Vertices = append(m.Vertices, mgl32.Vec3{
			float32(cell[0]) + off[0],
			float32(cell[1]) + off[1],
			float32(cell[2]) + off[2],
		})
		m.Normals = append(m.Normals, dir.normal)
		m.UVs = append(m.UVs, uv[cornerUV[i]])
		m.Colors = append(m.Colors, color)
	}
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
