package mesh

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/OCharnyshevich/voxel-terrain/pkg/atlas"
	"github.com/OCharnyshevich/voxel-terrain/pkg/gamedata"
	"github.com/OCharnyshevich/voxel-terrain/pkg/world/gen"
)

// tintAmount is how strongly a biome tint colors the top of its surface.
const tintAmount = 0.5

// Builder computes chunk meshes by face culling over the terrain heightmap.
// Every column gets one top quad; walls are emitted only where a neighbour
// column is lower. Quads are never merged, so each block face keeps its own
// tile.
type Builder struct {
	terrain    *gen.Terrain
	blocks     *gamedata.BlockRegistry
	atlas      *atlas.Atlas
	decorators []gen.Decorator
}

// NewBuilder creates a Builder. A nil atlas is replaced by an untextured
// default grid. The decorators' overlays are merged into every chunk.
func NewBuilder(terrain *gen.Terrain, blocks *gamedata.BlockRegistry, at *atlas.Atlas, decorators ...gen.Decorator) *Builder {
	if at == nil {
		at = atlas.New(atlas.DefaultGrid)
	}
	return &Builder{
		terrain:    terrain,
		blocks:     blocks,
		atlas:      at,
		decorators: decorators,
	}
}

// Terrain returns the terrain the builder samples.
func (b *Builder) Terrain() *gen.Terrain { return b.terrain }

// material is the resolved surface of one biome.
type material struct {
	top, side atlas.Quad
	topColor  mgl32.Vec4
	sideColor mgl32.Vec4
}

// Build computes the mesh of chunk pos. A biome or block missing from the
// catalogs aborts the build with gamedata.ErrNotFound.
func (b *Builder) Build(pos gen.ChunkPos) (*Mesh, error) {
	cols := b.terrain.Columns(pos)

	materials, err := b.resolveMaterials(&cols)
	if err != nil {
		return nil, fmt.Errorf("build chunk %v: %w", pos, err)
	}

	overlay, err := b.decorate(pos, &cols)
	if err != nil {
		return nil, fmt.Errorf("build chunk %v: %w", pos, err)
	}

	ox, oz := pos.Origin()
	m := &Mesh{
		Pos:      pos,
		Origin:   mgl32.Vec3{float32(ox), 0, float32(oz)},
		Textured: b.atlas.Textured(),
		Columns:  cols,
	}

	for x := 0; x < gen.ChunkSize; x++ {
		for z := 0; z < gen.ChunkSize; z++ {
			col := cols[x][z]
			mat := materials[col.Biome]
			h := col.Height

			if _, covered := overlay[gen.BlockPos{X: ox + x, Y: h, Z: oz + z}]; !covered {
				m.addQuad([3]int{x, h - 1, z}, &dirPosY, mat.top, mat.topColor)
			}

			for _, dir := range sideDirections {
				nx, nz := x+dir.dx, z+dir.dz
				nh := b.columnHeight(&cols, ox, oz, nx, nz)
				for y := nh; y < h; y++ {
					if _, covered := overlay[gen.BlockPos{X: ox + nx, Y: y, Z: oz + nz}]; covered {
						continue
					}
					m.addQuad([3]int{x, y, z}, dir, mat.side, mat.sideColor)
				}
			}
		}
	}

	if err := b.meshOverlay(m, &cols, overlay); err != nil {
		return nil, fmt.Errorf("build chunk %v: %w", pos, err)
	}

	m.DominantBiome = b.dominantBiome(&cols)
	return m, nil
}

// columnHeight reads local column (x, z) from the table, or queries the
// terrain when it lies in a neighbouring chunk.
func (b *Builder) columnHeight(cols *gen.ColumnTable, ox, oz, x, z int) int {
	if x >= 0 && x < gen.ChunkSize && z >= 0 && z < gen.ChunkSize {
		return cols[x][z].Height
	}
	return b.terrain.HeightAt(ox+x, oz+z)
}

func (b *Builder) resolveMaterials(cols *gen.ColumnTable) (map[string]*material, error) {
	out := make(map[string]*material)
	for x := range cols {
		for z := range cols[x] {
			name := cols[x][z].Biome
			if _, ok := out[name]; ok {
				continue
			}
			biome, err := b.terrain.Biomes().Get(name)
			if err != nil {
				return nil, err
			}
			mat, err := b.material(biome)
			if err != nil {
				return nil, err
			}
			out[name] = mat
		}
	}
	return out, nil
}

func (b *Builder) material(biome gamedata.Biome) (*material, error) {
	surface, err := b.blocks.Get(biome.Surface)
	if err != nil {
		return nil, fmt.Errorf("biome %q surface: %w", biome.Name, err)
	}
	if _, err := b.blocks.Get(biome.Subsurface); err != nil {
		return nil, fmt.Errorf("biome %q subsurface: %w", biome.Name, err)
	}
	top, err := b.faceUV(surface, gamedata.FaceTop)
	if err != nil {
		return nil, err
	}
	side, err := b.faceUV(surface, gamedata.FaceSide)
	if err != nil {
		return nil, err
	}

	topColor := surface.Color
	if biome.Tint != nil {
		topColor = gamedata.Tinted(topColor, *biome.Tint, tintAmount)
	}
	return &material{
		top:       top,
		side:      side,
		topColor:  vec4(topColor),
		sideColor: vec4(surface.Color),
	}, nil
}

// faceUV returns the atlas quad of a block face, or the unit quad when the
// block has no tile for it.
func (b *Builder) faceUV(block gamedata.Block, face gamedata.Face) (atlas.Quad, error) {
	tile, ok, err := block.FaceTile(face)
	if err != nil {
		return atlas.Quad{}, err
	}
	if !ok {
		return atlas.UnitQuad, nil
	}
	uv, err := b.atlas.TileUV(tile)
	if err != nil {
		return atlas.Quad{}, fmt.Errorf("block %q %s: %w", block.Name, face, err)
	}
	return uv, nil
}

func (b *Builder) decorate(pos gen.ChunkPos, cols *gen.ColumnTable) (gen.Overlay, error) {
	merged := make(gen.Overlay)
	for _, d := range b.decorators {
		o, err := d.Decorate(pos, cols)
		if err != nil {
			return nil, fmt.Errorf("decorate: %w", err)
		}
		merged.Merge(o.Within(pos))
	}
	for p, name := range merged {
		if _, err := b.blocks.Get(name); err != nil {
			return nil, fmt.Errorf("decoration at %v: %w", p, err)
		}
	}
	return merged, nil
}

// meshOverlay emits the visible faces of every overlay voxel. A face is
// hidden by another overlay voxel or by terrain below a column's height.
func (b *Builder) meshOverlay(m *Mesh, cols *gen.ColumnTable, overlay gen.Overlay) error {
	if len(overlay) == 0 {
		return nil
	}
	ox, oz := m.Pos.Origin()
	uvs := make(map[string]*[6]atlas.Quad)

	// Emit in a stable order so identical input yields identical buffers.
	for _, p := range sortedVoxels(overlay) {
		name := overlay[p]
		block, err := b.blocks.Get(name)
		if err != nil {
			return err
		}
		faces, ok := uvs[name]
		if !ok {
			faces = new([6]atlas.Quad)
			for i, dir := range cubeDirections {
				if faces[i], err = b.faceUV(block, dir.face); err != nil {
					return err
				}
			}
			uvs[name] = faces
		}
		rgba := vec4(block.Color)

		for i, dir := range cubeDirections {
			n := gen.BlockPos{X: p.X + dir.dx, Y: p.Y + dir.dy, Z: p.Z + dir.dz}
			if _, covered := overlay[n]; covered {
				continue
			}
			if n.Y < b.columnHeight(cols, ox, oz, n.X-ox, n.Z-oz) {
				continue
			}
			m.addQuad([3]int{p.X - ox, p.Y, p.Z - oz}, dir, faces[i], rgba)
		}
	}
	return nil
}

// dominantBiome returns the most frequent biome of the table. Ties go to the
// biome registered first.
func (b *Builder) dominantBiome(cols *gen.ColumnTable) string {
	counts := make(map[string]int)
	for x := range cols {
		for z := range cols[x] {
			counts[cols[x][z].Biome]++
		}
	}
	biomes := b.terrain.Biomes()
	best, bestCount := "", -1
	for name, n := range counts {
		if n > bestCount || (n == bestCount && biomes.Order(name) < biomes.Order(best)) {
			best, bestCount = name, n
		}
	}
	return best
}

func vec4(c color.RGBA) mgl32.Vec4 {
	return mgl32.Vec4{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
