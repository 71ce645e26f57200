// Package atlas maps tile indices of a square texture atlas to UV quads.
//
// The atlas image is a G×G grid of equal tiles. Tile i lives at
// row i/G, column i%G, counted from the image's top-left corner. UVs follow
// the renderer's bottom-left origin, so row 0 touches V = 1.0.
package atlas

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultGrid is the number of tiles along each side of the atlas.
const DefaultGrid = 16

// ErrTileRange is returned for tile indices outside [0, G²).
var ErrTileRange = errors.New("tile index out of range")

// Quad holds the UV of a tile's four corners, ordered
// bottom-left, top-left, top-right, bottom-right.
type Quad [4]mgl32.Vec2

// UnitQuad covers the whole texture; used when a face has no tile.
var UnitQuad = Quad{{0, 0}, {0, 1}, {1, 1}, {1, 0}}

// Atlas is a tile grid with an optional decoded image. Without an image the
// grid math still works and renderers fall back to block colors.
type Atlas struct {
	grid int
	img  image.Image
}

// New creates an atlas with the given grid size and no image.
func New(grid int) *Atlas {
	if grid <= 0 {
		grid = DefaultGrid
	}
	return &Atlas{grid: grid}
}

// WithImage returns an atlas backed by img. The image must be square and its
// side divisible by grid.
func WithImage(grid int, img image.Image) (*Atlas, error) {
	a := New(grid)
	b := img.Bounds()
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("atlas image %dx%d is not square", b.Dx(), b.Dy())
	}
	if b.Dx() == 0 || b.Dx()%a.grid != 0 {
		return nil, fmt.Errorf("atlas image side %d not divisible by grid %d", b.Dx(), a.grid)
	}
	a.img = img
	return a, nil
}

// Grid returns the number of tiles per side.
func (a *Atlas) Grid() int { return a.grid }

// Tiles returns the number of addressable tiles.
func (a *Atlas) Tiles() int { return a.grid * a.grid }

// Textured reports whether an image backs the atlas.
func (a *Atlas) Textured() bool { return a.img != nil }

// Image returns the backing image, or nil.
func (a *Atlas) Image() image.Image { return a.img }

// Cell returns the row and column of tile i.
func (a *Atlas) Cell(i int) (row, col int, err error) {
	if i < 0 || i >= a.Tiles() {
		return 0, 0, fmt.Errorf("tile %d (grid %d): %w", i, a.grid, ErrTileRange)
	}
	return i / a.grid, i % a.grid, nil
}

// TileUV returns the UV quad of tile i.
func (a *Atlas) TileUV(i int) (Quad, error) {
	row, col, err := a.Cell(i)
	if err != nil {
		return Quad{}, err
	}
	step := 1 / float32(a.grid)
	u0 := float32(col) * step
	u1 := float32(col+1) * step
	vTop := 1 - float32(row)*step
	vBottom := 1 - float32(row+1)*step
	return Quad{
		{u0, vBottom},
		{u0, vTop},
		{u1, vTop},
		{u1, vBottom},
	}, nil
}

// TileBounds returns the pixel rectangle of tile i in the backing image.
func (a *Atlas) TileBounds(i int) (image.Rectangle, error) {
	if a.img == nil {
		return image.Rectangle{}, errors.New("atlas has no image")
	}
	row, col, err := a.Cell(i)
	if err != nil {
		return image.Rectangle{}, err
	}
	b := a.img.Bounds()
	size := b.Dx() / a.grid
	origin := b.Min.Add(image.Pt(col*size, row*size))
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size, size))}, nil
}
