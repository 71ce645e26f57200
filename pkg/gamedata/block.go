package gamedata

import (
	"fmt"
	"image/color"
)

// Face selects which tile of a block is used.
type Face int

const (
	FaceTop Face = iota
	FaceSide
	FaceBottom
)

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceSide:
		return "side"
	case FaceBottom:
		return "bottom"
	default:
		return fmt.Sprintf("face(%d)", int(f))
	}
}

// Tile references one atlas tile. The zero value is NoTile, so a face
// left unset in a Block literal has no tile rather than tile 0.
type Tile int

// NoTile marks a face without an atlas tile.
const NoTile Tile = 0

// TileAt returns the reference to atlas tile i.
func TileAt(i int) Tile { return Tile(i + 1) }

// Index returns the atlas index of t. ok is false for NoTile.
func (t Tile) Index() (i int, ok bool) {
	return int(t) - 1, t != NoTile
}

// Block is a static block definition. Faces without a tile fall back to the
// whole texture.
type Block struct {
	Name        string
	DisplayName string
	Color       color.RGBA
	Top         Tile
	Side        Tile
	Bottom      Tile
}

func (b Block) Key() string { return b.Name }

// FaceTile returns the atlas index for face. ok is false when the block
// defines no tile for that face.
func (b Block) FaceTile(face Face) (index int, ok bool, err error) {
	var t Tile
	switch face {
	case FaceTop:
		t = b.Top
	case FaceSide:
		t = b.Side
	case FaceBottom:
		t = b.Bottom
	default:
		return 0, false, fmt.Errorf("block %q: %w: %s", b.Name, ErrInvalidFace, face)
	}
	index, ok = t.Index()
	return index, ok, nil
}

// BlockRegistry is the block catalog.
type BlockRegistry = Registry[Block]

// NewBlockRegistry creates an empty block catalog.
func NewBlockRegistry() *BlockRegistry {
	return NewRegistry[Block]("block")
}
