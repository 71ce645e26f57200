package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/OCharnyshevich/voxel-terrain/pkg/gamedata"
)

// direction describes one face of a unit cell. Corners are offsets from the
// cell's minimum corner, ordered bottom-left, bottom-right, top-right,
// top-left as seen from outside the face, so (0,1,2) and (0,2,3) wind
// counter-clockwise. Side faces are upright; top and bottom faces have -Z
// as texture up.
type direction struct {
	dx, dy, dz int
	normal     mgl32.Vec3
	corners    [4][3]float32
	face       gamedata.Face
}

// cornerUV maps corner i to its index in atlas.Quad, which lists
// bottom-left, top-left, top-right, bottom-right.
var cornerUV = [4]int{0, 3, 2, 1}

var (
	dirPosX = direction{
		dx: 1, normal: mgl32.Vec3{1, 0, 0}, face: gamedata.FaceSide,
		corners: [4][3]float32{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	}
	dirNegX = direction{
		dx: -1, normal: mgl32.Vec3{-1, 0, 0}, face: gamedata.FaceSide,
		corners: [4][3]float32{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	}
	dirPosZ = direction{
		dz: 1, normal: mgl32.Vec3{0, 0, 1}, face: gamedata.FaceSide,
		corners: [4][3]float32{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	}
	dirNegZ = direction{
		dz: -1, normal: mgl32.Vec3{0, 0, -1}, face: gamedata.FaceSide,
		corners: [4][3]float32{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
	}
	dirPosY = direction{
		dy: 1, normal: mgl32.Vec3{0, 1, 0}, face: gamedata.FaceTop,
		corners: [4][3]float32{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}},
	}
	dirNegY = direction{
		dy: -1, normal: mgl32.Vec3{0, -1, 0}, face: gamedata.FaceBottom,
		corners: [4][3]float32{{1, 0, 1}, {0, 0, 1}, {0, 0, 0}, {1, 0, 0}},
	}
)

var (
	sideDirections = [4]*direction{&dirPosX, &dirNegX, &dirPosZ, &dirNegZ}
	cubeDirections = [6]*direction{&dirPosX, &dirNegX, &dirPosZ, &dirNegZ, &dirPosY, &dirNegY}
)
