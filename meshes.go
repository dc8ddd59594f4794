package learngl

import "github.com/go-gl/mathgl/mgl32"

// TexturedCube is a unit cube centered at the origin as 36 vertices of
// position (3 floats) followed by texture coordinate (2 floats), two
// triangles per face.
var TexturedCube = []float32{
	-0.5, -0.5, -0.5, 0, 0,
	0.5, -0.5, -0.5, 1, 0,
	0.5, 0.5, -0.5, 1, 1,
	0.5, 0.5, -0.5, 1, 1,
	-0.5, 0.5, -0.5, 0, 1,
	-0.5, -0.5, -0.5, 0, 0,

	-0.5, -0.5, 0.5, 0, 0,
	0.5, -0.5, 0.5, 1, 0,
	0.5, 0.5, 0.5, 1, 1,
	0.5, 0.5, 0.5, 1, 1,
	-0.5, 0.5, 0.5, 0, 1,
	-0.5, -0.5, 0.5, 0, 0,

	-0.5, 0.5, 0.5, 1, 0,
	-0.5, 0.5, -0.5, 1, 1,
	-0.5, -0.5, -0.5, 0, 1,
	-0.5, -0.5, -0.5, 0, 1,
	-0.5, -0.5, 0.5, 0, 0,
	-0.5, 0.5, 0.5, 1, 0,

	0.5, 0.5, 0.5, 1, 0,
	0.5, 0.5, -0.5, 1, 1,
	0.5, -0.5, -0.5, 0, 1,
	0.5, -0.5, -0.5, 0, 1,
	0.5, -0.5, 0.5, 0, 0,
	0.5, 0.5, 0.5, 1, 0,

	-0.5, -0.5, -0.5, 0, 1,
	0.5, -0.5, -0.5, 1, 1,
	0.5, -0.5, 0.5, 1, 0,
	0.5, -0.5, 0.5, 1, 0,
	-0.5, -0.5, 0.5, 0, 0,
	-0.5, -0.5, -0.5, 0, 1,

	-0.5, 0.5, -0.5, 0, 1,
	0.5, 0.5, -0.5, 1, 1,
	0.5, 0.5, 0.5, 1, 0,
	0.5, 0.5, 0.5, 1, 0,
	-0.5, 0.5, 0.5, 0, 0,
	-0.5, 0.5, -0.5, 0, 1,
}

const texturedCubeStride = 5

// CubePositions returns the vertex positions of [TexturedCube] without
// texture coordinates, 3 floats per vertex.
func CubePositions() []float32 {
	n := len(TexturedCube) / texturedCubeStride
	pos := make([]float32, 0, 3*n)
	for i := 0; i < n; i++ {
		v := TexturedCube[i*texturedCubeStride:]
		pos = append(pos, v[0], v[1], v[2])
	}
	return pos
}

// CubeField holds the world positions of the ten cubes drawn by the
// coordinate system and camera programs.
var CubeField = [10]mgl32.Vec3{
	{0, 0, 0},
	{2, 5, -15},
	{-1.5, -2.2, -2.5},
	{-3.8, -2, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3, -7.5},
	{1.3, -2, -2.5},
	{1.5, 2, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1, -1.5},
}

var cubeFieldAxis = mgl32.Vec3{1, 0.3, 0.5}.Normalize()

// CubeFieldModel returns the model matrix of the i'th cube of [CubeField]:
// translated to its position and rotated 20*i degrees about (1, 0.3, 0.5).
func CubeFieldModel(i int) mgl32.Mat4 {
	angle := mgl32.DegToRad(20 * float32(i))
	return mgl32.Translate3D(CubeField[i].Elem()).Mul4(mgl32.HomogRotate3D(angle, cubeFieldAxis))
}
