package learngl

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTexturedCube(t *testing.T) {
	require.Len(t, TexturedCube, 36*texturedCubeStride)
	for i := 0; i < 36; i++ {
		v := TexturedCube[i*texturedCubeStride : (i+1)*texturedCubeStride]
		for _, p := range v[:3] {
			require.True(t, p == 0.5 || p == -0.5, "vertex %d position %v not on the unit cube", i, v[:3])
		}
		for _, uv := range v[3:] {
			require.True(t, uv == 0 || uv == 1, "vertex %d texture coordinate %v", i, v[3:])
		}
	}
}

func TestCubePositions(t *testing.T) {
	pos := CubePositions()
	require.Len(t, pos, 36*3)
	for i := 0; i < 36; i++ {
		assert.Equal(t, TexturedCube[i*texturedCubeStride:i*texturedCubeStride+3], pos[i*3:i*3+3])
	}
	// Each face is two triangles: every triangle lies on one face plane.
	for tri := 0; tri < 12; tri++ {
		shared := 0
		for axis := 0; axis < 3; axis++ {
			a, b, c := pos[tri*9+axis], pos[tri*9+3+axis], pos[tri*9+6+axis]
			if a == b && b == c {
				shared++
			}
		}
		assert.Equal(t, 1, shared, "triangle %d", tri)
	}
}

func TestCubeFieldModel(t *testing.T) {
	// First cube is unrotated at the origin.
	if !CubeFieldModel(0).ApproxEqualThreshold(mgl32.Ident4(), tol) {
		t.Errorf("cube 0 model not identity: %v", CubeFieldModel(0))
	}
	axis := mgl32.Vec3{1, 0.3, 0.5}.Normalize()
	for i, pos := range CubeField {
		m := CubeFieldModel(i)
		// The cube's center lands on its field position.
		center := mgl32.TransformCoordinate(mgl32.Vec3{}, m)
		if diff := cmp.Diff(pos, center, approx); diff != "" {
			t.Errorf("cube %d center (-want +got):\n%s", i, diff)
		}
		// Points on the rotation axis only get translated.
		onAxis := mgl32.TransformCoordinate(axis, m)
		if diff := cmp.Diff(pos.Add(axis), onAxis, approx); diff != "" {
			t.Errorf("cube %d axis point (-want +got):\n%s", i, diff)
		}
		// Rotation angle recovered from the trace of the upper 3x3.
		m3 := m.Mat3()
		cos := (m3.Trace() - 1) / 2
		want := math32.Cos(mgl32.DegToRad(20 * float32(i)))
		assert.InDelta(t, want, cos, 1e-4, "cube %d", i)
	}
}
