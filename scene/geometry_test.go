package scene

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeVertexCount(t *testing.T) {
	assert.Len(t, CubeVertices(), 24)
}

func TestCubeIndexCount(t *testing.T) {
	indices := CubeIndices()
	assert.Len(t, indices, 36, "12 triangles, 3 indices each")
}

func TestCubeIndicesInRange(t *testing.T) {
	vertexCount := uint32(len(CubeVertices()))
	for i, index := range CubeIndices() {
		assert.Lessf(t, index, vertexCount, "index %d out of range", i)
	}
}

func TestCubeFacesStayWithinQuad(t *testing.T) {
	// Each face is four consecutive vertices; its six indices must not
	// reach into another face's quad, or UV seams would bleed.
	indices := CubeIndices()
	for face := 0; face < 6; face++ {
		for i := 0; i < 6; i++ {
			index := indices[face*6+i]
			assert.Equal(t, face, int(index)/4, "face %d index %d", face, index)
		}
	}
}

func TestCubeVertexData(t *testing.T) {
	for i, v := range CubeVertices() {
		for axis, p := range []float32{v.Position.X, v.Position.Y, v.Position.Z} {
			require.Contains(t, []float32{-1, 1}, p, "vertex %d axis %d", i, axis)
		}
		assert.Contains(t, []float32{0, 1}, v.TexCoord.X, "vertex %d u", i)
		assert.Contains(t, []float32{0, 1}, v.TexCoord.Y, "vertex %d v", i)
	}
}

func TestVertexStride(t *testing.T) {
	// Position vec3 + texcoord vec2, tightly packed.
	assert.Equal(t, uintptr(20), unsafe.Sizeof(Vertex{}))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(Vertex{}.TexCoord))
}
