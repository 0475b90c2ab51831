// Package scene holds the CPU side of the demo: the cube geometry and the
// per-frame transform composition for every object in the scene. Nothing in
// this package touches the GPU, so all of it can be verified with plain
// unit tests.
package scene

import (
	vkngmath "github.com/vkngwrapper/math"
)

// Vertex matches the pipeline's vertex input layout: attribute 0 is the
// position, attribute 1 the texture coordinates.
type Vertex struct {
	Position vkngmath.Vec3[float32]
	TexCoord vkngmath.Vec2[float32]
}

// CubeVertices returns the unit cube as 24 vertices, four per face.
// Vertices are duplicated per face because texture coordinates cannot be
// shared across faces.
//
//	     (-1,+1,+1)________________(+1,+1,+1)
//	              /|              /|
//	             / |             / |
//	            /  |            /  |
//	           /   |           /   |
//	(-1,-1,+1)/____|__________/(+1,-1,+1)
//	          |    |__________|____|
//	          |   /(-1,+1,-1) |    /(+1,+1,-1)
//	          |  /            |   /
//	          | /             |  /
//	          |/              | /
//	          /_______________|/
//	       (-1,-1,-1)       (+1,-1,-1)
func CubeVertices() []Vertex {
	return []Vertex{
		{vkngmath.Vec3[float32]{X: -1, Y: -1, Z: -1}, vkngmath.Vec2[float32]{X: 0, Y: 1}},
		{vkngmath.Vec3[float32]{X: -1, Y: 1, Z: -1}, vkngmath.Vec2[float32]{X: 0, Y: 0}},
		{vkngmath.Vec3[float32]{X: 1, Y: 1, Z: -1}, vkngmath.Vec2[float32]{X: 1, Y: 0}},
		{vkngmath.Vec3[float32]{X: 1, Y: -1, Z: -1}, vkngmath.Vec2[float32]{X: 1, Y: 1}},

		{vkngmath.Vec3[float32]{X: -1, Y: -1, Z: -1}, vkngmath.Vec2[float32]{X: 0, Y: 1}},
		{vkngmath.Vec3[float32]{X: -1, Y: -1, Z: 1}, vkngmath.Vec2[float32]{X: 0, Y: 0}},
		{vkngmath.Vec3[float32]{X: 1, Y: -1, Z: 1}, vkngmath.Vec2[float32]{X: 1, Y: 0}},
		{vkngmath.Vec3[float32]{X: 1, Y: -1, Z: -1}, vkngmath.Vec2[float32]{X: 1, Y: 1}},

		{vkngmath.Vec3[float32]{X: 1, Y: -1, Z: -1}, vkngmath.Vec2[float32]{X: 0, Y: 1}},
		{vkngmath.Vec3[float32]{X: 1, Y: -1, Z: 1}, vkngmath.Vec2[float32]{X: 1, Y: 1}},
		{vkngmath.Vec3[float32]{X: 1, Y: 1, Z: 1}, vkngmath.Vec2[float32]{X: 1, Y: 0}},
		{vkngmath.Vec3[float32]{X: 1, Y: 1, Z: -1}, vkngmath.Vec2[float32]{X: 0, Y: 0}},

		{vkngmath.Vec3[float32]{X: 1, Y: 1, Z: -1}, vkngmath.Vec2[float32]{X: 0, Y: 1}},
		{vkngmath.Vec3[float32]{X: 1, Y: 1, Z: 1}, vkngmath.Vec2[float32]{X: 0, Y: 0}},
		{vkngmath.Vec3[float32]{X: -1, Y: 1, Z: 1}, vkngmath.Vec2[float32]{X: 1, Y: 0}},
		{vkngmath.Vec3[float32]{X: -1, Y: 1, Z: -1}, vkngmath.Vec2[float32]{X: 1, Y: 1}},

		{vkngmath.Vec3[float32]{X: -1, Y: 1, Z: -1}, vkngmath.Vec2[float32]{X: 1, Y: 0}},
		{vkngmath.Vec3[float32]{X: -1, Y: 1, Z: 1}, vkngmath.Vec2[float32]{X: 0, Y: 0}},
		{vkngmath.Vec3[float32]{X: -1, Y: -1, Z: 1}, vkngmath.Vec2[float32]{X: 0, Y: 1}},
		{vkngmath.Vec3[float32]{X: -1, Y: -1, Z: -1}, vkngmath.Vec2[float32]{X: 1, Y: 1}},

		{vkngmath.Vec3[float32]{X: -1, Y: -1, Z: 1}, vkngmath.Vec2[float32]{X: 1, Y: 1}},
		{vkngmath.Vec3[float32]{X: 1, Y: -1, Z: 1}, vkngmath.Vec2[float32]{X: 0, Y: 1}},
		{vkngmath.Vec3[float32]{X: 1, Y: 1, Z: 1}, vkngmath.Vec2[float32]{X: 0, Y: 0}},
		{vkngmath.Vec3[float32]{X: -1, Y: 1, Z: 1}, vkngmath.Vec2[float32]{X: 1, Y: 0}},
	}
}

// CubeIndices returns the 36 indices describing the cube's 12 triangles,
// two per face, wound to face outward.
func CubeIndices() []uint32 {
	return []uint32{
		2, 0, 1, 2, 3, 0,
		4, 6, 5, 4, 7, 6,
		8, 10, 9, 8, 11, 10,
		12, 14, 13, 12, 15, 14,
		16, 18, 17, 16, 19, 18,
		20, 21, 22, 20, 22, 23,
	}
}
