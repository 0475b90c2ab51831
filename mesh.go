package main

import (
	"github.com/cockroachdb/errors"
	"github.com/g3n/engine/loader/obj"
	vkngmath "github.com/vkngwrapper/math"

	"cubescene/scene"
)

type meshBuilder struct {
	vertices []scene.Vertex
	indices  []uint32
}

func (b *meshBuilder) addVertex(decoder *obj.Decoder, uniqueVertices map[int]uint32, face obj.Face, faceIndex int) {
	vertInd := face.Vertices[faceIndex]
	index, vertexExists := uniqueVertices[vertInd]

	if !vertexExists {
		vert := scene.Vertex{Position: vkngmath.Vec3[float32]{
			X: decoder.Vertices[vertInd*3],
			Y: decoder.Vertices[vertInd*3+1],
			Z: decoder.Vertices[vertInd*3+2],
		}}

		uvInd := face.Uvs[faceIndex]
		vert.TexCoord = vkngmath.Vec2[float32]{
			X: decoder.Uvs[uvInd*2],
			Y: 1.0 - decoder.Uvs[uvInd*2+1],
		}

		index = uint32(len(b.vertices))
		b.vertices = append(b.vertices, vert)
		uniqueVertices[vertInd] = index
	}

	b.indices = append(b.indices, index)
}

// loadMesh reads an OBJ file into the vertex layout the pipeline expects.
// Faces with more than three corners are triangulated as a fan.
func loadMesh(path string) ([]scene.Vertex, []uint32, error) {
	decoder, err := obj.Decode(path, "")
	if err != nil {
		return nil, nil, errors.Wrapf(err, "loadMesh %s", path)
	}

	builder := &meshBuilder{}
	uniqueVertices := make(map[int]uint32)

	for _, decodedObj := range decoder.Objects {
		for _, face := range decodedObj.Faces {
			for i := 2; i < len(face.Vertices); i++ {
				builder.addVertex(decoder, uniqueVertices, face, 0)
				builder.addVertex(decoder, uniqueVertices, face, i-1)
				builder.addVertex(decoder, uniqueVertices, face, i)
			}
		}
	}

	if len(builder.indices) == 0 {
		return nil, nil, errors.Errorf("loadMesh %s: no faces", path)
	}

	return builder.vertices, builder.indices, nil
}
