package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"cubescene/scene"
)

// assets is everything read from disk before any Vulkan object exists.
type assets struct {
	vertexShader   []byte
	fragmentShader []byte

	texturePixels []byte
	textureWidth  int
	textureHeight int

	vertices []scene.Vertex
	indices  []uint32
}

// loadAssets reads the shaders, the texture and the optional mesh
// concurrently. Shaders are loaded pre-compiled; run go generate to
// rebuild them from the GLSL sources.
func (app *App) loadAssets() error {
	var group errgroup.Group

	group.Go(func() error {
		data, err := os.ReadFile(filepath.Join(app.config.ShaderDir, "cube.vert.spv"))
		if err != nil {
			return errors.Wrap(err, "vertex shader")
		}
		if len(data) == 0 || len(data)%4 != 0 {
			return errors.Errorf("vertex shader: %d bytes is not valid SPIR-V", len(data))
		}
		app.assets.vertexShader = data
		return nil
	})

	group.Go(func() error {
		data, err := os.ReadFile(filepath.Join(app.config.ShaderDir, "cube.frag.spv"))
		if err != nil {
			return errors.Wrap(err, "fragment shader")
		}
		if len(data) == 0 || len(data)%4 != 0 {
			return errors.Errorf("fragment shader: %d bytes is not valid SPIR-V", len(data))
		}
		app.assets.fragmentShader = data
		return nil
	})

	group.Go(func() error {
		pixels, width, height, err := loadTexturePixels(app.config.TexturePath)
		if err != nil {
			return err
		}
		app.assets.texturePixels = pixels
		app.assets.textureWidth = width
		app.assets.textureHeight = height
		return nil
	})

	group.Go(func() error {
		if app.config.MeshPath == "" {
			app.assets.vertices = scene.CubeVertices()
			app.assets.indices = scene.CubeIndices()
			return nil
		}

		vertices, indices, err := loadMesh(app.config.MeshPath)
		if err != nil {
			return err
		}
		app.assets.vertices = vertices
		app.assets.indices = indices
		return nil
	})

	return group.Wait()
}

// loadTexturePixels decodes a PNG into tightly packed 8-bit RGBA rows.
func loadTexturePixels(path string) ([]byte, int, int, error) {
	imageBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, errors.Wrapf(err, "texture %s", path)
	}

	decodedImage, err := png.Decode(bytes.NewBuffer(imageBytes))
	if err != nil {
		return nil, 0, 0, errors.Wrapf(err, "texture %s", path)
	}

	bounds := decodedImage.Bounds()
	dims := bounds.Size()

	pixels := make([]byte, 0, dims.X*dims.Y*4)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := decodedImage.At(x, y).RGBA()
			pixels = append(pixels, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}

	return pixels, dims.X, dims.Y, nil
}
