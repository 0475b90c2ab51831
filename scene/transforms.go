package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// The cubes in draw order. The four struts are cubes squashed into thin
// bars; the orbiters circle the below-right cube while spinning on their
// own axis.
const (
	CubeCenter = iota
	CubeRight
	CubeLeft
	CubeBelowRight
	CubeBelowLeft
	CubeOrbiterA
	CubeOrbiterB
	CubeTop
	StrutVertical
	StrutHorizontal
	StrutRight
	StrutLeft

	// CubeCount is the number of objects drawn each frame.
	CubeCount = 12
)

// Animation constants. Speeds are in radians per second.
const (
	tiltAngle      = -math.Pi * 0.1
	spinSpeed      = 1.0
	topSpinSpeed   = -0.5
	orbitRadius    = 1.0
	orbitSpeed     = 0.3
	localSpinSpeed = 0.5
)

// clipCorrection converts GL clip space to Vulkan clip space: Y points
// down and depth runs 0..1 instead of -1..1.
var clipCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, -1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// ModelTransforms computes the world matrix of every cube at time t,
// given in seconds since the scene started. Matrices compose column-vector
// style: the rightmost factor applies to the object first.
func ModelTransforms(t float64) []mgl32.Mat4 {
	ft := float32(t)

	tilt := mgl32.HomogRotate3DX(tiltAngle)
	// Every object except the top cube shares the central cube's spin.
	base := tilt.Mul4(mgl32.HomogRotate3DY(ft * spinSpeed))
	topBase := tilt.Mul4(mgl32.HomogRotate3DY(ft * topSpinSpeed))

	m := make([]mgl32.Mat4, CubeCount)
	m[CubeCenter] = base
	m[CubeRight] = base.Mul4(mgl32.Translate3D(3, 0, 0))
	m[CubeLeft] = base.Mul4(mgl32.Translate3D(-3, 0, 0))
	m[CubeBelowRight] = base.Mul4(mgl32.Translate3D(3, -3, 0))
	m[CubeBelowLeft] = base.Mul4(mgl32.Translate3D(-3, -4, 0))
	m[CubeTop] = topBase.Mul4(mgl32.Translate3D(0, 5, 0))

	localSpin := mgl32.HomogRotate3DY(ft * localSpinSpeed)
	orbitA := mgl32.Translate3D(orbitRadius, 0, 0).Mul4(mgl32.HomogRotate3DY(ft * orbitSpeed))
	orbitB := mgl32.Translate3D(orbitRadius, 0, 0).Mul4(mgl32.HomogRotate3DY(ft*orbitSpeed + math.Pi))
	m[CubeOrbiterA] = m[CubeBelowRight].Mul4(localSpin).Mul4(orbitA).Mul4(m[CubeBelowLeft])
	m[CubeOrbiterB] = m[CubeBelowRight].Mul4(localSpin).Mul4(orbitB).Mul4(m[CubeBelowLeft])

	thinTall := mgl32.Scale3D(0.1, 2, 0.1)
	m[StrutVertical] = base.Mul4(thinTall).Mul4(mgl32.Translate3D(0, 1, 0))
	m[StrutHorizontal] = base.Mul4(mgl32.Scale3D(4, 0.1, 0.1))
	m[StrutRight] = base.Mul4(thinTall).Mul4(mgl32.Translate3D(30, -1, 0))
	m[StrutLeft] = base.Mul4(thinTall).Mul4(mgl32.Translate3D(-30, -1, 0))

	return m
}

// ViewProjection returns the combined view-projection matrix for the given
// aspect ratio, including the Vulkan clip correction. The camera sits 30
// units in front of the scene, one unit below center.
func ViewProjection(aspect float32) mgl32.Mat4 {
	proj := mgl32.Perspective(math.Pi/4, aspect, 0.1, 100)
	view := mgl32.LookAt(
		0, -1, -30,
		0, 0, 0,
		0, -1, 0,
	)
	return clipCorrection.Mul4(proj).Mul4(view)
}

// WorldViewProjections composes the per-draw transform of every cube for
// one frame. The result is indexed by the Cube* constants and has exactly
// CubeCount entries; the renderer issues one draw call per entry.
func WorldViewProjections(t float64, aspect float32) []mgl32.Mat4 {
	vp := ViewProjection(aspect)
	models := ModelTransforms(t)

	wvp := make([]mgl32.Mat4, len(models))
	for i, model := range models {
		wvp[i] = vp.Mul4(model)
	}
	return wvp
}
