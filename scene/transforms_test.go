package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMat4InDelta(t *testing.T, expected, actual mgl32.Mat4, delta float64) {
	t.Helper()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, expected[i], actual[i], delta, "element %d", i)
	}
}

func TestModelTransformCount(t *testing.T) {
	assert.Len(t, ModelTransforms(1.25), CubeCount)
	assert.Len(t, WorldViewProjections(1.25, 4.0/3.0), CubeCount)
}

func TestTransformsDeterministic(t *testing.T) {
	// The frame for time T must equal deterministic recomputation from
	// the same formulas.
	for _, tm := range []float64{0, 0.5, 2.75, 1000} {
		first := WorldViewProjections(tm, 16.0/9.0)
		second := WorldViewProjections(tm, 16.0/9.0)
		assert.Equal(t, first, second, "t=%v", tm)
	}
}

func TestTranslationComposesAfterRotation(t *testing.T) {
	// The side cubes translate in the scene's rotating frame: moving the
	// local origin through the right cube's transform must land on the
	// same point as moving (3,0,0) through the central cube's transform.
	models := ModelTransforms(1.7)

	origin := mgl32.Vec4{0, 0, 0, 1}
	viaRight := models[CubeRight].Mul4x1(origin)
	viaCenter := models[CubeCenter].Mul4x1(mgl32.Vec4{3, 0, 0, 1})

	for i := 0; i < 4; i++ {
		assert.InDelta(t, viaCenter[i], viaRight[i], 1e-5)
	}
}

func TestSideCubesShareCentralSpin(t *testing.T) {
	models := ModelTransforms(0.9)
	base := models[CubeCenter]

	assertMat4InDelta(t, base.Mul4(mgl32.Translate3D(-3, 0, 0)), models[CubeLeft], 1e-6)
	assertMat4InDelta(t, base.Mul4(mgl32.Translate3D(3, -3, 0)), models[CubeBelowRight], 1e-6)
	assertMat4InDelta(t, base.Mul4(mgl32.Translate3D(-3, -4, 0)), models[CubeBelowLeft], 1e-6)
}

func TestRestPose(t *testing.T) {
	// At t=0 every spin angle is zero, so the central cube reduces to the
	// fixed X tilt and the top cube to the tilt plus its offset.
	models := ModelTransforms(0)
	tilt := mgl32.HomogRotate3DX(float32(-math.Pi * 0.1))

	assertMat4InDelta(t, tilt, models[CubeCenter], 1e-6)
	assertMat4InDelta(t, tilt.Mul4(mgl32.Translate3D(0, 5, 0)), models[CubeTop], 1e-6)
}

func TestTopCubeCounterRotates(t *testing.T) {
	// The top cube spins at half speed in the opposite direction, so away
	// from t=0 its orientation must diverge from the shared one.
	models := ModelTransforms(1.3)
	topAligned := models[CubeCenter].Mul4(mgl32.Translate3D(0, 5, 0))
	assert.NotEqual(t, topAligned, models[CubeTop])
}

func TestOrbitersOppose(t *testing.T) {
	// Orbiter B trails A by half a revolution; the two transforms must
	// never coincide.
	for _, tm := range []float64{0, 0.25, 3.1} {
		models := ModelTransforms(tm)
		assert.NotEqual(t, models[CubeOrbiterA], models[CubeOrbiterB], "t=%v", tm)
	}
}

func TestStrutScale(t *testing.T) {
	// A strut's world matrix embeds its scale: the length of each basis
	// column equals the scale factor regardless of rotation.
	models := ModelTransforms(0.4)

	for name, tc := range map[string]struct {
		index int
		scale [3]float32
	}{
		"vertical":   {StrutVertical, [3]float32{0.1, 2, 0.1}},
		"horizontal": {StrutHorizontal, [3]float32{4, 0.1, 0.1}},
		"right":      {StrutRight, [3]float32{0.1, 2, 0.1}},
		"left":       {StrutLeft, [3]float32{0.1, 2, 0.1}},
	} {
		m := models[tc.index]
		for axis := 0; axis < 3; axis++ {
			col := m.Col(axis)
			length := math.Sqrt(float64(col[0]*col[0] + col[1]*col[1] + col[2]*col[2]))
			assert.InDelta(t, float64(tc.scale[axis]), length, 1e-5, "%s axis %d", name, axis)
		}
	}
}

func TestViewProjectionFramesScene(t *testing.T) {
	vp := ViewProjection(16.0 / 9.0)

	clip := vp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	require.Greater(t, clip.W(), float32(0), "scene center behind camera")

	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	ndcZ := clip.Z() / clip.W()
	assert.LessOrEqual(t, math.Abs(float64(ndcX)), 1.0)
	assert.LessOrEqual(t, math.Abs(float64(ndcY)), 1.0)
	assert.GreaterOrEqual(t, ndcZ, float32(0), "Vulkan depth range starts at 0")
	assert.LessOrEqual(t, ndcZ, float32(1))
}

func TestWorldViewProjectionComposition(t *testing.T) {
	const tm, aspect = 2.2, 1.5

	vp := ViewProjection(aspect)
	models := ModelTransforms(tm)
	wvp := WorldViewProjections(tm, aspect)

	for i := 0; i < CubeCount; i++ {
		assertMat4InDelta(t, vp.Mul4(models[i]), wvp[i], 1e-6)
	}
}
