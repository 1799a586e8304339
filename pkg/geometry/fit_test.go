package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitAffineRecoversKnownTransform(t *testing.T) {
	want := Translation(40, -15).Compose(Scaling(2.5, 2.5))

	src := []Point2D{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 80}, {X: 0, Y: 80}, {X: 37, Y: 61}}
	dst := make([]Point2D, len(src))
	for i, p := range src {
		dst[i] = want.Apply(p)
	}

	got, err := FitAffine(src, dst)
	require.NoError(t, err)

	assert.InDelta(t, want.A, got.A, 1e-9)
	assert.InDelta(t, want.B, got.B, 1e-9)
	assert.InDelta(t, want.TX, got.TX, 1e-9)
	assert.InDelta(t, want.C, got.C, 1e-9)
	assert.InDelta(t, want.D, got.D, 1e-9)
	assert.InDelta(t, want.TY, got.TY, 1e-9)
}

func TestFitAffineExactWithThreePairs(t *testing.T) {
	src := []Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	dst := []Point2D{{X: 5, Y: 5}, {X: 7, Y: 5}, {X: 5, Y: 7}}

	got, err := FitAffine(src, dst)
	require.NoError(t, err)

	for i := range src {
		mapped := got.Apply(src[i])
		assert.InDelta(t, dst[i].X, mapped.X, 1e-9)
		assert.InDelta(t, dst[i].Y, mapped.Y, 1e-9)
	}
}

func TestFitAffineInputValidation(t *testing.T) {
	_, err := FitAffine([]Point2D{{}, {}}, []Point2D{{}, {}})
	assert.Error(t, err)

	_, err = FitAffine([]Point2D{{}, {}, {}}, []Point2D{{}, {}})
	assert.Error(t, err)
}
