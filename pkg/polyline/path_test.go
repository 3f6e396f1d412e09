package polyline

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathLength(t *testing.T) {
	p := Path{{0, 0}, {3, 4}, {3, 10}}
	assert.InDelta(t, 11.0, p.Length(), 1e-9)
	assert.Equal(t, 0.0, Path{{5, 5}}.Length())
}

func TestPointAt(t *testing.T) {
	p := Path{{0, 0}, {10, 0}, {10, 10}}

	t.Run("zero progress returns the first anchor", func(t *testing.T) {
		assert.Equal(t, Point{0, 0}, p.PointAt(0))
	})

	t.Run("interpolates inside a segment", func(t *testing.T) {
		got := p.PointAt(15)
		assert.InDelta(t, 10.0, got.X, 1e-9)
		assert.InDelta(t, 5.0, got.Y, 1e-9)
	})

	t.Run("segment boundary", func(t *testing.T) {
		assert.Equal(t, Point{10, 0}, p.PointAt(10))
	})

	t.Run("full length and beyond return the last anchor", func(t *testing.T) {
		assert.Equal(t, Point{10, 10}, p.PointAt(p.Length()))
		assert.Equal(t, Point{10, 10}, p.PointAt(1e6))
	})

	t.Run("zero length segments are skipped", func(t *testing.T) {
		dup := Path{{0, 0}, {0, 0}, {4, 0}}
		got := dup.PointAt(2)
		assert.InDelta(t, 2.0, got.X, 1e-9)
		assert.InDelta(t, 0.0, got.Y, 1e-9)
	})
}

func TestGenerateKeepsAnchorsAndBounds(t *testing.T) {
	base := Path{{-20, 300}, {150, 100}, {400, 200}, {600, 100}, {800, 350}, {1020, 300}}
	bounds := Bounds{MinX: 20, MinY: 20, MaxX: 980, MaxY: 580}
	gen := NewGenerator(25, bounds, rand.New(rand.NewSource(42)))

	for i := 0; i < 200; i++ {
		got := gen.Generate(base)
		require.Len(t, got, len(base))
		assert.Equal(t, base.First(), got.First())
		assert.Equal(t, base.Last(), got.Last())
		for j := 1; j < len(got)-1; j++ {
			assert.LessOrEqual(t, got[j].X-base[j].X, 25.0)
			assert.GreaterOrEqual(t, got[j].X-base[j].X, -25.0)
			assert.LessOrEqual(t, got[j].Y-base[j].Y, 25.0)
			assert.GreaterOrEqual(t, got[j].Y-base[j].Y, -25.0)
			assert.Equal(t, got[j], bounds.Clamp(got[j]))
		}
	}
}

type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

func TestGenerateClampsIntoBounds(t *testing.T) {
	base := Path{{0, 0}, {10, 590}, {1000, 0}}
	bounds := Bounds{MinX: 20, MinY: 20, MaxX: 980, MaxY: 580}

	// 0.0 maps to the full negative jitter
	got := NewGenerator(25, bounds, fixedSource(0)).Generate(base)
	assert.Equal(t, Point{20, 565}, got[1])

	got = NewGenerator(25, bounds, fixedSource(0.999999)).Generate(base)
	assert.InDelta(t, 35.0, got[1].X, 1e-3)
	assert.Equal(t, 580.0, got[1].Y)
}

func TestGenerateDoesNotMutateBase(t *testing.T) {
	base := Path{{0, 0}, {100, 100}, {200, 0}}
	orig := base.Clone()
	NewGenerator(25, Bounds{0, 0, 1000, 600}, fixedSource(0.9)).Generate(base)
	assert.Equal(t, orig, base)
}

func TestPointAtEndIsExactOnJitteredPaths(t *testing.T) {
	base := Path{{-20, 300}, {150, 100}, {400, 200}, {600, 100}, {800, 350}, {1020, 300}}
	gen := NewGenerator(25, Bounds{MinX: 20, MinY: 20, MaxX: 980, MaxY: 580}, rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		p := gen.Generate(base)
		length := p.Length()
		require.Equal(t, p.Last(), p.PointAt(length), "path %d: %v", i, p)
		require.Equal(t, p.Last(), p.PointAt(length+0.5))
	}
}
