//go:build unit
// +build unit

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanMedianStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	assert.InDelta(t, 5.0, Mean(x), 1e-9)
	assert.InDelta(t, 4.5, Median(x), 1e-9)
	assert.InDelta(t, 2.0, Std(x), 1e-9)
}

func TestMeanEmptySlice(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Median(nil))
	assert.Equal(t, 0.0, Std(nil))
}

func TestMedianOddLength(t *testing.T) {
	assert.InDelta(t, 3.0, Median([]float64{5, 1, 3}), 1e-9)
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{810, 780, 920, 850})
	assert.Equal(t, 780.0, min)
	assert.Equal(t, 920.0, max)
}

func TestPercentile(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	assert.InDelta(t, 1.0, Percentile(x, 0), 1e-9)
	assert.InDelta(t, 10.0, Percentile(x, 100), 1e-9)
	assert.InDelta(t, 5.5, Percentile(x, 50), 1e-9)
	assert.InDelta(t, 3.25, Percentile(x, 25), 1e-9)
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}

	t.Run("PerfectPositive", func(t *testing.T) {
		y := []float64{2, 4, 6, 8, 10}
		assert.InDelta(t, 1.0, Correlation(x, y), 1e-9)
	})

	t.Run("PerfectNegative", func(t *testing.T) {
		y := []float64{10, 8, 6, 4, 2}
		assert.InDelta(t, -1.0, Correlation(x, y), 1e-9)
	})

	t.Run("ConstantSeries", func(t *testing.T) {
		y := []float64{3, 3, 3, 3, 3}
		assert.Equal(t, 0.0, Correlation(x, y))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		assert.Equal(t, 0.0, Correlation(x, []float64{1, 2}))
	})
}

func TestSkewScore(t *testing.T) {
	symmetric := []float64{1, 2, 3, 4, 5}
	assert.Less(t, SkewScore(symmetric), 1.0)

	// A heavy upper tail pulls the mean far from the median.
	skewed := []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1000}
	assert.Greater(t, SkewScore(skewed), 0.0)
}

func TestClip(t *testing.T) {
	x := []float64{-10, 0, 50, 120}
	clipped := Clip(x, 0, 100)

	assert.Equal(t, []float64{0, 0, 50, 100}, clipped)
	// Input must stay untouched.
	assert.Equal(t, []float64{-10, 0, 50, 120}, x)
}
