package calculator

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"coinwatch/internal/domain"
)

func approxFloat() cmp.Option {
	return cmp.Comparer(func(i, j float64) bool {
		return math.Abs(i-j) < 0.0001
	})
}

func TestPriceStatistics(t *testing.T) {
	t.Run("single price", func(t *testing.T) {
		out, err := PriceStatistics([]float64{100})
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(
			&domain.AnalyticsStatistics{
				Min:                    100,
				Max:                    100,
				Average:                100,
				PriceRange:             0,
				StandardDeviation:      0,
				CoefficientOfVariation: 0,
				DataPoints:             1,
			},
			out,
			approxFloat(),
		))
	})

	t.Run("spread series", func(t *testing.T) {
		out, err := PriceStatistics([]float64{100, 110, 90})
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(
			&domain.AnalyticsStatistics{
				Min:                    90,
				Max:                    110,
				Average:                100,
				PriceRange:             20,
				StandardDeviation:      8.1650,
				CoefficientOfVariation: 8.1650,
				DataPoints:             3,
			},
			out,
			approxFloat(),
		))
	})

	t.Run("negative average still yields a ratio", func(t *testing.T) {
		// zero average is the only guarded case
		out, err := PriceStatistics([]float64{-100, -110, -90})
		require.NoError(t, err)

		require.InDelta(t, -8.1650, out.CoefficientOfVariation, 0.0001)
	})

	t.Run("zero average yields zero ratio", func(t *testing.T) {
		out, err := PriceStatistics([]float64{-10, 10})
		require.NoError(t, err)

		require.Equal(t, 0.0, out.CoefficientOfVariation)
		require.Equal(t, 10.0, out.StandardDeviation)
	})

	t.Run("empty series", func(t *testing.T) {
		_, err := PriceStatistics(nil)
		require.Error(t, err)
	})
}

func TestWindowForTimeframe(t *testing.T) {
	tests := []struct {
		label      string
		wantLabel  string
		wantWindow int
	}{
		{"10m", "10m", 1},
		{"1h", "1h", 6},
		{"1d", "1d", 144},
		{"1w", "1w", 1008},
		{"bogus", "1d", 144},
		{"", "1d", 144},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			label, window := WindowForTimeframe(tc.label)
			require.Equal(t, tc.wantLabel, label)
			require.Equal(t, tc.wantWindow, window)
		})
	}
}

func TestRollingPercentChange(t *testing.T) {
	t.Run("window one", func(t *testing.T) {
		out, err := RollingPercentChange([]float64{100, 110, 99}, 1)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff([]float64{10, -10}, out, approxFloat()))
	})

	t.Run("window two", func(t *testing.T) {
		out, err := RollingPercentChange([]float64{100, 110, 99, 120}, 2)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff([]float64{-1, 9.0909}, out, approxFloat()))
	})

	t.Run("zero base yields zero", func(t *testing.T) {
		out, err := RollingPercentChange([]float64{0, 10}, 1)
		require.NoError(t, err)
		require.Equal(t, []float64{0}, out)
	})

	t.Run("window too large for series", func(t *testing.T) {
		out, err := RollingPercentChange([]float64{100, 110}, 5)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("bad window", func(t *testing.T) {
		_, err := RollingPercentChange([]float64{100}, 0)
		require.Error(t, err)
	})
}

func TestRollingVolatility(t *testing.T) {
	t.Run("window one is flat", func(t *testing.T) {
		// a single-sample window has zero stddev by definition
		out, err := RollingVolatility([]float64{100, 110, 99}, 1)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0}, out)
	})

	t.Run("window two", func(t *testing.T) {
		// first output is at index 2, over the trailing pair [110 90]
		out, err := RollingVolatility([]float64{100, 110, 90}, 2)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff([]float64{10.0}, out, approxFloat()))
	})

	t.Run("window two over a longer series", func(t *testing.T) {
		// trailing pairs [110 90] then [90 120]
		out, err := RollingVolatility([]float64{100, 110, 90, 120}, 2)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff([]float64{10.0, 14.2857}, out, approxFloat()))
	})
}
