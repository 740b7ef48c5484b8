package calculator

import (
	"coinwatch/internal/domain"
	"fmt"

	"github.com/montanaflynn/stats"
)

// PriceStatistics aggregates a price series into the point-in-time
// statistics block. Population stddev, not sample - a history is the
// whole population of observations we have.
func PriceStatistics(prices []float64) (*domain.AnalyticsStatistics, error) {
	if len(prices) == 0 {
		return nil, fmt.Errorf("cannot compute statistics on empty price series")
	}

	min, err := stats.Min(prices)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(prices)
	if err != nil {
		return nil, err
	}
	average, err := stats.Mean(prices)
	if err != nil {
		return nil, err
	}
	stdev, err := stats.StandardDeviationPopulation(prices)
	if err != nil {
		return nil, err
	}

	coefficientOfVariation := 0.0
	if average != 0 {
		coefficientOfVariation = (stdev / average) * 100
	}

	return &domain.AnalyticsStatistics{
		Min:                    min,
		Max:                    max,
		Average:                average,
		PriceRange:             max - min,
		StandardDeviation:      stdev,
		CoefficientOfVariation: coefficientOfVariation,
		DataPoints:             len(prices),
	}, nil
}

// timeframe label -> number of trailing samples. Assumes the ~10 minute
// sync cadence, so the windows drift if the refresh period changes.
var timeframeWindows = map[string]int{
	"10m": 1,
	"1h":  6,
	"1d":  144,
	"1w":  1008,
}

const defaultTimeframe = "1d"

func WindowForTimeframe(label string) (string, int) {
	if window, ok := timeframeWindows[label]; ok {
		return label, window
	}
	return defaultTimeframe, timeframeWindows[defaultTimeframe]
}

// RollingVolatility computes, for each index i >= window of a
// chronological price series, the coefficient of variation
// (100 * population stddev / mean) of the trailing window prices
// ending at i. Output index 0 corresponds to input index window.
func RollingVolatility(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %d", window)
	}

	out := []float64{}
	for i := window; i < len(prices); i++ {
		trailing := prices[i-window+1 : i+1]
		mean, err := stats.Mean(trailing)
		if err != nil {
			return nil, err
		}
		stdev, err := stats.StandardDeviationPopulation(trailing)
		if err != nil {
			return nil, err
		}

		volatility := 0.0
		if mean != 0 {
			volatility = (stdev / mean) * 100
		}
		out = append(out, volatility)
	}

	return out, nil
}

// RollingPercentChange computes, for each index i >= window of a
// chronological price series, the percent change against the price
// window samples earlier. Output index 0 corresponds to input index
// window.
func RollingPercentChange(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %d", window)
	}

	out := []float64{}
	for i := window; i < len(prices); i++ {
		base := prices[i-window]
		change := 0.0
		if base != 0 {
			change = ((prices[i] - base) / base) * 100
		}
		out = append(out, change)
	}

	return out, nil
}
