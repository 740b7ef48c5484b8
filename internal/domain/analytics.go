package domain

import "time"

type AnalyticsStatistics struct {
	Min                    float64 `json:"min"`
	Max                    float64 `json:"max"`
	Average                float64 `json:"average"`
	PriceRange             float64 `json:"priceRange"`
	StandardDeviation      float64 `json:"standardDeviation"`
	CoefficientOfVariation float64 `json:"coefficientOfVariation"`
	DataPoints             int     `json:"dataPoints"`
}

type AnalyticsPerformance struct {
	TotalChange        float64  `json:"totalChange"`
	TotalChangePercent float64  `json:"totalChangePercent"`
	Change1h           *float64 `json:"change1h,omitempty"`
	Change24h          *float64 `json:"change24h,omitempty"`
	Change7d           *float64 `json:"change7d,omitempty"`
	Timespan           string   `json:"timespan"`
}

type ChartPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     *float64  `json:"price"`
	Volume    *float64  `json:"volume"`
	MarketCap *float64  `json:"marketCap"`
}

// SeriesPoint is one value of a rolling-window derived series. The
// timestamp is the snapshot the window ends on.
type SeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// DerivedSeries holds rolling-window projections over the chart data,
// computed in chronological order. The window is a sample count from a
// fixed timeframe mapping, not a true elapsed-time window.
type DerivedSeries struct {
	Timeframe     string        `json:"timeframe"`
	Window        int           `json:"window"`
	Volatility    []SeriesPoint `json:"volatility"`
	PercentChange []SeriesPoint `json:"percentChange"`
}

type Analytics struct {
	Symbol       string               `json:"symbol"`
	Name         string               `json:"name"`
	CurrentPrice *float64             `json:"currentPrice"`
	CmcRank      *int32               `json:"cmcRank"`
	Statistics   AnalyticsStatistics  `json:"statistics"`
	Performance  AnalyticsPerformance `json:"performance"`
	ChartData    []ChartPoint         `json:"chartData"`
	TableData    []Asset              `json:"tableData"`
	Derived      *DerivedSeries       `json:"derived,omitempty"`
}
