package service

import (
	"coinwatch/internal/calculator"
	"coinwatch/internal/db/models/postgres/public/model"
	"coinwatch/internal/domain"
	"coinwatch/internal/logger"
	"coinwatch/internal/repository"
	"context"
	"fmt"
	"strings"
)

const (
	chartDataLimit = 100
	tableDataLimit = 50
)

// AnalyticsService derives statistics from the stored snapshot history.
// Unlike the read chain it has no fallback tier - analytics without a
// store is meaningless, so a missing db is an error here.
type AnalyticsService interface {
	Compute(ctx context.Context, symbol string, timeframe string) (*domain.Analytics, error)
}

type analyticsServiceHandler struct {
	PriceRepository repository.PriceSnapshotRepository
}

func NewAnalyticsService(priceRepository repository.PriceSnapshotRepository) AnalyticsService {
	return analyticsServiceHandler{PriceRepository: priceRepository}
}

// Compute builds the full analytics view for a symbol. The history
// comes back newest first; derived series flip it to chronological
// order before windowing. An empty timeframe skips the derived block.
func (h analyticsServiceHandler) Compute(ctx context.Context, symbol string, timeframe string) (*domain.Analytics, error) {
	log := logger.FromContext(ctx)
	normalized := strings.ToUpper(strings.TrimSpace(symbol))

	if h.PriceRepository == nil {
		return nil, fmt.Errorf("analytics for %s: %w", normalized, domain.ErrStoreUnavailable)
	}

	history, err := h.PriceRepository.History(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", normalized, err)
	}

	prices := []float64{}
	for _, snapshot := range history {
		if snapshot.Price != nil {
			prices = append(prices, *snapshot.Price)
		}
	}
	if len(history) == 0 || len(prices) == 0 {
		return nil, fmt.Errorf("no history for %s: %w", normalized, domain.ErrNotFound)
	}

	statistics, err := calculator.PriceStatistics(prices)
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics for %s: %w", normalized, err)
	}

	latest := history[0]
	oldest := history[len(history)-1]

	out := domain.Analytics{
		Symbol:       latest.Symbol,
		Name:         latest.Name,
		CurrentPrice: latest.Price,
		CmcRank:      latest.CmcRank,
		Statistics:   *statistics,
		Performance:  performance(latest, oldest),
		ChartData:    chartData(history),
		TableData:    tableData(history),
	}

	if timeframe != "" {
		derived, err := derivedSeries(out.ChartData, timeframe)
		if err != nil {
			log.Warnf("failed to derive series for %s: %v", normalized, err)
		} else {
			out.Derived = derived
		}
	}

	return &out, nil
}

func performance(latest, oldest model.PriceSnapshot) domain.AnalyticsPerformance {
	latestPrice := 0.0
	if latest.Price != nil {
		latestPrice = *latest.Price
	}
	oldestPrice := 0.0
	if oldest.Price != nil {
		oldestPrice = *oldest.Price
	}

	totalChange := latestPrice - oldestPrice
	totalChangePercent := 0.0
	if oldestPrice != 0 {
		totalChangePercent = (totalChange / oldestPrice) * 100
	}

	return domain.AnalyticsPerformance{
		TotalChange:        totalChange,
		TotalChangePercent: totalChangePercent,
		Change1h:           latest.PercentChange1h,
		Change24h:          latest.PercentChange24h,
		Change7d:           latest.PercentChange7d,
		Timespan: fmt.Sprintf("From %s to %s",
			oldest.CreatedAt.Format("2006-01-02 15:04"),
			latest.CreatedAt.Format("2006-01-02 15:04"),
		),
	}
}

func chartData(history []model.PriceSnapshot) []domain.ChartPoint {
	out := []domain.ChartPoint{}
	for i, snapshot := range history {
		if i >= chartDataLimit {
			break
		}
		out = append(out, domain.ChartPoint{
			Timestamp: snapshot.CreatedAt,
			Price:     snapshot.Price,
			Volume:    snapshot.Volume24h,
			MarketCap: snapshot.MarketCap,
		})
	}
	return out
}

func tableData(history []model.PriceSnapshot) []domain.Asset {
	out := []domain.Asset{}
	for i, snapshot := range history {
		if i >= tableDataLimit {
			break
		}
		out = append(out, snapshotToAsset(snapshot))
	}
	return out
}

// derivedSeries windows the chart slice, which arrives newest first and
// already capped at chartDataLimit. The rolling projections therefore
// cover the charted range, not the full retained history.
func derivedSeries(chart []domain.ChartPoint, timeframe string) (*domain.DerivedSeries, error) {
	label, window := calculator.WindowForTimeframe(timeframe)

	chronological := make([]domain.ChartPoint, len(chart))
	for i, point := range chart {
		chronological[len(chart)-1-i] = point
	}

	prices := []float64{}
	for _, point := range chronological {
		price := 0.0
		if point.Price != nil {
			price = *point.Price
		}
		prices = append(prices, price)
	}

	volatility, err := calculator.RollingVolatility(prices, window)
	if err != nil {
		return nil, err
	}
	percentChange, err := calculator.RollingPercentChange(prices, window)
	if err != nil {
		return nil, err
	}

	out := domain.DerivedSeries{
		Timeframe:     label,
		Window:        window,
		Volatility:    []domain.SeriesPoint{},
		PercentChange: []domain.SeriesPoint{},
	}
	for i, value := range volatility {
		out.Volatility = append(out.Volatility, domain.SeriesPoint{
			Timestamp: chronological[window+i].Timestamp,
			Value:     value,
		})
	}
	for i, value := range percentChange {
		out.PercentChange = append(out.PercentChange, domain.SeriesPoint{
			Timestamp: chronological[window+i].Timestamp,
			Value:     value,
		})
	}

	return &out, nil
}
