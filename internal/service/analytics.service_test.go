package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coinwatch/internal/db/models/postgres/public/model"
	"coinwatch/internal/domain"
	mock_repository "coinwatch/internal/repository/mocks"
	"coinwatch/internal/util"
)

func historyFixture(symbol string, prices []float64) []model.PriceSnapshot {
	// newest first, spaced ten minutes apart like the sync cadence
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	out := []model.PriceSnapshot{}
	for i, price := range prices {
		out = append(out, model.PriceSnapshot{
			ID:        int64(len(prices) - i),
			Symbol:    symbol,
			Name:      "Bitcoin",
			Price:     util.FloatPointer(price),
			CmcRank:   util.Int32Pointer(1),
			CreatedAt: base.Add(-time.Duration(i) * 10 * time.Minute),
		})
	}
	return out
}

func TestAnalyticsCompute(t *testing.T) {
	ctx := context.Background()

	t.Run("store unavailable", func(t *testing.T) {
		handler := NewAnalyticsService(nil)

		_, err := handler.Compute(ctx, "BTC", "")
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	t.Run("no history is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSnapshotRepository(ctrl)
		handler := NewAnalyticsService(priceRepository)

		priceRepository.EXPECT().History("BTC").Return([]model.PriceSnapshot{}, nil)

		_, err := handler.Compute(ctx, "btc", "")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSnapshotRepository(ctrl)
		handler := NewAnalyticsService(priceRepository)

		priceRepository.EXPECT().History("BTC").Return(nil, fmt.Errorf("connection refused"))

		_, err := handler.Compute(ctx, "BTC", "")
		require.Error(t, err)
		require.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("single snapshot yields zero spread", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSnapshotRepository(ctrl)
		handler := NewAnalyticsService(priceRepository)

		priceRepository.EXPECT().History("BTC").Return(historyFixture("BTC", []float64{100}), nil)

		out, err := handler.Compute(ctx, "BTC", "")
		require.NoError(t, err)
		require.Equal(t, 100.0, out.Statistics.Min)
		require.Equal(t, 100.0, out.Statistics.Max)
		require.Equal(t, 0.0, out.Statistics.StandardDeviation)
		require.Equal(t, 0.0, out.Performance.TotalChange)
		require.Equal(t, 0.0, out.Performance.TotalChangePercent)
		require.Equal(t, 1, out.Statistics.DataPoints)
	})

	t.Run("full history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSnapshotRepository(ctrl)
		handler := NewAnalyticsService(priceRepository)

		// newest 100, then 110, oldest 90
		priceRepository.EXPECT().History("BTC").Return(historyFixture("BTC", []float64{100, 110, 90}), nil)

		out, err := handler.Compute(ctx, "BTC", "")
		require.NoError(t, err)

		require.Equal(t, "BTC", out.Symbol)
		require.Equal(t, 100.0, *out.CurrentPrice)
		require.Equal(t, 90.0, out.Statistics.Min)
		require.Equal(t, 110.0, out.Statistics.Max)
		require.Equal(t, 100.0, out.Statistics.Average)
		require.Equal(t, 20.0, out.Statistics.PriceRange)
		require.InDelta(t, 8.1650, out.Statistics.StandardDeviation, 0.0001)
		require.InDelta(t, 8.1650, out.Statistics.CoefficientOfVariation, 0.0001)
		require.Equal(t, 3, out.Statistics.DataPoints)

		// oldest 90 to latest 100
		require.InDelta(t, 10.0, out.Performance.TotalChange, 0.0001)
		require.InDelta(t, 11.1111, out.Performance.TotalChangePercent, 0.0001)
		require.Contains(t, out.Performance.Timespan, "From 2026-08-01 11:40")
		require.Contains(t, out.Performance.Timespan, "to 2026-08-01 12:00")

		require.Len(t, out.ChartData, 3)
		require.Equal(t, 100.0, *out.ChartData[0].Price)
		require.Len(t, out.TableData, 3)
		require.Nil(t, out.Derived)
	})

	t.Run("caps chart and table data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSnapshotRepository(ctrl)
		handler := NewAnalyticsService(priceRepository)

		prices := make([]float64, 150)
		for i := range prices {
			prices[i] = 100 + float64(i)
		}
		priceRepository.EXPECT().History("BTC").Return(historyFixture("BTC", prices), nil)

		out, err := handler.Compute(ctx, "BTC", "")
		require.NoError(t, err)
		require.Len(t, out.ChartData, 100)
		require.Len(t, out.TableData, 50)
		require.Equal(t, 150, out.Statistics.DataPoints)
	})

	t.Run("derived series over the charted window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSnapshotRepository(ctrl)
		handler := NewAnalyticsService(priceRepository)

		// chronological order is 90, 110, 100
		history := historyFixture("BTC", []float64{100, 110, 90})
		priceRepository.EXPECT().History("BTC").Return(history, nil)

		out, err := handler.Compute(ctx, "BTC", "10m")
		require.NoError(t, err)
		require.NotNil(t, out.Derived)
		require.Equal(t, "10m", out.Derived.Timeframe)
		require.Equal(t, 1, out.Derived.Window)

		require.Len(t, out.Derived.PercentChange, 2)
		require.InDelta(t, 22.2222, out.Derived.PercentChange[0].Value, 0.0001)
		require.InDelta(t, -9.0909, out.Derived.PercentChange[1].Value, 0.0001)
		require.Equal(t, history[1].CreatedAt, out.Derived.PercentChange[0].Timestamp)
		require.Equal(t, history[0].CreatedAt, out.Derived.PercentChange[1].Timestamp)

		require.Len(t, out.Derived.Volatility, 2)
	})

	t.Run("unknown timeframe falls back to a day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceRepository := mock_repository.NewMockPriceSnapshotRepository(ctrl)
		handler := NewAnalyticsService(priceRepository)

		priceRepository.EXPECT().History("BTC").Return(historyFixture("BTC", []float64{100, 110, 90}), nil)

		out, err := handler.Compute(ctx, "BTC", "fortnight")
		require.NoError(t, err)
		require.NotNil(t, out.Derived)
		require.Equal(t, "1d", out.Derived.Timeframe)
		require.Equal(t, 144, out.Derived.Window)
		// window larger than the series produces empty projections
		require.Empty(t, out.Derived.Volatility)
		require.Empty(t, out.Derived.PercentChange)
	})
}
