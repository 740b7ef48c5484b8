package service

import (
	"coinwatch/internal/domain"
	"coinwatch/internal/util"
	"fmt"
	"time"

	_ "embed"

	"github.com/gocarina/gocsv"
)

// The static tier. When both the db and the external api are out of
// reach the dashboard still renders these instead of going blank.

//go:embed fallback_assets.csv
var fallbackAssetsCsv []byte

type fallbackAssetRow struct {
	Symbol string  `csv:"symbol"`
	Name   string  `csv:"name"`
	Price  float64 `csv:"price"`
	Rank   int32   `csv:"rank"`
}

var fallbackRows = mustLoadFallbackAssets()

func mustLoadFallbackAssets() []fallbackAssetRow {
	rows := []fallbackAssetRow{}
	if err := gocsv.UnmarshalBytes(fallbackAssetsCsv, &rows); err != nil {
		panic(fmt.Errorf("failed to parse embedded fallback assets: %w", err))
	}
	if len(rows) == 0 {
		panic("embedded fallback asset list is empty")
	}
	return rows
}

func fallbackAssets() []domain.Asset {
	now := time.Now().UTC()
	out := []domain.Asset{}
	for _, row := range fallbackRows {
		out = append(out, domain.Asset{
			Symbol:       row.Symbol,
			Name:         row.Name,
			CurrentPrice: util.FloatPointer(row.Price),
			Volume24h:    util.FloatPointer(row.Price * 1_000_000),
			MarketCap:    util.FloatPointer(row.Price * 21_000_000),
			CmcRank:      util.Int32Pointer(row.Rank),
			CreatedAt:    now,
		})
	}
	return out
}

func fallbackPrice(symbol string) (float64, bool) {
	for _, row := range fallbackRows {
		if row.Symbol == symbol {
			return row.Price, true
		}
	}
	return 0, false
}
