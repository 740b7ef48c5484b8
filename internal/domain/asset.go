package domain

import "time"

// Asset is one observed quote for a tracked cryptocurrency, normalized
// from whichever tier produced it (db cache, live api, or static fallback).
type Asset struct {
	ID               int64     `json:"id"`
	CoinMarketCapID  *int64    `json:"coinMarketCapId,omitempty"`
	Symbol           string    `json:"symbol"`
	Name             string    `json:"name"`
	CurrentPrice     *float64  `json:"currentPrice"`
	MarketCap        *float64  `json:"marketCap"`
	Volume24h        *float64  `json:"volume24h"`
	PercentChange1h  *float64  `json:"percentChange1h"`
	PercentChange24h *float64  `json:"percentChange24h"`
	PercentChange7d  *float64  `json:"percentChange7d"`
	CmcRank          *int32    `json:"cmcRank"`
	CreatedAt        time.Time `json:"createdAt"`
}
