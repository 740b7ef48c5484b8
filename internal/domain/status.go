package domain

// SyncResult reports one background sync run. A skipped run still
// returns a result so callers can surface why nothing was written.
type SyncResult struct {
	Received int    `json:"received"`
	Saved    int    `json:"saved"`
	Skipped  int    `json:"skipped"`
	Message  string `json:"message"`
}

// ServiceStatus echoes the effective runtime configuration plus a few
// live counters. It is a plain snapshot, safe to serialize as-is.
type ServiceStatus struct {
	MaxResults        int    `json:"maxResults"`
	DefaultCurrency   string `json:"defaultCurrency"`
	CacheEnabled      bool   `json:"cacheEnabled"`
	SyncInterval      string `json:"syncInterval"`
	ApiKeyConfigured  bool   `json:"apiKeyConfigured"`
	DatabaseAvailable bool   `json:"databaseAvailable"`
	TotalSnapshots    int64  `json:"totalSnapshots"`
}

type PortfolioPosition struct {
	Symbol string `json:"symbol"`
	// nil when no tier could price the symbol; it contributes zero
	Price *float64 `json:"price"`
}

type PortfolioValue struct {
	Positions  []PortfolioPosition `json:"positions"`
	TotalValue float64             `json:"totalValue"`
	Currency   string              `json:"currency"`
}
