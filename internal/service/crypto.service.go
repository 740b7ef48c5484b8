package service

import (
	"coinwatch/internal/db/models/postgres/public/model"
	"coinwatch/internal/domain"
	"coinwatch/internal/logger"
	"coinwatch/internal/repository"
	"coinwatch/internal/util"
	"coinwatch/pkg/coinmarketcap"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CryptoService serves asset reads through a fixed fallback chain:
// db cache first, then the live CoinMarketCap api, then the embedded
// static list. Writes happen through Sync, plus a write-back when a
// single-price lookup falls through to the live api.
type CryptoService interface {
	GetPopular(ctx context.Context, limit int) ([]domain.Asset, error)
	GetPopularFresh(ctx context.Context, limit int) ([]domain.Asset, error)
	GetAsset(ctx context.Context, symbol string) (*domain.Asset, error)
	GetPrice(ctx context.Context, symbol string) (float64, error)
	Search(ctx context.Context, term string) ([]domain.Asset, error)
	PortfolioValue(ctx context.Context, symbols []string) (*domain.PortfolioValue, error)
	Sync(ctx context.Context) (*domain.SyncResult, error)
	Status() domain.ServiceStatus
}

type cryptoServiceHandler struct {
	// PriceRepository may be nil when the process starts without a db.
	// Every method treats a nil repository as "store unavailable" and
	// moves down the chain.
	PriceRepository repository.PriceSnapshotRepository
	CmcClient       coinmarketcap.Client
	Cfg             util.Config
}

func NewCryptoService(
	priceRepository repository.PriceSnapshotRepository,
	cmcClient coinmarketcap.Client,
	cfg util.Config,
) CryptoService {
	return cryptoServiceHandler{
		PriceRepository: priceRepository,
		CmcClient:       cmcClient,
		Cfg:             cfg,
	}
}

// priceable symbols for the single-price endpoint. Quotes for anything
// else return ErrNotFound before any tier is consulted.
var supportedPriceSymbols = map[string]bool{
	"BTC":  true,
	"ETH":  true,
	"ADA":  true,
	"SOL":  true,
	"DOT":  true,
	"LINK": true,
	"XRP":  true,
}

const syncBatchSize = 50

// GetPopularFresh forces a refresh before reading, so the snapshots it
// returns (and any read after it) come from newly persisted rows. A
// failed refresh is logged and the normal chain still answers.
func (h cryptoServiceHandler) GetPopularFresh(ctx context.Context, limit int) ([]domain.Asset, error) {
	log := logger.FromContext(ctx)

	if _, err := h.Sync(ctx); err != nil {
		log.Warnf("refresh before fresh read failed: %v", err)
	}

	return h.GetPopular(ctx, limit)
}

func (h cryptoServiceHandler) GetPopular(ctx context.Context, limit int) ([]domain.Asset, error) {
	log := logger.FromContext(ctx)
	if limit <= 0 {
		limit = h.Cfg.MaxResults
	}

	if h.cacheReadable() {
		snapshots, err := h.PriceRepository.LatestRanked()
		if err != nil {
			log.Warnf("cache tier failed for popular assets: %v", err)
		} else if len(snapshots) > 0 {
			return truncateAssets(snapshotsToAssets(snapshots), limit), nil
		}
	}

	if h.CmcClient.IsConfigured() {
		quotes, err := h.CmcClient.GetLatestListings(limit, h.Cfg.DefaultCurrency)
		if err != nil {
			log.Warnf("live tier failed for popular assets: %v", err)
		} else if len(quotes) > 0 {
			return truncateAssets(h.quotesToAssets(quotes), limit), nil
		}
	}

	log.Infof("serving popular assets from static fallback")
	return truncateAssets(fallbackAssets(), limit), nil
}

// GetAsset resolves the full detail view of one symbol through the
// chain. Unlike GetPrice it is not limited to the priceable allow-list.
func (h cryptoServiceHandler) GetAsset(ctx context.Context, symbol string) (*domain.Asset, error) {
	log := logger.FromContext(ctx)
	normalized := strings.ToUpper(strings.TrimSpace(symbol))
	if normalized == "" {
		return nil, fmt.Errorf("empty symbol: %w", domain.ErrNotFound)
	}

	if h.cacheReadable() {
		snapshot, err := h.PriceRepository.LatestBySymbol(normalized)
		if err != nil {
			log.Warnf("cache tier failed for %s details: %v", normalized, err)
		} else if snapshot != nil {
			asset := snapshotToAsset(*snapshot)
			return &asset, nil
		}
	}

	if h.CmcClient.IsConfigured() {
		quotes, err := h.CmcClient.GetLatestQuotes(normalized, h.Cfg.DefaultCurrency)
		if err != nil {
			log.Warnf("live tier failed for %s details: %v", normalized, err)
		} else if len(quotes) > 0 {
			asset := snapshotToAsset(h.quoteToSnapshot(quotes[0]))
			return &asset, nil
		}
	}

	for _, asset := range fallbackAssets() {
		if asset.Symbol == normalized {
			log.Infof("serving %s details from static fallback", normalized)
			return &asset, nil
		}
	}

	return nil, fmt.Errorf("no details available for %s: %w", normalized, domain.ErrNotFound)
}

func (h cryptoServiceHandler) GetPrice(ctx context.Context, symbol string) (float64, error) {
	log := logger.FromContext(ctx)
	normalized := strings.ToUpper(strings.TrimSpace(symbol))
	if !supportedPriceSymbols[normalized] {
		return 0, fmt.Errorf("unsupported symbol %q: %w", symbol, domain.ErrNotFound)
	}

	if h.cacheReadable() {
		snapshot, err := h.PriceRepository.LatestBySymbol(normalized)
		if err != nil {
			log.Warnf("cache tier failed for %s price: %v", normalized, err)
		} else if snapshot != nil && snapshot.Price != nil && validPrice(*snapshot.Price) {
			return *snapshot.Price, nil
		}
	}

	if h.CmcClient.IsConfigured() {
		quote, err := h.liveQuote(normalized)
		if err != nil {
			log.Warnf("live tier failed for %s price: %v", normalized, err)
		} else {
			snapshot := h.quoteToSnapshot(*quote)
			// a fetched quote is worth keeping; the next read hits the cache
			if h.PriceRepository != nil {
				if _, err := h.PriceRepository.Add(snapshot); err != nil {
					log.Warnf("failed to persist live quote for %s: %v", normalized, err)
				}
			}
			if snapshot.Price != nil && validPrice(*snapshot.Price) {
				return *snapshot.Price, nil
			}
		}
	}

	if price, ok := fallbackPrice(normalized); ok {
		log.Infof("serving %s price from static fallback", normalized)
		return price, nil
	}

	return 0, fmt.Errorf("no price available for %s: %w", normalized, domain.ErrNotFound)
}

func (h cryptoServiceHandler) liveQuote(symbol string) (*coinmarketcap.CryptoQuote, error) {
	quotes, err := h.CmcClient.GetLatestQuotes(symbol, h.Cfg.DefaultCurrency)
	if err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, fmt.Errorf("no quote returned for %s", symbol)
	}

	return &quotes[0], nil
}

func (h cryptoServiceHandler) Search(ctx context.Context, term string) ([]domain.Asset, error) {
	log := logger.FromContext(ctx)
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return h.GetPopular(ctx, 0)
	}

	if h.cacheReadable() {
		snapshots, err := h.PriceRepository.SearchLatest(trimmed)
		if err != nil {
			log.Warnf("cache tier failed for search %q: %v", trimmed, err)
		} else {
			return snapshotsToAssets(snapshots), nil
		}
	}

	// no searchable store; filter whatever the chain can still produce
	assets, err := h.GetPopular(ctx, 0)
	if err != nil {
		return nil, err
	}

	lowered := strings.ToLower(trimmed)
	out := []domain.Asset{}
	for _, asset := range assets {
		if strings.Contains(strings.ToLower(asset.Name), lowered) ||
			strings.Contains(strings.ToLower(asset.Symbol), lowered) {
			out = append(out, asset)
		}
	}

	return out, nil
}

// PortfolioValue prices each requested symbol through the same chain as
// GetPrice and sums with decimals to keep the total exact. Symbols with
// no price anywhere contribute zero instead of failing the request.
func (h cryptoServiceHandler) PortfolioValue(ctx context.Context, symbols []string) (*domain.PortfolioValue, error) {
	log := logger.FromContext(ctx)

	total := decimal.Zero
	positions := []domain.PortfolioPosition{}
	for _, symbol := range symbols {
		normalized := strings.ToUpper(strings.TrimSpace(symbol))
		if normalized == "" {
			continue
		}

		price, err := h.GetPrice(ctx, normalized)
		if err != nil {
			log.Warnf("portfolio position %s has no price: %v", normalized, err)
			positions = append(positions, domain.PortfolioPosition{Symbol: normalized})
			continue
		}

		positions = append(positions, domain.PortfolioPosition{
			Symbol: normalized,
			Price:  util.FloatPointer(price),
		})
		total = total.Add(decimal.NewFromFloat(price))
	}

	totalValue, _ := total.Float64()
	return &domain.PortfolioValue{
		Positions:  positions,
		TotalValue: totalValue,
		Currency:   h.Cfg.DefaultCurrency,
	}, nil
}

// Sync pulls the top listings from the live api and appends one snapshot
// row per asset. Row failures are isolated - one bad insert never aborts
// the batch. After the batch each touched symbol is trimmed back to the
// retention cap.
func (h cryptoServiceHandler) Sync(ctx context.Context) (*domain.SyncResult, error) {
	log := logger.FromContext(ctx)

	if !h.CmcClient.IsConfigured() {
		log.Warnf("skipping sync: coinmarketcap api key not configured")
		return &domain.SyncResult{Message: "skipped: api key not configured"}, nil
	}
	if h.PriceRepository == nil {
		log.Warnf("skipping sync: price store unavailable")
		return &domain.SyncResult{Message: "skipped: store unavailable"}, nil
	}

	quotes, err := h.CmcClient.GetLatestListings(syncBatchSize, h.Cfg.DefaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listings for sync (%v): %w", err, domain.ErrSourceUnavailable)
	}

	result := domain.SyncResult{Received: len(quotes)}
	touched := map[string]bool{}
	for _, quote := range quotes {
		snapshot := h.quoteToSnapshot(quote)
		if _, err := h.PriceRepository.Add(snapshot); err != nil {
			log.Warnf("failed to store snapshot for %s: %v", quote.Symbol, err)
			result.Skipped++
			continue
		}
		result.Saved++
		touched[snapshot.Symbol] = true
	}

	for symbol := range touched {
		deleted, err := h.PriceRepository.TrimHistory(symbol, h.Cfg.HistoryMaxRows)
		if err != nil {
			// retention is opportunistic; the next sync retries
			log.Warnf("failed to trim history for %s: %v", symbol, err)
			continue
		}
		if deleted > 0 {
			log.Debugf("trimmed %d rows of %s history", deleted, symbol)
		}
	}

	result.Message = fmt.Sprintf("synced %d of %d assets", result.Saved, result.Received)
	return &result, nil
}

func (h cryptoServiceHandler) Status() domain.ServiceStatus {
	status := domain.ServiceStatus{
		MaxResults:        h.Cfg.MaxResults,
		DefaultCurrency:   h.Cfg.DefaultCurrency,
		CacheEnabled:      h.Cfg.CacheEnabled,
		SyncInterval:      h.Cfg.SyncInterval.String(),
		ApiKeyConfigured:  h.CmcClient.IsConfigured(),
		DatabaseAvailable: h.PriceRepository != nil,
	}

	if h.PriceRepository != nil {
		if count, err := h.PriceRepository.Count(); err == nil {
			status.TotalSnapshots = count
		}
	}

	return status
}

func (h cryptoServiceHandler) cacheReadable() bool {
	return h.PriceRepository != nil && h.Cfg.CacheEnabled
}

// prices outside [0, 1_000_000] are treated as bad data from whichever
// tier produced them
func validPrice(price float64) bool {
	return price >= 0 && price <= 1_000_000
}

func truncateAssets(assets []domain.Asset, limit int) []domain.Asset {
	if limit > 0 && len(assets) > limit {
		return assets[:limit]
	}
	return assets
}

func (h cryptoServiceHandler) quoteToSnapshot(quote coinmarketcap.CryptoQuote) model.PriceSnapshot {
	snapshot := model.PriceSnapshot{
		CoinMarketCapID: util.Int64Pointer(quote.ID),
		Symbol:          quote.Symbol,
		Name:            quote.Name,
		CmcRank:         quote.CmcRank,
		CreatedAt:       time.Now().UTC(),
	}

	if converted, ok := quote.Quote[h.Cfg.DefaultCurrency]; ok {
		snapshot.Price = converted.Price
		snapshot.MarketCap = converted.MarketCap
		snapshot.Volume24h = converted.Volume24h
		snapshot.PercentChange1h = converted.PercentChange1h
		snapshot.PercentChange24h = converted.PercentChange24h
		snapshot.PercentChange7d = converted.PercentChange7d
	}

	return snapshot
}

func (h cryptoServiceHandler) quotesToAssets(quotes []coinmarketcap.CryptoQuote) []domain.Asset {
	out := []domain.Asset{}
	for _, quote := range quotes {
		snapshot := h.quoteToSnapshot(quote)
		out = append(out, snapshotToAsset(snapshot))
	}
	return out
}

func snapshotToAsset(snapshot model.PriceSnapshot) domain.Asset {
	return domain.Asset{
		ID:               snapshot.ID,
		CoinMarketCapID:  snapshot.CoinMarketCapID,
		Symbol:           snapshot.Symbol,
		Name:             snapshot.Name,
		CurrentPrice:     snapshot.Price,
		MarketCap:        snapshot.MarketCap,
		Volume24h:        snapshot.Volume24h,
		PercentChange1h:  snapshot.PercentChange1h,
		PercentChange24h: snapshot.PercentChange24h,
		PercentChange7d:  snapshot.PercentChange7d,
		CmcRank:          snapshot.CmcRank,
		CreatedAt:        snapshot.CreatedAt,
	}
}

func snapshotsToAssets(snapshots []model.PriceSnapshot) []domain.Asset {
	out := []domain.Asset{}
	for _, snapshot := range snapshots {
		out = append(out, snapshotToAsset(snapshot))
	}
	return out
}
