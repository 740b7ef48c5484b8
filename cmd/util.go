package cmd

import (
	"coinwatch/api"
	"coinwatch/internal/app"
	"coinwatch/internal/logger"
	"coinwatch/internal/repository"
	"coinwatch/internal/service"
	"coinwatch/internal/util"
	"coinwatch/pkg/coinmarketcap"
	"database/sql"
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
)

// InitializeDependencies wires the whole process: one config load, one
// long-lived db handle, and every service built on top. A database that
// is down at startup does not abort - the services run in degraded mode
// and the fallback chain covers the reads.
func InitializeDependencies() (*api.ApiHandler, *app.SyncScheduler, error) {
	cfg, err := util.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbConn, err := openDb(cfg.Db)
	if err != nil {
		logger.Warn("starting without a database: %v", err)
		dbConn = nil
	}

	var priceRepository repository.PriceSnapshotRepository
	if dbConn != nil {
		priceRepository = repository.NewPriceSnapshotRepository(dbConn)
	}

	cmcClient := coinmarketcapClient(cfg.CoinMarketCap)
	cryptoService := service.NewCryptoService(priceRepository, cmcClient, *cfg)
	analyticsService := service.NewAnalyticsService(priceRepository)
	syncScheduler := app.NewSyncScheduler(cryptoService, cfg.SyncInterval)

	apiHandler := &api.ApiHandler{
		Db:                   dbConn,
		CryptoService:        cryptoService,
		AnalyticsService:     analyticsService,
		ApiRequestRepository: repository.ApiRequestRepositoryHandler{},
		Cfg:                  *cfg,
	}

	return apiHandler, syncScheduler, nil
}

func CloseDependencies(handler *api.ApiHandler, scheduler *app.SyncScheduler) {
	scheduler.Stop()

	if handler.Db != nil {
		if err := handler.Db.Close(); err != nil {
			logger.Warn("failed to close db: %v", err)
		}
	}
}

func openDb(cfg util.DbConfig) (*sql.DB, error) {
	dbConn, err := sql.Open("postgres", cfg.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := dbConn.Ping(); err != nil {
		dbConn.Close()
		return nil, fmt.Errorf("failed to reach db: %w", err)
	}

	return dbConn, nil
}

func coinmarketcapClient(cfg util.CoinMarketCapConfig) coinmarketcap.Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return coinmarketcap.NewClient(httpClient, cfg.ApiKey, cfg.BaseUrl)
}
