package util

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every tunable the process reads. It is loaded once at
// startup and passed into constructors - nothing mutates it afterwards.
type Config struct {
	Port            int           `env:"PORT,default=3009"`
	MaxResults      int           `env:"CRYPTO_MAX_RESULTS,default=10"`
	DefaultCurrency string        `env:"CRYPTO_DEFAULT_CURRENCY,default=USD"`
	CacheEnabled    bool          `env:"CRYPTO_CACHE_ENABLED,default=true"`
	SyncInterval    time.Duration `env:"CRYPTO_SYNC_INTERVAL,default=5m"`
	HistoryMaxRows  int           `env:"CRYPTO_HISTORY_MAX_ROWS,default=2000"`

	CoinMarketCap CoinMarketCapConfig
	Db            DbConfig
}

type CoinMarketCapConfig struct {
	ApiKey  string        `env:"COINMARKET_API_KEY,default="`
	BaseUrl string        `env:"COINMARKET_API_BASE_URL,default=https://pro-api.coinmarketcap.com"`
	Timeout time.Duration `env:"COINMARKET_API_TIMEOUT,default=5s"`
}

type DbConfig struct {
	Host      string `env:"DB_HOST,default=localhost"`
	Port      string `env:"DB_PORT,default=5432"`
	User      string `env:"DB_USER,default=postgres"`
	Password  string `env:"DB_PASSWORD,default=postgres"`
	Database  string `env:"DB_NAME,default=coinwatch"`
	EnableSsl bool   `env:"DB_ENABLE_SSL,default=false"`
}

func (t DbConfig) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func (t DbConfig) ToConnectionUrl() string {
	x := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		t.User, t.Password, t.Host, t.Port, t.Database)
	if !t.EnableSsl {
		x += "?sslmode=disable"
	}
	return x
}

// LoadConfig reads .env if present, then decodes the environment into a
// Config. Every field has a default so a bare environment still works.
func LoadConfig() (*Config, error) {
	// missing .env is fine - env vars may be set directly
	_ = godotenv.Load()

	cfg := Config{}
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config from env: %w", err)
	}

	return &cfg, nil
}
