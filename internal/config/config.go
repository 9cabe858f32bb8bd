package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string `env:"ENV" env-default:"local"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Port     string `env:"PORT" env-default:"8080"`

	Storage     string `env:"STORAGE" env-default:"pg"`
	DatabaseURL string `env:"DATABASE_URL"`

	Fetcher      string        `env:"FETCHER" env-default:"cex"`
	CexAPIBase   string        `env:"CEX_API_BASE" env-default:"https://cex.io"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" env-default:"10s"`

	FetchSymbols   []string `env:"FETCH_SYMBOLS" env-default:"BTC,ETH,XRP"`
	QuoteSymbol    string   `env:"QUOTE_SYMBOL" env-default:"USD"`
	FetchLastHours int      `env:"FETCH_LAST_HOURS" env-default:"24"`
	FetchMaxCount  int      `env:"FETCH_MAX_COUNT" env-default:"100"`

	CacheBackend  string        `env:"CACHE_BACKEND" env-default:"none"`
	RedisAddr     string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" env-default:"10m"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load reads configuration from environment variables, applying the
// tag defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
