package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = "stockapi"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Dashboard    DashboardConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STOCKAPI_APP_ENV" default:"development"`
	Port         string `envconfig:"STOCKAPI_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"STOCKAPI_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOCKAPI_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"STOCKAPI_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"STOCKAPI_DB_DSN" default:"stock.db"`

	MaxOpenConns    int           `envconfig:"STOCKAPI_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STOCKAPI_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STOCKAPI_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOCKAPI_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch db.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q (want %s or %s)", db.Driver, DriverSQLite, DriverPostgres)
	}
	if db.DSN == "" {
		return fmt.Errorf("database DSN is required")
	}
	return nil
}

// RedisConfig is optional: an empty URL disables the aggregation cache.
type RedisConfig struct {
	URL          string        `envconfig:"STOCKAPI_REDIS_URL"`
	Address      string        `envconfig:"STOCKAPI_REDIS_ADDR"`
	Password     string        `envconfig:"STOCKAPI_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOCKAPI_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOCKAPI_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOCKAPI_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOCKAPI_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOCKAPI_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOCKAPI_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a cache backend was configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

// DashboardConfig tunes the aggregation engine. The low-stock threshold and
// the time-ago offset are deliberately configuration, not constants.
type DashboardConfig struct {
	LowStockThreshold  int           `envconfig:"STOCKAPI_DASHBOARD_LOW_STOCK_THRESHOLD" default:"50"`
	ChartTopCategories int           `envconfig:"STOCKAPI_DASHBOARD_CHART_TOP_CATEGORIES" default:"10"`
	ActivityFeedLimit  int           `envconfig:"STOCKAPI_DASHBOARD_ACTIVITY_FEED_LIMIT" default:"10"`
	TimeAgoOffset      time.Duration `envconfig:"STOCKAPI_DASHBOARD_TIME_AGO_OFFSET" default:"0s"`
	CacheTTL           time.Duration `envconfig:"STOCKAPI_DASHBOARD_CACHE_TTL" default:"60s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOCKAPI_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"STOCKAPI_AUTO_MIGRATE" default:"false"`
}
