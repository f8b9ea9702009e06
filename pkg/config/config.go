package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App       AppConfig
	Sheets    SheetsConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Booking   BookingConfig
	SEO       SEOConfig
	CORS      CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Sheets.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TELAFOME_APP_ENV" required:"true"`
	Port         string `envconfig:"TELAFOME_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TELAFOME_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TELAFOME_LOG_WARN_STACK" default:"false"`
	DefaultSlug  string `envconfig:"TELAFOME_DEFAULT_SLUG" default:"ruachdelivery"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SheetsConfig wires the Google Sheets backend. CredentialsJSON carries the
// full service-account key; ClientEmail/PrivateKey are the legacy pair kept
// for parity with older deployments.
type SheetsConfig struct {
	MasterSheetID   string `envconfig:"TELAFOME_MASTER_SHEET_ID" required:"true"`
	CredentialsJSON string `envconfig:"TELAFOME_GOOGLE_CREDENTIALS_JSON"`
	ClientEmail     string `envconfig:"TELAFOME_GOOGLE_CLIENT_EMAIL"`
	PrivateKey      string `envconfig:"TELAFOME_GOOGLE_PRIVATE_KEY"`

	MasterTab string `envconfig:"TELAFOME_MASTER_TAB" default:"Página1"`

	RequestTimeout time.Duration `envconfig:"TELAFOME_SHEETS_REQUEST_TIMEOUT" default:"15s"`
}

func (s SheetsConfig) validate() error {
	if s.CredentialsJSON == "" && (s.ClientEmail == "" || s.PrivateKey == "") {
		return fmt.Errorf("either %s or the %s/%s pair is required",
			EnvSheetsCredentialsJSON, EnvSheetsClientEmail, EnvSheetsPrivateKey)
	}
	return nil
}

// NormalizedPrivateKey undoes the escaped newlines the key picks up when it
// is stored as a single-line environment variable.
func (s SheetsConfig) NormalizedPrivateKey() string {
	return strings.ReplaceAll(s.PrivateKey, `\n`, "\n")
}

type RedisConfig struct {
	URL          string        `envconfig:"TELAFOME_REDIS_URL"`
	Address      string        `envconfig:"TELAFOME_REDIS_ADDR"`
	Password     string        `envconfig:"TELAFOME_REDIS_PASSWORD"`
	DB           int           `envconfig:"TELAFOME_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TELAFOME_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TELAFOME_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TELAFOME_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TELAFOME_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TELAFOME_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The API
// degrades gracefully (no rate limiting) when it was not.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type RateLimitConfig struct {
	OrderWindow  time.Duration `envconfig:"TELAFOME_RATE_LIMIT_ORDER_WINDOW" default:"1m"`
	OrderIPLimit int           `envconfig:"TELAFOME_RATE_LIMIT_ORDER_IP_LIMIT" default:"5"`
}

type BookingConfig struct {
	MinLeadTimeHours int           `envconfig:"TELAFOME_BOOKING_MIN_LEAD_HOURS" default:"24"`
	SlotStep         time.Duration `envconfig:"TELAFOME_BOOKING_SLOT_STEP" default:"30m"`
	LookaheadDays    int           `envconfig:"TELAFOME_BOOKING_LOOKAHEAD_DAYS" default:"30"`
}

type SEOConfig struct {
	IndexPath string `envconfig:"TELAFOME_SEO_INDEX_PATH" default:"web/index.html"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"TELAFOME_CORS_ALLOWED_ORIGINS" default:"*"`
}
