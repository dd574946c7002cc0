package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	CORS     CORSConfig
	Log      LogConfig
	Checkout CheckoutConfig
	Session  SessionConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"2"`
}

// Empty Addr runs sessions and locks in process and disables the availability cache.
type RedisConfig struct {
	Addr            string        `envconfig:"REDIS_ADDR"`
	Password        string        `envconfig:"REDIS_PASSWORD"`
	DB              int           `envconfig:"REDIS_DB" default:"0"`
	AvailabilityTTL time.Duration `envconfig:"REDIS_AVAILABILITY_TTL" default:"30s"`
	LockTTL         time.Duration `envconfig:"REDIS_LOCK_TTL" default:"10s"`
}

// Empty Brokers turns booking events into no-ops.
type KafkaConfig struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"booking-events"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// CheckoutConfig points at the payment backend that holds the provider credential.
type CheckoutConfig struct {
	URL           string        `envconfig:"CHECKOUT_URL" required:"true"`
	TokenSecret   string        `envconfig:"CHECKOUT_TOKEN_SECRET" required:"true"`
	TokenDuration time.Duration `envconfig:"CHECKOUT_TOKEN_DURATION" default:"1m"`
	Timeout       time.Duration `envconfig:"CHECKOUT_TIMEOUT" default:"10s"`
	Currency      string        `envconfig:"CHECKOUT_CURRENCY" default:"eur"`
}

type SessionConfig struct {
	TTL             time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	RecheckOnSubmit bool          `envconfig:"BOOKING_RECHECK_ON_SUBMIT" default:"true"`
	MaxStayNights   int           `envconfig:"BOOKING_MAX_STAY_NIGHTS" default:"365"`
}

type CatalogConfig struct {
	ApartmentKeysFile string `envconfig:"APARTMENT_KEYS_FILE"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// LoadConfig reads an optional .env file, then the process environment, which wins.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
			MinConns: 1,
		},
		Redis: RedisConfig{
			AvailabilityTTL: 30 * time.Second,
			LockTTL:         10 * time.Second,
		},
		Kafka: KafkaConfig{
			Topic: "booking-events",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Checkout: CheckoutConfig{
			URL:           "http://localhost:9999/checkout-sessions",
			TokenSecret:   "test-checkout-secret",
			TokenDuration: time.Minute,
			Timeout:       2 * time.Second,
			Currency:      "eur",
		},
		Session: SessionConfig{
			TTL:             30 * time.Minute,
			RecheckOnSubmit: true,
			MaxStayNights:   365,
		},
	}
}
