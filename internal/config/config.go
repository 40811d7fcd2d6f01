package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// ErrJWTSecretMissing is returned when no signing secret is configured.
var ErrJWTSecretMissing = errors.New("JWT_SECRET_KEY must be set")

// Config holds all application, database, cache, broker, logging and JWT settings.
type Config struct {
	AppHost        string
	AppPort        string
	LogLevel       string
	GRPCHealthPort string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	// Empty RedisHost disables the car cache.
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	CarCacheTTL       time.Duration

	// Empty KafkaBrokers disables listing events.
	KafkaBrokers        []string
	KafkaCarEventsTopic string

	JWTSecretKey string
	JWTExp       time.Duration

	LoginRateLimitRPS   float64
	LoginRateLimitBurst int
}

// Load reads the env file at path (if present) and builds a Config from the
// process environment, falling back to defaults.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	var err error

	// Application config
	cfg.AppHost = cast.ToString(getOrReturnDefault("APP_HOST", "localhost"))
	cfg.AppPort = cast.ToString(getOrReturnDefault("APP_PORT", "8080"))
	cfg.LogLevel = cast.ToString(getOrReturnDefault("APP_LOG_LEVEL", "info"))
	cfg.GRPCHealthPort = cast.ToString(getOrReturnDefault("GRPC_HEALTH_PORT", "9090"))

	// PostgreSQL config
	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "user"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "password"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "car_rental"))
	if cfg.PostgresPort, err = toInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxOpenConns, err = toInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxIdleConns, err = toInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if cfg.RedisPort, err = toInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = toInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = toInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = toInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	cacheTTL, err := toInt("CAR_CACHE_TTL_SECOND", 60)
	if err != nil {
		return nil, err
	}
	cfg.CarCacheTTL = time.Duration(cacheTTL) * time.Second

	// Kafka config
	cfg.KafkaBrokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.KafkaCarEventsTopic = cast.ToString(getOrReturnDefault("KAFKA_CAR_EVENTS_TOPIC", "car-listing-events"))

	// JWT config
	cfg.JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if cfg.JWTSecretKey == "" {
		return nil, ErrJWTSecretMissing
	}
	jwtExp, err := toInt("JWT_EXP_SECOND", 1800)
	if err != nil {
		return nil, err
	}
	if jwtExp <= 0 {
		return nil, fmt.Errorf("JWT_EXP_SECOND must be positive, got %d", jwtExp)
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// Login throttling
	if cfg.LoginRateLimitRPS, err = cast.ToFloat64E(getOrReturnDefault("LOGIN_RATE_LIMIT_RPS", 5)); err != nil {
		return nil, fmt.Errorf("LOGIN_RATE_LIMIT_RPS: %w", err)
	}
	if cfg.LoginRateLimitBurst, err = toInt("LOGIN_RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PostgresDSN returns the connection URL for the pgx driver and migrations.
func (c *Config) PostgresDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresHost, strconv.Itoa(c.PostgresPort)),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func toInt(key string, defaultValue int) (int, error) {
	v, err := cast.ToIntE(getOrReturnDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
