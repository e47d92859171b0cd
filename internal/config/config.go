package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Env      string `validate:"required,oneof=development stage production"`
	LogLevel string `validate:"required,oneof=debug info warn error"`
	Http     Http

	Cors CORS `validate:"required"`

	// пустая строка отключает раздачу страниц
	ViewsDir string

	Profiles Profiles `validate:"required"`

	// секции ниже проверяются только если используются
	Postgres Postgres `validate:"-"`
	Redis    Redis    `validate:"-"`
	Kafka    Kafka    `validate:"-"`
	Dedup    Dedup    `validate:"-"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type Profiles struct {
	Backend string `validate:"required,oneof=file postgres redis"`
	Dir     string `validate:"required_if=Backend file"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Dedup struct {
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gt=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env:      env("ENV", "development"),
		LogLevel: strings.ToLower(env("LOG_LEVEL", "info")),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "3000"),
		},

		Cors: CORS{
			AllowedOrigins: envList("ALLOWED_CORS_ORIGINS", "http://localhost:3000"),
		},

		ViewsDir: env("VIEWS_DIR", ""),

		Profiles: Profiles{
			Backend: strings.ToLower(env("PROFILES_BACKEND", BackendFile)),
			Dir:     env("PROFILES_DIR", "."),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "ride-dispatch"),
			Topic:   env("KAFKA_TOPIC", "ride-requests"),
			Brokers: envList("KAFKA_BROKERS", ""),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Dedup: Dedup{
			Capacity: envInt("DEDUP_CAPACITY", 10000),
			TTL:      envDuration("DEDUP_TTL", 24*time.Hour),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "dispatch"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},
	}
}

// KafkaEnabled reports whether ride requests are also consumed from Kafka.
func (c Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	switch c.Profiles.Backend {
	case BackendPostgres:
		if err := validate.Struct(c.Postgres); err != nil {
			return err
		}
	case BackendRedis:
		if err := validate.Struct(c.Redis); err != nil {
			return err
		}
	}

	if c.KafkaEnabled() {
		if err := validate.Struct(c.Kafka); err != nil {
			return err
		}
		if err := validate.Struct(c.Dedup); err != nil {
			return err
		}
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// envList разбивает значение по запятым, пустые элементы отбрасываются
func envList(key string, fallback string) []string {
	parts := strings.Split(env(key, fallback), ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
