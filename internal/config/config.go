package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Admin Admin

	Shops Shops

	KafkaEnabled bool
	Kafka        Kafka `validate:"required"`
}

type Http struct {
	Host string `validate:"omitempty,hostname|ip"`
	Port string `validate:"required,numeric"`
}

// Admin holds the single set of credentials accepted by the login endpoint.
// Empty values disable login: nothing matches an unset password.
type Admin struct {
	Username string
	Password string
}

type Shops struct {
	// SeedFile is an optional JSON array of shops loaded at startup.
	SeedFile string `validate:"omitempty,file"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", ""),
			Port: env("PORT", "3001"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "*"), ","),
		},

		Admin: Admin{
			Username: env("ADMIN_USERNAME", ""),
			Password: env("ADMIN_PASSWORD", ""),
		},

		Shops: Shops{
			SeedFile: env("SHOPS_SEED_FILE", ""),
		},

		KafkaEnabled: envBool("KAFKA_ENABLED", false),
		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "boba-order-service"),
			Topic:   env("KAFKA_TOPIC", "orders"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},
	}
}

// Validate checks the config. Kafka settings are only checked when the
// consumer is enabled.
func (c Config) Validate() error {
	validate := validator.New()
	if !c.KafkaEnabled {
		return validate.StructExcept(c, "Kafka")
	}
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
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
