package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "HOST", "PORT", "ALLOWED_CORS_ORIGINS", "KAFKA_ENABLED", "SHOPS_SEED_FILE"} {
		t.Setenv(key, "")
	}
	t.Setenv("ENV", "development")
	t.Setenv("PORT", "3001")
	t.Setenv("ALLOWED_CORS_ORIGINS", "*")
	t.Setenv("KAFKA_ENABLED", "false")

	c := New()

	assert.Equal(t, "development", c.Env)
	assert.Equal(t, "3001", c.Http.Port)
	assert.Equal(t, []string{"*"}, c.Cors.AllowedOrigins)
	assert.False(t, c.KafkaEnabled)
	require.NoError(t, c.Validate())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_CORS_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("KAFKA_READER_MAX_WAIT", "250ms")
	t.Setenv("KAFKA_BATCH_TIMEOUT", "not-a-duration")

	c := New()

	assert.Equal(t, "production", c.Env)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.Cors.AllowedOrigins)
	assert.Equal(t, Admin{Username: "admin", Password: "s3cret"}, c.Admin)
	assert.True(t, c.KafkaEnabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, 250*time.Millisecond, c.Kafka.ReaderMaxWait)
	assert.Equal(t, 10*time.Millisecond, c.Kafka.BatchTimeout)
	require.NoError(t, c.Validate())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Env:  "development",
			Http: Http{Port: "3001"},
			Cors: CORS{AllowedOrigins: []string{"*"}},
			Kafka: Kafka{
				GroupID: "boba",
				Topic:   "orders",
				Brokers: []string{"localhost:9092"},
			},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "unknown env", mutate: func(c *Config) { c.Env = "dev" }, wantErr: true},
		{name: "non numeric port", mutate: func(c *Config) { c.Http.Port = "http" }, wantErr: true},
		{name: "no cors origins", mutate: func(c *Config) { c.Cors.AllowedOrigins = nil }, wantErr: true},
		{name: "missing seed file", mutate: func(c *Config) { c.Shops.SeedFile = "/does/not/exist.json" }, wantErr: true},
		{
			name:   "broken kafka ignored when disabled",
			mutate: func(c *Config) { c.Kafka = Kafka{} },
		},
		{
			name: "broken kafka rejected when enabled",
			mutate: func(c *Config) {
				c.KafkaEnabled = true
				c.Kafka.Brokers = []string{"no-port"}
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.mutate(&c)

			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
