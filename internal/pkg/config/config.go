package config

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=240h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	ActivityWorkers int `env:"ACTIVITY_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=task_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// EnsureJWTSecret fills in the signing secret when none was configured:
// it generates 32 cryptographically random bytes and appends the value to
// envFile so restarts keep verifying previously issued tokens. Returns
// true when a new secret was generated.
//
// This runs once during bootstrap; the secret is then passed down
// explicitly and never read from the environment again.
func (c *Config) EnsureJWTSecret(envFile string) (bool, error) {
	if c.JWTSecret != "" {
		return false, nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return false, fmt.Errorf("generate jwt secret: %w", err)
	}
	secret := hex.EncodeToString(buf)

	f, err := os.OpenFile(envFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return false, fmt.Errorf("persist jwt secret: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "JWT_SECRET=%s\n", secret); err != nil {
		return false, fmt.Errorf("persist jwt secret: %w", err)
	}

	c.JWTSecret = secret
	return true, nil
}
