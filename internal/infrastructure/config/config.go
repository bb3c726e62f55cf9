package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// StoreBackend selects where collection snapshots are persisted:
	// "mongo" or "redis".
	StoreBackend string `env:"STORE_BACKEND, default=mongo"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Gemini GeminiConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=consultant_nexus"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// GeminiConfig configures the generative assistant. An empty APIKey disables
// every assist feature; the rest of the API keeps working.
type GeminiConfig struct {
	APIKey     string `env:"GEMINI_API_KEY"`
	Model      string `env:"GEMINI_MODEL,       default=gemini-2.5-flash"`
	ImageModel string `env:"GEMINI_IMAGE_MODEL, default=gemini-2.5-flash-image"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
