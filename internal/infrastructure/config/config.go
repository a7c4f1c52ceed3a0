package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config carries the console's runtime settings. Everything has a default;
// only the backend URL is commonly overridden.
type Config struct {
	APIBaseURL  string        `env:"API_BASE_URL,  default=http://localhost:8080"`
	TokenPath   string        `env:"TOKEN_PATH"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,  default=15s"`
	LogLevel    string        `env:"LOG_LEVEL,     default=info"`
	PrettyLogs  bool          `env:"PRETTY_LOGS,   default=true"`
	Env         string        `env:"ENV,           default=development"`
}

// Load reads configuration from a local .env file (if present) and the
// environment. TOKEN_PATH defaults to ~/.consola/token when unset.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}

	if cfg.TokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.TokenPath = filepath.Join(home, ".consola", "token")
	}
	return &cfg, nil
}
