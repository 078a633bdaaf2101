package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	Env         string        `env:"ENV" envDefault:"development"`
	PostgresDSN string        `env:"POSTGRES_CONN_STR"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"supersecretjwtkey"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"72h"`
}

// Load reads .env when present, then parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
