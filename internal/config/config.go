package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every runtime knob, sourced from the environment with an
// optional .env file on top.
type Config struct {
	HTTPPort            int           `env:"HTTP_PORT"             envDefault:"4001"`
	MongoURI            string        `env:"MONGO_URI,required,notEmpty"`
	MongoDatabase       string        `env:"MONGO_DATABASE"        envDefault:"localApp"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	TrendingPoolsURL    string        `env:"TRENDING_POOLS_URL"    envDefault:"https://api.geckoterminal.com/api/v2/networks/trending_pools"`
	TrendingTimeout     time.Duration `env:"TRENDING_TIMEOUT"      envDefault:"30s"`
	CORSAllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS"  envDefault:"*"`
}

// Load reads the configuration from the environment. A missing .env file
// is fine; a missing MONGO_URI is not.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
