package infra

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Postgres struct {
		URL string `env:"POSTGRES_URL,required"`
	}

	// Shared secret used to validate session tokens issued by the identity
	// provider.
	Identity struct {
		JWTSecret string `env:"IDP_JWT_SECRET,required"`
	}

	PayOS struct {
		ClientID    string `env:"PAYOS_CLIENT_ID"`
		APIKey      string `env:"PAYOS_API_KEY"`
		ChecksumKey string `env:"PAYOS_CHECKSUM_KEY"`
		ReturnURL   string `env:"PAYOS_RETURN_URL"`
		CancelURL   string `env:"PAYOS_CANCEL_URL"`
	}
}

func LoadConfig() (*Config, error) {
	// .env is optional; production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
