package config

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	RPCURL       string        `env:"SOLANA_RPC_URL,default=https://api.mainnet-beta.solana.com"`
	RPCTimeout   time.Duration `env:"SOLANA_RPC_TIMEOUT,default=10s"`
	SentryURL    string        `env:"SENTRY_URL"`
	DatabaseURL  string        `env:"DATABASE_URL"`
	DatabaseName string        `env:"DATABASE_NAME"`
}

func New(ctx context.Context, envpath string) (*Config, error) {
	if envpath != "" {
		log.Default().Println("loading env from file: ", envpath)
		err := godotenv.Load(envpath)
		if err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err := envconfig.Process(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
