package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env"
)

type Config struct {
	BankAddr       string        `env:"BANK_ADDRESS"`
	BankURI        string        `env:"BANK_URI"`
	LogLevel       string        `env:"LOG_LEVEL"`
	FixtureFile    string        `env:"FIXTURE_FILE"`
	OverdraftLimit int64         `env:"OVERDRAFT_LIMIT"`
	FlashDuration  time.Duration `env:"FLASH_DURATION"`
}

func NewConfig() (Config, error) {
	cfg := Config{}

	flag.StringVar(&cfg.BankAddr, "a", "0.0.0.0:8081", "bank service listening address [env:BANK_ADDRESS]")
	flag.StringVar(&cfg.BankURI, "b", "http://localhost:8081", "bank service URI [env:BANK_URI]")
	flag.StringVar(&cfg.LogLevel, "l", "info", "log output level [env:LOG_LEVEL]")
	flag.StringVar(&cfg.FixtureFile, "f", "fixture.yaml", "vault stock and customers file [env:FIXTURE_FILE]")
	flag.Int64Var(&cfg.OverdraftLimit, "o", 100, "account overdraft limit [env:OVERDRAFT_LIMIT]")
	flag.DurationVar(&cfg.FlashDuration, "t", 2*time.Second, "transient message duration [env:FLASH_DURATION]")
	flag.Parse()

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("env.Parse: %w", err)
	}

	return cfg, nil
}
