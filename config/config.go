// Package config loads application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envFile = ".env"

// Config holds application configuration.
type Config struct {
	Addr     string `env:"JOIN_ADDR" envDefault:":8080"`
	BoltPath string `env:"JOIN_BOLT_PATH" envDefault:"bolt.db"`
	LogLevel string `env:"JOIN_LOG_LEVEL" envDefault:"info"`
	// TimeZone is the zone the summary greeting is computed in.
	TimeZone string `env:"JOIN_TIMEZONE" envDefault:"Local"`

	StoreURL     string        `env:"JOIN_STORE_URL" envDefault:"https://remote-storage.developerakademie.org/item"`
	StoreToken   string        `env:"JOIN_STORE_TOKEN"`
	StoreTimeout time.Duration `env:"JOIN_STORE_TIMEOUT" envDefault:"0s"`

	// EmulateStore serves the blob store API at /item from the bolt file.
	EmulateStore bool `env:"JOIN_EMULATE_STORE" envDefault:"false"`
	SeedGuest    bool `env:"JOIN_SEED_GUEST" envDefault:"false"`
}

// Load reads an optional .env file, then parses the environment.
// Variables already set win over the file.
func Load() (*Config, error) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("JOIN_ADDR is required")
	}
	if c.BoltPath == "" {
		return errors.New("JOIN_BOLT_PATH is required")
	}
	if c.StoreToken == "" {
		return errors.New("JOIN_STORE_TOKEN is required")
	}
	if !c.EmulateStore && c.StoreURL == "" {
		return errors.New("JOIN_STORE_URL is required unless JOIN_EMULATE_STORE is set")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.StoreTimeout < 0 {
		return errors.New("JOIN_STORE_TIMEOUT must not be negative")
	}
	return nil
}

// Location resolves TimeZone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("JOIN_TIMEZONE: %w", err)
	}
	return loc, nil
}
