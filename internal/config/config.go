// Package config holds the service configuration: listen address, seed,
// generation bounds and listing defaults. Values come from an optional YAML
// file layered over defaults; the CLI overrides address and seed via flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits bound what one generation pass may allocate and how large a
// listing page may get.
type Limits struct {
	MaxUsers    int `yaml:"maxUsers"`
	MaxOrders   int `yaml:"maxOrders"`
	MaxProducts int `yaml:"maxProducts"`
	MaxPageSize int `yaml:"maxPageSize"`
}

// Listing holds the defaults applied to unset listing parameters.
type Listing struct {
	PageSize int    `yaml:"pageSize"`
	SortBy   string `yaml:"sortBy"`
	SortDir  string `yaml:"sortDir"`
}

// SeedDefaults are the collection sizes used when a seed request omits a
// count.
type SeedDefaults struct {
	Users    int `yaml:"users"`
	Orders   int `yaml:"orders"`
	Products int `yaml:"products"`
}

type Config struct {
	Addr         string       `yaml:"addr"`
	Seed         int64        `yaml:"seed"`
	Limits       Limits       `yaml:"limits"`
	Listing      Listing      `yaml:"listing"`
	SeedDefaults SeedDefaults `yaml:"seedDefaults"`
}

// Default mirrors the bounds and defaults of the reference deployment.
func Default() Config {
	return Config{
		Addr: ":8080",
		Seed: 12345,
		Limits: Limits{
			MaxUsers:    100000,
			MaxOrders:   1000000,
			MaxProducts: 50000,
			MaxPageSize: 200,
		},
		Listing: Listing{
			PageSize: 50,
			SortBy:   "name",
			SortDir:  "asc",
		},
		SeedDefaults: SeedDefaults{
			Users:    50000,
			Orders:   500000,
			Products: 10000,
		},
	}
}

// Load reads path over the defaults. An empty path yields Default().
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.Limits.MaxPageSize < 1 {
		return fmt.Errorf("limits.maxPageSize must be >= 1, got %d", c.Limits.MaxPageSize)
	}
	if c.Listing.PageSize < 1 || c.Listing.PageSize > c.Limits.MaxPageSize {
		return fmt.Errorf("listing.pageSize must be in 1..%d, got %d", c.Limits.MaxPageSize, c.Listing.PageSize)
	}
	if c.SeedDefaults.Users < 1 || c.SeedDefaults.Orders < 1 || c.SeedDefaults.Products < 1 {
		return fmt.Errorf("seedDefaults must be positive")
	}
	return nil
}
