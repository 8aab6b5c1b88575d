package app

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/emiliopalmerini/swatches/internal/adapters/otel"
	"github.com/emiliopalmerini/swatches/internal/adapters/turso"
)

// EnvPrefix is prepended to every environment variable, e.g. SWATCHES_ADDR.
const EnvPrefix = "SWATCHES"

// Store backends.
const (
	StoreTurso  = "turso"
	StoreFile   = "file"
	StoreMemory = "memory"
)

type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	Slots           int           `envconfig:"SLOTS" default:"5"`
	Store           string        `envconfig:"STORE" default:"file"`
	StorageKey      string        `envconfig:"STORAGE_KEY" default:"palettes"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	Turso turso.Config
	Otel  otel.Config
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no backend can honor.
func (c *Config) Validate() error {
	if c.Slots <= 0 {
		return fmt.Errorf("invalid slot count %d: must be positive", c.Slots)
	}
	switch c.Store {
	case StoreTurso, StoreFile, StoreMemory:
	default:
		return fmt.Errorf("unknown store %q (want %s, %s or %s)", c.Store, StoreTurso, StoreFile, StoreMemory)
	}
	if c.StorageKey == "" {
		return fmt.Errorf("storage key must not be empty")
	}
	return nil
}
