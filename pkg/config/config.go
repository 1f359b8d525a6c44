package config

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the client configuration read from the environment.
type Config struct {
	// LogLevel is one of error, warn, info, debug, trace.
	LogLevel string `env:"BLOCKBLAST_LOG_LEVEL" envDefault:"info"`
	// Seed seeds piece generation. 0 picks a random seed.
	Seed int64 `env:"BLOCKBLAST_SEED" envDefault:"0"`
	// Debug enables the debug overlay.
	Debug bool `env:"BLOCKBLAST_DEBUG" envDefault:"false"`
	// ClearDuration is how long completed lines animate before they are removed.
	ClearDuration time.Duration `env:"BLOCKBLAST_CLEAR_DURATION" envDefault:"1s"`
	// WindowScale multiplies the logical screen size to get the window size.
	WindowScale float64 `env:"BLOCKBLAST_WINDOW_SCALE" envDefault:"1"`
}

// Load reads an optional .env file from the working directory and then parses
// the environment.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file. A missing file is skipped.
// Variables already set in the environment win over the file.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return Parse()
}

// Parse reads the configuration from the environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c *Config) Validate() error {
	if c.ClearDuration <= 0 {
		return fmt.Errorf("clear duration must be positive, got %s", c.ClearDuration)
	}
	if c.WindowScale <= 0 {
		return fmt.Errorf("window scale must be positive, got %v", c.WindowScale)
	}
	return nil
}

// ResolveSeed returns the configured seed, or a fresh one when it is 0.
func (c *Config) ResolveSeed() (int64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	return NewSeed()
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
