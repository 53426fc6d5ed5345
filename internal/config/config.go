package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries process-level settings. Everything has a workable default
// so the binary runs with no environment at all; command-line flags may
// override individual fields after Load.
type Config struct {
	StorePath    string `env:"TBR_STORE_PATH" envDefault:"tetris-block-randomizer-config.json"`
	AssetsDir    string `env:"TBR_ASSETS_DIR" envDefault:"assets"`
	SpinMillis   int    `env:"TBR_SPIN_MS" envDefault:"2000"`
	WindowWidth  int    `env:"TBR_WINDOW_WIDTH" envDefault:"960"`
	WindowHeight int    `env:"TBR_WINDOW_HEIGHT" envDefault:"640"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
