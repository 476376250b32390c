package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is read from CIPHERVIZ_-prefixed environment variables. Every
// field has a usable default so the binary runs with nothing set.
type Config struct {
	WindowWidth  int    `envconfig:"WINDOW_WIDTH" default:"1024"`
	WindowHeight int    `envconfig:"WINDOW_HEIGHT" default:"768"`
	Message      string `envconfig:"MESSAGE" default:"HELLO TORUS"`

	// Torus transform parameters.
	Key1 int `envconfig:"KEY1" default:"3"`
	Mod1 int `envconfig:"MOD1" default:"26"`
	Key2 int `envconfig:"KEY2" default:"5"`
	Mod2 int `envconfig:"MOD2" default:"26"`

	// Polynomial transform parameters.
	Key3 int `envconfig:"KEY3" default:"7"`
	Mod3 int `envconfig:"MOD3" default:"26"`

	ShowTorus      bool `envconfig:"SHOW_TORUS" default:"true"`
	ShowPolynomial bool `envconfig:"SHOW_POLYNOMIAL" default:"true"`

	Sonify     bool `envconfig:"SONIFY" default:"false"`
	SampleRate int  `envconfig:"SAMPLE_RATE" default:"44100"`
}

// Load reads the environment and sanitizes it. The transforms treat a
// modulus below 1 as a precondition violation, so moduli are floored here,
// on the glue side, before anything reaches them.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("cipherviz", &cfg); err != nil {
		return nil, err
	}

	cfg.Mod1 = atLeastOne(cfg.Mod1)
	cfg.Mod2 = atLeastOne(cfg.Mod2)
	cfg.Mod3 = atLeastOne(cfg.Mod3)
	if cfg.WindowWidth < 320 {
		cfg.WindowWidth = 320
	}
	if cfg.WindowHeight < 240 {
		cfg.WindowHeight = 240
	}
	if cfg.SampleRate < 8000 {
		cfg.SampleRate = 44100
	}
	return &cfg, nil
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
