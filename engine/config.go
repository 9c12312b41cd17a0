package engine

import (
	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
)

// Config holds the host-loop configuration. Every field can be set via
// environment variables with the listed defaults.
type Config struct {
	// Ticks per second of the fixed-step loop.
	TickRate float64 `env:"EVEOFFLINE_TICK_RATE" envDefault:"10"`

	// Minimum zerolog level emitted by the binary.
	LogLevel string `env:"EVEOFFLINE_LOG_LEVEL" envDefault:"info"`

	// Optional statsd endpoint; telemetry stays no-op when empty.
	StatsdAddress string `env:"EVEOFFLINE_STATSD_ADDRESS"`

	// Path of the YAML scenario loaded at startup.
	ScenarioPath string `env:"EVEOFFLINE_SCENARIO" envDefault:"scenario.yaml"`

	// Seed of the shared loot roll sequence.
	LootSeed int64 `env:"EVEOFFLINE_LOOT_SEED" envDefault:"1"`

	// Maximum distance at which a wreck can be salvaged, in meters.
	SalvageRange float64 `env:"EVEOFFLINE_SALVAGE_RANGE" envDefault:"2500"`

	// Seconds a wreck persists before it despawns.
	WreckLifetime float64 `env:"EVEOFFLINE_WRECK_LIFETIME" envDefault:"300"`

	// Panic on corrupted-world conditions instead of skipping them.
	Assertions bool `env:"EVEOFFLINE_ASSERTIONS" envDefault:"false"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (Config, error) {
	cfg := Config{}

	if err := env.Parse(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to parse config")
	}

	if err := cfg.validate(); err != nil {
		return cfg, eris.Wrap(err, "failed to validate config")
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.TickRate <= 0 {
		return eris.New("tick rate must be positive")
	}
	if cfg.SalvageRange <= 0 {
		return eris.New("salvage range must be positive")
	}
	if cfg.WreckLifetime <= 0 {
		return eris.New("wreck lifetime must be positive")
	}
	return nil
}
