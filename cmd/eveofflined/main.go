// Command eveofflined runs the headless simulation core: it loads a scenario,
// registers the domain systems, and drives the fixed-step tick loop until
// interrupted. Transport and rendering live outside this binary; they consume
// the engine's operations and snapshots.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/shifty81/EVEOFFLINE-sub004/engine"
	"github.com/shifty81/EVEOFFLINE-sub004/scenario"
	"github.com/shifty81/EVEOFFLINE-sub004/system"
	"github.com/shifty81/EVEOFFLINE-sub004/telemetry"
	"github.com/shifty81/EVEOFFLINE-sub004/world"
)

func main() {
	cfg, err := engine.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("unknown log level %q", cfg.LogLevel)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	if cfg.StatsdAddress != "" {
		if err := telemetry.Init(cfg.StatsdAddress, nil); err != nil {
			logger.Warn().Err(err).Msg("telemetry disabled")
		}
	}

	w := world.New(
		world.WithAssertions(cfg.Assertions),
		world.WithLogger(logger),
	)
	eng := engine.New(w, logger)
	err = eng.Register(
		system.NewModuleSystem(),
		system.NewSkillSystem(),
		system.NewManufacturingSystem(),
		system.NewInsuranceSystem(),
		system.NewLootSystem(cfg.LootSeed, cfg.WreckLifetime),
		system.NewWreckSystem(cfg.SalvageRange),
		system.NewMoraleSystem(),
		system.NewAnomalySystem(),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register systems")
	}

	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load scenario")
	}
	if err := sc.Apply(w); err != nil {
		logger.Fatal().Err(err).Msg("failed to apply scenario")
	}
	logger.Info().
		Int("entities", w.Len()).
		Str("scenario", cfg.ScenarioPath).
		Msg("universe bootstrapped")

	if err := eng.Init(); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize systems")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := eng.Run(ctx, cfg.TickRate); err != nil {
		logger.Fatal().Err(err).Msg("simulation loop failed")
	}
}
