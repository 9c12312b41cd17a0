// Package telemetry is a helper package that wraps some common statsd methods.
// It hides the datadog dependency so a future metrics backend change only
// touches this file; absent configuration every call is a no-op.
package telemetry

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

var client ddstatsd.ClientInterface = &ddstatsd.NoOpClient{}

func Client() ddstatsd.ClientInterface {
	return client
}

// EmitTickStat records how long a tick stage took.
func EmitTickStat(start time.Time, stage string) {
	duration := time.Since(start)
	if err := Client().Timing("tick", duration, []string{"stage:" + stage}, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit tick stat: %v", err)
	}
}

// EmitSystemFailure counts a system error or recovered panic during a tick.
func EmitSystemFailure(system string) {
	if err := Client().Incr("system.failure", []string{"system:" + system}, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit system failure stat: %v", err)
	}
}

// Init points the package at a real statsd endpoint.
func Init(address string, tags []string) error {
	if address == "" {
		return eris.New("address must not be empty")
	}
	opts := []ddstatsd.Option{
		// The statsd namespace is the prefix of all metrics
		ddstatsd.WithNamespace("eveoffline"),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}

	newClient, err := ddstatsd.New(address, opts...)
	if err != nil {
		return err
	}
	client = newClient
	return nil
}
