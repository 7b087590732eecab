package infra

import (
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/epmviz/backend/internal/app/appconfig"
)

// NATS connects to the broker session events are published to. An empty
// NatsURL provides a nil connection.
func NATS(conf *appconfig.Config, lc fx.Lifecycle) (*nats.Conn, error) {
	if conf.NatsURL == "" {
		log.Info().Msg("infra: nats: no url configured, session events are disabled")
		return nil, nil
	}

	errorHandler := func(conn *nats.Conn, sub *nats.Subscription, err error) {
		evt := log.Error().
			Str("evt.name", "nats.error").
			Err(err).
			Str("conn.url", conn.ConnectedUrlRedacted())
		if sub != nil {
			evt = evt.Str("sub.subject", sub.Subject)
		}
		evt.Msg("nats error")
	}

	nc, err := nats.Connect(conf.NatsURL,
		nats.Name("epmviz"),
		nats.PingInterval(time.Second*20),
		nats.ErrorHandler(errorHandler),
	)
	if err != nil {
		log.Error().Err(err).Msg("infra: nats: failed to connect to NATS")
		return nil, err
	}

	lc.Append(fx.StopHook(func() error {
		return nc.Drain()
	}))

	return nc, nil
}
