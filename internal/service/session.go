package service

import (
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/epmviz/backend/internal/app/appconfig"
	"github.com/epmviz/backend/internal/core/session"
)

func NewSessionTracker(conf *appconfig.Config, client *redis.Client) session.Tracker {
	if conf.SessionBackend == appconfig.SessionBackendRedis && client != nil {
		log.Info().Str("evt.name", "session.tracker").Msg("session tokens are kept in redis")
		return session.NewRedisTracker(client)
	}
	return session.NewMemoryTracker()
}

func NewSessionPublisher(nc *nats.Conn) session.Publisher {
	if nc == nil {
		return session.NopPublisher{}
	}
	return session.NewNATSPublisher(nc)
}

func NewSessionRecords(conf *appconfig.Config) *session.Records {
	return session.NewRecords(conf.SessionRecordTTL)
}
