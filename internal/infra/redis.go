package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/epmviz/backend/internal/app/appconfig"
)

// Redis connects to Redis when it backs the session tracker; otherwise it
// provides a nil client.
func Redis(conf *appconfig.Config, lc fx.Lifecycle) (*redis.Client, error) {
	if conf.SessionBackend != appconfig.SessionBackendRedis {
		return nil, nil
	}

	u, err := redis.ParseURL(conf.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to parse redis url")
		return nil, err
	}

	client := redis.NewClient(u)

	// check redis connection
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("infra: redis: failed to ping database")
		return nil, err
	}

	lc.Append(fx.StopHook(client.Close))

	return client, nil
}
