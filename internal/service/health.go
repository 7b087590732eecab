package service

import (
	"context"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/epmviz/backend/internal/pkg/async"
)

var (
	ErrRedisNotReachable = errors.New("redis not reachable")
	ErrNATSNotReachable  = errors.New("nats not reachable")
)

// Health checks the optional infrastructure that is actually in use. A nil
// client means the feature is disabled and is not checked.
type Health struct {
	Redis *redis.Client
	NATS  *nats.Conn
}

func NewHealth(redis *redis.Client, nats *nats.Conn) *Health {
	return &Health{
		Redis: redis,
		NATS:  nats,
	}
}

func (s *Health) Ping(ctx context.Context) error {
	var checks []<-chan error

	if s.Redis != nil {
		checks = append(checks, async.Errable(func() error {
			if err := s.Redis.Ping(ctx).Err(); err != nil {
				return errors.Wrap(ErrRedisNotReachable, err.Error())
			}
			return nil
		}))
	}

	if s.NATS != nil {
		// nats does automatic ping for 20 seconds interval (configurated at infra/nats.go)
		checks = append(checks, async.Errable(func() error {
			status := s.NATS.Status()
			if status != nats.CONNECTED && status != nats.DRAINING_PUBS && status != nats.DRAINING_SUBS {
				return errors.Wrap(ErrNATSNotReachable, status.String())
			}
			return nil
		}))
	}

	return async.WaitAll(checks...)
}
