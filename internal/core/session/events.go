package session

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

const SubjectPrefix = "EPMVIZ.session."

type EventKind string

const (
	EventRequested EventKind = "requested"
	EventRendered  EventKind = "rendered"
	EventFailed    EventKind = "failed"
	EventStale     EventKind = "stale"
)

type Event struct {
	Kind    EventKind `json:"kind"`
	Viewer  string    `json:"viewer"`
	Token   Token     `json:"token"`
	Model   string    `json:"model"`
	BuildID string    `json:"buildId,omitempty"`
	Digest  string    `json:"digest,omitempty"`
	Error   string    `json:"error,omitempty"`
	At      time.Time `json:"at"`
}

func Subject(viewer string) string {
	return SubjectPrefix + viewer
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(conn *nats.Conn) *NATSPublisher {
	return &NATSPublisher{conn: conn}
}

func (p *NATSPublisher) Publish(_ context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return errors.Wrap(err, "session: marshal event")
	}
	if err := p.conn.Publish(Subject(e.Viewer), b); err != nil {
		return errors.Wrap(err, "session: publish event")
	}
	return nil
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}
