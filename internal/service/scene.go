package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/epmviz/backend/internal/app/appconfig"
	"github.com/epmviz/backend/internal/core/dataset"
	"github.com/epmviz/backend/internal/core/scene"
	"github.com/epmviz/backend/internal/core/session"
	"github.com/epmviz/backend/internal/core/trajectory"
	"github.com/epmviz/backend/internal/pkg/apperr"
	"github.com/epmviz/backend/internal/pkg/observability"
)

var tracer = otel.Tracer("github.com/epmviz/backend/internal/service")

type SceneDeps struct {
	fx.In

	Config    *appconfig.Config
	Source    dataset.Source
	Tracker   session.Tracker
	Publisher session.Publisher
	Records   *session.Records
}

type Scene struct {
	conf      *appconfig.Config
	opts      scene.Options
	source    dataset.Source
	scheme    string
	tracker   session.Tracker
	publisher session.Publisher
	records   *session.Records
}

// Rendered is a scene together with the session token it was rendered under.
// Token is zero for anonymous requests.
type Rendered struct {
	Token      session.Token
	Renderable *scene.Renderable
}

func NewScene(deps SceneDeps) *Scene {
	scheme := string(dataset.SchemeFile)
	if loc, err := dataset.ParseLocation(deps.Source.Location()); err == nil {
		scheme = string(loc.Scheme)
	}

	return &Scene{
		conf:      deps.Config,
		opts:      deps.Config.SceneOptions(),
		source:    deps.Source,
		scheme:    scheme,
		tracker:   deps.Tracker,
		publisher: deps.Publisher,
		records:   deps.Records,
	}
}

// Render loads the dataset and builds the renderable scene for viewer. When a
// newer request of the same viewer began in the meantime, the result is
// discarded and apperr.ErrStaleSession is returned.
func (s *Scene) Render(ctx context.Context, viewer, model string) (*Rendered, error) {
	ctx, span := tracer.Start(ctx, "scene.render", trace.WithAttributes(
		attribute.String("viewer", viewer),
		attribute.String("model", model),
	))
	defer span.End()

	var token session.Token
	if viewer != "" {
		var err error
		token, err = s.tracker.Begin(ctx, viewer)
		if err != nil {
			return nil, errors.Wrap(err, "begin session")
		}
	}
	logger := log.With().
		Str("evt.name", "scene.render").
		Str("viewer", viewer).
		Uint64("token", uint64(token)).
		Str("model", model).
		Logger()
	s.publish(ctx, session.Event{Kind: session.EventRequested, Viewer: viewer, Token: token, Model: model})

	r, digest, err := s.load(ctx, model)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		observability.SessionOutcomes.WithLabelValues("failed").Inc()
		s.publish(ctx, session.Event{Kind: session.EventFailed, Viewer: viewer, Token: token, Model: model, Error: err.Error()})
		return nil, err
	}

	if viewer != "" {
		if err := session.Ensure(ctx, s.tracker, viewer, token); err != nil {
			if !errors.Is(err, session.ErrStale) {
				return nil, errors.Wrap(err, "check session")
			}
			logger.Debug().Msg("discarding scene of a superseded request")
			observability.SessionOutcomes.WithLabelValues("stale").Inc()
			s.publish(ctx, session.Event{Kind: session.EventStale, Viewer: viewer, Token: token, Model: model, Digest: digest})
			return nil, apperr.ErrStaleSession
		}

		s.records.Put(session.Record{
			Viewer:       viewer,
			Model:        model,
			Token:        token,
			BuildID:      r.BuildID,
			Digest:       digest,
			Frames:       len(r.Frames),
			Trajectories: r.Summary.Trajectories,
			RenderedAt:   time.Now(),
		})
	}

	observability.SessionOutcomes.WithLabelValues("rendered").Inc()
	s.publish(ctx, session.Event{Kind: session.EventRendered, Viewer: viewer, Token: token, Model: model, BuildID: r.BuildID, Digest: digest})

	logger.Info().
		Str("build", r.BuildID).
		Int("turns", len(r.Frames)).
		Int("trajectories", r.Summary.Trajectories).
		Msg("scene rendered")

	return &Rendered{Token: token, Renderable: r}, nil
}

// Frame returns the scene state after the given turn. Only that frame is laid
// out.
func (s *Scene) Frame(ctx context.Context, model string, turn int) (*scene.Frame, error) {
	loaded, err := s.fetch(ctx, model)
	if err != nil {
		return nil, err
	}
	maxTurns := loaded.Dataset.Metadata.MaxTurns
	if turn < 1 || turn > maxTurns {
		return nil, apperr.ErrNotFound.Msg("turn %d is out of range [1, %d]", turn, maxTurns)
	}

	plan, err := scene.NewPlan(trajectory.Partition(loaded.Dataset.Trajectories), s.opts)
	if err != nil {
		observability.DatasetLoadFailures.WithLabelValues("build").Inc()
		return nil, apperr.ErrInvalidDataset.Msg("trajectory dataset cannot be rendered: %s", err)
	}
	f := plan.Frame(turn)
	return &f, nil
}

func (s *Scene) Summary(ctx context.Context, model string) (*scene.Summary, error) {
	loaded, err := s.fetch(ctx, model)
	if err != nil {
		return nil, err
	}
	summary := scene.Summarize(loaded.Dataset)
	summary.Digest = loaded.Digest
	return &summary, nil
}

// Relayout checks a relayout event reported by the renderer. It returns the
// corrective patch, or nil when the camera is within bounds.
func (s *Scene) Relayout(event []byte) ([]byte, error) {
	patch, changed, err := s.opts.Camera.Correct(event)
	if err != nil {
		return nil, apperr.ErrInvalidReq.Msg("invalid relayout event: %s", err)
	}
	if !changed {
		return nil, nil
	}
	observability.CameraCorrections.Inc()
	return patch, nil
}

func (s *Scene) LastRecord(viewer string) (*session.Record, error) {
	r, ok := s.records.Get(viewer)
	if !ok {
		return nil, apperr.ErrNotFound.Msg("no scene has been rendered for viewer %q", viewer)
	}
	return &r, nil
}

func (s *Scene) fetch(ctx context.Context, model string) (*dataset.Loaded, error) {
	ctx, cancel := context.WithTimeout(ctx, s.conf.DatasetTimeout)
	defer cancel()

	timer := prometheus.NewTimer(observability.DatasetLoadDuration.WithLabelValues(s.scheme))
	loaded, err := dataset.Load(ctx, s.source, model)
	timer.ObserveDuration()
	if err != nil {
		return nil, s.mapLoadError(err)
	}
	return loaded, nil
}

func (s *Scene) load(ctx context.Context, model string) (*scene.Renderable, string, error) {
	loaded, err := s.fetch(ctx, model)
	if err != nil {
		return nil, "", err
	}

	timer := prometheus.NewTimer(observability.SceneBuildDuration)
	r, err := scene.Build(loaded.Dataset, s.opts)
	timer.ObserveDuration()
	if err != nil {
		observability.DatasetLoadFailures.WithLabelValues("build").Inc()
		return nil, "", apperr.ErrInvalidDataset.Msg("trajectory dataset cannot be rendered: %s", err)
	}
	r.Summary.Digest = loaded.Digest
	observability.SceneFrames.Observe(float64(len(r.Frames)))

	return r, loaded.Digest, nil
}

func (s *Scene) mapLoadError(err error) error {
	var invalid *dataset.InvalidError
	switch {
	case errors.As(err, &invalid):
		observability.DatasetLoadFailures.WithLabelValues("invalid").Inc()
		return apperr.ErrInvalidDataset.WithExtras(apperr.Extras{
			"violations": invalid.Violations,
		})
	case errors.Is(err, context.DeadlineExceeded):
		observability.DatasetLoadFailures.WithLabelValues("timeout").Inc()
		return apperr.ErrLoadFailed.Msg("timed out loading trajectory dataset after %s", s.conf.DatasetTimeout)
	case errors.Is(err, dataset.ErrFetch):
		observability.DatasetLoadFailures.WithLabelValues("fetch").Inc()
		return apperr.ErrLoadFailed
	default:
		observability.DatasetLoadFailures.WithLabelValues("other").Inc()
		return errors.Wrap(err, "load dataset")
	}
}

func (s *Scene) publish(ctx context.Context, e session.Event) {
	if e.Viewer == "" {
		return
	}
	e.At = time.Now()
	if err := s.publisher.Publish(ctx, e); err != nil {
		log.Warn().
			Str("evt.name", "session.publish").
			Str("viewer", e.Viewer).
			Str("kind", string(e.Kind)).
			Err(err).
			Msg("failed to publish session event")
	}
}
