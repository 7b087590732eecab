package appconfig

import (
	"time"

	"github.com/epmviz/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving normal service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9010"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// LogFile is the path of the rotated JSON log file. Leaving this empty disables file logging.
	LogFile string `split_words:"true" default:"logs/app.log"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for debugging and
	// provide a more contextual message when encountered a panic. See internal/server/httpserver/http.go for the
	// actual implementation details.
	DevMode bool `split_words:"true"`

	// TracingEnabled to indicate whether to enable OpenTelemetry tracing.
	TracingEnabled bool `split_words:"true"`

	// TracingExporter to indicate which exporter to use for tracing.
	// Valid values are: otlp, stdout (for debug).
	TracingExporter string `split_words:"true" default:"otlp"`

	// TracingSampleRate to indicate the sampling rate for tracing.
	// Valid values are: 0.0 (disabled), 1.0 (all traces), or a value between 0.0 and 1.0 (sampling rate).
	TracingSampleRate float64 `split_words:"true" default:"1.0"`

	// DatasetURI is where the trajectory dataset is read from: a local file path, an http(s) URL or an
	// s3://bucket/key object. Every model resolves to this same dataset.
	DatasetURI string `required:"true" split_words:"true" default:"data/trajectories.json"`

	// DatasetTimeout bounds a single dataset fetch. Fetches are never retried.
	DatasetTimeout time.Duration `split_words:"true" default:"15s"`

	// S3Region is the region of the bucket named in an s3:// DatasetURI.
	S3Region string `split_words:"true" default:"us-east-1"`

	// AWSAccessKey and AWSSecretKey are static credentials for the dataset bucket. When empty, the default
	// AWS credential chain is used.
	AWSAccessKey string `split_words:"true"`
	AWSSecretKey string `split_words:"true"`

	// SessionBackend selects where viewer session tokens live. Valid values are: memory, redis.
	SessionBackend string `split_words:"true" default:"memory"`

	// SessionRecordTTL is how long the last rendered scene of a viewer is remembered.
	SessionRecordTTL time.Duration `split_words:"true" default:"1h"`

	// infrastructure components connection instructions

	// RedisURL is the URL of the Redis server. It is only used when SessionBackend is redis.
	// See https://pkg.go.dev/github.com/redis/go-redis/v9#ParseURL for the URL format.
	RedisURL string `split_words:"true" default:"redis://127.0.0.1:6379/1"`

	// NatsURL is the URL of the NATS server session events are published to. Leaving this empty
	// disables event publishing. See https://pkg.go.dev/github.com/nats-io/nats.go#Connect
	NatsURL string `split_words:"true"`

	// SentryDSN is the DSN of the Sentry server. See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shut down gracefully.
	HTTPServerShutdownTimeout time.Duration `required:"true" split_words:"true" default:"60s"`

	// scene rendering

	// CameraMinZ and CameraMaxZ bound the camera eye's z coordinate.
	CameraMinZ float64 `split_words:"true" default:"0.3"`
	CameraMaxZ float64 `split_words:"true" default:"2.0"`

	// MaxResampleDensity caps the number of samples drawn for a single smoothed path.
	MaxResampleDensity int `split_words:"true" default:"100"`

	// FrameDuration is the playback delay between two turns.
	FrameDuration time.Duration `split_words:"true" default:"300ms"`
}

type Config struct {
	// ConfigSpec is the configuration specification injected to the config.
	ConfigSpec

	// AppContext is the application context
	AppContext appcontext.Ctx
}
