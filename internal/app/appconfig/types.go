package appconfig

import (
	"fmt"
	"strings"

	"github.com/epmviz/backend/internal/core/scene"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"

	TracingExporterOTLP   = "otlp"
	TracingExporterStdout = "stdout"
)

func (c *ConfigSpec) check() error {
	c.SessionBackend = strings.ToLower(c.SessionBackend)
	switch c.SessionBackend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		return fmt.Errorf("session backend must be %q or %q, got %q", SessionBackendMemory, SessionBackendRedis, c.SessionBackend)
	}

	c.TracingExporter = strings.ToLower(c.TracingExporter)
	switch c.TracingExporter {
	case TracingExporterOTLP, TracingExporterStdout:
	default:
		return fmt.Errorf("tracing exporter must be %q or %q, got %q", TracingExporterOTLP, TracingExporterStdout, c.TracingExporter)
	}

	if c.CameraMinZ <= 0 || c.CameraMinZ > c.CameraMaxZ {
		return fmt.Errorf("camera z bounds must satisfy 0 < min <= max, got [%g, %g]", c.CameraMinZ, c.CameraMaxZ)
	}
	if c.MaxResampleDensity < 1 {
		return fmt.Errorf("max resample density must be positive, got %d", c.MaxResampleDensity)
	}
	return nil
}

// SceneOptions derives the scene rendering options from the configuration.
func (c *Config) SceneOptions() scene.Options {
	opts := scene.DefaultOptions()
	opts.MaxDensity = c.MaxResampleDensity
	opts.Camera = scene.CameraGuard{MinZ: c.CameraMinZ, MaxZ: c.CameraMaxZ}
	if c.FrameDuration > 0 {
		opts.FrameDuration = c.FrameDuration
	}
	return opts
}
