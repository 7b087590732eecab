package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epmviz/backend/internal/app/appcontext"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse(appcontext.Declare(appcontext.EnvTest))
	require.NoError(t, err)

	assert.Equal(t, "data/trajectories.json", conf.DatasetURI)
	assert.Equal(t, SessionBackendMemory, conf.SessionBackend)
	assert.Equal(t, 100, conf.MaxResampleDensity)
	assert.Equal(t, appcontext.EnvTest, conf.AppContext.Env)

	opts := conf.SceneOptions()
	assert.Equal(t, 0.3, opts.Camera.MinZ)
	assert.Equal(t, 2.0, opts.Camera.MaxZ)
	assert.Equal(t, 300*time.Millisecond, opts.FrameDuration)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("EPMVIZ_DATASET_URI", "s3://bucket/epm.json")
	t.Setenv("EPMVIZ_SESSION_BACKEND", "Redis")
	t.Setenv("EPMVIZ_MAX_RESAMPLE_DENSITY", "40")

	conf, err := Parse(appcontext.Declare(appcontext.EnvTest))
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/epm.json", conf.DatasetURI)
	assert.Equal(t, SessionBackendRedis, conf.SessionBackend)
	assert.Equal(t, 40, conf.SceneOptions().MaxDensity)
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Run("session backend", func(t *testing.T) {
		t.Setenv("EPMVIZ_SESSION_BACKEND", "etcd")
		_, err := Parse(appcontext.Declare(appcontext.EnvTest))
		assert.Error(t, err)
	})

	t.Run("camera bounds", func(t *testing.T) {
		t.Setenv("EPMVIZ_CAMERA_MIN_Z", "3")
		_, err := Parse(appcontext.Declare(appcontext.EnvTest))
		assert.Error(t, err)
	})
}
