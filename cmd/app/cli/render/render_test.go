package render

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/epmviz/backend/internal/core/geom"
	"github.com/epmviz/backend/internal/core/scene"
	"github.com/epmviz/backend/internal/core/trajectory"
)

func testRenderable(t *testing.T) *scene.Renderable {
	t.Helper()
	r, err := scene.Build(&trajectory.Dataset{
		Metadata: trajectory.Metadata{MaxTurns: 2, TotalCases: 1},
		Trajectories: []*trajectory.Trajectory{
			{ID: "a", Status: trajectory.StatusSuccess, Points: []geom.Point3{{C: 1, A: 2, P: 3}, {C: 2, A: 3, P: 4}}},
		},
	}, scene.DefaultOptions())
	require.NoError(t, err)
	return r
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("msgpack")
	require.NoError(t, err)
	assert.Equal(t, FormatMsgpack, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	r := testRenderable(t)

	for _, format := range []string{FormatJSON, FormatMsgpack} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, r, format))

			var decoded map[string]any
			if format == FormatJSON {
				require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
			} else {
				require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &decoded))
			}

			assert.Equal(t, r.BuildID, decoded["buildId"])
			assert.Len(t, decoded["frames"], 2)
			assert.Len(t, decoded["data"], len(r.Data))
			assert.Contains(t, decoded, "layout")
			assert.Contains(t, decoded, "config")
		})
	}
}
