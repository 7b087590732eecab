package dataset

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epmviz/backend/internal/core/geom"
	"github.com/epmviz/backend/internal/core/trajectory"
)

const sample = `{
	"metadata": {"max_turns": 4, "total_cases": 2},
	"trajectories": [
		{"script_id": "s-1", "status": "success", "points": [[0,0,0],[1,1,1],[2,2,2],[3,3,3],[4,4,4]]},
		{"script_id": "s-2", "status": "timeout", "points": [[-10,-5,-2],[-8,-4,-1]]}
	]
}`

func TestDecode(t *testing.T) {
	ds, err := Decode([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, trajectory.Metadata{MaxTurns: 4, TotalCases: 2}, ds.Metadata)
	require.Len(t, ds.Trajectories, 2)
	assert.Equal(t, "s-1", ds.Trajectories[0].ID)
	assert.True(t, ds.Trajectories[0].Status.IsSuccess())
	assert.False(t, ds.Trajectories[1].Status.IsSuccess())
	assert.Equal(t, geom.Point3{C: -8, A: -4, P: -1}, ds.Trajectories[1].End())
}

func TestDecodeRejects(t *testing.T) {
	cases := map[string]string{
		"malformed json":  `{"metadata":`,
		"zero horizon":    `{"metadata":{"max_turns":0,"total_cases":1},"trajectories":[]}`,
		"empty points":    `{"metadata":{"max_turns":2,"total_cases":1},"trajectories":[{"script_id":"a","status":"success","points":[]}]}`,
		"missing points":  `{"metadata":{"max_turns":2,"total_cases":1},"trajectories":[{"script_id":"a","status":"success"}]}`,
		"short point":     `{"metadata":{"max_turns":2,"total_cases":1},"trajectories":[{"script_id":"a","status":"success","points":[[1,2]]}]}`,
		"missing id":      `{"metadata":{"max_turns":2,"total_cases":1},"trajectories":[{"status":"success","points":[[1,2,3]]}]}`,
		"negative counts": `{"metadata":{"max_turns":2,"total_cases":-1},"trajectories":[]}`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			ds, err := Decode([]byte(doc))
			assert.Nil(t, ds, spew.Sdump(ds))
			require.ErrorIs(t, err, ErrInvalidDataset)

			var invalid *InvalidError
			require.ErrorAs(t, err, &invalid)
			assert.NotEmpty(t, invalid.Violations)
		})
	}
}

func TestDecodeKeepsRepeatedIDs(t *testing.T) {
	ds, err := Decode([]byte(`{"metadata":{"max_turns":2,"total_cases":2},"trajectories":[{"script_id":"a","points":[[1,2,3]]},{"script_id":"a","points":[[4,5,6]]}]}`))
	require.NoError(t, err)
	require.Len(t, ds.Trajectories, 2)
	assert.Equal(t, "a", ds.Trajectories[1].ID)
	assert.Equal(t, geom.Point3{C: 4, A: 5, P: 6}, ds.Trajectories[1].End())
}

func TestDecodeReportsWireFieldNames(t *testing.T) {
	_, err := Decode([]byte(`{"metadata":{"max_turns":2,"total_cases":1},"trajectories":[{"script_id":"a","points":[[1,2]]}]}`))

	var invalid *InvalidError
	require.ErrorAs(t, err, &invalid)
	require.Len(t, invalid.Violations, 1)
	assert.Contains(t, invalid.Violations[0].Field, "points")
	assert.Equal(t, "len", invalid.Violations[0].Violation)
}

func TestParseLocation(t *testing.T) {
	loc, err := ParseLocation("data/trajectories.json")
	require.NoError(t, err)
	assert.Equal(t, Location{Scheme: SchemeFile, Path: "data/trajectories.json"}, loc)

	loc, err = ParseLocation("https://example.com/data/trajectories.json")
	require.NoError(t, err)
	assert.Equal(t, SchemeHTTPS, loc.Scheme)
	assert.Equal(t, "https://example.com/data/trajectories.json", loc.Path)

	loc, err = ParseLocation("s3://bucket/datasets/epm.json")
	require.NoError(t, err)
	assert.Equal(t, Location{Scheme: SchemeS3, Bucket: "bucket", Path: "datasets/epm.json"}, loc)
	assert.Equal(t, "s3://bucket/datasets/epm.json", loc.String())

	for _, bad := range []string{"", "ftp://host/file", "s3://bucket-only"} {
		_, err = ParseLocation(bad)
		assert.ErrorIs(t, err, ErrUnsupportedURI, bad)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajectories.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	loaded, err := Load(context.Background(), NewFileSource(path), "any-model")
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Location)
	assert.Equal(t, Digest([]byte(sample)), loaded.Digest)
	assert.Len(t, loaded.Dataset.Trajectories, 2)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.json")).Fetch(context.Background(), "m")
	assert.ErrorIs(t, err, ErrFetch)
}

func TestModelDoesNotSelectDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajectories.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	src := NewFileSource(path)

	a, err := src.Fetch(context.Background(), "model-a")
	require.NoError(t, err)
	b, err := src.Fetch(context.Background(), "model-b")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/trajectories.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(sample))
	}))
	defer srv.Close()

	b, err := NewHTTPSource(srv.URL+"/data/trajectories.json", time.Second).Fetch(context.Background(), "m")
	require.NoError(t, err)
	assert.JSONEq(t, sample, string(b))

	_, err = NewHTTPSource(srv.URL+"/elsewhere.json", time.Second).Fetch(context.Background(), "m")
	assert.ErrorIs(t, err, ErrFetch)
}

type fakeBucket map[string][]byte

func (f fakeBucket) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b, ok := f[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "The specified key does not exist."}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func TestS3Source(t *testing.T) {
	bucket := fakeBucket{"epm/trajectories.json": []byte(sample)}

	src := NewS3Source(bucket, "epm", "trajectories.json")
	assert.Equal(t, "s3://epm/trajectories.json", src.Location())

	b, err := src.Fetch(context.Background(), "m")
	require.NoError(t, err)
	assert.Equal(t, []byte(sample), b)

	_, err = NewS3Source(bucket, "epm", "missing.json").Fetch(context.Background(), "m")
	assert.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "NoSuchKey")
}

func TestDigestIsStable(t *testing.T) {
	assert.Equal(t, Digest([]byte(sample)), Digest([]byte(sample)))
	assert.NotEqual(t, Digest([]byte(sample)), Digest([]byte(sample+" ")))
	assert.Len(t, Digest(nil), 16)
}
