package dataset

import (
	"context"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrFetch          = errors.New("dataset: fetch failed")
	ErrUnsupportedURI = errors.New("dataset: unsupported location")
)

// Source fetches the raw trajectory dataset. The model name is accepted for
// every request, but all models currently resolve to the same dataset.
type Source interface {
	Fetch(ctx context.Context, model string) ([]byte, error)

	// Location describes where the dataset comes from, for logs and summaries.
	Location() string
}

type Scheme string

const (
	SchemeFile  Scheme = "file"
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
	SchemeS3    Scheme = "s3"
)

// Location is a parsed dataset URI. Bare paths are treated as local files.
type Location struct {
	Scheme Scheme
	// Path is the file path, the full URL for http(s), or the object key for s3.
	Path   string
	Bucket string
}

func ParseLocation(uri string) (Location, error) {
	if uri == "" {
		return Location{}, errors.Wrap(ErrUnsupportedURI, "empty dataset uri")
	}
	if !strings.Contains(uri, "://") {
		return Location{Scheme: SchemeFile, Path: uri}, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return Location{}, errors.Wrap(ErrUnsupportedURI, err.Error())
	}

	switch Scheme(strings.ToLower(u.Scheme)) {
	case SchemeFile:
		return Location{Scheme: SchemeFile, Path: u.Host + u.Path}, nil
	case SchemeHTTP, SchemeHTTPS:
		return Location{Scheme: Scheme(strings.ToLower(u.Scheme)), Path: uri}, nil
	case SchemeS3:
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return Location{}, errors.Wrapf(ErrUnsupportedURI, "s3 uri needs both bucket and key: %s", uri)
		}
		return Location{Scheme: SchemeS3, Bucket: u.Host, Path: key}, nil
	default:
		return Location{}, errors.Wrapf(ErrUnsupportedURI, "scheme %q", u.Scheme)
	}
}

func (l Location) String() string {
	switch l.Scheme {
	case SchemeS3:
		return "s3://" + l.Bucket + "/" + l.Path
	default:
		return l.Path
	}
}
