package dataset

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(ctx context.Context, _ string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, errors.Wrap(ErrFetch, err.Error())
	}
	return b, nil
}

func (s *FileSource) Location() string {
	return s.path
}
