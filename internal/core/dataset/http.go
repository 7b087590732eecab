package dataset

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type HTTPSource struct {
	url     string
	timeout time.Duration
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{url: url, timeout: timeout}
}

func (s *HTTPSource) Fetch(ctx context.Context, _ string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); timeout <= 0 || left < timeout {
			timeout = left
		}
	}

	agent := fiber.Get(s.url)
	if timeout > 0 {
		agent.Timeout(timeout)
	}
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return nil, errors.Wrap(ErrFetch, err.Error())
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errors.Wrap(ErrFetch, errs[0].Error())
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, errors.Wrapf(ErrFetch, "HTTP status %d from %s", code, s.url)
	}
	return body, nil
}

func (s *HTTPSource) Location() string {
	return s.url
}
