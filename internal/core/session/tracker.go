package session

import (
	"context"

	"github.com/pkg/errors"
)

var ErrStale = errors.New("session: superseded by a newer request")

// Token orders the requests of one viewer. A larger token is a newer request.
type Token uint64

// Tracker hands out request tokens per viewer. Only the most recently issued
// token of a viewer is current; results computed under older tokens must be
// discarded.
type Tracker interface {
	Begin(ctx context.Context, viewer string) (Token, error)
	Current(ctx context.Context, viewer string) (Token, error)
}

// IsCurrent reports whether token is still the newest token for viewer.
func IsCurrent(ctx context.Context, t Tracker, viewer string, token Token) (bool, error) {
	cur, err := t.Current(ctx, viewer)
	if err != nil {
		return false, err
	}
	return cur == token, nil
}

// Ensure returns ErrStale when token has been superseded.
func Ensure(ctx context.Context, t Tracker, viewer string, token Token) error {
	ok, err := IsCurrent(ctx, t, viewer, token)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrStale, "viewer %s token %d", viewer, token)
	}
	return nil
}
