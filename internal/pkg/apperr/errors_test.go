package apperr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	assert.NotEqual(t, "changed", e.Message)
	assert.Equal(t, "changed", changedE.Message)
}

func TestWithExtrasKeepsSentinel(t *testing.T) {
	e := ErrInvalidDataset.WithExtras(Extras{"violations": []string{"points"}})
	assert.Nil(t, ErrInvalidDataset.Extras)
	assert.Equal(t, ErrInvalidDataset.StatusCode, e.StatusCode)
	assert.Contains(t, *e.Extras, "violations")

	v := NewInvalidViolations([]string{"viewer"})
	assert.Nil(t, ErrInvalidReq.Extras)
	assert.Equal(t, CodeInvalidRequest, v.ErrorCode)
}
