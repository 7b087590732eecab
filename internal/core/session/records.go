package session

import (
	"sync"
	"time"

	"github.com/epmviz/backend/internal/pkg/cache"
)

// Record is what a viewer last had rendered.
type Record struct {
	Viewer       string    `json:"viewer"`
	Model        string    `json:"model"`
	Token        Token     `json:"token"`
	BuildID      string    `json:"buildId"`
	Digest       string    `json:"digest"`
	Frames       int       `json:"frames"`
	Trajectories int       `json:"trajectories"`
	RenderedAt   time.Time `json:"renderedAt"`
}

type Records struct {
	mu  sync.Mutex
	set *cache.Set[Record]
}

func NewRecords(ttl time.Duration) *Records {
	return &Records{set: cache.NewSet[Record]("session#record", ttl)}
}

// Put stores r unless a record with a newer token is already present.
func (s *Records) Put(r Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, err := s.set.Get(r.Viewer); err == nil && prev.Token > r.Token {
		return false
	}
	s.set.Set(r.Viewer, r, 0)
	return true
}

func (s *Records) Get(viewer string) (Record, bool) {
	r, err := s.set.Get(viewer)
	return r, err == nil
}
