// Package snapshot holds the latest collected datasets for the dashboard.
// There is no persistence: every refresh replaces the whole snapshot.
package snapshot

import (
	"sync"
	"time"

	"github.com/minsu-kang/hanwha-trends/internal/newsroom"
	"github.com/minsu-kang/hanwha-trends/internal/rss"
)

// Snapshot is one refresh round's worth of data. Consumers must treat the
// slices as read-only.
type Snapshot struct {
	Articles    []rss.Article         `json:"articles"`
	Press       []newsroom.PressItem  `json:"press"`
	Social      []newsroom.SocialItem `json:"social"`
	RefreshedAt time.Time             `json:"refreshedAt"`
}

// Store guards the current snapshot.
type Store struct {
	mu  sync.RWMutex
	cur Snapshot
}

func NewStore() *Store {
	return &Store{}
}

// Replace installs a new snapshot.
func (s *Store) Replace(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = snap
}

// Current returns the latest snapshot.
func (s *Store) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}
