package session

import (
	"time"

	"quick-notes/editor"

	"github.com/patrickmn/go-cache"
)

// Store holds the open editor sessions. A session that sees no use for the
// idle TTL is dropped on the next purge.
type Store struct {
	cache *cache.Cache
}

func NewStore(ttl, cleanupInterval time.Duration) *Store {
	return &Store{
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (s *Store) Save(sess *editor.Session) {
	s.cache.Set(sess.ID, sess, cache.DefaultExpiration)
}

// Get returns the session and extends its lifetime.
func (s *Store) Get(sessionID string) (*editor.Session, bool) {
	x, found := s.cache.Get(sessionID)
	if !found {
		return nil, false
	}

	sess := x.(*editor.Session)
	s.cache.Set(sessionID, sess, cache.DefaultExpiration)
	return sess, true
}

func (s *Store) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}

// Flush drops every session, used on shutdown.
func (s *Store) Flush() {
	s.cache.Flush()
}
