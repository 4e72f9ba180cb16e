package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rootsai/rootschat/internal/model/chatbot"
)

var (
	ErrTextTooShort    = errors.New("document text too short")
	ErrSessionNotFound = errors.New("session not found or expired")
)

// TruncationMarker is appended to stored text that was cut at MaxTextLength.
const TruncationMarker = "\n\n[Content truncated for optimal performance]"

// Config bounds the store. Capacity <= 0 disables the count bound and
// TTL <= 0 disables idle expiry.
type Config struct {
	MinTextLength int
	MaxTextLength int
	Capacity      int
	TTL           time.Duration
}

// Store owns the id -> session mapping for uploaded documents. All map
// mutations happen under mu; a Session's Text is immutable after Create, so
// callers may keep reading it after the lock is released.
type Store struct {
	mu       sync.Mutex
	cfg      Config
	sessions map[string]*chatbot.Session
	now      func() time.Time
}

// NewStore bootstraps an empty in-memory session store.
func NewStore(cfg Config) *Store {
	return &Store{
		cfg:      cfg,
		sessions: make(map[string]*chatbot.Session),
		now:      time.Now,
	}
}

// Create validates and stores extracted document text under a fresh id.
// Text shorter than MinTextLength is rejected; text longer than
// MaxTextLength is cut to exactly MaxTextLength characters with
// TruncationMarker appended. Inserting past Capacity evicts the
// least-recently-used sessions first.
func (s *Store) Create(text string) (string, error) {
	runes := []rune(text)
	if len(runes) < s.cfg.MinTextLength {
		return "", ErrTextTooShort
	}
	if s.cfg.MaxTextLength > 0 && len(runes) > s.cfg.MaxTextLength {
		text = string(runes[:s.cfg.MaxTextLength]) + TruncationMarker
	}

	now := s.now()
	sess := &chatbot.Session{
		ID:             uuid.NewString(),
		Text:           text,
		CreatedAt:      now,
		LastAccessedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked(now)
	s.sessions[sess.ID] = sess
	if s.cfg.Capacity > 0 {
		for len(s.sessions) > s.cfg.Capacity {
			s.evictOldestLocked()
		}
	}

	return sess.ID, nil
}

// Get returns the session for id, refreshing its idle clock. Sessions idle
// beyond TTL are treated as absent and dropped on the spot.
func (s *Store) Get(id string) (*chatbot.Session, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}

	sess.LastAccessedAt = now
	return sess, nil
}

// Peek reports whether id refers to a live session without refreshing its
// idle clock. Serving the chat page must not keep a session alive.
func (s *Store) Peek(id string) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	if s.expired(sess, now) {
		delete(s.sessions, id)
		return false
	}
	return true
}

// EvictExpired drops every idle-expired session and reports how many went.
func (s *Store) EvictExpired() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictExpiredLocked(now)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) expired(sess *chatbot.Session, now time.Time) bool {
	return s.cfg.TTL > 0 && now.Sub(sess.LastAccessedAt) > s.cfg.TTL
}

func (s *Store) evictExpiredLocked(now time.Time) int {
	evicted := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// evictOldestLocked removes the least-recently-used session. Equal access
// times fall back to the earlier CreatedAt.
func (s *Store) evictOldestLocked() {
	var victim *chatbot.Session
	for _, sess := range s.sessions {
		if victim == nil {
			victim = sess
			continue
		}
		if sess.LastAccessedAt.Before(victim.LastAccessedAt) ||
			(sess.LastAccessedAt.Equal(victim.LastAccessedAt) && sess.CreatedAt.Before(victim.CreatedAt)) {
			victim = sess
		}
	}
	if victim != nil {
		delete(s.sessions, victim.ID)
	}
}
