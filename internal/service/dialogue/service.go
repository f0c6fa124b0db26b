package dialogue

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aiuniverseglobal/landing/backend/internal/model/chat"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionLimit    = errors.New("too many open sessions")
)

// DefaultSessionLimit caps open widgets when no limit is configured.
const DefaultSessionLimit = 1024

// Service keeps the open assistant sessions in memory. Nothing outlives the
// process.
type Service struct {
	mu       sync.RWMutex
	matcher  *Matcher
	sessions map[string]*Session
	limit    int
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithSessionLimit bounds the number of concurrently open sessions.
func WithSessionLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithClock overrides the time source used for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService bootstraps the in-memory dialogue service.
func NewService(matcher *Matcher, opts ...Option) *Service {
	s := &Service{
		matcher:  matcher,
		sessions: make(map[string]*Session),
		limit:    DefaultSessionLimit,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Matcher returns the matcher shared by every session.
func (s *Service) Matcher() *Matcher {
	return s.matcher
}

// CreateSession opens a new widget session seeded with the greeting.
func (s *Service) CreateSession(_ context.Context) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.limit {
		return nil, ErrSessionLimit
	}

	session := NewSession(uuid.NewString(), s.matcher, s.now)
	s.sessions[session.ID()] = session
	log.Printf("[chat] opened session=%s open=%d", session.ID(), len(s.sessions))
	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// CloseSession discards a session and its transcript.
func (s *Service) CloseSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	log.Printf("[chat] closed session=%s open=%d", sessionID, len(s.sessions))
	return nil
}

// Submit forwards typed input to the session.
func (s *Service) Submit(ctx context.Context, sessionID, text string) ([]chat.Message, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Submit(text)
}

// SubmitSpoken forwards a speech transcript to the session.
func (s *Service) SubmitSpoken(ctx context.Context, sessionID, recognized string) ([]chat.Message, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.SubmitSpoken(recognized)
}

// SetDraft updates the draft and returns the suggestions for it.
func (s *Service) SetDraft(ctx context.Context, sessionID, draft string) (Suggestions, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return Suggestions{}, err
	}
	session.SetDraft(draft)
	return session.Suggestions(), nil
}

// Transcript returns the stored messages for the session.
func (s *Service) Transcript(ctx context.Context, sessionID string) ([]chat.Message, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Transcript(), nil
}

// Suggestions returns the suggestions for the session's current draft.
func (s *Service) Suggestions(ctx context.Context, sessionID string) (Suggestions, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return Suggestions{}, err
	}
	return session.Suggestions(), nil
}
