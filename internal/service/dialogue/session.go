package dialogue

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/aiuniverseglobal/landing/backend/internal/model/chat"
)

// ErrEmptyInput marks a submit that was ignored because the text was blank.
var ErrEmptyInput = errors.New("empty input")

// Session owns a single widget transcript and its draft input.
type Session struct {
	mu        sync.Mutex
	id        string
	createdAt time.Time
	matcher   *Matcher
	now       func() time.Time
	nextID    int64
	draft     string
	messages  []chat.Message
}

// NewSession creates a session seeded with the greeting message.
func NewSession(id string, matcher *Matcher, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}

	s := &Session{
		id:        id,
		createdAt: now().UTC(),
		matcher:   matcher,
		now:       now,
		messages:  make([]chat.Message, 0, 16),
	}
	s.appendLocked(chat.SenderBot, chat.Greeting, "")
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Info returns the session metadata.
func (s *Session) Info() chat.Session {
	return chat.Session{ID: s.id, CreatedAt: s.createdAt}
}

// Submit records raw as a user message followed by the bot reply.
// Blank input appends nothing and returns ErrEmptyInput.
func (s *Session) Submit(raw string) ([]chat.Message, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyInput
	}

	answer := s.matcher.Resolve(raw)

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.appendLocked(chat.SenderUser, raw, "")
	// SourceQuestion is recorded even for fallback replies, so an unanswered
	// question also stops being suggested.
	bot := s.appendLocked(chat.SenderBot, answer, raw)
	s.draft = ""

	return []chat.Message{user, bot}, nil
}

// SubmitSpoken submits a speech transcript through the same path as typed
// input, after mapping it onto a corpus question by substring.
func (s *Session) SubmitSpoken(recognized string) ([]chat.Message, error) {
	return s.Submit(s.matcher.MatchSpoken(recognized))
}

// SubmitTop submits the first autocomplete result for the current draft.
// It is a no-op returning ErrEmptyInput when there is nothing to send.
func (s *Session) SubmitTop() ([]chat.Message, error) {
	draft := s.Draft()
	if draft == "" {
		return nil, ErrEmptyInput
	}

	matches := s.matcher.Autocomplete(draft)
	if len(matches) == 0 {
		return nil, ErrEmptyInput
	}
	return s.Submit(matches[0])
}

// SetDraft replaces the current draft input.
func (s *Session) SetDraft(text string) {
	s.mu.Lock()
	s.draft = text
	s.mu.Unlock()
}

// Draft returns the current draft input.
func (s *Session) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Transcript returns a copy of the messages in chronological order.
func (s *Session) Transcript() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]chat.Message, len(s.messages))
	copy(copied, s.messages)
	return copied
}

// Message looks up a transcript entry by id.
func (s *Session) Message(id int64) (chat.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, msg := range s.messages {
		if msg.ID == id {
			return msg, true
		}
	}
	return chat.Message{}, false
}

// Suggestions returns what the input box should offer for the current draft.
func (s *Session) Suggestions() Suggestions {
	s.mu.Lock()
	draft := s.draft
	transcript := make([]chat.Message, len(s.messages))
	copy(transcript, s.messages)
	s.mu.Unlock()

	return s.matcher.Suggest(draft, transcript)
}

func (s *Session) appendLocked(sender chat.Sender, text, source string) chat.Message {
	s.nextID++
	msg := chat.Message{
		ID:             s.nextID,
		SessionID:      s.id,
		Sender:         sender,
		Text:           text,
		SourceQuestion: source,
		CreatedAt:      s.now().UTC(),
	}
	s.messages = append(s.messages, msg)
	return msg
}
