package dialogue

import (
	"strings"

	"github.com/aiuniverseglobal/landing/backend/internal/model/chat"
	"github.com/aiuniverseglobal/landing/backend/internal/model/faq"
)

// FallbackAnswer is shown whenever the submitted text is not a known question.
const FallbackAnswer = "I'm sorry, I don't have an answer for that yet. We are still in development."

// MaxSuggestions bounds the suggestion chips shown while the draft is empty.
const MaxSuggestions = 2

// SuggestionMode tells the shell which list it is rendering.
type SuggestionMode string

const (
	ModeAutocomplete SuggestionMode = "autocomplete"
	ModeSuggested    SuggestionMode = "suggested"
)

// Suggestions is the question list offered under the input box.
type Suggestions struct {
	Mode      SuggestionMode `json:"mode"`
	Questions []string       `json:"questions"`
}

// Matcher resolves free text against the canned question corpus.
type Matcher struct {
	store faq.Store
}

// NewMatcher builds a Matcher over store.
func NewMatcher(store faq.Store) *Matcher {
	return &Matcher{store: store}
}

// Questions returns every corpus question in declaration order.
func (m *Matcher) Questions() []string {
	entries := m.store.List()
	questions := make([]string, 0, len(entries))
	for _, entry := range entries {
		questions = append(questions, entry.Question)
	}
	return questions
}

// ExactAnswer returns the answer for a byte-for-byte question match.
func (m *Matcher) ExactAnswer(question string) (string, bool) {
	return m.store.Lookup(question)
}

// FallbackAnswer returns the reply used when nothing matches.
func (m *Matcher) FallbackAnswer() string {
	return FallbackAnswer
}

// Resolve returns the exact answer for question, or the fallback.
func (m *Matcher) Resolve(question string) string {
	if answer, ok := m.ExactAnswer(question); ok {
		return answer
	}
	return m.FallbackAnswer()
}

// Autocomplete lists the questions containing draft, ignoring case.
// An empty draft yields an empty list.
func (m *Matcher) Autocomplete(draft string) []string {
	matches := make([]string, 0)
	if draft == "" {
		return matches
	}

	needle := strings.ToLower(draft)
	for _, question := range m.Questions() {
		if strings.Contains(strings.ToLower(question), needle) {
			matches = append(matches, question)
		}
	}
	return matches
}

// UnusedSuggestions lists up to MaxSuggestions questions that no bot reply in
// transcript has answered yet.
func (m *Matcher) UnusedSuggestions(transcript []chat.Message) []string {
	asked := make(map[string]struct{})
	for _, msg := range transcript {
		if msg.Sender == chat.SenderBot && msg.SourceQuestion != "" {
			asked[msg.SourceQuestion] = struct{}{}
		}
	}

	unused := make([]string, 0, MaxSuggestions)
	for _, question := range m.Questions() {
		if _, ok := asked[question]; ok {
			continue
		}
		unused = append(unused, question)
		if len(unused) == MaxSuggestions {
			break
		}
	}
	return unused
}

// Suggest picks autocomplete results while the user is typing and unused
// questions otherwise.
func (m *Matcher) Suggest(draft string, transcript []chat.Message) Suggestions {
	if draft != "" {
		return Suggestions{Mode: ModeAutocomplete, Questions: m.Autocomplete(draft)}
	}
	return Suggestions{Mode: ModeSuggested, Questions: m.UnusedSuggestions(transcript)}
}

// MatchSpoken maps a speech transcript onto the first question containing it,
// ignoring case. Unmatched or blank transcripts are returned unchanged.
func (m *Matcher) MatchSpoken(recognized string) string {
	if strings.TrimSpace(recognized) == "" {
		return recognized
	}

	needle := strings.ToLower(recognized)
	for _, question := range m.Questions() {
		if strings.Contains(strings.ToLower(question), needle) {
			return question
		}
	}
	return recognized
}
