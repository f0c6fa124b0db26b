package faq

// Store exposes read-only access to the question corpus.
type Store interface {
	List() []Entry
	Lookup(question string) (string, bool)
}

// MemoryStore implements Store over an in-memory slice. It is never mutated
// after construction.
type MemoryStore struct {
	items []Entry
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied entries.
func NewMemoryStore(items []Entry) *MemoryStore {
	return &MemoryStore{items: append([]Entry(nil), items...)}
}

// List returns the corpus in declaration order.
func (s *MemoryStore) List() []Entry {
	return append([]Entry(nil), s.items...)
}

// Lookup returns the answer whose question is byte-for-byte equal to question.
func (s *MemoryStore) Lookup(question string) (string, bool) {
	for _, item := range s.items {
		if item.Question == question {
			return item.Answer, true
		}
	}
	return "", false
}
