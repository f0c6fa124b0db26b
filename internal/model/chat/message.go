package chat

import "time"

// Sender identifies who authored a transcript entry.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Greeting seeds every new assistant transcript.
const Greeting = "Hello! How can I help you today? Ask me a question or choose from the suggestions."

// Message is a single transcript entry. IDs increase strictly within a session.
// SourceQuestion is only set on bot replies and records the text they answered.
type Message struct {
	ID             int64     `json:"id"`
	SessionID      string    `json:"sessionId"`
	Sender         Sender    `json:"sender"`
	Text           string    `json:"text"`
	SourceQuestion string    `json:"sourceQuestion,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
