package greeting

import "time"

const (
	Morning   = "Greetings, early riser. The future is built in the morning."
	Afternoon = "Hello, visionary. A productive afternoon to you."
	Evening   = "Good evening. The world sleeps, but intelligence never rests."
)

// ForHour picks the hero greeting for an hour of the day (0-23).
func ForHour(hour int) string {
	switch {
	case hour < 12:
		return Morning
	case hour < 18:
		return Afternoon
	default:
		return Evening
	}
}

// For picks the greeting for t in t's own location.
func For(t time.Time) string {
	return ForHour(t.Hour())
}
