package countdown

import (
	"fmt"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// DefaultTarget is the launch instant the header counts down to.
var DefaultTarget = time.Date(2026, time.February, 19, 0, 0, 0, 0, time.FixedZone("IST", 5*3600+30*60))

// State is the remaining time split into display units. When Elapsed is set
// the unit fields are zero and nothing should be rendered.
type State struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
	Elapsed bool  `json:"elapsed"`
}

// Field is one rendered unit of the countdown.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Compute decomposes target-now into days, hours, minutes and seconds.
// Sub-second remainders are truncated.
func Compute(target, now time.Time) State {
	if !target.After(now) {
		return State{Elapsed: true}
	}

	delta := target.Sub(now).Milliseconds()
	return State{
		Days:    delta / msPerDay,
		Hours:   (delta / msPerHour) % 24,
		Minutes: (delta / msPerMinute) % 60,
		Seconds: (delta / msPerSecond) % 60,
	}
}

// Duration rebuilds the remaining time from the unit fields.
func (s State) Duration() time.Duration {
	if s.Elapsed {
		return 0
	}
	ms := s.Days*msPerDay + s.Hours*msPerHour + s.Minutes*msPerMinute + s.Seconds*msPerSecond
	return time.Duration(ms) * time.Millisecond
}

// Fields returns the units in display order, each padded to two digits.
func (s State) Fields() []Field {
	if s.Elapsed {
		return nil
	}
	return []Field{
		{Label: "days", Value: pad(s.Days)},
		{Label: "hours", Value: pad(s.Hours)},
		{Label: "minutes", Value: pad(s.Minutes)},
		{Label: "seconds", Value: pad(s.Seconds)},
	}
}

func pad(v int64) string {
	return fmt.Sprintf("%02d", v)
}
