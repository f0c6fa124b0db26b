package config

import (
	"testing"
	"time"

	"github.com/aiuniverseglobal/landing/backend/internal/service/countdown"
	"github.com/aiuniverseglobal/landing/backend/internal/service/dialogue"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "CHAT_SESSION_LIMIT", "COUNTDOWN_TARGET", "COUNTDOWN_TICK", "SPEECH_ENABLED", "SPEECH_LOCALE", "SPEECH_VOICE_LANG", "SPEECH_VOICE_HINT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr)
	}
	if cfg.Chat.SessionLimit != dialogue.DefaultSessionLimit {
		t.Fatalf("unexpected session limit: %d", cfg.Chat.SessionLimit)
	}
	if !cfg.Countdown.Target.Equal(countdown.DefaultTarget) || cfg.Countdown.Interval != time.Second {
		t.Fatalf("unexpected countdown config: %+v", cfg.Countdown)
	}
	if !cfg.Speech.Enabled || cfg.Speech.Locale != "en-US" || cfg.Speech.VoiceLang != "en" || cfg.Speech.VoiceHint != "Female" {
		t.Fatalf("unexpected speech config: %+v", cfg.Speech)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("CHAT_SESSION_LIMIT", "3")
	t.Setenv("COUNTDOWN_TARGET", "2027-01-01T00:00:00Z")
	t.Setenv("COUNTDOWN_TICK", "500ms")
	t.Setenv("SPEECH_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr: %s", cfg.Server.Addr)
	}
	if cfg.Chat.SessionLimit != 3 {
		t.Fatalf("unexpected session limit: %d", cfg.Chat.SessionLimit)
	}
	if !cfg.Countdown.Target.Equal(time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected target: %v", cfg.Countdown.Target)
	}
	if cfg.Countdown.Interval != 500*time.Millisecond {
		t.Fatalf("unexpected interval: %v", cfg.Countdown.Interval)
	}
	if cfg.Speech.Enabled {
		t.Fatal("expected speech disabled")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":               "80 80",
		"CHAT_SESSION_LIMIT": "0",
		"COUNTDOWN_TARGET":   "tomorrow",
		"COUNTDOWN_TICK":     "-1s",
		"SPEECH_ENABLED":     "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}
