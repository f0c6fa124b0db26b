package speech

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aiuniverseglobal/landing/backend/internal/model/chat"
	"github.com/aiuniverseglobal/landing/backend/internal/model/speech"
)

type fakeOutput struct {
	mu       sync.Mutex
	voices   []speech.Voice
	active   int
	spoken   []speech.Utterance
	cancels  int
	disabled bool
}

func (f *fakeOutput) Voices() []speech.Voice {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]speech.Voice(nil), f.voices...)
}

func (f *fakeOutput) Speak(_ context.Context, u speech.Utterance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active++
	f.spoken = append(f.spoken, u)
	return nil
}

func (f *fakeOutput) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
	f.active = 0
}

func (f *fakeOutput) Supported() bool { return !f.disabled }

type fakeInput struct {
	text   string
	err    error
	locale string
}

func (f *fakeInput) Recognize(_ context.Context, locale string) (string, error) {
	f.locale = locale
	return f.text, f.err
}

var testConfig = speech.SpeechConfig{Enabled: true, Locale: "en-US", VoiceLang: "en", VoiceHint: "Female"}

func TestPreferredVoice(t *testing.T) {
	voices := []speech.Voice{
		{Name: "Google Deutsch Female", Lang: "de-DE"},
		{Name: "Daniel", Lang: "en-GB"},
		{Name: "Samantha Female", Lang: "en-US"},
		{Name: "Karen Female", Lang: "en-AU"},
	}

	got := PreferredVoice(voices, testConfig.Preference())
	if got == nil || got.Name != "Samantha Female" {
		t.Fatalf("unexpected voice: %+v", got)
	}

	if got := PreferredVoice(voices[:2], testConfig.Preference()); got != nil {
		t.Fatalf("expected default voice, got %+v", got)
	}
}

func TestSpeakerCancelsPreviousUtterance(t *testing.T) {
	out := &fakeOutput{voices: []speech.Voice{{Name: "Samantha Female", Lang: "en-US"}}}
	speaker := NewSpeaker(out, testConfig)
	ctx := context.Background()

	for _, text := range []string{"first", "second", "third"} {
		if err := speaker.Speak(ctx, text); err != nil {
			t.Fatalf("Speak err: %v", err)
		}
		if out.active != 1 {
			t.Fatalf("expected exactly one active utterance, got %d", out.active)
		}
	}

	if out.cancels != 3 {
		t.Fatalf("expected a cancel before every utterance, got %d", out.cancels)
	}
	last := out.spoken[len(out.spoken)-1]
	if last.Text != "third" || last.Lang != "en-US" || last.Voice == nil || last.Voice.Name != "Samantha Female" {
		t.Fatalf("unexpected utterance: %+v", last)
	}
}

func TestSpeakerDefersUntilVoicesLoad(t *testing.T) {
	out := &fakeOutput{}
	speaker := NewSpeaker(out, testConfig)
	ctx := context.Background()

	if err := speaker.Speak(ctx, "hello"); err != nil {
		t.Fatalf("Speak err: %v", err)
	}
	if len(out.spoken) != 0 || !speaker.Pending() {
		t.Fatalf("expected deferred utterance")
	}

	out.voices = []speech.Voice{{Name: "Zira Female", Lang: "en-US"}}
	if err := speaker.VoicesChanged(ctx); err != nil {
		t.Fatalf("VoicesChanged err: %v", err)
	}
	if len(out.spoken) != 1 || out.spoken[0].Voice == nil || out.spoken[0].Voice.Name != "Zira Female" {
		t.Fatalf("unexpected replay: %+v", out.spoken)
	}

	// the retry happens only once
	if err := speaker.VoicesChanged(ctx); err != nil {
		t.Fatalf("VoicesChanged err: %v", err)
	}
	if len(out.spoken) != 1 {
		t.Fatalf("expected a single replay, got %d", len(out.spoken))
	}
}

func TestSpeakerRetryFallsBackToDefaultVoice(t *testing.T) {
	out := &fakeOutput{}
	speaker := NewSpeaker(out, testConfig)
	ctx := context.Background()

	_ = speaker.Speak(ctx, "hello")
	if err := speaker.VoicesChanged(ctx); err != nil {
		t.Fatalf("VoicesChanged err: %v", err)
	}
	if len(out.spoken) != 1 || out.spoken[0].Voice != nil {
		t.Fatalf("expected default-voice utterance, got %+v", out.spoken)
	}
	if speaker.Pending() {
		t.Fatal("pending request should be cleared")
	}
}

func TestSpeakerUnsupported(t *testing.T) {
	ctx := context.Background()

	if err := NewSpeaker(nil, testConfig).Speak(ctx, "hi"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported for nil output, got %v", err)
	}
	disabled := &fakeOutput{disabled: true}
	if err := NewSpeaker(disabled, testConfig).Speak(ctx, "hi"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported for disabled output, got %v", err)
	}
	if len(disabled.spoken) != 0 {
		t.Fatal("disabled output should not be used")
	}
}

func TestListenerSubmitsRecognizedText(t *testing.T) {
	in := &fakeInput{text: "official launch"}
	var submitted string
	listener := NewListener(in, "en-US", func(text string) ([]chat.Message, error) {
		submitted = text
		return []chat.Message{{Sender: chat.SenderUser, Text: text}}, nil
	})

	msgs, err := listener.Listen(context.Background())
	if err != nil {
		t.Fatalf("Listen err: %v", err)
	}
	if submitted != "official launch" || len(msgs) != 1 {
		t.Fatalf("unexpected submission: %q %v", submitted, msgs)
	}
	if in.locale != "en-US" {
		t.Fatalf("unexpected locale: %s", in.locale)
	}
}

func TestListenerErrors(t *testing.T) {
	called := false
	submit := func(string) ([]chat.Message, error) {
		called = true
		return nil, nil
	}

	if _, err := NewListener(nil, "en-US", submit).Listen(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}

	boom := errors.New("no-speech")
	if _, err := NewListener(&fakeInput{err: boom}, "en-US", submit).Listen(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped recognition error, got %v", err)
	}
	if called {
		t.Fatal("submit should not run when recognition fails")
	}
}

func TestNotifierReportsOnce(t *testing.T) {
	var notices []string
	n := NewNotifier(func(_ Capability, msg string) { notices = append(notices, msg) })

	if !n.Report(Recognition) {
		t.Fatal("first report should notify")
	}
	if n.Report(Recognition) {
		t.Fatal("second report should be suppressed")
	}
	if !n.Report(Synthesis) {
		t.Fatal("other capability should notify")
	}

	if len(notices) != 2 || notices[0] != Notice(Recognition) || notices[1] != Notice(Synthesis) {
		t.Fatalf("unexpected notices: %v", notices)
	}
}
