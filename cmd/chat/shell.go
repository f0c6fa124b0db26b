package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aiuniverseglobal/landing/backend/internal/model/chat"
	speechModel "github.com/aiuniverseglobal/landing/backend/internal/model/speech"
	"github.com/aiuniverseglobal/landing/backend/internal/service/countdown"
	"github.com/aiuniverseglobal/landing/backend/internal/service/dialogue"
	speechsvc "github.com/aiuniverseglobal/landing/backend/internal/service/speech"
)

const helpText = `Commands:
  /draft <text>   list questions matching a partial draft
  /top            submit the first suggestion for the current draft
  /countdown      print the time left until launch
  /speak          read the latest answer aloud
  /mic            ask by voice
  exit            quit`

// shell is the terminal presentation of one assistant session. A terminal has
// no speech engine, so speech requests surface the unsupported notices.
type shell struct {
	out        io.Writer
	session    *dialogue.Session
	ticker     *countdown.Ticker
	speaker    *speechsvc.Speaker
	listener   *speechsvc.Listener
	notifier   *speechsvc.Notifier
	userPrefix string
	botPrefix  string
	printed    int
}

func newShell(ctx context.Context, svc *dialogue.Service, ticker *countdown.Ticker, speechCfg speechModel.SpeechConfig, out io.Writer) (*shell, error) {
	session, err := svc.CreateSession(ctx)
	if err != nil {
		return nil, err
	}

	sh := &shell{
		out:        out,
		session:    session,
		ticker:     ticker,
		speaker:    speechsvc.NewSpeaker(nil, speechCfg),
		listener:   speechsvc.NewListener(nil, speechCfg.Locale, session.SubmitSpoken),
		userPrefix: "You: ",
		botPrefix:  "Assistant: ",
	}
	sh.notifier = speechsvc.NewNotifier(func(_ speechsvc.Capability, notice string) {
		fmt.Fprintln(sh.out, notice)
	})
	return sh, nil
}

// handle processes one input line. It returns false when the user quits.
func (sh *shell) handle(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.EqualFold(trimmed, "exit"):
		return false
	case trimmed == "":
		sh.printSuggestions(sh.session.Suggestions())
	case trimmed == "/help":
		fmt.Fprintln(sh.out, helpText)
	case trimmed == "/countdown":
		fmt.Fprintln(sh.out, formatCountdown(sh.ticker.Snapshot()))
	case strings.HasPrefix(trimmed, "/draft"):
		sh.session.SetDraft(strings.TrimSpace(strings.TrimPrefix(trimmed, "/draft")))
		sh.printSuggestions(sh.session.Suggestions())
	case trimmed == "/top":
		sh.report(sh.session.SubmitTop())
	case trimmed == "/speak":
		sh.speakLatest(ctx)
	case trimmed == "/mic":
		sh.report(sh.listener.Listen(ctx))
	default:
		sh.report(sh.session.Submit(line))
	}
	return true
}

func (sh *shell) report(_ []chat.Message, err error) {
	switch {
	case err == nil:
		sh.printTranscript()
	case errors.Is(err, dialogue.ErrEmptyInput):
	case errors.Is(err, speechsvc.ErrUnsupported):
		sh.notifier.Report(speechsvc.Recognition)
	default:
		fmt.Fprintf(sh.out, "Error: %v\n", err)
	}
}

func (sh *shell) speakLatest(ctx context.Context) {
	transcript := sh.session.Transcript()
	for i := len(transcript) - 1; i >= 0; i-- {
		if transcript[i].Sender != chat.SenderBot {
			continue
		}
		if err := sh.speaker.Speak(ctx, transcript[i].Text); errors.Is(err, speechsvc.ErrUnsupported) {
			sh.notifier.Report(speechsvc.Synthesis)
		} else if err != nil {
			fmt.Fprintf(sh.out, "Error: %v\n", err)
		}
		return
	}
}

// printTranscript writes the messages appended since the last call.
func (sh *shell) printTranscript() {
	transcript := sh.session.Transcript()
	for _, msg := range transcript[sh.printed:] {
		if msg.Sender == chat.SenderBot {
			fmt.Fprintln(sh.out, sh.botPrefix+msg.Text)
			fmt.Fprintln(sh.out)
		}
	}
	sh.printed = len(transcript)
}

func (sh *shell) printSuggestions(s dialogue.Suggestions) {
	if len(s.Questions) == 0 {
		fmt.Fprintln(sh.out, "No matching questions.")
		return
	}
	label := "Suggested questions:"
	if s.Mode == dialogue.ModeAutocomplete {
		label = "Matching questions:"
	}
	fmt.Fprintln(sh.out, label)
	for _, q := range s.Questions {
		fmt.Fprintf(sh.out, "  - %s\n", q)
	}
}

func formatCountdown(state countdown.State) string {
	fields := state.Fields()
	if fields == nil {
		return "Launched."
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Value+" "+f.Label)
	}
	return strings.Join(parts, "  ")
}
