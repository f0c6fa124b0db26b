package speech

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/aiuniverseglobal/landing/backend/internal/model/speech"
)

// Speaker 朗读机器人回复，同一时间最多只有一条语音在播放
type Speaker struct {
	mu      sync.Mutex
	out     SpeechOutput
	locale  string
	pref    speech.VoicePreference
	pending *string
}

// NewSpeaker 创建朗读器，out 为空表示宿主不支持语音合成
func NewSpeaker(out SpeechOutput, cfg speech.SpeechConfig) *Speaker {
	return &Speaker{
		out:    out,
		locale: cfg.Locale,
		pref:   cfg.Preference(),
	}
}

// Speak 取消正在播放的语音后朗读 text。
// 声音列表尚未加载时暂存请求，待 VoicesChanged 时重试一次。
func (s *Speaker) Speak(ctx context.Context, text string) error {
	if !supported(s.out) {
		return ErrUnsupported
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.out.Cancel()

	voices := s.out.Voices()
	if len(voices) == 0 {
		s.pending = &text
		log.Printf("[speech] voices not loaded, deferring utterance")
		return nil
	}

	s.pending = nil
	return s.speakLocked(ctx, text, voices)
}

// VoicesChanged 在宿主声音列表变化时调用，重放暂存的朗读请求
func (s *Speaker) VoicesChanged(ctx context.Context) error {
	if !supported(s.out) {
		return ErrUnsupported
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return nil
	}
	text := *s.pending
	s.pending = nil

	s.out.Cancel()
	return s.speakLocked(ctx, text, s.out.Voices())
}

// Pending 返回是否有等待声音列表的朗读请求
func (s *Speaker) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Stop 取消当前语音及暂存请求
func (s *Speaker) Stop() {
	if !supported(s.out) {
		return
	}
	s.mu.Lock()
	s.pending = nil
	s.out.Cancel()
	s.mu.Unlock()
}

func (s *Speaker) speakLocked(ctx context.Context, text string, voices []speech.Voice) error {
	utterance := speech.Utterance{
		Text:  text,
		Lang:  s.locale,
		Voice: PreferredVoice(voices, s.pref),
	}
	return s.out.Speak(ctx, utterance)
}
