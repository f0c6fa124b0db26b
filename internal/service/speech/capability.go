package speech

import (
	"context"
	"errors"
	"sync"

	"github.com/aiuniverseglobal/landing/backend/internal/model/speech"
)

// ErrUnsupported 宿主环境缺少对应的语音能力
var ErrUnsupported = errors.New("speech capability unsupported")

// SpeechInput 语音识别能力，每次调用返回一条最佳识别结果
type SpeechInput interface {
	Recognize(ctx context.Context, locale string) (string, error)
}

// SpeechOutput 语音合成能力
type SpeechOutput interface {
	Voices() []speech.Voice
	Speak(ctx context.Context, utterance speech.Utterance) error
	Cancel()
}

// Prober 由运行时才能确认是否可用的能力实现
type Prober interface {
	Supported() bool
}

func supported(capability any) bool {
	if capability == nil {
		return false
	}
	if p, ok := capability.(Prober); ok {
		return p.Supported()
	}
	return true
}

// Capability 标识一种语音能力
type Capability string

const (
	Recognition Capability = "speech_recognition"
	Synthesis   Capability = "speech_synthesis"
)

var notices = map[Capability]string{
	Recognition: "Sorry, your browser doesn't support speech recognition.",
	Synthesis:   "Sorry, your browser doesn't support text-to-speech.",
}

// Notice 返回能力缺失时展示给用户的提示
func Notice(c Capability) string {
	return notices[c]
}

// Notifier 每种能力缺失只提示用户一次
type Notifier struct {
	mu       sync.Mutex
	notified map[Capability]bool
	notify   func(Capability, string)
}

// NewNotifier 创建提示器，notify 负责把提示送到界面
func NewNotifier(notify func(Capability, string)) *Notifier {
	return &Notifier{
		notified: make(map[Capability]bool),
		notify:   notify,
	}
}

// Report 上报能力缺失，首次上报时返回 true
func (n *Notifier) Report(c Capability) bool {
	n.mu.Lock()
	if n.notified[c] {
		n.mu.Unlock()
		return false
	}
	n.notified[c] = true
	n.mu.Unlock()

	if n.notify != nil {
		n.notify(c, Notice(c))
	}
	return true
}
