package chat

import (
	"context"
	"errors"
	"sync"

	speechModel "github.com/aiuniverseglobal/landing/backend/internal/model/speech"
	speechsvc "github.com/aiuniverseglobal/landing/backend/internal/service/speech"
)

var errRecognitionBusy = errors.New("speech recognition already in progress")

type recognition struct {
	text string
	err  error
}

// browserSpeech 把语音能力桥接到浏览器：识别与合成都由页面完成，服务端通过
// WebSocket 下发指令并接收结果。
type browserSpeech struct {
	sock *socket

	mu            sync.Mutex
	voices        []speechModel.Voice
	canRecognize  bool
	canSynthesize bool
	waiting       bool
	results       chan recognition
}

func newBrowserSpeech(sock *socket, enabled bool) *browserSpeech {
	return &browserSpeech{
		sock:          sock,
		canRecognize:  enabled,
		canSynthesize: enabled,
		results:       make(chan recognition, 1),
	}
}

func (b *browserSpeech) setVoices(voices []speechModel.Voice) {
	b.mu.Lock()
	b.voices = append([]speechModel.Voice(nil), voices...)
	b.mu.Unlock()
}

func (b *browserSpeech) setSupported(c speechsvc.Capability, supported bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch c {
	case speechsvc.Recognition:
		b.canRecognize = b.canRecognize && supported
	case speechsvc.Synthesis:
		b.canSynthesize = b.canSynthesize && supported
	}
}

// deliver 接收页面回传的识别结果，没有等待中的识别时丢弃
func (b *browserSpeech) deliver(text string, err error) bool {
	b.mu.Lock()
	waiting := b.waiting
	b.mu.Unlock()
	if !waiting {
		return false
	}

	select {
	case b.results <- recognition{text: text, err: err}:
		return true
	default:
		return false
	}
}

func (b *browserSpeech) input() *browserInput   { return &browserInput{b} }
func (b *browserSpeech) output() *browserOutput { return &browserOutput{b} }

type browserInput struct{ b *browserSpeech }

func (in *browserInput) Supported() bool {
	in.b.mu.Lock()
	defer in.b.mu.Unlock()
	return in.b.canRecognize
}

// Recognize 请求页面开始识别并等待一条结果
func (in *browserInput) Recognize(ctx context.Context, locale string) (string, error) {
	b := in.b

	b.mu.Lock()
	if b.waiting {
		b.mu.Unlock()
		return "", errRecognitionBusy
	}
	b.waiting = true
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.waiting = false
		b.mu.Unlock()
		select {
		case <-b.results:
		default:
		}
	}()

	select {
	case <-b.results:
	default:
	}

	if err := b.sock.sendInfo(map[string]any{"type": "listen", "locale": locale}); err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-b.results:
		return res.text, res.err
	}
}

type browserOutput struct{ b *browserSpeech }

func (out *browserOutput) Supported() bool {
	out.b.mu.Lock()
	defer out.b.mu.Unlock()
	return out.b.canSynthesize
}

func (out *browserOutput) Voices() []speechModel.Voice {
	out.b.mu.Lock()
	defer out.b.mu.Unlock()
	return append([]speechModel.Voice(nil), out.b.voices...)
}

func (out *browserOutput) Speak(_ context.Context, utterance speechModel.Utterance) error {
	return out.b.sock.sendInfo(map[string]any{
		"type":      "speak",
		"utterance": utterance,
	})
}

func (out *browserOutput) Cancel() {
	_ = out.b.sock.sendInfo(map[string]any{"type": "cancel_speech"})
}
