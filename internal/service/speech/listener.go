package speech

import (
	"context"
	"fmt"
	"log"

	"github.com/aiuniverseglobal/landing/backend/internal/model/chat"
)

// SubmitFunc 把识别出的文本送入对话，与手动输入共用同一入口
type SubmitFunc func(recognized string) ([]chat.Message, error)

// Listener 进行一次语音识别并提交结果
type Listener struct {
	in     SpeechInput
	locale string
	submit SubmitFunc
}

// NewListener 创建监听器，in 为空表示宿主不支持语音识别
func NewListener(in SpeechInput, locale string, submit SubmitFunc) *Listener {
	return &Listener{in: in, locale: locale, submit: submit}
}

// Listen 识别一条语音并提交，识别失败不重试
func (l *Listener) Listen(ctx context.Context) ([]chat.Message, error) {
	if !supported(l.in) {
		return nil, ErrUnsupported
	}

	text, err := l.in.Recognize(ctx, l.locale)
	if err != nil {
		log.Printf("[speech] recognition error: %v", err)
		return nil, fmt.Errorf("speech recognition failed: %w", err)
	}

	return l.submit(text)
}
