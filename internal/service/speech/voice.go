package speech

import (
	"strings"

	"github.com/aiuniverseglobal/landing/backend/internal/model/speech"
)

// PreferredVoice 返回第一个语言与名称都符合偏好的声音，没有则返回 nil 使用默认声音
func PreferredVoice(voices []speech.Voice, pref speech.VoicePreference) *speech.Voice {
	for i := range voices {
		if strings.Contains(voices[i].Lang, pref.Lang) && strings.Contains(voices[i].Name, pref.NameHint) {
			voice := voices[i]
			return &voice
		}
	}
	return nil
}
