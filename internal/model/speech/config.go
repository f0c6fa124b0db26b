package speech

// SpeechConfig 语音能力配置
type SpeechConfig struct {
	Enabled bool   `json:"enabled"`
	Locale  string `json:"locale"` // 识别与合成使用的语言，如 en-US

	// 声音偏好
	VoiceLang string `json:"voiceLang"` // 声音语言需包含的片段，如 en
	VoiceHint string `json:"voiceHint"` // 声音名称需包含的片段，如 Female
}

// Preference 返回配置中的声音偏好
func (c SpeechConfig) Preference() VoicePreference {
	return VoicePreference{Lang: c.VoiceLang, NameHint: c.VoiceHint}
}
