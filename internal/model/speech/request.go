package speech

// Voice 宿主环境提供的一个可用声音
type Voice struct {
	Name string `json:"name"`
	Lang string `json:"lang"`
}

// VoicePreference 描述希望使用的声音
type VoicePreference struct {
	Lang     string `json:"lang"`
	NameHint string `json:"nameHint"`
}

// Utterance 一次语音合成请求，Voice 为空时使用默认声音
type Utterance struct {
	Text  string `json:"text"`
	Lang  string `json:"lang"`
	Voice *Voice `json:"voice,omitempty"`
}
