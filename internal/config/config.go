package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	speechModel "github.com/aiuniverseglobal/landing/backend/internal/model/speech"
	"github.com/aiuniverseglobal/landing/backend/internal/service/countdown"
	"github.com/aiuniverseglobal/landing/backend/internal/service/dialogue"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server    ServerConfig
	Chat      ChatConfig
	Countdown CountdownConfig
	Speech    speechModel.SpeechConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	cd, err := loadCountdownConfig()
	if err != nil {
		return nil, err
	}

	speech, err := loadSpeechConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Chat: chat, Countdown: cd, Speech: speech}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// ChatConfig 描述助手会话配置。
type ChatConfig struct {
	SessionLimit int
}

func loadChatConfig() (ChatConfig, error) {
	limit := dialogue.DefaultSessionLimit
	override, err := parseOptionalIntEnv("CHAT_SESSION_LIMIT")
	if err != nil {
		return ChatConfig{}, err
	}
	if override != nil {
		if *override < 1 {
			return ChatConfig{}, fmt.Errorf("invalid CHAT_SESSION_LIMIT value %d: must be positive", *override)
		}
		limit = *override
	}
	return ChatConfig{SessionLimit: limit}, nil
}

// CountdownConfig 描述倒计时的目标时间与刷新频率。
type CountdownConfig struct {
	Target   time.Time
	Interval time.Duration
}

func loadCountdownConfig() (CountdownConfig, error) {
	target := countdown.DefaultTarget
	if raw := strings.TrimSpace(os.Getenv("COUNTDOWN_TARGET")); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return CountdownConfig{}, fmt.Errorf("invalid COUNTDOWN_TARGET value %q: %w", raw, err)
		}
		target = parsed
	}

	interval := countdown.DefaultInterval
	if raw := strings.TrimSpace(os.Getenv("COUNTDOWN_TICK")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return CountdownConfig{}, fmt.Errorf("invalid COUNTDOWN_TICK value %q: %w", raw, err)
		}
		if parsed <= 0 {
			return CountdownConfig{}, fmt.Errorf("invalid COUNTDOWN_TICK value %q: must be positive", raw)
		}
		interval = parsed
	}

	return CountdownConfig{Target: target, Interval: interval}, nil
}

func loadSpeechConfig() (speechModel.SpeechConfig, error) {
	enabled, err := parseBoolEnv("SPEECH_ENABLED", true)
	if err != nil {
		return speechModel.SpeechConfig{}, err
	}

	return speechModel.SpeechConfig{
		Enabled:   enabled,
		Locale:    getEnvOrDefault("SPEECH_LOCALE", "en-US"),
		VoiceLang: getEnvOrDefault("SPEECH_VOICE_LANG", "en"),
		VoiceHint: getEnvOrDefault("SPEECH_VOICE_HINT", "Female"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
