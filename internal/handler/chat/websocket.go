package chat

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/aiuniverseglobal/landing/backend/internal/model/chat"
	speechModel "github.com/aiuniverseglobal/landing/backend/internal/model/speech"
	"github.com/aiuniverseglobal/landing/backend/internal/service/dialogue"
	speechsvc "github.com/aiuniverseglobal/landing/backend/internal/service/speech"
)

const (
	readTimeout        = 60 * time.Second
	pingInterval       = 54 * time.Second
	writeTimeout       = 10 * time.Second
	recognitionTimeout = 30 * time.Second
)

// WebSocketHandler 助手窗口的实时通道
type WebSocketHandler struct {
	dialogueSvc *dialogue.Service
	speechCfg   speechModel.SpeechConfig
	upgrader    websocket.Upgrader
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(dialogueSvc *dialogue.Service, speechCfg speechModel.SpeechConfig) *WebSocketHandler {
	return &WebSocketHandler{
		dialogueSvc: dialogueSvc,
		speechCfg:   speechCfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterWebSocketRoutes 注册WebSocket路由
func (h *WebSocketHandler) RegisterWebSocketRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId"`
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// TextMessage 文本输入或语音识别结果
type TextMessage struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// DraftMessage 草稿更新
type DraftMessage struct {
	Draft string `json:"draft"`
}

// SpeakMessage 请求朗读某条机器人消息
type SpeakMessage struct {
	MessageID int64 `json:"messageId"`
}

// VoicesMessage 页面可用的声音列表
type VoicesMessage struct {
	Voices []speechModel.Voice `json:"voices"`
}

// CapabilityMessage 页面上报的语音能力
type CapabilityMessage struct {
	Capability speechsvc.Capability `json:"capability"`
	Supported  bool                 `json:"supported"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// socket 串行化对同一连接的写入
type socket struct {
	mu        sync.Mutex
	conn      *websocket.Conn
	sessionID string
}

func (s *socket) write(msg outgoingMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return s.conn.WriteJSON(msg)
}

func (s *socket) sendInfo(data map[string]any) error {
	err := s.write(outgoingMessage{
		Type:      "result",
		SessionID: s.sessionID,
		Data:      data,
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		log.Printf("[websocket] write info failed: %v", err)
	}
	return err
}

func (s *socket) sendError(message string) {
	err := s.write(outgoingMessage{
		Type:      "error",
		SessionID: s.sessionID,
		Data:      map[string]string{"message": message},
		Timestamp: time.Now().Unix(),
	})
	if err != nil {
		log.Printf("[websocket] write error failed: %v", err)
	}
}

type connectionState struct {
	session   *dialogue.Session
	sock      *socket
	bridge    *browserSpeech
	speaker   *speechsvc.Speaker
	listener  *speechsvc.Listener
	notifier  *speechsvc.Notifier
	listening atomic.Bool
}

func (h *WebSocketHandler) newConnectionState(session *dialogue.Session, sock *socket) *connectionState {
	bridge := newBrowserSpeech(sock, h.speechCfg.Enabled)
	state := &connectionState{
		session: session,
		sock:    sock,
		bridge:  bridge,
		speaker: speechsvc.NewSpeaker(bridge.output(), h.speechCfg),
		notifier: speechsvc.NewNotifier(func(c speechsvc.Capability, notice string) {
			_ = sock.sendInfo(map[string]any{
				"type":       "notice",
				"capability": c,
				"message":    notice,
			})
		}),
	}
	state.listener = speechsvc.NewListener(bridge.input(), h.speechCfg.Locale, session.SubmitSpoken)
	return state
}

// handleWebSocket 处理WebSocket连接
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "sessionID is required", http.StatusBadRequest)
		return
	}

	session, err := h.dialogueSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	log.Printf("[websocket] new connection for session: %s", sessionID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sock := &socket{conn: conn, sessionID: sessionID}
	state := h.newConnectionState(session, sock)

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	go h.pingLoop(ctx, conn)

	_ = sock.sendInfo(map[string]any{
		"type":        "connected",
		"messages":    session.Transcript(),
		"suggestions": session.Suggestions(),
		"speech":      h.speechCfg.Enabled,
	})

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[websocket] read error: %v", err)
			}
			return
		}

		conn.SetReadDeadline(time.Now().Add(readTimeout))

		if msg.SessionID != "" && msg.SessionID != sessionID {
			sock.sendError("session mismatch")
			continue
		}

		h.handleMessage(ctx, state, &msg)
	}
}

func (h *WebSocketHandler) handleMessage(ctx context.Context, state *connectionState, msg *inboundMessage) {
	switch msg.Type {
	case "draft":
		h.handleDraftMessage(state, msg.Data)
	case "text":
		var text TextMessage
		if !decodeData(state.sock, msg.Data, &text, "invalid text payload") {
			return
		}
		appended, err := state.session.Submit(text.Text)
		h.sendSubmitResult(state, appended, err)
	case "voice":
		var text TextMessage
		if !decodeData(state.sock, msg.Data, &text, "invalid voice payload") {
			return
		}
		appended, err := state.session.SubmitSpoken(text.Text)
		h.sendSubmitResult(state, appended, err)
	case "submit_top":
		appended, err := state.session.SubmitTop()
		h.sendSubmitResult(state, appended, err)
	case "listen":
		h.handleListen(ctx, state)
	case "transcript":
		h.handleTranscript(state, msg.Data)
	case "speak":
		h.handleSpeak(ctx, state, msg.Data)
	case "voices":
		h.handleVoices(ctx, state, msg.Data)
	case "capability":
		var capability CapabilityMessage
		if !decodeData(state.sock, msg.Data, &capability, "invalid capability payload") {
			return
		}
		state.bridge.setSupported(capability.Capability, capability.Supported)
	default:
		state.sock.sendError("unsupported message type: " + msg.Type)
	}
}

func (h *WebSocketHandler) handleDraftMessage(state *connectionState, raw json.RawMessage) {
	var draft DraftMessage
	if !decodeData(state.sock, raw, &draft, "invalid draft payload") {
		return
	}

	state.session.SetDraft(draft.Draft)
	_ = state.sock.sendInfo(map[string]any{
		"type":        "suggestions",
		"suggestions": state.session.Suggestions(),
	})
}

func (h *WebSocketHandler) sendSubmitResult(state *connectionState, appended []chat.Message, err error) {
	if errors.Is(err, dialogue.ErrEmptyInput) {
		return
	}
	if err != nil {
		state.sock.sendError(err.Error())
		return
	}

	_ = state.sock.sendInfo(map[string]any{
		"type":        "messages",
		"messages":    appended,
		"suggestions": state.session.Suggestions(),
	})
}

// handleListen 启动一次语音识别，同一连接同时只允许一次
func (h *WebSocketHandler) handleListen(ctx context.Context, state *connectionState) {
	if !state.listening.CompareAndSwap(false, true) {
		state.sock.sendError(errRecognitionBusy.Error())
		return
	}

	go func() {
		defer state.listening.Store(false)

		listenCtx, cancel := context.WithTimeout(ctx, recognitionTimeout)
		defer cancel()

		appended, err := state.listener.Listen(listenCtx)
		switch {
		case errors.Is(err, speechsvc.ErrUnsupported):
			state.notifier.Report(speechsvc.Recognition)
		case errors.Is(err, context.Canceled):
		default:
			h.sendSubmitResult(state, appended, err)
		}
	}()
}

func (h *WebSocketHandler) handleTranscript(state *connectionState, raw json.RawMessage) {
	var text TextMessage
	if !decodeData(state.sock, raw, &text, "invalid transcript payload") {
		return
	}

	var err error
	if text.Error != "" {
		err = errors.New(text.Error)
	}
	if !state.bridge.deliver(text.Text, err) {
		log.Printf("[websocket] dropped transcript without pending recognition session=%s", state.sock.sessionID)
	}
}

func (h *WebSocketHandler) handleSpeak(ctx context.Context, state *connectionState, raw json.RawMessage) {
	var req SpeakMessage
	if !decodeData(state.sock, raw, &req, "invalid speak payload") {
		return
	}

	msg, ok := state.session.Message(req.MessageID)
	if !ok || msg.Sender != chat.SenderBot {
		state.sock.sendError("bot message not found")
		return
	}

	if err := state.speaker.Speak(ctx, msg.Text); err != nil {
		if errors.Is(err, speechsvc.ErrUnsupported) {
			state.notifier.Report(speechsvc.Synthesis)
			return
		}
		log.Printf("[speech] speak failed: %v", err)
	}
}

func (h *WebSocketHandler) handleVoices(ctx context.Context, state *connectionState, raw json.RawMessage) {
	var voices VoicesMessage
	if !decodeData(state.sock, raw, &voices, "invalid voices payload") {
		return
	}

	state.bridge.setVoices(voices.Voices)
	if err := state.speaker.VoicesChanged(ctx); err != nil && !errors.Is(err, speechsvc.ErrUnsupported) {
		log.Printf("[speech] replay failed: %v", err)
	}
}

func decodeData(sock *socket, raw json.RawMessage, dst interface{}, message string) bool {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		sock.sendError(message)
		return false
	}
	return true
}

// pingLoop 定期发送ping消息
func (h *WebSocketHandler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
