package chat

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aiuniverseglobal/landing/backend/internal/model/chat"
	speechModel "github.com/aiuniverseglobal/landing/backend/internal/model/speech"
	"github.com/aiuniverseglobal/landing/backend/internal/service/dialogue"
	"github.com/aiuniverseglobal/landing/backend/pkg/utils"
)

// Handler 助手会话的HTTP处理器
type Handler struct {
	dialogueSvc *dialogue.Service
	speechCfg   speechModel.SpeechConfig
}

// New 创建助手会话处理器
func New(dialogueSvc *dialogue.Service, speechCfg speechModel.SpeechConfig) *Handler {
	return &Handler{
		dialogueSvc: dialogueSvc,
		speechCfg:   speechCfg,
	}
}

// RegisterRoutes 注册助手会话相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/chat", func(cr chi.Router) {
		cr.Post("/session", h.handleCreateSession)
		cr.Get("/session/{sessionID}", h.handleGetSession)
		cr.Delete("/session/{sessionID}", h.handleCloseSession)
		cr.Post("/session/{sessionID}/messages", h.handleSubmit)
		cr.Post("/session/{sessionID}/submit-top", h.handleSubmitTop)
		cr.Put("/session/{sessionID}/draft", h.handleSetDraft)
		cr.Get("/session/{sessionID}/suggestions", h.handleSuggestions)

		ws := NewWebSocketHandler(h.dialogueSvc, h.speechCfg)
		ws.RegisterWebSocketRoutes(cr)
	})
}

type sessionResponse struct {
	Session     chat.Session         `json:"session"`
	Messages    []chat.Message       `json:"messages"`
	Draft       string               `json:"draft"`
	Suggestions dialogue.Suggestions `json:"suggestions"`
}

type submitResponse struct {
	Messages    []chat.Message       `json:"messages"`
	Suggestions dialogue.Suggestions `json:"suggestions"`
}

func newSessionResponse(session *dialogue.Session) sessionResponse {
	return sessionResponse{
		Session:     session.Info(),
		Messages:    session.Transcript(),
		Draft:       session.Draft(),
		Suggestions: session.Suggestions(),
	}
}

// handleCreateSession 打开助手窗口时创建会话
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.dialogueSvc.CreateSession(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, newSessionResponse(session))
}

// handleGetSession 返回会话记录
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	utils.RespondJSON(w, http.StatusOK, newSessionResponse(session))
}

// handleCloseSession 关闭会话并丢弃记录
func (h *Handler) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.dialogueSvc.CloseSession(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondNoContent(w)
}

// handleSubmit 提交用户输入，voice 为 true 时按语音识别结果匹配
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var payload struct {
		Text  string `json:"text"`
		Voice bool   `json:"voice"`
	}
	if !utils.DecodeJSON(w, r, &payload) {
		return
	}

	var (
		appended []chat.Message
		err      error
	)
	if payload.Voice {
		appended, err = session.SubmitSpoken(payload.Text)
	} else {
		appended, err = session.Submit(payload.Text)
	}
	h.respondSubmit(w, session, appended, err)
}

// handleSubmitTop 发送当前草稿的第一条补全结果
func (h *Handler) handleSubmitTop(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	appended, err := session.SubmitTop()
	h.respondSubmit(w, session, appended, err)
}

// handleSetDraft 更新草稿并返回建议
func (h *Handler) handleSetDraft(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var payload struct {
		Draft string `json:"draft"`
	}
	if !utils.DecodeJSON(w, r, &payload) {
		return
	}

	session.SetDraft(payload.Draft)
	utils.RespondJSON(w, http.StatusOK, session.Suggestions())
}

// handleSuggestions 返回建议，带 draft 参数时按该草稿计算而不修改会话
func (h *Handler) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if draft, present := r.URL.Query()["draft"]; present && len(draft) > 0 {
		utils.RespondJSON(w, http.StatusOK, h.dialogueSvc.Matcher().Suggest(draft[0], session.Transcript()))
		return
	}
	utils.RespondJSON(w, http.StatusOK, session.Suggestions())
}

func (h *Handler) respondSubmit(w http.ResponseWriter, session *dialogue.Session, appended []chat.Message, err error) {
	if errors.Is(err, dialogue.ErrEmptyInput) {
		utils.RespondNoContent(w)
		return
	}
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusCreated, submitResponse{
		Messages:    appended,
		Suggestions: session.Suggestions(),
	})
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*dialogue.Session, bool) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "sessionID is required")
		return nil, false
	}

	session, err := h.dialogueSvc.GetSession(r.Context(), sessionID)
	if err != nil {
		h.respondServiceError(w, err)
		return nil, false
	}
	return session, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, dialogue.ErrSessionNotFound):
		utils.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, dialogue.ErrSessionLimit):
		utils.RespondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Printf("[chat] unexpected error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "internal error")
	}
}
