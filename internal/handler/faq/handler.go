package faq

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aiuniverseglobal/landing/backend/internal/model/faq"
	"github.com/aiuniverseglobal/landing/backend/pkg/utils"
)

// Handler FAQ 的HTTP处理器
type Handler struct {
	store faq.Store
}

// New 创建FAQ处理器
func New(store faq.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes 注册FAQ相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/faq", h.handleListFAQ)
}

// handleListFAQ 按声明顺序列出所有问答
func (h *Handler) handleListFAQ(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.store.List())
}
