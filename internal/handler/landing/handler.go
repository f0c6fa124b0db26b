package landing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aiuniverseglobal/landing/backend/internal/model/landing"
	"github.com/aiuniverseglobal/landing/backend/internal/service/greeting"
	"github.com/aiuniverseglobal/landing/backend/pkg/utils"
)

// Handler 落地页静态内容的HTTP处理器
type Handler struct {
	now func() time.Time
}

// New 创建落地页处理器，now 为空时使用系统时间
func New(now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{now: now}
}

// RegisterRoutes 注册落地页相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/landing", h.handleLanding)
	r.Get("/greeting", h.handleGreeting)
}

func (h *Handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, landing.Page())
}

// handleGreeting 返回问候语，访客可通过 hour 参数传入本地小时
func (h *Handler) handleGreeting(w http.ResponseWriter, r *http.Request) {
	hour := h.now().Hour()
	if raw := r.URL.Query().Get("hour"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 23 {
			utils.RespondError(w, http.StatusBadRequest, "hour must be between 0 and 23")
			return
		}
		hour = parsed
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"greeting": greeting.ForHour(hour)})
}
