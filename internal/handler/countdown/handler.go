package countdown

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	countdownService "github.com/aiuniverseglobal/landing/backend/internal/service/countdown"
	"github.com/aiuniverseglobal/landing/backend/pkg/utils"
)

// Handler serves the header countdown.
type Handler struct {
	ticker *countdownService.Ticker
}

// New creates a countdown handler.
func New(ticker *countdownService.Ticker) *Handler {
	return &Handler{ticker: ticker}
}

// RegisterRoutes mounts the countdown endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/countdown", h.handleSnapshot)
	r.Get("/countdown/stream", h.handleStream)
}

// Response is a rendered countdown tick.
type Response struct {
	Target  time.Time                `json:"target"`
	State   countdownService.State   `json:"state"`
	Fields  []countdownService.Field `json:"fields"`
	Elapsed bool                     `json:"elapsed"`
}

func (h *Handler) render(state countdownService.State) Response {
	fields := state.Fields()
	if fields == nil {
		fields = []countdownService.Field{}
	}
	return Response{
		Target:  h.ticker.Target(),
		State:   state,
		Fields:  fields,
		Elapsed: state.Elapsed,
	}
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.render(h.ticker.Snapshot()))
}

// handleStream pushes one tick per interval until the client goes away.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	log.Printf("[countdown] opening stream target=%s", h.ticker.Target().Format(time.RFC3339))

	_ = h.ticker.Run(ctx, func(state countdownService.State) {
		if err := utils.SendSSEEvent(w, flusher, "tick", h.render(state)); err != nil {
			log.Printf("[countdown] stream write failed: %v", err)
			cancel()
		}
	})

	log.Printf("[countdown] closing stream")
}
