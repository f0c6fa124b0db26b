package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aiuniverseglobal/landing/backend/internal/handler/chat"
	"github.com/aiuniverseglobal/landing/backend/internal/handler/countdown"
	"github.com/aiuniverseglobal/landing/backend/internal/handler/faq"
	"github.com/aiuniverseglobal/landing/backend/internal/handler/landing"
	middlewarePkg "github.com/aiuniverseglobal/landing/backend/internal/middleware"
	faqModel "github.com/aiuniverseglobal/landing/backend/internal/model/faq"
	speechModel "github.com/aiuniverseglobal/landing/backend/internal/model/speech"
	countdownService "github.com/aiuniverseglobal/landing/backend/internal/service/countdown"
	"github.com/aiuniverseglobal/landing/backend/internal/service/dialogue"
	"github.com/aiuniverseglobal/landing/backend/pkg/utils"
)

// Dependencies groups the services the HTTP shell exposes.
type Dependencies struct {
	FAQ       faqModel.Store
	Dialogue  *dialogue.Service
	Countdown *countdownService.Ticker
	Speech    speechModel.SpeechConfig
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	faqHandler := faq.New(deps.FAQ)
	landingHandler := landing.New(nil)
	chatHandler := chat.New(deps.Dialogue, deps.Speech)
	countdownHandler := countdown.New(deps.Countdown)

	r.Route("/api", func(api chi.Router) {
		faqHandler.RegisterRoutes(api)
		landingHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
		countdownHandler.RegisterRoutes(api)

		api.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
		})
	})

	return r
}
