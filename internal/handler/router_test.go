package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	faqModel "github.com/aiuniverseglobal/landing/backend/internal/model/faq"
	speechModel "github.com/aiuniverseglobal/landing/backend/internal/model/speech"
	countdownService "github.com/aiuniverseglobal/landing/backend/internal/service/countdown"
	"github.com/aiuniverseglobal/landing/backend/internal/service/dialogue"
)

func newTestRouter() http.Handler {
	store := faqModel.NewMemoryStore(faqModel.Seed())
	return NewRouter(Dependencies{
		FAQ:       store,
		Dialogue:  dialogue.NewService(dialogue.NewMatcher(store)),
		Countdown: countdownService.NewTicker(countdownService.DefaultTarget, 0, nil),
		Speech:    speechModel.SpeechConfig{Enabled: true, Locale: "en-US"},
	})
}

func TestRouterMountsAPI(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/faq", http.StatusOK},
		{http.MethodGet, "/api/landing", http.StatusOK},
		{http.MethodGet, "/api/greeting", http.StatusOK},
		{http.MethodGet, "/api/countdown", http.StatusOK},
		{http.MethodPost, "/api/chat/session", http.StatusCreated},
		{http.MethodGet, "/api/chat/session/missing", http.StatusNotFound},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tc := range cases {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.status, rr.Code)
		}
	}
}

func TestRouterAppliesCORS(t *testing.T) {
	r := newTestRouter()

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/faq", nil))

	if rr.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected CORS header")
	}
}
