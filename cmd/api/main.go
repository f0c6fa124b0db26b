package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aiuniverseglobal/landing/backend/internal/config"
	"github.com/aiuniverseglobal/landing/backend/internal/handler"
	"github.com/aiuniverseglobal/landing/backend/internal/model/faq"
	"github.com/aiuniverseglobal/landing/backend/internal/service/countdown"
	"github.com/aiuniverseglobal/landing/backend/internal/service/dialogue"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	faqStore := faq.NewMemoryStore(faq.Seed())
	dialogueSvc := dialogue.NewService(
		dialogue.NewMatcher(faqStore),
		dialogue.WithSessionLimit(cfg.Chat.SessionLimit),
	)
	ticker := countdown.NewTicker(cfg.Countdown.Target, cfg.Countdown.Interval, countdown.SystemClock{})

	if cfg.Speech.Enabled {
		log.Printf("Speech bridge enabled locale=%s voice=%s/%s", cfg.Speech.Locale, cfg.Speech.VoiceLang, cfg.Speech.VoiceHint)
	} else {
		log.Println("Speech bridge disabled by configuration")
	}
	log.Printf("Countdown target %s", cfg.Countdown.Target.Format(time.RFC3339))

	router := handler.NewRouter(handler.Dependencies{
		FAQ:       faqStore,
		Dialogue:  dialogueSvc,
		Countdown: ticker,
		Speech:    cfg.Speech,
	})

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("AI Universe backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
