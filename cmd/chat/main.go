package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/aiuniverseglobal/landing/backend/internal/config"
	"github.com/aiuniverseglobal/landing/backend/internal/model/faq"
	"github.com/aiuniverseglobal/landing/backend/internal/model/landing"
	"github.com/aiuniverseglobal/landing/backend/internal/service/countdown"
	"github.com/aiuniverseglobal/landing/backend/internal/service/dialogue"
	"github.com/aiuniverseglobal/landing/backend/internal/service/greeting"
)

var liveCountdown = flag.Bool("countdown", false, "Stream the launch countdown instead of opening the assistant")

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ticker := countdown.NewTicker(cfg.Countdown.Target, cfg.Countdown.Interval, countdown.SystemClock{})

	if *liveCountdown {
		err := ticker.Run(ctx, func(state countdown.State) {
			fmt.Print("\r" + formatCountdown(state))
		})
		fmt.Println()
		if err != nil && ctx.Err() == nil {
			log.Fatalf("countdown stopped: %v", err)
		}
		return
	}

	page := landing.Page()
	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Println(boldGreen(page.Brand))
	fmt.Println(greeting.For(time.Now()))
	fmt.Println(formatCountdown(ticker.Snapshot()))
	fmt.Println("Ask a question and press Enter. Empty line lists suggestions, /help shows commands, 'exit' quits.")
	fmt.Println()

	store := faq.NewMemoryStore(faq.Seed())
	svc := dialogue.NewService(dialogue.NewMatcher(store), dialogue.WithSessionLimit(cfg.Chat.SessionLimit))

	sh, err := newShell(ctx, svc, ticker, cfg.Speech, os.Stdout)
	if err != nil {
		log.Fatalf("failed to open chat session: %v", err)
	}
	sh.userPrefix = boldGreen("You: ")
	sh.botPrefix = boldCyan("Assistant: ")
	sh.printTranscript()

	scanner := bufio.NewScanner(os.Stdin)
	go func() {
		<-ctx.Done()
		fmt.Println("\nShutting down...")
		os.Exit(0)
	}()

	for {
		fmt.Print(sh.userPrefix)
		if !scanner.Scan() {
			break
		}
		if !sh.handle(ctx, scanner.Text()) {
			break
		}
	}
}
