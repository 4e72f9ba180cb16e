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

	"github.com/rootsai/rootschat/internal/config"
	"github.com/rootsai/rootschat/internal/handler"
	"github.com/rootsai/rootschat/internal/service/ai"
	"github.com/rootsai/rootschat/internal/service/chatbot"
	"github.com/rootsai/rootschat/internal/service/extract"
	"github.com/rootsai/rootschat/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store := session.NewStore(session.Config{
		MinTextLength: cfg.Session.MinTextLength,
		MaxTextLength: cfg.Session.MaxTextLength,
		Capacity:      cfg.Session.Capacity,
		TTL:           cfg.Session.TTL,
	})
	go runJanitor(ctx, store)

	var provider chatbot.AnswerProvider
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality - questions will get the fallback answer")
		} else {
			provider = aiService
			log.Printf("AI service initialized, model=%s", cfg.AI.Model)
		}
	} else {
		log.Println("ANTHROPIC_API_KEY not configured, questions will get the fallback answer")
	}

	chatbotSvc := chatbot.NewService(store, extract.NewPDFExtractor(), provider, cfg.AI.Timeout, cfg.Server.PublicBaseURL)
	router := handler.NewRouter(chatbotSvc, "./static")

	startServer(ctx, cfg.Server, router)
}

// runJanitor sweeps idle-expired sessions in the background. Expiry is also
// enforced lazily on access, so this only reclaims memory sooner.
func runJanitor(ctx context.Context, store *session.Store) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.EvictExpired(); n > 0 {
				log.Printf("[session] evicted %d expired sessions", n)
			}
		}
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("RootsChat backend listening on %s", serverCfg.Addr)
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
