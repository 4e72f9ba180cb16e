package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatbotHandler "github.com/rootsai/rootschat/internal/handler/chatbot"
	middlewarePkg "github.com/rootsai/rootschat/internal/middleware"
	chatbotService "github.com/rootsai/rootschat/internal/service/chatbot"
)

// NewRouter wires HTTP routes to the chatbot service. staticDir holds the
// widget assets; pass "" to skip mounting the file server.
func NewRouter(svc *chatbotService.Service, staticDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	h := chatbotHandler.New(svc)

	r.Route("/api", func(api chi.Router) {
		h.RegisterRoutes(api)
	})

	// Embeddable chat page lives outside /api so iframes get plain HTML.
	r.Get("/sessions/{id}", h.HandleChatPage)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	if staticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
		r.Handle("/static/*", fs)
	}

	return r
}
