package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/obaidAfridi75/Afridibot-repo/internal/handler/chat"
	middlewarePkg "github.com/obaidAfridi75/Afridibot-repo/internal/middleware"
	chatService "github.com/obaidAfridi75/Afridibot-repo/internal/service/chat"
)

// NewRouter wires HTTP routes to the chat pipeline.
func NewRouter(chatSvc *chatService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chat.New(chatSvc)
	chatHandler.RegisterRoutes(r)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
