package router

import (
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/creatorpilot/context-hub-gateway/internal/handlers"
	"github.com/creatorpilot/context-hub-gateway/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)
	r.Use(middleware.SecurityHeaders)

	if origins := splitOrigins(deps.Cfg.CORSOrigins); len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
		}))
	}

	ih := handlers.NewInfoHandlers(deps)
	eh := handlers.NewExecuteHandlers(deps)
	ch := handlers.NewChannelHandlers(deps)
	uh := handlers.NewUserHandlers(deps)
	fh := handlers.NewFeedbackHandlers(deps)
	oh := handlers.NewOAuthHandlers(deps)

	r.Get("/", ih.Root)
	r.Get("/health", ih.Health)

	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/execute", eh.Execute)
		api.Get("/user/status", uh.Status)
		api.Mount("/channel", ch.Routes())
		api.Mount("/feedback", fh.Routes())
	})

	r.Mount("/auth/youtube", oh.Routes())

	return r
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
