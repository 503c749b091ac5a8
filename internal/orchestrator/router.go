package orchestrator

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"sedici_metadata_server/internal/config"
	"sedici_metadata_server/internal/httpapi"
	"sedici_metadata_server/internal/services"
)

// NewRouter arma el router del orquestador
func NewRouter(cfg config.Config, orch *services.Orchestrator) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	r.Get("/health", Health)

	r.Group(func(r chi.Router) {
		r.Use(httpapi.AuthBearer(cfg.ServiceToken))
		r.Get("/test-integration", TestIntegration(orch))
		r.Post("/upload", Upload(orch))
	})

	return r
}
