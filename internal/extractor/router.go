package extractor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"sedici_metadata_server/internal/config"
	"sedici_metadata_server/internal/httpapi"
)

// NewRouter arma el router del servicio extractor
func NewRouter(cfg config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Salud sin autenticación
	r.Get("/health", Health)

	r.Group(func(r chi.Router) {
		r.Use(httpapi.AuthBearer(cfg.ServiceToken))
		r.Get("/test-integration", TestIntegration)
		r.Post("/extract", Extract(cfg))
		r.Post("/extract-with-tags", ExtractWithTags(cfg))
	})

	return r
}
