package httpapi

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"sedici_metadata_server/internal/domain"
)

// AuthBearer - Middleware de autenticación por token bearer estático.
// Cada servicio compara el token presentado contra su SERVICE_TOKEN; la
// comparación corre antes de cualquier lógica del handler.
func AuthBearer(expectedToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Permitir peticiones OPTIONS sin autenticación (preflight CORS)
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				log.Printf("❌ AuthBearer - falta token bearer en %s", r.URL.Path)
				WriteError(w, domain.CodeErrorInvalidToken, domain.ErrorInvalidToken)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				log.Printf("❌ AuthBearer - token inválido en %s", r.URL.Path)
				WriteError(w, domain.CodeErrorInvalidToken, domain.ErrorInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
