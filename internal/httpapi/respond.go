package httpapi

import (
	"encoding/json"
	"net/http"

	"sedici_metadata_server/internal/domain"
)

// WriteJSON escribe cualquier valor como JSON con el status indicado
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteSuccess envuelve data en un sobre de éxito
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, domain.NewSuccess(data))
}

// WriteError envuelve el error y responde con el status igual al código
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, domain.NewError(code, message))
}

// WriteEnvelope responde un sobre ya armado; el status HTTP sale del sobre.
// Se usa para propagar errores de servicios aguas abajo sin re-envolver.
func WriteEnvelope(w http.ResponseWriter, env domain.Envelope) {
	status := http.StatusOK
	if !env.Success && env.Error != nil {
		status = env.Error.Code
	}
	WriteJSON(w, status, env)
}
