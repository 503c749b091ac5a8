package orchestrator

import (
	"io"
	"net/http"
	"strconv"

	"sedici_metadata_server/internal/domain"
	"sedici_metadata_server/internal/httpapi"
	"sedici_metadata_server/internal/services"
)

// Health - Endpoint de salud
func Health(w http.ResponseWriter, r *http.Request) {
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"message-info": "server is up"})
}

// TestIntegration - Ping a los servicios aguas abajo
func TestIntegration(orch *services.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if errBody := orch.TestIntegration(r.Context()); errBody != nil {
			httpapi.WriteEnvelope(w, domain.Envelope{Success: false, Error: errBody})
			return
		}
		httpapi.WriteJSON(w, http.StatusOK, map[string]string{"message": "Integration tests passed"})
	}
}

// Upload - Subir un documento y devolver su registro de metadatos
func Upload(orch *services.Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Límite de 100MB para el formulario multipart
		if err := r.ParseMultipartForm(100 << 20); err != nil {
			httpapi.WriteError(w, domain.CodeErrorNoFilePart, domain.ErrorNoFilePart)
			return
		}
		file, handler, err := r.FormFile("file")
		if err != nil {
			httpapi.WriteError(w, domain.CodeErrorNoFilePart, domain.ErrorNoFilePart)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil || len(data) == 0 {
			httpapi.WriteError(w, domain.CodeErrorNoFilePart, domain.ErrorNoFilePart)
			return
		}

		normalization := true
		if v := r.FormValue("normalization"); v != "" {
			if parsed, err := strconv.ParseBool(v); err == nil {
				normalization = parsed
			}
		}
		deepAnalyze := false
		if v := r.FormValue("deepanalyze"); v != "" {
			if parsed, err := strconv.ParseBool(v); err == nil {
				deepAnalyze = parsed
			}
		}

		record, errBody := orch.Orchestrate(r.Context(), services.UploadInput{
			Filename:      handler.Filename,
			Data:          data,
			Normalization: normalization,
			DocType:       domain.ParseDocumentType(r.FormValue("type")),
			DeepAnalyze:   deepAnalyze,
		})
		if errBody != nil {
			// El error aguas abajo se propaga tal cual, código incluido
			httpapi.WriteEnvelope(w, domain.Envelope{Success: false, Error: errBody})
			return
		}
		httpapi.WriteSuccess(w, record)
	}
}
