package llm

import (
	"encoding/json"
	"log"
	"net/http"

	"sedici_metadata_server/internal/domain"
	"sedici_metadata_server/internal/httpapi"
	"sedici_metadata_server/internal/services"
)

// Health - Endpoint de salud
func Health(w http.ResponseWriter, r *http.Request) {
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"message-info": "server is up"})
}

// TestIntegration - Verificación de integración con autenticación
func TestIntegration(w http.ResponseWriter, r *http.Request) {
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"message": "Integration tests passed"})
}

type consumeRequest struct {
	Text string `json:"text"`
}

// ConsumeLLM - Correr la generación y devolver el registro JSON recuperado
func ConsumeLLM(backend services.LLMBackend) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req consumeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			httpapi.WriteError(w, domain.CodeErrorNoTextInput, domain.ErrorNoTextInput)
			return
		}

		log.Printf("🧠 Generando con el modelo (%d caracteres de entrada)", len(req.Text))
		prediction, err := backend.Generate(r.Context(), req.Text)
		if err != nil {
			log.Printf("❌ error generando con el modelo: %v", err)
			httpapi.WriteError(w, domain.CodeErrorOpeningModel, domain.ErrorOpeningModel)
			return
		}

		record, errBody := backend.CleanJSON(prediction)
		if errBody != nil {
			httpapi.WriteError(w, errBody.Code, errBody.Message)
			return
		}
		httpapi.WriteSuccess(w, record)
	}
}
