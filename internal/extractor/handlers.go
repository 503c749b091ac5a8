package extractor

import (
	"log"
	"net/http"
	"strconv"

	"sedici_metadata_server/internal/config"
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

// Extract - Extraer el texto plano de un PDF/DOCX
func Extract(cfg config.Config) http.HandlerFunc {
	return extractHandler(services.ExtractText)
}

// ExtractWithTags - Extraer el texto etiquetado por tipografía
func ExtractWithTags(cfg config.Config) http.HandlerFunc {
	return extractHandler(services.ExtractTextWithTags)
}

// extractHandler factoriza el manejo común: multipart, valla de extensión,
// archivo temporal con limpieza garantizada y normalización opcional
func extractHandler(extract func(path string, normalization bool) (string, error)) http.HandlerFunc {
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

		// La valla de extensión corre antes de tocar cualquier parser
		if !services.HasPermitExtension(handler.Filename) {
			httpapi.WriteError(w, domain.CodeErrorFormatExtension, domain.ErrorFormatExtension)
			return
		}

		normalization := parseBoolDefault(r.URL.Query().Get("normalization"), true)
		if v := r.FormValue("normalization"); v != "" {
			normalization = parseBoolDefault(v, true)
		}

		tempPath, cleanup, err := services.SaveTempFile(file, handler.Filename)
		if err != nil {
			log.Printf("❌ error guardando archivo temporal: %v", err)
			httpapi.WriteError(w, domain.CodeErrorExtractingText, domain.ErrorExtractingText)
			return
		}
		defer cleanup()

		text, err := extract(tempPath, normalization)
		if err != nil {
			log.Printf("❌ error extrayendo texto de %s: %v", handler.Filename, err)
			httpapi.WriteError(w, domain.CodeErrorExtractingText, domain.ErrorExtractingText)
			return
		}

		httpapi.WriteSuccess(w, map[string]string{"text": text})
	}
}

func parseBoolDefault(value string, def bool) bool {
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return def
	}
	return parsed
}
