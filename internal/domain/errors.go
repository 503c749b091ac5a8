package domain

import "net/http"

// Taxonomía de errores compartida entre servicios. Los mensajes viajan tal cual
// en el sobre de respuesta; el orquestador los propaga sin re-envolver.
const (
	ErrorFormatExtension = "format extension not permitted"
	ErrorExtractingText  = "server internal error"
	ErrorNoFilePart      = "No file part"
	ErrorNoTextInput     = "No text input"
	ErrorParsingOutput   = "cannot parse json output"
	ErrorOpeningModel    = "server internal error"
	ErrorInvalidToken    = "Invalid or missing token"
)

const (
	CodeErrorFormatExtension = http.StatusBadRequest
	CodeErrorExtractingText  = http.StatusInternalServerError
	CodeErrorNoFilePart      = http.StatusBadRequest
	CodeErrorNoTextInput     = http.StatusBadRequest
	CodeErrorParsingOutput   = http.StatusInternalServerError
	CodeErrorOpeningModel    = http.StatusInternalServerError
	CodeErrorInvalidToken    = http.StatusUnauthorized
)
