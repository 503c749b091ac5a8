package services

import (
	"context"

	"sedici_metadata_server/internal/config"
	"sedici_metadata_server/internal/domain"
)

// LLMBackend es el contrato de dos métodos que comparten los backends de
// inferencia: generar texto a partir de un prompt y recuperar un objeto JSON
// de la salida. No comparten estado.
type LLMBackend interface {
	Generate(ctx context.Context, prompt string) (string, error)
	CleanJSON(prediction string) (domain.MetadataRecord, *domain.ErrorBody)
}

// NewLLMBackend construye el backend según la configuración de proceso:
// host de chat remoto u runtime local de transformers
func NewLLMBackend(cfg config.Config) (LLMBackend, error) {
	if cfg.IsOllamaModel {
		return NewChatBackend(cfg)
	}
	return NewTransformerBackend(cfg), nil
}
