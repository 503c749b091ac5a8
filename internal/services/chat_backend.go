package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"sedici_metadata_server/internal/config"
	"sedici_metadata_server/internal/domain"
)

// ChatBackend delega la generación en un endpoint de chat remoto compatible
// con Ollama a través de su API estilo OpenAI. Los modelos con razonamiento
// anteponen un bloque <think>; CleanJSON se queda con lo que sigue a </think>.
type ChatBackend struct {
	client    *openai.Client
	model     string
	maxOutput int
}

// NewChatBackend arma el backend remoto contra OLLAMA_HOST_URL. Falla en la
// construcción si MODEL_SELECTED no tiene tag de chat ni hay MODEL_PATH que lo
// reemplace, antes de aceptar la primera petición.
func NewChatBackend(cfg config.Config) (*ChatBackend, error) {
	spec := resolveModelSpec(cfg.ModelSelected)
	model := spec.chatTag
	if model == "" {
		model = cfg.ModelPath
	}
	if model == "" {
		return nil, fmt.Errorf("MODEL_SELECTED %q no tiene modelo de chat y MODEL_PATH está vacío", cfg.ModelSelected)
	}

	clientConfig := openai.DefaultConfig("")
	clientConfig.BaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.OllamaHostURL), "/") + "/v1"

	log.Printf("🤖 Backend de chat remoto: host=%s modelo=%s", cfg.OllamaHostURL, model)
	return &ChatBackend{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     model,
		maxOutput: cfg.MaxTokensOutput,
	}, nil
}

// Generate pide una completion de chat y devuelve el contenido crudo
func (b *ChatBackend) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     b.model,
		MaxTokens: b.maxOutput,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error llamando al host de chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("el host de chat no devolvió choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// CleanJSON descarta el prefijo de razonamiento y parsea estricto
func (b *ChatBackend) CleanJSON(prediction string) (domain.MetadataRecord, *domain.ErrorBody) {
	if idx := strings.LastIndex(prediction, "</think>"); idx >= 0 {
		prediction = prediction[idx+len("</think>"):]
	}
	prediction = strings.TrimSpace(prediction)

	var record domain.MetadataRecord
	if err := json.Unmarshal([]byte(prediction), &record); err != nil {
		log.Printf("❌ error parseando salida del host de chat: %v", err)
		return nil, &domain.ErrorBody{Code: domain.CodeErrorParsingOutput, Message: domain.ErrorParsingOutput}
	}
	return record, nil
}
