package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"

	"sedici_metadata_server/internal/config"
	"sedici_metadata_server/internal/domain"
)

// TransformerBackend delega la generación en un runtime local de inferencia
// (API nativa /api/generate). El modelo y su configuración de cuantización se
// resuelven una vez al construir el backend; el runtime serializa las
// generaciones concurrentes sobre la misma GPU.
type TransformerBackend struct {
	client    *resty.Client
	model     string
	spec      modelSpec
	maxInput  int
	maxOutput int
	// Modo de truncamiento efectivo: los tokenizers no estándar fuerzan
	// only_first, los estándar usan el valor configurado
	truncation      string
	quantized       bool
	stripSpecial    bool
	errorsTreatment string
}

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Tokens especiales que se descartan al decodificar cuando
// SPECIAL_TOKENS_TREATMENT está activo
var specialTokens = []string{"<s>", "</s>", "<pad>", "<unk>", "<|endoftext|>", "<|eot_id|>"}

// NewTransformerBackend arma el backend local a partir de la configuración
func NewTransformerBackend(cfg config.Config) *TransformerBackend {
	spec := resolveModelSpec(cfg.ModelSelected)

	model := spec.baseModel
	if cfg.ModelPath != "" {
		if cfg.IsLocalModel {
			// Pesos fine-tuned relativos a la raíz del servicio
			model, _ = filepath.Abs(cfg.ModelPath)
		} else {
			model = cfg.ModelPath
		}
	}

	truncation := cfg.Truncation
	if !spec.standardTokenizer {
		truncation = "only_first"
	}

	log.Printf("🤖 Backend transformer: modelo=%s cuantizado=%v truncamiento=%s", model, cfg.Quantization, truncation)
	return &TransformerBackend{
		client:          resty.New().SetBaseURL(cfg.ModelRunnerURL),
		model:           model,
		spec:            spec,
		maxInput:        cfg.MaxTokensInput,
		maxOutput:       cfg.MaxTokensOutput,
		truncation:      truncation,
		quantized:       cfg.Quantization,
		stripSpecial:    cfg.SpecialTokensTreatment,
		errorsTreatment: cfg.ErrorsTreatment,
	}
}

// Generate tokeniza (truncando al máximo de entrada), genera y decodifica
func (b *TransformerBackend) Generate(ctx context.Context, prompt string) (string, error) {
	prompt = b.truncatePrompt(prompt)

	options := map[string]any{
		"num_ctx": b.maxInput,
	}
	// Las familias seq2seq generan con max_length = entrada + salida; las
	// causal aceptan max_new_tokens
	if b.spec.family == familyCausal {
		options["num_predict"] = b.maxOutput
	} else {
		options["max_length"] = b.maxInput + b.maxOutput
	}
	if b.quantized {
		options["quantization"] = map[string]any{
			"load_in_4bit":      true,
			"double_quant":      true,
			"quant_type":        "nf4",
			"compute_dtype":     "bfloat16",
			"low_cpu_mem_usage": true,
		}
	}

	var result generateResponse
	resp, err := b.client.R().
		SetContext(ctx).
		SetBody(generateRequest{Model: b.model, Prompt: prompt, Stream: false, Options: options}).
		SetResult(&result).
		Post("/api/generate")
	if err != nil {
		return "", fmt.Errorf("error llamando al runtime de modelos: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("runtime de modelos respondió %d: %s", resp.StatusCode(), resp.String())
	}
	if result.Error != "" {
		return "", fmt.Errorf("runtime de modelos: %s", result.Error)
	}
	return b.decode(result.Response), nil
}

// CleanJSON aplica la escalera de recuperación sobre la predicción
func (b *TransformerBackend) CleanJSON(prediction string) (domain.MetadataRecord, *domain.ErrorBody) {
	record, err := ParseModelJSON(prediction)
	if err != nil {
		log.Printf("❌ error parseando salida del modelo: %v, salida: %s", err, prediction)
		return nil, &domain.ErrorBody{Code: domain.CodeErrorParsingOutput, Message: domain.ErrorParsingOutput}
	}
	return domain.MetadataRecord(record), nil
}

// truncatePrompt corta el prompt a MAX_TOKENS_INPUT tokens de espacio en
// blanco salvo que el truncamiento esté deshabilitado
func (b *TransformerBackend) truncatePrompt(prompt string) string {
	if strings.EqualFold(b.truncation, "false") {
		return prompt
	}
	tokens := strings.Fields(prompt)
	if len(tokens) <= b.maxInput {
		return prompt
	}
	return strings.Join(tokens[:b.maxInput], " ")
}

// decode limpia tokens especiales y bytes inválidos según la configuración
func (b *TransformerBackend) decode(output string) string {
	if b.stripSpecial {
		for _, token := range specialTokens {
			output = strings.ReplaceAll(output, token, "")
		}
	}
	if b.errorsTreatment == "replace" {
		output = strings.ToValidUTF8(output, "�")
	}
	return strings.TrimSpace(output)
}
