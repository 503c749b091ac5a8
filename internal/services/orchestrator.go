package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"sedici_metadata_server/internal/config"
	"sedici_metadata_server/internal/domain"
)

// Orchestrator encadena extracción, clasificación y extracción de metadatos
// por LLM. Se construye una vez por proceso; los clasificadores se cargan
// perezosamente en el primer upload.
type Orchestrator struct {
	cfg        config.Config
	client     *resty.Client
	typeClf    *lazyClassifier
	subjectClf *lazyClassifier
}

// UploadInput es la solicitud que llega al pipeline
type UploadInput struct {
	Filename      string
	Data          []byte
	Normalization bool
	DocType       domain.DocumentType
	DeepAnalyze   bool
}

// extractResponse es el sobre del extractor con su payload de texto
type extractResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Text string `json:"text"`
	} `json:"data"`
	Error *domain.ErrorBody `json:"error"`
}

// llmResponse es el sobre del servicio LLM con el registro extraído
type llmResponse struct {
	Success bool                  `json:"success"`
	Data    domain.MetadataRecord `json:"data"`
	Error   *domain.ErrorBody     `json:"error"`
}

// NewOrchestrator construye el servicio de orquestación
func NewOrchestrator(cfg config.Config) *Orchestrator {
	return &Orchestrator{
		cfg:        cfg,
		client:     resty.New(),
		typeClf:    &lazyClassifier{path: cfg.TypeClassifierPath},
		subjectClf: &lazyClassifier{path: cfg.SubjectClassifierPath},
	}
}

// Orchestrate corre el pipeline completo sobre un documento subido.
// Los errores de los servicios aguas abajo se propagan tal cual, con su
// código y mensaje originales.
func (o *Orchestrator) Orchestrate(ctx context.Context, input UploadInput) (domain.MetadataRecord, *domain.ErrorBody) {
	log.Printf("📄 Orquestando archivo: %s (normalization=%v, type=%s, deepanalyze=%v)",
		input.Filename, input.Normalization, input.DocType, input.DeepAnalyze)

	text, errBody := o.extractWithTags(ctx, input)
	if errBody != nil {
		return nil, errBody
	}

	docType := input.DocType
	if docType == domain.TypeNone {
		log.Printf("🔎 Clasificando tipo de documento")
		clf, err := o.typeClf.get()
		if err != nil {
			log.Printf("❌ error cargando clasificador de tipo: %v", err)
			return nil, &domain.ErrorBody{Code: http.StatusInternalServerError, Message: domain.ErrorExtractingText}
		}
		docType = domain.ParseDocumentType(clf.Predict(text))
		if docType == domain.TypeNone {
			docType = domain.TypeGeneral
		}
		log.Printf("🔎 Tipo predicho: %s", docType)
	}

	log.Printf("🔎 Clasificando materia")
	subjectClf, err := o.subjectClf.get()
	if err != nil {
		log.Printf("❌ error cargando clasificador de materias: %v", err)
		return nil, &domain.ErrorBody{Code: http.StatusInternalServerError, Message: domain.ErrorExtractingText}
	}
	subject := subjectClf.Predict(text)
	log.Printf("🔎 Materia predicha: %s", subject)

	strategy := StrategyFor(docType)
	record, errBody := o.consumeLLM(ctx, strategy.Prompt+text, input.DeepAnalyze)
	if errBody != nil {
		return nil, errBody
	}

	merged := MergeRecord(record, strategy, docType, subject)
	if err := ValidateRecord(merged, strategy.RequiredKeys); err != nil {
		log.Printf("⚠️ registro fuera de esquema: %v", err)
	}
	return merged, nil
}

// TestIntegration hace ping a los /test-integration de los dos servicios
// aguas abajo; el primer status distinto de 200 se propaga.
func (o *Orchestrator) TestIntegration(ctx context.Context) *domain.ErrorBody {
	for _, downstream := range []struct {
		url   string
		token string
	}{
		{o.cfg.ExtractorURL, o.cfg.ExtractorToken},
		{o.cfg.LLMLedURL, o.cfg.LLMLedToken},
	} {
		resp, err := o.client.R().
			SetContext(ctx).
			SetAuthToken(downstream.token).
			Get(downstream.url + "/test-integration")
		if err != nil {
			return &domain.ErrorBody{Code: http.StatusInternalServerError, Message: err.Error()}
		}
		if resp.StatusCode() != http.StatusOK {
			return &domain.ErrorBody{Code: resp.StatusCode(), Message: resp.String()}
		}
	}
	return nil
}

// extractWithTags delega la extracción etiquetada en el servicio extractor
func (o *Orchestrator) extractWithTags(ctx context.Context, input UploadInput) (string, *domain.ErrorBody) {
	log.Printf("📡 Llamando al extractor: %s/extract-with-tags", o.cfg.ExtractorURL)
	var result extractResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetAuthToken(o.cfg.ExtractorToken).
		SetFileReader("file", input.Filename, bytes.NewReader(input.Data)).
		SetQueryParam("normalization", strconv.FormatBool(input.Normalization)).
		Post(o.cfg.ExtractorURL + "/extract-with-tags")
	if err != nil {
		log.Printf("❌ error llamando al extractor: %v", err)
		return "", &domain.ErrorBody{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	if resp.StatusCode() != http.StatusOK {
		log.Printf("❌ extractor respondió %d: %s", resp.StatusCode(), resp.String())
		return "", propagateError(resp.StatusCode(), resp.Body())
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", &domain.ErrorBody{Code: http.StatusInternalServerError, Message: domain.ErrorExtractingText}
	}
	log.Printf("✅ Texto extraído (%d caracteres)", len(result.Data.Text))
	return result.Data.Text, nil
}

// consumeLLM envía el prompt armado al servicio LLM; con deepanalyze el
// destino es el endpoint secundario, con contrato idéntico
func (o *Orchestrator) consumeLLM(ctx context.Context, text string, deepAnalyze bool) (domain.MetadataRecord, *domain.ErrorBody) {
	url := o.cfg.LLMLedURL
	token := o.cfg.LLMLedToken
	if deepAnalyze {
		url = o.cfg.LLMDeepanalyzeURL
		token = o.cfg.LLMDeepanalyzeToken
	}
	log.Printf("📡 Llamando al servicio LLM: %s/consume-llm", url)

	var result llmResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(map[string]string{"text": text}).
		Post(url + "/consume-llm")
	if err != nil {
		log.Printf("❌ error llamando al servicio LLM: %v", err)
		return nil, &domain.ErrorBody{Code: http.StatusInternalServerError, Message: err.Error()}
	}
	if resp.StatusCode() != http.StatusOK {
		log.Printf("❌ servicio LLM respondió %d: %s", resp.StatusCode(), resp.String())
		return nil, propagateError(resp.StatusCode(), resp.Body())
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &domain.ErrorBody{Code: http.StatusInternalServerError, Message: domain.ErrorExtractingText}
	}
	return result.Data, nil
}

// propagateError copia el error del sobre aguas abajo sin re-envolver; si el
// cuerpo no trae un sobre se conserva el status y el texto crudo
func propagateError(status int, body []byte) *domain.ErrorBody {
	var env domain.Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		return env.Error
	}
	return &domain.ErrorBody{Code: status, Message: string(body)}
}
