package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sedici_metadata_server/internal/config"
	"sedici_metadata_server/internal/domain"
	"sedici_metadata_server/internal/services"
)

const testToken = "token-de-prueba"

// fakeBackend permite fijar la respuesta de cada método por test
type fakeBackend struct {
	prediction  string
	generateErr error
	record      domain.MetadataRecord
	cleanErr    *domain.ErrorBody
	gotPrompt   string
}

func (f *fakeBackend) Generate(ctx context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.prediction, f.generateErr
}

func (f *fakeBackend) CleanJSON(prediction string) (domain.MetadataRecord, *domain.ErrorBody) {
	return f.record, f.cleanErr
}

func testRouter(backend services.LLMBackend) http.Handler {
	return NewRouter(config.Config{
		Port:               "8002",
		CORSAllowedOrigins: []string{"*"},
		ServiceToken:       testToken,
	}, backend)
}

func postConsume(t *testing.T, router http.Handler, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/consume-llm", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domain.Envelope {
	t.Helper()
	var env domain.Envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestConsumeLLMSuccess(t *testing.T) {
	backend := &fakeBackend{
		prediction: `{"dc.title": "Un título"}`,
		record:     domain.MetadataRecord{"dc.title": "Un título"},
	}
	rec := postConsume(t, testRouter(backend), map[string]string{"text": "prompt y texto"}, testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Un título", data["dc.title"])
	assert.Equal(t, "prompt y texto", backend.gotPrompt)
}

func TestConsumeLLMEmptyText(t *testing.T) {
	rec := postConsume(t, testRouter(&fakeBackend{}), map[string]string{"text": ""}, testToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.ErrorNoTextInput, env.Error.Message)
}

func TestConsumeLLMInvalidBody(t *testing.T) {
	router := testRouter(&fakeBackend{})
	req := httptest.NewRequest(http.MethodPost, "/consume-llm", bytes.NewReader([]byte("no json")))
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConsumeLLMGenerateFailure(t *testing.T) {
	backend := &fakeBackend{generateErr: errors.New("runtime caído")}
	rec := postConsume(t, testRouter(backend), map[string]string{"text": "algo"}, testToken)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.ErrorOpeningModel, env.Error.Message)
}

func TestConsumeLLMParseFailure(t *testing.T) {
	backend := &fakeBackend{
		prediction: "not json at all",
		cleanErr:   &domain.ErrorBody{Code: domain.CodeErrorParsingOutput, Message: domain.ErrorParsingOutput},
	}
	rec := postConsume(t, testRouter(backend), map[string]string{"text": "algo"}, testToken)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "cannot parse json output", env.Error.Message)
}

func TestConsumeLLMRequiresToken(t *testing.T) {
	rec := postConsume(t, testRouter(&fakeBackend{}), map[string]string{"text": "algo"}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.ErrorInvalidToken, env.Error.Message)
}
