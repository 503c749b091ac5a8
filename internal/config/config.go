package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config reúne todas las variables de entorno de los tres servicios. Cada
// binario usa su loader (LoadExtractor, LoadLLM, LoadOrchestrator), que falla
// rápido si falta un valor requerido.
type Config struct {
	Port               string
	CORSAllowedOrigins []string
	ServiceToken       string

	// Orquestador
	ExtractorURL          string
	ExtractorToken        string
	LLMLedURL             string
	LLMLedToken           string
	LLMDeepanalyzeURL     string
	LLMDeepanalyzeToken   string
	TypeClassifierPath    string
	SubjectClassifierPath string

	// Servicio LLM
	ModelSelected          string
	ModelPath              string
	IsLocalModel           bool
	IsOllamaModel          bool
	OllamaHostURL          string
	ModelRunnerURL         string
	Quantization           bool
	MaxTokensInput         int
	MaxTokensOutput        int
	Truncation             string
	SpecialTokensTreatment bool
	ErrorsTreatment        string
}

func loadBase(defaultPort string) Config {
	// Cargar archivo .env si existe
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando variables de entorno del sistema")
	}

	corsOrigins := getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	var allowedOrigins []string
	for _, origin := range strings.Split(corsOrigins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins = append(allowedOrigins, origin)
		}
	}

	return Config{
		Port:               getenv("PORT", defaultPort),
		CORSAllowedOrigins: allowedOrigins,
		ServiceToken:       os.Getenv("SERVICE_TOKEN"),
	}
}

// LoadExtractor carga la configuración del servicio extractor
func LoadExtractor() Config {
	cfg := loadBase("8001")
	if cfg.ServiceToken == "" {
		log.Fatal("❌ SERVICE_TOKEN no configurado")
	}
	log.Printf("=== CONFIGURACIÓN EXTRACTOR ===")
	log.Printf("PORT: %s", cfg.Port)
	log.Printf("CORS_ALLOWED_ORIGINS: %v", cfg.CORSAllowedOrigins)
	log.Println("=== FIN CONFIGURACIÓN ===")
	return cfg
}

// LoadLLM carga la configuración del servicio LLM
func LoadLLM() Config {
	cfg := loadBase("8002")
	cfg.ModelSelected = getenv("MODEL_SELECTED", "LED")
	cfg.ModelPath = os.Getenv("MODEL_PATH")
	cfg.IsLocalModel = getenvBool("IS_LOCAL_MODEL", false)
	cfg.IsOllamaModel = getenvBool("IS_OLLAMA_MODEL", false)
	cfg.OllamaHostURL = getenv("OLLAMA_HOST_URL", "http://localhost:11434")
	cfg.ModelRunnerURL = getenv("MODEL_RUNNER_URL", "http://localhost:11434")
	cfg.Quantization = getenvBool("QUANTIZATION", false)
	cfg.MaxTokensInput = getenvInt("MAX_TOKENS_INPUT", 2048)
	cfg.MaxTokensOutput = getenvInt("MAX_TOKENS_OUTPUT", 512)
	cfg.Truncation = getenv("TRUNACTION", "longest_first")
	cfg.SpecialTokensTreatment = getenvBool("SPECIAL_TOKENS_TREATMENT", true)
	cfg.ErrorsTreatment = getenv("ERRORS_TREATMENT", "replace")

	if cfg.ServiceToken == "" {
		log.Fatal("❌ SERVICE_TOKEN no configurado")
	}
	log.Printf("=== CONFIGURACIÓN SERVICIO LLM ===")
	log.Printf("PORT: %s", cfg.Port)
	log.Printf("MODEL_SELECTED: %s", cfg.ModelSelected)
	log.Printf("MODEL_PATH: %s", cfg.ModelPath)
	log.Printf("IS_LOCAL_MODEL: %v", cfg.IsLocalModel)
	log.Printf("IS_OLLAMA_MODEL: %v", cfg.IsOllamaModel)
	log.Printf("QUANTIZATION: %v", cfg.Quantization)
	log.Printf("MAX_TOKENS_INPUT: %d", cfg.MaxTokensInput)
	log.Printf("MAX_TOKENS_OUTPUT: %d", cfg.MaxTokensOutput)
	log.Println("=== FIN CONFIGURACIÓN ===")
	return cfg
}

// LoadOrchestrator carga la configuración del orquestador
func LoadOrchestrator() Config {
	cfg := loadBase("8000")
	cfg.ExtractorURL = os.Getenv("EXTRACTOR_URL")
	cfg.ExtractorToken = os.Getenv("EXTRACTOR_TOKEN")
	cfg.LLMLedURL = os.Getenv("LLM_LED_URL")
	cfg.LLMLedToken = os.Getenv("LLM_LED_TOKEN")
	cfg.LLMDeepanalyzeURL = os.Getenv("LLM_DEEPANALYZE_URL")
	cfg.LLMDeepanalyzeToken = os.Getenv("LLM_DEEPANALYZE_TOKEN")
	cfg.TypeClassifierPath = getenv("TYPE_CLASSIFIER_PATH", "models/type_classifier.json")
	cfg.SubjectClassifierPath = getenv("SUBJECT_CLASSIFIER_PATH", "models/subject_classifier.json")

	if cfg.ServiceToken == "" {
		log.Fatal("❌ SERVICE_TOKEN no configurado")
	}
	if cfg.ExtractorURL == "" {
		log.Fatal("❌ EXTRACTOR_URL no configurado")
	}
	if cfg.LLMLedURL == "" {
		log.Fatal("❌ LLM_LED_URL no configurado")
	}

	log.Printf("=== CONFIGURACIÓN ORQUESTADOR ===")
	log.Printf("PORT: %s", cfg.Port)
	log.Printf("EXTRACTOR_URL: %s", cfg.ExtractorURL)
	log.Printf("LLM_LED_URL: %s", cfg.LLMLedURL)
	log.Printf("LLM_DEEPANALYZE_URL: %s", cfg.LLMDeepanalyzeURL)
	log.Printf("TYPE_CLASSIFIER_PATH: %s", cfg.TypeClassifierPath)
	log.Printf("SUBJECT_CLASSIFIER_PATH: %s", cfg.SubjectClassifierPath)
	log.Println("=== FIN CONFIGURACIÓN ===")
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("valor inválido para %s: %q, usando %d", key, v, def)
		return def
	}
	return n
}
