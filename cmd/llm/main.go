package main

import (
	"log"
	"net/http"

	"sedici_metadata_server/internal/config"
	"sedici_metadata_server/internal/llm"
	"sedici_metadata_server/internal/services"
)

func main() {
	// Cargar configuración
	cfg := config.LoadLLM()

	// El backend se construye una sola vez por proceso
	backend, err := services.NewLLMBackend(cfg)
	if err != nil {
		log.Fatalf("❌ Error al construir el backend del modelo: %v", err)
	}
	router := llm.NewRouter(cfg, backend)

	// Iniciar servidor
	log.Printf("🚀 Iniciando servicio LLM en puerto %s (modelo %s)", cfg.Port, cfg.ModelSelected)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("❌ Error al iniciar servidor: %v", err)
	}
}
