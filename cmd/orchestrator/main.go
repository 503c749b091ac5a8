package main

import (
	"log"
	"net/http"

	"sedici_metadata_server/internal/config"
	"sedici_metadata_server/internal/orchestrator"
	"sedici_metadata_server/internal/services"
)

func main() {
	// Cargar configuración
	cfg := config.LoadOrchestrator()

	// Crear servicio de orquestación y router
	orch := services.NewOrchestrator(cfg)
	router := orchestrator.NewRouter(cfg, orch)

	// Iniciar servidor
	log.Printf("🚀 Iniciando orquestador en puerto %s", cfg.Port)
	log.Printf("📡 Extractor: %s", cfg.ExtractorURL)
	log.Printf("📡 Servicio LLM: %s", cfg.LLMLedURL)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("❌ Error al iniciar servidor: %v", err)
	}
}
