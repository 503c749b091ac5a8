package main

import (
	"log"
	"net/http"

	"sedici_metadata_server/internal/config"
	"sedici_metadata_server/internal/extractor"
)

func main() {
	// Cargar configuración
	cfg := config.LoadExtractor()

	// Crear router
	router := extractor.NewRouter(cfg)

	// Iniciar servidor
	log.Printf("🚀 Iniciando servicio extractor en puerto %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("❌ Error al iniciar servidor: %v", err)
	}
}
