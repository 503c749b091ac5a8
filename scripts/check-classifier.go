package main

import (
	"fmt"
	"log"
	"os"

	"sedici_metadata_server/internal/services"
)

// Utilidad de desarrollo: carga un artefacto de clasificador exportado a JSON
// y predice sobre un texto, para verificar la exportación desde el
// entrenamiento antes de apuntar el orquestador al archivo.
//
//	go run scripts/check-classifier.go models/type_classifier.json texto.txt
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "uso: check-classifier <artefacto.json> <texto.txt>")
		os.Exit(2)
	}

	clf, err := services.LoadClassifier(os.Args[1])
	if err != nil {
		log.Fatalf("❌ error cargando artefacto: %v", err)
	}

	text, err := os.ReadFile(os.Args[2])
	if err != nil {
		log.Fatalf("❌ error leyendo texto: %v", err)
	}

	fmt.Println(clf.Predict(string(text)))
}
