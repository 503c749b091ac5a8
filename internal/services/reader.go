package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Extensiones permitidas por el extractor
var permittedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// HasPermitExtension valida la extensión del archivo subido
func HasPermitExtension(filename string) bool {
	return permittedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SaveTempFile copia el stream entrante a un archivo temporal con la
// extensión original. El cleanup devuelto borra el archivo en todos los
// caminos de salida.
func SaveTempFile(src io.Reader, filename string) (string, func(), error) {
	ext := strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(os.TempDir(), uuid.New().String()+ext)

	dst, err := os.Create(path)
	if err != nil {
		return "", nil, fmt.Errorf("error al crear archivo temporal: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", nil, fmt.Errorf("error al guardar archivo temporal: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", nil, fmt.Errorf("error al cerrar archivo temporal: %w", err)
	}
	return path, func() { os.Remove(path) }, nil
}

// ExtractText devuelve el texto plano del documento según su extensión
func ExtractText(filePath string, normalization bool) (string, error) {
	var text string
	var err error
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		text, err = ExtractPDFText(filePath)
	case ".docx":
		text, err = ExtractDocxText(filePath)
	default:
		return "", fmt.Errorf("extensión no soportada: %s", filepath.Ext(filePath))
	}
	if err != nil {
		return "", err
	}
	if normalization {
		text = NormalizeText(text)
	}
	return text, nil
}

// ExtractTextWithTags devuelve el texto etiquetado del documento
func ExtractTextWithTags(filePath string, normalization bool) (string, error) {
	var text string
	var err error
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		text, err = ExtractPDFTagged(filePath)
	case ".docx":
		text, err = ExtractDocxTagged(filePath)
	default:
		return "", fmt.Errorf("extensión no soportada: %s", filepath.Ext(filePath))
	}
	if err != nil {
		return "", err
	}
	if normalization {
		text = NormalizeText(text)
	}
	return text, nil
}
