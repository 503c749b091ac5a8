package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

const (
	// Páginas escaneadas para derivar los umbrales tipográficos
	maxFontScanPages = 3
	// Tope aproximado de tokens del texto etiquetado
	maxTaggedTokens = 2000
	// Alturas crudas >= 40 se descartan como artefactos
	maxRawFontSize = 40.0
)

var errNoFontSizes = errors.New("no se encontraron tamaños de fuente en el documento")

// fontThresholds son los umbrales de tamaño por etiqueta. Invariante:
// h1 >= h2 >= p.
type fontThresholds struct {
	h1 int
	h2 int
	p  int
}

// taggedWord es una palabra con su altura de fuente redondeada
type taggedWord struct {
	text string
	size int
}

// tagForSize devuelve la etiqueta correspondiente a un tamaño de fuente
func tagForSize(size int, th fontThresholds) string {
	if size >= th.h1 {
		return "h1"
	}
	if size >= th.h2 {
		return "h2"
	}
	return "p"
}

// deriveThresholds calcula los umbrales a partir de los tamaños distintos
// observados: h1 es el máximo, h2 el percentil 75 de la lista ordenada y p el
// mínimo estrictamente menor a h2 (0 si no existe).
func deriveThresholds(sizes []int) (fontThresholds, error) {
	if len(sizes) == 0 {
		return fontThresholds{}, errNoFontSizes
	}
	sorted := append([]int{}, sizes...)
	sort.Ints(sorted)

	h1 := sorted[len(sorted)-1]
	h2 := sorted[0]
	if len(sorted) > 1 {
		h2 = sorted[int(float64(len(sorted))*0.75)]
	}
	p := 0
	for _, size := range sorted {
		if size < h2 {
			p = size
			break
		}
	}
	return fontThresholds{h1: h1, h2: h2, p: p}, nil
}

// ExtractPDFText extrae el texto plano de un PDF página por página
func ExtractPDFText(filePath string) (string, error) {
	doc, err := fitz.New(filePath)
	if err != nil {
		return "", fmt.Errorf("error al abrir PDF: %w", err)
	}
	defer doc.Close()

	var pages []string
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("error al leer página %d: %w", i, err)
		}
		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n\n"), nil
}

// ExtractPDFTagged extrae el texto del PDF etiquetado con <h1>/<h2>/<p>
// según los umbrales tipográficos del propio documento.
func ExtractPDFTagged(filePath string) (tagged string, err error) {
	// La librería de parseo puede entrar en pánico con PDFs malformados;
	// se convierte en error para que el handler responda 500.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("error al parsear PDF: %v", r)
		}
	}()

	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("error al abrir PDF: %w", err)
	}
	defer f.Close()

	pages := collectDocumentWords(reader)
	th, err := deriveThresholds(distinctSizes(pages))
	if err != nil {
		return "", err
	}
	return tagWordStream(pages, th), nil
}

// collectDocumentWords agrupa los fragmentos de texto de cada página en
// palabras con su tamaño de fuente redondeado
func collectDocumentWords(reader *pdf.Reader) [][]taggedWord {
	var pages [][]taggedWord
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		pages = append(pages, collectPageWords(page))
	}
	return pages
}

func collectPageWords(page pdf.Page) []taggedWord {
	var words []taggedWord
	var current strings.Builder
	currentSize := 0.0
	lastY := math.NaN()

	flush := func() {
		if current.Len() > 0 {
			words = append(words, taggedWord{
				text: current.String(),
				size: int(math.Round(currentSize)),
			})
			current.Reset()
			currentSize = 0
		}
	}

	for _, fragment := range page.Content().Text {
		// Un cambio de renglón o un espacio cierran la palabra en curso
		if !math.IsNaN(lastY) && math.Abs(fragment.Y-lastY) > 0.5 {
			flush()
		}
		lastY = fragment.Y
		if strings.TrimSpace(fragment.S) == "" {
			flush()
			continue
		}
		current.WriteString(fragment.S)
		if fragment.FontSize > currentSize {
			currentSize = fragment.FontSize
		}
	}
	flush()
	return words
}

// distinctSizes junta los tamaños redondeados distintos de las primeras
// páginas, descartando alturas crudas fuera de rango
func distinctSizes(pages [][]taggedWord) []int {
	seen := make(map[int]bool)
	var sizes []int
	for i, words := range pages {
		if i >= maxFontScanPages {
			break
		}
		for _, w := range words {
			if float64(w.size) >= maxRawFontSize {
				continue
			}
			if !seen[w.size] {
				seen[w.size] = true
				sizes = append(sizes, w.size)
			}
		}
	}
	sort.Ints(sizes)
	return sizes
}

// tagWordStream recorre las palabras página por página manteniendo la
// etiqueta vigente. Cambia de etiqueta cuando el tamaño redondeado cruza un
// umbral y corta apenas la salida supera el tope de tokens, siempre cerrando
// la etiqueta abierta.
func tagWordStream(pages [][]taggedWord, th fontThresholds) string {
	currentTag := "p"
	for _, words := range pages {
		if len(words) > 0 {
			currentTag = tagForSize(words[0].size, th)
			break
		}
	}

	var b strings.Builder
	b.WriteString("<" + currentTag + ">")
	var pending []string
	tokenCount := 1

	flush := func() {
		b.WriteString(strings.Join(pending, " "))
		b.WriteString("</" + currentTag + ">")
		tokenCount += len(pending) + 1
		pending = pending[:0]
	}

	for _, words := range pages {
		for _, w := range words {
			tag := tagForSize(w.size, th)
			if tag != currentTag {
				flush()
				currentTag = tag
				b.WriteString("<" + currentTag + ">")
				tokenCount++
			}
			pending = append(pending, w.text)
		}
		if tokenCount+len(pending) > maxTaggedTokens {
			flush()
			return b.String()
		}
	}
	flush()
	return b.String()
}
