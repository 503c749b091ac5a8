package services

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// Umbrales fijos para DOCX: el tamaño en puntos del párrafo decide la
// etiqueta (> 16pt título, > 12pt sección, el resto sin etiqueta).
const (
	docxH1Points = 16
	docxH2Points = 12
)

// ExtractDocxText extrae el texto plano de un DOCX, un párrafo por línea
func ExtractDocxText(filePath string) (string, error) {
	content, err := readDocxContent(filePath)
	if err != nil {
		return "", err
	}
	var lines []string
	for _, p := range parseDocxParagraphs(content) {
		if text := strings.TrimSpace(p.text); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// ExtractDocxTagged etiqueta cada párrafo según su tamaño de fuente en puntos
func ExtractDocxTagged(filePath string) (string, error) {
	content, err := readDocxContent(filePath)
	if err != nil {
		return "", err
	}
	return tagDocxContent(content), nil
}

func readDocxContent(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("error al leer archivo Word: %w", err)
	}
	defer doc.Close()
	return doc.Editable().GetContent(), nil
}

// docxParagraph es un párrafo del documento con su tamaño máximo en puntos
type docxParagraph struct {
	text   string
	points int
}

// tagDocxContent arma el texto etiquetado a partir del XML del documento
func tagDocxContent(content string) string {
	var b strings.Builder
	for _, p := range parseDocxParagraphs(content) {
		switch {
		case p.points > docxH1Points:
			b.WriteString("<h1>" + p.text + "</h1> ")
		case p.points > docxH2Points:
			b.WriteString("<h2>" + p.text + "</h2> ")
		default:
			b.WriteString(p.text)
		}
	}
	return b.String()
}

// parseDocxParagraphs recorre el XML de document.xml juntando el texto de
// cada <w:p> y el mayor <w:sz> (medio-puntos) que aparezca en sus runs.
func parseDocxParagraphs(content string) []docxParagraph {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []docxParagraph
	var text strings.Builder
	inParagraph := false
	inText := false
	halfPoints := 0

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				text.Reset()
				halfPoints = 0
			case "sz":
				for _, attr := range t.Attr {
					if attr.Name.Local == "val" {
						if v, err := strconv.Atoi(attr.Value); err == nil && v > halfPoints {
							halfPoints = v
						}
					}
				}
			case "t":
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inParagraph && strings.TrimSpace(text.String()) != "" {
					paragraphs = append(paragraphs, docxParagraph{
						text:   strings.TrimSpace(text.String()),
						points: halfPoints / 2,
					})
				}
				inParagraph = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inParagraph && inText {
				text.Write(t)
			}
		}
	}
	return paragraphs
}
