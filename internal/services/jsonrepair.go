package services

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// ErrParsingOutput indica que la salida del modelo no pudo recuperarse como
// JSON después de la escalera completa de reparaciones.
var ErrParsingOutput = errors.New("cannot parse json output")

var (
	latinArtifactRe = regexp.MustCompile(`\\[Rp/c]`)
	unicodeEscapeRe = regexp.MustCompile(`\\u[0-9A-Fa-f]{4}|\\[nr]`)
	quotedArrayRe   = regexp.MustCompile(`"\[(.*?)\]"`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	controlCharRe   = regexp.MustCompile(`[\x00-\x1f]`)
)

// ParseModelJSON intenta parsear la salida del modelo como objeto JSON.
// Si el primer parseo falla aplica, en orden: comillas simples a dobles,
// des-citado de arrays, reemplazo del carácter de sustitución, normalización
// de escapes latinos, round-trip latin-1/utf-8 y un parseo final tolerante.
func ParseModelJSON(prediction string) (map[string]any, error) {
	var result map[string]any
	if err := json.Unmarshal([]byte(prediction), &result); err == nil {
		return result, nil
	}

	repaired := strings.ReplaceAll(prediction, "'", `"`)
	repaired = strings.ReplaceAll(repaired, `"[`, `[`)
	repaired = strings.ReplaceAll(repaired, `]"`, `]`)
	repaired = strings.ReplaceAll(repaired, "�", "¿")
	repaired = normalizeLatinEscapes(repaired)
	repaired = latin1RoundTrip(repaired)

	// Último intento: tolerar caracteres de control y comas colgantes
	repaired = controlCharRe.ReplaceAllString(repaired, " ")
	repaired = trailingCommaRe.ReplaceAllString(repaired, "$1")

	if err := json.Unmarshal([]byte(repaired), &result); err != nil {
		return nil, ErrParsingOutput
	}
	return result, nil
}

// normalizeLatinEscapes limpia los artefactos de escape que dejan algunos
// modelos: secuencias literales \r\n, restos tipo \R \p \/ \c, arrays
// citados y escapes unicode sin interpretar.
func normalizeLatinEscapes(text string) string {
	text = strings.ReplaceAll(text, `\r\n`, " ")
	text = latinArtifactRe.ReplaceAllString(text, "")
	if unicodeEscapeRe.MatchString(text) {
		text = decodeUnicodeEscapes(text)
	}
	text = quotedArrayRe.ReplaceAllString(text, "[$1]")
	return strings.ReplaceAll(text, "\\�", "¿")
}

// decodeUnicodeEscapes reinterpreta las secuencias \uXXXX, \n, \r y \t que
// quedaron como texto literal en la salida decodificada
func decodeUnicodeEscapes(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != '\\' || i+1 >= len(text) {
			b.WriteByte(text[i])
			i++
			continue
		}
		switch text[i+1] {
		case 'u':
			if i+6 <= len(text) {
				if code, err := strconv.ParseUint(text[i+2:i+6], 16, 32); err == nil {
					b.WriteRune(rune(code))
					i += 6
					continue
				}
			}
			b.WriteByte(text[i])
			i++
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		default:
			b.WriteByte(text[i])
			i++
		}
	}
	return b.String()
}

// latin1RoundTrip codifica a latin-1 reemplazando lo irrepresentable y decodifica
// de vuelta como utf-8, descartando los bytes inválidos que pudieran quedar
func latin1RoundTrip(text string) string {
	// El encoder guarda estado de transformación, se crea uno por llamada
	encoder := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	encoded, err := encoder.Bytes([]byte(text))
	if err != nil {
		return text
	}
	return strings.ToValidUTF8(string(encoded), "�")
}
