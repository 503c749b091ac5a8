package services

import (
	"regexp"
	"strings"
	"unicode"
)

// Normalización post-extracción: colapsa líneas de puntos, repara números
// duplicados por la capa de texto del PDF y colapsa repeticiones de
// puntuación y letras. Aplicarla dos veces equivale a aplicarla una vez.

var (
	dotLeaderRe      = regexp.MustCompile(`\.{2,}`)
	repeatedNumberRe = regexp.MustCompile(`(\d{6,})\s*[-–]+\s*(\d{6,})`)
)

// NormalizeText aplica la normalización completa al texto extraído
func NormalizeText(text string) string {
	text = dotLeaderRe.ReplaceAllString(text, " ")
	text = fixRepeatedNumbers(text)
	text = collapseRuns(text, isCollapsiblePunct)
	return collapseRuns(text, isCollapsibleLetter)
}

// fixRepeatedNumbers repara pares de números largos separados por guiones
// cuyos dígitos fueron duplicados por el PDF: si el largo es múltiplo de 4 se
// toma un dígito por bloque, si es par uno de cada dos, si es impar se deja.
func fixRepeatedNumbers(text string) string {
	return repeatedNumberRe.ReplaceAllStringFunc(text, func(match string) string {
		groups := repeatedNumberRe.FindStringSubmatch(match)
		return cleanNumber(groups[1]) + "-" + cleanNumber(groups[2])
	})
}

func cleanNumber(num string) string {
	length := len(num)
	var step int
	switch {
	case length%4 == 0:
		step = length / 4
	case length%2 == 0:
		step = 2
	default:
		return num
	}
	var b strings.Builder
	for i := 0; i < length; i += step {
		b.WriteByte(num[i])
	}
	return b.String()
}

// collapseRuns reduce a una sola aparición las corridas de tres o más
// caracteres iguales que cumplan el predicado. El regexp estándar de Go no
// soporta backreferences, así que la corrida se detecta a mano.
func collapseRuns(text string, member func(rune) bool) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); {
		r := runes[i]
		j := i + 1
		for j < len(runes) && runes[j] == r {
			j++
		}
		if j-i >= 3 && member(r) {
			b.WriteRune(r)
		} else {
			for k := i; k < j; k++ {
				b.WriteRune(r)
			}
		}
		i = j
	}
	return b.String()
}

func isCollapsiblePunct(r rune) bool {
	return strings.ContainsRune(`{}[]()*-+?,:;._!@#$%^&`, r)
}

func isCollapsibleLetter(r rune) bool {
	if r > unicode.MaxASCII {
		return strings.ContainsRune("ÁÉÍÓÚáéíóúÑñ", r)
	}
	return unicode.IsLetter(r)
}
