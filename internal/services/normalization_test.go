package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTextCollapsesDotLeaders(t *testing.T) {
	assert.Equal(t, "Introducción 3", NormalizeText("Introducción........3"))
	assert.Equal(t, "sin cambios.", NormalizeText("sin cambios."))
}

func TestNormalizeTextCollapsesRepeatedPunctuation(t *testing.T) {
	assert.Equal(t, "fin!", NormalizeText("fin!!!"))
	assert.Equal(t, "a-b", NormalizeText("a---b"))
	// Dos repeticiones quedan como están
	assert.Equal(t, "a--b", NormalizeText("a--b"))
}

func TestNormalizeTextCollapsesRepeatedLetters(t *testing.T) {
	assert.Equal(t, "holaá", NormalizeText("holaaaááá"))
	assert.Equal(t, "coordinar", NormalizeText("coordinar"))
}

func TestFixRepeatedNumbers(t *testing.T) {
	// Largo múltiplo de 4: un dígito por bloque
	assert.Equal(t, "1234-5678", fixRepeatedNumbers("111222333444 -- 555666777888"))
	// Largo par no múltiplo de 4: uno de cada dos
	// 14 dígitos -> 7 dígitos
	assert.Equal(t, "1122334-5566778", fixRepeatedNumbers("11112222333344 - 55556666777788"))
	// Largo impar: se deja como está
	assert.Equal(t, "1234567-7654321", fixRepeatedNumbers("1234567-7654321"))
	// Números cortos no se tocan
	assert.Equal(t, "123-456", fixRepeatedNumbers("123-456"))
}

func TestNormalizeTextIsIdempotent(t *testing.T) {
	inputs := []string{
		"Introducción........3 fin!!! holaaa 111222333444--555666777888",
		"texto normal sin artefactos",
		"....... ---- ;;;; ñññññ",
	}
	for _, input := range inputs {
		once := NormalizeText(input)
		assert.Equal(t, once, NormalizeText(once), "no es idempotente para %q", input)
	}
}
