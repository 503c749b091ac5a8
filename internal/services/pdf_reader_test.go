package services

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveThresholds(t *testing.T) {
	th, err := deriveThresholds([]int{8, 10, 12, 18})
	require.NoError(t, err)
	assert.Equal(t, 18, th.h1)
	assert.Equal(t, 18, th.h2) // percentil 75 de 4 elementos es el último
	assert.Equal(t, 8, th.p)
	assert.GreaterOrEqual(t, th.h1, th.h2)
	assert.GreaterOrEqual(t, th.h2, th.p)
}

func TestDeriveThresholdsSingleSize(t *testing.T) {
	th, err := deriveThresholds([]int{11})
	require.NoError(t, err)
	assert.Equal(t, 11, th.h1)
	assert.Equal(t, 11, th.h2)
	// No hay tamaños por debajo de h2
	assert.Equal(t, 0, th.p)
}

func TestDeriveThresholdsEmpty(t *testing.T) {
	_, err := deriveThresholds(nil)
	assert.ErrorIs(t, err, errNoFontSizes)
}

func TestTagForSizeOrdering(t *testing.T) {
	th := fontThresholds{h1: 18, h2: 12, p: 9}
	assert.Equal(t, "h1", tagForSize(20, th))
	assert.Equal(t, "h1", tagForSize(18, th))
	assert.Equal(t, "h2", tagForSize(14, th))
	assert.Equal(t, "h2", tagForSize(12, th))
	assert.Equal(t, "p", tagForSize(10, th))
	assert.Equal(t, "p", tagForSize(1, th))
}

// assertBalancedTags verifica que cada apertura tenga su cierre y que no se
// intercalen etiquetas de distinto tipo
func assertBalancedTags(t *testing.T, tagged string) {
	t.Helper()
	tokenRe := regexp.MustCompile(`</?(?:h1|h2|p)>`)
	open := ""
	for _, tag := range tokenRe.FindAllString(tagged, -1) {
		if strings.HasPrefix(tag, "</") {
			require.Equal(t, "</"+open+">", tag, "cierre inesperado en %q", tagged)
			open = ""
		} else {
			require.Empty(t, open, "apertura anidada en %q", tagged)
			open = strings.Trim(tag, "<>")
		}
	}
	require.Empty(t, open, "etiqueta sin cerrar en %q", tagged)
}

func TestTagWordStreamGroupsByThreshold(t *testing.T) {
	th := fontThresholds{h1: 18, h2: 12, p: 9}
	pages := [][]taggedWord{{
		{text: "Título", size: 18},
		{text: "principal", size: 18},
		{text: "cuerpo", size: 9},
		{text: "del", size: 9},
		{text: "documento", size: 9},
		{text: "Sección", size: 12},
	}}

	tagged := tagWordStream(pages, th)
	assert.Equal(t, "<h1>Título principal</h1><p>cuerpo del documento</p><h2>Sección</h2>", tagged)
	assertBalancedTags(t, tagged)
}

func TestTagWordStreamSingleFontSize(t *testing.T) {
	// Un solo tamaño observado: los umbrales colapsan y todo queda en h1
	th, err := deriveThresholds([]int{11})
	require.NoError(t, err)

	pages := [][]taggedWord{{
		{text: "texto", size: 11},
		{text: "uniforme", size: 11},
	}}
	tagged := tagWordStream(pages, th)
	assert.Equal(t, "<h1>texto uniforme</h1>", tagged)
	assertBalancedTags(t, tagged)
}

func TestTagWordStreamTruncation(t *testing.T) {
	th := fontThresholds{h1: 18, h2: 12, p: 9}

	var pages [][]taggedWord
	// 10 páginas de 500 palabras: el corte llega en la quinta página
	for i := 0; i < 10; i++ {
		var words []taggedWord
		for j := 0; j < 500; j++ {
			words = append(words, taggedWord{text: "palabra", size: 9})
		}
		pages = append(pages, words)
	}

	tagged := tagWordStream(pages, th)
	assertBalancedTags(t, tagged)

	tokens := len(strings.Fields(tagged))
	assert.LessOrEqual(t, tokens, maxTaggedTokens+501, "la salida supera el tope más la página del corte")
	assert.Greater(t, tokens, 1500, "la salida quedó muy por debajo del tope")
}

func TestTagWordStreamEmptyPages(t *testing.T) {
	tagged := tagWordStream([][]taggedWord{nil, nil}, fontThresholds{h1: 12, h2: 12})
	assertBalancedTags(t, tagged)
	assert.Equal(t, "<p></p>", tagged)
}

func TestDistinctSizesScansFirstThreePages(t *testing.T) {
	pages := [][]taggedWord{
		{{text: "a", size: 10}},
		{{text: "b", size: 12}},
		{{text: "c", size: 10}},
		{{text: "d", size: 30}}, // cuarta página, fuera del escaneo
	}
	assert.Equal(t, []int{10, 12}, distinctSizes(pages))
}

func TestDistinctSizesDiscardsOversized(t *testing.T) {
	pages := [][]taggedWord{{
		{text: "normal", size: 10},
		{text: "artefacto", size: 52},
	}}
	assert.Equal(t, []int{10}, distinctSizes(pages))
}
