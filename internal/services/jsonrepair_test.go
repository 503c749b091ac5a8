package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelJSONValid(t *testing.T) {
	record, err := ParseModelJSON(`{"dc.title": "Un título", "dc.subject": ["a", "b"]}`)
	require.NoError(t, err)
	assert.Equal(t, "Un título", record["dc.title"])
	assert.Equal(t, []any{"a", "b"}, record["dc.subject"])
}

func TestParseModelJSONSingleQuotes(t *testing.T) {
	record, err := ParseModelJSON(`{'a': 1,}`)
	require.NoError(t, err)
	assert.Equal(t, float64(1), record["a"])
}

func TestParseModelJSONQuotedArray(t *testing.T) {
	record, err := ParseModelJSON(`{"dc.subject": "["historia", "geografia"]"}`)
	require.NoError(t, err)
	assert.Equal(t, []any{"historia", "geografia"}, record["dc.subject"])
}

func TestParseModelJSONUnicodeEscapes(t *testing.T) {
	record, err := ParseModelJSON(`{'dc.title': 'ABC'}`)
	require.NoError(t, err)
	assert.Equal(t, "ABC", record["dc.title"])
}

func TestParseModelJSONLiteralCRLF(t *testing.T) {
	record, err := ParseModelJSON(`{'title': 'linea\r\ncortada'}`)
	require.NoError(t, err)
	assert.Equal(t, "linea cortada", record["title"])
}

// El round-trip latin-1/utf-8 repara el mojibake típico de salidas
// decodificadas con el charset equivocado
func TestParseModelJSONRepairsMojibake(t *testing.T) {
	record, err := ParseModelJSON(`{'dc.title': 'EducaciÃ³n superior'}`)
	require.NoError(t, err)
	assert.Equal(t, "Educación superior", record["dc.title"])
}

func TestParseModelJSONControlChars(t *testing.T) {
	record, err := ParseModelJSON("{\"dc.title\": \"con\x02control\"}")
	require.NoError(t, err)
	assert.Equal(t, "con control", record["dc.title"])
}

func TestParseModelJSONUnrecoverable(t *testing.T) {
	_, err := ParseModelJSON("not json at all")
	assert.ErrorIs(t, err, ErrParsingOutput)
}

// La recuperación es una función total: cualquier entrada devuelve objeto o
// error, nunca entra en pánico
func TestParseModelJSONNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"{",
		"[1, 2, 3]",
		"\"solo un string\"",
		"{\"clave\": }",
		string([]byte{0xff, 0xfe, 0x00, '{', '}'}),
		`{'roto': '\u12'}`,
		"{\"control\": \"a\x01b\"}",
	}
	for _, input := range inputs {
		assert.NotPanics(t, func() {
			_, _ = ParseModelJSON(input)
		})
	}
}
