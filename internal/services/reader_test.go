package services

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasPermitExtension(t *testing.T) {
	assert.True(t, HasPermitExtension("documento.pdf"))
	assert.True(t, HasPermitExtension("documento.docx"))
	assert.True(t, HasPermitExtension("DOCUMENTO.PDF"))
	assert.False(t, HasPermitExtension("documento.txt"))
	assert.False(t, HasPermitExtension("documento.doc"))
	assert.False(t, HasPermitExtension("sin-extension"))
}

func TestSaveTempFile(t *testing.T) {
	path, cleanup, err := SaveTempFile(strings.NewReader("contenido"), "doc.PDF")
	require.NoError(t, err)
	require.NotNil(t, cleanup)

	assert.True(t, strings.HasSuffix(path, ".pdf"))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(raw))

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	_, err := ExtractText("/tmp/archivo.txt", true)
	assert.Error(t, err)
	_, err = ExtractTextWithTags("/tmp/archivo.txt", true)
	assert.Error(t, err)
}
