package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareObjectName(t *testing.T) {
	name, err := PrepareObjectName("font_metadata.json", nil)
	require.NoError(t, err)
	assert.Equal(t, "font_metadata.json", name)

	name, err = PrepareObjectName("font_metadata.json", &FileUploadOptions{DirectoryPath: "catalogs/latest"})
	require.NoError(t, err)
	assert.Equal(t, "catalogs/latest/font_metadata.json", name)

	name, err = PrepareObjectName("fonts.snippet.js", &FileUploadOptions{DirectoryPath: "catalogs", UniquePrefix: true})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "catalogs/"))
	assert.True(t, strings.HasSuffix(name, "_fonts.snippet.js"))
	assert.Len(t, name, len("catalogs/")+uniquePrefixLength+len("_fonts.snippet.js"))
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "application/json", DetectContentType("font_metadata.json", nil))
	assert.Equal(t, "text/plain; charset=utf-8", DetectContentType("snippet", []byte("const x = 1")))
	assert.Equal(t, "application/octet-stream", DetectContentType("snippet", nil))
}
