package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExtraFiles(t *testing.T) {
	extras, err := LoadExtraFiles()
	require.NoError(t, err)
	require.NotEmpty(t, extras)

	for path, content := range extras {
		assert.True(t, strings.HasPrefix(path, "extras/"), "path %q must sit under extras/", path)
		assert.NotEmpty(t, content)
	}
}
