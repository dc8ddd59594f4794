package assets

import (
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/soypat/learngl/glaux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderSources(t *testing.T) {
	for _, name := range []string{
		VertexColorVS, VertexColorFS,
		TransformVS, TexturedFS,
		MVPTexturedVS,
		ColorsVS, ColorsFS, LightCubeFS,
	} {
		src, err := fs.ReadFile(FS, name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(src), "#version 330 core\n"), "%s: missing version directive", name)
		assert.Contains(t, string(src), "void main()", name)
	}
}

func TestEmbeddedSettings(t *testing.T) {
	s, err := glaux.LoadSettings(Settings())
	require.NoError(t, err)
	// The embedded document only restates the defaults, plus a resizable window.
	want := glaux.DefaultSettings()
	want.Window.Resizable = true
	assert.Equal(t, want, s)

	// Each call returns a fresh reader.
	b, err := io.ReadAll(Settings())
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}
