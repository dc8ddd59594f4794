// Package assets embeds the shader sources and settings of the example programs.
package assets

import (
	"bytes"
	"embed"
	"io"
)

// Shader source files, named after the program stage: .vs vertex, .fs fragment.
const (
	VertexColorVS = "shaders/vertex_color.vs"
	VertexColorFS = "shaders/vertex_color.fs"
	TransformVS   = "shaders/transform.vs"
	TexturedFS    = "shaders/textured.fs"
	MVPTexturedVS = "shaders/mvp_textured.vs"
	ColorsVS      = "shaders/colors.vs"
	ColorsFS      = "shaders/colors.fs"
	LightCubeFS   = "shaders/light_cube.fs"
)

//go:embed shaders/*.vs shaders/*.fs settings.yaml
var FS embed.FS

//go:embed settings.yaml
var settings []byte

// Settings returns a reader over the embedded settings.yaml.
func Settings() io.Reader {
	return bytes.NewReader(settings)
}
