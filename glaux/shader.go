//go:build !tinygo && cgo

package glaux

import (
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/soypat/glgl/v4.1-core/glgl"
	"go.uber.org/zap"
)

// Shader is a linked vertex+fragment shader program with cached uniform
// locations. A Shader whose compilation failed has program ID 0: it can still
// be used and drawn with, producing undefined output, and every setter is a no-op.
type Shader struct {
	name string
	prog glgl.Program
	log  *zap.Logger
	locs map[string]int32
}

// CompileShader compiles and links the vertex and fragment sources. Failure is
// logged along with the driver's diagnostic and an unusable Shader is returned.
func CompileShader(log *zap.Logger, name, vertexSrc, fragmentSrc string) *Shader {
	s := &Shader{
		name: name,
		log:  log.With(zap.String("shader", name)),
		locs: make(map[string]int32),
	}
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   nullTerminated(vertexSrc),
		Fragment: nullTerminated(fragmentSrc),
	})
	if err != nil {
		s.log.Error("shader program compilation failed", zap.Error(err))
		return s
	}
	s.prog = prog
	s.log.Debug("compiled shader program", zap.Uint32("id", uint32(prog.ID())))
	return s
}

// LoadShader reads vertex and fragment sources from fsys and compiles them
// with [CompileShader]. Read failures are logged and yield an unusable Shader.
func LoadShader(log *zap.Logger, fsys fs.FS, vertexPath, fragmentPath string) *Shader {
	name := strings.TrimSuffix(vertexPath, ".vs")
	vertex, err := fs.ReadFile(fsys, vertexPath)
	if err == nil {
		var fragment []byte
		fragment, err = fs.ReadFile(fsys, fragmentPath)
		if err == nil {
			return CompileShader(log, name, string(vertex), string(fragment))
		}
	}
	log.Error("shader source not read", zap.String("shader", name), zap.Error(errors.Wrap(err, "reading shader")))
	return &Shader{name: name, log: log, locs: make(map[string]int32)}
}

// ID returns the GL program name, 0 if compilation failed.
func (s *Shader) ID() uint32 { return uint32(s.prog.ID()) }

// Use makes s the current program. Uniform setters apply to the current program.
func (s *Shader) Use() {
	if s.ID() == 0 {
		gl.UseProgram(0)
		return
	}
	s.prog.Bind()
}

func (s *Shader) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	s.SetInt(name, i)
}

func (s *Shader) SetInt(name string, v int32) {
	if loc, ok := s.location(name); ok {
		gl.Uniform1i(loc, v)
	}
}

func (s *Shader) SetFloat(name string, v float32) {
	if loc, ok := s.location(name); ok {
		if err := s.prog.SetUniformf(loc, v); err != nil {
			s.log.Warn("setting uniform", zap.String("uniform", name), zap.Error(err))
		}
	}
}

func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	if loc, ok := s.location(name); ok {
		gl.Uniform3fv(loc, 1, &v[0])
	}
}

func (s *Shader) SetVec3f(name string, x, y, z float32) {
	s.SetVec3(name, mgl32.Vec3{x, y, z})
}

// SetMat4 uploads a column-major matrix, the layout mgl32 and GLSL share.
func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	if loc, ok := s.location(name); ok {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// Delete releases the GL program.
func (s *Shader) Delete() {
	if s.ID() != 0 {
		s.prog.Delete()
	}
}

// location looks up and caches a uniform location. Missing uniforms (unused
// uniforms are optimized out by drivers) are reported once.
func (s *Shader) location(name string) (int32, bool) {
	if s.ID() == 0 {
		return -1, false
	}
	loc, cached := s.locs[name]
	if !cached {
		var err error
		loc, err = s.prog.UniformLocation(name + "\x00")
		if err != nil {
			s.log.Debug("uniform not found", zap.String("uniform", name), zap.Error(err))
			loc = -1
		}
		s.locs[name] = loc
	}
	return loc, loc >= 0
}

func nullTerminated(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}
