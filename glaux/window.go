//go:build !tinygo && cgo

package glaux

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// StartGLFW initializes GLFW, opens a window with a core profile GL context
// made current on the calling thread and loads the GL function pointers.
// The viewport follows the framebuffer size. Callers must have locked the OS
// thread and must call terminate when done.
func StartGLFW(cfg WindowConfig, log *zap.Logger) (window *glfw.Window, terminate func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, errors.Wrap(err, "initializing GLFW")
	}
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// Required on macOS for core profiles.
	glfw.WindowHint(glfw.OpenGLForwardCompat, glfw.True)
	resizable := glfw.False
	if cfg.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)

	window, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, errors.Wrap(err, "creating GLFW window")
	}
	window.MakeContextCurrent()
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	if cfg.CaptureCursor {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, errors.Wrap(err, "initializing OpenGL")
	}
	log.Info("window ready",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.String("gl", GLVersion()),
	)
	return window, glfw.Terminate, nil
}

// GLVersion returns the version string reported by the current context.
func GLVersion() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Time returns seconds elapsed since GLFW was initialized.
func Time() float64 {
	return glfw.GetTime()
}
