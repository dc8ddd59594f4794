package glaux

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/soypat/learngl"
	"gopkg.in/yaml.v3"
)

// Settings holds everything the example programs take from configuration.
// Programs take no flags or environment variables: settings are decoded from
// a YAML document embedded in the binary over [DefaultSettings].
type Settings struct {
	Window   WindowConfig    `yaml:"window"`
	Log      LogConfig       `yaml:"log"`
	Camera   CameraSettings  `yaml:"camera"`
	Textures TextureSettings `yaml:"textures"`
}

// WindowConfig configures the window and GL context created by StartGLFW.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	// GL context version requested from the driver.
	Major     int  `yaml:"major"`
	Minor     int  `yaml:"minor"`
	Resizable bool `yaml:"resizable"`
	// CaptureCursor hides the cursor and keeps it in the window, as needed for mouse look.
	CaptureCursor bool `yaml:"capture_cursor"`
}

// Aspect returns the width to height ratio of the window.
func (wc WindowConfig) Aspect() float32 {
	return float32(wc.Width) / float32(wc.Height)
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// CameraSettings configures the free-fly camera and the projection built from it.
type CameraSettings struct {
	Position    []float32 `yaml:"position"`
	Yaw         float32   `yaml:"yaw"`
	Pitch       float32   `yaml:"pitch"`
	Speed       float32   `yaml:"speed"`
	Sensitivity float32   `yaml:"sensitivity"`
	Zoom        float32   `yaml:"zoom"`
	Near        float32   `yaml:"near"`
	Far         float32   `yaml:"far"`
}

// Config returns the camera configuration described by the settings.
func (cs CameraSettings) Config() learngl.CameraConfig {
	var pos mgl32.Vec3
	copy(pos[:], cs.Position)
	return learngl.CameraConfig{
		Position:    pos,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         cs.Yaw,
		Pitch:       cs.Pitch,
		Speed:       cs.Speed,
		Sensitivity: cs.Sensitivity,
		Zoom:        cs.Zoom,
	}
}

type TextureSettings struct {
	Container string `yaml:"container"`
	Face      string `yaml:"face"`
	FlipY     bool   `yaml:"flip_y"`
}

// DefaultSettings returns an 800x600 window with the camera three units back from the origin.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "LearnOpenGL",
			Major:  4,
			Minor:  1,
		},
		Log: LogConfig{Level: "info"},
		Camera: CameraSettings{
			Position:    []float32{0, 0, 3},
			Yaw:         learngl.DefaultYaw,
			Pitch:       learngl.DefaultPitch,
			Speed:       learngl.DefaultSpeed,
			Sensitivity: learngl.DefaultSensitivity,
			Zoom:        learngl.DefaultZoom,
			Near:        0.1,
			Far:         100,
		},
		Textures: TextureSettings{
			Container: "res/textures/container.jpg",
			Face:      "res/textures/awesomeface.png",
			FlipY:     true,
		},
	}
}

// LoadSettings decodes YAML settings from r over [DefaultSettings].
// An empty document yields the defaults. Unknown keys are an error.
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&s)
	if err != nil && err != io.EOF {
		return Settings{}, errors.Wrap(err, "decoding settings")
	}
	err = s.Validate()
	if err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks settings values are usable.
func (s Settings) Validate() error {
	w := s.Window
	switch {
	case w.Width <= 0 || w.Height <= 0:
		return errors.Errorf("invalid window size %dx%d", w.Width, w.Height)
	case w.Major < 3 || (w.Major == 3 && w.Minor < 3):
		return errors.Errorf("GL %d.%d below minimum 3.3", w.Major, w.Minor)
	case len(s.Camera.Position) != 3:
		return errors.Errorf("camera position needs 3 components, got %d", len(s.Camera.Position))
	case s.Camera.Near <= 0 || s.Camera.Far <= s.Camera.Near:
		return errors.Errorf("invalid clip planes near=%g far=%g", s.Camera.Near, s.Camera.Far)
	}
	return nil
}
