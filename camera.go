// Package learngl holds the pieces of the tutorial programs that do not need a
// graphics context. The [Camera] is the free-fly camera shared by the camera
// and lighting examples under examples/.
package learngl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Movement is a camera movement direction driven by the keyboard.
type Movement uint8

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "Movement(unknown)"
}

// Camera defaults.
const (
	DefaultYaw         = -90
	DefaultPitch       = 0
	DefaultSpeed       = 2.5
	DefaultSensitivity = 0.1
	DefaultZoom        = 45

	// MaxPitch keeps the front vector away from world up so the
	// look-at basis does not flip at the poles.
	MaxPitch = 89
	MinZoom  = 1
	MaxZoom  = 45
)

// CameraConfig configures a new [Camera]. Angles are in degrees.
// Zero Speed, Sensitivity, Zoom and WorldUp take their defaults.
type CameraConfig struct {
	Position    mgl32.Vec3
	WorldUp     mgl32.Vec3
	Yaw         float32
	Pitch       float32
	Speed       float32
	Sensitivity float32
	Zoom        float32
}

// DefaultCameraConfig returns the configuration of a camera at position
// looking down the negative Z axis.
func DefaultCameraConfig(position mgl32.Vec3) CameraConfig {
	return CameraConfig{
		Position:    position,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Zoom:        DefaultZoom,
	}
}

// Camera is a free-fly camera. It turns keyboard, mouse and scroll input into
// a position and orientation and exposes the resulting view transform.
// Camera is a plain value: it does no timing of its own and holds no
// graphics resources.
type Camera struct {
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	// Orthonormal basis derived from yaw and pitch.
	front, right, up mgl32.Vec3

	yaw, pitch  float32
	speed       float32
	sensitivity float32
	zoom        float32
}

// NewCamera returns a camera configured by cfg with its basis computed.
func NewCamera(cfg CameraConfig) Camera {
	if cfg.WorldUp == (mgl32.Vec3{}) {
		cfg.WorldUp = mgl32.Vec3{0, 1, 0}
	}
	if cfg.Speed == 0 {
		cfg.Speed = DefaultSpeed
	}
	if cfg.Sensitivity == 0 {
		cfg.Sensitivity = DefaultSensitivity
	}
	if cfg.Zoom == 0 {
		cfg.Zoom = DefaultZoom
	}
	c := Camera{
		position:    cfg.Position,
		worldUp:     cfg.WorldUp.Normalize(),
		yaw:         cfg.Yaw,
		pitch:       clamp(cfg.Pitch, -MaxPitch, MaxPitch),
		speed:       cfg.Speed,
		sensitivity: cfg.Sensitivity,
		zoom:        clamp(cfg.Zoom, MinZoom, MaxZoom),
	}
	c.updateBasis()
	return c
}

// ProcessKeyboard moves the camera along its front or right vector by
// speed*dt. dt is the time in seconds since the previous frame.
func (c *Camera) ProcessKeyboard(direction Movement, dt float32) {
	velocity := c.speed * dt
	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ProcessMouseMovement turns the camera by the cursor offset scaled by the
// mouse sensitivity. Pitch is clamped to [-MaxPitch, MaxPitch]; yaw is left
// to wrap through the trigonometric functions.
func (c *Camera) ProcessMouseMovement(dx, dy float32) {
	c.yaw += dx * c.sensitivity
	c.pitch = clamp(c.pitch+dy*c.sensitivity, -MaxPitch, MaxPitch)
	c.updateBasis()
}

// ProcessMouseScroll narrows (positive dy) or widens the field of view,
// clamped to [MinZoom, MaxZoom] degrees.
func (c *Camera) ProcessMouseScroll(dy float32) {
	c.zoom = clamp(c.zoom-dy, MinZoom, MaxZoom)
}

// ViewMatrix returns the right-handed look-at transform from the camera
// position towards position+front.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns a perspective projection using the camera zoom as
// vertical field of view.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, near, far)
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Right() mgl32.Vec3    { return c.right }
func (c *Camera) Up() mgl32.Vec3       { return c.up }

// Yaw returns the yaw angle in degrees.
func (c *Camera) Yaw() float32 { return c.yaw }

// Pitch returns the pitch angle in degrees.
func (c *Camera) Pitch() float32 { return c.pitch }

// Zoom returns the vertical field of view in degrees.
func (c *Camera) Zoom() float32 { return c.zoom }

func (c *Camera) updateBasis() {
	c.front = frontVector(c.yaw, c.pitch)
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func frontVector(yaw, pitch float32) mgl32.Vec3 {
	y := mgl32.DegToRad(yaw)
	p := mgl32.DegToRad(pitch)
	cp := math32.Cos(p)
	return mgl32.Vec3{
		math32.Cos(y) * cp,
		math32.Sin(p),
		math32.Sin(y) * cp,
	}.Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}
