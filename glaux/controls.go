//go:build !tinygo && cgo

package glaux

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/learngl"
)

var movementKeys = [...]struct {
	key glfw.Key
	dir learngl.Movement
}{
	{glfw.KeyW, learngl.Forward},
	{glfw.KeyS, learngl.Backward},
	{glfw.KeyA, learngl.Left},
	{glfw.KeyD, learngl.Right},
}

// ProcessEscape flags the window for closing when Escape is held.
func ProcessEscape(w *glfw.Window) {
	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
}

// ProcessMovement moves cam for every held W/A/S/D key. dt is the frame time in seconds.
func ProcessMovement(w *glfw.Window, cam *learngl.Camera, dt float32) {
	for _, mk := range movementKeys {
		if w.GetKey(mk.key) == glfw.Press {
			cam.ProcessKeyboard(mk.dir, dt)
		}
	}
}

// AttachCamera installs cursor and scroll callbacks on w that turn and zoom cam.
func AttachCamera(w *glfw.Window, cam *learngl.Camera) {
	var tracker CursorTracker
	w.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		dx, dy := tracker.Offset(xpos, ypos)
		cam.ProcessMouseMovement(dx, dy)
	})
	w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		cam.ProcessMouseScroll(float32(yoff))
	})
}
