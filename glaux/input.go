package glaux

// FrameClock measures the time between consecutive frames. The zero value
// measures the first frame from time zero, which for GLFW is library
// initialization.
type FrameClock struct {
	last float64
}

// Tick records now as the current frame time in seconds and returns the time
// elapsed since the previous tick.
func (c *FrameClock) Tick(now float64) (dt float64) {
	dt = now - c.last
	c.last = now
	return dt
}

// CursorTracker converts absolute cursor positions into per-event offsets.
type CursorTracker struct {
	lastX, lastY float64
	started      bool
}

// Offset returns the cursor movement since the previous call. The first call
// only records the position and returns zero so the view does not jump when
// the cursor enters the window. dy is positive upwards since window
// coordinates grow downwards.
func (t *CursorTracker) Offset(x, y float64) (dx, dy float32) {
	if !t.started {
		t.lastX, t.lastY = x, y
		t.started = true
	}
	dx = float32(x - t.lastX)
	dy = float32(t.lastY - y)
	t.lastX, t.lastY = x, y
	return dx, dy
}
