//go:build !tinygo && cgo

package glaux

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"
	"github.com/soypat/glgl/v4.1-core/glgl"
)

// VertexArray is a vertex array object together with the vertex buffer and
// optional element buffer it draws from.
type VertexArray struct {
	vao, vbo, ebo uint32

	// sharedVBO is set when vbo belongs to another VertexArray.
	sharedVBO bool
	count     int32
	vertices  int
}

// NewVertexArray uploads interleaved vertex data described by layout and, if
// indices is not empty, an element buffer. Data is uploaded for static drawing.
func NewVertexArray(vertices []float32, indices []uint32, layout Layout) (*VertexArray, error) {
	err := layout.Validate(len(vertices))
	if err != nil {
		return nil, err
	}
	va := &VertexArray{vertices: layout.VertexCount(len(vertices))}
	gl.GenVertexArrays(1, &va.vao)
	gl.GenBuffers(1, &va.vbo)
	// Bind the vertex array first so the buffer bindings below are recorded in it.
	gl.BindVertexArray(va.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, sizeofFloat32*len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)
	va.count = int32(va.vertices)
	if len(indices) > 0 {
		gl.GenBuffers(1, &va.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(indices), gl.Ptr(indices), gl.STATIC_DRAW)
		va.count = int32(len(indices))
	}
	configureAttribs(layout)
	// The element buffer binding is part of the vertex array state: unbind
	// the vertex array, never the element buffer.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if err = glgl.Err(); err != nil {
		va.Delete()
		return nil, errors.Wrap(err, "creating vertex array")
	}
	return va, nil
}

// ShareVertexArray creates a second vertex array over src's vertex buffer,
// reading it with a different layout. The new array does not own the buffer.
func ShareVertexArray(src *VertexArray, layout Layout) (*VertexArray, error) {
	if err := layout.Validate(src.vertices * layout.Floats()); err != nil {
		return nil, err
	}
	va := &VertexArray{vbo: src.vbo, sharedVBO: true, vertices: src.vertices, count: int32(src.vertices)}
	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.vbo)
	configureAttribs(layout)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if err := glgl.Err(); err != nil {
		va.Delete()
		return nil, errors.Wrap(err, "sharing vertex array")
	}
	return va, nil
}

func configureAttribs(layout Layout) {
	stride := layout.Stride()
	for i, a := range layout {
		gl.VertexAttribPointer(a.Index, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(layout.Offset(i)))
		gl.EnableVertexAttribArray(a.Index)
	}
}

// Bind makes va the current vertex array.
func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.vao)
}

// Draw binds va and draws its contents as triangles.
func (va *VertexArray) Draw() {
	gl.BindVertexArray(va.vao)
	if va.ebo != 0 {
		gl.DrawElements(gl.TRIANGLES, va.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, va.count)
	}
}

// Delete releases the vertex array and the buffers it owns.
func (va *VertexArray) Delete() {
	if va.vao != 0 {
		gl.DeleteVertexArrays(1, &va.vao)
		va.vao = 0
	}
	if va.vbo != 0 && !va.sharedVBO {
		gl.DeleteBuffers(1, &va.vbo)
	}
	va.vbo = 0
	if va.ebo != 0 {
		gl.DeleteBuffers(1, &va.ebo)
		va.ebo = 0
	}
}
