package glaux

import (
	"github.com/pkg/errors"
)

const sizeofFloat32 = 4

// Attrib is a float32 vertex attribute of Size components bound to the
// shader input at location Index.
type Attrib struct {
	Index uint32
	Size  int32
}

// Layout describes interleaved float32 vertex attributes in the order they
// appear in each vertex.
type Layout []Attrib

// Floats returns the number of float32 values in a single vertex.
func (l Layout) Floats() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Stride returns the size of a single vertex in bytes.
func (l Layout) Stride() int32 {
	return int32(l.Floats() * sizeofFloat32)
}

// Offset returns the byte offset of the i'th attribute within a vertex.
func (l Layout) Offset(i int) int {
	off := 0
	for _, a := range l[:i] {
		off += int(a.Size)
	}
	return off * sizeofFloat32
}

// VertexCount returns the number of whole vertices in n float32 values.
func (l Layout) VertexCount(n int) int {
	floats := l.Floats()
	if floats == 0 {
		return 0
	}
	return n / floats
}

// Validate checks the layout describes vertex data of nFloats values.
func (l Layout) Validate(nFloats int) error {
	if len(l) == 0 {
		return errors.New("empty vertex layout")
	}
	seen := make(map[uint32]bool, len(l))
	for i, a := range l {
		if a.Size < 1 || a.Size > 4 {
			return errors.Errorf("attribute %d: size %d not in 1..4", i, a.Size)
		} else if seen[a.Index] {
			return errors.Errorf("attribute %d: duplicate location %d", i, a.Index)
		}
		seen[a.Index] = true
	}
	if nFloats == 0 {
		return errors.New("no vertex data")
	} else if nFloats%l.Floats() != 0 {
		return errors.Errorf("%d floats is not a whole number of %d-float vertices", nFloats, l.Floats())
	}
	return nil
}
