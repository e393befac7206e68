// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

// Buffer wraps a GL buffer object. All methods dispatch through the
// slots bound at context creation; the target is only a hint for
// bind-to-edit code paths.
type Buffer struct {
	buffer gl.Buffer
	target gl.Enum
}

// NewBuffer allocates a buffer object with GL_ARRAY_BUFFER as its
// binding hint.
func NewBuffer(c *Context) *Buffer {
	return NewBufferTarget(c, gl.ARRAY_BUFFER)
}

// NewBufferTarget allocates a buffer object with an explicit binding
// hint for bind-to-edit implementations.
func NewBufferTarget(c *Context, target gl.Enum) *Buffer {
	return &Buffer{
		buffer: c.state.buffer.create(c),
		target: target,
	}
}

// ID returns the underlying object name.
func (b *Buffer) ID() uint32 { return b.buffer.V }

// Bind binds the buffer to target through the binding cache.
func (b *Buffer) Bind(c *Context, target gl.Enum) {
	c.state.buffer.bind(c, target, b.buffer.V)
}

// Data uploads data, orphaning any previous storage.
func (b *Buffer) Data(c *Context, data []byte, usage gl.Enum) {
	c.state.buffer.data(c, b, data, usage)
}

// SubData updates a range of previously allocated storage.
func (b *Buffer) SubData(c *Context, offset int, data []byte) {
	c.state.buffer.subData(c, b, offset, data)
}

// CopyTo copies a range into dst. Requires OpenGL 3.1 or OpenGL ES 3.0.
func (b *Buffer) CopyTo(c *Context, dst *Buffer, readOffset, writeOffset, size int) {
	if c.state.buffer.copy == nil {
		panic("glctx: buffer copy requires OpenGL 3.1 or OpenGL ES 3.0")
	}
	c.state.buffer.copy(c, b, dst, readOffset, writeOffset, size)
}

// MapRange maps a range of the buffer. Requires OpenGL 3.0, OpenGL ES
// 3.0 or EXT_map_buffer_range.
func (b *Buffer) MapRange(c *Context, offset, length int, access gl.Enum) []byte {
	if c.state.buffer.mapRange == nil {
		panic("glctx: buffer mapping requires OpenGL 3.0, OpenGL ES 3.0 or GL_EXT_map_buffer_range")
	}
	return c.state.buffer.mapRange(c, b, offset, length, access)
}

// FlushMappedRange flushes a range mapped with MAP_FLUSH_EXPLICIT_BIT.
func (b *Buffer) FlushMappedRange(c *Context, offset, length int) {
	if c.state.buffer.flushMappedRange == nil {
		panic("glctx: buffer mapping requires OpenGL 3.0, OpenGL ES 3.0 or GL_EXT_map_buffer_range")
	}
	c.state.buffer.flushMappedRange(c, b, offset, length)
}

// Unmap unmaps the buffer, returning false when the storage was
// corrupted while mapped.
func (b *Buffer) Unmap(c *Context) bool {
	if c.state.buffer.unmap == nil {
		panic("glctx: buffer mapping requires OpenGL 3.0, OpenGL ES 3.0 or GL_EXT_map_buffer_range")
	}
	return c.state.buffer.unmap(c, b)
}

// Release deletes the buffer object and scrubs it from the binding
// cache.
func (b *Buffer) Release(c *Context) {
	for i, id := range c.state.buffer.bindings {
		if id == b.buffer.V {
			c.state.buffer.bindings[i] = disengagedBinding
		}
	}
	c.funcs.DeleteBuffer(b.buffer)
	b.buffer = gl.Buffer{}
}
