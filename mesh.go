// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

// meshAttribute is one vertex attribute specification. Contexts without
// vertex array objects replay these on every draw.
type meshAttribute struct {
	buffer     *Buffer
	attrib     gl.Attrib
	size       int
	ty         gl.Enum
	normalized bool
	integer    bool
	stride     int
	offset     int
	divisor    int
}

// Mesh ties vertex buffers, attribute layout and an optional index
// buffer together. On contexts with vertex array objects the layout is
// baked into a VAO once; elsewhere it is re-specified at draw time.
type Mesh struct {
	vao        gl.VertexArray
	attributes []meshAttribute

	indexBuffer *Buffer
}

// NewMesh allocates a mesh.
func NewMesh(c *Context) *Mesh {
	m := &Mesh{}
	if c.state.mesh.vaoSupported {
		m.vao = c.state.mesh.createVAO(c)
	}
	return m
}

// AddVertexBuffer attaches one float attribute sourced from b.
func (m *Mesh) AddVertexBuffer(c *Context, b *Buffer, attrib gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	attr := meshAttribute{
		buffer: b, attrib: attrib, size: size, ty: ty,
		normalized: normalized, stride: stride, offset: offset,
	}
	m.attributes = append(m.attributes, attr)
	c.state.mesh.attributePointer(c, m, attr)
}

// AddInstancedVertexBuffer attaches a per-instance float attribute
// advancing every divisor instances.
func (m *Mesh) AddInstancedVertexBuffer(c *Context, b *Buffer, attrib gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset, divisor int) {
	if c.state.mesh.vertexAttribDivisor == nil {
		panic("glctx: instanced attributes require OpenGL 3.3, OpenGL ES 3.0 or an instancing extension")
	}
	attr := meshAttribute{
		buffer: b, attrib: attrib, size: size, ty: ty,
		normalized: normalized, stride: stride, offset: offset,
		divisor: divisor,
	}
	m.attributes = append(m.attributes, attr)
	c.state.mesh.attributePointer(c, m, attr)
}

// AddIntegerVertexBuffer attaches one integer attribute sourced from b.
func (m *Mesh) AddIntegerVertexBuffer(c *Context, b *Buffer, attrib gl.Attrib, size int, ty gl.Enum, stride, offset int) {
	if c.state.mesh.integerAttributePointer == nil {
		panic("glctx: integer attributes require OpenGL or OpenGL ES 3.0")
	}
	attr := meshAttribute{
		buffer: b, attrib: attrib, size: size, ty: ty,
		integer: true, stride: stride, offset: offset,
	}
	m.attributes = append(m.attributes, attr)
	c.state.mesh.integerAttributePointer(c, m, attr)
}

// SetIndexBuffer attaches the element buffer.
func (m *Mesh) SetIndexBuffer(c *Context, b *Buffer) {
	m.indexBuffer = b
	c.state.mesh.bindIndexBuffer(c, m, b)
}

// Draw issues a non-indexed draw.
func (m *Mesh) Draw(c *Context, mode gl.Enum, first, count int) {
	c.state.mesh.drawArrays(c, m, mode, first, count)
}

// DrawIndexed issues an indexed draw.
func (m *Mesh) DrawIndexed(c *Context, mode gl.Enum, count int, ty gl.Enum, offset int) {
	c.state.mesh.drawElements(c, m, mode, count, ty, offset)
}

// DrawIndexedBaseVertex issues an indexed draw with an index bias.
func (m *Mesh) DrawIndexedBaseVertex(c *Context, mode gl.Enum, count int, ty gl.Enum, offset, baseVertex int) {
	c.state.mesh.drawElementsBaseVertex(c, m, mode, count, ty, offset, baseVertex)
}

// DrawInstanced issues a non-indexed instanced draw.
func (m *Mesh) DrawInstanced(c *Context, mode gl.Enum, first, count, instanceCount int) {
	if c.state.mesh.drawArraysInstanced == nil {
		panic("glctx: instanced drawing requires OpenGL 3.1, OpenGL ES 3.0 or an instancing extension")
	}
	c.state.mesh.drawArraysInstanced(c, m, mode, first, count, instanceCount)
}

// DrawIndexedInstanced issues an indexed instanced draw.
func (m *Mesh) DrawIndexedInstanced(c *Context, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int) {
	if c.state.mesh.drawElementsInstanced == nil {
		panic("glctx: instanced drawing requires OpenGL 3.1, OpenGL ES 3.0 or an instancing extension")
	}
	c.state.mesh.drawElementsInstanced(c, m, mode, count, ty, offset, instanceCount)
}

// DrawInstancedBaseInstance issues an instanced draw starting at a
// nonzero instance.
func (m *Mesh) DrawInstancedBaseInstance(c *Context, mode gl.Enum, first, count, instanceCount, baseInstance int) {
	c.state.mesh.drawArraysInstancedBaseInstance(c, m, mode, first, count, instanceCount, baseInstance)
}

// DrawIndexedInstancedBaseVertex issues an indexed instanced draw with
// an index bias.
func (m *Mesh) DrawIndexedInstancedBaseVertex(c *Context, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount, baseVertex int) {
	c.state.mesh.drawElementsInstancedBaseVertex(c, m, mode, count, ty, offset, instanceCount, baseVertex)
}

// DrawIndexedInstancedBaseVertexBaseInstance combines the index bias
// with a nonzero starting instance.
func (m *Mesh) DrawIndexedInstancedBaseVertexBaseInstance(c *Context, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount, baseVertex, baseInstance int) {
	c.state.mesh.drawElementsInstancedBaseVertexBaseInstance(c, m, mode, count, ty, offset, instanceCount, baseVertex, baseInstance)
}

// MultiDraw issues several non-indexed draws in one call, looping when
// the context has no multi-draw entry point.
func (m *Mesh) MultiDraw(c *Context, mode gl.Enum, firsts, counts []int32) {
	c.state.mesh.multiDrawArrays(c, m, mode, firsts, counts)
}

// MultiDrawIndexed issues several indexed draws in one call.
func (m *Mesh) MultiDrawIndexed(c *Context, mode gl.Enum, counts []int32, ty gl.Enum, offsets []int) {
	c.state.mesh.multiDrawElements(c, m, mode, counts, ty, offsets)
}

// Release deletes the mesh's VAO, if any, and scrubs it from the
// binding cache.
func (m *Mesh) Release(c *Context) {
	if m.vao.Valid() {
		if c.state.mesh.currentVAO == m.vao.V {
			c.state.mesh.currentVAO = disengagedBinding
		}
		c.funcs.DeleteVertexArray(m.vao)
		m.vao = gl.VertexArray{}
	}
	m.attributes = nil
	m.indexBuffer = nil
}
