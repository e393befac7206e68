// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

type meshState struct {
	currentVAO   uint32
	defaultVAO   gl.VertexArray
	scratchVAO   gl.VertexArray
	vaoSupported bool

	createVAO               func(c *Context) gl.VertexArray
	bindMesh                func(c *Context, m *Mesh)
	attributePointer        func(c *Context, m *Mesh, attr meshAttribute)
	integerAttributePointer func(c *Context, m *Mesh, attr meshAttribute)
	bindIndexBuffer         func(c *Context, m *Mesh, b *Buffer)
	vertexAttribDivisor     func(c *Context, a gl.Attrib, divisor int)

	drawArrays             func(c *Context, m *Mesh, mode gl.Enum, first, count int)
	drawElements           func(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset int)
	drawElementsBaseVertex func(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, baseVertex int)

	drawArraysInstanced                         func(c *Context, m *Mesh, mode gl.Enum, first, count, instanceCount int)
	drawElementsInstanced                       func(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int)
	drawArraysInstancedBaseInstance             func(c *Context, m *Mesh, mode gl.Enum, first, count, instanceCount, baseInstance int)
	drawElementsInstancedBaseVertex             func(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount, baseVertex int)
	drawElementsInstancedBaseVertexBaseInstance func(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount, baseVertex, baseInstance int)

	multiDrawArrays   func(c *Context, m *Mesh, mode gl.Enum, firsts, counts []int32)
	multiDrawElements func(c *Context, m *Mesh, mode gl.Enum, counts []int32, ty gl.Enum, offsets []int)
}

func (s *meshState) init(c *Context, extensions []string) {
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBVertexArrayObject):
		record(extensions, ARBVertexArrayObject)
		s.vaoSupported = true
	case c.profile.ES() && c.IsVersionSupported(GLES300):
		s.vaoSupported = true
	case c.profile.ES() && c.IsExtensionSupported(OESVertexArrayObject):
		record(extensions, OESVertexArrayObject)
		s.vaoSupported = true
	}

	dsa := s.vaoSupported && !c.profile.ES() && c.IsExtensionSupported(ARBDirectStateAccess)
	if dsa && c.detectedDriver&DriverIntelWindows != 0 &&
		!c.isDriverWorkaroundDisabled("intel-windows-crazy-broken-vao-dsa") {
		dsa = false
	}

	if s.vaoSupported {
		s.bindMesh = meshBindImplementationVAO
		if dsa {
			record(extensions, ARBDirectStateAccess)
			s.createVAO = meshCreateVAOImplementationDSA
			s.attributePointer = meshAttributePointerImplementationDSA
			s.integerAttributePointer = meshIntegerAttributePointerImplementationDSA
			s.bindIndexBuffer = meshBindIndexBufferImplementationDSA
			if c.detectedDriver&DriverIntelWindows != 0 &&
				!c.isDriverWorkaroundDisabled("intel-windows-broken-dsa-integer-vertex-attributes") {
				s.integerAttributePointer = meshIntegerAttributePointerImplementationVAO
			}
		} else {
			s.createVAO = meshCreateVAOImplementationDefault
			s.attributePointer = meshAttributePointerImplementationVAO
			s.integerAttributePointer = meshIntegerAttributePointerImplementationVAO
			s.bindIndexBuffer = meshBindIndexBufferImplementationVAO
		}
	} else {
		// Attributes get re-specified on every draw.
		s.bindMesh = meshBindImplementationDefault
		s.attributePointer = meshAttributePointerImplementationDefault
		s.integerAttributePointer = meshIntegerAttributePointerImplementationDefault
		s.bindIndexBuffer = meshBindIndexBufferImplementationDefault

		// A core profile context refuses vertex specification without a
		// bound VAO, so when vertex_array_object was explicitly
		// disabled, keep one bound for the context's whole lifetime.
		if !c.profile.ES() && c.version >= GL300 {
			s.defaultVAO = c.funcs.GenVertexArray()
			c.funcs.BindVertexArray(s.defaultVAO)
		}
	}

	// Integer attributes don't exist before 3.0 / ES 3.0 at all.
	if c.profile.ES() && !c.IsVersionSupported(GLES300) {
		s.integerAttributePointer = nil
	}
	if !c.profile.ES() && c.version < GL300 {
		s.integerAttributePointer = nil
	}

	// Attribute divisors.
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBInstancedArrays):
		record(extensions, ARBInstancedArrays)
		s.vertexAttribDivisor = meshVertexAttribDivisorImplementationDefault
	case c.profile.ES() && c.IsVersionSupported(GLES300):
		s.vertexAttribDivisor = meshVertexAttribDivisorImplementationDefault
	case c.profile.ES() && c.IsExtensionSupported(ANGLEInstancedArrays):
		record(extensions, ANGLEInstancedArrays)
		s.vertexAttribDivisor = meshVertexAttribDivisorImplementationANGLE
	case c.profile.ES() && c.IsExtensionSupported(EXTInstancedArrays):
		record(extensions, EXTInstancedArrays)
		s.vertexAttribDivisor = meshVertexAttribDivisorImplementationEXT
	case c.profile.ES() && c.IsExtensionSupported(NVInstancedArrays):
		record(extensions, NVInstancedArrays)
		s.vertexAttribDivisor = meshVertexAttribDivisorImplementationNV
	}

	s.drawArrays = meshDrawArraysImplementationDefault
	s.drawElements = meshDrawElementsImplementationDefault

	// Base vertex draws: a context that can't name the entry point gets
	// the panic sentinel so a stray call fails loudly instead of
	// through a nil dereference.
	baseVertex := false
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBDrawElementsBaseVertex):
		record(extensions, ARBDrawElementsBaseVertex)
		baseVertex = true
	case c.profile.ES() && c.IsVersionSupported(GLES320):
		baseVertex = true
	case c.profile.ES() && c.IsExtensionSupported(EXTDrawElementsBaseVertex):
		record(extensions, EXTDrawElementsBaseVertex)
		baseVertex = true
	case c.profile.ES() && c.IsExtensionSupported(OESDrawElementsBaseVertex):
		record(extensions, OESDrawElementsBaseVertex)
		baseVertex = true
	}
	if baseVertex {
		s.drawElementsBaseVertex = meshDrawElementsBaseVertexImplementationDefault
		s.drawElementsInstancedBaseVertex = meshDrawElementsInstancedBaseVertexImplementationDefault
	} else {
		s.drawElementsBaseVertex = meshDrawElementsBaseVertexImplementationAssert
		s.drawElementsInstancedBaseVertex = meshDrawElementsInstancedBaseVertexImplementationAssert
	}

	// Instanced draws: on ES2 these only exist through vendor
	// extensions and stay nil without one.
	switch {
	case !c.profile.ES() && c.version >= GL310:
		s.drawArraysInstanced = meshDrawArraysInstancedImplementationDefault
		s.drawElementsInstanced = meshDrawElementsInstancedImplementationDefault
	case c.profile.ES() && c.IsVersionSupported(GLES300):
		s.drawArraysInstanced = meshDrawArraysInstancedImplementationDefault
		s.drawElementsInstanced = meshDrawElementsInstancedImplementationDefault
	case c.profile.ES() && c.IsExtensionSupported(ANGLEInstancedArrays):
		record(extensions, ANGLEInstancedArrays)
		s.drawArraysInstanced = meshDrawArraysInstancedImplementationANGLE
		s.drawElementsInstanced = meshDrawElementsInstancedImplementationANGLE
	case c.profile.ES() && c.IsExtensionSupported(EXTInstancedArrays):
		record(extensions, EXTInstancedArrays)
		s.drawArraysInstanced = meshDrawArraysInstancedImplementationEXT
		s.drawElementsInstanced = meshDrawElementsInstancedImplementationEXT
	case c.profile.ES() && c.IsExtensionSupported(NVInstancedArrays):
		record(extensions, NVInstancedArrays)
		s.drawArraysInstanced = meshDrawArraysInstancedImplementationNV
		s.drawElementsInstanced = meshDrawElementsInstancedImplementationNV
	}

	// Base instance.
	baseInstance := false
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBBaseInstance):
		record(extensions, ARBBaseInstance)
		baseInstance = true
	case c.profile.ES() && c.IsExtensionSupported(EXTBaseInstance):
		record(extensions, EXTBaseInstance)
		baseInstance = true
	}
	if baseInstance {
		s.drawArraysInstancedBaseInstance = meshDrawArraysInstancedBaseInstanceImplementationDefault
		s.drawElementsInstancedBaseVertexBaseInstance = meshDrawElementsInstancedBaseVertexBaseInstanceImplementationDefault
	} else {
		s.drawArraysInstancedBaseInstance = meshDrawArraysInstancedBaseInstanceImplementationAssert
		s.drawElementsInstancedBaseVertexBaseInstance = meshDrawElementsInstancedBaseVertexBaseInstanceImplementationAssert
	}

	// Multi-draw falls back to a loop where the entry point is missing.
	switch {
	case !c.profile.ES():
		s.multiDrawArrays = meshMultiDrawArraysImplementationDefault
		s.multiDrawElements = meshMultiDrawElementsImplementationDefault
	case c.profile.WebGL() && c.IsExtensionSupported(WEBGLMultiDraw):
		record(extensions, WEBGLMultiDraw)
		s.multiDrawArrays = meshMultiDrawArraysImplementationDefault
		s.multiDrawElements = meshMultiDrawElementsImplementationDefault
	case c.profile.ES() && c.IsExtensionSupported(EXTMultiDrawArrays):
		record(extensions, EXTMultiDrawArrays)
		s.multiDrawArrays = meshMultiDrawArraysImplementationDefault
		s.multiDrawElements = meshMultiDrawElementsImplementationDefault
	default:
		s.multiDrawArrays = meshMultiDrawArraysImplementationFallback
		s.multiDrawElements = meshMultiDrawElementsImplementationFallback
	}

	s.reset()
	if s.defaultVAO.Valid() {
		// The cache must agree with the bind done above.
		s.currentVAO = s.defaultVAO.V
	}
}

func (s *meshState) reset() {
	s.currentVAO = disengagedBinding
}

func (s *meshState) release(c *Context) {
	if s.defaultVAO.Valid() {
		c.funcs.DeleteVertexArray(s.defaultVAO)
		s.defaultVAO = gl.VertexArray{}
	}
	if s.scratchVAO.Valid() {
		c.funcs.DeleteVertexArray(s.scratchVAO)
		s.scratchVAO = gl.VertexArray{}
	}
}

// bindVAO binds a vertex array through the cache.
func (s *meshState) bindVAO(c *Context, va gl.VertexArray) {
	if s.currentVAO == va.V {
		return
	}
	s.currentVAO = va.V
	c.funcs.BindVertexArray(va)
}

// ensureSomeVAO makes sure some vertex array is bound. Core profile
// contexts reject element array binds without one, so bind-to-edit
// buffer paths call this before touching GL_ELEMENT_ARRAY_BUFFER.
func (s *meshState) ensureSomeVAO(c *Context) {
	if !s.vaoSupported {
		return
	}
	if s.currentVAO != 0 && s.currentVAO != disengagedBinding {
		return
	}
	if !s.scratchVAO.Valid() {
		s.scratchVAO = c.funcs.GenVertexArray()
	}
	s.bindVAO(c, s.scratchVAO)
}

func meshCreateVAOImplementationDefault(c *Context) gl.VertexArray {
	return c.funcs.GenVertexArray()
}

func meshCreateVAOImplementationDSA(c *Context) gl.VertexArray {
	return c.funcs.CreateVertexArray()
}

func meshBindImplementationVAO(c *Context, m *Mesh) {
	c.state.mesh.bindVAO(c, m.vao)
}

func meshBindImplementationDefault(c *Context, m *Mesh) {
	for _, attr := range m.attributes {
		meshSpecifyAttribute(c, m, attr)
	}
	if m.indexBuffer != nil {
		c.state.buffer.bind(c, gl.ELEMENT_ARRAY_BUFFER, m.indexBuffer.buffer.V)
	}
}

func meshSpecifyAttribute(c *Context, m *Mesh, attr meshAttribute) {
	c.state.buffer.bind(c, gl.ARRAY_BUFFER, attr.buffer.buffer.V)
	c.funcs.EnableVertexAttribArray(attr.attrib)
	if attr.integer {
		c.funcs.VertexAttribIPointer(attr.attrib, attr.size, attr.ty, attr.stride, attr.offset)
	} else {
		c.funcs.VertexAttribPointer(attr.attrib, attr.size, attr.ty, attr.normalized, attr.stride, attr.offset)
	}
	if attr.divisor != 0 {
		c.state.mesh.vertexAttribDivisor(c, attr.attrib, attr.divisor)
	}
}

func meshAttributePointerImplementationDefault(c *Context, m *Mesh, attr meshAttribute) {
	// Nothing to do up front, the attribute is replayed at draw time.
}

func meshAttributePointerImplementationVAO(c *Context, m *Mesh, attr meshAttribute) {
	c.state.mesh.bindVAO(c, m.vao)
	meshSpecifyAttribute(c, m, attr)
}

func meshAttributePointerImplementationDSA(c *Context, m *Mesh, attr meshAttribute) {
	binding := int(attr.attrib)
	c.funcs.EnableVertexArrayAttrib(m.vao, attr.attrib)
	c.funcs.VertexArrayVertexBuffer(m.vao, binding, attr.buffer.buffer, attr.offset, attr.stride)
	c.funcs.VertexArrayAttribFormat(m.vao, attr.attrib, attr.size, attr.ty, attr.normalized, 0)
	c.funcs.VertexArrayAttribBinding(m.vao, attr.attrib, binding)
	if attr.divisor != 0 {
		c.state.mesh.bindVAO(c, m.vao)
		c.state.mesh.vertexAttribDivisor(c, attr.attrib, attr.divisor)
	}
}

func meshIntegerAttributePointerImplementationDefault(c *Context, m *Mesh, attr meshAttribute) {}

func meshIntegerAttributePointerImplementationVAO(c *Context, m *Mesh, attr meshAttribute) {
	c.state.mesh.bindVAO(c, m.vao)
	meshSpecifyAttribute(c, m, attr)
}

func meshIntegerAttributePointerImplementationDSA(c *Context, m *Mesh, attr meshAttribute) {
	binding := int(attr.attrib)
	c.funcs.EnableVertexArrayAttrib(m.vao, attr.attrib)
	c.funcs.VertexArrayVertexBuffer(m.vao, binding, attr.buffer.buffer, attr.offset, attr.stride)
	c.funcs.VertexArrayAttribIFormat(m.vao, attr.attrib, attr.size, attr.ty, 0)
	c.funcs.VertexArrayAttribBinding(m.vao, attr.attrib, binding)
}

func meshBindIndexBufferImplementationDefault(c *Context, m *Mesh, b *Buffer) {
	// Bound at draw time together with the attributes.
}

func meshBindIndexBufferImplementationVAO(c *Context, m *Mesh, b *Buffer) {
	c.state.mesh.bindVAO(c, m.vao)
	// The element array binding is VAO state, bypass the target cache.
	c.funcs.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.buffer)
	c.state.buffer.bindings[bufferTargetIndex(gl.ELEMENT_ARRAY_BUFFER)] = b.buffer.V
}

func meshBindIndexBufferImplementationDSA(c *Context, m *Mesh, b *Buffer) {
	c.funcs.VertexArrayElementBuffer(m.vao, b.buffer)
}

func meshVertexAttribDivisorImplementationDefault(c *Context, a gl.Attrib, divisor int) {
	c.funcs.VertexAttribDivisor(a, divisor)
}

func meshVertexAttribDivisorImplementationANGLE(c *Context, a gl.Attrib, divisor int) {
	c.funcs.VertexAttribDivisorANGLE(a, divisor)
}

func meshVertexAttribDivisorImplementationEXT(c *Context, a gl.Attrib, divisor int) {
	c.funcs.VertexAttribDivisorEXT(a, divisor)
}

func meshVertexAttribDivisorImplementationNV(c *Context, a gl.Attrib, divisor int) {
	c.funcs.VertexAttribDivisorNV(a, divisor)
}

func meshDrawArraysImplementationDefault(c *Context, m *Mesh, mode gl.Enum, first, count int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawArrays(mode, first, count)
}

func meshDrawElementsImplementationDefault(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawElements(mode, count, ty, offset)
}

func meshDrawElementsBaseVertexImplementationDefault(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, baseVertex int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawElementsBaseVertex(mode, count, ty, offset, baseVertex)
}

func meshDrawElementsBaseVertexImplementationAssert(*Context, *Mesh, gl.Enum, int, gl.Enum, int, int) {
	panic("glctx: base vertex draws require OpenGL 3.2, OpenGL ES 3.2 or GL_OES_draw_elements_base_vertex")
}

func meshDrawArraysInstancedImplementationDefault(c *Context, m *Mesh, mode gl.Enum, first, count, instanceCount int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawArraysInstanced(mode, first, count, instanceCount)
}

func meshDrawArraysInstancedImplementationANGLE(c *Context, m *Mesh, mode gl.Enum, first, count, instanceCount int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawArraysInstancedANGLE(mode, first, count, instanceCount)
}

func meshDrawArraysInstancedImplementationEXT(c *Context, m *Mesh, mode gl.Enum, first, count, instanceCount int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawArraysInstancedEXT(mode, first, count, instanceCount)
}

func meshDrawArraysInstancedImplementationNV(c *Context, m *Mesh, mode gl.Enum, first, count, instanceCount int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawArraysInstancedNV(mode, first, count, instanceCount)
}

func meshDrawElementsInstancedImplementationDefault(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawElementsInstanced(mode, count, ty, offset, instanceCount)
}

func meshDrawElementsInstancedImplementationANGLE(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawElementsInstancedANGLE(mode, count, ty, offset, instanceCount)
}

func meshDrawElementsInstancedImplementationEXT(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawElementsInstancedEXT(mode, count, ty, offset, instanceCount)
}

func meshDrawElementsInstancedImplementationNV(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawElementsInstancedNV(mode, count, ty, offset, instanceCount)
}

func meshDrawArraysInstancedBaseInstanceImplementationDefault(c *Context, m *Mesh, mode gl.Enum, first, count, instanceCount, baseInstance int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawArraysInstancedBaseInstance(mode, first, count, instanceCount, baseInstance)
}

func meshDrawArraysInstancedBaseInstanceImplementationAssert(*Context, *Mesh, gl.Enum, int, int, int, int) {
	panic("glctx: base instance draws require GL_ARB_base_instance or GL_EXT_base_instance")
}

func meshDrawElementsInstancedBaseVertexImplementationDefault(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount, baseVertex int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawElementsInstancedBaseVertex(mode, count, ty, offset, instanceCount, baseVertex)
}

func meshDrawElementsInstancedBaseVertexImplementationAssert(*Context, *Mesh, gl.Enum, int, gl.Enum, int, int, int) {
	panic("glctx: base vertex draws require OpenGL 3.2, OpenGL ES 3.2 or GL_OES_draw_elements_base_vertex")
}

func meshDrawElementsInstancedBaseVertexBaseInstanceImplementationDefault(c *Context, m *Mesh, mode gl.Enum, count int, ty gl.Enum, offset, instanceCount, baseVertex, baseInstance int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.DrawElementsInstancedBaseVertexBaseInstance(mode, count, ty, offset, instanceCount, baseVertex, baseInstance)
}

func meshDrawElementsInstancedBaseVertexBaseInstanceImplementationAssert(*Context, *Mesh, gl.Enum, int, gl.Enum, int, int, int, int) {
	panic("glctx: base instance draws require GL_ARB_base_instance or GL_EXT_base_instance")
}

func meshMultiDrawArraysImplementationDefault(c *Context, m *Mesh, mode gl.Enum, firsts, counts []int32) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.MultiDrawArrays(mode, firsts, counts)
}

func meshMultiDrawArraysImplementationFallback(c *Context, m *Mesh, mode gl.Enum, firsts, counts []int32) {
	c.state.mesh.bindMesh(c, m)
	for i := range firsts {
		c.funcs.DrawArrays(mode, int(firsts[i]), int(counts[i]))
	}
}

func meshMultiDrawElementsImplementationDefault(c *Context, m *Mesh, mode gl.Enum, counts []int32, ty gl.Enum, offsets []int) {
	c.state.mesh.bindMesh(c, m)
	c.funcs.MultiDrawElements(mode, counts, ty, offsets)
}

func meshMultiDrawElementsImplementationFallback(c *Context, m *Mesh, mode gl.Enum, counts []int32, ty gl.Enum, offsets []int) {
	c.state.mesh.bindMesh(c, m)
	for i := range counts {
		c.funcs.DrawElements(mode, int(counts[i]), ty, offsets[i])
	}
}
