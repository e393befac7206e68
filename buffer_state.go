// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

// bufferTargets lists the bindings the cache tracks, in cache-cell order.
var bufferTargets = []gl.Enum{
	gl.ARRAY_BUFFER,
	gl.COPY_READ_BUFFER,
	gl.COPY_WRITE_BUFFER,
	gl.ELEMENT_ARRAY_BUFFER,
	gl.PIXEL_PACK_BUFFER,
	gl.PIXEL_UNPACK_BUFFER,
	gl.TRANSFORM_FEEDBACK_BUFFER,
	gl.UNIFORM_BUFFER,
}

func bufferTargetIndex(target gl.Enum) int {
	for i, t := range bufferTargets {
		if t == target {
			return i
		}
	}
	panic("glctx: unknown buffer target")
}

type bufferState struct {
	bindings [8]uint32

	create           func(c *Context) gl.Buffer
	data             func(c *Context, b *Buffer, data []byte, usage gl.Enum)
	subData          func(c *Context, b *Buffer, offset int, data []byte)
	copy             func(c *Context, src, dst *Buffer, readOffset, writeOffset, size int)
	mapRange         func(c *Context, b *Buffer, offset, length int, access gl.Enum) []byte
	flushMappedRange func(c *Context, b *Buffer, offset, length int)
	unmap            func(c *Context, b *Buffer) bool
}

func (s *bufferState) init(c *Context, extensions []string) {
	dsa := !c.profile.ES() && c.IsExtensionSupported(ARBDirectStateAccess)
	if dsa && c.detectedDriver&DriverIntelWindows != 0 &&
		!c.isDriverWorkaroundDisabled("intel-windows-crazy-broken-buffer-dsa") {
		// Not just a slot or two, the whole DSA buffer API misbehaves.
		dsa = false
	}

	if dsa {
		record(extensions, ARBDirectStateAccess)
		s.create = bufferCreateImplementationDSA
		s.data = bufferDataImplementationDSA
		s.subData = bufferSubDataImplementationDSA
		if c.detectedDriver&DriverSvga3D != 0 &&
			!c.isDriverWorkaroundDisabled("svga3d-broken-dsa-bufferdata") {
			s.data = bufferDataImplementationDefault
		}
	} else {
		s.create = bufferCreateImplementationDefault
		s.data = bufferDataImplementationDefault
		s.subData = bufferSubDataImplementationDefault
	}

	// Buffer copies need the copy targets from 3.1 / ES 3.0.
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBCopyBuffer):
		if dsa {
			s.copy = bufferCopyImplementationDSA
		} else {
			record(extensions, ARBCopyBuffer)
			s.copy = bufferCopyImplementationDefault
		}
	case c.profile.ES() && c.IsVersionSupported(GLES300):
		s.copy = bufferCopyImplementationDefault
	}

	// Range mapping.
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBMapBufferRange):
		if dsa {
			s.mapRange = bufferMapRangeImplementationDSA
			s.flushMappedRange = bufferFlushMappedRangeImplementationDSA
			s.unmap = bufferUnmapImplementationDSA
		} else {
			record(extensions, ARBMapBufferRange)
			s.mapRange = bufferMapRangeImplementationDefault
			s.flushMappedRange = bufferFlushMappedRangeImplementationDefault
			s.unmap = bufferUnmapImplementationDefault
		}
	case c.profile.ES() && c.IsVersionSupported(GLES300):
		s.mapRange = bufferMapRangeImplementationDefault
		s.flushMappedRange = bufferFlushMappedRangeImplementationDefault
		s.unmap = bufferUnmapImplementationDefault
	case c.profile.ES() && c.IsExtensionSupported(EXTMapBufferRange):
		record(extensions, EXTMapBufferRange)
		s.mapRange = bufferMapRangeImplementationDefault
		s.flushMappedRange = bufferFlushMappedRangeImplementationDefault
		s.unmap = bufferUnmapImplementationDefault
	}

	s.reset()
}

func (s *bufferState) reset() {
	for i := range s.bindings {
		s.bindings[i] = disengagedBinding
	}
}

// bind binds b to target, eliding the call when the cache already
// agrees.
func (s *bufferState) bind(c *Context, target gl.Enum, id uint32) {
	cell := &s.bindings[bufferTargetIndex(target)]
	if *cell == id {
		return
	}
	*cell = id
	c.funcs.BindBuffer(target, gl.Buffer{V: id})
}

// bindInternal binds b to its target hint for bind-to-edit
// implementations and returns the target used.
func (s *bufferState) bindInternal(c *Context, b *Buffer) gl.Enum {
	if b.target == gl.ELEMENT_ARRAY_BUFFER {
		// The element array binding lives in the VAO; on a core
		// profile there has to be one bound.
		c.state.mesh.ensureSomeVAO(c)
	}
	s.bind(c, b.target, b.buffer.V)
	return b.target
}

func bufferCreateImplementationDefault(c *Context) gl.Buffer {
	return c.funcs.GenBuffer()
}

func bufferCreateImplementationDSA(c *Context) gl.Buffer {
	return c.funcs.CreateBuffer()
}

func bufferDataImplementationDefault(c *Context, b *Buffer, data []byte, usage gl.Enum) {
	c.funcs.BufferData(c.state.buffer.bindInternal(c, b), data, usage)
}

func bufferDataImplementationDSA(c *Context, b *Buffer, data []byte, usage gl.Enum) {
	c.funcs.NamedBufferData(b.buffer, data, usage)
}

func bufferSubDataImplementationDefault(c *Context, b *Buffer, offset int, data []byte) {
	c.funcs.BufferSubData(c.state.buffer.bindInternal(c, b), offset, data)
}

func bufferSubDataImplementationDSA(c *Context, b *Buffer, offset int, data []byte) {
	c.funcs.NamedBufferSubData(b.buffer, offset, data)
}

func bufferCopyImplementationDefault(c *Context, src, dst *Buffer, readOffset, writeOffset, size int) {
	c.state.buffer.bind(c, gl.COPY_READ_BUFFER, src.buffer.V)
	c.state.buffer.bind(c, gl.COPY_WRITE_BUFFER, dst.buffer.V)
	c.funcs.CopyBufferSubData(gl.COPY_READ_BUFFER, gl.COPY_WRITE_BUFFER, readOffset, writeOffset, size)
}

func bufferCopyImplementationDSA(c *Context, src, dst *Buffer, readOffset, writeOffset, size int) {
	c.funcs.CopyNamedBufferSubData(src.buffer, dst.buffer, readOffset, writeOffset, size)
}

func bufferMapRangeImplementationDefault(c *Context, b *Buffer, offset, length int, access gl.Enum) []byte {
	return c.funcs.MapBufferRange(c.state.buffer.bindInternal(c, b), offset, length, access)
}

func bufferMapRangeImplementationDSA(c *Context, b *Buffer, offset, length int, access gl.Enum) []byte {
	return c.funcs.MapNamedBufferRange(b.buffer, offset, length, access)
}

func bufferFlushMappedRangeImplementationDefault(c *Context, b *Buffer, offset, length int) {
	c.funcs.FlushMappedBufferRange(c.state.buffer.bindInternal(c, b), offset, length)
}

func bufferFlushMappedRangeImplementationDSA(c *Context, b *Buffer, offset, length int) {
	c.funcs.FlushMappedNamedBufferRange(b.buffer, offset, length)
}

func bufferUnmapImplementationDefault(c *Context, b *Buffer) bool {
	return c.funcs.UnmapBuffer(c.state.buffer.bindInternal(c, b))
}

func bufferUnmapImplementationDSA(c *Context, b *Buffer) bool {
	return c.funcs.UnmapNamedBuffer(b.buffer)
}
