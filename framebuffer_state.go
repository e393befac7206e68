// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

type framebufferState struct {
	readBinding         uint32
	drawBinding         uint32
	renderbufferBinding uint32

	// On ES2 without a blit extension there are no separate read and
	// draw targets, both cells track GL_FRAMEBUFFER.
	readTarget gl.Enum
	drawTarget gl.Enum

	create             func(c *Context) gl.Framebuffer
	createRenderbuffer func(c *Context) gl.Renderbuffer
	checkStatus        func(c *Context, f *Framebuffer, target gl.Enum) gl.Enum

	drawBuffers func(c *Context, f *Framebuffer, bufs []gl.Enum)
	drawBuffer  func(c *Context, f *Framebuffer, buf gl.Enum)
	readBuffer  func(c *Context, f *Framebuffer, src gl.Enum)

	clearF func(c *Context, f *Framebuffer, buffer gl.Enum, drawBuffer int, values []float32)
	clearI func(c *Context, f *Framebuffer, buffer gl.Enum, drawBuffer int, values []int32)
	clearU func(c *Context, f *Framebuffer, buffer gl.Enum, drawBuffer int, values []uint32)

	invalidate func(c *Context, f *Framebuffer, attachments []gl.Enum)
	blit       func(c *Context, read, draw *Framebuffer, sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter gl.Enum)
	readPixels func(c *Context, f *Framebuffer, x, y, width, height int, format, ty gl.Enum, data []byte)

	attachTexture      func(c *Context, f *Framebuffer, attachment gl.Enum, t *Texture, level int)
	attachTextureLayer func(c *Context, f *Framebuffer, attachment gl.Enum, t *Texture, level, layer int)
	attachCubeFace     func(c *Context, f *Framebuffer, attachment gl.Enum, t *CubeMapTexture, face, level int)
	attachRenderbuffer func(c *Context, f *Framebuffer, attachment gl.Enum, r *Renderbuffer)

	renderbufferStorage            func(c *Context, r *Renderbuffer, internalFormat gl.Enum, width, height int)
	renderbufferStorageMultisample func(c *Context, r *Renderbuffer, samples int, internalFormat gl.Enum, width, height int)

	copySubTexture func(c *Context, f *Framebuffer, t *Texture, level, xoffset, yoffset, x, y, width, height int)
	copySubCubeMap func(c *Context, f *Framebuffer, t *CubeMapTexture, face, level, xoffset, yoffset, x, y, width, height int)
}

func (s *framebufferState) init(c *Context, extensions []string) {
	dsa := !c.profile.ES() && c.IsExtensionSupported(ARBDirectStateAccess)

	// Read/draw target split.
	s.readTarget, s.drawTarget = gl.READ_FRAMEBUFFER, gl.DRAW_FRAMEBUFFER
	blit := false
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBFramebufferObject):
		record(extensions, ARBFramebufferObject)
		blit = true
	case c.profile.ES() && c.IsVersionSupported(GLES300):
		blit = true
	case c.profile.ES() && c.IsExtensionSupported(ANGLEFramebufferBlit):
		record(extensions, ANGLEFramebufferBlit)
		blit = true
	case c.profile.ES() && c.IsExtensionSupported(NVFramebufferBlit):
		record(extensions, NVFramebufferBlit)
		blit = true
	default:
		s.readTarget, s.drawTarget = gl.FRAMEBUFFER, gl.FRAMEBUFFER
	}

	if dsa {
		record(extensions, ARBDirectStateAccess)
		s.create = framebufferCreateImplementationDSA
		s.createRenderbuffer = renderbufferCreateImplementationDSA
		s.checkStatus = framebufferCheckStatusImplementationDSA
		s.invalidate = framebufferInvalidateImplementationDSA
		s.attachTexture = framebufferAttachTextureImplementationDSA
		s.attachTextureLayer = framebufferAttachTextureLayerImplementationDSA
		s.attachCubeFace = framebufferAttachCubeFaceImplementationDSA
		s.attachRenderbuffer = framebufferAttachRenderbufferImplementationDSA
		s.renderbufferStorage = renderbufferStorageImplementationDSA
		s.renderbufferStorageMultisample = renderbufferStorageMultisampleImplementationDSA
		s.drawBuffers = framebufferDrawBuffersImplementationDSA
		s.drawBuffer = framebufferDrawBufferImplementationDSA
		s.readBuffer = framebufferReadBufferImplementationDSA
		s.clearF = framebufferClearFImplementationDSA
		s.clearI = framebufferClearIImplementationDSA
		s.clearU = framebufferClearUImplementationDSA
		s.blit = framebufferBlitImplementationDSA
		s.copySubTexture = framebufferCopySubTextureImplementationDSA
		s.copySubCubeMap = framebufferCopySubCubeMapImplementationDSA

		if c.detectedDriver&DriverIntelWindows != 0 {
			if !c.isDriverWorkaroundDisabled("intel-windows-broken-dsa-framebuffer-clear") {
				s.clearF = framebufferClearFImplementationDefault
				s.clearI = framebufferClearIImplementationDefault
				s.clearU = framebufferClearUImplementationDefault
			}
			if !c.isDriverWorkaroundDisabled("intel-windows-broken-dsa-layered-cubemap-array-framebuffer-attachment") {
				s.attachTextureLayer = framebufferAttachTextureLayerImplementationDefault
			}
			if !c.isDriverWorkaroundDisabled("intel-windows-broken-dsa-for-cubemaps") {
				s.attachCubeFace = framebufferAttachCubeFaceImplementationDefault
				s.copySubCubeMap = framebufferCopySubCubeMapImplementationDefault
			}
		}
		if c.detectedDriver&DriverAmd != 0 && c.osName == "windows" &&
			!c.isDriverWorkaroundDisabled("amd-windows-broken-dsa-cubemap-copy") {
			s.copySubCubeMap = framebufferCopySubCubeMapImplementationDefault
		}
	} else {
		s.create = framebufferCreateImplementationDefault
		s.createRenderbuffer = renderbufferCreateImplementationDefault
		s.checkStatus = framebufferCheckStatusImplementationDefault
		s.attachTexture = framebufferAttachTextureImplementationDefault
		s.attachCubeFace = framebufferAttachCubeFaceImplementationDefault
		s.attachRenderbuffer = framebufferAttachRenderbufferImplementationDefault
		s.renderbufferStorage = renderbufferStorageImplementationDefault
		s.copySubTexture = framebufferCopySubTextureImplementationDefault
		s.copySubCubeMap = framebufferCopySubCubeMapImplementationDefault

		if !c.profile.ES() || c.IsVersionSupported(GLES300) {
			s.attachTextureLayer = framebufferAttachTextureLayerImplementationDefault
		}

		// Per-attachment clears arrived in 3.0 / ES 3.0.
		if !c.profile.ES() || c.IsVersionSupported(GLES300) {
			s.clearF = framebufferClearFImplementationDefault
			s.clearI = framebufferClearIImplementationDefault
			s.clearU = framebufferClearUImplementationDefault
		}

		// Invalidation is advisory, so a missing extension degrades to
		// a no-op rather than a missing feature.
		switch {
		case !c.profile.ES() && c.IsExtensionSupported(ARBInvalidateSubdata):
			record(extensions, ARBInvalidateSubdata)
			s.invalidate = framebufferInvalidateImplementationDefault
		case c.profile.ES() && c.IsVersionSupported(GLES300):
			s.invalidate = framebufferInvalidateImplementationDefault
		case c.profile.ES() && c.IsExtensionSupported(EXTDiscardFramebuffer):
			record(extensions, EXTDiscardFramebuffer)
			s.invalidate = framebufferInvalidateImplementationDefault
		default:
			s.invalidate = framebufferInvalidateImplementationNoOp
		}

		if blit {
			s.blit = framebufferBlitImplementationDefault
		}

		if !c.profile.ES() || c.IsVersionSupported(GLES300) {
			s.drawBuffers = framebufferDrawBuffersImplementationDefault
			s.readBuffer = framebufferReadBufferImplementationDefault
		}
		if !c.profile.ES() {
			s.drawBuffer = framebufferDrawBufferImplementationDefault
		}

		switch {
		case !c.profile.ES() && c.IsExtensionSupported(ARBFramebufferObject):
			s.renderbufferStorageMultisample = renderbufferStorageMultisampleImplementationDefault
		case c.profile.ES() && c.IsVersionSupported(GLES300):
			s.renderbufferStorageMultisample = renderbufferStorageMultisampleImplementationDefault
		case c.profile.ES() && c.IsExtensionSupported(ANGLEFramebufferMultisample):
			record(extensions, ANGLEFramebufferMultisample)
			s.renderbufferStorageMultisample = renderbufferStorageMultisampleImplementationDefault
		case c.profile.ES() && c.IsExtensionSupported(NVFramebufferMultisample):
			record(extensions, NVFramebufferMultisample)
			s.renderbufferStorageMultisample = renderbufferStorageMultisampleImplementationDefault
		}
	}

	// Robust pixel reads bound-check the destination buffer.
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBRobustness):
		record(extensions, ARBRobustness)
		s.readPixels = framebufferReadPixelsImplementationRobustness
	case c.profile.ES() && c.IsExtensionSupported(EXTRobustness):
		record(extensions, EXTRobustness)
		s.readPixels = framebufferReadPixelsImplementationRobustness
	default:
		s.readPixels = framebufferReadPixelsImplementationDefault
	}

	s.reset()
}

func (s *framebufferState) reset() {
	s.readBinding = disengagedBinding
	s.drawBinding = disengagedBinding
	s.renderbufferBinding = disengagedBinding
}

// bindRead binds f for reading through the cache.
func (s *framebufferState) bindRead(c *Context, id uint32) {
	if s.readBinding == id {
		return
	}
	s.readBinding = id
	if s.readTarget == gl.FRAMEBUFFER {
		s.drawBinding = id
	}
	c.funcs.BindFramebuffer(s.readTarget, gl.Framebuffer{V: id})
}

// bindDraw binds f for drawing through the cache.
func (s *framebufferState) bindDraw(c *Context, id uint32) {
	if s.drawBinding == id {
		return
	}
	s.drawBinding = id
	if s.drawTarget == gl.FRAMEBUFFER {
		s.readBinding = id
	}
	c.funcs.BindFramebuffer(s.drawTarget, gl.Framebuffer{V: id})
}

func (s *framebufferState) bindRenderbuffer(c *Context, id uint32) {
	if s.renderbufferBinding == id {
		return
	}
	s.renderbufferBinding = id
	c.funcs.BindRenderbuffer(gl.RENDERBUFFER, gl.Renderbuffer{V: id})
}

func framebufferCreateImplementationDefault(c *Context) gl.Framebuffer {
	return c.funcs.GenFramebuffer()
}

func framebufferCreateImplementationDSA(c *Context) gl.Framebuffer {
	return c.funcs.CreateFramebuffer()
}

func renderbufferCreateImplementationDefault(c *Context) gl.Renderbuffer {
	return c.funcs.GenRenderbuffer()
}

func renderbufferCreateImplementationDSA(c *Context) gl.Renderbuffer {
	return c.funcs.CreateRenderbuffer()
}

func framebufferCheckStatusImplementationDefault(c *Context, f *Framebuffer, target gl.Enum) gl.Enum {
	if target == gl.READ_FRAMEBUFFER {
		c.state.framebuffer.bindRead(c, f.framebuffer.V)
	} else {
		c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	}
	return c.funcs.CheckFramebufferStatus(target)
}

func framebufferCheckStatusImplementationDSA(c *Context, f *Framebuffer, target gl.Enum) gl.Enum {
	return c.funcs.CheckNamedFramebufferStatus(f.framebuffer, target)
}

func framebufferDrawBuffersImplementationDefault(c *Context, f *Framebuffer, bufs []gl.Enum) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	c.funcs.DrawBuffers(bufs)
}

func framebufferDrawBuffersImplementationDSA(c *Context, f *Framebuffer, bufs []gl.Enum) {
	c.funcs.NamedFramebufferDrawBuffers(f.framebuffer, bufs)
}

func framebufferDrawBufferImplementationDefault(c *Context, f *Framebuffer, buf gl.Enum) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	c.funcs.DrawBuffer(buf)
}

func framebufferDrawBufferImplementationDSA(c *Context, f *Framebuffer, buf gl.Enum) {
	c.funcs.NamedFramebufferDrawBuffer(f.framebuffer, buf)
}

func framebufferReadBufferImplementationDefault(c *Context, f *Framebuffer, src gl.Enum) {
	c.state.framebuffer.bindRead(c, f.framebuffer.V)
	c.funcs.ReadBuffer(src)
}

func framebufferReadBufferImplementationDSA(c *Context, f *Framebuffer, src gl.Enum) {
	c.funcs.NamedFramebufferReadBuffer(f.framebuffer, src)
}

func framebufferClearFImplementationDefault(c *Context, f *Framebuffer, buffer gl.Enum, drawBuffer int, values []float32) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	c.funcs.ClearBufferfv(buffer, drawBuffer, values)
}

func framebufferClearFImplementationDSA(c *Context, f *Framebuffer, buffer gl.Enum, drawBuffer int, values []float32) {
	c.funcs.ClearNamedFramebufferfv(f.framebuffer, buffer, drawBuffer, values)
}

func framebufferClearIImplementationDefault(c *Context, f *Framebuffer, buffer gl.Enum, drawBuffer int, values []int32) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	c.funcs.ClearBufferiv(buffer, drawBuffer, values)
}

func framebufferClearIImplementationDSA(c *Context, f *Framebuffer, buffer gl.Enum, drawBuffer int, values []int32) {
	c.funcs.ClearNamedFramebufferiv(f.framebuffer, buffer, drawBuffer, values)
}

func framebufferClearUImplementationDefault(c *Context, f *Framebuffer, buffer gl.Enum, drawBuffer int, values []uint32) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	c.funcs.ClearBufferuiv(buffer, drawBuffer, values)
}

func framebufferClearUImplementationDSA(c *Context, f *Framebuffer, buffer gl.Enum, drawBuffer int, values []uint32) {
	c.funcs.ClearNamedFramebufferuiv(f.framebuffer, buffer, drawBuffer, values)
}

func framebufferInvalidateImplementationNoOp(*Context, *Framebuffer, []gl.Enum) {}

func framebufferInvalidateImplementationDefault(c *Context, f *Framebuffer, attachments []gl.Enum) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	c.funcs.InvalidateFramebuffer(c.state.framebuffer.drawTarget, attachments)
}

func framebufferInvalidateImplementationDSA(c *Context, f *Framebuffer, attachments []gl.Enum) {
	c.funcs.InvalidateNamedFramebufferData(f.framebuffer, attachments)
}

func framebufferBlitImplementationDefault(c *Context, read, draw *Framebuffer, sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter gl.Enum) {
	c.state.framebuffer.bindRead(c, read.framebuffer.V)
	c.state.framebuffer.bindDraw(c, draw.framebuffer.V)
	c.funcs.BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, filter)
}

func framebufferBlitImplementationDSA(c *Context, read, draw *Framebuffer, sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter gl.Enum) {
	c.funcs.BlitNamedFramebuffer(read.framebuffer, draw.framebuffer, sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, filter)
}

func framebufferReadPixelsImplementationDefault(c *Context, f *Framebuffer, x, y, width, height int, format, ty gl.Enum, data []byte) {
	c.state.framebuffer.bindRead(c, f.framebuffer.V)
	c.funcs.ReadPixels(x, y, width, height, format, ty, data)
}

func framebufferReadPixelsImplementationRobustness(c *Context, f *Framebuffer, x, y, width, height int, format, ty gl.Enum, data []byte) {
	c.state.framebuffer.bindRead(c, f.framebuffer.V)
	c.funcs.ReadnPixels(x, y, width, height, format, ty, data)
}

func framebufferAttachTextureImplementationDefault(c *Context, f *Framebuffer, attachment gl.Enum, t *Texture, level int) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	c.funcs.FramebufferTexture2D(c.state.framebuffer.drawTarget, attachment, t.target, t.texture, level)
}

func framebufferAttachTextureImplementationDSA(c *Context, f *Framebuffer, attachment gl.Enum, t *Texture, level int) {
	c.funcs.NamedFramebufferTexture(f.framebuffer, attachment, t.texture, level)
}

func framebufferAttachTextureLayerImplementationDefault(c *Context, f *Framebuffer, attachment gl.Enum, t *Texture, level, layer int) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	c.funcs.FramebufferTextureLayer(c.state.framebuffer.drawTarget, attachment, t.texture, level, layer)
}

func framebufferAttachTextureLayerImplementationDSA(c *Context, f *Framebuffer, attachment gl.Enum, t *Texture, level, layer int) {
	c.funcs.NamedFramebufferTextureLayer(f.framebuffer, attachment, t.texture, level, layer)
}

func framebufferAttachCubeFaceImplementationDefault(c *Context, f *Framebuffer, attachment gl.Enum, t *CubeMapTexture, face, level int) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	c.funcs.FramebufferTexture2D(c.state.framebuffer.drawTarget, attachment, cubeFaceTarget(face), t.texture, level)
}

func framebufferAttachCubeFaceImplementationDSA(c *Context, f *Framebuffer, attachment gl.Enum, t *CubeMapTexture, face, level int) {
	c.funcs.NamedFramebufferTextureLayer(f.framebuffer, attachment, t.texture, level, face)
}

func framebufferAttachRenderbufferImplementationDefault(c *Context, f *Framebuffer, attachment gl.Enum, r *Renderbuffer) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
	c.funcs.FramebufferRenderbuffer(c.state.framebuffer.drawTarget, attachment, gl.RENDERBUFFER, r.renderbuffer)
}

func framebufferAttachRenderbufferImplementationDSA(c *Context, f *Framebuffer, attachment gl.Enum, r *Renderbuffer) {
	c.funcs.NamedFramebufferRenderbuffer(f.framebuffer, attachment, gl.RENDERBUFFER, r.renderbuffer)
}

func renderbufferStorageImplementationDefault(c *Context, r *Renderbuffer, internalFormat gl.Enum, width, height int) {
	c.state.framebuffer.bindRenderbuffer(c, r.renderbuffer.V)
	c.funcs.RenderbufferStorage(gl.RENDERBUFFER, internalFormat, width, height)
}

func renderbufferStorageImplementationDSA(c *Context, r *Renderbuffer, internalFormat gl.Enum, width, height int) {
	c.funcs.NamedRenderbufferStorage(r.renderbuffer, internalFormat, width, height)
}

func renderbufferStorageMultisampleImplementationDefault(c *Context, r *Renderbuffer, samples int, internalFormat gl.Enum, width, height int) {
	c.state.framebuffer.bindRenderbuffer(c, r.renderbuffer.V)
	c.funcs.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, internalFormat, width, height)
}

func renderbufferStorageMultisampleImplementationDSA(c *Context, r *Renderbuffer, samples int, internalFormat gl.Enum, width, height int) {
	c.funcs.NamedRenderbufferStorageMultisample(r.renderbuffer, samples, internalFormat, width, height)
}

func framebufferCopySubTextureImplementationDefault(c *Context, f *Framebuffer, t *Texture, level, xoffset, yoffset, x, y, width, height int) {
	c.state.framebuffer.bindRead(c, f.framebuffer.V)
	c.state.texture.bindInternal(c, t)
	c.funcs.CopyTexSubImage2D(t.target, level, xoffset, yoffset, x, y, width, height)
}

func framebufferCopySubTextureImplementationDSA(c *Context, f *Framebuffer, t *Texture, level, xoffset, yoffset, x, y, width, height int) {
	c.state.framebuffer.bindRead(c, f.framebuffer.V)
	c.funcs.CopyTextureSubImage2D(t.texture, level, xoffset, yoffset, x, y, width, height)
}

func framebufferCopySubCubeMapImplementationDefault(c *Context, f *Framebuffer, t *CubeMapTexture, face, level, xoffset, yoffset, x, y, width, height int) {
	c.state.framebuffer.bindRead(c, f.framebuffer.V)
	c.state.texture.bindInternal(c, &t.Texture)
	c.funcs.CopyTexSubImage2D(cubeFaceTarget(face), level, xoffset, yoffset, x, y, width, height)
}

func framebufferCopySubCubeMapImplementationDSA(c *Context, f *Framebuffer, t *CubeMapTexture, face, level, xoffset, yoffset, x, y, width, height int) {
	c.state.framebuffer.bindRead(c, f.framebuffer.V)
	c.funcs.CopyTextureSubImage3D(t.texture, level, xoffset, yoffset, face, x, y, width, height)
}
