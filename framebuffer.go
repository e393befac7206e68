// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

// Framebuffer wraps a GL framebuffer object. The zero value refers to
// the default framebuffer.
type Framebuffer struct {
	framebuffer gl.Framebuffer
}

// DefaultFramebuffer refers to the window-system framebuffer.
var DefaultFramebuffer = &Framebuffer{}

// NewFramebuffer allocates a framebuffer object.
func NewFramebuffer(c *Context) *Framebuffer {
	return &Framebuffer{framebuffer: c.state.framebuffer.create(c)}
}

// ID returns the underlying object name.
func (f *Framebuffer) ID() uint32 { return f.framebuffer.V }

// BindRead binds the framebuffer for reading through the cache.
func (f *Framebuffer) BindRead(c *Context) {
	c.state.framebuffer.bindRead(c, f.framebuffer.V)
}

// BindDraw binds the framebuffer for drawing through the cache.
func (f *Framebuffer) BindDraw(c *Context) {
	c.state.framebuffer.bindDraw(c, f.framebuffer.V)
}

// CheckStatus returns the completeness status for the given target.
func (f *Framebuffer) CheckStatus(c *Context, target gl.Enum) gl.Enum {
	return c.state.framebuffer.checkStatus(c, f, target)
}

// DrawBuffers maps fragment outputs to color attachments. Requires
// OpenGL or OpenGL ES 3.0.
func (f *Framebuffer) DrawBuffers(c *Context, bufs ...gl.Enum) {
	if c.state.framebuffer.drawBuffers == nil {
		panic("glctx: multiple draw buffers require OpenGL or OpenGL ES 3.0")
	}
	c.state.framebuffer.drawBuffers(c, f, bufs)
}

// DrawBuffer selects a single draw buffer. Desktop GL only.
func (f *Framebuffer) DrawBuffer(c *Context, buf gl.Enum) {
	if c.state.framebuffer.drawBuffer == nil {
		panic("glctx: single draw buffer selection is not available on OpenGL ES")
	}
	c.state.framebuffer.drawBuffer(c, f, buf)
}

// ReadBuffer selects the read source. Requires OpenGL or OpenGL ES 3.0.
func (f *Framebuffer) ReadBuffer(c *Context, src gl.Enum) {
	if c.state.framebuffer.readBuffer == nil {
		panic("glctx: read buffer selection requires OpenGL or OpenGL ES 3.0")
	}
	c.state.framebuffer.readBuffer(c, f, src)
}

// ClearColorF clears a float color attachment.
func (f *Framebuffer) ClearColorF(c *Context, drawBuffer int, values [4]float32) {
	if c.state.framebuffer.clearF == nil {
		panic("glctx: per-attachment clears require OpenGL or OpenGL ES 3.0")
	}
	c.state.framebuffer.clearF(c, f, gl.COLOR, drawBuffer, values[:])
}

// ClearColorI clears a signed integer color attachment.
func (f *Framebuffer) ClearColorI(c *Context, drawBuffer int, values [4]int32) {
	if c.state.framebuffer.clearI == nil {
		panic("glctx: per-attachment clears require OpenGL or OpenGL ES 3.0")
	}
	c.state.framebuffer.clearI(c, f, gl.COLOR, drawBuffer, values[:])
}

// ClearColorU clears an unsigned integer color attachment.
func (f *Framebuffer) ClearColorU(c *Context, drawBuffer int, values [4]uint32) {
	if c.state.framebuffer.clearU == nil {
		panic("glctx: per-attachment clears require OpenGL or OpenGL ES 3.0")
	}
	c.state.framebuffer.clearU(c, f, gl.COLOR, drawBuffer, values[:])
}

// ClearDepth clears the depth attachment.
func (f *Framebuffer) ClearDepth(c *Context, depth float32) {
	if c.state.framebuffer.clearF == nil {
		panic("glctx: per-attachment clears require OpenGL or OpenGL ES 3.0")
	}
	c.state.framebuffer.clearF(c, f, gl.DEPTH, 0, []float32{depth})
}

// Invalidate tells the driver the listed attachments are garbage.
// Advisory; a no-op without invalidation support.
func (f *Framebuffer) Invalidate(c *Context, attachments ...gl.Enum) {
	c.state.framebuffer.invalidate(c, f, attachments)
}

// BlitTo copies a region into dst. Requires OpenGL 3.0, OpenGL ES 3.0
// or a framebuffer blit extension.
func (f *Framebuffer) BlitTo(c *Context, dst *Framebuffer, sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask, filter gl.Enum) {
	if c.state.framebuffer.blit == nil {
		panic("glctx: framebuffer blit requires OpenGL 3.0, OpenGL ES 3.0 or a blit extension")
	}
	c.state.framebuffer.blit(c, f, dst, sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, filter)
}

// ReadPixels reads a region of the framebuffer into tightly packed
// data.
func (f *Framebuffer) ReadPixels(c *Context, x, y, width, height int, format, ty gl.Enum, data []byte) {
	c.state.renderer.setPackRowLength(c, 0)
	c.state.framebuffer.readPixels(c, f, x, y, width, height, format, ty, data)
}

// AttachTexture attaches a mip level of a non-layered texture.
func (f *Framebuffer) AttachTexture(c *Context, attachment gl.Enum, t *Texture, level int) {
	c.state.framebuffer.attachTexture(c, f, attachment, t, level)
}

// AttachTextureLayer attaches one layer of an array or 3D texture.
// Requires OpenGL or OpenGL ES 3.0.
func (f *Framebuffer) AttachTextureLayer(c *Context, attachment gl.Enum, t *Texture, level, layer int) {
	if c.state.framebuffer.attachTextureLayer == nil {
		panic("glctx: layered attachments require OpenGL or OpenGL ES 3.0")
	}
	c.state.framebuffer.attachTextureLayer(c, f, attachment, t, level, layer)
}

// AttachCubeMapFace attaches one face of a cube map.
func (f *Framebuffer) AttachCubeMapFace(c *Context, attachment gl.Enum, t *CubeMapTexture, face, level int) {
	c.state.framebuffer.attachCubeFace(c, f, attachment, t, face, level)
}

// AttachRenderbuffer attaches a renderbuffer.
func (f *Framebuffer) AttachRenderbuffer(c *Context, attachment gl.Enum, r *Renderbuffer) {
	c.state.framebuffer.attachRenderbuffer(c, f, attachment, r)
}

// CopyToTexture copies a framebuffer region into a texture mip level.
func (f *Framebuffer) CopyToTexture(c *Context, t *Texture, level, xoffset, yoffset, x, y, width, height int) {
	c.state.framebuffer.copySubTexture(c, f, t, level, xoffset, yoffset, x, y, width, height)
}

// CopyToCubeMapFace copies a framebuffer region into one cube map face.
func (f *Framebuffer) CopyToCubeMapFace(c *Context, t *CubeMapTexture, face, level, xoffset, yoffset, x, y, width, height int) {
	c.state.framebuffer.copySubCubeMap(c, f, t, face, level, xoffset, yoffset, x, y, width, height)
}

// Release deletes the framebuffer and scrubs it from the binding cache.
func (f *Framebuffer) Release(c *Context) {
	if c.state.framebuffer.readBinding == f.framebuffer.V {
		c.state.framebuffer.readBinding = disengagedBinding
	}
	if c.state.framebuffer.drawBinding == f.framebuffer.V {
		c.state.framebuffer.drawBinding = disengagedBinding
	}
	c.funcs.DeleteFramebuffer(f.framebuffer)
	f.framebuffer = gl.Framebuffer{}
}

// Renderbuffer wraps a GL renderbuffer object.
type Renderbuffer struct {
	renderbuffer gl.Renderbuffer
}

// NewRenderbuffer allocates a renderbuffer object.
func NewRenderbuffer(c *Context) *Renderbuffer {
	return &Renderbuffer{renderbuffer: c.state.framebuffer.createRenderbuffer(c)}
}

// ID returns the underlying object name.
func (r *Renderbuffer) ID() uint32 { return r.renderbuffer.V }

// Storage allocates single-sample storage.
func (r *Renderbuffer) Storage(c *Context, internalFormat gl.Enum, width, height int) {
	c.state.framebuffer.renderbufferStorage(c, r, internalFormat, width, height)
}

// StorageMultisample allocates multisample storage. Requires OpenGL
// 3.0, OpenGL ES 3.0 or a multisample extension.
func (r *Renderbuffer) StorageMultisample(c *Context, samples int, internalFormat gl.Enum, width, height int) {
	if c.state.framebuffer.renderbufferStorageMultisample == nil {
		panic("glctx: multisample renderbuffers require OpenGL 3.0, OpenGL ES 3.0 or a multisample extension")
	}
	c.state.framebuffer.renderbufferStorageMultisample(c, r, samples, internalFormat, width, height)
}

// Release deletes the renderbuffer and scrubs it from the binding cache.
func (r *Renderbuffer) Release(c *Context) {
	if c.state.framebuffer.renderbufferBinding == r.renderbuffer.V {
		c.state.framebuffer.renderbufferBinding = disengagedBinding
	}
	c.funcs.DeleteRenderbuffer(r.renderbuffer)
	r.renderbuffer = gl.Renderbuffer{}
}
