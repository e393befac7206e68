// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

// Texture wraps a GL texture object of any non-cube target.
type Texture struct {
	texture gl.Texture
	target  gl.Enum
}

// NewTexture2D allocates a GL_TEXTURE_2D texture.
func NewTexture2D(c *Context) *Texture {
	return newTexture(c, gl.TEXTURE_2D)
}

// NewTexture3D allocates a GL_TEXTURE_3D texture.
func NewTexture3D(c *Context) *Texture {
	return newTexture(c, gl.TEXTURE_3D)
}

// NewTexture2DArray allocates a GL_TEXTURE_2D_ARRAY texture.
func NewTexture2DArray(c *Context) *Texture {
	return newTexture(c, gl.TEXTURE_2D_ARRAY)
}

func newTexture(c *Context, target gl.Enum) *Texture {
	return &Texture{
		texture: c.state.texture.create(c, target),
		target:  target,
	}
}

// ID returns the underlying object name.
func (t *Texture) ID() uint32 { return t.texture.V }

// Target returns the texture target.
func (t *Texture) Target() gl.Enum { return t.target }

// Bind binds the texture to the given unit through the binding cache.
func (t *Texture) Bind(c *Context, unit int) {
	c.state.texture.bind(c, unit, t)
}

// Unbind clears the given unit's binding for the texture's target.
func (t *Texture) Unbind(c *Context, unit int) {
	c.state.texture.unbind(c, unit, t.target)
}

// BindTextures binds textures to consecutive units starting at first,
// in a single glBindTextures call where GL_ARB_multi_bind is available
// and unit by unit otherwise. Nil entries unbind their unit.
func (c *Context) BindTextures(first int, textures []*Texture) {
	c.state.texture.bindMulti(c, first, textures)
}

// SetMinificationFilter sets GL_TEXTURE_MIN_FILTER.
func (t *Texture) SetMinificationFilter(c *Context, filter gl.Enum) {
	c.state.texture.parameteri(c, t, gl.TEXTURE_MIN_FILTER, int(filter))
}

// SetMagnificationFilter sets GL_TEXTURE_MAG_FILTER.
func (t *Texture) SetMagnificationFilter(c *Context, filter gl.Enum) {
	c.state.texture.parameteri(c, t, gl.TEXTURE_MAG_FILTER, int(filter))
}

// SetWrapping sets the S and T wrap modes.
func (t *Texture) SetWrapping(c *Context, mode gl.Enum) {
	c.state.texture.parameteri(c, t, gl.TEXTURE_WRAP_S, int(mode))
	c.state.texture.parameteri(c, t, gl.TEXTURE_WRAP_T, int(mode))
}

// SetMaxAnisotropy sets the anisotropic filtering level. Without the
// anisotropic filtering extensions this does nothing.
func (t *Texture) SetMaxAnisotropy(c *Context, v float32) {
	c.state.texture.setMaxAnisotropy(c, t, v)
}

// Storage2D allocates immutable 2D storage. Requires OpenGL 4.2,
// OpenGL ES 3.0 or a texture storage extension.
func (t *Texture) Storage2D(c *Context, levels int, internalFormat gl.Enum, width, height int) {
	if c.state.texture.storage2D == nil {
		panic("glctx: immutable texture storage requires OpenGL 4.2, OpenGL ES 3.0 or GL_EXT_texture_storage")
	}
	c.state.texture.storage2D(c, t, levels, internalFormat, width, height)
}

// Storage3D allocates immutable 3D storage.
func (t *Texture) Storage3D(c *Context, levels int, internalFormat gl.Enum, width, height, depth int) {
	if c.state.texture.storage3D == nil {
		panic("glctx: immutable texture storage requires OpenGL 4.2, OpenGL ES 3.0 or GL_EXT_texture_storage")
	}
	c.state.texture.storage3D(c, t, levels, internalFormat, width, height, depth)
}

// SubImage2D uploads pixels into a region of a mip level.
func (t *Texture) SubImage2D(c *Context, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	c.state.texture.subImage2D(c, t, level, x, y, width, height, format, ty, data)
}

// SubImage3D uploads pixels into a region of a 3D or array mip level.
func (t *Texture) SubImage3D(c *Context, level, x, y, z, width, height, depth int, format, ty gl.Enum, data []byte) {
	c.state.texture.subImage3D(c, t, level, x, y, z, width, height, depth, format, ty, data)
}

// CompressedSubImage2D uploads pre-compressed blocks into a region.
func (t *Texture) CompressedSubImage2D(c *Context, level, x, y, width, height int, format gl.Enum, data []byte) {
	c.state.texture.compressedSubImage2D(c, t, level, x, y, width, height, format, data)
}

// GenerateMipmap regenerates the mip chain. Requires framebuffer object
// support.
func (t *Texture) GenerateMipmap(c *Context) {
	if c.state.texture.generateMipmap == nil {
		panic("glctx: mipmap generation requires OpenGL 3.0 or GL_ARB_framebuffer_object")
	}
	c.state.texture.generateMipmap(c, t)
}

// Image reads back a whole mip level. Desktop GL only.
func (t *Texture) Image(c *Context, level int, format, ty gl.Enum, data []byte) {
	if c.state.texture.getImage == nil {
		panic("glctx: texture image queries are not available on OpenGL ES")
	}
	c.state.texture.getImage(c, t, level, format, ty, data)
}

// CompressedImageSize returns the byte size of a compressed mip level.
// Desktop GL only.
func (t *Texture) CompressedImageSize(c *Context, level int) int {
	if c.state.texture.getLevelCompressedImageSize == nil {
		panic("glctx: compressed image queries are not available on OpenGL ES")
	}
	return c.state.texture.getLevelCompressedImageSize(c, t, level)
}

// InvalidateImage tells the driver the mip level's contents are garbage.
// Advisory; a no-op without GL_ARB_invalidate_subdata.
func (t *Texture) InvalidateImage(c *Context, level int) {
	c.state.texture.invalidateImage(c, t, level)
}

// Release deletes the texture and scrubs it from the binding cache.
func (t *Texture) Release(c *Context) {
	for i := range c.state.texture.bindings {
		if c.state.texture.bindings[i].id == t.texture.V {
			c.state.texture.bindings[i] = textureBinding{id: disengagedBinding}
		}
	}
	c.funcs.DeleteTexture(t.texture)
	t.texture = gl.Texture{}
}

// CubeMapTexture wraps a GL_TEXTURE_CUBE_MAP texture. Its operations
// dispatch through cube-specific slots: several drivers need the
// classic per-face paths even when the rest of the texture API uses
// DSA.
type CubeMapTexture struct {
	Texture
	size int
}

// NewCubeMapTexture allocates a cube map texture.
func NewCubeMapTexture(c *Context) *CubeMapTexture {
	return &CubeMapTexture{
		Texture: Texture{
			texture: c.state.texture.create(c, gl.TEXTURE_CUBE_MAP),
			target:  gl.TEXTURE_CUBE_MAP,
		},
	}
}

// Storage allocates immutable storage for all six size*size faces.
func (t *CubeMapTexture) Storage(c *Context, levels int, internalFormat gl.Enum, size int) {
	t.size = size
	t.Storage2D(c, levels, internalFormat, size, size)
}

// SubImage uploads pixels into a region of one face. Face indices
// follow the GL_TEXTURE_CUBE_MAP_POSITIVE_X + i ordering.
func (t *CubeMapTexture) SubImage(c *Context, face, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	c.state.texture.cubeSubImage(c, t, face, level, x, y, width, height, format, ty, data)
}

// SubImageAll uploads all six faces at once; data holds the faces in
// index order.
func (t *CubeMapTexture) SubImageAll(c *Context, level int, size int, format, ty gl.Enum, data []byte) {
	c.state.texture.cubeSubImage3D(c, t, level, size, size, format, ty, data)
}

// FaceImage reads back one face of a mip level. Desktop GL only.
func (t *CubeMapTexture) FaceImage(c *Context, face, level int, format, ty gl.Enum, data []byte) {
	if c.state.texture.getCubeImage == nil {
		panic("glctx: texture image queries are not available on OpenGL ES")
	}
	c.state.texture.getCubeImage(c, t, face, level, format, ty, data)
}

// CompressedFaceImageSize returns the byte size of one compressed face.
// Desktop GL only.
func (t *CubeMapTexture) CompressedFaceImageSize(c *Context, level int) int {
	if c.state.texture.getCubeLevelCompressedImageSize == nil {
		panic("glctx: compressed image queries are not available on OpenGL ES")
	}
	return c.state.texture.getCubeLevelCompressedImageSize(c, t, level)
}

// CompressedImage reads back all six compressed faces into data, which
// must hold six times the face size.
func (t *CubeMapTexture) CompressedImage(c *Context, level int, data []byte) {
	if c.state.texture.getCompressedCubeImage == nil {
		panic("glctx: compressed image queries are not available on OpenGL ES")
	}
	faceSize := c.state.texture.getCubeLevelCompressedImageSize(c, t, level)
	c.state.texture.getCompressedCubeImage(c, t, level, faceSize, data)
}
