// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"glctx.org/internal/gl"
)

func TestTextureDSASelectsAllSlots(t *testing.T) {
	// With direct state access everything texture-shaped goes through
	// the named entry points, cube maps included.
	f := newDesktopFake(4, 5)
	c := newTestContext(t, f, Options{})

	tex := NewTexture2D(c)
	tex.Storage2D(c, 1, gl.RGBA8, 4, 4)
	tex.SubImage2D(c, 0, 0, 0, 4, 4, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 64))
	tex.SetMinificationFilter(c, gl.LINEAR)
	tex.GenerateMipmap(c)

	cube := NewCubeMapTexture(c)
	cube.Storage(c, 1, gl.RGBA8, 4)
	cube.SubImage(c, 2, 0, 0, 0, 4, 4, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 64))

	assert.True(t, f.has("CreateTextures"))
	assert.True(t, f.has("TextureStorage2D"))
	assert.True(t, f.has("TextureSubImage2D"))
	assert.True(t, f.has("TextureParameteri"))
	assert.True(t, f.has("GenerateTextureMipmap"))
	assert.True(t, f.has("TextureSubImage3D"))
	assert.False(t, f.has("BindTexture"))
	assert.False(t, f.has("TexSubImage2D"))
}

func TestTextureIntelWindowsCubeMapOverride(t *testing.T) {
	// Cube slots fall back to bind-to-edit while the rest of the
	// texture API keeps DSA.
	f := newDesktopFake(4, 5)
	f.vendor = "Intel"
	c := newTestContext(t, f, Options{OS: "windows"})

	tex := NewTexture2D(c)
	tex.SubImage2D(c, 0, 0, 0, 4, 4, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 64))
	assert.True(t, f.has("TextureSubImage2D"))

	cube := NewCubeMapTexture(c)
	cube.SubImage(c, 0, 0, 0, 0, 4, 4, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 64))
	assert.True(t, f.has("BindTexture"))
	assert.True(t, f.has("TexSubImage2D("))
	assert.False(t, f.has("TextureSubImage3D"))
}

func TestTextureIntelWindowsCubeMapOptOut(t *testing.T) {
	f := newDesktopFake(4, 5)
	f.vendor = "Intel"
	c := newTestContext(t, f, Options{
		OS:                  "windows",
		DisabledWorkarounds: []string{"intel-windows-broken-dsa-for-cubemaps"},
	})
	cube := NewCubeMapTexture(c)
	cube.SubImage(c, 0, 0, 0, 0, 4, 4, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 64))
	assert.True(t, f.has("TextureSubImage3D"))
	assert.False(t, f.has("TexSubImage2D("))
}

func TestTextureAnisotropyNoOpWithoutExtension(t *testing.T) {
	f := newDesktopFake(3, 3)
	c := newTestContext(t, f, Options{})
	tex := NewTexture2D(c)
	before := len(f.calls)
	tex.SetMaxAnisotropy(c, 8)
	assert.Equal(t, before, len(f.calls))
}

func TestTextureAnisotropyEXT(t *testing.T) {
	f := newDesktopFake(3, 3, "GL_EXT_texture_filter_anisotropic")
	c := newTestContext(t, f, Options{})
	tex := NewTexture2D(c)
	tex.SetMaxAnisotropy(c, 8)
	assert.True(t, f.has("TexParameterf"))
}

func TestTextureStorageUnavailableOnES2(t *testing.T) {
	c := newTestContext(t, newES2Fake(), Options{Profile: ProfileES2})
	tex := NewTexture2D(c)
	assert.Panics(t, func() { tex.Storage2D(c, 1, gl.RGBA8, 4, 4) })
}

func TestTextureStorageEXTOnES2(t *testing.T) {
	f := newES2Fake("GL_EXT_texture_storage")
	c := newTestContext(t, f, Options{Profile: ProfileES2})
	tex := NewTexture2D(c)
	tex.Storage2D(c, 1, gl.RGBA8, 4, 4)
	assert.True(t, f.has("TexStorage2D"))
}

func TestTextureSvga3DUploadSliceBySlice(t *testing.T) {
	f := newDesktopFake(3, 3)
	f.versionString = "3.3 Mesa 20.0.4"
	f.renderer = "SVGA3D; build: RELEASE;"
	c := newTestContext(t, f, Options{})
	tex := NewTexture3D(c)
	tex.SubImage3D(c, 0, 0, 0, 0, 2, 2, 4, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 64))
	assert.Equal(t, 4, f.count("TexSubImage3D"))
}

func TestTextureNVidiaCompressedSizeInBits(t *testing.T) {
	f := newDesktopFake(4, 3)
	f.vendor = "NVIDIA Corporation"
	f.integers = map[gl.Enum]int{gl.TEXTURE_COMPRESSED_IMAGE_SIZE: 4096}
	c := newTestContext(t, f, Options{})
	tex := NewTexture2D(c)
	assert.Equal(t, 512, tex.CompressedImageSize(c, 0))
}

func TestTextureNVidiaCubeCompressedImageFaceByFace(t *testing.T) {
	f := newDesktopFake(4, 5)
	f.vendor = "NVIDIA Corporation"
	f.integers = map[gl.Enum]int{gl.TEXTURE_COMPRESSED_IMAGE_SIZE: 8 * 6}
	c := newTestContext(t, f, Options{})
	cube := NewCubeMapTexture(c)
	cube.CompressedImage(c, 0, make([]byte, 8*6))
	assert.Equal(t, 6, f.count("GetCompressedTexImage"))
	assert.False(t, f.has("GetCompressedTextureImage"))
}

func TestTextureInvalidateNoOpWithoutSupport(t *testing.T) {
	f := newDesktopFake(3, 3)
	c := newTestContext(t, f, Options{})
	tex := NewTexture2D(c)
	before := len(f.calls)
	tex.InvalidateImage(c, 0)
	assert.Equal(t, before, len(f.calls))
}

func TestTextureBindElisionAndReset(t *testing.T) {
	f := newDesktopFake(3, 3)
	c := newTestContext(t, f, Options{})
	tex := NewTexture2D(c)
	tex.Bind(c, 1)
	tex.Bind(c, 1)
	assert.Equal(t, 1, f.count("BindTexture"))

	c.ResetState(StateTextures)
	tex.Bind(c, 1)
	assert.Equal(t, 2, f.count("BindTexture"))
}

func TestTextureMultiBindBinding(t *testing.T) {
	// GL 4.4 has multi_bind but not direct state access, so single
	// binds go through glBindTextures with a one-element run and no
	// active-unit switching.
	f := newDesktopFake(4, 4)
	c := newTestContext(t, f, Options{})
	tex := NewTexture2D(c)
	tex.Bind(c, 1)
	tex.Unbind(c, 1)
	assert.Equal(t, 2, f.count("BindTextures"))
	assert.NotContains(t, f.calls, "BindTexture")
	assert.False(t, f.has("BindTextureUnit"))
	assert.False(t, f.has("ActiveTexture"))
}

func TestTextureBindTexturesRun(t *testing.T) {
	f := newDesktopFake(4, 4)
	c := newTestContext(t, f, Options{})
	a := NewTexture2D(c)
	b := NewTexture3D(c)
	c.BindTextures(2, []*Texture{a, nil, b})
	assert.Equal(t, 1, f.count("BindTextures"))
	assert.NotContains(t, f.calls, "BindTexture")

	// The run fills the binding cache, so a later single bind of the
	// same texture to the same unit is elided.
	a.Bind(c, 2)
	assert.Equal(t, 1, f.count("BindTextures"))
}

func TestTextureBindTexturesFallback(t *testing.T) {
	// Without multi_bind the run degrades to per-unit binds; the nil
	// entry unbinds its unit.
	f := newDesktopFake(3, 3)
	c := newTestContext(t, f, Options{})
	a := NewTexture2D(c)
	b := NewTexture3D(c)
	c.BindTextures(0, []*Texture{a, nil, b})
	assert.Equal(t, 3, f.count("BindTexture"))
	assert.False(t, f.has("BindTextures"))
}

func TestTextureMultiBindListedAsUsedFeature(t *testing.T) {
	var sb strings.Builder
	f := newDesktopFake(4, 4)
	newTestContext(t, f, Options{Log: &sb})
	assert.Contains(t, sb.String(), "GL_ARB_multi_bind")
}

func TestTextureImageQueryRobustness(t *testing.T) {
	f := newDesktopFake(3, 3, "GL_ARB_robustness")
	c := newTestContext(t, f, Options{})
	tex := NewTexture2D(c)
	tex.Image(c, 0, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 64))
	assert.True(t, f.has("GetnTexImage"))
	assert.False(t, f.has("GetTexImage"))
}

func TestTextureImageQueryUnavailableOnES(t *testing.T) {
	c := newTestContext(t, newES3Fake(), Options{Profile: ProfileES3})
	tex := NewTexture2D(c)
	assert.Panics(t, func() { tex.Image(c, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil) })
}
