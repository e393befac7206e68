// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"glctx.org/internal/gl"
)

// fakeGL implements gl.Functions, recording the name of every entry
// point invoked so tests can verify which implementation a slot was
// bound to.
type fakeGL struct {
	versionString string
	vendor        string
	renderer      string
	extensions    []string
	flags         int32
	major, minor  int

	// noVersionQuery makes GL_MAJOR_VERSION fail the way a pre-3.0
	// context does, forcing the string parse fallback.
	noVersionQuery bool

	integers    map[gl.Enum]int
	floats      map[gl.Enum][]float32
	resetStatus gl.Enum

	calls  []string
	nextID uint32
	err    gl.Enum
}

func newDesktopFake(major, minor int, exts ...string) *fakeGL {
	return &fakeGL{
		versionString: fmt.Sprintf("%d.%d.0 Test GL", major, minor),
		vendor:        "Test Vendor",
		renderer:      "Test Renderer",
		extensions:    exts,
		major:         major,
		minor:         minor,
	}
}

func newES2Fake(exts ...string) *fakeGL {
	return &fakeGL{
		versionString:  "OpenGL ES 2.0 test",
		vendor:         "Test Vendor",
		renderer:       "Test Renderer",
		extensions:     exts,
		noVersionQuery: true,
	}
}

func newES3Fake(exts ...string) *fakeGL {
	return &fakeGL{
		versionString: "OpenGL ES 3.0 test",
		vendor:        "Test Vendor",
		renderer:      "Test Renderer",
		extensions:    exts,
		major:         3,
		minor:         0,
	}
}

func newTestContext(t *testing.T, f *fakeGL, opts Options) *Context {
	t.Helper()
	if opts.Log == nil {
		opts.Log = io.Discard
	}
	c, err := New(f, opts)
	require.NoError(t, err)
	return c
}

func (f *fakeGL) call(name string) {
	f.calls = append(f.calls, name)
}

// has reports whether any recorded call starts with prefix.
func (f *fakeGL) has(prefix string) bool {
	return f.count(prefix) > 0
}

func (f *fakeGL) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeGL) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeGL) GetError() gl.Enum {
	e := f.err
	f.err = gl.NO_ERROR
	return e
}

func (f *fakeGL) GetString(name gl.Enum) string {
	switch name {
	case gl.VERSION:
		return f.versionString
	case gl.VENDOR:
		return f.vendor
	case gl.RENDERER:
		return f.renderer
	case gl.EXTENSIONS:
		return strings.Join(f.extensions, " ")
	}
	return ""
}

func (f *fakeGL) GetStringi(name gl.Enum, index int) string {
	if name == gl.EXTENSIONS {
		return f.extensions[index]
	}
	return ""
}

func (f *fakeGL) GetInteger(pname gl.Enum) int {
	switch pname {
	case gl.NUM_EXTENSIONS:
		return len(f.extensions)
	case gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return 16
	}
	return f.integers[pname]
}

func (f *fakeGL) GetIntegerv(pname gl.Enum, data []int32) {
	switch pname {
	case gl.MAJOR_VERSION:
		if f.noVersionQuery {
			f.err = gl.INVALID_ENUM
			return
		}
		data[0] = int32(f.major)
	case gl.MINOR_VERSION:
		if f.noVersionQuery {
			f.err = gl.INVALID_ENUM
			return
		}
		data[0] = int32(f.minor)
	case gl.CONTEXT_FLAGS:
		data[0] = f.flags
	default:
		data[0] = int32(f.integers[pname])
	}
}

func (f *fakeGL) GetFloatv(pname gl.Enum, data []float32) {
	f.call("GetFloatv")
	copy(data, f.floats[pname])
}

func (f *fakeGL) GenTexture() gl.Texture { f.call("GenTextures"); return gl.Texture{V: f.id()} }
func (f *fakeGL) CreateTexture(target gl.Enum) gl.Texture {
	f.call("CreateTextures")
	return gl.Texture{V: f.id()}
}
func (f *fakeGL) DeleteTexture(t gl.Texture)                     { f.call("DeleteTextures") }
func (f *fakeGL) ActiveTexture(unit gl.Enum)                     { f.call("ActiveTexture") }
func (f *fakeGL) BindTexture(target gl.Enum, t gl.Texture)       { f.call("BindTexture") }
func (f *fakeGL) BindTextureUnit(unit int, t gl.Texture)         { f.call("BindTextureUnit") }
func (f *fakeGL) BindTextures(first int, textures []gl.Texture)  { f.call("BindTextures") }
func (f *fakeGL) TexParameteri(target, pname gl.Enum, param int) { f.call("TexParameteri") }
func (f *fakeGL) TextureParameteri(t gl.Texture, pname gl.Enum, param int) {
	f.call("TextureParameteri")
}
func (f *fakeGL) TexParameterf(target, pname gl.Enum, param float32) { f.call("TexParameterf") }
func (f *fakeGL) TextureParameterf(t gl.Texture, pname gl.Enum, param float32) {
	f.call("TextureParameterf")
}
func (f *fakeGL) GenerateMipmap(target gl.Enum)      { f.call("GenerateMipmap") }
func (f *fakeGL) GenerateTextureMipmap(t gl.Texture) { f.call("GenerateTextureMipmap") }
func (f *fakeGL) TexStorage2D(target gl.Enum, levels int, internalFormat gl.Enum, width, height int) {
	f.call("TexStorage2D")
}
func (f *fakeGL) TextureStorage2D(t gl.Texture, levels int, internalFormat gl.Enum, width, height int) {
	f.call("TextureStorage2D")
}
func (f *fakeGL) TexStorage3D(target gl.Enum, levels int, internalFormat gl.Enum, width, height, depth int) {
	f.call("TexStorage3D")
}
func (f *fakeGL) TextureStorage3D(t gl.Texture, levels int, internalFormat gl.Enum, width, height, depth int) {
	f.call("TextureStorage3D")
}
func (f *fakeGL) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.call(fmt.Sprintf("TexSubImage2D(%#x)", uint(target)))
}
func (f *fakeGL) TextureSubImage2D(t gl.Texture, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.call("TextureSubImage2D")
}
func (f *fakeGL) TexSubImage3D(target gl.Enum, level, x, y, z, width, height, depth int, format, ty gl.Enum, data []byte) {
	f.call("TexSubImage3D")
}
func (f *fakeGL) TextureSubImage3D(t gl.Texture, level, x, y, z, width, height, depth int, format, ty gl.Enum, data []byte) {
	f.call(fmt.Sprintf("TextureSubImage3D(depth=%d)", depth))
}
func (f *fakeGL) CompressedTexSubImage2D(target gl.Enum, level, x, y, width, height int, format gl.Enum, data []byte) {
	f.call("CompressedTexSubImage2D")
}
func (f *fakeGL) CompressedTextureSubImage2D(t gl.Texture, level, x, y, width, height int, format gl.Enum, data []byte) {
	f.call("CompressedTextureSubImage2D")
}
func (f *fakeGL) GetTexLevelParameteriv(target gl.Enum, level int, pname gl.Enum, data []int32) {
	f.call("GetTexLevelParameteriv")
	data[0] = int32(f.integers[pname])
}
func (f *fakeGL) GetCompressedTexImage(target gl.Enum, level int, data []byte) {
	f.call("GetCompressedTexImage")
}
func (f *fakeGL) GetCompressedTextureImage(t gl.Texture, level int, data []byte) {
	f.call("GetCompressedTextureImage")
}
func (f *fakeGL) GetTexImage(target gl.Enum, level int, format, ty gl.Enum, data []byte) {
	f.call("GetTexImage")
}
func (f *fakeGL) GetnTexImage(target gl.Enum, level int, format, ty gl.Enum, data []byte) {
	f.call("GetnTexImage")
}
func (f *fakeGL) GetTextureImage(t gl.Texture, level int, format, ty gl.Enum, data []byte) {
	f.call("GetTextureImage")
}
func (f *fakeGL) GetTextureSubImage(t gl.Texture, level, x, y, z, width, height, depth int, format, ty gl.Enum, data []byte) {
	f.call("GetTextureSubImage")
}
func (f *fakeGL) InvalidateTexImage(t gl.Texture, level int) { f.call("InvalidateTexImage") }
func (f *fakeGL) CopyTexSubImage2D(target gl.Enum, level, xoffset, yoffset, x, y, width, height int) {
	f.call("CopyTexSubImage2D")
}
func (f *fakeGL) CopyTextureSubImage2D(t gl.Texture, level, xoffset, yoffset, x, y, width, height int) {
	f.call("CopyTextureSubImage2D")
}
func (f *fakeGL) CopyTextureSubImage3D(t gl.Texture, level, xoffset, yoffset, zoffset, x, y, width, height int) {
	f.call("CopyTextureSubImage3D")
}

func (f *fakeGL) GenBuffer() gl.Buffer     { f.call("GenBuffers"); return gl.Buffer{V: f.id()} }
func (f *fakeGL) CreateBuffer() gl.Buffer  { f.call("CreateBuffers"); return gl.Buffer{V: f.id()} }
func (f *fakeGL) DeleteBuffer(b gl.Buffer) { f.call("DeleteBuffers") }
func (f *fakeGL) BindBuffer(target gl.Enum, b gl.Buffer) {
	f.call(fmt.Sprintf("BindBuffer(%#x)", uint(target)))
}
func (f *fakeGL) BindBufferBase(target gl.Enum, index int, b gl.Buffer) { f.call("BindBufferBase") }
func (f *fakeGL) BindBufferRange(target gl.Enum, index int, b gl.Buffer, offset, size int) {
	f.call("BindBufferRange")
}
func (f *fakeGL) BufferData(target gl.Enum, data []byte, usage gl.Enum) { f.call("BufferData") }
func (f *fakeGL) NamedBufferData(b gl.Buffer, data []byte, usage gl.Enum) {
	f.call("NamedBufferData")
}
func (f *fakeGL) BufferSubData(target gl.Enum, offset int, data []byte) { f.call("BufferSubData") }
func (f *fakeGL) NamedBufferSubData(b gl.Buffer, offset int, data []byte) {
	f.call("NamedBufferSubData")
}
func (f *fakeGL) CopyBufferSubData(readTarget, writeTarget gl.Enum, readOffset, writeOffset, size int) {
	f.call("CopyBufferSubData")
}
func (f *fakeGL) CopyNamedBufferSubData(src, dst gl.Buffer, readOffset, writeOffset, size int) {
	f.call("CopyNamedBufferSubData")
}
func (f *fakeGL) MapBufferRange(target gl.Enum, offset, length int, access gl.Enum) []byte {
	f.call("MapBufferRange")
	return make([]byte, length)
}
func (f *fakeGL) MapNamedBufferRange(b gl.Buffer, offset, length int, access gl.Enum) []byte {
	f.call("MapNamedBufferRange")
	return make([]byte, length)
}
func (f *fakeGL) UnmapBuffer(target gl.Enum) bool   { f.call("UnmapBuffer"); return true }
func (f *fakeGL) UnmapNamedBuffer(b gl.Buffer) bool { f.call("UnmapNamedBuffer"); return true }
func (f *fakeGL) FlushMappedBufferRange(target gl.Enum, offset, length int) {
	f.call("FlushMappedBufferRange")
}
func (f *fakeGL) FlushMappedNamedBufferRange(b gl.Buffer, offset, length int) {
	f.call("FlushMappedNamedBufferRange")
}

func (f *fakeGL) GenFramebuffer() gl.Framebuffer {
	f.call("GenFramebuffers")
	return gl.Framebuffer{V: f.id()}
}
func (f *fakeGL) CreateFramebuffer() gl.Framebuffer {
	f.call("CreateFramebuffers")
	return gl.Framebuffer{V: f.id()}
}
func (f *fakeGL) DeleteFramebuffer(fb gl.Framebuffer) { f.call("DeleteFramebuffers") }
func (f *fakeGL) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.call(fmt.Sprintf("BindFramebuffer(%#x)", uint(target)))
}
func (f *fakeGL) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	f.call("CheckFramebufferStatus")
	return gl.FRAMEBUFFER_COMPLETE
}
func (f *fakeGL) CheckNamedFramebufferStatus(fb gl.Framebuffer, target gl.Enum) gl.Enum {
	f.call("CheckNamedFramebufferStatus")
	return gl.FRAMEBUFFER_COMPLETE
}
func (f *fakeGL) DrawBuffer(buf gl.Enum) { f.call("DrawBuffer") }
func (f *fakeGL) NamedFramebufferDrawBuffer(fb gl.Framebuffer, buf gl.Enum) {
	f.call("NamedFramebufferDrawBuffer")
}
func (f *fakeGL) DrawBuffers(bufs []gl.Enum) { f.call("DrawBuffers") }
func (f *fakeGL) NamedFramebufferDrawBuffers(fb gl.Framebuffer, bufs []gl.Enum) {
	f.call("NamedFramebufferDrawBuffers")
}
func (f *fakeGL) ReadBuffer(src gl.Enum) { f.call("ReadBuffer") }
func (f *fakeGL) NamedFramebufferReadBuffer(fb gl.Framebuffer, src gl.Enum) {
	f.call("NamedFramebufferReadBuffer")
}
func (f *fakeGL) InvalidateFramebuffer(target gl.Enum, attachments []gl.Enum) {
	f.call("InvalidateFramebuffer")
}
func (f *fakeGL) InvalidateNamedFramebufferData(fb gl.Framebuffer, attachments []gl.Enum) {
	f.call("InvalidateNamedFramebufferData")
}
func (f *fakeGL) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask gl.Enum, filter gl.Enum) {
	f.call("BlitFramebuffer")
}
func (f *fakeGL) BlitNamedFramebuffer(read, draw gl.Framebuffer, sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask gl.Enum, filter gl.Enum) {
	f.call("BlitNamedFramebuffer")
}
func (f *fakeGL) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	f.call("FramebufferTexture2D")
}
func (f *fakeGL) NamedFramebufferTexture(fb gl.Framebuffer, attachment gl.Enum, t gl.Texture, level int) {
	f.call("NamedFramebufferTexture")
}
func (f *fakeGL) FramebufferTextureLayer(target, attachment gl.Enum, t gl.Texture, level, layer int) {
	f.call("FramebufferTextureLayer")
}
func (f *fakeGL) NamedFramebufferTextureLayer(fb gl.Framebuffer, attachment gl.Enum, t gl.Texture, level, layer int) {
	f.call("NamedFramebufferTextureLayer")
}
func (f *fakeGL) FramebufferRenderbuffer(target, attachment, rbTarget gl.Enum, r gl.Renderbuffer) {
	f.call("FramebufferRenderbuffer")
}
func (f *fakeGL) NamedFramebufferRenderbuffer(fb gl.Framebuffer, attachment, rbTarget gl.Enum, r gl.Renderbuffer) {
	f.call("NamedFramebufferRenderbuffer")
}
func (f *fakeGL) ClearBufferfv(buffer gl.Enum, drawBuffer int, values []float32) {
	f.call("ClearBufferfv")
}
func (f *fakeGL) ClearNamedFramebufferfv(fb gl.Framebuffer, buffer gl.Enum, drawBuffer int, values []float32) {
	f.call("ClearNamedFramebufferfv")
}
func (f *fakeGL) ClearBufferiv(buffer gl.Enum, drawBuffer int, values []int32) {
	f.call("ClearBufferiv")
}
func (f *fakeGL) ClearNamedFramebufferiv(fb gl.Framebuffer, buffer gl.Enum, drawBuffer int, values []int32) {
	f.call("ClearNamedFramebufferiv")
}
func (f *fakeGL) ClearBufferuiv(buffer gl.Enum, drawBuffer int, values []uint32) {
	f.call("ClearBufferuiv")
}
func (f *fakeGL) ClearNamedFramebufferuiv(fb gl.Framebuffer, buffer gl.Enum, drawBuffer int, values []uint32) {
	f.call("ClearNamedFramebufferuiv")
}
func (f *fakeGL) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.call("ReadPixels")
}
func (f *fakeGL) ReadnPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.call("ReadnPixels")
}
func (f *fakeGL) GenRenderbuffer() gl.Renderbuffer {
	f.call("GenRenderbuffers")
	return gl.Renderbuffer{V: f.id()}
}
func (f *fakeGL) CreateRenderbuffer() gl.Renderbuffer {
	f.call("CreateRenderbuffers")
	return gl.Renderbuffer{V: f.id()}
}
func (f *fakeGL) DeleteRenderbuffer(r gl.Renderbuffer)               { f.call("DeleteRenderbuffers") }
func (f *fakeGL) BindRenderbuffer(target gl.Enum, r gl.Renderbuffer) { f.call("BindRenderbuffer") }
func (f *fakeGL) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	f.call("RenderbufferStorage")
}
func (f *fakeGL) NamedRenderbufferStorage(r gl.Renderbuffer, internalFormat gl.Enum, width, height int) {
	f.call("NamedRenderbufferStorage")
}
func (f *fakeGL) RenderbufferStorageMultisample(target gl.Enum, samples int, internalFormat gl.Enum, width, height int) {
	f.call("RenderbufferStorageMultisample")
}
func (f *fakeGL) NamedRenderbufferStorageMultisample(r gl.Renderbuffer, samples int, internalFormat gl.Enum, width, height int) {
	f.call("NamedRenderbufferStorageMultisample")
}

func (f *fakeGL) GenVertexArray() gl.VertexArray {
	f.call("GenVertexArrays")
	return gl.VertexArray{V: f.id()}
}
func (f *fakeGL) CreateVertexArray() gl.VertexArray {
	f.call("CreateVertexArrays")
	return gl.VertexArray{V: f.id()}
}
func (f *fakeGL) DeleteVertexArray(a gl.VertexArray)  { f.call("DeleteVertexArrays") }
func (f *fakeGL) BindVertexArray(a gl.VertexArray)    { f.call("BindVertexArray") }
func (f *fakeGL) EnableVertexAttribArray(a gl.Attrib) { f.call("EnableVertexAttribArray") }
func (f *fakeGL) EnableVertexArrayAttrib(va gl.VertexArray, a gl.Attrib) {
	f.call("EnableVertexArrayAttrib")
}
func (f *fakeGL) DisableVertexAttribArray(a gl.Attrib) { f.call("DisableVertexAttribArray") }
func (f *fakeGL) DisableVertexArrayAttrib(va gl.VertexArray, a gl.Attrib) {
	f.call("DisableVertexArrayAttrib")
}
func (f *fakeGL) VertexAttribPointer(a gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.call("VertexAttribPointer")
}
func (f *fakeGL) VertexAttribIPointer(a gl.Attrib, size int, ty gl.Enum, stride, offset int) {
	f.call("VertexAttribIPointer")
}
func (f *fakeGL) VertexArrayVertexBuffer(va gl.VertexArray, binding int, b gl.Buffer, offset, stride int) {
	f.call("VertexArrayVertexBuffer")
}
func (f *fakeGL) VertexArrayAttribFormat(va gl.VertexArray, a gl.Attrib, size int, ty gl.Enum, normalized bool, relativeOffset int) {
	f.call("VertexArrayAttribFormat")
}
func (f *fakeGL) VertexArrayAttribIFormat(va gl.VertexArray, a gl.Attrib, size int, ty gl.Enum, relativeOffset int) {
	f.call("VertexArrayAttribIFormat")
}
func (f *fakeGL) VertexArrayAttribBinding(va gl.VertexArray, a gl.Attrib, binding int) {
	f.call("VertexArrayAttribBinding")
}
func (f *fakeGL) VertexArrayElementBuffer(va gl.VertexArray, b gl.Buffer) {
	f.call("VertexArrayElementBuffer")
}
func (f *fakeGL) VertexAttribDivisor(a gl.Attrib, divisor int) { f.call("VertexAttribDivisor") }
func (f *fakeGL) VertexAttribDivisorANGLE(a gl.Attrib, divisor int) {
	f.call("VertexAttribDivisorANGLE")
}
func (f *fakeGL) VertexAttribDivisorEXT(a gl.Attrib, divisor int) {
	f.call("VertexAttribDivisorEXT")
}
func (f *fakeGL) VertexAttribDivisorNV(a gl.Attrib, divisor int) {
	f.call("VertexAttribDivisorNV")
}
func (f *fakeGL) DrawArrays(mode gl.Enum, first, count int) { f.call("DrawArrays") }
func (f *fakeGL) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	f.call("DrawElements")
}
func (f *fakeGL) DrawArraysInstanced(mode gl.Enum, first, count, instanceCount int) {
	f.call("DrawArraysInstanced")
}
func (f *fakeGL) DrawArraysInstancedANGLE(mode gl.Enum, first, count, instanceCount int) {
	f.call("DrawArraysInstancedANGLE")
}
func (f *fakeGL) DrawArraysInstancedEXT(mode gl.Enum, first, count, instanceCount int) {
	f.call("DrawArraysInstancedEXT")
}
func (f *fakeGL) DrawArraysInstancedNV(mode gl.Enum, first, count, instanceCount int) {
	f.call("DrawArraysInstancedNV")
}
func (f *fakeGL) DrawArraysInstancedBaseInstance(mode gl.Enum, first, count, instanceCount, baseInstance int) {
	f.call("DrawArraysInstancedBaseInstance")
}
func (f *fakeGL) DrawElementsInstanced(mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int) {
	f.call("DrawElementsInstanced")
}
func (f *fakeGL) DrawElementsInstancedANGLE(mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int) {
	f.call("DrawElementsInstancedANGLE")
}
func (f *fakeGL) DrawElementsInstancedEXT(mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int) {
	f.call("DrawElementsInstancedEXT")
}
func (f *fakeGL) DrawElementsInstancedNV(mode gl.Enum, count int, ty gl.Enum, offset, instanceCount int) {
	f.call("DrawElementsInstancedNV")
}
func (f *fakeGL) DrawElementsBaseVertex(mode gl.Enum, count int, ty gl.Enum, offset, baseVertex int) {
	f.call("DrawElementsBaseVertex")
}
func (f *fakeGL) DrawElementsInstancedBaseVertex(mode gl.Enum, count int, ty gl.Enum, offset, instanceCount, baseVertex int) {
	f.call("DrawElementsInstancedBaseVertex")
}
func (f *fakeGL) DrawElementsInstancedBaseVertexBaseInstance(mode gl.Enum, count int, ty gl.Enum, offset, instanceCount, baseVertex, baseInstance int) {
	f.call("DrawElementsInstancedBaseVertexBaseInstance")
}
func (f *fakeGL) MultiDrawArrays(mode gl.Enum, firsts, counts []int32) { f.call("MultiDrawArrays") }
func (f *fakeGL) MultiDrawElements(mode gl.Enum, counts []int32, ty gl.Enum, offsets []int) {
	f.call("MultiDrawElements")
}

func (f *fakeGL) CreateShader(ty gl.Enum) gl.Shader {
	f.call("CreateShader")
	return gl.Shader{V: f.id()}
}
func (f *fakeGL) DeleteShader(s gl.Shader)             { f.call("DeleteShader") }
func (f *fakeGL) ShaderSource(s gl.Shader, src string) { f.call("ShaderSource") }
func (f *fakeGL) CompileShader(s gl.Shader)            { f.call("CompileShader") }
func (f *fakeGL) GetShaderi(s gl.Shader, pname gl.Enum) int {
	if pname == gl.COMPILE_STATUS {
		return 1
	}
	return 0
}
func (f *fakeGL) GetShaderInfoLog(s gl.Shader) string    { return "" }
func (f *fakeGL) AttachShader(p gl.Program, s gl.Shader) { f.call("AttachShader") }
func (f *fakeGL) DetachShader(p gl.Program, s gl.Shader) { f.call("DetachShader") }
func (f *fakeGL) CreateProgram() gl.Program {
	f.call("CreateProgram")
	return gl.Program{V: f.id()}
}
func (f *fakeGL) DeleteProgram(p gl.Program) { f.call("DeleteProgram") }
func (f *fakeGL) LinkProgram(p gl.Program)   { f.call("LinkProgram") }
func (f *fakeGL) UseProgram(p gl.Program)    { f.call("UseProgram") }
func (f *fakeGL) GetProgrami(p gl.Program, pname gl.Enum) int {
	if pname == gl.LINK_STATUS {
		return 1
	}
	return 0
}
func (f *fakeGL) GetProgramInfoLog(p gl.Program) string { return "" }
func (f *fakeGL) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	return gl.Uniform{V: 0}
}
func (f *fakeGL) Uniform1f(dst gl.Uniform, v float32)         { f.call("Uniform1f") }
func (f *fakeGL) Uniform1i(dst gl.Uniform, v int)             { f.call("Uniform1i") }
func (f *fakeGL) Uniform4fv(dst gl.Uniform, values []float32) { f.call("Uniform4fv") }
func (f *fakeGL) UniformMatrix4fv(dst gl.Uniform, values []float32) {
	f.call("UniformMatrix4fv")
}
func (f *fakeGL) ProgramUniform1f(p gl.Program, dst gl.Uniform, v float32) {
	f.call("ProgramUniform1f")
}
func (f *fakeGL) ProgramUniform1i(p gl.Program, dst gl.Uniform, v int) {
	f.call("ProgramUniform1i")
}
func (f *fakeGL) ProgramUniform4fv(p gl.Program, dst gl.Uniform, values []float32) {
	f.call("ProgramUniform4fv")
}
func (f *fakeGL) ProgramUniformMatrix4fv(p gl.Program, dst gl.Uniform, values []float32) {
	f.call("ProgramUniformMatrix4fv")
}
func (f *fakeGL) ProgramUniform1fEXT(p gl.Program, dst gl.Uniform, v float32) {
	f.call("ProgramUniform1fEXT")
}
func (f *fakeGL) ProgramUniform1iEXT(p gl.Program, dst gl.Uniform, v int) {
	f.call("ProgramUniform1iEXT")
}
func (f *fakeGL) ProgramUniform4fvEXT(p gl.Program, dst gl.Uniform, values []float32) {
	f.call("ProgramUniform4fvEXT")
}
func (f *fakeGL) ProgramUniformMatrix4fvEXT(p gl.Program, dst gl.Uniform, values []float32) {
	f.call("ProgramUniformMatrix4fvEXT")
}
func (f *fakeGL) TransformFeedbackVaryings(p gl.Program, varyings []string, bufferMode gl.Enum) {
	f.call("TransformFeedbackVaryings")
}

func (f *fakeGL) PixelStorei(pname gl.Enum, param int) { f.call("PixelStorei") }
func (f *fakeGL) LineWidth(width float32)              { f.call("LineWidth") }
func (f *fakeGL) ClearDepth(d float64)                 { f.call("ClearDepth") }
func (f *fakeGL) ClearDepthf(d float32)                { f.call("ClearDepthf") }
func (f *fakeGL) MinSampleShading(value float32)       { f.call("MinSampleShading") }
func (f *fakeGL) MinSampleShadingOES(value float32)    { f.call("MinSampleShadingOES") }
func (f *fakeGL) GetGraphicsResetStatus() gl.Enum {
	f.call("GetGraphicsResetStatus")
	return f.resetStatus
}

func (f *fakeGL) GenTransformFeedback() gl.TransformFeedback {
	f.call("GenTransformFeedbacks")
	return gl.TransformFeedback{V: f.id()}
}
func (f *fakeGL) CreateTransformFeedback() gl.TransformFeedback {
	f.call("CreateTransformFeedbacks")
	return gl.TransformFeedback{V: f.id()}
}
func (f *fakeGL) DeleteTransformFeedback(t gl.TransformFeedback) {
	f.call("DeleteTransformFeedbacks")
}
func (f *fakeGL) BindTransformFeedback(target gl.Enum, t gl.TransformFeedback) {
	f.call("BindTransformFeedback")
}
func (f *fakeGL) TransformFeedbackBufferBase(t gl.TransformFeedback, index int, b gl.Buffer) {
	f.call("TransformFeedbackBufferBase")
}
func (f *fakeGL) TransformFeedbackBufferRange(t gl.TransformFeedback, index int, b gl.Buffer, offset, size int) {
	f.call("TransformFeedbackBufferRange")
}
func (f *fakeGL) BeginTransformFeedback(mode gl.Enum) { f.call("BeginTransformFeedback") }
func (f *fakeGL) EndTransformFeedback()               { f.call("EndTransformFeedback") }
