// SPDX-License-Identifier: Unlicense OR MIT

package gl

// Functions is the set of raw GL entry points the dispatch layer can bind.
// The production implementation is backed by github.com/go-gl/gl; tests
// substitute a recording fake.
//
// Entry points that only exist as vendor-suffixed variants on OpenGL ES 2
// (ANGLE/EXT/NV instanced draws and attribute divisors) are separate
// methods so a fake can tell them apart; the desktop backend forwards them
// to the core entry point.
type Functions interface {
	// Context queries.
	GetError() Enum
	GetString(name Enum) string
	GetStringi(name Enum, index int) string
	GetInteger(pname Enum) int
	GetIntegerv(pname Enum, data []int32)
	GetFloatv(pname Enum, data []float32)

	// Textures.
	GenTexture() Texture
	CreateTexture(target Enum) Texture
	DeleteTexture(t Texture)
	ActiveTexture(unit Enum)
	BindTexture(target Enum, t Texture)
	BindTextureUnit(unit int, t Texture)
	BindTextures(first int, textures []Texture)
	TexParameteri(target, pname Enum, param int)
	TextureParameteri(t Texture, pname Enum, param int)
	TexParameterf(target, pname Enum, param float32)
	TextureParameterf(t Texture, pname Enum, param float32)
	GenerateMipmap(target Enum)
	GenerateTextureMipmap(t Texture)
	TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int)
	TextureStorage2D(t Texture, levels int, internalFormat Enum, width, height int)
	TexStorage3D(target Enum, levels int, internalFormat Enum, width, height, depth int)
	TextureStorage3D(t Texture, levels int, internalFormat Enum, width, height, depth int)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte)
	TextureSubImage2D(t Texture, level, x, y, width, height int, format, ty Enum, data []byte)
	TexSubImage3D(target Enum, level, x, y, z, width, height, depth int, format, ty Enum, data []byte)
	TextureSubImage3D(t Texture, level, x, y, z, width, height, depth int, format, ty Enum, data []byte)
	CompressedTexSubImage2D(target Enum, level, x, y, width, height int, format Enum, data []byte)
	CompressedTextureSubImage2D(t Texture, level, x, y, width, height int, format Enum, data []byte)
	GetTexLevelParameteriv(target Enum, level int, pname Enum, data []int32)
	GetCompressedTexImage(target Enum, level int, data []byte)
	GetCompressedTextureImage(t Texture, level int, data []byte)
	GetTexImage(target Enum, level int, format, ty Enum, data []byte)
	GetnTexImage(target Enum, level int, format, ty Enum, data []byte)
	GetTextureImage(t Texture, level int, format, ty Enum, data []byte)
	GetTextureSubImage(t Texture, level, x, y, z, width, height, depth int, format, ty Enum, data []byte)
	InvalidateTexImage(t Texture, level int)
	CopyTexSubImage2D(target Enum, level, xoffset, yoffset, x, y, width, height int)
	CopyTextureSubImage2D(t Texture, level, xoffset, yoffset, x, y, width, height int)
	CopyTextureSubImage3D(t Texture, level, xoffset, yoffset, zoffset, x, y, width, height int)

	// Buffers.
	GenBuffer() Buffer
	CreateBuffer() Buffer
	DeleteBuffer(b Buffer)
	BindBuffer(target Enum, b Buffer)
	BindBufferBase(target Enum, index int, b Buffer)
	BindBufferRange(target Enum, index int, b Buffer, offset, size int)
	BufferData(target Enum, data []byte, usage Enum)
	NamedBufferData(b Buffer, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	NamedBufferSubData(b Buffer, offset int, data []byte)
	CopyBufferSubData(readTarget, writeTarget Enum, readOffset, writeOffset, size int)
	CopyNamedBufferSubData(src, dst Buffer, readOffset, writeOffset, size int)
	MapBufferRange(target Enum, offset, length int, access Enum) []byte
	MapNamedBufferRange(b Buffer, offset, length int, access Enum) []byte
	UnmapBuffer(target Enum) bool
	UnmapNamedBuffer(b Buffer) bool
	FlushMappedBufferRange(target Enum, offset, length int)
	FlushMappedNamedBufferRange(b Buffer, offset, length int)

	// Framebuffers and renderbuffers.
	GenFramebuffer() Framebuffer
	CreateFramebuffer() Framebuffer
	DeleteFramebuffer(f Framebuffer)
	BindFramebuffer(target Enum, f Framebuffer)
	CheckFramebufferStatus(target Enum) Enum
	CheckNamedFramebufferStatus(f Framebuffer, target Enum) Enum
	DrawBuffer(buf Enum)
	NamedFramebufferDrawBuffer(f Framebuffer, buf Enum)
	DrawBuffers(bufs []Enum)
	NamedFramebufferDrawBuffers(f Framebuffer, bufs []Enum)
	ReadBuffer(src Enum)
	NamedFramebufferReadBuffer(f Framebuffer, src Enum)
	InvalidateFramebuffer(target Enum, attachments []Enum)
	InvalidateNamedFramebufferData(f Framebuffer, attachments []Enum)
	BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask Enum, filter Enum)
	BlitNamedFramebuffer(read, draw Framebuffer, sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask Enum, filter Enum)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	NamedFramebufferTexture(f Framebuffer, attachment Enum, t Texture, level int)
	FramebufferTextureLayer(target, attachment Enum, t Texture, level, layer int)
	NamedFramebufferTextureLayer(f Framebuffer, attachment Enum, t Texture, level, layer int)
	FramebufferRenderbuffer(target, attachment, rbTarget Enum, r Renderbuffer)
	NamedFramebufferRenderbuffer(f Framebuffer, attachment, rbTarget Enum, r Renderbuffer)
	ClearBufferfv(buffer Enum, drawBuffer int, values []float32)
	ClearNamedFramebufferfv(f Framebuffer, buffer Enum, drawBuffer int, values []float32)
	ClearBufferiv(buffer Enum, drawBuffer int, values []int32)
	ClearNamedFramebufferiv(f Framebuffer, buffer Enum, drawBuffer int, values []int32)
	ClearBufferuiv(buffer Enum, drawBuffer int, values []uint32)
	ClearNamedFramebufferuiv(f Framebuffer, buffer Enum, drawBuffer int, values []uint32)
	ReadPixels(x, y, width, height int, format, ty Enum, data []byte)
	ReadnPixels(x, y, width, height int, format, ty Enum, data []byte)
	GenRenderbuffer() Renderbuffer
	CreateRenderbuffer() Renderbuffer
	DeleteRenderbuffer(r Renderbuffer)
	BindRenderbuffer(target Enum, r Renderbuffer)
	RenderbufferStorage(target, internalFormat Enum, width, height int)
	NamedRenderbufferStorage(r Renderbuffer, internalFormat Enum, width, height int)
	RenderbufferStorageMultisample(target Enum, samples int, internalFormat Enum, width, height int)
	NamedRenderbufferStorageMultisample(r Renderbuffer, samples int, internalFormat Enum, width, height int)

	// Vertex arrays and draws.
	GenVertexArray() VertexArray
	CreateVertexArray() VertexArray
	DeleteVertexArray(a VertexArray)
	BindVertexArray(a VertexArray)
	EnableVertexAttribArray(a Attrib)
	EnableVertexArrayAttrib(va VertexArray, a Attrib)
	DisableVertexAttribArray(a Attrib)
	DisableVertexArrayAttrib(va VertexArray, a Attrib)
	VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int)
	VertexAttribIPointer(a Attrib, size int, ty Enum, stride, offset int)
	VertexArrayVertexBuffer(va VertexArray, binding int, b Buffer, offset, stride int)
	VertexArrayAttribFormat(va VertexArray, a Attrib, size int, ty Enum, normalized bool, relativeOffset int)
	VertexArrayAttribIFormat(va VertexArray, a Attrib, size int, ty Enum, relativeOffset int)
	VertexArrayAttribBinding(va VertexArray, a Attrib, binding int)
	VertexArrayElementBuffer(va VertexArray, b Buffer)
	VertexAttribDivisor(a Attrib, divisor int)
	VertexAttribDivisorANGLE(a Attrib, divisor int)
	VertexAttribDivisorEXT(a Attrib, divisor int)
	VertexAttribDivisorNV(a Attrib, divisor int)
	DrawArrays(mode Enum, first, count int)
	DrawElements(mode Enum, count int, ty Enum, offset int)
	DrawArraysInstanced(mode Enum, first, count, instanceCount int)
	DrawArraysInstancedANGLE(mode Enum, first, count, instanceCount int)
	DrawArraysInstancedEXT(mode Enum, first, count, instanceCount int)
	DrawArraysInstancedNV(mode Enum, first, count, instanceCount int)
	DrawArraysInstancedBaseInstance(mode Enum, first, count, instanceCount, baseInstance int)
	DrawElementsInstanced(mode Enum, count int, ty Enum, offset, instanceCount int)
	DrawElementsInstancedANGLE(mode Enum, count int, ty Enum, offset, instanceCount int)
	DrawElementsInstancedEXT(mode Enum, count int, ty Enum, offset, instanceCount int)
	DrawElementsInstancedNV(mode Enum, count int, ty Enum, offset, instanceCount int)
	DrawElementsBaseVertex(mode Enum, count int, ty Enum, offset, baseVertex int)
	DrawElementsInstancedBaseVertex(mode Enum, count int, ty Enum, offset, instanceCount, baseVertex int)
	DrawElementsInstancedBaseVertexBaseInstance(mode Enum, count int, ty Enum, offset, instanceCount, baseVertex, baseInstance int)
	MultiDrawArrays(mode Enum, firsts, counts []int32)
	MultiDrawElements(mode Enum, counts []int32, ty Enum, offsets []int)

	// Shaders, programs and uniforms.
	CreateShader(ty Enum) Shader
	DeleteShader(s Shader)
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	CreateProgram() Program
	DeleteProgram(p Program)
	LinkProgram(p Program)
	UseProgram(p Program)
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetUniformLocation(p Program, name string) Uniform
	Uniform1f(dst Uniform, v float32)
	Uniform1i(dst Uniform, v int)
	Uniform4fv(dst Uniform, values []float32)
	UniformMatrix4fv(dst Uniform, values []float32)
	ProgramUniform1f(p Program, dst Uniform, v float32)
	ProgramUniform1i(p Program, dst Uniform, v int)
	ProgramUniform4fv(p Program, dst Uniform, values []float32)
	ProgramUniformMatrix4fv(p Program, dst Uniform, values []float32)
	ProgramUniform1fEXT(p Program, dst Uniform, v float32)
	ProgramUniform1iEXT(p Program, dst Uniform, v int)
	ProgramUniform4fvEXT(p Program, dst Uniform, values []float32)
	ProgramUniformMatrix4fvEXT(p Program, dst Uniform, values []float32)
	TransformFeedbackVaryings(p Program, varyings []string, bufferMode Enum)

	// Renderer state.
	PixelStorei(pname Enum, param int)
	LineWidth(width float32)
	ClearDepth(d float64)
	ClearDepthf(d float32)
	MinSampleShading(value float32)
	MinSampleShadingOES(value float32)
	GetGraphicsResetStatus() Enum

	// Transform feedback objects.
	GenTransformFeedback() TransformFeedback
	CreateTransformFeedback() TransformFeedback
	DeleteTransformFeedback(t TransformFeedback)
	BindTransformFeedback(target Enum, t TransformFeedback)
	TransformFeedbackBufferBase(t TransformFeedback, index int, b Buffer)
	TransformFeedbackBufferRange(t TransformFeedback, index int, b Buffer, offset, size int)
	BeginTransformFeedback(mode Enum)
	EndTransformFeedback()
}
