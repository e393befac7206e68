// SPDX-License-Identifier: Unlicense OR MIT

//go:build cgo

package gl

import (
	"unsafe"

	ogl "github.com/go-gl/gl/v4.6-core/gl"
)

// funcs implements Functions on top of the go-gl desktop bindings. The
// vendor-suffixed ES 2 entry points forward to the core ones; a desktop
// context never binds them.
type funcs struct{}

// Init loads the GL entry points. A context must be current.
func Init() error {
	return ogl.Init()
}

// NewFunctions returns the go-gl backed entry points. Init must have
// been called with a current context.
func NewFunctions() Functions {
	return funcs{}
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func (funcs) GetError() Enum {
	return Enum(ogl.GetError())
}

func (funcs) GetString(name Enum) string {
	s := ogl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return ogl.GoStr(s)
}

func (funcs) GetStringi(name Enum, index int) string {
	s := ogl.GetStringi(uint32(name), uint32(index))
	if s == nil {
		return ""
	}
	return ogl.GoStr(s)
}

func (funcs) GetInteger(pname Enum) int {
	var v int32
	ogl.GetIntegerv(uint32(pname), &v)
	return int(v)
}

func (funcs) GetIntegerv(pname Enum, data []int32) {
	ogl.GetIntegerv(uint32(pname), &data[0])
}

func (funcs) GetFloatv(pname Enum, data []float32) {
	ogl.GetFloatv(uint32(pname), &data[0])
}

func (funcs) GenTexture() Texture {
	var t uint32
	ogl.GenTextures(1, &t)
	return Texture{V: t}
}

func (funcs) CreateTexture(target Enum) Texture {
	var t uint32
	ogl.CreateTextures(uint32(target), 1, &t)
	return Texture{V: t}
}

func (funcs) DeleteTexture(t Texture) {
	ogl.DeleteTextures(1, &t.V)
}

func (funcs) ActiveTexture(unit Enum) {
	ogl.ActiveTexture(uint32(unit))
}

func (funcs) BindTexture(target Enum, t Texture) {
	ogl.BindTexture(uint32(target), t.V)
}

func (funcs) BindTextureUnit(unit int, t Texture) {
	ogl.BindTextureUnit(uint32(unit), t.V)
}

func (funcs) BindTextures(first int, textures []Texture) {
	if len(textures) == 0 {
		return
	}
	ids := make([]uint32, len(textures))
	for i, t := range textures {
		ids[i] = t.V
	}
	ogl.BindTextures(uint32(first), int32(len(ids)), &ids[0])
}

func (funcs) TexParameteri(target, pname Enum, param int) {
	ogl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (funcs) TextureParameteri(t Texture, pname Enum, param int) {
	ogl.TextureParameteri(t.V, uint32(pname), int32(param))
}

func (funcs) TexParameterf(target, pname Enum, param float32) {
	ogl.TexParameterf(uint32(target), uint32(pname), param)
}

func (funcs) TextureParameterf(t Texture, pname Enum, param float32) {
	ogl.TextureParameterf(t.V, uint32(pname), param)
}

func (funcs) GetCompressedTexImage(target Enum, level int, data []byte) {
	ogl.GetCompressedTexImage(uint32(target), int32(level), ptr(data))
}

func (funcs) GetCompressedTextureImage(t Texture, level int, data []byte) {
	ogl.GetCompressedTextureImage(t.V, int32(level), int32(len(data)), ptr(data))
}

func (funcs) GenerateMipmap(target Enum) {
	ogl.GenerateMipmap(uint32(target))
}

func (funcs) GenerateTextureMipmap(t Texture) {
	ogl.GenerateTextureMipmap(t.V)
}

func (funcs) TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int) {
	ogl.TexStorage2D(uint32(target), int32(levels), uint32(internalFormat), int32(width), int32(height))
}

func (funcs) TextureStorage2D(t Texture, levels int, internalFormat Enum, width, height int) {
	ogl.TextureStorage2D(t.V, int32(levels), uint32(internalFormat), int32(width), int32(height))
}

func (funcs) TexStorage3D(target Enum, levels int, internalFormat Enum, width, height, depth int) {
	ogl.TexStorage3D(uint32(target), int32(levels), uint32(internalFormat), int32(width), int32(height), int32(depth))
}

func (funcs) TextureStorage3D(t Texture, levels int, internalFormat Enum, width, height, depth int) {
	ogl.TextureStorage3D(t.V, int32(levels), uint32(internalFormat), int32(width), int32(height), int32(depth))
}

func (funcs) TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte) {
	ogl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), ptr(data))
}

func (funcs) TextureSubImage2D(t Texture, level, x, y, width, height int, format, ty Enum, data []byte) {
	ogl.TextureSubImage2D(t.V, int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), ptr(data))
}

func (funcs) TexSubImage3D(target Enum, level, x, y, z, width, height, depth int, format, ty Enum, data []byte) {
	ogl.TexSubImage3D(uint32(target), int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth), uint32(format), uint32(ty), ptr(data))
}

func (funcs) TextureSubImage3D(t Texture, level, x, y, z, width, height, depth int, format, ty Enum, data []byte) {
	ogl.TextureSubImage3D(t.V, int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth), uint32(format), uint32(ty), ptr(data))
}

func (funcs) CompressedTexSubImage2D(target Enum, level, x, y, width, height int, format Enum, data []byte) {
	ogl.CompressedTexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), int32(len(data)), ptr(data))
}

func (funcs) CompressedTextureSubImage2D(t Texture, level, x, y, width, height int, format Enum, data []byte) {
	ogl.CompressedTextureSubImage2D(t.V, int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), int32(len(data)), ptr(data))
}

func (funcs) GetTexLevelParameteriv(target Enum, level int, pname Enum, data []int32) {
	ogl.GetTexLevelParameteriv(uint32(target), int32(level), uint32(pname), &data[0])
}

func (funcs) GetTexImage(target Enum, level int, format, ty Enum, data []byte) {
	ogl.GetTexImage(uint32(target), int32(level), uint32(format), uint32(ty), ptr(data))
}

func (funcs) GetnTexImage(target Enum, level int, format, ty Enum, data []byte) {
	ogl.GetnTexImage(uint32(target), int32(level), uint32(format), uint32(ty), int32(len(data)), ptr(data))
}

func (funcs) GetTextureImage(t Texture, level int, format, ty Enum, data []byte) {
	ogl.GetTextureImage(t.V, int32(level), uint32(format), uint32(ty), int32(len(data)), ptr(data))
}

func (funcs) GetTextureSubImage(t Texture, level, x, y, z, width, height, depth int, format, ty Enum, data []byte) {
	ogl.GetTextureSubImage(t.V, int32(level), int32(x), int32(y), int32(z), int32(width), int32(height), int32(depth), uint32(format), uint32(ty), int32(len(data)), ptr(data))
}

func (funcs) InvalidateTexImage(t Texture, level int) {
	ogl.InvalidateTexImage(t.V, int32(level))
}

func (funcs) CopyTexSubImage2D(target Enum, level, xoffset, yoffset, x, y, width, height int) {
	ogl.CopyTexSubImage2D(uint32(target), int32(level), int32(xoffset), int32(yoffset), int32(x), int32(y), int32(width), int32(height))
}

func (funcs) CopyTextureSubImage2D(t Texture, level, xoffset, yoffset, x, y, width, height int) {
	ogl.CopyTextureSubImage2D(t.V, int32(level), int32(xoffset), int32(yoffset), int32(x), int32(y), int32(width), int32(height))
}

func (funcs) CopyTextureSubImage3D(t Texture, level, xoffset, yoffset, zoffset, x, y, width, height int) {
	ogl.CopyTextureSubImage3D(t.V, int32(level), int32(xoffset), int32(yoffset), int32(zoffset), int32(x), int32(y), int32(width), int32(height))
}

func (funcs) GenBuffer() Buffer {
	var b uint32
	ogl.GenBuffers(1, &b)
	return Buffer{V: b}
}

func (funcs) CreateBuffer() Buffer {
	var b uint32
	ogl.CreateBuffers(1, &b)
	return Buffer{V: b}
}

func (funcs) DeleteBuffer(b Buffer) {
	ogl.DeleteBuffers(1, &b.V)
}

func (funcs) BindBuffer(target Enum, b Buffer) {
	ogl.BindBuffer(uint32(target), b.V)
}

func (funcs) BindBufferBase(target Enum, index int, b Buffer) {
	ogl.BindBufferBase(uint32(target), uint32(index), b.V)
}

func (funcs) BindBufferRange(target Enum, index int, b Buffer, offset, size int) {
	ogl.BindBufferRange(uint32(target), uint32(index), b.V, offset, size)
}

func (funcs) BufferData(target Enum, data []byte, usage Enum) {
	ogl.BufferData(uint32(target), len(data), ptr(data), uint32(usage))
}

func (funcs) NamedBufferData(b Buffer, data []byte, usage Enum) {
	ogl.NamedBufferData(b.V, len(data), ptr(data), uint32(usage))
}

func (funcs) BufferSubData(target Enum, offset int, data []byte) {
	ogl.BufferSubData(uint32(target), offset, len(data), ptr(data))
}

func (funcs) NamedBufferSubData(b Buffer, offset int, data []byte) {
	ogl.NamedBufferSubData(b.V, offset, len(data), ptr(data))
}

func (funcs) CopyBufferSubData(readTarget, writeTarget Enum, readOffset, writeOffset, size int) {
	ogl.CopyBufferSubData(uint32(readTarget), uint32(writeTarget), readOffset, writeOffset, size)
}

func (funcs) CopyNamedBufferSubData(src, dst Buffer, readOffset, writeOffset, size int) {
	ogl.CopyNamedBufferSubData(src.V, dst.V, readOffset, writeOffset, size)
}

func (funcs) MapBufferRange(target Enum, offset, length int, access Enum) []byte {
	p := ogl.MapBufferRange(uint32(target), offset, length, uint32(access))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

func (funcs) MapNamedBufferRange(b Buffer, offset, length int, access Enum) []byte {
	p := ogl.MapNamedBufferRange(b.V, offset, length, uint32(access))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), length)
}

func (funcs) UnmapBuffer(target Enum) bool {
	return ogl.UnmapBuffer(uint32(target))
}

func (funcs) UnmapNamedBuffer(b Buffer) bool {
	return ogl.UnmapNamedBuffer(b.V)
}

func (funcs) FlushMappedBufferRange(target Enum, offset, length int) {
	ogl.FlushMappedBufferRange(uint32(target), offset, length)
}

func (funcs) FlushMappedNamedBufferRange(b Buffer, offset, length int) {
	ogl.FlushMappedNamedBufferRange(b.V, offset, length)
}

func (funcs) GenFramebuffer() Framebuffer {
	var f uint32
	ogl.GenFramebuffers(1, &f)
	return Framebuffer{V: f}
}

func (funcs) CreateFramebuffer() Framebuffer {
	var f uint32
	ogl.CreateFramebuffers(1, &f)
	return Framebuffer{V: f}
}

func (funcs) DeleteFramebuffer(f Framebuffer) {
	ogl.DeleteFramebuffers(1, &f.V)
}

func (funcs) BindFramebuffer(target Enum, f Framebuffer) {
	ogl.BindFramebuffer(uint32(target), f.V)
}

func (funcs) CheckFramebufferStatus(target Enum) Enum {
	return Enum(ogl.CheckFramebufferStatus(uint32(target)))
}

func (funcs) CheckNamedFramebufferStatus(f Framebuffer, target Enum) Enum {
	return Enum(ogl.CheckNamedFramebufferStatus(f.V, uint32(target)))
}

func (funcs) DrawBuffer(buf Enum) {
	ogl.DrawBuffer(uint32(buf))
}

func (funcs) NamedFramebufferDrawBuffer(f Framebuffer, buf Enum) {
	ogl.NamedFramebufferDrawBuffer(f.V, uint32(buf))
}

func (funcs) DrawBuffers(bufs []Enum) {
	ids := enums(bufs)
	ogl.DrawBuffers(int32(len(ids)), &ids[0])
}

func (funcs) NamedFramebufferDrawBuffers(f Framebuffer, bufs []Enum) {
	ids := enums(bufs)
	ogl.NamedFramebufferDrawBuffers(f.V, int32(len(ids)), &ids[0])
}

func (funcs) ReadBuffer(src Enum) {
	ogl.ReadBuffer(uint32(src))
}

func (funcs) NamedFramebufferReadBuffer(f Framebuffer, src Enum) {
	ogl.NamedFramebufferReadBuffer(f.V, uint32(src))
}

func (funcs) InvalidateFramebuffer(target Enum, attachments []Enum) {
	ids := enums(attachments)
	ogl.InvalidateFramebuffer(uint32(target), int32(len(ids)), &ids[0])
}

func (funcs) InvalidateNamedFramebufferData(f Framebuffer, attachments []Enum) {
	ids := enums(attachments)
	ogl.InvalidateNamedFramebufferData(f.V, int32(len(ids)), &ids[0])
}

func (funcs) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask Enum, filter Enum) {
	ogl.BlitFramebuffer(int32(sx0), int32(sy0), int32(sx1), int32(sy1), int32(dx0), int32(dy0), int32(dx1), int32(dy1), uint32(mask), uint32(filter))
}

func (funcs) BlitNamedFramebuffer(read, draw Framebuffer, sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask Enum, filter Enum) {
	ogl.BlitNamedFramebuffer(read.V, draw.V, int32(sx0), int32(sy0), int32(sx1), int32(sy1), int32(dx0), int32(dy0), int32(dx1), int32(dy1), uint32(mask), uint32(filter))
}

func (funcs) FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int) {
	ogl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), t.V, int32(level))
}

func (funcs) NamedFramebufferTexture(f Framebuffer, attachment Enum, t Texture, level int) {
	ogl.NamedFramebufferTexture(f.V, uint32(attachment), t.V, int32(level))
}

func (funcs) FramebufferTextureLayer(target, attachment Enum, t Texture, level, layer int) {
	ogl.FramebufferTextureLayer(uint32(target), uint32(attachment), t.V, int32(level), int32(layer))
}

func (funcs) NamedFramebufferTextureLayer(f Framebuffer, attachment Enum, t Texture, level, layer int) {
	ogl.NamedFramebufferTextureLayer(f.V, uint32(attachment), t.V, int32(level), int32(layer))
}

func (funcs) FramebufferRenderbuffer(target, attachment, rbTarget Enum, r Renderbuffer) {
	ogl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(rbTarget), r.V)
}

func (funcs) NamedFramebufferRenderbuffer(f Framebuffer, attachment, rbTarget Enum, r Renderbuffer) {
	ogl.NamedFramebufferRenderbuffer(f.V, uint32(attachment), uint32(rbTarget), r.V)
}

func (funcs) ClearBufferfv(buffer Enum, drawBuffer int, values []float32) {
	ogl.ClearBufferfv(uint32(buffer), int32(drawBuffer), &values[0])
}

func (funcs) ClearNamedFramebufferfv(f Framebuffer, buffer Enum, drawBuffer int, values []float32) {
	ogl.ClearNamedFramebufferfv(f.V, uint32(buffer), int32(drawBuffer), &values[0])
}

func (funcs) ClearBufferiv(buffer Enum, drawBuffer int, values []int32) {
	ogl.ClearBufferiv(uint32(buffer), int32(drawBuffer), &values[0])
}

func (funcs) ClearNamedFramebufferiv(f Framebuffer, buffer Enum, drawBuffer int, values []int32) {
	ogl.ClearNamedFramebufferiv(f.V, uint32(buffer), int32(drawBuffer), &values[0])
}

func (funcs) ClearBufferuiv(buffer Enum, drawBuffer int, values []uint32) {
	ogl.ClearBufferuiv(uint32(buffer), int32(drawBuffer), &values[0])
}

func (funcs) ClearNamedFramebufferuiv(f Framebuffer, buffer Enum, drawBuffer int, values []uint32) {
	ogl.ClearNamedFramebufferuiv(f.V, uint32(buffer), int32(drawBuffer), &values[0])
}

func (funcs) ReadPixels(x, y, width, height int, format, ty Enum, data []byte) {
	ogl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), ptr(data))
}

func (funcs) ReadnPixels(x, y, width, height int, format, ty Enum, data []byte) {
	ogl.ReadnPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), int32(len(data)), ptr(data))
}

func (funcs) GenRenderbuffer() Renderbuffer {
	var r uint32
	ogl.GenRenderbuffers(1, &r)
	return Renderbuffer{V: r}
}

func (funcs) CreateRenderbuffer() Renderbuffer {
	var r uint32
	ogl.CreateRenderbuffers(1, &r)
	return Renderbuffer{V: r}
}

func (funcs) DeleteRenderbuffer(r Renderbuffer) {
	ogl.DeleteRenderbuffers(1, &r.V)
}

func (funcs) BindRenderbuffer(target Enum, r Renderbuffer) {
	ogl.BindRenderbuffer(uint32(target), r.V)
}

func (funcs) RenderbufferStorage(target, internalFormat Enum, width, height int) {
	ogl.RenderbufferStorage(uint32(target), uint32(internalFormat), int32(width), int32(height))
}

func (funcs) NamedRenderbufferStorage(r Renderbuffer, internalFormat Enum, width, height int) {
	ogl.NamedRenderbufferStorage(r.V, uint32(internalFormat), int32(width), int32(height))
}

func (funcs) RenderbufferStorageMultisample(target Enum, samples int, internalFormat Enum, width, height int) {
	ogl.RenderbufferStorageMultisample(uint32(target), int32(samples), uint32(internalFormat), int32(width), int32(height))
}

func (funcs) NamedRenderbufferStorageMultisample(r Renderbuffer, samples int, internalFormat Enum, width, height int) {
	ogl.NamedRenderbufferStorageMultisample(r.V, int32(samples), uint32(internalFormat), int32(width), int32(height))
}

func (funcs) GenVertexArray() VertexArray {
	var a uint32
	ogl.GenVertexArrays(1, &a)
	return VertexArray{V: a}
}

func (funcs) CreateVertexArray() VertexArray {
	var a uint32
	ogl.CreateVertexArrays(1, &a)
	return VertexArray{V: a}
}

func (funcs) DeleteVertexArray(a VertexArray) {
	ogl.DeleteVertexArrays(1, &a.V)
}

func (funcs) BindVertexArray(a VertexArray) {
	ogl.BindVertexArray(a.V)
}

func (funcs) EnableVertexAttribArray(a Attrib) {
	ogl.EnableVertexAttribArray(uint32(a))
}

func (funcs) EnableVertexArrayAttrib(va VertexArray, a Attrib) {
	ogl.EnableVertexArrayAttrib(va.V, uint32(a))
}

func (funcs) DisableVertexAttribArray(a Attrib) {
	ogl.DisableVertexAttribArray(uint32(a))
}

func (funcs) DisableVertexArrayAttrib(va VertexArray, a Attrib) {
	ogl.DisableVertexArrayAttrib(va.V, uint32(a))
}

func (funcs) VertexAttribPointer(a Attrib, size int, ty Enum, normalized bool, stride, offset int) {
	ogl.VertexAttribPointerWithOffset(uint32(a), int32(size), uint32(ty), normalized, int32(stride), uintptr(offset))
}

func (funcs) VertexAttribIPointer(a Attrib, size int, ty Enum, stride, offset int) {
	ogl.VertexAttribIPointerWithOffset(uint32(a), int32(size), uint32(ty), int32(stride), uintptr(offset))
}

func (funcs) VertexArrayVertexBuffer(va VertexArray, binding int, b Buffer, offset, stride int) {
	ogl.VertexArrayVertexBuffer(va.V, uint32(binding), b.V, offset, int32(stride))
}

func (funcs) VertexArrayAttribFormat(va VertexArray, a Attrib, size int, ty Enum, normalized bool, relativeOffset int) {
	ogl.VertexArrayAttribFormat(va.V, uint32(a), int32(size), uint32(ty), normalized, uint32(relativeOffset))
}

func (funcs) VertexArrayAttribIFormat(va VertexArray, a Attrib, size int, ty Enum, relativeOffset int) {
	ogl.VertexArrayAttribIFormat(va.V, uint32(a), int32(size), uint32(ty), uint32(relativeOffset))
}

func (funcs) VertexArrayAttribBinding(va VertexArray, a Attrib, binding int) {
	ogl.VertexArrayAttribBinding(va.V, uint32(a), uint32(binding))
}

func (funcs) VertexArrayElementBuffer(va VertexArray, b Buffer) {
	ogl.VertexArrayElementBuffer(va.V, b.V)
}

func (funcs) VertexAttribDivisor(a Attrib, divisor int) {
	ogl.VertexAttribDivisor(uint32(a), uint32(divisor))
}

func (f funcs) VertexAttribDivisorANGLE(a Attrib, divisor int) {
	f.VertexAttribDivisor(a, divisor)
}

func (f funcs) VertexAttribDivisorEXT(a Attrib, divisor int) {
	f.VertexAttribDivisor(a, divisor)
}

func (f funcs) VertexAttribDivisorNV(a Attrib, divisor int) {
	f.VertexAttribDivisor(a, divisor)
}

func (funcs) DrawArrays(mode Enum, first, count int) {
	ogl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (funcs) DrawElements(mode Enum, count int, ty Enum, offset int) {
	ogl.DrawElementsWithOffset(uint32(mode), int32(count), uint32(ty), uintptr(offset))
}

func (funcs) DrawArraysInstanced(mode Enum, first, count, instanceCount int) {
	ogl.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instanceCount))
}

func (f funcs) DrawArraysInstancedANGLE(mode Enum, first, count, instanceCount int) {
	f.DrawArraysInstanced(mode, first, count, instanceCount)
}

func (f funcs) DrawArraysInstancedEXT(mode Enum, first, count, instanceCount int) {
	f.DrawArraysInstanced(mode, first, count, instanceCount)
}

func (f funcs) DrawArraysInstancedNV(mode Enum, first, count, instanceCount int) {
	f.DrawArraysInstanced(mode, first, count, instanceCount)
}

func (funcs) DrawArraysInstancedBaseInstance(mode Enum, first, count, instanceCount, baseInstance int) {
	ogl.DrawArraysInstancedBaseInstance(uint32(mode), int32(first), int32(count), int32(instanceCount), uint32(baseInstance))
}

func (funcs) DrawElementsInstanced(mode Enum, count int, ty Enum, offset, instanceCount int) {
	ogl.DrawElementsInstanced(uint32(mode), int32(count), uint32(ty), ogl.PtrOffset(offset), int32(instanceCount))
}

func (f funcs) DrawElementsInstancedANGLE(mode Enum, count int, ty Enum, offset, instanceCount int) {
	f.DrawElementsInstanced(mode, count, ty, offset, instanceCount)
}

func (f funcs) DrawElementsInstancedEXT(mode Enum, count int, ty Enum, offset, instanceCount int) {
	f.DrawElementsInstanced(mode, count, ty, offset, instanceCount)
}

func (f funcs) DrawElementsInstancedNV(mode Enum, count int, ty Enum, offset, instanceCount int) {
	f.DrawElementsInstanced(mode, count, ty, offset, instanceCount)
}

func (funcs) DrawElementsBaseVertex(mode Enum, count int, ty Enum, offset, baseVertex int) {
	ogl.DrawElementsBaseVertex(uint32(mode), int32(count), uint32(ty), ogl.PtrOffset(offset), int32(baseVertex))
}

func (funcs) DrawElementsInstancedBaseVertex(mode Enum, count int, ty Enum, offset, instanceCount, baseVertex int) {
	ogl.DrawElementsInstancedBaseVertex(uint32(mode), int32(count), uint32(ty), ogl.PtrOffset(offset), int32(instanceCount), int32(baseVertex))
}

func (funcs) DrawElementsInstancedBaseVertexBaseInstance(mode Enum, count int, ty Enum, offset, instanceCount, baseVertex, baseInstance int) {
	ogl.DrawElementsInstancedBaseVertexBaseInstance(uint32(mode), int32(count), uint32(ty), ogl.PtrOffset(offset), int32(instanceCount), int32(baseVertex), uint32(baseInstance))
}

func (funcs) MultiDrawArrays(mode Enum, firsts, counts []int32) {
	ogl.MultiDrawArrays(uint32(mode), &firsts[0], &counts[0], int32(len(firsts)))
}

func (funcs) MultiDrawElements(mode Enum, counts []int32, ty Enum, offsets []int) {
	indices := make([]unsafe.Pointer, len(offsets))
	for i, off := range offsets {
		indices[i] = ogl.PtrOffset(off)
	}
	ogl.MultiDrawElements(uint32(mode), &counts[0], uint32(ty), &indices[0], int32(len(counts)))
}

func (funcs) CreateShader(ty Enum) Shader {
	return Shader{V: ogl.CreateShader(uint32(ty))}
}

func (funcs) DeleteShader(s Shader) {
	ogl.DeleteShader(s.V)
}

func (funcs) ShaderSource(s Shader, src string) {
	cstrs, free := ogl.Strs(src + "\x00")
	defer free()
	ogl.ShaderSource(s.V, 1, cstrs, nil)
}

func (funcs) CompileShader(s Shader) {
	ogl.CompileShader(s.V)
}

func (funcs) GetShaderi(s Shader, pname Enum) int {
	var v int32
	ogl.GetShaderiv(s.V, uint32(pname), &v)
	return int(v)
}

func (funcs) GetShaderInfoLog(s Shader) string {
	var length int32
	ogl.GetShaderiv(s.V, ogl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	buf := make([]byte, length)
	ogl.GetShaderInfoLog(s.V, length, nil, &buf[0])
	return string(buf[:length-1])
}

func (funcs) AttachShader(p Program, s Shader) {
	ogl.AttachShader(p.V, s.V)
}

func (funcs) DetachShader(p Program, s Shader) {
	ogl.DetachShader(p.V, s.V)
}

func (funcs) CreateProgram() Program {
	return Program{V: ogl.CreateProgram()}
}

func (funcs) DeleteProgram(p Program) {
	ogl.DeleteProgram(p.V)
}

func (funcs) LinkProgram(p Program) {
	ogl.LinkProgram(p.V)
}

func (funcs) UseProgram(p Program) {
	ogl.UseProgram(p.V)
}

func (funcs) GetProgrami(p Program, pname Enum) int {
	var v int32
	ogl.GetProgramiv(p.V, uint32(pname), &v)
	return int(v)
}

func (funcs) GetProgramInfoLog(p Program) string {
	var length int32
	ogl.GetProgramiv(p.V, ogl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return ""
	}
	buf := make([]byte, length)
	ogl.GetProgramInfoLog(p.V, length, nil, &buf[0])
	return string(buf[:length-1])
}

func (funcs) GetUniformLocation(p Program, name string) Uniform {
	return Uniform{V: ogl.GetUniformLocation(p.V, ogl.Str(name+"\x00"))}
}

func (funcs) Uniform1f(dst Uniform, v float32) {
	ogl.Uniform1f(dst.V, v)
}

func (funcs) Uniform1i(dst Uniform, v int) {
	ogl.Uniform1i(dst.V, int32(v))
}

func (funcs) Uniform4fv(dst Uniform, values []float32) {
	ogl.Uniform4fv(dst.V, int32(len(values)/4), &values[0])
}

func (funcs) UniformMatrix4fv(dst Uniform, values []float32) {
	ogl.UniformMatrix4fv(dst.V, int32(len(values)/16), false, &values[0])
}

func (funcs) ProgramUniform1f(p Program, dst Uniform, v float32) {
	ogl.ProgramUniform1f(p.V, dst.V, v)
}

func (funcs) ProgramUniform1i(p Program, dst Uniform, v int) {
	ogl.ProgramUniform1i(p.V, dst.V, int32(v))
}

func (funcs) ProgramUniform4fv(p Program, dst Uniform, values []float32) {
	ogl.ProgramUniform4fv(p.V, dst.V, int32(len(values)/4), &values[0])
}

func (funcs) ProgramUniformMatrix4fv(p Program, dst Uniform, values []float32) {
	ogl.ProgramUniformMatrix4fv(p.V, dst.V, int32(len(values)/16), false, &values[0])
}

func (f funcs) ProgramUniform1fEXT(p Program, dst Uniform, v float32) {
	f.ProgramUniform1f(p, dst, v)
}

func (f funcs) ProgramUniform1iEXT(p Program, dst Uniform, v int) {
	f.ProgramUniform1i(p, dst, v)
}

func (f funcs) ProgramUniform4fvEXT(p Program, dst Uniform, values []float32) {
	f.ProgramUniform4fv(p, dst, values)
}

func (f funcs) ProgramUniformMatrix4fvEXT(p Program, dst Uniform, values []float32) {
	f.ProgramUniformMatrix4fv(p, dst, values)
}

func (funcs) TransformFeedbackVaryings(p Program, varyings []string, bufferMode Enum) {
	cstrs, free := ogl.Strs(terminate(varyings)...)
	defer free()
	ogl.TransformFeedbackVaryings(p.V, int32(len(varyings)), cstrs, uint32(bufferMode))
}

func (funcs) PixelStorei(pname Enum, param int) {
	ogl.PixelStorei(uint32(pname), int32(param))
}

func (funcs) LineWidth(width float32) {
	ogl.LineWidth(width)
}

func (funcs) ClearDepth(d float64) {
	ogl.ClearDepth(d)
}

func (funcs) ClearDepthf(d float32) {
	ogl.ClearDepthf(d)
}

func (funcs) MinSampleShading(value float32) {
	ogl.MinSampleShading(value)
}

func (f funcs) MinSampleShadingOES(value float32) {
	f.MinSampleShading(value)
}

func (funcs) GetGraphicsResetStatus() Enum {
	return Enum(ogl.GetGraphicsResetStatus())
}

func (funcs) GenTransformFeedback() TransformFeedback {
	var t uint32
	ogl.GenTransformFeedbacks(1, &t)
	return TransformFeedback{V: t}
}

func (funcs) CreateTransformFeedback() TransformFeedback {
	var t uint32
	ogl.CreateTransformFeedbacks(1, &t)
	return TransformFeedback{V: t}
}

func (funcs) DeleteTransformFeedback(t TransformFeedback) {
	ogl.DeleteTransformFeedbacks(1, &t.V)
}

func (funcs) BindTransformFeedback(target Enum, t TransformFeedback) {
	ogl.BindTransformFeedback(uint32(target), t.V)
}

func (funcs) TransformFeedbackBufferBase(t TransformFeedback, index int, b Buffer) {
	ogl.TransformFeedbackBufferBase(t.V, uint32(index), b.V)
}

func (funcs) TransformFeedbackBufferRange(t TransformFeedback, index int, b Buffer, offset, size int) {
	ogl.TransformFeedbackBufferRange(t.V, uint32(index), b.V, offset, size)
}

func (funcs) BeginTransformFeedback(mode Enum) {
	ogl.BeginTransformFeedback(uint32(mode))
}

func (funcs) EndTransformFeedback() {
	ogl.EndTransformFeedback()
}

func enums(vals []Enum) []uint32 {
	ids := make([]uint32, len(vals))
	for i, v := range vals {
		ids[i] = uint32(v)
	}
	return ids
}

func terminate(strs []string) []string {
	out := make([]string, len(strs))
	for i, s := range strs {
		out[i] = s + "\x00"
	}
	return out
}
