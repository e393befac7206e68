// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

type textureBinding struct {
	target gl.Enum
	id     uint32
}

type textureState struct {
	maxUnits    int
	currentUnit int
	bindings    []textureBinding

	create           func(c *Context, target gl.Enum) gl.Texture
	bind             func(c *Context, unit int, t *Texture)
	unbind           func(c *Context, unit int, target gl.Enum)
	bindMulti        func(c *Context, first int, textures []*Texture)
	parameteri       func(c *Context, t *Texture, pname gl.Enum, v int)
	parameterf       func(c *Context, t *Texture, pname gl.Enum, v float32)
	setMaxAnisotropy func(c *Context, t *Texture, v float32)
	generateMipmap   func(c *Context, t *Texture)

	storage2D  func(c *Context, t *Texture, levels int, internalFormat gl.Enum, width, height int)
	storage3D  func(c *Context, t *Texture, levels int, internalFormat gl.Enum, width, height, depth int)
	subImage2D func(c *Context, t *Texture, level, x, y, width, height int, format, ty gl.Enum, data []byte)
	subImage3D func(c *Context, t *Texture, level, x, y, z, width, height, depth int, format, ty gl.Enum, data []byte)

	compressedSubImage2D func(c *Context, t *Texture, level, x, y, width, height int, format gl.Enum, data []byte)

	// Cube map operations have their own slots so driver workarounds
	// can divert them without touching the regular texture paths.
	cubeSubImage   func(c *Context, t *CubeMapTexture, face, level, x, y, width, height int, format, ty gl.Enum, data []byte)
	cubeSubImage3D func(c *Context, t *CubeMapTexture, level int, width, height int, format, ty gl.Enum, data []byte)
	getCubeImage   func(c *Context, t *CubeMapTexture, face, level int, format, ty gl.Enum, data []byte)

	getImage                        func(c *Context, t *Texture, level int, format, ty gl.Enum, data []byte)
	getLevelCompressedImageSize     func(c *Context, t *Texture, level int) int
	getCubeLevelCompressedImageSize func(c *Context, t *CubeMapTexture, level int) int
	getCompressedCubeImage          func(c *Context, t *CubeMapTexture, level int, faceSize int, data []byte)

	invalidateImage func(c *Context, t *Texture, level int)
}

func (s *textureState) init(c *Context, extensions []string) {
	s.maxUnits = c.funcs.GetInteger(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS)
	if s.maxUnits < 1 {
		s.maxUnits = 1
	}
	s.bindings = make([]textureBinding, s.maxUnits)

	dsa := !c.profile.ES() && c.IsExtensionSupported(ARBDirectStateAccess)

	// Binding.
	switch {
	case dsa:
		record(extensions, ARBDirectStateAccess)
		s.create = textureCreateImplementationDSA
		s.bind = textureBindImplementationDSA
		s.unbind = textureUnbindImplementationDSA
		if c.detectedDriver&DriverIntelWindows != 0 &&
			!c.isDriverWorkaroundDisabled("intel-windows-half-baked-dsa-texture-bind") {
			s.unbind = textureUnbindImplementationDefault
		}
	case !c.profile.ES() && c.IsExtensionSupported(ARBMultiBind):
		record(extensions, ARBMultiBind)
		s.create = textureCreateImplementationDefault
		s.bind = textureBindImplementationMulti
		s.unbind = textureUnbindImplementationMulti
	default:
		s.create = textureCreateImplementationDefault
		s.bind = textureBindImplementationDefault
		s.unbind = textureUnbindImplementationDefault
	}
	if !c.profile.ES() && c.IsExtensionSupported(ARBMultiBind) {
		record(extensions, ARBMultiBind)
		s.bindMulti = textureBindMultiImplementationMultiBind
	} else {
		s.bindMulti = textureBindMultiImplementationFallback
	}

	// Cube maps keep DSA only when the driver can be trusted with it.
	cubeDSA := dsa
	if dsa && c.detectedDriver&DriverIntelWindows != 0 &&
		!c.isDriverWorkaroundDisabled("intel-windows-broken-dsa-for-cubemaps") {
		cubeDSA = false
	}

	// Parameters and mipmaps.
	if dsa {
		s.parameteri = textureParameteriImplementationDSA
		s.parameterf = textureParameterfImplementationDSA
		s.generateMipmap = textureGenerateMipmapImplementationDSA
	} else {
		s.parameteri = textureParameteriImplementationDefault
		s.parameterf = textureParameterfImplementationDefault
		if c.profile.ES() || c.IsExtensionSupported(ARBFramebufferObject) {
			if !c.profile.ES() {
				record(extensions, ARBFramebufferObject)
			}
			s.generateMipmap = textureGenerateMipmapImplementationDefault
		}
	}

	// Anisotropic filtering degrades to a no-op instead of a missing
	// feature: filtering quality is not worth a hard failure.
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBTextureFilterAnisotropic):
		record(extensions, ARBTextureFilterAnisotropic)
		s.setMaxAnisotropy = textureSetMaxAnisotropyImplementationArb
	case c.IsExtensionSupported(EXTTextureFilterAnisotropic):
		record(extensions, EXTTextureFilterAnisotropic)
		s.setMaxAnisotropy = textureSetMaxAnisotropyImplementationExt
	default:
		s.setMaxAnisotropy = textureSetMaxAnisotropyImplementationNoOp
	}

	// Immutable storage.
	storage := false
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBTextureStorage):
		record(extensions, ARBTextureStorage)
		storage = true
	case c.profile.ES() && c.IsVersionSupported(GLES300):
		storage = true
	case c.profile.ES() && c.IsExtensionSupported(EXTTextureStorage):
		record(extensions, EXTTextureStorage)
		storage = true
	}
	if storage {
		if dsa {
			s.storage2D = textureStorage2DImplementationDSA
			s.storage3D = textureStorage3DImplementationDSA
		} else {
			s.storage2D = textureStorage2DImplementationDefault
			s.storage3D = textureStorage3DImplementationDefault
		}
	}

	// Uploads.
	if dsa {
		s.subImage2D = textureSubImage2DImplementationDSA
		s.subImage3D = textureSubImage3DImplementationDSA
		s.compressedSubImage2D = textureCompressedSubImage2DImplementationDSA
	} else {
		s.subImage2D = textureSubImage2DImplementationDefault
		s.subImage3D = textureSubImage3DImplementationDefault
		s.compressedSubImage2D = textureCompressedSubImage2DImplementationDefault
	}
	if c.detectedDriver&DriverSvga3D != 0 &&
		!c.isDriverWorkaroundDisabled("svga3d-texture-upload-slice-by-slice") {
		s.subImage3D = textureSubImage3DImplementationSliceBySlice
	}

	if cubeDSA {
		s.cubeSubImage = textureCubeSubImageImplementationDSA
		s.cubeSubImage3D = textureCubeSubImage3DImplementationDSA
		if c.detectedDriver&DriverAmd != 0 && c.osName == "windows" &&
			!c.isDriverWorkaroundDisabled("amd-windows-cubemap-image3d-slice-by-slice") {
			s.cubeSubImage3D = textureCubeSubImage3DImplementationSliceBySlice
		}
	} else {
		s.cubeSubImage = textureCubeSubImageImplementationDefault
		s.cubeSubImage3D = textureCubeSubImage3DImplementationDefault
	}

	// Image queries exist on desktop GL only.
	if !c.profile.ES() {
		switch {
		case dsa:
			s.getImage = textureGetImageImplementationDSA
		case c.IsExtensionSupported(ARBRobustness):
			record(extensions, ARBRobustness)
			s.getImage = textureGetImageImplementationRobustness
		default:
			s.getImage = textureGetImageImplementationDefault
		}

		switch {
		case c.IsExtensionSupported(ARBGetTextureSubImage):
			record(extensions, ARBGetTextureSubImage)
			s.getCubeImage = textureGetCubeImageImplementationDSA
		case c.IsExtensionSupported(ARBRobustness):
			record(extensions, ARBRobustness)
			s.getCubeImage = textureGetCubeImageImplementationRobustness
		default:
			s.getCubeImage = textureGetCubeImageImplementationDefault
		}

		s.getLevelCompressedImageSize = textureGetLevelCompressedImageSizeImplementationDefault
		s.getCubeLevelCompressedImageSize = textureGetCubeLevelCompressedImageSizeImplementationDefault
		if c.detectedDriver&DriverNVidia != 0 {
			if !c.isDriverWorkaroundDisabled("nv-compressed-block-size-in-bits") {
				s.getLevelCompressedImageSize = textureGetLevelCompressedImageSizeImplementationNVidia
			}
			if !c.isDriverWorkaroundDisabled("nv-cubemap-inconsistent-compressed-image-size") {
				s.getCubeLevelCompressedImageSize = textureGetCubeLevelCompressedImageSizeImplementationNVidia
			}
		}

		if cubeDSA && !(c.detectedDriver&DriverNVidia != 0 &&
			!c.isDriverWorkaroundDisabled("nv-cubemap-broken-full-compressed-image-query")) {
			s.getCompressedCubeImage = textureGetCompressedCubeImageImplementationDSA
		} else {
			s.getCompressedCubeImage = textureGetCompressedCubeImageImplementationFaceByFace
		}
	}

	// Storage invalidation is advisory, absence degrades to a no-op.
	if !c.profile.ES() && c.IsExtensionSupported(ARBInvalidateSubdata) {
		record(extensions, ARBInvalidateSubdata)
		s.invalidateImage = textureInvalidateImageImplementationARB
	} else {
		s.invalidateImage = textureInvalidateImageImplementationNoOp
	}

	s.reset()
}

func (s *textureState) reset() {
	s.currentUnit = -1
	for i := range s.bindings {
		s.bindings[i] = textureBinding{id: disengagedBinding}
	}
}

// setUnitInternal makes unit active, eliding the call when the cache
// already agrees.
func (s *textureState) setUnitInternal(c *Context, unit int) {
	if s.currentUnit == unit {
		return
	}
	s.currentUnit = unit
	c.funcs.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
}

// bindInternal binds t to the current unit so a bind-to-edit
// implementation can operate on it.
func (s *textureState) bindInternal(c *Context, t *Texture) {
	unit := s.currentUnit
	if unit < 0 {
		unit = 0
	}
	cell := &s.bindings[unit]
	if cell.id == t.texture.V && cell.target == t.target {
		return
	}
	s.setUnitInternal(c, unit)
	*cell = textureBinding{target: t.target, id: t.texture.V}
	c.funcs.BindTexture(t.target, t.texture)
}

func textureCreateImplementationDefault(c *Context, target gl.Enum) gl.Texture {
	return c.funcs.GenTexture()
}

func textureCreateImplementationDSA(c *Context, target gl.Enum) gl.Texture {
	return c.funcs.CreateTexture(target)
}

func textureBindImplementationDefault(c *Context, unit int, t *Texture) {
	cell := &c.state.texture.bindings[unit]
	if cell.id == t.texture.V && cell.target == t.target {
		return
	}
	c.state.texture.setUnitInternal(c, unit)
	*cell = textureBinding{target: t.target, id: t.texture.V}
	c.funcs.BindTexture(t.target, t.texture)
}

func textureBindImplementationMulti(c *Context, unit int, t *Texture) {
	cell := &c.state.texture.bindings[unit]
	if cell.id == t.texture.V {
		return
	}
	*cell = textureBinding{target: t.target, id: t.texture.V}
	c.funcs.BindTextures(unit, []gl.Texture{t.texture})
}

func textureBindImplementationDSA(c *Context, unit int, t *Texture) {
	cell := &c.state.texture.bindings[unit]
	if cell.id == t.texture.V {
		return
	}
	*cell = textureBinding{target: t.target, id: t.texture.V}
	c.funcs.BindTextureUnit(unit, t.texture)
}

func textureUnbindImplementationDefault(c *Context, unit int, target gl.Enum) {
	cell := &c.state.texture.bindings[unit]
	if cell.id == 0 {
		return
	}
	c.state.texture.setUnitInternal(c, unit)
	*cell = textureBinding{target: target}
	c.funcs.BindTexture(target, gl.Texture{})
}

func textureUnbindImplementationMulti(c *Context, unit int, target gl.Enum) {
	cell := &c.state.texture.bindings[unit]
	if cell.id == 0 {
		return
	}
	*cell = textureBinding{target: target}
	c.funcs.BindTextures(unit, []gl.Texture{{}})
}

func textureUnbindImplementationDSA(c *Context, unit int, target gl.Enum) {
	cell := &c.state.texture.bindings[unit]
	if cell.id == 0 {
		return
	}
	*cell = textureBinding{target: target}
	c.funcs.BindTextureUnit(unit, gl.Texture{})
}

func textureBindMultiImplementationMultiBind(c *Context, first int, textures []*Texture) {
	handles := make([]gl.Texture, len(textures))
	for i, t := range textures {
		cell := &c.state.texture.bindings[first+i]
		if t == nil {
			*cell = textureBinding{target: cell.target}
			continue
		}
		handles[i] = t.texture
		*cell = textureBinding{target: t.target, id: t.texture.V}
	}
	c.funcs.BindTextures(first, handles)
}

func textureBindMultiImplementationFallback(c *Context, first int, textures []*Texture) {
	s := &c.state.texture
	for i, t := range textures {
		if t == nil {
			target := s.bindings[first+i].target
			if target == 0 {
				target = gl.TEXTURE_2D
			}
			s.unbind(c, first+i, target)
			continue
		}
		s.bind(c, first+i, t)
	}
}

func textureParameteriImplementationDefault(c *Context, t *Texture, pname gl.Enum, v int) {
	c.state.texture.bindInternal(c, t)
	c.funcs.TexParameteri(t.target, pname, v)
}

func textureParameteriImplementationDSA(c *Context, t *Texture, pname gl.Enum, v int) {
	c.funcs.TextureParameteri(t.texture, pname, v)
}

func textureParameterfImplementationDefault(c *Context, t *Texture, pname gl.Enum, v float32) {
	c.state.texture.bindInternal(c, t)
	c.funcs.TexParameterf(t.target, pname, v)
}

func textureParameterfImplementationDSA(c *Context, t *Texture, pname gl.Enum, v float32) {
	c.funcs.TextureParameterf(t.texture, pname, v)
}

func textureSetMaxAnisotropyImplementationArb(c *Context, t *Texture, v float32) {
	c.state.texture.parameterf(c, t, gl.TEXTURE_MAX_ANISOTROPY, v)
}

func textureSetMaxAnisotropyImplementationExt(c *Context, t *Texture, v float32) {
	c.state.texture.parameterf(c, t, gl.TEXTURE_MAX_ANISOTROPY, v)
}

func textureSetMaxAnisotropyImplementationNoOp(*Context, *Texture, float32) {}

func textureGenerateMipmapImplementationDefault(c *Context, t *Texture) {
	c.state.texture.bindInternal(c, t)
	c.funcs.GenerateMipmap(t.target)
}

func textureGenerateMipmapImplementationDSA(c *Context, t *Texture) {
	c.funcs.GenerateTextureMipmap(t.texture)
}

func textureStorage2DImplementationDefault(c *Context, t *Texture, levels int, internalFormat gl.Enum, width, height int) {
	c.state.texture.bindInternal(c, t)
	c.funcs.TexStorage2D(t.target, levels, internalFormat, width, height)
}

func textureStorage2DImplementationDSA(c *Context, t *Texture, levels int, internalFormat gl.Enum, width, height int) {
	c.funcs.TextureStorage2D(t.texture, levels, internalFormat, width, height)
}

func textureStorage3DImplementationDefault(c *Context, t *Texture, levels int, internalFormat gl.Enum, width, height, depth int) {
	c.state.texture.bindInternal(c, t)
	c.funcs.TexStorage3D(t.target, levels, internalFormat, width, height, depth)
}

func textureStorage3DImplementationDSA(c *Context, t *Texture, levels int, internalFormat gl.Enum, width, height, depth int) {
	c.funcs.TextureStorage3D(t.texture, levels, internalFormat, width, height, depth)
}

func textureSubImage2DImplementationDefault(c *Context, t *Texture, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	c.state.texture.bindInternal(c, t)
	c.funcs.TexSubImage2D(t.target, level, x, y, width, height, format, ty, data)
}

func textureSubImage2DImplementationDSA(c *Context, t *Texture, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	c.funcs.TextureSubImage2D(t.texture, level, x, y, width, height, format, ty, data)
}

func textureSubImage3DImplementationDefault(c *Context, t *Texture, level, x, y, z, width, height, depth int, format, ty gl.Enum, data []byte) {
	c.state.texture.bindInternal(c, t)
	c.funcs.TexSubImage3D(t.target, level, x, y, z, width, height, depth, format, ty, data)
}

func textureSubImage3DImplementationDSA(c *Context, t *Texture, level, x, y, z, width, height, depth int, format, ty gl.Enum, data []byte) {
	c.funcs.TextureSubImage3D(t.texture, level, x, y, z, width, height, depth, format, ty, data)
}

func textureSubImage3DImplementationSliceBySlice(c *Context, t *Texture, level, x, y, z, width, height, depth int, format, ty gl.Enum, data []byte) {
	if depth == 0 {
		return
	}
	stride := len(data) / depth
	for i := 0; i < depth; i++ {
		textureSubImage3DImplementationDefault(c, t, level, x, y, z+i, width, height, 1, format, ty, data[i*stride:(i+1)*stride])
	}
}

func textureCompressedSubImage2DImplementationDefault(c *Context, t *Texture, level, x, y, width, height int, format gl.Enum, data []byte) {
	c.state.texture.bindInternal(c, t)
	c.funcs.CompressedTexSubImage2D(t.target, level, x, y, width, height, format, data)
}

func textureCompressedSubImage2DImplementationDSA(c *Context, t *Texture, level, x, y, width, height int, format gl.Enum, data []byte) {
	c.funcs.CompressedTextureSubImage2D(t.texture, level, x, y, width, height, format, data)
}

func cubeFaceTarget(face int) gl.Enum {
	return gl.TEXTURE_CUBE_MAP_POSITIVE_X + gl.Enum(face)
}

func textureCubeSubImageImplementationDefault(c *Context, t *CubeMapTexture, face, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	c.state.texture.bindInternal(c, &t.Texture)
	c.funcs.TexSubImage2D(cubeFaceTarget(face), level, x, y, width, height, format, ty, data)
}

func textureCubeSubImageImplementationDSA(c *Context, t *CubeMapTexture, face, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	c.funcs.TextureSubImage3D(t.texture, level, x, y, face, width, height, 1, format, ty, data)
}

func textureCubeSubImage3DImplementationDefault(c *Context, t *CubeMapTexture, level int, width, height int, format, ty gl.Enum, data []byte) {
	stride := len(data) / 6
	for face := 0; face < 6; face++ {
		textureCubeSubImageImplementationDefault(c, t, face, level, 0, 0, width, height, format, ty, data[face*stride:(face+1)*stride])
	}
}

func textureCubeSubImage3DImplementationDSA(c *Context, t *CubeMapTexture, level int, width, height int, format, ty gl.Enum, data []byte) {
	c.funcs.TextureSubImage3D(t.texture, level, 0, 0, 0, width, height, 6, format, ty, data)
}

func textureCubeSubImage3DImplementationSliceBySlice(c *Context, t *CubeMapTexture, level int, width, height int, format, ty gl.Enum, data []byte) {
	stride := len(data) / 6
	for face := 0; face < 6; face++ {
		c.funcs.TextureSubImage3D(t.texture, level, 0, 0, face, width, height, 1, format, ty, data[face*stride:(face+1)*stride])
	}
}

func textureGetImageImplementationDefault(c *Context, t *Texture, level int, format, ty gl.Enum, data []byte) {
	c.state.texture.bindInternal(c, t)
	c.funcs.GetTexImage(t.target, level, format, ty, data)
}

func textureGetImageImplementationRobustness(c *Context, t *Texture, level int, format, ty gl.Enum, data []byte) {
	c.state.texture.bindInternal(c, t)
	c.funcs.GetnTexImage(t.target, level, format, ty, data)
}

func textureGetImageImplementationDSA(c *Context, t *Texture, level int, format, ty gl.Enum, data []byte) {
	c.funcs.GetTextureImage(t.texture, level, format, ty, data)
}

func textureGetCubeImageImplementationDefault(c *Context, t *CubeMapTexture, face, level int, format, ty gl.Enum, data []byte) {
	c.state.texture.bindInternal(c, &t.Texture)
	c.funcs.GetTexImage(cubeFaceTarget(face), level, format, ty, data)
}

func textureGetCubeImageImplementationRobustness(c *Context, t *CubeMapTexture, face, level int, format, ty gl.Enum, data []byte) {
	c.state.texture.bindInternal(c, &t.Texture)
	c.funcs.GetnTexImage(cubeFaceTarget(face), level, format, ty, data)
}

func textureGetCubeImageImplementationDSA(c *Context, t *CubeMapTexture, face, level int, format, ty gl.Enum, data []byte) {
	size := t.size >> level
	if size < 1 {
		size = 1
	}
	c.funcs.GetTextureSubImage(t.texture, level, 0, 0, face, size, size, 1, format, ty, data)
}

func textureGetLevelCompressedImageSizeImplementationDefault(c *Context, t *Texture, level int) int {
	c.state.texture.bindInternal(c, t)
	var v [1]int32
	c.funcs.GetTexLevelParameteriv(t.target, level, gl.TEXTURE_COMPRESSED_IMAGE_SIZE, v[:])
	return int(v[0])
}

func textureGetLevelCompressedImageSizeImplementationNVidia(c *Context, t *Texture, level int) int {
	// The driver reports bits, not bytes.
	return textureGetLevelCompressedImageSizeImplementationDefault(c, t, level) / 8
}

func textureGetCubeLevelCompressedImageSizeImplementationDefault(c *Context, t *CubeMapTexture, level int) int {
	c.state.texture.bindInternal(c, &t.Texture)
	var v [1]int32
	c.funcs.GetTexLevelParameteriv(gl.TEXTURE_CUBE_MAP_POSITIVE_X, level, gl.TEXTURE_COMPRESSED_IMAGE_SIZE, v[:])
	return int(v[0])
}

func textureGetCubeLevelCompressedImageSizeImplementationNVidia(c *Context, t *CubeMapTexture, level int) int {
	// The face query reports the whole cube on this driver.
	return textureGetCubeLevelCompressedImageSizeImplementationDefault(c, t, level) / 6
}

func textureGetCompressedCubeImageImplementationDSA(c *Context, t *CubeMapTexture, level int, faceSize int, data []byte) {
	c.funcs.GetCompressedTextureImage(t.texture, level, data)
}

func textureGetCompressedCubeImageImplementationFaceByFace(c *Context, t *CubeMapTexture, level int, faceSize int, data []byte) {
	c.state.texture.bindInternal(c, &t.Texture)
	for face := 0; face < 6; face++ {
		c.funcs.GetCompressedTexImage(cubeFaceTarget(face), level, data[face*faceSize:(face+1)*faceSize])
	}
}

func textureInvalidateImageImplementationNoOp(*Context, *Texture, int) {}

func textureInvalidateImageImplementationARB(c *Context, t *Texture, level int) {
	c.funcs.InvalidateTexImage(t.texture, level)
}
