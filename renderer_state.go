// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

// disengagedRowLength marks an unknown pixel storage row length.
const disengagedRowLength = -1

type rendererState struct {
	packRowLength   int
	unpackRowLength int

	// ES 2 has no row length pixel storage parameter; rows are always
	// tight there and the setters are no-ops.
	rowLengthSupported bool

	clearDepth          func(c *Context, depth float32)
	graphicsResetStatus func(c *Context) gl.Enum
	lineWidthRange      func(c *Context) [2]float32
	minSampleShading    func(c *Context, value float32)
}

func (s *rendererState) init(c *Context, extensions []string) {
	s.rowLengthSupported = !c.profile.ES() || c.IsVersionSupported(GLES300)

	// ClearDepth takes a double on desktop; the float variant came in
	// with ES2 compatibility.
	switch {
	case c.profile.ES():
		s.clearDepth = rendererClearDepthImplementationES
	case c.IsExtensionSupported(ARBES2Compatibility):
		record(extensions, ARBES2Compatibility)
		s.clearDepth = rendererClearDepthImplementationES
	default:
		s.clearDepth = rendererClearDepthImplementationDefault
	}

	// Robustness makes reset status queryable; otherwise the context is
	// assumed healthy.
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBRobustness):
		record(extensions, ARBRobustness)
		s.graphicsResetStatus = rendererGraphicsResetStatusImplementationRobustness
	case c.profile.ES() && c.IsExtensionSupported(EXTRobustness):
		record(extensions, EXTRobustness)
		s.graphicsResetStatus = rendererGraphicsResetStatusImplementationRobustness
	default:
		s.graphicsResetStatus = rendererGraphicsResetStatusImplementationNoOp
	}

	// Mesa on a forward-compatible context exposes the legacy wide-line
	// range but errors out when it is actually used.
	s.lineWidthRange = rendererLineWidthRangeImplementationDefault
	if c.detectedDriver&DriverMesa != 0 && c.flags&FlagForwardCompatible != 0 &&
		!c.isDriverWorkaroundDisabled("mesa-forward-compatible-line-width-range") {
		s.lineWidthRange = rendererLineWidthRangeImplementationMesaForwardCompatible
	}

	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBSampleShading):
		record(extensions, ARBSampleShading)
		s.minSampleShading = rendererMinSampleShadingImplementationDefault
	case c.profile.ES() && c.IsVersionSupported(GLES320):
		s.minSampleShading = rendererMinSampleShadingImplementationDefault
	case c.profile.ES() && c.IsExtensionSupported(OESSampleShading):
		record(extensions, OESSampleShading)
		s.minSampleShading = rendererMinSampleShadingImplementationOES
	}

	s.reset()
}

func (s *rendererState) reset() {
	s.packRowLength = disengagedRowLength
	s.unpackRowLength = disengagedRowLength
}

// setPackRowLength updates GL_PACK_ROW_LENGTH through the cache.
func (s *rendererState) setPackRowLength(c *Context, length int) {
	if !s.rowLengthSupported || s.packRowLength == length {
		return
	}
	s.packRowLength = length
	c.funcs.PixelStorei(gl.PACK_ROW_LENGTH, length)
}

// setUnpackRowLength updates GL_UNPACK_ROW_LENGTH through the cache.
func (s *rendererState) setUnpackRowLength(c *Context, length int) {
	if !s.rowLengthSupported || s.unpackRowLength == length {
		return
	}
	s.unpackRowLength = length
	c.funcs.PixelStorei(gl.UNPACK_ROW_LENGTH, length)
}

func rendererClearDepthImplementationDefault(c *Context, depth float32) {
	c.funcs.ClearDepth(float64(depth))
}

func rendererClearDepthImplementationES(c *Context, depth float32) {
	c.funcs.ClearDepthf(depth)
}

func rendererGraphicsResetStatusImplementationRobustness(c *Context) gl.Enum {
	return c.funcs.GetGraphicsResetStatus()
}

func rendererGraphicsResetStatusImplementationNoOp(c *Context) gl.Enum {
	return gl.NO_ERROR
}

func rendererLineWidthRangeImplementationDefault(c *Context) [2]float32 {
	var r [2]float32
	c.funcs.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, r[:])
	return r
}

func rendererLineWidthRangeImplementationMesaForwardCompatible(c *Context) [2]float32 {
	r := rendererLineWidthRangeImplementationDefault(c)
	if r[1] > 1 {
		r[1] = 1
	}
	return r
}

func rendererMinSampleShadingImplementationDefault(c *Context, value float32) {
	c.funcs.MinSampleShading(value)
}

func rendererMinSampleShadingImplementationOES(c *Context, value float32) {
	c.funcs.MinSampleShadingOES(value)
}
