// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

// ClearDepth sets the depth clear value, using the float entry point
// where the context has one.
func (c *Context) ClearDepth(depth float32) {
	c.state.renderer.clearDepth(c, depth)
}

// GraphicsResetStatus queries whether the context survived a GPU reset.
// Returns gl.NO_ERROR on contexts without robustness support.
func (c *Context) GraphicsResetStatus() gl.Enum {
	return c.state.renderer.graphicsResetStatus(c)
}

// LineWidthRange returns the supported line width range, corrected for
// drivers that advertise widths they refuse to draw.
func (c *Context) LineWidthRange() [2]float32 {
	return c.state.renderer.lineWidthRange(c)
}

// SetLineWidth sets the rasterized line width.
func (c *Context) SetLineWidth(width float32) {
	c.funcs.LineWidth(width)
}

// SetMinSampleShading sets the minimum fraction of samples shaded per
// fragment. Requires OpenGL 4.0, OpenGL ES 3.2 or GL_OES_sample_shading.
func (c *Context) SetMinSampleShading(value float32) {
	if c.state.renderer.minSampleShading == nil {
		panic("glctx: sample shading requires OpenGL 4.0, OpenGL ES 3.2 or GL_OES_sample_shading")
	}
	c.state.renderer.minSampleShading(c, value)
}
