// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

// TransformFeedback wraps a GL transform feedback object.
type TransformFeedback struct {
	feedback gl.TransformFeedback
}

// NewTransformFeedback allocates a transform feedback object. Requires
// OpenGL 4.0, GL_ARB_transform_feedback2 or OpenGL ES 3.0.
func NewTransformFeedback(c *Context) *TransformFeedback {
	if c.state.transformFeedback.create == nil {
		panic("glctx: transform feedback objects require OpenGL 4.0, GL_ARB_transform_feedback2 or OpenGL ES 3.0")
	}
	return &TransformFeedback{feedback: c.state.transformFeedback.create(c)}
}

// ID returns the underlying object name.
func (t *TransformFeedback) ID() uint32 { return t.feedback.V }

// AttachBuffer attaches the whole of b to an output slot.
func (t *TransformFeedback) AttachBuffer(c *Context, index int, b *Buffer) {
	c.state.transformFeedback.attachBase(c, t, index, b)
}

// AttachBufferRange attaches a range of b to an output slot.
func (t *TransformFeedback) AttachBufferRange(c *Context, index int, b *Buffer, offset, size int) {
	c.state.transformFeedback.attachRange(c, t, index, b, offset, size)
}

// Begin binds the object and starts capturing primitives of the given
// mode from p's varyings.
func (t *TransformFeedback) Begin(c *Context, p *Program, mode gl.Enum) {
	c.state.transformFeedback.bind(c, t.feedback.V)
	p.Use(c)
	c.funcs.BeginTransformFeedback(mode)
}

// End stops capturing.
func (t *TransformFeedback) End(c *Context) {
	c.funcs.EndTransformFeedback()
}

// Release deletes the object and scrubs it from the binding cache.
func (t *TransformFeedback) Release(c *Context) {
	if c.state.transformFeedback.binding == t.feedback.V {
		c.state.transformFeedback.binding = disengagedBinding
	}
	c.funcs.DeleteTransformFeedback(t.feedback)
	t.feedback = gl.TransformFeedback{}
}
