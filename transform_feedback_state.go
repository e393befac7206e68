// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

type transformFeedbackState struct {
	binding uint32

	create      func(c *Context) gl.TransformFeedback
	attachBase  func(c *Context, t *TransformFeedback, index int, b *Buffer)
	attachRange func(c *Context, t *TransformFeedback, index int, b *Buffer, offset, size int)
}

func (s *transformFeedbackState) init(c *Context, extensions []string) {
	supported := false
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBTransformFeedback2):
		record(extensions, ARBTransformFeedback2)
		supported = true
	case c.profile.ES() && c.IsVersionSupported(GLES300):
		supported = true
	}
	if !supported {
		s.reset()
		return
	}

	if !c.profile.ES() && c.IsExtensionSupported(ARBDirectStateAccess) {
		record(extensions, ARBDirectStateAccess)
		s.create = transformFeedbackCreateImplementationDSA
		s.attachBase = transformFeedbackAttachBaseImplementationDSA
		s.attachRange = transformFeedbackAttachRangeImplementationDSA
	} else {
		s.create = transformFeedbackCreateImplementationDefault
		s.attachBase = transformFeedbackAttachBaseImplementationDefault
		s.attachRange = transformFeedbackAttachRangeImplementationDefault
	}

	s.reset()
}

func (s *transformFeedbackState) reset() {
	s.binding = disengagedBinding
}

// bind binds the transform feedback object through the cache.
func (s *transformFeedbackState) bind(c *Context, id uint32) {
	if s.binding == id {
		return
	}
	s.binding = id
	c.funcs.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, gl.TransformFeedback{V: id})
}

func transformFeedbackCreateImplementationDefault(c *Context) gl.TransformFeedback {
	return c.funcs.GenTransformFeedback()
}

func transformFeedbackCreateImplementationDSA(c *Context) gl.TransformFeedback {
	return c.funcs.CreateTransformFeedback()
}

func transformFeedbackAttachBaseImplementationDefault(c *Context, t *TransformFeedback, index int, b *Buffer) {
	c.state.transformFeedback.bind(c, t.feedback.V)
	c.funcs.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, index, b.buffer)
	// The indexed bind also clobbers the generic binding point.
	c.state.buffer.bindings[bufferTargetIndex(gl.TRANSFORM_FEEDBACK_BUFFER)] = b.buffer.V
}

func transformFeedbackAttachBaseImplementationDSA(c *Context, t *TransformFeedback, index int, b *Buffer) {
	c.funcs.TransformFeedbackBufferBase(t.feedback, index, b.buffer)
}

func transformFeedbackAttachRangeImplementationDefault(c *Context, t *TransformFeedback, index int, b *Buffer, offset, size int) {
	c.state.transformFeedback.bind(c, t.feedback.V)
	c.funcs.BindBufferRange(gl.TRANSFORM_FEEDBACK_BUFFER, index, b.buffer, offset, size)
	c.state.buffer.bindings[bufferTargetIndex(gl.TRANSFORM_FEEDBACK_BUFFER)] = b.buffer.V
}

func transformFeedbackAttachRangeImplementationDSA(c *Context, t *TransformFeedback, index int, b *Buffer, offset, size int) {
	c.funcs.TransformFeedbackBufferRange(t.feedback, index, b.buffer, offset, size)
}
