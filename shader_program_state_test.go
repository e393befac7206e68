// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glctx.org/internal/gl"
)

func newLinkedProgram(t *testing.T, c *Context) *Program {
	t.Helper()
	p := NewProgram(c)
	require.NoError(t, p.Link(c))
	return p
}

func TestProgramUniformSSO(t *testing.T) {
	// Separate shader objects let uniforms bypass the program binding.
	f := newDesktopFake(4, 1)
	c := newTestContext(t, f, Options{})
	p := newLinkedProgram(t, c)
	p.SetUniform1f(c, gl.Uniform{V: 0}, 1)
	p.SetUniformMatrix4fv(c, gl.Uniform{V: 1}, make([]float32, 16))
	assert.True(t, f.has("ProgramUniform1f"))
	assert.True(t, f.has("ProgramUniformMatrix4fv"))
	assert.False(t, f.has("UseProgram"))
}

func TestProgramUniformBindToUse(t *testing.T) {
	f := newDesktopFake(3, 3)
	c := newTestContext(t, f, Options{})
	p := newLinkedProgram(t, c)
	p.SetUniform1f(c, gl.Uniform{V: 0}, 1)
	p.SetUniform1i(c, gl.Uniform{V: 1}, 2)
	assert.Equal(t, 1, f.count("UseProgram"))
	assert.True(t, f.has("Uniform1f"))
	assert.True(t, f.has("Uniform1i"))
	assert.False(t, f.has("ProgramUniform1f"))
}

func TestProgramUniformDSAEXT(t *testing.T) {
	f := newDesktopFake(3, 3, "GL_EXT_direct_state_access")
	c := newTestContext(t, f, Options{})
	p := newLinkedProgram(t, c)
	p.SetUniform4fv(c, gl.Uniform{V: 0}, make([]float32, 4))
	assert.True(t, f.has("ProgramUniform4fvEXT"))
}

func TestProgramUniformEXTSeparateShaderObjectsOnES2(t *testing.T) {
	f := newES2Fake("GL_EXT_separate_shader_objects")
	c := newTestContext(t, f, Options{Profile: ProfileES2})
	p := newLinkedProgram(t, c)
	p.SetUniform1i(c, gl.Uniform{V: 0}, 3)
	assert.True(t, f.has("ProgramUniform1iEXT"))
	assert.False(t, f.has("UseProgram"))
}

func TestProgramUseElision(t *testing.T) {
	f := newDesktopFake(3, 3)
	c := newTestContext(t, f, Options{})
	p := newLinkedProgram(t, c)
	p.Use(c)
	p.Use(c)
	assert.Equal(t, 1, f.count("UseProgram"))

	c.ResetState(StateShaders)
	p.Use(c)
	assert.Equal(t, 2, f.count("UseProgram"))
}

func TestProgramReleaseScrubsCurrentProgram(t *testing.T) {
	f := newDesktopFake(3, 3)
	c := newTestContext(t, f, Options{})
	p := newLinkedProgram(t, c)
	p.Use(c)
	p.Release(c)
	assert.True(t, f.has("DeleteProgram"))
	p2 := newLinkedProgram(t, c)
	before := f.count("UseProgram")
	p2.Use(c)
	assert.Equal(t, before+1, f.count("UseProgram"))
}

func TestShaderCompileAndAttach(t *testing.T) {
	f := newDesktopFake(3, 3)
	c := newTestContext(t, f, Options{})
	sh, err := NewShader(c, gl.VERTEX_SHADER, "void main() {}")
	require.NoError(t, err)
	p := NewProgram(c)
	p.Attach(c, sh)
	require.NoError(t, p.Link(c))
	assert.True(t, f.has("CompileShader"))
	assert.True(t, f.has("AttachShader"))
	assert.True(t, f.has("LinkProgram"))
}

func TestTransformFeedbackVaryingsUnavailableOnES2(t *testing.T) {
	c := newTestContext(t, newES2Fake(), Options{Profile: ProfileES2})
	p := NewProgram(c)
	assert.PanicsWithValue(t,
		"glctx: transform feedback requires OpenGL or OpenGL ES 3.0",
		func() { p.SetTransformFeedbackVaryings(c, []string{"value"}, gl.INTERLEAVED_ATTRIBS) })
}

func TestTransformFeedbackVaryingsNVidiaWindowsRetainsNames(t *testing.T) {
	// The driver reads the name strings after the call returns, so the
	// program object must keep them reachable.
	f := newDesktopFake(3, 3)
	f.vendor = "NVIDIA Corporation"
	c := newTestContext(t, f, Options{OS: "windows"})
	p := newLinkedProgram(t, c)
	p.SetTransformFeedbackVaryings(c, []string{"outValue", "outNormal"}, gl.INTERLEAVED_ATTRIBS)
	assert.Equal(t, []string{"outValue", "outNormal"}, p.retainedVaryings)
	assert.True(t, f.has("TransformFeedbackVaryings"))
}

func TestTransformFeedbackVaryingsNoRetentionElsewhere(t *testing.T) {
	f := newDesktopFake(3, 3)
	c := newTestContext(t, f, Options{})
	p := newLinkedProgram(t, c)
	p.SetTransformFeedbackVaryings(c, []string{"outValue"}, gl.SEPARATE_ATTRIBS)
	assert.Nil(t, p.retainedVaryings)
	assert.True(t, f.has("TransformFeedbackVaryings"))
}

func TestTransformFeedbackObjectUnavailable(t *testing.T) {
	c := newTestContext(t, newDesktopFake(3, 3), Options{})
	assert.PanicsWithValue(t,
		"glctx: transform feedback objects require OpenGL 4.0, GL_ARB_transform_feedback2 or OpenGL ES 3.0",
		func() { NewTransformFeedback(c) })
}

func TestTransformFeedbackObjectDSA(t *testing.T) {
	f := newDesktopFake(4, 5)
	c := newTestContext(t, f, Options{})
	tf := NewTransformFeedback(c)
	b := NewBuffer(c)
	tf.AttachBuffer(c, 0, b)
	tf.AttachBufferRange(c, 1, b, 0, 16)
	assert.True(t, f.has("CreateTransformFeedbacks"))
	assert.True(t, f.has("TransformFeedbackBufferBase"))
	assert.True(t, f.has("TransformFeedbackBufferRange"))
	assert.False(t, f.has("BindTransformFeedback"))
}

func TestTransformFeedbackObjectBindPath(t *testing.T) {
	f := newES3Fake()
	c := newTestContext(t, f, Options{Profile: ProfileES3})
	tf := NewTransformFeedback(c)
	b := NewBuffer(c)
	tf.AttachBuffer(c, 0, b)
	assert.True(t, f.has("GenTransformFeedbacks"))
	assert.True(t, f.has("BindTransformFeedback"))
	assert.True(t, f.has("BindBufferBase"))

	// The indexed attach also moved the generic binding point, the
	// target cache must agree.
	assert.Equal(t, b.buffer.V, c.state.buffer.bindings[bufferTargetIndex(gl.TRANSFORM_FEEDBACK_BUFFER)])
}

func TestTransformFeedbackBeginUsesProgram(t *testing.T) {
	f := newES3Fake()
	c := newTestContext(t, f, Options{Profile: ProfileES3})
	tf := NewTransformFeedback(c)
	p := newLinkedProgram(t, c)
	tf.Begin(c, p, gl.POINTS)
	tf.End(c)
	assert.True(t, f.has("UseProgram"))
	assert.True(t, f.has("BeginTransformFeedback"))
	assert.True(t, f.has("EndTransformFeedback"))
}

func TestTransformFeedbackBindElision(t *testing.T) {
	f := newES3Fake()
	c := newTestContext(t, f, Options{Profile: ProfileES3})
	tf := NewTransformFeedback(c)
	b := NewBuffer(c)
	tf.AttachBuffer(c, 0, b)
	tf.AttachBuffer(c, 1, b)
	assert.Equal(t, 1, f.count("BindTransformFeedback"))
}
