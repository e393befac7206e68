// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "glctx.org/internal/gl"

type shaderProgramState struct {
	currentProgram uint32

	uniform1f        func(c *Context, p *Program, location gl.Uniform, v float32)
	uniform1i        func(c *Context, p *Program, location gl.Uniform, v int)
	uniform4fv       func(c *Context, p *Program, location gl.Uniform, values []float32)
	uniformMatrix4fv func(c *Context, p *Program, location gl.Uniform, values []float32)

	transformFeedbackVaryings func(c *Context, p *Program, varyings []string, bufferMode gl.Enum)
}

func (s *shaderProgramState) init(c *Context, extensions []string) {
	// Uniform setters that don't disturb the program binding.
	switch {
	case !c.profile.ES() && c.IsExtensionSupported(ARBSeparateShaderObjects):
		record(extensions, ARBSeparateShaderObjects)
		s.uniform1f = shaderProgramUniform1fImplementationSSO
		s.uniform1i = shaderProgramUniform1iImplementationSSO
		s.uniform4fv = shaderProgramUniform4fvImplementationSSO
		s.uniformMatrix4fv = shaderProgramUniformMatrix4fvImplementationSSO
	case !c.profile.ES() && c.IsExtensionSupported(EXTDirectStateAccess):
		record(extensions, EXTDirectStateAccess)
		s.uniform1f = shaderProgramUniform1fImplementationDSAEXT
		s.uniform1i = shaderProgramUniform1iImplementationDSAEXT
		s.uniform4fv = shaderProgramUniform4fvImplementationDSAEXT
		s.uniformMatrix4fv = shaderProgramUniformMatrix4fvImplementationDSAEXT
	case c.profile.ES() && c.IsVersionSupported(GLES310):
		s.uniform1f = shaderProgramUniform1fImplementationSSO
		s.uniform1i = shaderProgramUniform1iImplementationSSO
		s.uniform4fv = shaderProgramUniform4fvImplementationSSO
		s.uniformMatrix4fv = shaderProgramUniformMatrix4fvImplementationSSO
	case c.profile.ES() && c.IsExtensionSupported(EXTSeparateShaderObjects):
		record(extensions, EXTSeparateShaderObjects)
		s.uniform1f = shaderProgramUniform1fImplementationDSAEXT
		s.uniform1i = shaderProgramUniform1iImplementationDSAEXT
		s.uniform4fv = shaderProgramUniform4fvImplementationDSAEXT
		s.uniformMatrix4fv = shaderProgramUniformMatrix4fvImplementationDSAEXT
	default:
		s.uniform1f = shaderProgramUniform1fImplementationDefault
		s.uniform1i = shaderProgramUniform1iImplementationDefault
		s.uniform4fv = shaderProgramUniform4fvImplementationDefault
		s.uniformMatrix4fv = shaderProgramUniformMatrix4fvImplementationDefault
	}

	// Transform feedback varyings need 3.0 / ES 3.0. The NVidia Windows
	// driver keeps referencing the caller's name strings after the call
	// returns, so there the program object retains copies.
	tf := (!c.profile.ES() && c.IsExtensionSupported(EXTTransformFeedback)) ||
		(c.profile.ES() && c.IsVersionSupported(GLES300))
	if tf {
		if !c.profile.ES() {
			record(extensions, EXTTransformFeedback)
		}
		s.transformFeedbackVaryings = shaderProgramTransformFeedbackVaryingsImplementationDefault
		if c.detectedDriver&DriverNVidia != 0 && c.osName == "windows" &&
			!c.isDriverWorkaroundDisabled("nv-windows-dangling-transform-feedback-varying-names") {
			s.transformFeedbackVaryings = shaderProgramTransformFeedbackVaryingsImplementationDangling
		}
	}

	s.reset()
}

func (s *shaderProgramState) reset() {
	s.currentProgram = disengagedBinding
}

// use makes p the current program through the cache.
func (s *shaderProgramState) use(c *Context, p *Program) {
	if s.currentProgram == p.program.V {
		return
	}
	s.currentProgram = p.program.V
	c.funcs.UseProgram(p.program)
}

func shaderProgramUniform1fImplementationDefault(c *Context, p *Program, location gl.Uniform, v float32) {
	c.state.shaderProgram.use(c, p)
	c.funcs.Uniform1f(location, v)
}

func shaderProgramUniform1fImplementationSSO(c *Context, p *Program, location gl.Uniform, v float32) {
	c.funcs.ProgramUniform1f(p.program, location, v)
}

func shaderProgramUniform1fImplementationDSAEXT(c *Context, p *Program, location gl.Uniform, v float32) {
	c.funcs.ProgramUniform1fEXT(p.program, location, v)
}

func shaderProgramUniform1iImplementationDefault(c *Context, p *Program, location gl.Uniform, v int) {
	c.state.shaderProgram.use(c, p)
	c.funcs.Uniform1i(location, v)
}

func shaderProgramUniform1iImplementationSSO(c *Context, p *Program, location gl.Uniform, v int) {
	c.funcs.ProgramUniform1i(p.program, location, v)
}

func shaderProgramUniform1iImplementationDSAEXT(c *Context, p *Program, location gl.Uniform, v int) {
	c.funcs.ProgramUniform1iEXT(p.program, location, v)
}

func shaderProgramUniform4fvImplementationDefault(c *Context, p *Program, location gl.Uniform, values []float32) {
	c.state.shaderProgram.use(c, p)
	c.funcs.Uniform4fv(location, values)
}

func shaderProgramUniform4fvImplementationSSO(c *Context, p *Program, location gl.Uniform, values []float32) {
	c.funcs.ProgramUniform4fv(p.program, location, values)
}

func shaderProgramUniform4fvImplementationDSAEXT(c *Context, p *Program, location gl.Uniform, values []float32) {
	c.funcs.ProgramUniform4fvEXT(p.program, location, values)
}

func shaderProgramUniformMatrix4fvImplementationDefault(c *Context, p *Program, location gl.Uniform, values []float32) {
	c.state.shaderProgram.use(c, p)
	c.funcs.UniformMatrix4fv(location, values)
}

func shaderProgramUniformMatrix4fvImplementationSSO(c *Context, p *Program, location gl.Uniform, values []float32) {
	c.funcs.ProgramUniformMatrix4fv(p.program, location, values)
}

func shaderProgramUniformMatrix4fvImplementationDSAEXT(c *Context, p *Program, location gl.Uniform, values []float32) {
	c.funcs.ProgramUniformMatrix4fvEXT(p.program, location, values)
}

func shaderProgramTransformFeedbackVaryingsImplementationDefault(c *Context, p *Program, varyings []string, bufferMode gl.Enum) {
	c.funcs.TransformFeedbackVaryings(p.program, varyings, bufferMode)
}

func shaderProgramTransformFeedbackVaryingsImplementationDangling(c *Context, p *Program, varyings []string, bufferMode gl.Enum) {
	p.retainedVaryings = append([]string(nil), varyings...)
	c.funcs.TransformFeedbackVaryings(p.program, p.retainedVaryings, bufferMode)
}
