// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import (
	"fmt"

	"glctx.org/internal/gl"
)

// Shader wraps one compiled shader stage.
type Shader struct {
	shader gl.Shader
}

// NewShader compiles source as the given stage.
func NewShader(c *Context, ty gl.Enum, source string) (*Shader, error) {
	s := c.funcs.CreateShader(ty)
	c.funcs.ShaderSource(s, source)
	c.funcs.CompileShader(s)
	if c.funcs.GetShaderi(s, gl.COMPILE_STATUS) == 0 {
		log := c.funcs.GetShaderInfoLog(s)
		c.funcs.DeleteShader(s)
		return nil, fmt.Errorf("glctx: shader compilation failed: %s", log)
	}
	return &Shader{shader: s}, nil
}

// Release deletes the shader.
func (s *Shader) Release(c *Context) {
	c.funcs.DeleteShader(s.shader)
	s.shader = gl.Shader{}
}

// Program wraps a linked GL program.
type Program struct {
	program gl.Program

	// Some drivers keep referencing varying name strings after
	// TransformFeedbackVaryings returns.
	retainedVaryings []string
}

// NewProgram allocates an empty program.
func NewProgram(c *Context) *Program {
	return &Program{program: c.funcs.CreateProgram()}
}

// ID returns the underlying object name.
func (p *Program) ID() uint32 { return p.program.V }

// Attach attaches a compiled shader stage.
func (p *Program) Attach(c *Context, s *Shader) {
	c.funcs.AttachShader(p.program, s.shader)
}

// Detach detaches a shader stage.
func (p *Program) Detach(c *Context, s *Shader) {
	c.funcs.DetachShader(p.program, s.shader)
}

// Link links the attached stages.
func (p *Program) Link(c *Context) error {
	c.funcs.LinkProgram(p.program)
	if c.funcs.GetProgrami(p.program, gl.LINK_STATUS) == 0 {
		return fmt.Errorf("glctx: program linking failed: %s", c.funcs.GetProgramInfoLog(p.program))
	}
	return nil
}

// Use makes the program current through the cache.
func (p *Program) Use(c *Context) {
	c.state.shaderProgram.use(c, p)
}

// UniformLocation looks up a uniform by name.
func (p *Program) UniformLocation(c *Context, name string) gl.Uniform {
	return c.funcs.GetUniformLocation(p.program, name)
}

// SetUniform1f sets a float uniform without disturbing the program
// binding where the context allows it.
func (p *Program) SetUniform1f(c *Context, location gl.Uniform, v float32) {
	c.state.shaderProgram.uniform1f(c, p, location, v)
}

// SetUniform1i sets an int uniform.
func (p *Program) SetUniform1i(c *Context, location gl.Uniform, v int) {
	c.state.shaderProgram.uniform1i(c, p, location, v)
}

// SetUniform4fv sets one or more vec4 uniforms.
func (p *Program) SetUniform4fv(c *Context, location gl.Uniform, values []float32) {
	c.state.shaderProgram.uniform4fv(c, p, location, values)
}

// SetUniformMatrix4fv sets one or more mat4 uniforms.
func (p *Program) SetUniformMatrix4fv(c *Context, location gl.Uniform, values []float32) {
	c.state.shaderProgram.uniformMatrix4fv(c, p, location, values)
}

// SetTransformFeedbackVaryings declares the outputs captured during
// transform feedback. Takes effect on the next Link. Requires OpenGL
// or OpenGL ES 3.0.
func (p *Program) SetTransformFeedbackVaryings(c *Context, varyings []string, bufferMode gl.Enum) {
	if c.state.shaderProgram.transformFeedbackVaryings == nil {
		panic("glctx: transform feedback requires OpenGL or OpenGL ES 3.0")
	}
	c.state.shaderProgram.transformFeedbackVaryings(c, p, varyings, bufferMode)
}

// Release deletes the program and scrubs it from the binding cache.
func (p *Program) Release(c *Context) {
	if c.state.shaderProgram.currentProgram == p.program.V {
		c.state.shaderProgram.currentProgram = disengagedBinding
	}
	c.funcs.DeleteProgram(p.program)
	p.program = gl.Program{}
	p.retainedVaryings = nil
}
