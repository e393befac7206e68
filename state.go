// SPDX-License-Identifier: Unlicense OR MIT

package glctx

// disengagedBinding marks a binding cache cell that holds no assumption
// about the GL binding state. The first bind through a disengaged cell
// always reaches the driver.
const disengagedBinding = ^uint32(0)

// state aggregates the per-subsystem dispatch tables. Slots are
// assigned exactly once, in the init methods below; resets only touch
// binding caches.
type state struct {
	buffer            bufferState
	framebuffer       framebufferState
	mesh              meshState
	renderer          rendererState
	shaderProgram     shaderProgramState
	texture           textureState
	transformFeedback transformFeedbackState
}

// newState builds all dispatch tables. The extensions slice is indexed
// by extension and collects the name of every optional feature some
// builder relied on; a name is recorded at most once no matter how many
// slots it gated.
func newState(c *Context, extensions []string) *state {
	s := &state{}
	s.buffer.init(c, extensions)
	s.framebuffer.init(c, extensions)
	s.mesh.init(c, extensions)
	s.renderer.init(c, extensions)
	s.shaderProgram.init(c, extensions)
	s.texture.init(c, extensions)
	s.transformFeedback.init(c, extensions)
	return s
}

func record(extensions []string, e Extension) {
	extensions[e.index] = e.name
}

// StateMask selects which binding caches ResetState disengages.
type StateMask uint

const (
	StateBuffers StateMask = 1 << iota
	StateFramebuffers
	StateMeshes
	StateShaders
	StateTextures
	StateTransformFeedback

	StateAll = StateBuffers | StateFramebuffers | StateMeshes |
		StateShaders | StateTextures | StateTransformFeedback
)

// ResetState disengages the selected binding caches so the next call
// re-binds unconditionally. Use it after foreign code touched the GL
// state behind the dispatch layer's back. Dispatch tables are left
// untouched.
func (c *Context) ResetState(mask StateMask) {
	if mask&StateBuffers != 0 {
		c.state.buffer.reset()
	}
	if mask&StateFramebuffers != 0 {
		c.state.framebuffer.reset()
	}
	if mask&StateMeshes != 0 {
		c.state.mesh.reset()
	}
	if mask&StateShaders != 0 {
		c.state.shaderProgram.reset()
	}
	if mask&StateTextures != 0 {
		c.state.texture.reset()
	}
	if mask&StateTransformFeedback != 0 {
		c.state.transformFeedback.reset()
	}
}
