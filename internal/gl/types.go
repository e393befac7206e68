// SPDX-License-Identifier: Unlicense OR MIT

package gl

type (
	Buffer            struct{ V uint32 }
	Framebuffer       struct{ V uint32 }
	Program           struct{ V uint32 }
	Renderbuffer      struct{ V uint32 }
	Shader            struct{ V uint32 }
	Texture           struct{ V uint32 }
	TransformFeedback struct{ V uint32 }
	VertexArray       struct{ V uint32 }
	Uniform           struct{ V int32 }
)

func (b Buffer) Valid() bool {
	return b.V != 0
}

func (f Framebuffer) Valid() bool {
	return f.V != 0
}

func (p Program) Valid() bool {
	return p.V != 0
}

func (r Renderbuffer) Valid() bool {
	return r.V != 0
}

func (s Shader) Valid() bool {
	return s.V != 0
}

func (t Texture) Valid() bool {
	return t.V != 0
}

func (t TransformFeedback) Valid() bool {
	return t.V != 0
}

func (a VertexArray) Valid() bool {
	return a.V != 0
}

func (u Uniform) Valid() bool {
	return u.V != -1
}

func (b Buffer) Equal(b2 Buffer) bool {
	return b == b2
}

func (t Texture) Equal(t2 Texture) bool {
	return t == t2
}

func (a VertexArray) Equal(a2 VertexArray) bool {
	return a == a2
}
