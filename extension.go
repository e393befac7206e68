// SPDX-License-Identifier: Unlicense OR MIT

package glctx

// Extension identifies a GL extension the dispatch layer knows about.
// Each has a version it requires to be even advertised, and a core
// version at which its functionality is implied without being listed in
// the extension string (VersionNone when it never becomes core).
type Extension struct {
	index    int
	required Version
	core     Version
	name     string
}

// Name returns the extension string, e.g. "GL_ARB_direct_state_access".
func (e Extension) Name() string { return e.name }

// RequiredVersion returns the minimal version the extension can appear on.
func (e Extension) RequiredVersion() Version { return e.required }

// CoreVersion returns the version the extension became core in, or
// VersionNone.
func (e Extension) CoreVersion() Version { return e.core }

var (
	allExtensions   []Extension
	extensionByName = map[string]Extension{}
)

func ext(name string, required, core Version) Extension {
	e := Extension{
		index:    len(allExtensions),
		required: required,
		core:     core,
		name:     name,
	}
	allExtensions = append(allExtensions, e)
	extensionByName[name] = e
	return e
}

// Desktop extensions, grouped by the version they became core in.
var (
	// GL 3.0
	ARBFramebufferObject = ext("GL_ARB_framebuffer_object", GL210, GL300)
	ARBMapBufferRange    = ext("GL_ARB_map_buffer_range", GL210, GL300)
	ARBVertexArrayObject = ext("GL_ARB_vertex_array_object", GL210, GL300)
	EXTTransformFeedback = ext("GL_EXT_transform_feedback", GL210, GL300)

	// GL 3.1
	ARBCopyBuffer          = ext("GL_ARB_copy_buffer", GL210, GL310)
	ARBUniformBufferObject = ext("GL_ARB_uniform_buffer_object", GL210, GL310)

	// GL 3.2
	ARBDrawElementsBaseVertex = ext("GL_ARB_draw_elements_base_vertex", GL210, GL320)
	ARBProvokingVertex        = ext("GL_ARB_provoking_vertex", GL210, GL320)

	// GL 3.3
	ARBInstancedArrays        = ext("GL_ARB_instanced_arrays", GL210, GL330)
	ARBExplicitAttribLocation = ext("GL_ARB_explicit_attrib_location", GL210, GL330)
	ARBSamplerObjects         = ext("GL_ARB_sampler_objects", GL210, GL330)

	// GL 4.0
	ARBSampleShading      = ext("GL_ARB_sample_shading", GL210, GL400)
	ARBTransformFeedback2 = ext("GL_ARB_transform_feedback2", GL210, GL400)
	ARBTransformFeedback3 = ext("GL_ARB_transform_feedback3", GL210, GL400)

	// GL 4.1
	ARBES2Compatibility      = ext("GL_ARB_ES2_compatibility", GL210, GL410)
	ARBGetProgramBinary      = ext("GL_ARB_get_program_binary", GL210, GL410)
	ARBSeparateShaderObjects = ext("GL_ARB_separate_shader_objects", GL210, GL410)

	// GL 4.2
	ARBBaseInstance   = ext("GL_ARB_base_instance", GL210, GL420)
	ARBTextureStorage = ext("GL_ARB_texture_storage", GL210, GL420)

	// GL 4.3
	ARBES3Compatibility          = ext("GL_ARB_ES3_compatibility", GL210, GL430)
	ARBInvalidateSubdata         = ext("GL_ARB_invalidate_subdata", GL210, GL430)
	ARBTextureStorageMultisample = ext("GL_ARB_texture_storage_multisample", GL210, GL430)
	ARBVertexAttribBinding       = ext("GL_ARB_vertex_attrib_binding", GL210, GL430)
	KHRDebug                     = ext("GL_KHR_debug", GL210, GL430)

	// GL 4.4
	ARBBufferStorage = ext("GL_ARB_buffer_storage", GL210, GL440)
	ARBMultiBind     = ext("GL_ARB_multi_bind", GL300, GL440)

	// GL 4.5
	ARBDirectStateAccess  = ext("GL_ARB_direct_state_access", GL210, GL450)
	ARBES31Compatibility  = ext("GL_ARB_ES3_1_compatibility", GL440, GL450)
	ARBGetTextureSubImage = ext("GL_ARB_get_texture_sub_image", GL210, GL450)
	ARBRobustness         = ext("GL_ARB_robustness", GL210, VersionNone)

	// GL 4.6
	ARBTextureFilterAnisotropic = ext("GL_ARB_texture_filter_anisotropic", GL210, GL460)

	// Never core on desktop.
	EXTDirectStateAccess        = ext("GL_EXT_direct_state_access", GL210, VersionNone)
	EXTTextureFilterAnisotropic = ext("GL_EXT_texture_filter_anisotropic", GL210, VersionNone)
)

// ES and WebGL extensions.
var (
	// Core in ES 3.0.
	ANGLEFramebufferBlit        = ext("GL_ANGLE_framebuffer_blit", GLES200, GLES300)
	ANGLEFramebufferMultisample = ext("GL_ANGLE_framebuffer_multisample", GLES200, GLES300)
	ANGLEInstancedArrays        = ext("GL_ANGLE_instanced_arrays", GLES200, GLES300)
	APPLEFramebufferMultisample = ext("GL_APPLE_framebuffer_multisample", GLES200, GLES300)
	EXTInstancedArrays          = ext("GL_EXT_instanced_arrays", GLES200, GLES300)
	EXTMapBufferRange           = ext("GL_EXT_map_buffer_range", GLES200, GLES300)
	EXTDiscardFramebuffer       = ext("GL_EXT_discard_framebuffer", GLES200, GLES300)
	EXTUnpackSubimage           = ext("GL_EXT_unpack_subimage", GLES200, GLES300)
	EXTTextureStorage           = ext("GL_EXT_texture_storage", GLES200, GLES300)
	NVFramebufferBlit           = ext("GL_NV_framebuffer_blit", GLES200, GLES300)
	NVFramebufferMultisample    = ext("GL_NV_framebuffer_multisample", GLES200, GLES300)
	NVInstancedArrays           = ext("GL_NV_instanced_arrays", GLES200, GLES300)
	NVPackSubimage              = ext("GL_NV_pack_subimage", GLES200, GLES300)
	OESVertexArrayObject        = ext("GL_OES_vertex_array_object", GLES200, GLES300)

	// Core in ES 3.1.
	EXTSeparateShaderObjects = ext("GL_EXT_separate_shader_objects", GLES200, GLES310)

	// Core in ES 3.2.
	EXTDrawElementsBaseVertex = ext("GL_EXT_draw_elements_base_vertex", GLES200, GLES320)
	OESDrawElementsBaseVertex = ext("GL_OES_draw_elements_base_vertex", GLES200, GLES320)
	EXTMultiDrawArrays        = ext("GL_EXT_multi_draw_arrays", GLES200, VersionNone)
	OESSampleShading          = ext("GL_OES_sample_shading", GLES300, GLES320)
	EXTTextureBorderClamp     = ext("GL_EXT_texture_border_clamp", GLES200, GLES320)

	// Never core.
	EXTRobustness               = ext("GL_EXT_robustness", GLES200, VersionNone)
	EXTBaseInstance             = ext("GL_EXT_base_instance", GLES300, VersionNone)
	ANGLEBaseVertexBaseInstance = ext("GL_ANGLE_base_vertex_base_instance", GLES300, VersionNone)
	WEBGLMultiDraw              = ext("GL_WEBGL_multi_draw", GLES200, VersionNone)
)

// extensionsFor lists the extensions that become core in exactly
// version v.
func extensionsFor(v Version) []Extension {
	var out []Extension
	for _, e := range allExtensions {
		if e.core == v {
			out = append(out, e)
		}
	}
	return out
}

// KnownExtensions returns every extension the dispatch layer knows
// about, in registration order.
func KnownExtensions() []Extension {
	return append([]Extension(nil), allExtensions...)
}

// ExtensionForName looks up a known extension by its string.
func ExtensionForName(name string) (Extension, bool) {
	e, ok := extensionByName[name]
	return e, ok
}
