// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "fmt"

// knownWorkarounds lists every driver workaround the dispatch layer can
// apply. Workarounds are on by default when their driver condition
// matches and can be opted out of by name; an unknown name in the
// opt-out list is reported and ignored, the workarounds stay active.
var knownWorkarounds = []string{
	// Creating and copying cube map data through
	// glCopyTextureSubImage3D does nothing on AMD Windows drivers.
	"amd-windows-broken-dsa-cubemap-copy",

	// Uploading cube map array data in a single 3D upload gives
	// garbage on AMD Windows drivers, upload slice by slice instead.
	"amd-windows-cubemap-image3d-slice-by-slice",

	// DSA operations on cube map textures are broken on Intel Windows
	// drivers, use the classic bind path for them.
	"intel-windows-broken-dsa-for-cubemaps",

	// glClearNamedFramebuffer* is a no-op on Intel Windows drivers.
	"intel-windows-broken-dsa-framebuffer-clear",

	// glVertexArrayAttribIFormat doesn't set up integer attributes
	// correctly on Intel Windows drivers.
	"intel-windows-broken-dsa-integer-vertex-attributes",

	// Attaching a layer of a cube map array through
	// glNamedFramebufferTextureLayer fails on Intel Windows drivers.
	"intel-windows-broken-dsa-layered-cubemap-array-framebuffer-attachment",

	// Buffer DSA entry points randomly upload stale data on Intel
	// Windows drivers, fall back to bind-to-edit for all buffer ops.
	"intel-windows-crazy-broken-buffer-dsa",

	// Vertex array DSA entry points are similarly unreliable on Intel
	// Windows drivers.
	"intel-windows-crazy-broken-vao-dsa",

	// glBindTextureUnit works but the corresponding unbind doesn't on
	// Intel Windows drivers.
	"intel-windows-half-baked-dsa-texture-bind",

	// Mesa reports a smooth line width range even on forward-compatible
	// contexts where smooth lines don't exist.
	"mesa-forward-compatible-line-width-range",

	// Old GLSL versions reject layout qualifiers even when the
	// extension is advertised.
	"no-layout-qualifiers-on-old-glsl",

	// NVidia reports compressed image sizes in bits instead of bytes
	// for certain formats.
	"nv-compressed-block-size-in-bits",

	// Querying the full compressed cube map image fails on NVidia,
	// query face by face.
	"nv-cubemap-broken-full-compressed-image-query",

	// NVidia reports either the face size or the full cube size for
	// GL_TEXTURE_COMPRESSED_IMAGE_SIZE depending on the driver series.
	"nv-cubemap-inconsistent-compressed-image-size",

	// NVidia Windows drivers keep referencing the varying name strings
	// passed to glTransformFeedbackVaryings after the call returns.
	"nv-windows-dangling-transform-feedback-varying-names",

	// glNamedBufferData uploads garbage in VMware's SVGA3D driver.
	"svga3d-broken-dsa-bufferdata",

	// glGetTextureSubImage writes out of bounds in SVGA3D.
	"svga3d-gettexsubimage-oob-write",

	// 3D texture uploads need to go slice by slice in SVGA3D.
	"svga3d-texture-upload-slice-by-slice",

	// SwiftShader advertises the ES2 instancing extensions without
	// exporting their entry points.
	"swiftshader-no-es2-draw-instanced-entrypoints",
}

type workaround struct {
	name     string
	disabled bool
	used     bool
}

// isDriverWorkaroundDisabled reports whether a workaround was opted out
// of. A workaround that stays active is recorded so the creation log can
// list it. Asking about a name that is not in knownWorkarounds is a
// programmer error.
func (c *Context) isDriverWorkaroundDisabled(name string) bool {
	for i := range c.workarounds {
		w := &c.workarounds[i]
		if w.name != name {
			continue
		}
		if !w.disabled {
			w.used = true
		}
		return w.disabled
	}
	panic(fmt.Sprintf("glctx: unknown workaround %q", name))
}

// usedWorkarounds returns the names of workarounds that were consulted
// and left active, in registry order.
func (c *Context) usedWorkarounds() []string {
	var used []string
	for _, w := range c.workarounds {
		if w.used {
			used = append(used, w.name)
		}
	}
	return used
}

// setRequiredVersion bumps the version an extension needs before the
// context treats it as supported. VersionNone disables the extension
// outright.
func (c *Context) setRequiredVersion(e Extension, v Version) {
	c.extensionRequiredVersion[e.index] = v
}

// setupDriverWorkarounds applies the workarounds that act by masking
// extensions before the dispatch tables are built. Workarounds that act
// by overriding individual dispatch slots live in the per-subsystem
// state builders instead.
func (c *Context) setupDriverWorkarounds() {
	if !c.profile.ES() && c.version < GL320 &&
		!c.isDriverWorkaroundDisabled("no-layout-qualifiers-on-old-glsl") {
		c.setRequiredVersion(ARBExplicitAttribLocation, GL320)
	}

	if c.detectedDriver&DriverSvga3D != 0 &&
		!c.isDriverWorkaroundDisabled("svga3d-gettexsubimage-oob-write") {
		c.setRequiredVersion(ARBGetTextureSubImage, VersionNone)
	}

	if c.profile == ProfileES2 && c.detectedDriver&DriverSwiftShader != 0 &&
		!c.isDriverWorkaroundDisabled("swiftshader-no-es2-draw-instanced-entrypoints") {
		c.setRequiredVersion(ANGLEInstancedArrays, VersionNone)
		c.setRequiredVersion(EXTInstancedArrays, VersionNone)
	}
}
