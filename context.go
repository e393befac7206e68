// SPDX-License-Identifier: Unlicense OR MIT

// Package glctx builds capability-dispatched entry points for an
// OpenGL, OpenGL ES or WebGL context. The context is probed exactly
// once at creation: version, extension set and driver identity select a
// concrete implementation for every operation up front, so the per-call
// hot path is a plain function field invocation with no capability
// checks left in it.
package glctx

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"glctx.org/internal/gl"
)

// ContextFlags mirrors the GL_CONTEXT_FLAGS bitfield.
type ContextFlags uint32

const (
	FlagForwardCompatible ContextFlags = gl.CONTEXT_FLAG_FORWARD_COMPATIBLE_BIT
	FlagDebug             ContextFlags = gl.CONTEXT_FLAG_DEBUG_BIT
	FlagRobustAccess      ContextFlags = gl.CONTEXT_FLAG_ROBUST_ACCESS_BIT
	FlagNoError           ContextFlags = gl.CONTEXT_FLAG_NO_ERROR_BIT
)

func (f ContextFlags) String() string {
	var parts []string
	if f&FlagForwardCompatible != 0 {
		parts = append(parts, "ForwardCompatible")
	}
	if f&FlagDebug != 0 {
		parts = append(parts, "Debug")
	}
	if f&FlagRobustAccess != 0 {
		parts = append(parts, "RobustAccess")
	}
	if f&FlagNoError != 0 {
		parts = append(parts, "NoError")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Options configures context creation. The zero value probes a desktop
// GL context with all workarounds active and logging to stderr.
type Options struct {
	Profile Profile

	// OS names the operating system for driver detection, defaulting
	// to runtime.GOOS. Some driver bugs only exist in a vendor's
	// Windows blob, so tests and remoting setups may override it.
	OS string

	// DisabledWorkarounds opts out of driver workarounds by name.
	// Unknown names are reported and ignored. The GLCTX_DISABLE_WORKAROUNDS
	// environment variable extends the list.
	DisabledWorkarounds []string

	// DisabledExtensions makes the context pretend the named extensions
	// are not present. Extended by GLCTX_DISABLE_EXTENSIONS.
	DisabledExtensions []string

	// Quiet suppresses the creation log. GLCTX_LOG=quiet does the same.
	Quiet bool

	// Log receives the creation log, defaulting to os.Stderr.
	Log io.Writer
}

// Context holds the capability snapshot and the dispatch tables built
// from it. It is not safe for concurrent use, matching the underlying
// GL context.
type Context struct {
	funcs   gl.Functions
	profile Profile
	osName  string

	version        Version
	flags          ContextFlags
	vendorString   string
	rendererString string
	versionString  string

	detectedDriver DetectedDriver
	workarounds    []workaround

	extensionRequiredVersion []Version
	extensionStatus          []uint64
	supported                []Extension
	disabledExtensions       mapset.Set[string]

	state *state

	output io.Writer
	quiet  bool
}

// New probes the current GL context through f and builds the dispatch
// tables. The context must be current on the calling goroutine and stay
// current for every later call through the returned Context.
func New(f gl.Functions, opts Options) (*Context, error) {
	c := &Context{
		funcs:   f,
		profile: opts.Profile,
		osName:  opts.OS,
		output:  opts.Log,
		quiet:   opts.Quiet || os.Getenv("GLCTX_LOG") == "quiet",
	}
	if c.osName == "" {
		c.osName = runtime.GOOS
	}
	if c.output == nil {
		c.output = os.Stderr
	}

	disabledWorkarounds := append(append([]string(nil), opts.DisabledWorkarounds...),
		strings.Fields(os.Getenv("GLCTX_DISABLE_WORKAROUNDS"))...)
	c.workarounds = make([]workaround, len(knownWorkarounds))
	for i, name := range knownWorkarounds {
		c.workarounds[i] = workaround{name: name}
	}
	for _, name := range disabledWorkarounds {
		known := false
		for i := range c.workarounds {
			if c.workarounds[i].name == name {
				c.workarounds[i].disabled = true
				known = true
				break
			}
		}
		if !known {
			c.logf("Unknown workaround %s, ignoring", name)
		}
	}

	c.disabledExtensions = mapset.NewThreadUnsafeSet[string]()
	for _, name := range opts.DisabledExtensions {
		c.disabledExtensions.Add(name)
	}
	for _, name := range strings.Fields(os.Getenv("GLCTX_DISABLE_EXTENSIONS")) {
		c.disabledExtensions.Add(name)
	}

	c.versionString = f.GetString(gl.VERSION)
	if err := c.probeVersion(); err != nil {
		return nil, err
	}

	c.vendorString = f.GetString(gl.VENDOR)
	c.rendererString = f.GetString(gl.RENDERER)
	c.detectedDriver = detectDriver(c.vendorString, c.rendererString, c.versionString, c.osName)

	if !c.profile.ES() && c.version >= GL300 {
		var flags [1]int32
		f.GetIntegerv(gl.CONTEXT_FLAGS, flags[:])
		c.flags = ContextFlags(flags[0])
	}

	c.extensionRequiredVersion = make([]Version, len(allExtensions))
	for _, e := range allExtensions {
		c.extensionRequiredVersion[e.index] = e.required
	}
	c.extensionStatus = make([]uint64, (len(allExtensions)+63)/64)

	c.setupDriverWorkarounds()
	c.markExtensions()

	c.logf("Renderer: %s by %s", c.rendererString, c.vendorString)
	c.logf("OpenGL version: %s", c.versionString)
	c.disabledExtensions.Each(func(name string) bool {
		if _, known := extensionByName[name]; known {
			c.logf("Disabling extension: %s", name)
		}
		return false
	})

	used := make([]string, len(allExtensions))
	c.state = newState(c, used)

	var features []string
	for _, name := range used {
		if name != "" {
			features = append(features, name)
		}
	}
	if len(features) > 0 {
		c.logf("Using optional features:")
		for _, name := range features {
			c.logf("    %s", name)
		}
	}
	if used := c.usedWorkarounds(); len(used) > 0 {
		c.logf("Using driver workarounds:")
		for _, name := range used {
			c.logf("    %s", name)
		}
	}

	return c, nil
}

// probeVersion determines the context version from the integer queries,
// falling back to parsing the version string on contexts that predate
// GL_MAJOR_VERSION.
func (c *Context) probeVersion() error {
	var major, minor [1]int32
	c.funcs.GetIntegerv(gl.MAJOR_VERSION, major[:])
	if c.funcs.GetError() == gl.NO_ERROR {
		c.funcs.GetIntegerv(gl.MINOR_VERSION, minor[:])
		c.version = version(int(major[0]), int(minor[0]), c.profile.ES())
	} else {
		ver, err := gl.ParseVersion(c.versionString)
		if err != nil {
			return fmt.Errorf("glctx: cannot determine context version: %w", err)
		}
		c.version = version(ver[0], ver[1], c.profile.ES())
	}

	min := GL210
	if c.profile.ES() {
		min = GLES200
	}
	if c.version < min {
		return fmt.Errorf("glctx: unsupported version %s", c.version)
	}
	switch c.profile {
	case ProfileES3, ProfileWebGL2:
		if c.version < GLES300 {
			return fmt.Errorf("glctx: %s context required, got %s", c.profile, c.version)
		}
	}
	return nil
}

func (c *Context) markSupported(e Extension) {
	c.extensionStatus[e.index/64] |= 1 << (e.index % 64)
	c.supported = append(c.supported, e)
}

// markExtensions fills the extension bitset: first everything implied by
// the context version, then everything in the reported extension list,
// both subject to the per-extension required version and the disabled
// set.
func (c *Context) markExtensions() {
	for _, v := range versionsFor(c.profile) {
		if v > c.version {
			break
		}
		for _, e := range extensionsFor(v) {
			if c.extensionRequiredVersion[e.index] <= c.version && !c.disabledExtensions.Contains(e.name) {
				c.markSupported(e)
			}
		}
	}
	for _, name := range c.extensionStrings() {
		e, known := extensionByName[name]
		if !known || c.IsExtensionSupported(e) {
			continue
		}
		if c.extensionRequiredVersion[e.index] <= c.version && !c.disabledExtensions.Contains(name) {
			c.markSupported(e)
		}
	}
}

// extensionStrings returns the raw extension list reported by the
// driver, before any filtering.
func (c *Context) extensionStrings() []string {
	indexed := GL300
	if c.profile.ES() {
		indexed = GLES300
	}
	if c.version >= indexed {
		n := c.funcs.GetInteger(gl.NUM_EXTENSIONS)
		out := make([]string, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, c.funcs.GetStringi(gl.EXTENSIONS, i))
		}
		return out
	}
	return strings.Fields(c.funcs.GetString(gl.EXTENSIONS))
}

func (c *Context) logf(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	fmt.Fprintf(c.output, format+"\n", args...)
}

// Profile returns the profile the context was created for.
func (c *Context) Profile() Profile { return c.profile }

// Version returns the probed context version.
func (c *Context) Version() Version { return c.version }

// Flags returns the GL_CONTEXT_FLAGS bitfield, zero on contexts that
// predate it.
func (c *Context) Flags() ContextFlags { return c.flags }

// Vendor returns the GL_VENDOR string.
func (c *Context) Vendor() string { return c.vendorString }

// Renderer returns the GL_RENDERER string.
func (c *Context) Renderer() string { return c.rendererString }

// VersionString returns the GL_VERSION string.
func (c *Context) VersionString() string { return c.versionString }

// DetectedDriver returns the recognized driver classes.
func (c *Context) DetectedDriver() DetectedDriver { return c.detectedDriver }

// SupportedExtensions returns the known extensions this context
// supports, either implied by version or reported by the driver.
func (c *Context) SupportedExtensions() []Extension {
	return append([]Extension(nil), c.supported...)
}

// KnownProfileExtensions returns the known extensions that can exist at
// all on this context's profile family.
func (c *Context) KnownProfileExtensions() []Extension {
	var out []Extension
	for _, e := range allExtensions {
		if e.required.IsES() == c.profile.ES() {
			out = append(out, e)
		}
	}
	return out
}

// IsExtensionSupported reports whether an extension can be relied on,
// taking disabled extensions and driver workarounds into account.
func (c *Context) IsExtensionSupported(e Extension) bool {
	return c.extensionStatus[e.index/64]&(1<<(e.index%64)) != 0
}

// IsVersionSupported reports whether the context can do everything
// version v promises. ES versions are answered on desktop contexts
// through the ES compatibility extensions.
func (c *Context) IsVersionSupported(v Version) bool {
	if v == VersionNone {
		return false
	}
	if v.IsES() == c.profile.ES() {
		return c.version >= v
	}
	if c.profile.ES() {
		return false
	}
	switch v {
	case GLES200:
		return c.IsExtensionSupported(ARBES2Compatibility)
	case GLES300:
		return c.IsExtensionSupported(ARBES3Compatibility)
	case GLES310:
		return c.IsExtensionSupported(ARBES31Compatibility)
	}
	return false
}

// SupportedVersion returns the first of the candidate versions the
// context supports, or GL210/GLES200 when none matches.
func (c *Context) SupportedVersion(versions ...Version) Version {
	for _, v := range versions {
		if c.IsVersionSupported(v) {
			return v
		}
	}
	if c.profile.ES() {
		return GLES200
	}
	return GL210
}

// Release frees GL objects owned by the dispatch layer itself, like the
// default vertex array. The context must still be current.
func (c *Context) Release() {
	c.state.mesh.release(c)
}
