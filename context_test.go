// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeVersionIntegerQueries(t *testing.T) {
	c := newTestContext(t, newDesktopFake(4, 6), Options{})
	assert.Equal(t, GL460, c.Version())
	assert.Equal(t, "OpenGL 4.6", c.Version().String())
}

func TestProbeVersionStringFallback(t *testing.T) {
	c := newTestContext(t, newES2Fake(), Options{Profile: ProfileES2})
	assert.Equal(t, GLES200, c.Version())
}

func TestProbeVersionTooOld(t *testing.T) {
	f := newDesktopFake(2, 0)
	f.noVersionQuery = true
	f.versionString = "2.0.0 Test GL"
	_, err := New(f, Options{Quiet: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version")
}

func TestES3ProfileRequiresES3Context(t *testing.T) {
	_, err := New(newES2Fake(), Options{Profile: ProfileES3, Quiet: true})
	require.Error(t, err)
}

func TestVersionImpliedExtensions(t *testing.T) {
	c := newTestContext(t, newDesktopFake(4, 5), Options{})
	assert.True(t, c.IsExtensionSupported(ARBDirectStateAccess))
	assert.True(t, c.IsExtensionSupported(ARBVertexArrayObject))
	assert.False(t, c.IsExtensionSupported(ARBTextureFilterAnisotropic))
}

func TestReportedExtensions(t *testing.T) {
	c := newTestContext(t, newDesktopFake(3, 3, "GL_ARB_texture_storage"), Options{})
	assert.True(t, c.IsExtensionSupported(ARBTextureStorage))
	assert.False(t, c.IsExtensionSupported(ARBDirectStateAccess))
}

func TestDisabledExtensions(t *testing.T) {
	c := newTestContext(t, newDesktopFake(4, 5), Options{
		DisabledExtensions: []string{"GL_ARB_direct_state_access"},
	})
	assert.False(t, c.IsExtensionSupported(ARBDirectStateAccess))
	// The rest of 4.5 is untouched.
	assert.True(t, c.IsExtensionSupported(ARBGetTextureSubImage))
}

func TestIsVersionSupportedCrossFamily(t *testing.T) {
	c := newTestContext(t, newDesktopFake(4, 3), Options{})
	assert.True(t, c.IsVersionSupported(GLES300))
	assert.False(t, c.IsVersionSupported(GLES310))

	es := newTestContext(t, newES3Fake(), Options{Profile: ProfileES3})
	assert.False(t, es.IsVersionSupported(GL300))
}

func TestSupportedVersionFallback(t *testing.T) {
	c := newTestContext(t, newDesktopFake(3, 3), Options{})
	assert.Equal(t, GL330, c.SupportedVersion(GL450, GL330))
	assert.Equal(t, GL210, c.SupportedVersion(GL450, GL440))
}

func TestCreationLog(t *testing.T) {
	var sb strings.Builder
	newTestContext(t, newDesktopFake(4, 5), Options{Log: &sb})
	log := sb.String()
	assert.Contains(t, log, "Renderer: Test Renderer by Test Vendor")
	assert.Contains(t, log, "OpenGL version: 4.5.0 Test GL")
	assert.Contains(t, log, "Using optional features:")
	assert.Contains(t, log, "GL_ARB_direct_state_access")
}

func TestCreationLogQuiet(t *testing.T) {
	var sb strings.Builder
	newTestContext(t, newDesktopFake(4, 5), Options{Log: &sb, Quiet: true})
	assert.Empty(t, sb.String())
}

func TestExtensionUseLoggedOnce(t *testing.T) {
	// DSA gates slots in several subsystems; the feature list must
	// still name it exactly once.
	var sb strings.Builder
	newTestContext(t, newDesktopFake(4, 5), Options{Log: &sb})
	assert.Equal(t, 1, strings.Count(sb.String(), "GL_ARB_direct_state_access"))
}

func TestDisabledExtensionLogged(t *testing.T) {
	var sb strings.Builder
	newTestContext(t, newDesktopFake(4, 5), Options{
		Log:                &sb,
		DisabledExtensions: []string{"GL_ARB_direct_state_access", "GL_not_a_real_extension"},
	})
	assert.Contains(t, sb.String(), "Disabling extension: GL_ARB_direct_state_access")
	assert.NotContains(t, sb.String(), "GL_not_a_real_extension")
}

func TestUnknownWorkaroundWarning(t *testing.T) {
	var sb strings.Builder
	newTestContext(t, newDesktopFake(4, 5), Options{
		Log:                 &sb,
		DisabledWorkarounds: []string{"no-such-workaround"},
	})
	assert.Contains(t, sb.String(), "Unknown workaround no-such-workaround, ignoring")
}

func TestDeterministicSetup(t *testing.T) {
	// Identical snapshots must produce identical call sequences.
	f1 := newDesktopFake(4, 5)
	f2 := newDesktopFake(4, 5)
	newTestContext(t, f1, Options{})
	newTestContext(t, f2, Options{})
	assert.Equal(t, f1.calls, f2.calls)
}

func TestIndexedExtensionQuery(t *testing.T) {
	f := newDesktopFake(4, 5, "GL_ARB_robustness")
	c := newTestContext(t, f, Options{})
	assert.True(t, c.IsExtensionSupported(ARBRobustness))
	// A 4.5 context must use the indexed query, not the legacy
	// monolithic string.
	assert.True(t, c.Version() >= GL300)
}

func TestKnownProfileExtensions(t *testing.T) {
	c := newTestContext(t, newDesktopFake(3, 3), Options{})
	for _, e := range c.KnownProfileExtensions() {
		assert.False(t, e.RequiredVersion().IsES(), e.Name())
	}

	es := newTestContext(t, newES2Fake(), Options{Profile: ProfileES2})
	for _, e := range es.KnownProfileExtensions() {
		assert.True(t, e.RequiredVersion().IsES(), e.Name())
	}
}

func TestContextFlags(t *testing.T) {
	f := newDesktopFake(3, 2)
	f.flags = int32(FlagForwardCompatible | FlagDebug)
	c := newTestContext(t, f, Options{})
	assert.Equal(t, FlagForwardCompatible|FlagDebug, c.Flags())
	assert.Equal(t, "ForwardCompatible|Debug", c.Flags().String())
}
