// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkaroundsUsedListedInCreationLog(t *testing.T) {
	var sb strings.Builder
	f := newDesktopFake(4, 5)
	f.vendor = "Intel"
	newTestContext(t, f, Options{OS: "windows", Log: &sb})
	log := sb.String()
	assert.Contains(t, log, "Using driver workarounds:")
	assert.Contains(t, log, "intel-windows-crazy-broken-buffer-dsa")
	assert.Contains(t, log, "intel-windows-crazy-broken-vao-dsa")
}

func TestWorkaroundsNoneUsedNoLogSection(t *testing.T) {
	var sb strings.Builder
	newTestContext(t, newDesktopFake(3, 3), Options{Log: &sb})
	assert.NotContains(t, sb.String(), "Using driver workarounds:")
}

func TestWorkaroundsOptOutDropsFromUsedList(t *testing.T) {
	f := newDesktopFake(4, 5)
	f.vendor = "Intel"
	c := newTestContext(t, f, Options{
		OS:                  "windows",
		DisabledWorkarounds: []string{"intel-windows-crazy-broken-buffer-dsa"},
	})
	used := c.usedWorkarounds()
	assert.NotContains(t, used, "intel-windows-crazy-broken-buffer-dsa")
	assert.Contains(t, used, "intel-windows-crazy-broken-vao-dsa")
}

func TestWorkaroundsConsultedButInactiveNotListed(t *testing.T) {
	// A plain desktop driver matches no workaround condition, so nothing
	// is recorded as used even though the registry was consulted.
	c := newTestContext(t, newDesktopFake(4, 5), Options{})
	assert.Empty(t, c.usedWorkarounds())
}

func TestWorkaroundsUnknownQueryPanics(t *testing.T) {
	c := newTestContext(t, newDesktopFake(3, 3), Options{})
	assert.Panics(t, func() { c.isDriverWorkaroundDisabled("no-such-workaround") })
}

func TestWorkaroundsOldGLSLMasksExplicitAttribLocation(t *testing.T) {
	f := newDesktopFake(3, 1, "GL_ARB_explicit_attrib_location")
	c := newTestContext(t, f, Options{})
	assert.False(t, c.IsExtensionSupported(ARBExplicitAttribLocation))
	assert.Contains(t, c.usedWorkarounds(), "no-layout-qualifiers-on-old-glsl")
}

func TestWorkaroundsOldGLSLOptOut(t *testing.T) {
	f := newDesktopFake(3, 1, "GL_ARB_explicit_attrib_location")
	c := newTestContext(t, f, Options{
		DisabledWorkarounds: []string{"no-layout-qualifiers-on-old-glsl"},
	})
	assert.True(t, c.IsExtensionSupported(ARBExplicitAttribLocation))
}

func TestWorkaroundsSvga3DMasksGetTextureSubImage(t *testing.T) {
	f := newDesktopFake(4, 5)
	f.versionString = "4.5 Mesa 20.0.4"
	f.renderer = "SVGA3D; build: RELEASE;"
	c := newTestContext(t, f, Options{})
	assert.False(t, c.IsExtensionSupported(ARBGetTextureSubImage))
}

func TestWorkaroundsRegistryNamesUnique(t *testing.T) {
	seen := make(map[string]bool, len(knownWorkarounds))
	for _, name := range knownWorkarounds {
		assert.False(t, seen[name], name)
		seen[name] = true
	}
}
