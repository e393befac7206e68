// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "fmt"

// Profile selects the flavor of GL API a context was created for. It
// replaces compile-time target selection: a single build supports all
// profiles and the dispatch tables are chosen at context creation.
type Profile int

const (
	ProfileGL Profile = iota
	ProfileES2
	ProfileES3
	ProfileWebGL1
	ProfileWebGL2
)

// ES reports whether the profile is OpenGL ES or WebGL flavored.
func (p Profile) ES() bool {
	return p != ProfileGL
}

// WebGL reports whether the profile runs in a browser.
func (p Profile) WebGL() bool {
	return p == ProfileWebGL1 || p == ProfileWebGL2
}

func (p Profile) String() string {
	switch p {
	case ProfileGL:
		return "OpenGL"
	case ProfileES2:
		return "OpenGL ES 2"
	case ProfileES3:
		return "OpenGL ES 3"
	case ProfileWebGL1:
		return "WebGL 1"
	case ProfileWebGL2:
		return "WebGL 2"
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

// Version identifies a GL version. Desktop versions are encoded as
// major*100 + minor*10, ES and WebGL versions carry an extra bit so the
// two families never compare equal.
type Version uint32

const versionES Version = 0x10000

const (
	// VersionNone means "no version": an extension with VersionNone as
	// its core version is never implied by the context version, and
	// bumping an extension's required version to VersionNone disables it.
	VersionNone Version = 0xffffff

	GL210 Version = 210
	GL300 Version = 300
	GL310 Version = 310
	GL320 Version = 320
	GL330 Version = 330
	GL400 Version = 400
	GL410 Version = 410
	GL420 Version = 420
	GL430 Version = 430
	GL440 Version = 440
	GL450 Version = 450
	GL460 Version = 460

	GLES200 Version = versionES | 200
	GLES300 Version = versionES | 300
	GLES310 Version = versionES | 310
	GLES320 Version = versionES | 320
)

func version(major, minor int, es bool) Version {
	v := Version(major*100 + minor*10)
	if es {
		v |= versionES
	}
	return v
}

// Major returns the major version number.
func (v Version) Major() int {
	return int(v&^versionES) / 100
}

// Minor returns the minor version number.
func (v Version) Minor() int {
	return int(v&^versionES) % 100 / 10
}

// IsES reports whether the version belongs to the ES/WebGL family.
func (v Version) IsES() bool {
	return v&versionES != 0
}

func (v Version) String() string {
	if v == VersionNone {
		return "None"
	}
	if v.IsES() {
		return fmt.Sprintf("OpenGL ES %d.%d", v.Major(), v.Minor())
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major(), v.Minor())
}

// versionsFor lists the known versions of a profile's family in
// ascending order, used when marking extensions implied by the context
// version.
func versionsFor(p Profile) []Version {
	if p.ES() {
		return []Version{GLES200, GLES300, GLES310, GLES320}
	}
	return []Version{GL300, GL310, GL320, GL330, GL400, GL410, GL420, GL430, GL440, GL450, GL460}
}
