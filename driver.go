// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import "strings"

// DetectedDriver is a bitmask of driver classes recognized from the
// GL_VENDOR, GL_RENDERER and GL_VERSION strings. Several bits can be set
// at once (a VMware guest reports both Mesa and SVGA3D).
type DetectedDriver uint16

const (
	DriverAmd DetectedDriver = 1 << iota
	DriverAngle
	DriverArmMali
	DriverIntelWindows
	DriverMesa
	DriverNVidia
	DriverSvga3D
	DriverSwiftShader
)

func (d DetectedDriver) String() string {
	var parts []string
	for _, f := range []struct {
		bit  DetectedDriver
		name string
	}{
		{DriverAmd, "AMD"},
		{DriverAngle, "ANGLE"},
		{DriverArmMali, "ArmMali"},
		{DriverIntelWindows, "IntelWindows"},
		{DriverMesa, "Mesa"},
		{DriverNVidia, "NVidia"},
		{DriverSvga3D, "SVGA3D"},
		{DriverSwiftShader, "SwiftShader"},
	} {
		if d&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// detectDriver classifies the driver from the context strings. The OS
// name is runtime.GOOS unless overridden in Options; some driver bugs
// only exist in a vendor's Windows blob.
func detectDriver(vendor, renderer, versionString, osName string) DetectedDriver {
	var d DetectedDriver

	if strings.Contains(vendor, "ATI Technologies Inc.") {
		d |= DriverAmd
	}

	if strings.Contains(renderer, "ANGLE") || strings.Contains(versionString, "ANGLE") {
		d |= DriverAngle
	}

	if strings.Contains(vendor, "Intel") && osName == "windows" {
		d |= DriverIntelWindows
	}

	if strings.Contains(versionString, "Mesa") {
		d |= DriverMesa
		if strings.Contains(renderer, "SVGA3D") {
			d |= DriverSvga3D
		}
	}

	if strings.Contains(vendor, "NVIDIA Corporation") {
		d |= DriverNVidia
	}

	if strings.Contains(renderer, "SwiftShader") {
		d |= DriverSwiftShader
	}

	if strings.Contains(vendor, "ARM") && strings.Contains(renderer, "Mali") {
		d |= DriverArmMali
	}

	return d
}
