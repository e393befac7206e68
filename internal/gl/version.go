// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"errors"
	"fmt"
)

// ParseVersion parses the major and minor version out of a GL_VERSION
// string. It understands the desktop ("4.6.0 NVIDIA 510.60"), ES
// ("OpenGL ES 3.2 Mesa ...") and WebGL ("WebGL 2.0") shapes.
func ParseVersion(glVer string) ([2]int, error) {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	if _, err := fmt.Sscanf(glVer, "WebGL %d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	if _, err := fmt.Sscanf(glVer, "%d.%d", &ver[0], &ver[1]); err == nil {
		return ver, nil
	}
	return ver, errors.New("failed to parse GL version string: " + glVer)
}

// IsES reports whether a GL_VERSION string identifies an OpenGL ES or
// WebGL context.
func IsES(glVer string) bool {
	var ver [2]int
	if _, err := fmt.Sscanf(glVer, "OpenGL ES %d.%d", &ver[0], &ver[1]); err == nil {
		return true
	}
	_, err := fmt.Sscanf(glVer, "WebGL %d.%d", &ver[0], &ver[1])
	return err == nil
}
