package formatter

import (
	"fmt"
	"regexp"
	"strconv"
)

var versionHeaderRegex = regexp.MustCompile(`## \[(\d+)\.(\d+)\.(\d+)\]`)

// DeriveVersion calcula la versión de la nueva sección a partir del
// changelog existente. Con auto-increment se bumpea solo el patch (nunca
// major/minor, decisión de diseño); sin auto-increment se reusa la última
// versión tal cual, lo que hace idempotente el re-render. Sin versión
// previa arranca en 0.0.1.
func DeriveVersion(changelog string, autoIncrement bool) string {
	match := versionHeaderRegex.FindStringSubmatch(changelog)
	if match == nil {
		return "0.0.1"
	}

	major, _ := strconv.Atoi(match[1])
	minor, _ := strconv.Atoi(match[2])
	patch, _ := strconv.Atoi(match[3])

	if autoIncrement {
		patch++
	}

	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
