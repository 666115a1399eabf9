package quill

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the quill release, e.g. "0.1.0".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag, e.g. "v0.1.0".
func VersionTag() string {
	return "v" + Version()
}
