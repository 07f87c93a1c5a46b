package cellar

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the release of the library and the cellar CLI.
var Version = strings.TrimSpace(version)
