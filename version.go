package tally

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version is the released version of tally.
var Version = strings.TrimSpace(rawVersion)
