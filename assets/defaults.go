// Package assets embeds default configuration shipped with the binary.
package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration,
// written to ~/.shellbridge/config.yaml on first run.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte
