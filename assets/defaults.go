package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// HelpText is shown by the interactive Help screen.
//
//go:embed defaults/help.txt
var HelpText string
