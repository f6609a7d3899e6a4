package config

import _ "embed"

// DefaultConfigYAML is the built-in configuration compiled into the binary.
// An external config file or PENNYWISE_* env vars override it.
//
//go:embed config.default.yaml
var DefaultConfigYAML []byte
