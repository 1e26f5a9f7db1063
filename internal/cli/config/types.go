// Package config provides configuration management for the chemparse CLI.
//
// Configuration is layered: defaults, then an optional chemparse.yaml
// config file, then CHEMPARSE_* environment variables, then flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	TablePath    string `koanf:"table_path"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultTablePath = "periodic_table.txt"
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
