// Package config provides configuration management for the gitql CLI.
//
// Configuration is layered: defaults, then an optional gitql.yaml file,
// then GITQL_-prefixed environment variables, then CLI flags. Later
// layers win.
package config

// SourceConfig selects and configures the record source.
type SourceConfig struct {
	// Type is "git" or "sqlite".
	Type string `koanf:"type"`
	// Repo is the repository path for the git source.
	Repo string `koanf:"repo"`
	// Database is the file path for the sqlite source.
	Database string `koanf:"database"`
}

// Config holds all CLI configuration options.
type Config struct {
	Source  SourceConfig `koanf:"source"`
	Output  string       `koanf:"output"`
	Verbose bool         `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultSourceType = "git"
	DefaultRepo       = "."
	DefaultOutput     = "table"
)

// SourceTypes lists the supported source types.
var SourceTypes = []string{"git", "sqlite"}

// OutputFormats lists the supported output formats.
var OutputFormats = []string{"table", "json", "csv", "md"}
