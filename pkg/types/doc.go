// Package types defines the result structures returned by gitig commands.
// Commands never print; the CLI renders these results for the terminal or
// as JSON, YAML or TOML.
package types
