// Package commands provides high-level command implementations for gitig.
//
// Each command is implemented in its own subdirectory:
//   - initialize/ - Init command (detect, then compose)
//   - add/        - Add command
//   - list/       - List command
//   - show/       - Show command
//   - genconfig/  - GenConfig command
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/gitig/pkg/commands/add"
	"github.com/arthur-debert/gitig/pkg/commands/genconfig"
	"github.com/arthur-debert/gitig/pkg/commands/initialize"
	"github.com/arthur-debert/gitig/pkg/commands/list"
	"github.com/arthur-debert/gitig/pkg/commands/show"
	"github.com/arthur-debert/gitig/pkg/types"
)

// InitOptions configures Init.
type InitOptions = initialize.InitOptions

// Init detects the project types in a directory and writes their templates.
func Init(opts InitOptions) (*types.InitResult, error) {
	return initialize.Init(opts)
}

// AddOptions configures Add.
type AddOptions = add.AddOptions

// Add writes the named templates to the output file.
func Add(opts AddOptions) (*types.AddResult, error) {
	return add.Add(opts)
}

// ParseNames splits comma-separated template names.
func ParseNames(args ...string) []string {
	return add.ParseNames(args...)
}

// ListOptions configures List.
type ListOptions = list.ListOptions

// List returns the available templates.
func List(opts ListOptions) (*types.ListResult, error) {
	return list.List(opts)
}

// ShowOptions configures Show.
type ShowOptions = show.ShowOptions

// Show returns one template.
func Show(opts ShowOptions) (*types.ShowResult, error) {
	return show.Show(opts)
}

// GenConfigOptions configures GenConfig.
type GenConfigOptions = genconfig.GenConfigOptions

// GenConfig outputs or writes the default configuration.
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
