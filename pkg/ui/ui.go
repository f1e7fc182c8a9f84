// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), JSON, YAML and TOML output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/gitig/pkg/ui/json"
	"github.com/arthur-debert/gitig/pkg/ui/structured"
	"github.com/arthur-debert/gitig/pkg/ui/terminal"
	"github.com/arthur-debert/gitig/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
// It provides methods for rendering different types of data and messages.
type Renderer interface {
	// RenderResult renders any command result type
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		// Detect terminal capabilities and choose appropriate format
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Buffers and pipes get plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return structured.NewYAML(output)
	case FormatTOML:
		return structured.NewTOML(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
