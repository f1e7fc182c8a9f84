// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/types"
)

// NameWidth is the column width template names are padded to in listings
const NameWidth = 12

// Styles decorates fragments of the output. Every field maps a plain
// string to its displayed form.
type Styles struct {
	Title   func(string) string
	Name    func(string) string
	Popular func(string) string
	Success func(string) string
	Error   func(string) string
	Path    func(string) string
	Muted   func(string) string
}

// Plain returns styles that leave text unchanged
func Plain() Styles {
	id := func(s string) string { return s }
	return Styles{Title: id, Name: id, Popular: id, Success: id, Error: id, Path: id, Muted: id}
}

// Renderer provides line-oriented output for humans
type Renderer struct {
	output io.Writer
	styles Styles
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return NewStyled(output, Plain())
}

// NewStyled creates a text renderer that decorates output with styles
func NewStyled(output io.Writer, styles Styles) (*Renderer, error) {
	return &Renderer{output: output, styles: styles}, nil
}

// RenderResult renders any result type as text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.ListResult:
		return r.renderList(v)
	case *types.ShowResult:
		return r.renderShow(v)
	case *types.InitResult:
		return r.renderInit(v)
	case *types.AddResult:
		return r.renderCompose(&v.Compose)
	case *types.ComposeResult:
		return r.renderCompose(v)
	case *types.GenConfigResult:
		return r.renderGenConfig(v)
	default:
		// For unknown types, just print them
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error as text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", r.styles.Error("Error:"), errors.UserMessage(err))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) renderList(result *types.ListResult) error {
	var sb strings.Builder
	sb.WriteString(r.styles.Title("Available templates:"))
	sb.WriteString("\n\n")
	for _, t := range result.Templates {
		sb.WriteString("  ")
		sb.WriteString(r.styles.Name(fmt.Sprintf("%-*s", NameWidth, t.Name)))
		sb.WriteString(" - ")
		sb.WriteString(t.Description)
		if t.Popular && !result.PopularOnly {
			sb.WriteString(" ")
			sb.WriteString(r.styles.Popular("*"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(r.styles.Muted(fmt.Sprintf("Total: %d templates", result.Total)))
	sb.WriteString("\n")
	_, err := io.WriteString(r.output, sb.String())
	return err
}

func (r *Renderer) renderShow(result *types.ShowResult) error {
	var sb strings.Builder
	sb.WriteString(r.styles.Title("# Template: " + result.Template.Description))
	sb.WriteString("\n\n")
	sb.WriteString(result.Content)
	if !strings.HasSuffix(result.Content, "\n") {
		sb.WriteString("\n")
	}
	_, err := io.WriteString(r.output, sb.String())
	return err
}

func (r *Renderer) renderInit(result *types.InitResult) error {
	if _, err := fmt.Fprintf(r.output, "Detected project types: %s\n", strings.Join(result.Detected, ", ")); err != nil {
		return err
	}
	return r.renderCompose(&result.Compose)
}

func (r *Renderer) renderCompose(result *types.ComposeResult) error {
	action := "Created"
	if result.Appended {
		action = "Updated"
	}
	_, err := fmt.Fprintf(r.output, "%s %s with templates: %s\n",
		r.styles.Success(action),
		r.styles.Path(result.OutputPath),
		strings.Join(result.Templates, ", "))
	return err
}

func (r *Renderer) renderGenConfig(result *types.GenConfigResult) error {
	if !result.Written {
		_, err := io.WriteString(r.output, result.ConfigContent)
		return err
	}
	action := "Created"
	if result.Overwritten {
		action = "Replaced"
	}
	_, err := fmt.Fprintf(r.output, "%s %s\n", r.styles.Success(action), r.styles.Path(result.Path))
	return err
}
