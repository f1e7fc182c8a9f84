package ui

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/gitig/pkg/types"
	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders a template as a markdown document for the terminal
type MarkdownRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Word wrap width (0 = glamour default)
}

// NewMarkdownRenderer creates a markdown renderer using glamour with auto-detection
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{Style: "auto"}
}

// TemplateMarkdown returns the markdown document shown by show --pretty
func TemplateMarkdown(result *types.ShowResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", result.Template.Description)
	fmt.Fprintf(&sb, "Template `%s`", result.Template.Name)
	if result.Template.Popular {
		sb.WriteString(" (popular)")
	}
	sb.WriteString("\n\n```gitignore\n")
	sb.WriteString(result.Content)
	if !strings.HasSuffix(result.Content, "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("```\n")
	return sb.String()
}

// Render converts the template to styled terminal output. On any glamour
// failure the raw markdown is returned.
func (r *MarkdownRenderer) Render(result *types.ShowResult) string {
	doc := TemplateMarkdown(result)

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return doc
	}
	rendered, err := renderer.Render(doc)
	if err != nil {
		return doc
	}
	return rendered
}
