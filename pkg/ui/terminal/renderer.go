// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/gitig/pkg/style"
	"github.com/arthur-debert/gitig/pkg/ui/text"
)

// Renderer is the text layout decorated with the lipgloss styles
type Renderer struct {
	*text.Renderer
}

// Styles returns the lipgloss styles as text decorators
func Styles() text.Styles {
	return text.Styles{
		Title:   render(style.TitleStyle),
		Name:    render(style.TemplateNameStyle),
		Popular: render(style.PopularMarkerStyle),
		Success: render(style.SuccessStyle),
		Error:   render(style.ErrorStyle),
		Path:    render(style.PathStyle),
		Muted:   render(style.MutedStyle),
	}
}

func render(s lipgloss.Style) func(string) string {
	return func(str string) string { return s.Render(str) }
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	inner, err := text.NewStyled(w, Styles())
	if err != nil {
		return nil, err
	}
	return &Renderer{Renderer: inner}, nil
}
