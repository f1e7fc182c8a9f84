package show

import (
	"strings"

	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/arthur-debert/gitig/pkg/templates"
	"github.com/arthur-debert/gitig/pkg/types"
)

// ShowOptions defines the options for the Show command.
type ShowOptions struct {
	Registry *templates.Registry
	Name     string
}

// Show looks up one template and returns its content.
func Show(opts ShowOptions) (*types.ShowResult, error) {
	log := logging.GetLogger("commands.show")
	log.Debug().Str("command", "Show").Str("name", opts.Name).Msg("Executing command")

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "template name cannot be empty")
	}
	if opts.Registry == nil {
		return nil, errors.New(errors.ErrInternal, "no template registry")
	}

	tmpl, ok := opts.Registry.Get(name)
	if !ok {
		return nil, errors.Newf(errors.ErrTemplateNotFound, "Template %q not found.", name).
			WithDetail("names", []string{name})
	}

	return &types.ShowResult{
		Template: tmpl.Info(),
		Content:  tmpl.Content,
	}, nil
}
