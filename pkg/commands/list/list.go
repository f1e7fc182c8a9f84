package list

import (
	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/arthur-debert/gitig/pkg/templates"
	"github.com/arthur-debert/gitig/pkg/types"
)

// ListOptions defines the options for the List command.
type ListOptions struct {
	Registry *templates.Registry
	// PopularOnly keeps only the templates flagged as popular.
	PopularOnly bool
}

// List returns the available templates in declaration order.
func List(opts ListOptions) (*types.ListResult, error) {
	log := logging.GetLogger("commands.list")
	log.Debug().Str("command", "List").Bool("popular", opts.PopularOnly).Msg("Executing command")

	if opts.Registry == nil {
		return nil, errors.New(errors.ErrInternal, "no template registry")
	}

	tmpls := opts.Registry.List(templates.ListOptions{PopularOnly: opts.PopularOnly})
	result := &types.ListResult{
		Templates:   make([]types.TemplateInfo, len(tmpls)),
		Total:       len(tmpls),
		PopularOnly: opts.PopularOnly,
	}
	for i, t := range tmpls {
		result.Templates[i] = t.Info()
	}

	log.Info().Str("command", "List").Int("templateCount", result.Total).Msg("Command finished")
	return result, nil
}
