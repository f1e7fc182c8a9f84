package add

import (
	"strings"

	"github.com/arthur-debert/gitig/pkg/compose"
	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/arthur-debert/gitig/pkg/templates"
	"github.com/arthur-debert/gitig/pkg/types"
	"github.com/spf13/afero"
)

// AddOptions holds options for the add command
type AddOptions struct {
	FS       afero.Fs
	Registry *templates.Registry
	// Dir is the working directory relative output paths resolve against
	Dir string
	// Names as given on the command line. Each entry may hold several
	// comma-separated names.
	Names          []string
	Append         bool
	OutputPath     string
	KeepDuplicates bool
}

// ParseNames splits comma-separated names, trims whitespace and drops empty
// entries. Order is preserved.
func ParseNames(args ...string) []string {
	names := []string{}
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if name := strings.TrimSpace(part); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// Add writes the named templates to the output file
func Add(opts AddOptions) (*types.AddResult, error) {
	logger := logging.GetLogger("commands.add")
	logger.Debug().Strs("args", opts.Names).Msg("Executing command")

	names := ParseNames(opts.Names...)
	if len(names) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no template names given")
	}
	if opts.Registry == nil {
		return nil, errors.New(errors.ErrInternal, "no template registry")
	}

	composer := compose.New(opts.FS, opts.Registry)
	composed, err := composer.Apply(names, compose.Options{
		Append:         opts.Append,
		OutputPath:     compose.ResolvePath(opts.Dir, opts.OutputPath),
		KeepDuplicates: opts.KeepDuplicates,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("output", composed.OutputPath).
		Strs("templates", composed.Templates).
		Msg("Command finished")

	return &types.AddResult{
		Requested: names,
		Compose:   *composed,
	}, nil
}
