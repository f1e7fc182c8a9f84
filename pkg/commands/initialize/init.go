package initialize

import (
	"github.com/arthur-debert/gitig/pkg/compose"
	"github.com/arthur-debert/gitig/pkg/detect"
	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/arthur-debert/gitig/pkg/templates"
	"github.com/arthur-debert/gitig/pkg/types"
	"github.com/spf13/afero"
)

// InitOptions defines the options for the Init command.
type InitOptions struct {
	FS       afero.Fs
	Registry *templates.Registry
	// Dir is the directory scanned for project markers. Relative output
	// paths resolve against it.
	Dir string
	// GOOS overrides the host OS used for the OS template.
	GOOS string
	// ExtraRules run after the built-in detection rules.
	ExtraRules     []detect.Rule
	KeepDuplicates bool
	Append         bool
	OutputPath     string
}

// Init detects the project types in Dir and writes their templates.
func Init(opts InitOptions) (*types.InitResult, error) {
	log := logging.GetLogger("commands.init")
	log.Debug().Str("command", "Init").Str("dir", opts.Dir).Msg("Executing command")

	if opts.Registry == nil {
		return nil, errors.New(errors.ErrInternal, "no template registry")
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	detector := detect.New(opts.FS, detect.Options{
		ExtraRules:     opts.ExtraRules,
		GOOS:           opts.GOOS,
		KeepDuplicates: opts.KeepDuplicates,
	})
	detected, err := detector.Detect(dir)
	if err != nil {
		return nil, err
	}
	if len(detected) == 0 {
		return nil, errors.New(errors.ErrNothingDetected, "Could not detect project type.").
			WithDetail("dir", dir)
	}

	composer := compose.New(opts.FS, opts.Registry)
	composed, err := composer.Apply(detected, compose.Options{
		Append:         opts.Append,
		OutputPath:     compose.ResolvePath(dir, opts.OutputPath),
		KeepDuplicates: opts.KeepDuplicates,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("command", "Init").
		Strs("detected", detected).
		Str("output", composed.OutputPath).
		Msg("Command finished")

	return &types.InitResult{
		Detected: detected,
		Compose:  *composed,
	}, nil
}
