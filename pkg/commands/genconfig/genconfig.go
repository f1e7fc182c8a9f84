package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/gitig/pkg/config"
	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/filesystem"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/arthur-debert/gitig/pkg/types"
	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	FS afero.Fs
	// Path is the file to write; defaults to .gitig.toml
	Path  string
	Write bool
	// Force replaces an existing file
	Force bool
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GenerateConfigContent()

	// The generated file must stay loadable as-is
	var probe map[string]interface{}
	if err := gotoml.Unmarshal([]byte(content), &probe); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "generated configuration is not valid TOML")
	}

	result := &types.GenConfigResult{ConfigContent: content}

	// If not writing, just return the content
	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	path := opts.Path
	if path == "" {
		path = config.ProjectConfigFileName
	}

	exists, err := afero.Exists(opts.FS, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot access %s", path)
	}
	if exists && !opts.Force {
		return nil, errors.Newf(errors.ErrAlreadyExists, "%s already exists", path).
			WithDetail("path", path)
	}

	if err := opts.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot create directory for %s", path)
	}
	if err := filesystem.WriteFileAtomic(opts.FS, path, []byte(content)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path).
			WithDetail("path", path)
	}

	logger.Info().Str("path", path).Bool("overwritten", exists).Msg("Written config file")

	result.Path = path
	result.Written = true
	result.Overwritten = exists
	return result, nil
}
