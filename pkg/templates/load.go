package templates

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/spf13/afero"
)

// FileExt is the extension of template files in a user template directory
const FileExt = ".gitignore"

// LoadDir reads user templates from the immediate children of dir.
//
// Every "<name>.gitignore" file becomes a template called <name>. The
// description is taken from the first "# " comment line, falling back to
// the name. A missing directory yields no templates and no error.
func LoadDir(fs afero.Fs, dir string) ([]Template, error) {
	logger := logging.GetLogger("templates")
	if dir == "" {
		return nil, nil
	}

	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRead, "cannot access template directory %s", dir)
	}
	if !exists {
		logger.Debug().Str("dir", dir).Msg("User template directory not found")
		return nil, nil
	}

	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRead, "cannot read template directory %s", dir)
	}

	var result []Template
	for _, info := range infos {
		if info.IsDir() || filepath.Ext(info.Name()) != FileExt {
			continue
		}
		name := Normalize(strings.TrimSuffix(info.Name(), FileExt))
		if name == "" {
			continue
		}

		path := filepath.Join(dir, info.Name())
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read template %s", path)
		}
		content := string(data)
		if strings.TrimSpace(content) == "" {
			logger.Warn().Str("path", path).Msg("Skipping empty user template")
			continue
		}
		if !strings.HasSuffix(content, "\n") {
			content += "\n"
		}

		result = append(result, Template{
			Name:        name,
			Description: describe(content, name),
			Content:     content,
			Source:      SourceUser,
		})
		logger.Debug().Str("name", name).Str("path", path).Msg("Loaded user template")
	}

	return result, nil
}

// describe returns the text of the first "# " comment line in content
func describe(content, fallback string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			if desc := strings.TrimSpace(strings.TrimPrefix(line, "# ")); desc != "" {
				return desc
			}
		}
	}
	return fallback
}
