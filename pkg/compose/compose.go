// Package compose resolves template names and writes the output file.
//
// The output is built entirely in memory and written with one call, so a
// failed lookup never leaves a partially written file behind.
package compose

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/filesystem"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/arthur-debert/gitig/pkg/templates"
	"github.com/arthur-debert/gitig/pkg/types"
	"github.com/spf13/afero"
)

// DefaultOutputPath is used when Options.OutputPath is empty
const DefaultOutputPath = ".gitignore"

// Options controls how the output file is produced
type Options struct {
	// Append keeps the existing file content as a prefix
	Append bool
	// OutputPath is the file to write; defaults to DefaultOutputPath
	OutputPath string
	// KeepDuplicates writes a template once per occurrence in names
	KeepDuplicates bool
}

// ResolvePath returns path joined to dir unless it is absolute.
// An empty path resolves to DefaultOutputPath.
func ResolvePath(dir, path string) string {
	if path == "" {
		path = DefaultOutputPath
	}
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

// Composer concatenates registry templates into one output file
type Composer struct {
	fs       afero.Fs
	registry *templates.Registry
}

// New creates a Composer over fs and registry
func New(fs afero.Fs, registry *templates.Registry) *Composer {
	return &Composer{fs: fs, registry: registry}
}

// Resolve looks up every name. All unknown names are reported together.
func (c *Composer) Resolve(names []string) ([]templates.Template, error) {
	if len(names) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no templates specified")
	}

	resolved := make([]templates.Template, 0, len(names))
	var missing []string
	for _, name := range names {
		tmpl, ok := c.registry.Get(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		resolved = append(resolved, tmpl)
	}

	if len(missing) > 0 {
		var err *errors.GitigError
		if len(missing) == 1 {
			err = errors.Newf(errors.ErrTemplateNotFound, "Template %q not found.", missing[0])
		} else {
			err = errors.Newf(errors.ErrTemplateNotFound, "Templates not found: %s.", strings.Join(quoteAll(missing), ", "))
		}
		return nil, err.WithDetail("names", missing)
	}
	return resolved, nil
}

// Apply resolves names, builds the new content and writes it to the
// output path in a single write.
func (c *Composer) Apply(names []string, opts Options) (*types.ComposeResult, error) {
	logger := logging.GetLogger("compose")
	done := logging.LogOperationStart(logger, "compose")
	defer done()

	output := opts.OutputPath
	if output == "" {
		output = DefaultOutputPath
	}

	resolved, err := c.Resolve(names)
	if err != nil {
		return nil, err
	}
	if !opts.KeepDuplicates {
		resolved = dedupeTemplates(resolved)
	}

	exists, err := afero.Exists(c.fs, output)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot access %s", output)
	}

	base := ""
	appended := false
	if opts.Append && exists {
		data, err := afero.ReadFile(c.fs, output)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", output).
				WithDetail("path", output)
		}
		base = string(data)
		appended = true
	}

	contents := make([]string, len(resolved))
	applied := make([]string, len(resolved))
	for i, tmpl := range resolved {
		contents[i] = tmpl.Content
		applied[i] = tmpl.Name
	}

	content := Render(base, appended, contents)
	if err := filesystem.WriteFileAtomic(c.fs, output, []byte(content)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", output).
			WithDetail("path", output)
	}

	result := &types.ComposeResult{
		OutputPath:      output,
		Templates:       applied,
		AppendRequested: opts.Append,
		Appended:        appended,
		Created:         !exists,
		Bytes:           len(content),
	}

	logger.Info().
		Str("output", output).
		Strs("templates", applied).
		Bool("appended", appended).
		Bool("created", result.Created).
		Int("bytes", result.Bytes).
		Msg("Output file written")

	return result, nil
}

// Render builds the output content.
//
// With keepBase the base content is kept byte for byte, a newline is
// added if it does not end with one, then one blank line separates it from
// the templates. Template contents are joined with one extra newline, which
// is a blank line since every template ends with a newline.
func Render(base string, keepBase bool, contents []string) string {
	var sb strings.Builder
	if keepBase {
		sb.WriteString(base)
		if !strings.HasSuffix(base, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	for i, content := range contents {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(content)
	}
	return sb.String()
}

func dedupeTemplates(in []templates.Template) []templates.Template {
	names := make([]string, len(in))
	byName := make(map[string]templates.Template, len(in))
	for i, tmpl := range in {
		names[i] = tmpl.Name
		byName[tmpl.Name] = tmpl
	}
	unique := templates.Dedupe(names)
	out := make([]templates.Template, len(unique))
	for i, name := range unique {
		out[i] = byName[name]
	}
	return out
}

func quoteAll(names []string) []string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = `"` + name + `"`
	}
	return quoted
}
