// Package detect guesses which ignore templates apply to a directory.
//
// Detection looks only at the immediate children of the directory and at
// the host operating system. Every rule is evaluated independently; all
// matching rules contribute a template name.
package detect

import (
	"runtime"

	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/filesystem"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/arthur-debert/gitig/pkg/templates"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Rule emits Template when any directory entry matches one of Patterns.
// Patterns are doublestar globs matched against entry base names.
type Rule struct {
	Template string
	Patterns []string
}

// DefaultRules are the built-in language and IDE rules, in emission order
var DefaultRules = []Rule{
	{Template: "node", Patterns: []string{"package.json"}},
	{Template: "python", Patterns: []string{"*.py", "requirements.txt", "setup.py", "pyproject.toml"}},
	{Template: "go", Patterns: []string{"go.mod", "*.go"}},
	{Template: "rust", Patterns: []string{"Cargo.toml", "*.rs"}},
	{Template: "java", Patterns: []string{"pom.xml", "build.gradle", "*.java"}},
	{Template: "vscode", Patterns: []string{".vscode"}},
	{Template: "jetbrains", Patterns: []string{".idea"}},
}

// osTemplates maps runtime.GOOS values to template names
var osTemplates = map[string]string{
	"darwin":  "macos",
	"windows": "windows",
	"linux":   "linux",
}

// OSTemplate returns the template for a GOOS value, or "" when there is none
func OSTemplate(goos string) string {
	return osTemplates[goos]
}

// Options configures a Detector
type Options struct {
	// Rules replaces DefaultRules when non-nil
	Rules []Rule
	// ExtraRules run after Rules and before the OS rule
	ExtraRules []Rule
	// GOOS overrides runtime.GOOS
	GOOS string
	// KeepDuplicates disables removal of repeated template names
	KeepDuplicates bool
}

// Detector inspects a directory listing through an afero filesystem
type Detector struct {
	fs   afero.Fs
	opts Options
}

// New creates a Detector
func New(fs afero.Fs, opts Options) *Detector {
	if opts.Rules == nil {
		opts.Rules = DefaultRules
	}
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	return &Detector{fs: fs, opts: opts}
}

// Detect returns the ordered template names that apply to dir: language
// and IDE rules first, then extra rules, then the host OS.
func (d *Detector) Detect(dir string) ([]string, error) {
	logger := logging.GetLogger("detect")

	entries, err := filesystem.ReadDirNames(d.fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirRead, "cannot read directory %s", dir).
			WithDetail("dir", dir)
	}
	logger.Debug().Str("dir", dir).Int("entries", len(entries)).Msg("Scanning directory")

	var detected []string
	rules := append(append([]Rule{}, d.opts.Rules...), d.opts.ExtraRules...)
	for _, rule := range rules {
		if entry, ok := rule.Match(entries); ok {
			logger.Debug().
				Str("template", rule.Template).
				Str("entry", entry).
				Msg("Detection rule matched")
			detected = append(detected, templates.Normalize(rule.Template))
		}
	}

	if name := OSTemplate(d.opts.GOOS); name != "" {
		detected = append(detected, name)
	} else {
		logger.Debug().Str("goos", d.opts.GOOS).Msg("No template for host OS")
	}

	if !d.opts.KeepDuplicates {
		detected = templates.Dedupe(detected)
	}

	logger.Info().Strs("detected", detected).Msg("Detection finished")
	return detected, nil
}

// Match reports the first entry that matches any of the rule's patterns
func (r Rule) Match(entries []string) (string, bool) {
	for _, pattern := range r.Patterns {
		for _, entry := range entries {
			// ValidateRules rejects bad patterns up front, so an error here
			// only means "no match"
			if ok, err := doublestar.Match(pattern, entry); err == nil && ok {
				return entry, true
			}
		}
	}
	return "", false
}

// ValidateRules checks that every rule names a template and has valid patterns
func ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if templates.Normalize(rule.Template) == "" {
			return errors.Newf(errors.ErrConfigValid, "detection rule %d has no template", i+1)
		}
		if len(rule.Patterns) == 0 {
			return errors.Newf(errors.ErrConfigValid, "detection rule for %q has no patterns", rule.Template)
		}
		for _, pattern := range rule.Patterns {
			if !doublestar.ValidatePattern(pattern) {
				return errors.Newf(errors.ErrConfigValid, "detection rule for %q has invalid pattern %q", rule.Template, pattern).
					WithDetail("pattern", pattern)
			}
		}
	}
	return nil
}
