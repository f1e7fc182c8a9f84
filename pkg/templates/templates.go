package templates

import (
	"strings"

	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/types"
)

// Source tells where a template came from
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceUser    Source = "user"
)

// Template is a named block of ignore patterns
type Template struct {
	Name        string
	Description string
	Content     string
	Popular     bool
	Source      Source
}

// Info returns the displayable summary of t
func (t Template) Info() types.TemplateInfo {
	return types.TemplateInfo{
		Name:        t.Name,
		Description: t.Description,
		Popular:     t.Popular,
		Source:      string(t.Source),
	}
}

// ListOptions filters the output of Registry.List
type ListOptions struct {
	PopularOnly bool
}

// Registry is an immutable, ordered set of templates keyed by lowercase name
type Registry struct {
	order  []string
	byName map[string]Template
}

// Normalize turns user input into a registry key
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// New builds a registry from defs, keeping their declaration order.
// Names are lowercased; empty and duplicate names are rejected.
func New(defs ...Template) (*Registry, error) {
	r := &Registry{
		order:  make([]string, 0, len(defs)),
		byName: make(map[string]Template, len(defs)),
	}
	for _, def := range defs {
		key := Normalize(def.Name)
		if key == "" {
			return nil, errors.New(errors.ErrTemplateInvalid, "template name cannot be empty")
		}
		if _, exists := r.byName[key]; exists {
			return nil, errors.Newf(errors.ErrTemplateInvalid, "duplicate template name %q", key).
				WithDetail("name", key)
		}
		def.Name = key
		if def.Source == "" {
			def.Source = SourceBuiltin
		}
		r.order = append(r.order, key)
		r.byName[key] = def
	}
	return r, nil
}

// Get looks a template up by name, ignoring case and surrounding spaces
func (r *Registry) Get(name string) (Template, bool) {
	t, ok := r.byName[Normalize(name)]
	return t, ok
}

// List returns templates in declaration order
func (r *Registry) List(opts ListOptions) []Template {
	result := make([]Template, 0, len(r.order))
	for _, name := range r.order {
		t := r.byName[name]
		if opts.PopularOnly && !t.Popular {
			continue
		}
		result = append(result, t)
	}
	return result
}

// Names returns every template name in declaration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of templates
func (r *Registry) Len() int {
	return len(r.order)
}

// With returns a new registry holding r's templates plus extra.
// An extra template whose name already exists replaces that entry's
// content in place, keeping its popularity and, when the override has no
// description of its own, its description. New names are appended in the
// order given. r is not modified.
func (r *Registry) With(extra ...Template) (*Registry, error) {
	next := &Registry{
		order:  make([]string, len(r.order), len(r.order)+len(extra)),
		byName: make(map[string]Template, len(r.byName)+len(extra)),
	}
	copy(next.order, r.order)
	for k, v := range r.byName {
		next.byName[k] = v
	}

	seen := make(map[string]bool, len(extra))
	for _, def := range extra {
		key := Normalize(def.Name)
		if key == "" {
			return nil, errors.New(errors.ErrTemplateInvalid, "template name cannot be empty")
		}
		if seen[key] {
			return nil, errors.Newf(errors.ErrTemplateInvalid, "duplicate template name %q", key).
				WithDetail("name", key)
		}
		seen[key] = true

		def.Name = key
		if prev, exists := next.byName[key]; exists {
			def.Popular = def.Popular || prev.Popular
			if def.Description == "" || def.Description == key {
				def.Description = prev.Description
			}
		} else {
			next.order = append(next.order, key)
		}
		next.byName[key] = def
	}
	return next, nil
}

// Dedupe removes repeated names, keeping the first occurrence
func Dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}
