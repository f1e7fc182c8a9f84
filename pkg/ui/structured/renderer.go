// Package structured provides YAML and TOML output for machine consumption
package structured

import (
	"io"

	"github.com/arthur-debert/gitig/pkg/errors"
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type encodeFunc func(w io.Writer, v interface{}) error

// Renderer encodes every result as one document
type Renderer struct {
	output io.Writer
	encode encodeFunc
}

// NewYAML creates a YAML renderer
func NewYAML(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output, encode: encodeYAML}, nil
}

// NewTOML creates a TOML renderer
func NewTOML(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output, encode: encodeTOML}, nil
}

// RenderResult renders any result type
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(r.output, result)
}

// RenderError renders an error with its code
func (r *Renderer) RenderError(err error) error {
	return r.encode(r.output, map[string]string{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetErrorCode(err)),
	})
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(r.output, map[string]string{"message": msg})
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func encodeTOML(w io.Writer, v interface{}) error {
	enc := gotoml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(v)
}
