package types

// TemplateInfo is the displayable summary of one template
type TemplateInfo struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Popular     bool   `json:"popular" yaml:"popular" toml:"popular"`
	Source      string `json:"source" yaml:"source" toml:"source"`
}

// ListResult holds the result of the 'list' command.
type ListResult struct {
	Templates   []TemplateInfo `json:"templates" yaml:"templates" toml:"templates"`
	Total       int            `json:"total" yaml:"total" toml:"total"`
	PopularOnly bool           `json:"popularOnly" yaml:"popularOnly" toml:"popularOnly"`
}

// ShowResult holds the result of the 'show' command.
type ShowResult struct {
	Template TemplateInfo `json:"template" yaml:"template" toml:"template"`
	Content  string       `json:"content" yaml:"content" toml:"content"`
}

// ComposeResult describes one write of the output file.
type ComposeResult struct {
	// OutputPath is the resolved path that was written
	OutputPath string `json:"outputPath" yaml:"outputPath" toml:"outputPath"`

	// Templates are the canonical names applied, in output order
	Templates []string `json:"templates" yaml:"templates" toml:"templates"`

	// AppendRequested mirrors the append option
	AppendRequested bool `json:"appendRequested" yaml:"appendRequested" toml:"appendRequested"`

	// Appended is true when existing content was kept as a prefix
	Appended bool `json:"appended" yaml:"appended" toml:"appended"`

	// Created is true when the output file did not exist before
	Created bool `json:"created" yaml:"created" toml:"created"`

	// Bytes is the size of the file after the write
	Bytes int `json:"bytes" yaml:"bytes" toml:"bytes"`
}

// AddResult holds the result of the 'add' command.
type AddResult struct {
	// Requested are the names as the user typed them, after splitting
	Requested []string      `json:"requested" yaml:"requested" toml:"requested"`
	Compose   ComposeResult `json:"compose" yaml:"compose" toml:"compose"`
}

// InitResult holds the result of the 'init' command.
type InitResult struct {
	Detected []string      `json:"detected" yaml:"detected" toml:"detected"`
	Compose  ComposeResult `json:"compose" yaml:"compose" toml:"compose"`
}

// GenConfigResult holds the result of the 'genconfig' command.
type GenConfigResult struct {
	// ConfigContent is the generated file, every value commented out
	ConfigContent string `json:"configContent" yaml:"configContent" toml:"configContent"`

	// Path is where the content was written; empty when only printed
	Path string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`

	Written     bool `json:"written" yaml:"written" toml:"written"`
	Overwritten bool `json:"overwritten" yaml:"overwritten" toml:"overwritten"`
}
