package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gitig/pkg/filesystem"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment holds a project directory and XDG directories for one test
type TestEnvironment struct {
	// ProjectDir is the directory commands run in
	ProjectDir string
	// ConfigHome is exported as XDG_CONFIG_HOME
	ConfigHome string
	// StateHome is exported as XDG_STATE_HOME and always lives on disk,
	// since the log file is opened through the os package
	StateHome string

	FS   afero.Fs
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.FS = filesystem.NewMemory()
		env.ProjectDir = "/virtual/project"
		env.ConfigHome = "/virtual/home/.config"
		env.StateHome = t.TempDir()
	case EnvIsolated:
		root := t.TempDir()
		env.FS = filesystem.NewOS()
		env.ProjectDir = filepath.Join(root, "project")
		env.ConfigHome = filepath.Join(root, "config")
		env.StateHome = filepath.Join(root, "state")
	}

	for _, dir := range []string{env.ProjectDir, env.ConfigHome} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)

	return env
}

// Path returns rel joined to the project directory
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.ProjectDir, rel)
}

// WriteFile creates a file under the project directory, including parents,
// and returns its full path
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	return env.writeFile(env.Path(rel), content)
}

// MkDir creates a directory under the project directory
func (env *TestEnvironment) MkDir(rel string) string {
	env.t.Helper()
	path := env.Path(rel)
	if err := env.FS.MkdirAll(path, 0755); err != nil {
		env.t.Fatalf("failed to create %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of a file under the project directory
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()
	data, err := afero.ReadFile(env.FS, env.Path(rel))
	if err != nil {
		env.t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

// WriteUserTemplate adds <name>.gitignore to the default user template directory
func (env *TestEnvironment) WriteUserTemplate(name, content string) string {
	env.t.Helper()
	return env.writeFile(filepath.Join(env.ConfigHome, "gitig", "templates", name+".gitignore"), content)
}

// WriteUserConfig writes the user configuration file
func (env *TestEnvironment) WriteUserConfig(content string) string {
	env.t.Helper()
	return env.writeFile(filepath.Join(env.ConfigHome, "gitig", "config.toml"), content)
}

func (env *TestEnvironment) writeFile(path, content string) string {
	env.t.Helper()
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("failed to create parent of %s: %v", path, err)
	}
	if err := afero.WriteFile(env.FS, path, []byte(content), 0644); err != nil {
		env.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
