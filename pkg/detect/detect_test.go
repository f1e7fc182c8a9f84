package detect

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memDir builds an in-memory directory at /project with the given entries.
// Entries ending in "/" are created as directories.
func memDir(t *testing.T, entries ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/project", 0755))
	for _, entry := range entries {
		path := filepath.Join("/project", entry)
		if entry[len(entry)-1] == '/' {
			require.NoError(t, fs.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, afero.WriteFile(fs, path, []byte("x"), 0644))
	}
	return fs
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		goos    string
		want    []string
	}{
		{
			name:    "package.json on linux",
			entries: []string{"package.json"},
			goos:    "linux",
			want:    []string{"node", "linux"},
		},
		{
			name:    "empty directory still emits OS",
			entries: nil,
			goos:    "darwin",
			want:    []string{"macos"},
		},
		{
			name:    "python by suffix",
			entries: []string{"app.py"},
			goos:    "windows",
			want:    []string{"python", "windows"},
		},
		{
			name:    "python by marker file",
			entries: []string{"pyproject.toml"},
			goos:    "linux",
			want:    []string{"python", "linux"},
		},
		{
			name:    "go by source file",
			entries: []string{"main.go"},
			goos:    "linux",
			want:    []string{"go", "linux"},
		},
		{
			name:    "rust and java",
			entries: []string{"Cargo.toml", "Main.java"},
			goos:    "linux",
			want:    []string{"rust", "java", "linux"},
		},
		{
			name:    "gradle build",
			entries: []string{"build.gradle"},
			goos:    "linux",
			want:    []string{"java", "linux"},
		},
		{
			name:    "ide directories",
			entries: []string{".idea/", ".vscode/"},
			goos:    "linux",
			want:    []string{"vscode", "jetbrains", "linux"},
		},
		{
			name:    "everything in rule order regardless of listing order",
			entries: []string{".idea/", "pom.xml", "lib.rs", "go.mod", "setup.py", "package.json", ".vscode/"},
			goos:    "darwin",
			want:    []string{"node", "python", "go", "rust", "java", "vscode", "jetbrains", "macos"},
		},
		{
			name:    "unknown OS and no signals yields nothing",
			entries: []string{"README.md"},
			goos:    "plan9",
			want:    nil,
		},
		{
			name:    "scan is not recursive",
			entries: []string{"src/", "src/main.py"},
			goos:    "linux",
			want:    []string{"linux"},
		},
		{
			name:    "exact names are case sensitive",
			entries: []string{"PACKAGE.JSON"},
			goos:    "linux",
			want:    []string{"linux"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := memDir(t, tt.entries...)
			d := New(fs, Options{GOOS: tt.goos})

			got, err := d.Detect("/project")
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDetect_ExtraRulesAndDedupe(t *testing.T) {
	fs := memDir(t, "package.json", "Dockerfile", "yarn.lock")
	extra := []Rule{
		{Template: "docker", Patterns: []string{"Dockerfile"}},
		{Template: "Node", Patterns: []string{"yarn.lock"}},
	}

	d := New(fs, Options{GOOS: "linux", ExtraRules: extra})
	got, err := d.Detect("/project")
	require.NoError(t, err)
	assert.Equal(t, []string{"node", "docker", "linux"}, got)

	d = New(fs, Options{GOOS: "linux", ExtraRules: extra, KeepDuplicates: true})
	got, err = d.Detect("/project")
	require.NoError(t, err)
	assert.Equal(t, []string{"node", "docker", "node", "linux"}, got)
}

func TestDetect_CustomRulesReplaceDefaults(t *testing.T) {
	fs := memDir(t, "package.json", "mix.exs")
	d := New(fs, Options{
		GOOS:  "linux",
		Rules: []Rule{{Template: "elixir", Patterns: []string{"mix.exs"}}},
	})

	got, err := d.Detect("/project")
	require.NoError(t, err)
	assert.Equal(t, []string{"elixir", "linux"}, got)
}

func TestDetect_DefaultsToRuntimeOS(t *testing.T) {
	fs := memDir(t)
	d := New(fs, Options{})

	got, err := d.Detect("/project")
	require.NoError(t, err)
	if name := OSTemplate(d.opts.GOOS); name != "" {
		assert.Equal(t, []string{name}, got)
	} else {
		assert.Empty(t, got)
	}
}

func TestDetect_MissingDirectory(t *testing.T) {
	d := New(afero.NewMemMapFs(), Options{GOOS: "linux"})

	_, err := d.Detect("/nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirRead))
}

func TestOSTemplate(t *testing.T) {
	assert.Equal(t, "macos", OSTemplate("darwin"))
	assert.Equal(t, "windows", OSTemplate("windows"))
	assert.Equal(t, "linux", OSTemplate("linux"))
	assert.Equal(t, "", OSTemplate("freebsd"))
}

func TestRuleMatch(t *testing.T) {
	rule := Rule{Template: "python", Patterns: []string{"*.py", "setup.py"}}

	entry, ok := rule.Match([]string{"README.md", "setup.py"})
	assert.True(t, ok)
	assert.Equal(t, "setup.py", entry)

	_, ok = rule.Match([]string{"README.md"})
	assert.False(t, ok)

	_, ok = Rule{Template: "bad", Patterns: []string{"[unclosed"}}.Match([]string{"[unclosed"})
	assert.False(t, ok)
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name    string
		rules   []Rule
		wantErr bool
	}{
		{"defaults are valid", DefaultRules, false},
		{"nil is valid", nil, false},
		{"missing template", []Rule{{Patterns: []string{"*.x"}}}, true},
		{"missing patterns", []Rule{{Template: "x"}}, true},
		{"bad pattern", []Rule{{Template: "x", Patterns: []string{"[a-"}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRules(tt.rules)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
				return
			}
			assert.NoError(t, err)
		})
	}
}
