package templates

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/tpl/terraform.gitignore": "# Terraform state\n.terraform/\n*.tfstate\n",
		"/tpl/Elixir.gitignore":    "/_build\n/deps",
		"/tpl/empty.gitignore":     "  \n",
		"/tpl/README.md":           "# not a template\n",
		"/tpl/.gitignore":          "ignored\n",
		"/tpl/nested/x.gitignore":  "nested\n",
	}
	require.NoError(t, fs.MkdirAll("/tpl/nested", 0755))
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}

	got, err := LoadDir(fs, "/tpl")
	require.NoError(t, err)
	require.Len(t, got, 2)

	byName := map[string]Template{}
	for _, tmpl := range got {
		byName[tmpl.Name] = tmpl
	}

	tf, ok := byName["terraform"]
	require.True(t, ok)
	assert.Equal(t, "Terraform state", tf.Description)
	assert.Equal(t, SourceUser, tf.Source)
	assert.False(t, tf.Popular)

	ex, ok := byName["elixir"]
	require.True(t, ok)
	assert.Equal(t, "elixir", ex.Description)
	assert.Equal(t, "/_build\n/deps\n", ex.Content)
}

func TestLoadDir_MissingOrEmptyPath(t *testing.T) {
	fs := afero.NewMemMapFs()

	got, err := LoadDir(fs, "/does/not/exist")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = LoadDir(fs, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadDir_PathIsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tpl", []byte("x"), 0644))

	got, err := LoadDir(fs, "/tpl")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadDir_MergesIntoBuiltin(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/tpl", 0755))
	require.NoError(t, afero.WriteFile(fs, "/tpl/node.gitignore", []byte("# My Node\nnode_modules/\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/tpl/zig.gitignore", []byte("zig-out/\n"), 0644))

	extra, err := LoadDir(fs, "/tpl")
	require.NoError(t, err)

	reg, err := Builtin().With(extra...)
	require.NoError(t, err)

	assert.Equal(t, Builtin().Len()+1, reg.Len())
	assert.Equal(t, "zig", reg.Names()[reg.Len()-1])
	assert.Equal(t, "node", reg.Names()[0])

	node, ok := reg.Get("node")
	require.True(t, ok)
	assert.Equal(t, "My Node", node.Description)
	assert.Equal(t, SourceUser, node.Source)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Rust", describe("# Rust\ntarget/\n", "x"))
	assert.Equal(t, "Second", describe("target/\n#\n# Second\n", "x"))
	assert.Equal(t, "x", describe("target/\n#nospace\n", "x"))
}
