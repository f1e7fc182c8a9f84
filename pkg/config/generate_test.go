package config

import (
	"strings"
	"testing"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"),
			"only section headers stay uncommented, got %q", line)
	}

	assert.Contains(t, content, `# path = ".gitignore"`)
	assert.Contains(t, content, `# color = "auto"`)

	var parsed map[string]interface{}
	require.NoError(t, gotoml.Unmarshal([]byte(content), &parsed))
	for section, values := range parsed {
		assert.Empty(t, values, "section %s should have no active values", section)
	}
}

func TestGenerateConfigContent_LoadsAsDefaults(t *testing.T) {
	fs := setupFS(t, map[string]string{"/work/gen.toml": GenerateConfigContent()})

	cfg, err := Load(LoadOptions{FS: fs, WorkDir: "/work", ConfigFile: "/work/gen.toml"})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestCommentOutConfigValues(t *testing.T) {
	input := "# header\n\n[output]\npath = \"x\"\n  append = true\n"
	want := "# header\n\n[output]\n# path = \"x\"\n#   append = true\n"
	assert.Equal(t, want, commentOutConfigValues(input))
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	var parsed struct {
		Output struct {
			Path   string `toml:"path"`
			Append bool   `toml:"append"`
		} `toml:"output"`
		UI struct {
			Color string `toml:"color"`
		} `toml:"ui"`
	}
	require.NoError(t, gotoml.Unmarshal([]byte(GetDefaultsContent()), &parsed))
	assert.Equal(t, Default().Output.Path, parsed.Output.Path)
	assert.Equal(t, Default().Output.Append, parsed.Output.Append)
	assert.Equal(t, Default().UI.Color, parsed.UI.Color)

}
