package testutil

import (
	"strings"
	"testing"

	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

// AssertFileContent checks that path exists in fs with exactly want
func AssertFileContent(t *testing.T, fs afero.Fs, path, want string) bool {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	if !assert.NoError(t, err, "reading %s", path) {
		return false
	}
	return assert.Equal(t, want, string(data), "content of %s", path)
}

// AssertNoFile checks that nothing exists at path
func AssertNoFile(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	if !assert.NoError(t, err) {
		return false
	}
	return assert.False(t, exists, "%s should not exist", path)
}

// AssertIgnores checks that the gitignore content matches every path
func AssertIgnores(t *testing.T, content string, paths ...string) {
	t.Helper()
	matcher := gitignore.CompileIgnoreLines(strings.Split(content, "\n")...)
	for _, p := range paths {
		assert.True(t, matcher.MatchesPath(p), "%s should be ignored", p)
	}
}

// AssertNotIgnores checks that the gitignore content matches none of the paths
func AssertNotIgnores(t *testing.T, content string, paths ...string) {
	t.Helper()
	matcher := gitignore.CompileIgnoreLines(strings.Split(content, "\n")...)
	for _, p := range paths {
		assert.False(t, matcher.MatchesPath(p), "%s should not be ignored", p)
	}
}
