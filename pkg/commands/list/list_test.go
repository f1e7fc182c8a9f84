package list

import (
	"testing"

	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/templates"
	"github.com/arthur-debert/gitig/pkg/testutil"
	"github.com/arthur-debert/gitig/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(infos []types.TemplateInfo) []string {
	out := make([]string, len(infos))
	for i, info := range infos {
		out[i] = info.Name
	}
	return out
}

func TestList(t *testing.T) {
	t.Run("all templates in order", func(t *testing.T) {
		result, err := List(ListOptions{Registry: testutil.FakeRegistry(t)})
		require.NoError(t, err)

		assert.Equal(t, 3, result.Total)
		assert.False(t, result.PopularOnly)
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, names(result.Templates))
		assert.Equal(t, types.TemplateInfo{Name: "alpha", Description: "Alpha", Popular: true, Source: "builtin"}, result.Templates[0])
	})

	t.Run("popular only", func(t *testing.T) {
		result, err := List(ListOptions{Registry: testutil.FakeRegistry(t), PopularOnly: true})
		require.NoError(t, err)

		assert.Equal(t, 2, result.Total)
		assert.True(t, result.PopularOnly)
		assert.Equal(t, []string{"alpha", "gamma"}, names(result.Templates))
	})

	t.Run("builtin popular set", func(t *testing.T) {
		all, err := List(ListOptions{Registry: templates.Builtin()})
		require.NoError(t, err)
		popular, err := List(ListOptions{Registry: templates.Builtin(), PopularOnly: true})
		require.NoError(t, err)

		assert.Equal(t, 10, all.Total)
		assert.Equal(t, []string{"node", "python", "go", "rust", "macos", "jetbrains", "vscode"}, names(popular.Templates))
		for _, info := range all.Templates {
			if info.Popular {
				assert.Contains(t, names(popular.Templates), info.Name)
			}
		}
	})

	t.Run("no registry", func(t *testing.T) {
		_, err := List(ListOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	})
}
