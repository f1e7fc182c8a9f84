package cli

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/arthur-debert/gitig/pkg/detect"
	"github.com/arthur-debert/gitig/pkg/templates"
	"github.com/arthur-debert/gitig/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, env *testutil.TestEnvironment, args ...string) runResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	full := append([]string{"--no-color", "-C", env.ProjectDir}, args...)
	code := Execute(full, &stdout, &stderr)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func builtinContent(t *testing.T, name string) string {
	t.Helper()
	tmpl, ok := templates.Builtin().Get(name)
	require.True(t, ok, "builtin %s", name)
	return tmpl.Content
}

func TestNoArgsPrintsHelp(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	res := run(t, env)

	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, strings.SplitN(MsgRootLong, "\n", 2)[0])
	assert.Contains(t, res.stdout, "USAGE:")
	assert.Contains(t, res.stdout, "init")
	assert.Empty(t, res.stderr)
}

func TestVersion(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	for _, flag := range []string{"-v", "--version"} {
		t.Run(flag, func(t *testing.T) {
			res := run(t, env, flag)
			assert.Equal(t, 0, res.code)
			assert.True(t, strings.HasPrefix(res.stdout, "gitig v"), res.stdout)
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	res := run(t, env, "frobnicate")

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, `Error: Unknown command "frobnicate"`)
	assert.Contains(t, res.stderr, MsgHintHelp)
}

func TestList(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	t.Run("all", func(t *testing.T) {
		res := run(t, env, "list")
		require.Equal(t, 0, res.code, res.stderr)
		assert.True(t, strings.HasPrefix(res.stdout, "Available templates:\n\n"))
		assert.Contains(t, res.stdout, "  node         - ")
		assert.Contains(t, res.stdout, "Total: ")
	})

	t.Run("popular", func(t *testing.T) {
		res := run(t, env, "list", "--popular")
		require.Equal(t, 0, res.code, res.stderr)
		assert.NotContains(t, res.stdout, " *\n")
	})

	t.Run("json", func(t *testing.T) {
		res := run(t, env, "list", "--format", "json")
		require.Equal(t, 0, res.code, res.stderr)

		var decoded struct {
			Templates []struct {
				Name string `json:"name"`
			} `json:"templates"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal([]byte(res.stdout), &decoded))
		assert.Equal(t, templates.Builtin().Len(), decoded.Total)
		assert.Len(t, decoded.Templates, decoded.Total)
	})

	t.Run("bad format", func(t *testing.T) {
		res := run(t, env, "list", "--format", "xml")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, `unknown output format "xml"`)
	})
}

func TestShow(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	t.Run("known", func(t *testing.T) {
		res := run(t, env, "show", "Python")
		require.Equal(t, 0, res.code, res.stderr)
		assert.True(t, strings.HasPrefix(res.stdout, "# Template: "))
		assert.Contains(t, res.stdout, builtinContent(t, "python"))
	})

	t.Run("unknown", func(t *testing.T) {
		res := run(t, env, "show", "cobol")
		assert.Equal(t, 1, res.code)
		assert.Empty(t, res.stdout)
		assert.Contains(t, res.stderr, `Error: Template "cobol" not found.`)
		assert.Contains(t, res.stderr, MsgHintList)
		testutil.AssertNoFile(t, env.FS, env.Path(".gitignore"))
	})

	t.Run("missing name", func(t *testing.T) {
		res := run(t, env, "show")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, MsgErrShowArgs)
		assert.Contains(t, res.stderr, MsgHintShow)
	})
}

func TestAdd(t *testing.T) {
	t.Run("comma list", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

		res := run(t, env, "add", "node,macos")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Created ")
		assert.Contains(t, res.stdout, "with templates: node, macos")
		testutil.AssertFileContent(t, env.FS, env.Path(".gitignore"),
			builtinContent(t, "node")+"\n"+builtinContent(t, "macos"))
	})

	t.Run("append", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
		env.WriteFile(".gitignore", "secrets.txt\n")

		res := run(t, env, "add", "--append", "rust")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Updated ")
		testutil.AssertFileContent(t, env.FS, env.Path(".gitignore"),
			"secrets.txt\n\n"+builtinContent(t, "rust"))
	})

	t.Run("output flag", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

		res := run(t, env, "add", "-o", "custom.ignore", "go")
		require.Equal(t, 0, res.code, res.stderr)
		testutil.AssertFileContent(t, env.FS, env.Path("custom.ignore"), builtinContent(t, "go"))
		testutil.AssertNoFile(t, env.FS, env.Path(".gitignore"))
	})

	t.Run("unknown leaves no file", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

		res := run(t, env, "add", "node", "cobol")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "cobol")
		testutil.AssertNoFile(t, env.FS, env.Path(".gitignore"))
	})

	t.Run("no names", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

		res := run(t, env, "add", ",")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, MsgErrAddArgs)
	})
}

func TestInit(t *testing.T) {
	t.Run("detects node", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
		env.WriteFile("package.json", "{}")

		expected := []string{"node"}
		if osTmpl := detect.OSTemplate(runtime.GOOS); osTmpl != "" {
			expected = append(expected, osTmpl)
		}

		res := run(t, env, "init")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Detected project types: "+strings.Join(expected, ", "))

		var parts []string
		for _, name := range expected {
			parts = append(parts, builtinContent(t, name))
		}
		testutil.AssertFileContent(t, env.FS, env.Path(".gitignore"), strings.Join(parts, "\n"))
	})

	t.Run("config rule", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
		env.WriteFile("Gemfile", "")
		env.WriteUserTemplate("ruby", "# Ruby\n*.gem\n")
		env.WriteUserConfig("[[detect.rules]]\ntemplate = \"ruby\"\npatterns = [\"Gemfile\"]\n")

		res := run(t, env, "init")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, env.ReadFile(".gitignore"), "*.gem\n")
	})
}

func TestUserTemplateOverridesBuiltin(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.WriteUserTemplate("node", "# Our node\nnode_modules/\n")

	res := run(t, env, "add", "node")
	require.Equal(t, 0, res.code, res.stderr)
	testutil.AssertFileContent(t, env.FS, env.Path(".gitignore"), "# Our node\nnode_modules/\n")

	res = run(t, env, "list", "--popular")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "  node         - Our node\n")
}

func TestGenConfig(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

		res := run(t, env, "genconfig")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "[output]")
		testutil.AssertNoFile(t, env.FS, env.Path(".gitig.toml"))
	})

	t.Run("write then refuse", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

		res := run(t, env, "genconfig", "-w")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Created ")
		assert.Contains(t, env.ReadFile(".gitig.toml"), "[output]")

		res = run(t, env, "genconfig", "-w")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, MsgHintForce)

		res = run(t, env, "genconfig", "-w", "--force")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Replaced ")
	})
}

func TestBadConfigFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	path := env.WriteFile("broken.toml", "[output\npath = \n")

	res := run(t, env, "--config", path, "list")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error: ")
	assert.Empty(t, res.stdout)
}

func TestHint(t *testing.T) {
	assert.Equal(t, "", Hint(nil))
	assert.Equal(t, "custom", Hint(usageError("bad", "custom")))
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(usageError("bad", "")))
}

func TestCompletion(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)

	res := run(t, env, "completion", "bash")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "gitig")

	res = run(t, env, "completion", "tcsh")
	assert.Equal(t, 1, res.code)
}
