package templates

import (
	"embed"
	"fmt"
	"sync"
)

//go:embed data/*.gitignore
var dataFS embed.FS

// builtinTable is the declaration order of the built-in templates
var builtinTable = []struct {
	name        string
	description string
	popular     bool
}{
	{"node", "Node.js", true},
	{"python", "Python", true},
	{"go", "Go", true},
	{"rust", "Rust", true},
	{"java", "Java", false},
	{"macos", "macOS", true},
	{"windows", "Windows", false},
	{"linux", "Linux", false},
	{"jetbrains", "JetBrains IDEs", true},
	{"vscode", "Visual Studio Code", true},
}

var builtin = sync.OnceValue(func() *Registry {
	defs := make([]Template, 0, len(builtinTable))
	for _, entry := range builtinTable {
		content, err := dataFS.ReadFile("data/" + entry.name + ".gitignore")
		if err != nil {
			panic(fmt.Sprintf("templates: missing embedded template %q: %v", entry.name, err))
		}
		defs = append(defs, Template{
			Name:        entry.name,
			Description: entry.description,
			Content:     string(content),
			Popular:     entry.popular,
			Source:      SourceBuiltin,
		})
	}
	r, err := New(defs...)
	if err != nil {
		panic(fmt.Sprintf("templates: invalid built-in table: %v", err))
	}
	return r
})

// Builtin returns the registry of templates compiled into gitig.
// The same immutable instance is returned on every call.
func Builtin() *Registry {
	return builtin()
}
