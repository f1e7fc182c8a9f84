// Package templates holds the registry of named ignore templates.
//
// A Registry is built once at startup, from the built-in table and any
// user templates, and is read-only afterwards. Lookups are
// case-insensitive: names are stored lowercased and every query is
// lowercased before it is compared.
//
// The built-in template bodies live in data/*.gitignore and are compiled
// into the binary with go:embed.
package templates
