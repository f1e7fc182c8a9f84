// Package testutil provides utilities for testing gitig components.
//
// Key components:
//   - TestEnvironment: a project directory plus isolated XDG directories,
//     backed by an in-memory or a real temporary filesystem
//   - FakeRegistry: a small template registry with predictable content
//   - Assertions for file content and ignore-rule matching
//
// Usage guidelines:
//   - Component tests should use EnvMemoryOnly for speed and isolation
//   - CLI tests need EnvIsolated since the command reads the real filesystem
//   - All test data should be defined inline, not in external files
package testutil
