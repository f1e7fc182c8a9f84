package testutil

import (
	"testing"

	"github.com/arthur-debert/gitig/pkg/templates"
)

// Fake template contents, exported so tests can build expected output
const (
	AlphaContent = "# Alpha\nalpha.out\n"
	BetaContent  = "# Beta\nbeta/\n"
	GammaContent = "# Gamma\n*.gamma\n"
)

// FakeRegistry returns a registry of three small templates: alpha (popular),
// beta and gamma (popular)
func FakeRegistry(t *testing.T) *templates.Registry {
	t.Helper()
	reg, err := templates.New(
		templates.Template{Name: "alpha", Description: "Alpha", Content: AlphaContent, Popular: true},
		templates.Template{Name: "beta", Description: "Beta", Content: BetaContent},
		templates.Template{Name: "gamma", Description: "Gamma", Content: GammaContent, Popular: true},
	)
	if err != nil {
		t.Fatalf("failed to build fake registry: %v", err)
	}
	return reg
}
