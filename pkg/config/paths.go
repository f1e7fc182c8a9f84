package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName names the gitig directories under the XDG base directories
	AppName = "gitig"
	// ConfigFileName is the user configuration file name
	ConfigFileName = "config.toml"
	// ProjectConfigFileName is looked up in the working directory
	ProjectConfigFileName = ".gitig.toml"
	// TemplatesDirName holds user templates under the config directory
	TemplatesDirName = "templates"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "GITIG_"
)

// UserConfigDir returns $XDG_CONFIG_HOME/gitig.
// The environment is read at call time so tests and wrappers can redirect it.
func UserConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, AppName)
}

// UserConfigPath returns the user configuration file path
func UserConfigPath() string {
	return filepath.Join(UserConfigDir(), ConfigFileName)
}

// UserTemplatesDir returns the default user template directory
func UserTemplatesDir() string {
	return filepath.Join(UserConfigDir(), TemplatesDirName)
}

// ProjectConfigPath returns the project configuration path for workDir
func ProjectConfigPath(workDir string) string {
	return filepath.Join(workDir, ProjectConfigFileName)
}
