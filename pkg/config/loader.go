package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/gitig/pkg/detect"
	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// FS reads config files; defaults to the OS filesystem
	FS afero.Fs
	// WorkDir is searched for the project config file; defaults to "."
	WorkDir string
	// ConfigFile, when set, is loaded instead of the user and project files.
	// It must exist.
	ConfigFile string
	// Overrides are applied last, keyed by dotted path ("output.append")
	Overrides map[string]interface{}
}

// Load builds the configuration. Later sources override earlier ones:
//
//  1. embedded defaults
//  2. user config ($XDG_CONFIG_HOME/gitig/config.toml)
//  3. project config (.gitig.toml in the working directory)
//  4. GITIG_* environment variables
//  5. Overrides
//
// An explicit ConfigFile replaces steps 2 and 3.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default configuration")
	}

	// 2-3. Config files
	var files []string
	if opts.ConfigFile != "" {
		files = append(files, opts.ConfigFile)
		if _, err := loadFile(k, fs, opts.ConfigFile, true); err != nil {
			return nil, err
		}
	} else {
		for _, path := range []string{UserConfigPath(), ProjectConfigPath(workDir)} {
			loaded, err := loadFile(k, fs, path, false)
			if err != nil {
				return nil, err
			}
			if loaded {
				files = append(files, path)
			}
		}
	}

	// 4. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	// 5. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Strs("files", files).
		Str("output", cfg.Output.Path).
		Int("extraRules", len(cfg.Detect.Rules)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Default returns the embedded defaults with no files or environment applied
func Default() *Config {
	return &Config{
		Output:  Output{Path: ".gitignore"},
		Compose: Compose{Dedupe: true},
		Detect:  Detect{Dedupe: true},
		UI:      UI{Color: ColorAuto},
	}
}

// Validate normalizes cfg in place and rejects values no command can use
func Validate(cfg *Config) error {
	cfg.Output.Path = strings.TrimSpace(cfg.Output.Path)
	if cfg.Output.Path == "" {
		return errors.New(errors.ErrConfigValid, "output.path must not be empty")
	}

	cfg.UI.Color = strings.ToLower(strings.TrimSpace(cfg.UI.Color))
	switch cfg.UI.Color {
	case "":
		cfg.UI.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "ui.color must be one of auto, always, never (got %q)", cfg.UI.Color).
			WithDetail("value", cfg.UI.Color)
	}

	return detect.ValidateRules(cfg.DetectRules())
}

// envKey maps GITIG_OUTPUT_PATH to output.path. Only the first underscore
// separates the section so keys keep their own underscores.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// loadFile merges one TOML file into k. Missing optional files are skipped.
func loadFile(k *koanf.Koanf, fs afero.Fs, path string, required bool) (bool, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigParse, "invalid config file %s", path).
			WithDetail("path", path)
	}
	return true, nil
}
