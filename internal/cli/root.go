// Package cli wires the gitig commands into a cobra command tree.
package cli

import (
	"io"
	"os"

	"github.com/arthur-debert/gitig/internal/version"
	"github.com/arthur-debert/gitig/pkg/config"
	"github.com/arthur-debert/gitig/pkg/errors"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/arthur-debert/gitig/pkg/style"
	"github.com/arthur-debert/gitig/pkg/templates"
	"github.com/arthur-debert/gitig/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app holds the state shared by every subcommand of one invocation
type app struct {
	verbosity  int
	configFile string
	noColor    bool
	workDir    string

	fs       afero.Fs
	cfg      *config.Config
	registry *templates.Registry
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	a := &app{fs: afero.NewOsFs()}

	rootCmd := &cobra.Command{
		Use:     "gitig",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return errors.Newf(errors.ErrUnknownCmd, MsgErrUnknownCmd, args[0]).
					WithDetail("command", args[0])
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLoggerWithOutput(a.verbosity, cmd.ErrOrStderr())
			logging.LogCommand(cmd.CommandPath(), args)
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help
			return cmd.Help()
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(MsgVersionTemplate)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid flag").
			WithDetail(hintDetail, "Run \""+cmd.CommandPath()+" --help\" for usage information.")
	})

	// Global flags
	rootCmd.PersistentFlags().CountVar(&a.verbosity, "verbose", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVarP(&a.workDir, "directory", "C", ".", MsgFlagDirectory)

	// Disable automatic help command, -h/--help covers it
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: MsgGroupCore})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: MsgGroupMisc})

	rootCmd.AddCommand(a.newInitCmd())
	rootCmd.AddCommand(a.newAddCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newShowCmd())
	rootCmd.AddCommand(a.newGenConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Execute runs the command line and returns the process exit status.
// Errors are rendered to stderr followed by a hint when one applies.
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	log.Debug().Err(err).Msg("Command failed")

	renderer, rerr := ui.NewRenderer(errorFormat(stderr), stderr)
	if rerr == nil {
		_ = renderer.RenderError(err)
		if hint := Hint(err); hint != "" {
			_ = renderer.RenderMessage(hint)
		}
	}
	return ExitCode(err)
}

// load reads the configuration and builds the template registry
func (a *app) load() error {
	overrides := map[string]interface{}{}
	if a.noColor {
		overrides["ui.color"] = config.ColorNever
	}

	cfg, err := config.Load(config.LoadOptions{
		FS:         a.fs,
		WorkDir:    a.workDir,
		ConfigFile: a.configFile,
		Overrides:  overrides,
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	switch cfg.UI.Color {
	case config.ColorAlways:
		style.ForceColor()
	case config.ColorNever:
		style.DisableColor()
	}

	userTemplates, err := templates.LoadDir(a.fs, cfg.TemplatesDir())
	if err != nil {
		return err
	}
	registry, err := templates.Builtin().With(userTemplates...)
	if err != nil {
		return err
	}
	a.registry = registry

	log.Debug().
		Str("workDir", a.workDir).
		Int("templates", registry.Len()).
		Int("userTemplates", len(userTemplates)).
		Msg("Registry ready")
	return nil
}

// renderer picks the output renderer for w. An explicit format wins; otherwise
// the color setting and the terminal decide.
func (a *app) renderer(w io.Writer, format ui.Format) (ui.Renderer, error) {
	if format == ui.FormatAuto && a.cfg != nil {
		switch a.cfg.UI.Color {
		case config.ColorNever:
			format = ui.FormatText
		case config.ColorAlways:
			format = ui.FormatTerminal
		}
	}
	return ui.NewRenderer(format, w)
}

// errorFormat keeps errors plain unless stderr is a terminal
func errorFormat(w io.Writer) ui.Format {
	if f, ok := w.(*os.File); ok {
		return ui.DetectFormat(f)
	}
	return ui.FormatText
}
