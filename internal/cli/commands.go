package cli

import (
	"fmt"

	"github.com/arthur-debert/gitig/pkg/commands"
	"github.com/arthur-debert/gitig/pkg/compose"
	"github.com/arthur-debert/gitig/pkg/config"
	"github.com/arthur-debert/gitig/pkg/logging"
	"github.com/arthur-debert/gitig/pkg/ui"
	"github.com/spf13/cobra"
)

// outputFlags are shared by init and add
type outputFlags struct {
	append bool
	output string
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.append, "append", false, MsgFlagAppend)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", MsgFlagOutput)
}

// resolve applies the flags over the configured defaults. Flags only win
// when they were given on the command line.
func (f *outputFlags) resolve(cmd *cobra.Command, cfg *config.Config) (appendMode bool, output string) {
	appendMode = cfg.Output.Append
	if cmd.Flags().Changed("append") {
		appendMode = f.append
	}
	output = cfg.Output.Path
	if cmd.Flags().Changed("output") {
		output = f.output
	}
	return appendMode, output
}

func (a *app) newInitCmd() *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:     "init",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.init")
			appendMode, output := flags.resolve(cmd, a.cfg)

			result, err := commands.Init(commands.InitOptions{
				FS:             a.fs,
				Registry:       a.registry,
				Dir:            a.workDir,
				ExtraRules:     a.cfg.DetectRules(),
				KeepDuplicates: !a.cfg.Detect.Dedupe,
				Append:         appendMode,
				OutputPath:     output,
			})
			if err != nil {
				return err
			}
			logger.Debug().Strs("detected", result.Detected).Msg("Rendering result")

			r, err := a.renderer(cmd.OutOrStdout(), ui.FormatAuto)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) newAddCmd() *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:     "add <templates>...",
		Short:   MsgAddShort,
		Long:    MsgAddLong,
		Example: MsgAddExample,
		GroupID: "core",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(commands.ParseNames(args...)) == 0 {
				return usageError(MsgErrAddArgs, MsgHintAddArgs)
			}
			return nil
		},
		ValidArgsFunction: a.completeTemplateNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			appendMode, output := flags.resolve(cmd, a.cfg)

			result, err := commands.Add(commands.AddOptions{
				FS:             a.fs,
				Registry:       a.registry,
				Dir:            a.workDir,
				Names:          args,
				Append:         appendMode,
				OutputPath:     output,
				KeepDuplicates: !a.cfg.Compose.Dedupe,
			})
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd.OutOrStdout(), ui.FormatAuto)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) newListCmd() *cobra.Command {
	var (
		popular bool
		format  string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := ui.ParseFormat(format)
			if err != nil {
				return usageError(fmt.Sprintf(MsgErrBadFormat, format), MsgHintHelp)
			}

			result, err := commands.List(commands.ListOptions{
				Registry:    a.registry,
				PopularOnly: popular,
			})
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd.OutOrStdout(), outFormat)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&popular, "popular", false, MsgFlagPopular)
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml", "toml"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (a *app) newShowCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:     "show <template>",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Example: MsgShowExample,
		GroupID: "core",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError(MsgErrShowArgs, MsgHintShow)
			}
			if len(args) > 1 {
				return usageError(MsgErrShowOneArg, MsgHintShow)
			}
			return nil
		},
		ValidArgsFunction: a.completeTemplateNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := commands.Show(commands.ShowOptions{
				Registry: a.registry,
				Name:     args[0],
			})
			if err != nil {
				return err
			}

			if pretty {
				_, err := fmt.Fprint(cmd.OutOrStdout(), ui.NewMarkdownRenderer().Render(result))
				return err
			}

			r, err := a.renderer(cmd.OutOrStdout(), ui.FormatAuto)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, MsgFlagPretty)
	return cmd
}

func (a *app) newGenConfigCmd() *cobra.Command {
	var (
		write  bool
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := output
			if path == "" {
				path = config.ProjectConfigFileName
			}

			result, err := commands.GenConfig(commands.GenConfigOptions{
				FS:    a.fs,
				Path:  compose.ResolvePath(a.workDir, path),
				Write: write,
				Force: force,
			})
			if err != nil {
				return err
			}

			r, err := a.renderer(cmd.OutOrStdout(), ui.FormatAuto)
			if err != nil {
				return err
			}
			return r.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagGenOutput)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError(MsgErrShellArg, MsgHintHelp)
			}
			return cobra.OnlyValidArgs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// completeTemplateNames offers registry names for shell completion
func (a *app) completeTemplateNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if a.registry == nil {
		if err := a.load(); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	return a.registry.Names(), cobra.ShellCompDirectiveNoFileComp
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageError(fmt.Sprintf(MsgErrTooManyArgs, cmd.Name()), MsgHintHelp)
	}
	return nil
}
