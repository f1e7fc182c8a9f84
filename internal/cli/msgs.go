package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate .gitignore files instantly"
	MsgInitShort       = "Detect project type and create .gitignore"
	MsgAddShort        = "Add one or more templates"
	MsgListShort       = "List all available templates"
	MsgListLong        = "List displays every template gitig knows about, built-in and user-defined. Popular templates are marked with *."
	MsgShowShort       = "Show template contents"
	MsgShowLong        = "Show prints a template exactly as it would be written, under a one-line header."
	MsgGenConfigShort  = "Generate the default configuration file"
	MsgCompletionShort = "Generate shell completion script"

	// Group titles
	MsgGroupCore = "COMMANDS:"
	MsgGroupMisc = "MISC:"

	// Hints printed after an error
	MsgHintList    = `Run "gitig list" to see available templates.`
	MsgHintAdd     = `Use "gitig add <template>" to manually add templates.`
	MsgHintHelp    = `Run "gitig --help" for usage information.`
	MsgHintShow    = "Usage: gitig show <template>"
	MsgHintAddArgs = "Usage: gitig add <templates>\nExample: gitig add node,macos"
	MsgHintForce   = "Use --force to replace it."

	// Usage errors
	MsgErrShowArgs    = `"show" command requires a template name.`
	MsgErrAddArgs     = `"add" command requires template name(s).`
	MsgErrShowOneArg  = `"show" accepts a single template name.`
	MsgErrUnknownCmd  = "Unknown command %q"
	MsgErrTooManyArgs = "%q accepts no arguments"
	MsgErrBadFormat   = "unknown output format %q (use text, json, yaml or toml)"
	MsgErrShellArg    = "completion requires one of: bash, zsh, fish, powershell"

	// Flag descriptions
	MsgFlagVerbose   = "Increase log verbosity (repeat for INFO, DEBUG, TRACE)"
	MsgFlagConfig    = "Read configuration from this file instead of the user and project files"
	MsgFlagNoColor   = "Disable colored output"
	MsgFlagDirectory = "Run as if gitig was started in this directory"
	MsgFlagAppend    = "Append to existing file instead of overwriting"
	MsgFlagOutput    = "Output to a different file (default: .gitignore)"
	MsgFlagPopular   = "Show only popular templates"
	MsgFlagFormat    = "Output format: text, json, yaml or toml"
	MsgFlagPretty    = "Render the template as a styled document"
	MsgFlagWrite     = "Write config to a file instead of stdout"
	MsgFlagGenOutput = "File to write with --write (default: .gitig.toml)"
	MsgFlagForce     = "Replace an existing config file"

	// Version output
	MsgVersionTemplate = "gitig v{{.Version}}\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimRight(msgAddExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
