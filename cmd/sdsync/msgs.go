package sdsync

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep game savedata in a synced directory, linked back in place"
	MsgPutShort        = "Move local savedata to the remote directory and link it back"
	MsgGetShort        = "Link local savedata to the remote copy"
	MsgCutShort        = "Replace the link with a copy of the remote savedata"
	MsgStatusShort     = "Print the state of local and remote savedata"
	MsgTablesShort     = "Print what each command does for every state"
	MsgGenConfigShort  = "Print or write a config file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice  = "DRY RUN MODE - No changes were made"
	MsgConfigWritten = "Config written to %s\n"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrNoCommand     = "no command specified"
	MsgErrInvalidFormat = "invalid --format %q"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Print what would change without changing anything"
	MsgFlagForce     = "Overwrite existing savedata or config files"
	MsgFlagTitle     = "Title directory name (default: name of the savedata's parent directory)"
	MsgFlagRemote    = "Remote directory (default: remote.dir config, ~/Dropbox/sdsync)"
	MsgFlagNoColor   = "Disable colored output"
	MsgFlagFormat    = "Output format: auto, terminal, text, json or yaml"
	MsgFlagWrite     = "Write the config file instead of printing it"
	MsgFlagOutput    = "Config file to write (default: the user config file)"
	MsgFlagEffective = "Print the configuration in effect instead of the commented defaults"
	MsgFlagMarkdown  = "Print the raw markdown"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/put-long.txt
	msgPutLongRaw string
	MsgPutLong    = strings.TrimSpace(msgPutLongRaw)

	//go:embed msgs/put-example.txt
	msgPutExampleRaw string
	MsgPutExample    = strings.TrimRight(msgPutExampleRaw, "\n")

	//go:embed msgs/get-long.txt
	msgGetLongRaw string
	MsgGetLong    = strings.TrimSpace(msgGetLongRaw)

	//go:embed msgs/get-example.txt
	msgGetExampleRaw string
	MsgGetExample    = strings.TrimRight(msgGetExampleRaw, "\n")

	//go:embed msgs/cut-long.txt
	msgCutLongRaw string
	MsgCutLong    = strings.TrimSpace(msgCutLongRaw)

	//go:embed msgs/cut-example.txt
	msgCutExampleRaw string
	MsgCutExample    = strings.TrimRight(msgCutExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/status-example.txt
	msgStatusExampleRaw string
	MsgStatusExample    = strings.TrimRight(msgStatusExampleRaw, "\n")

	//go:embed msgs/tables-long.txt
	msgTablesLongRaw string
	MsgTablesLong    = strings.TrimSpace(msgTablesLongRaw)

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
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
