package sdsync

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/sdsync/internal/version"
	"github.com/arthur-debert/sdsync/pkg/cobrax/topics"
	"github.com/arthur-debert/sdsync/pkg/commands/genconfig"
	"github.com/arthur-debert/sdsync/pkg/commands/status"
	"github.com/arthur-debert/sdsync/pkg/commands/sync"
	"github.com/arthur-debert/sdsync/pkg/commands/tables"
	"github.com/arthur-debert/sdsync/pkg/config"
	"github.com/arthur-debert/sdsync/pkg/errors"
	"github.com/arthur-debert/sdsync/pkg/logging"
	"github.com/arthur-debert/sdsync/pkg/operator"
	"github.com/arthur-debert/sdsync/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions holds the persistent flags and the loaded configuration.
type globalOptions struct {
	verbosity int
	dryRun    bool
	force     bool
	title     string
	remote    string
	noColor   bool

	cfg *config.Config
}

func (o *globalOptions) remoteBase() string {
	if o.remote != "" {
		return o.remote
	}
	return o.cfg.Remote.Dir
}

func (o *globalOptions) colorMode() string {
	if o.noColor {
		return string(config.ColorNever)
	}
	return string(o.cfg.Output.Color)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "sdsync",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadDefault()
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}
			opts.cfg = cfg

			logging.SetupLoggerWithOptions(logging.Options{
				Verbosity: opts.verbosity,
				LogToFile: cfg.Logging.File,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.BoolVarP(&opts.force, "force", "f", false, MsgFlagForce)
	flags.StringVar(&opts.title, "title", "", MsgFlagTitle)
	flags.StringVar(&opts.remote, "remote", "", MsgFlagRemote)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSyncCmd(opts, operator.OpPut, MsgPutShort, MsgPutLong, MsgPutExample))
	rootCmd.AddCommand(newSyncCmd(opts, operator.OpGet, MsgGetShort, MsgGetLong, MsgGetExample))
	rootCmd.AddCommand(newSyncCmd(opts, operator.OpCut, MsgCutShort, MsgCutLong, MsgCutExample))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newTablesCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	topicFS, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		_, err = topics.InitializeWithOptions(rootCmd, topicFS, topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func savedataArgs(args []string) (local, name string) {
	local = args[0]
	if len(args) == 2 {
		name = args[1]
	}
	return local, name
}

func newSyncCmd(opts *globalOptions, op operator.Op, short, long, example string) *cobra.Command {
	return &cobra.Command{
		Use:     string(op) + " <savedata-file> [savedata-name]",
		Short:   short,
		Long:    long,
		Example: example,
		Args:    cobra.RangeArgs(1, 2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			local, name := savedataArgs(args)
			errOut := cmd.ErrOrStderr()

			result, err := sync.Sync(sync.SyncOptions{
				Op:         op,
				LocalPath:  local,
				Name:       name,
				Title:      opts.title,
				RemoteBase: opts.remoteBase(),
				Force:      opts.force,
				DryRun:     opts.dryRun,
				Output:     errOut,
			})
			if err != nil {
				return err
			}

			log.Info().
				Str("op", string(op)).
				Stringer("status", result.After).
				Msg("Savedata pair")

			if result.DryRun {
				renderer, err := ui.NewRenderer(ui.ResolveFormat(ui.FormatAuto, opts.colorMode(), errOut), errOut)
				if err != nil {
					return err
				}
				return renderer.RenderMessage(MsgDryRunNotice)
			}
			return nil
		},
	}
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "status <savedata-file> [savedata-name]",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		Args:    cobra.RangeArgs(1, 2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, MsgErrInvalidFormat, format)
			}

			// The status line goes to stderr; machine formats go to stdout.
			out := cmd.ErrOrStderr()
			if f == ui.FormatJSON || f == ui.FormatYAML {
				out = cmd.OutOrStdout()
			}
			f = ui.ResolveFormat(f, opts.colorMode(), out)

			local, name := savedataArgs(args)
			_, err = status.Status(status.StatusOptions{
				LocalPath:  local,
				Name:       name,
				Title:      opts.title,
				RemoteBase: opts.remoteBase(),
				Format:     f,
				Output:     out,
			})
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"auto", "terminal", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newTablesCmd(opts *globalOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:       "tables [put|get|cut]...",
		Short:     MsgTablesShort,
		Long:      MsgTablesLong,
		GroupID:   "misc",
		ValidArgs: []string{"put", "get", "cut"},
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := make([]operator.Op, 0, len(args))
			for _, a := range args {
				ops = append(ops, operator.Op(a))
			}
			md, err := tables.Markdown(ops...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				_, err = fmt.Fprint(out, md)
				return err
			}

			renderer := topics.NewPlainGlamourRenderer()
			if ui.ResolveFormat(ui.FormatAuto, opts.colorMode(), out) == ui.FormatTerminal {
				renderer = topics.NewGlamourRenderer()
			}
			rendered, err := renderer.RenderMarkdown(md)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render decision tables")
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "markdown", false, MsgFlagMarkdown)

	return cmd
}

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	var (
		write     bool
		output    string
		effective bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			genOpts := genconfig.GenConfigOptions{
				Write: write,
				Force: opts.force,
				Path:  output,
			}
			if effective {
				genOpts.Effective = opts.cfg
			}

			result, err := genconfig.GenConfig(genOpts)
			if err != nil {
				return err
			}

			if result.FileWritten != "" {
				_, err = fmt.Fprintf(cmd.ErrOrStderr(), MsgConfigWritten, result.FileWritten)
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), result.ConfigContent)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)

	return cmd
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.SetOut(cmd.OutOrStdout())
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return errors.New(errors.ErrInternal, "help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), version.String(cmd.Root().Name()))
			return err
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
