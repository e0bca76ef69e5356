package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sandeepkv93/vaultos/internal/app"
	"github.com/sandeepkv93/vaultos/internal/config"
	"github.com/sandeepkv93/vaultos/internal/logging"
	"github.com/sandeepkv93/vaultos/internal/prompt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "vaultos failed: %v\n", err)
		os.Exit(1)
	}
}

type cliOptions struct {
	configPath string
	backend    string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:           "vaultos",
		Short:         "Idea review workspace: launch checklist, decision log and prompt assembly",
		Long:          `vaultos tracks the launch checklist, records final decisions from pasted reviews and assembles category prompts. Without a subcommand it starts the terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd == cmd.Root())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./"+config.DefaultConfigFile+" when present)")
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "state backend override: local, file or remote")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newProgressCmd(opts),
		newToggleCmd(opts),
		newLogsCmd(opts),
		newExportCmd(opts),
		newLogCmd(opts),
		newPromptCmd(opts),
		newFinalizeCmd(opts),
	)
	return root
}

// setup resolves configuration and the logger. The TUI logs only to a
// configured file; subcommands fall back to stderr.
func (o *cliOptions) setup(tui bool) error {
	path, explicit := o.configPath, true
	if strings.TrimSpace(path) == "" {
		path, explicit = config.DefaultConfigFile, false
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}
	cfg = config.FromEnv(cfg)
	if o.backend != "" {
		cfg.Backend.Kind = config.BackendKind(strings.ToLower(o.backend))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	level, fallback := cfg.Logging.Level, ""
	if !tui {
		fallback = "stderr"
		if cfg.Logging.File == "" {
			level = "warn"
		}
	}
	if o.verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.Logging.File, fallback)
	if err != nil {
		return err
	}
	o.logger = logger
	return nil
}

// openWorkspace opens and loads the workspace. Unlike the TUI, a headless
// command refuses to run on a failed load so it cannot overwrite the stored
// document with defaults.
func (o *cliOptions) openWorkspace(ctx context.Context, clip prompt.Clipboard) (*app.Workspace, io.Closer, error) {
	ws, closer, err := app.Open(ctx, o.cfg, clip, o.logger)
	if err != nil {
		return nil, nil, err
	}
	if _, err := ws.Load(ctx); err != nil {
		_ = closer.Close()
		return nil, nil, err
	}
	return ws, closer, nil
}

// clipboardFor picks the system clipboard unless it is disabled, missing or
// stdout was requested. system reports which one was chosen.
func (o *cliOptions) clipboardFor(out io.Writer, toStdout bool) (clip prompt.Clipboard, system bool) {
	if toStdout || !o.cfg.UI.Clipboard || !prompt.SystemClipboardAvailable() {
		return prompt.WriterClipboard{W: out}, false
	}
	return prompt.SystemClipboard{}, true
}

func readText(cmd *cobra.Command, inline, file string) (string, error) {
	if file == "" {
		return inline, nil
	}
	if file == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(raw), nil
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(raw), nil
}
