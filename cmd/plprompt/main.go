// plprompt renders token streams as powerline-style shell prompts.
//
// Usage:
//
//	plprompt render < tokens.yaml
//	plprompt render --right --mode round --file tokens.yaml
//	plprompt modes
//	export POWERLINE_MODE=$(plprompt pick)
//
// Token streams are YAML or JSON sequences of {text, field, style} items.
// Settings come from flags, then PLPROMPT_* and POWERLINE_MODE environment
// variables, then .plprompt.yaml or $XDG_CONFIG_HOME/plprompt/config.yaml.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dkoosis/plprompt/internal/config"
	"github.com/dkoosis/plprompt/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries the state shared by all subcommands of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	flags    config.CliFlags
	verbose  bool
	resolved *config.ResolvedConfig
	logger   *zap.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, logger: logging.Nop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	_ = a.logger.Sync()
	if err != nil {
		fmt.Fprintf(stderr, "plprompt: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "plprompt",
		Short: "Powerline-style prompt renderer",
		Long: `plprompt turns a stream of prompt tokens into powerline-style
prompt markup: coloured blocks joined by arrow glyphs, for the left or
the right prompt.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigPath, "config", "", "config file path")
	pf.StringVar(&a.flags.Mode, "mode", "", "glyph mode (see 'plprompt modes')")
	pf.StringVar(&a.flags.Dialect, "dialect", "", "markup dialect: symbolic, xonsh, zsh")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log configuration and render decisions")

	root.AddCommand(
		a.renderCmd(),
		a.modesCmd(),
		a.fieldsCmd(),
		a.pickCmd(),
		a.versionCmd(),
	)
	return root
}

// setup resolves configuration and builds the logger before any subcommand.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	a.flags.Debug = a.verbose
	resolved, err := config.ResolveConfig(a.flags)
	if err != nil {
		return err
	}
	a.resolved = resolved

	logger, err := logging.New(a.stderr, resolved.Debug)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	a.logger = logger

	for _, w := range resolved.Warnings {
		a.logger.Warn(w)
	}
	a.logger.Debug("configuration resolved",
		zap.String("config_path", resolved.ConfigPath),
		zap.String("mode", resolved.Mode),
		zap.String("mode_source", resolved.ModeSource),
		zap.String("dialect", resolved.Dialect.Name()),
		zap.String("dialect_source", resolved.DialectSource),
	)
	return nil
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// isTTYReader reports whether r is a terminal.
func isTTYReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// useColor reports whether listings written to w should be styled.
func useColor(w io.Writer) bool {
	return os.Getenv("NO_COLOR") == "" && isTTYWriter(w)
}
