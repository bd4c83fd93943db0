// --- START OF FINAL REVISED FILE cmd/sovereign-doc/root.go ---
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stackvity/sovereign-doc/internal/cli"
	"github.com/stackvity/sovereign-doc/internal/cli/config"
	"github.com/stackvity/sovereign-doc/pkg/converter"
	"github.com/stackvity/sovereign-doc/pkg/converter/runlog"
)

var (
	// These are set during build time using -ldflags
	version = "dev"     // Default version
	commit  = "none"    // Default commit hash
	date    = "unknown" // Default build date
)

// rootCommand couples the cobra command with the state its run produces.
type rootCommand struct {
	cmd      *cobra.Command
	cfgFile  string // Path to config file
	exitCode int
}

// root represents the base command when called without any subcommands
var root = newRootCommand()

// newRootCommand builds an independent command with its own flag state.
func newRootCommand() *rootCommand {
	r := &rootCommand{}
	r.cmd = &cobra.Command{
		Use:   "sovereign-doc <input> --to {txt,md,html,docx}",
		Short: "Converts documents locally between docx, txt, md and html.",
		Long: `sovereign-doc converts documents among Word packages (.docx), plain text,
Markdown and HTML without any external engine.

The input is a single .docx, .txt or .md file, or a folder. A folder converts
every .docx file directly inside it. Existing files are never overwritten: the
output gets a " (n)" suffix when its name is taken.

Each successful conversion is appended to ` + runlog.DefaultLogFileName + ` next to the
executable unless --no-log is given.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.ExactArgs(1),
		RunE:    r.run,
	}
	r.cmd.SetVersionTemplate(`{{.Name}} version {{.Version}}` + "\n")

	// Persistent flags
	r.cmd.PersistentFlags().StringVar(&r.cfgFile, "config", "", "Configuration file path (default is search ./sovereign-doc.yaml, $HOME/.config/sovereign-doc/)")
	r.cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug) logging output (disables the progress bar)")

	// --- Local Flags for the root command ---
	// Note: Flag names are bound to Viper keys in internal/cli/config/config.go.
	r.cmd.Flags().String("to", "", "Required. Destination format (txt, md, html, docx)")
	r.cmd.Flags().Bool("no-log", false, "Disable logging this run to "+runlog.DefaultLogFileName)
	r.cmd.Flags().String("log-file", "", "Run log path (default is "+runlog.DefaultLogFileName+" next to the executable)")
	r.cmd.Flags().String("default-encoding", converter.DefaultEncoding, "Fallback character encoding for .txt/.md sources that are not UTF-8 (e.g. windows-1252)")
	r.cmd.Flags().StringArray("ignore", []string{}, "Glob patterns for .docx base names to skip in folder mode (can be specified multiple times)")
	r.cmd.Flags().String("report", string(converter.DefaultReportFormat), `Folder mode summary format ("text", "json", "yaml", "markdown")`)
	return r
}

func (r *rootCommand) run(cmd *cobra.Command, args []string) error {
	// Arguments parsed; later failures are not usage errors.
	cmd.SilenceUsage = true

	// Create a context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	opts, logger, err := config.LoadAndValidate(r.cfgFile, args[0], cmd.Flags())
	if err != nil {
		// config.LoadAndValidate logs the specific error already
		return err
	}

	r.exitCode = cli.Run(ctx, opts, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return nil
}

// execute runs the command and maps its outcome to a process exit code.
// Argument, flag and configuration errors exit 1.
func (r *rootCommand) execute() int {
	r.exitCode = cli.ExitOK
	if err := r.cmd.Execute(); err != nil {
		return cli.ExitError
	}
	return r.exitCode
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	return root.execute()
}

// --- END OF FINAL REVISED FILE cmd/sovereign-doc/root.go ---
