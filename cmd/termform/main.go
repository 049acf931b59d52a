// Termform fills interactive terminal forms.
//
// Forms are declared in YAML definition files, or built in code as in the
// demo command. Text fields are validated and re-prompted until the input
// is acceptable; choice fields are navigated with the arrow keys.
//
// Usage:
//
//	termform [command] [flags]
//
// See 'termform --help' for available commands.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/muurk/termform/internal/logging"
	"github.com/muurk/termform/internal/terminal"
	"github.com/muurk/termform/internal/version"
)

// exitInterrupted is the conventional status for a SIGINT exit.
const exitInterrupted = 130

var logLevel string

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termform",
	Short: "Interactive terminal forms",
	Long: `Fill interactive forms in the terminal.

A form is an ordered list of fields: free-text prompts checked by
validation rules, single-choice menus and multiple-choice menus. Forms are
described in YAML files kept in the forms directory or passed by path.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "termform %s\n%s\n", version.Full(), version.Platform())
	},
}

// openConsole opens the process terminal and arranges for Ctrl+C to put it
// back the way it was found before exiting. The returned func stops the
// handler.
func openConsole() (*terminal.Console, func()) {
	console := terminal.NewStdio()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigChan:
			if err := console.Reset(); err != nil {
				logging.Warn("Failed to restore terminal")
			}
			fmt.Fprintln(os.Stderr)
			logging.Sync()
			os.Exit(exitInterrupted)
		case <-done:
		}
	}()

	return console, func() {
		signal.Stop(sigChan)
		close(done)
	}
}
