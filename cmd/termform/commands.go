package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/termform/internal/config"
	"github.com/muurk/termform/internal/form"
	"github.com/muurk/termform/internal/logging"
	"github.com/muurk/termform/internal/terminal"
	"github.com/muurk/termform/internal/ui"
)

// Command flags
var (
	outputFormat string
	showProgress bool
	forceInit    bool
)

func init() {
	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(demoCmd)
}

// fillCmd fills a form loaded from a definition file
var fillCmd = &cobra.Command{
	Use:   "fill <file|name>",
	Short: "Fill a form from a definition file",
	Long: `Load a form definition and fill it interactively.

The argument is either a path to a YAML definition or the name of a
definition in the forms directory. When every field has a value the
results are printed in the chosen format.`,
	Example: `  # Fill a named form from the forms directory
  termform fill signup

  # Fill a form by path and print JSON for scripting
  termform fill ./signup.yaml --format json

  # Show a progress bar before each field
  termform fill signup --progress`,
	Args: cobra.ExactArgs(1),
	RunE: runFill,
}

func init() {
	fillCmd.Flags().StringVar(&outputFormat, "format", formatDetailed, "Output format (detailed, json, yaml)")
	fillCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar before each field")
}

func runFill(cmd *cobra.Command, args []string) error {
	if err := checkFormat(outputFormat); err != nil {
		return err
	}

	path, err := config.ResolveFormPath(args[0])
	if err != nil {
		return err
	}
	def, err := config.LoadDefinition(path)
	if err != nil {
		return err
	}
	f, err := def.Build()
	if err != nil {
		return fmt.Errorf("invalid form definition %s:\n%w", path, err)
	}

	title := def.Title
	if title == "" {
		title = filepath.Base(path)
	}
	logging.Info("Filling form", zap.String("path", path), zap.Int("fields", f.Len()))

	return fillAndReport(cmd.Context(), cmd, f, title, map[string]string{
		"Source": path,
		"Fields": strconv.Itoa(f.Len()),
	})
}

// fillAndReport fills f on the process terminal and writes the result.
func fillAndReport(ctx context.Context, cmd *cobra.Command, f *form.Form, title string, params map[string]string) error {
	console, stop := openConsole()
	defer stop()

	if outputFormat == formatDetailed && console.IsTerminal() {
		ui.NewPrinter(cmd.OutOrStdout()).PrintHeader(title, cmd.CommandPath(), params)
	}

	if err := f.Fill(ctx, newPrompter(console)); err != nil {
		if outputFormat == formatDetailed {
			ui.NewPrinter(cmd.ErrOrStderr()).PrintResult(ui.FillFailure(err))
		}
		return err
	}
	if err := console.ClearScreen(); err != nil {
		return err
	}

	return writeResult(cmd.OutOrStdout(), title, f, outputFormat, console.IsTerminal())
}

func newPrompter(console *terminal.Console) *form.Prompter {
	var opts []form.PrompterOption
	if console.IsTerminal() {
		opts = append(opts, form.WithTheme(ui.FormTheme()))
	}
	if showProgress {
		opts = append(opts, form.WithFieldHook(ui.NewProgress().Hook()))
	}
	return form.NewPrompter(console, opts...)
}

// validateCmd checks a definition without filling it
var validateCmd = &cobra.Command{
	Use:   "validate <file|name>",
	Short: "Check a form definition",
	Long: `Load a form definition and report every problem in it.

Checks that kinds, types and rule names are known, that select fields
have options whose values parse as the field's type, and that names are
unique.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, err := config.ResolveFormPath(args[0])
	if err != nil {
		return err
	}
	def, err := config.LoadDefinition(path)
	if err != nil {
		return err
	}

	errs := def.Validate()
	out := cmd.OutOrStdout()
	if len(errs) == 0 {
		fmt.Fprintf(out, "%s: OK (%d fields)\n", path, len(def.Fields))
		return nil
	}

	fmt.Fprintf(out, "%s: %d problem(s)\n", path, len(errs))
	for _, e := range errs {
		fmt.Fprintf(out, "  - %v\n", e)
	}
	return fmt.Errorf("form definition %s is invalid", path)
}

// initCmd writes the example definition into the forms directory
var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create an example form definition",
	Long: `Write the example form definition under the given name.

A bare name is created in the forms directory, so it can be filled with
'termform fill <name>'. A path is written as given.`,
	Example: `  # Create ~/.config/termform/forms/signup.yaml
  termform init signup

  # Replace an existing definition without asking
  termform init signup --force`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing definition without asking")
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := config.ResolveFormPath(args[0])
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		console, stop := openConsole()
		defer stop()
		ok, err := ui.ConfirmOverwrite(cmd.Context(), newPrompter(console), path)
		if err != nil {
			return err
		}
		if !ok {
			ui.NewPrinter(cmd.OutOrStdout()).PrintResult(ui.KeptExisting(path))
			return nil
		}
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	if err := config.ExampleDefinition().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
