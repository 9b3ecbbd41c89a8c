package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/helmcode/devops-agent/pkg/config"
	"github.com/helmcode/devops-agent/pkg/formatter"
	"github.com/helmcode/devops-agent/pkg/llm"
	"github.com/helmcode/devops-agent/pkg/setup"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

// BindGlobalFlags registers the flags shared by every subcommand.
func BindGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (same as DEBUG=1)")
}

// loadConfig returns the stored configuration, running the setup wizard on in
// when there is none.
func loadConfig(cmd *cobra.Command, in *bufio.Reader) (*config.Config, error) {
	store := config.NewStore(configPath)
	return store.Load(func() (*config.Config, error) {
		client := llm.NewForSetup(verbose)
		return newWizard(cmd, in, client, store).Run(cmd.Context())
	})
}

func newWizard(cmd *cobra.Command, in *bufio.Reader, client *llm.Client, store *config.Store) *setup.Wizard {
	return setup.New(in, cmd.OutOrStdout(), client, client, store)
}

// statusWriter keeps progress lines out of machine readable output.
func statusWriter(cmd *cobra.Command, format string) io.Writer {
	if format == formatter.FormatJSON || format == formatter.FormatYAML {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}

func checkFormat(format string) error {
	if !formatter.ValidFormat(format) {
		return fmt.Errorf("unsupported output format %q (supported: human, raw, json, yaml)", format)
	}
	return nil
}

func newSpinner(suffix string) *spinner.Spinner {
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = suffix
	return s
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}

func printWarning(w io.Writer, msg string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(w, "! %s\n", msg)
}
