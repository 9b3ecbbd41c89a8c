package cmd

import (
	"errors"
	"fmt"

	"github.com/helmcode/devops-agent/pkg/config"
	"github.com/helmcode/devops-agent/pkg/formatter"
	"github.com/spf13/cobra"
)

var configOutput string

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the stored configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration with the API key masked",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	show.Flags().StringVarP(&configOutput, "output", "o", formatter.FormatHuman, "Output format (human, json, yaml)")

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configPath)
		},
	}

	cmd.AddCommand(show, path)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if configOutput == formatter.FormatRaw {
		return fmt.Errorf("unsupported output format %q (supported: human, json, yaml)", configOutput)
	}
	if err := checkFormat(configOutput); err != nil {
		return err
	}

	store := config.NewStore(configPath)
	cfg, err := store.Read()
	if err != nil {
		if errors.Is(err, config.ErrNotFound) {
			return fmt.Errorf("no configuration at %s, run 'devops-agent setup' first", store.Path())
		}
		return err
	}

	if err := formatter.DisplayConfig(cmd.OutOrStdout(), store.Path(), cfg, configOutput); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		printWarning(statusWriter(cmd, configOutput), fmt.Sprintf("configuration has problems: %v", err))
	}
	return nil
}
