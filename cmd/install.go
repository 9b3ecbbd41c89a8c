package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/helmcode/devops-agent/pkg/analyzer"
	"github.com/helmcode/devops-agent/pkg/formatter"
	"github.com/helmcode/devops-agent/pkg/llm"
	"github.com/spf13/cobra"
)

var (
	installTool   string
	installOutput string
	installModel  string
)

func NewInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Get installation instructions for a tool",
		Long: `Ask the configured model for prerequisites, installation steps, basic
configuration, verification and troubleshooting for a DevOps tool.

Examples:
  devops-agent install -t terraform
  devops-agent install --tool "kubectl" -o raw`,
		Args: cobra.NoArgs,
		RunE: runInstall,
	}

	cmd.Flags().StringVarP(&installTool, "tool", "t", "", "Name of the tool to install")
	cmd.Flags().StringVarP(&installOutput, "output", "o", formatter.FormatHuman, "Output format (human, raw, json, yaml)")
	cmd.Flags().StringVar(&installModel, "model", "", "Model to use (overrides the configured model)")

	return cmd
}

func runInstall(cmd *cobra.Command, args []string) error {
	if err := checkFormat(installOutput); err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	status := statusWriter(cmd, installOutput)

	cfg, err := loadConfig(cmd, in)
	if err != nil {
		return err
	}

	toolName := installTool
	if toolName == "" {
		if toolName, err = promptToolName(in, status); err != nil {
			return err
		}
	}

	fmt.Fprintf(status, "\nGetting installation instructions for %s...\n\n", toolName)

	s := newSpinner(" Asking AI...")
	s.Start()
	aiAnalyzer := analyzer.NewWithLLM(llm.NewFromConfig(cfg, installModel, verbose))
	resp, err := aiAnalyzer.SuggestInstall(cmd.Context(), toolName)
	s.Stop()
	if err != nil {
		formatter.DisplayError(status, err)
		return nil
	}
	printSuccess(status, "Instructions received")
	fmt.Fprintln(status)

	return formatter.DisplayResponse(out, resp, installOutput)
}

func promptToolName(in *bufio.Reader, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Enter the name of the tool to install: ")
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	name := strings.TrimSpace(line)
	if name == "" {
		return "", errors.New("no tool name provided")
	}
	return name, nil
}
