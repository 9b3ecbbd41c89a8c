package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/helmcode/devops-agent/pkg/analyzer"
	"github.com/helmcode/devops-agent/pkg/formatter"
	"github.com/helmcode/devops-agent/pkg/llm"
	"github.com/spf13/cobra"
)

const doneMarker = "DONE"

var (
	analyzeFile   string
	analyzeText   string
	analyzeOutput string
	analyzeModel  string
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze an error with AI assistance",
		Long: `Send an error message or log to the configured model and print an explanation
of the cause, how to fix it and how to prevent it.

The error text is taken from --file if the file exists, otherwise from --text,
otherwise it is read from standard input until a line containing only DONE.

Examples:
  # Analyze a log file
  devops-agent analyze -f /var/log/app/error.log

  # Analyze a short message
  devops-agent analyze -t "permission denied (publickey)"

  # Paste interactively
  devops-agent analyze`,
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to error log file")
	cmd.Flags().StringVarP(&analyzeText, "text", "t", "", "Error text to analyze")
	cmd.Flags().StringVarP(&analyzeOutput, "output", "o", formatter.FormatHuman, "Output format (human, raw, json, yaml)")
	cmd.Flags().StringVar(&analyzeModel, "model", "", "Model to use (overrides the configured model)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := checkFormat(analyzeOutput); err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	status := statusWriter(cmd, analyzeOutput)

	cfg, err := loadConfig(cmd, in)
	if err != nil {
		return err
	}

	errorText, err := readErrorText(in, status)
	if err != nil {
		return err
	}

	fmt.Fprintln(status, "\nAnalyzing error...")
	fmt.Fprintln(status)

	s := newSpinner(" Analyzing with AI...")
	s.Start()
	aiAnalyzer := analyzer.NewWithLLM(llm.NewFromConfig(cfg, analyzeModel, verbose))
	resp, err := aiAnalyzer.AnalyzeError(cmd.Context(), errorText)
	s.Stop()
	if err != nil {
		formatter.DisplayError(status, err)
		return nil
	}
	printSuccess(status, "Analysis complete")
	fmt.Fprintln(status)

	return formatter.DisplayResponse(out, resp, analyzeOutput)
}

// readErrorText picks the first available source: an existing --file, --text,
// then interactive input.
func readErrorText(in *bufio.Reader, prompt io.Writer) (string, error) {
	if analyzeFile != "" {
		b, err := os.ReadFile(analyzeFile)
		if err == nil {
			return string(b), nil
		}
		ancli.Warnf("could not read %s, falling back: %v\n", analyzeFile, err)
	}
	if analyzeText != "" {
		return analyzeText, nil
	}

	fmt.Fprintf(prompt, "Enter the error text to analyze (type '%s' on a new line when finished):\n", doneMarker)
	text, err := readUntilDone(in)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no error text provided")
	}
	return text, nil
}

// readUntilDone collects lines until one that is exactly DONE or the end of
// input. Line endings are dropped; indentation is kept.
func readUntilDone(in *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == doneMarker {
			break
		}
		if err != nil {
			if line != "" {
				lines = append(lines, line)
			}
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
