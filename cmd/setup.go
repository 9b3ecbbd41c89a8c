package cmd

import (
	"bufio"

	"github.com/helmcode/devops-agent/pkg/config"
	"github.com/helmcode/devops-agent/pkg/llm"
	"github.com/spf13/cobra"
)

var (
	setupAPIKey string
	setupModel  string
)

func NewSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run first-time setup or reconfigure",
		Long: `Collect an OpenRouter API key and a model and write the configuration file.

Without flags the key is validated against the API and the available models are
listed for selection. With --api-key the key is stored as given, without
validation; adding --model skips model selection as well.

Examples:
  devops-agent setup
  devops-agent setup --api-key sk-or-... --model openai/gpt-4o`,
		Args: cobra.NoArgs,
		RunE: runSetup,
	}

	cmd.Flags().StringVar(&setupAPIKey, "api-key", "", "OpenRouter API key")
	cmd.Flags().StringVar(&setupModel, "model", "", "Model ID to use")

	return cmd
}

func runSetup(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(cmd.InOrStdin())
	store := config.NewStore(configPath)
	wizard := newWizard(cmd, in, llm.NewForSetup(verbose), store)

	if setupAPIKey != "" {
		_, err := wizard.RunWith(cmd.Context(), setupAPIKey, setupModel)
		return err
	}
	if setupModel != "" {
		printWarning(cmd.OutOrStdout(), "--model is only used together with --api-key; ignoring it")
	}
	_, err := wizard.Run(cmd.Context())
	return err
}
