package cmd

import (
	"bufio"

	"github.com/helmcode/devops-agent/pkg/monitor"
	"github.com/spf13/cobra"
)

func NewMonitorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Show the error monitoring settings",
		Long: `Report the error monitoring block of the configuration: whether it is
enabled, the scan interval and the log patterns. Log scanning itself is not
implemented and no background process is started.`,
		Args: cobra.NoArgs,
		RunE: runMonitor,
	}
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, bufio.NewReader(cmd.InOrStdin()))
	if err != nil {
		return err
	}
	monitor.Describe(cfg.ErrorMonitoring).Print(cmd.OutOrStdout())
	return nil
}
