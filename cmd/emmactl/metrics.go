package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Inspect metrics snapshots",
}

var metricsLatestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Fetch the most recent metrics snapshot",
	RunE:  runMetricsLatest,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.AddCommand(metricsLatestCmd)
}

func runMetricsLatest(cmd *cobra.Command, args []string) error {
	b, err := newBroker(cmd)
	if err != nil {
		return err
	}
	defer b.Cleanup()

	snapshot := b.Metrics.GetLatestMetrics(cmd.Context())
	if snapshot == nil {
		return fmt.Errorf("no metrics stored")
	}
	return printJSON(cmd, snapshot)
}
