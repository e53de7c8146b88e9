package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emma-alert/emma-broker/pkg/broker"
)

// healthCmd probes the backend with the same write/read/delete round
// trip the monitor daemon exposes on /healthz.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe backend health",
	Long: `Probe the redis backend with a write/read/delete round trip and
print the resulting status, including server diagnostics when the
backend provides them.

Exit codes:
  0 - backend is healthy
  1 - backend is unreachable or failed the probe`,
	RunE: runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	b, err := newBroker(cmd)
	if err != nil {
		return err
	}
	defer b.Cleanup()

	status := b.HealthCheck(cmd.Context())
	if err := printJSON(cmd, status); err != nil {
		return err
	}
	if status.Status != broker.HealthStatusHealthy {
		return fmt.Errorf("backend is unhealthy")
	}
	return nil
}
