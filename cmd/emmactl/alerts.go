package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Inspect retained alerts",
}

var alertsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every alert currently retained",
	RunE:  runAlertsList,
}

var alertsGetCmd = &cobra.Command{
	Use:   "get <alert-id>",
	Short: "Fetch one alert by identifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runAlertsGet,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
	alertsCmd.AddCommand(alertsListCmd)
	alertsCmd.AddCommand(alertsGetCmd)
}

func runAlertsList(cmd *cobra.Command, args []string) error {
	b, err := newBroker(cmd)
	if err != nil {
		return err
	}
	defer b.Cleanup()

	return printJSON(cmd, b.Alerts.GetAllAlerts(cmd.Context()))
}

func runAlertsGet(cmd *cobra.Command, args []string) error {
	b, err := newBroker(cmd)
	if err != nil {
		return err
	}
	defer b.Cleanup()

	alert := b.Alerts.GetAlert(cmd.Context(), args[0])
	if alert == nil {
		return fmt.Errorf("alert %q not found", args[0])
	}
	return printJSON(cmd, alert)
}
