package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uesCmd = &cobra.Command{
	Use:   "ues",
	Short: "Inspect UE presence",
}

var uesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the identifiers of all currently connected UEs",
	RunE:  runUEsList,
}

var uesGetCmd = &cobra.Command{
	Use:   "get <ue-id>",
	Short: "Fetch one UE presence record, connected or not",
	Args:  cobra.ExactArgs(1),
	RunE:  runUEsGet,
}

func init() {
	rootCmd.AddCommand(uesCmd)
	uesCmd.AddCommand(uesListCmd)
	uesCmd.AddCommand(uesGetCmd)
}

func runUEsList(cmd *cobra.Command, args []string) error {
	b, err := newBroker(cmd)
	if err != nil {
		return err
	}
	defer b.Cleanup()

	return printJSON(cmd, b.Presence.GetActiveUEs(cmd.Context()))
}

func runUEsGet(cmd *cobra.Command, args []string) error {
	b, err := newBroker(cmd)
	if err != nil {
		return err
	}
	defer b.Cleanup()

	status := b.Presence.GetUEStatus(cmd.Context(), args[0])
	if status == nil {
		return fmt.Errorf("ue %q not found", args[0])
	}
	return printJSON(cmd, status)
}
