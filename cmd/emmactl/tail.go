package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tailCmd streams raw messages from a pub/sub channel, one JSON payload
// per line, until interrupted.
var tailCmd = &cobra.Command{
	Use:   "tail <channel>",
	Short: "Stream messages from a pub/sub channel",
	Long: `Subscribe to a pub/sub channel and print every message payload to
stdout, one per line. Runs until interrupted (Ctrl+C) or, with
--count, until that many messages have arrived.

The broker publishes on: alerts, network-alerts, ue-status, metrics.

Example:
  emmactl tail network-alerts
  emmactl tail ue-status --count 10`,
	Args: cobra.ExactArgs(1),
	RunE: runTail,
}

func init() {
	rootCmd.AddCommand(tailCmd)

	tailCmd.Flags().Int("count", 0, "exit after this many messages (0 = until interrupted)")
}

func runTail(cmd *cobra.Command, args []string) error {
	b, err := newBroker(cmd)
	if err != nil {
		return err
	}
	defer b.Cleanup()

	sub := b.Channels.Subscribe(cmd.Context(), args[0])
	if sub == nil {
		return fmt.Errorf("could not subscribe to channel %q", args[0])
	}
	defer sub.Close()

	count, _ := cmd.Flags().GetInt("count")

	seen := 0
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case msg, ok := <-sub.Messages():
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(msg.Data))
			seen++
			if count > 0 && seen >= count {
				return nil
			}
		}
	}
}
