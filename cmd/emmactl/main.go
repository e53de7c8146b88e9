// Package main is the entry point for the emmactl admin CLI.
//
// emmactl talks to the same redis backend as the broker daemons. It is
// aimed at operators: probing backend health, inspecting retained
// alerts, UE presence and metrics snapshots, and tailing pub/sub
// channels.
//
// Usage:
//
//	emmactl health
//	emmactl alerts list
//	emmactl tail network-alerts
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emma-alert/emma-broker/pkg/broker"
	"github.com/emma-alert/emma-broker/pkg/common"
	"github.com/emma-alert/emma-broker/pkg/config"
)

// version is set by the release build via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "emmactl",
	Short: "Admin CLI for the emma alert broker",
	Long: `emmactl inspects and drives the emma alert broker backend.

Every command connects to redis using the EMMA_REDIS_* environment
variables (or the --redis flag), performs one operation and prints
JSON to stdout.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "emmactl "+version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("redis", "", "redis address, overrides "+common.EnvKeyRedisAddr)
	rootCmd.AddCommand(versionCmd)
}

// newBroker builds a broker handle for one command invocation. The
// caller owns the handle and must Cleanup it.
func newBroker(cmd *cobra.Command) (*broker.Broker, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	if addr, _ := cmd.Flags().GetString("redis"); addr != "" {
		cfg.Redis.Addr = addr
	}

	return broker.New(cmd.Context(), broker.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func main() {
	// keep stdout clean, command output is the interface here
	common.SetFileOnlyLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// cobra already printed the error, just exit with code 1
		os.Exit(1)
	}
}
