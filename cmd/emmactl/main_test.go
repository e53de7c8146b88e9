package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/emma-alert/emma-broker/pkg/testing"

	"github.com/emma-alert/emma-broker/pkg/broker"
	"github.com/emma-alert/emma-broker/pkg/common"
	"github.com/emma-alert/emma-broker/pkg/models"
)

// pointEnvAt makes every subsequent command talk to the given backend.
func pointEnvAt(t *testing.T, srv *miniredis.Miniredis) {
	t.Setenv(common.EnvKeyRedisAddr, srv.Addr())
}

func runCommand(args ...string) (string, error) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// seedBroker opens a second handle used to plant fixtures behind the
// commands under test.
func seedBroker(t *testing.T, srv *miniredis.Miniredis) *broker.Broker {
	b, err := broker.New(context.Background(), broker.Options{Addr: srv.Addr()})
	require.NoError(t, err)
	t.Cleanup(b.Cleanup)
	return b
}

func TestVersionCommand(t *testing.T) {
	common.SetTestLoggerNop()

	out, err := runCommand("version")

	require.NoError(t, err)
	assert.Contains(t, out, "emmactl")
}

func TestHealthCommand(t *testing.T) {
	common.SetTestLoggerNop()

	srv := miniredis.RunT(t)
	pointEnvAt(t, srv)

	out, err := runCommand("health")

	require.NoError(t, err)
	assert.Contains(t, out, `"status": "healthy"`)
}

func TestHealthCommandUnreachable(t *testing.T) {
	common.SetTestLoggerNop()

	srv := miniredis.RunT(t)
	pointEnvAt(t, srv)
	srv.Close()

	_, err := runCommand("health")

	assert.Error(t, err)
}

func TestAlertsCommands(t *testing.T) {
	common.SetTestLoggerNop()

	srv := miniredis.RunT(t)
	pointEnvAt(t, srv)
	seed := seedBroker(t, srv)

	alertID := uuid.NewString()
	require.True(t, seed.Alerts.StoreAlert(context.Background(), alertID, &models.AlertRecord{
		Identifier: alertID,
		Sender:     "emma-cbc",
		Headline:   "Flash flood watch",
	}))

	{
		out, err := runCommand("alerts", "list")
		require.NoError(t, err)
		assert.Contains(t, out, alertID)
	}

	{
		out, err := runCommand("alerts", "get", alertID)
		require.NoError(t, err)
		assert.Contains(t, out, "Flash flood watch")
	}

	{
		_, err := runCommand("alerts", "get", uuid.NewString())
		assert.Error(t, err)
	}
}

func TestUEsCommands(t *testing.T) {
	common.SetTestLoggerNop()

	srv := miniredis.RunT(t)
	pointEnvAt(t, srv)
	seed := seedBroker(t, srv)

	ueID := uuid.NewString()
	require.True(t, seed.Presence.RegisterUE(context.Background(), &models.UEPresenceRecord{UEID: ueID}))

	{
		out, err := runCommand("ues", "list")
		require.NoError(t, err)
		assert.Contains(t, out, ueID)
	}

	{
		out, err := runCommand("ues", "get", ueID)
		require.NoError(t, err)
		assert.Contains(t, out, string(models.ConnectionConnected))
	}

	{
		_, err := runCommand("ues", "get", uuid.NewString())
		assert.Error(t, err)
	}
}

func TestMetricsLatestCommand(t *testing.T) {
	common.SetTestLoggerNop()

	srv := miniredis.RunT(t)
	pointEnvAt(t, srv)
	seed := seedBroker(t, srv)

	{
		// nothing stored yet
		_, err := runCommand("metrics", "latest")
		assert.Error(t, err)
	}

	ts := models.FormatTimestamp(time.Now())
	require.True(t, seed.Metrics.StoreMetrics(context.Background(), &models.MetricsSnapshot{Timestamp: ts}))

	{
		out, err := runCommand("metrics", "latest")
		require.NoError(t, err)
		assert.Contains(t, out, ts)
	}
}

func TestTailCommand(t *testing.T) {
	common.SetTestLoggerNop()

	srv := miniredis.RunT(t)
	pointEnvAt(t, srv)
	seed := seedBroker(t, srv)

	outCh := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		out, err := runCommand("tail", broker.ChannelUEStatus, "--count", "1")
		outCh <- out
		errCh <- err
	}()

	// publish until the tail subscriber is attached and receives it
	require.Eventually(t, func() bool {
		return seed.Channels.Publish(context.Background(), broker.ChannelUEStatus, map[string]string{"hello": "world"})
	}, 5*time.Second, 50*time.Millisecond)

	select {
	case out := <-outCh:
		require.NoError(t, <-errCh)
		assert.Contains(t, out, "hello")
	case <-time.After(5 * time.Second):
		t.Fatal("tail did not exit after receiving the requested message count")
	}
}
