package broker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emma-alert/emma-broker/pkg/common"
	_ "github.com/emma-alert/emma-broker/pkg/testing"
)

func TestHealthCheck(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, srv, brokerObj, _, _, _ := GetBrokerWithMiniredis(t, false, false, false)
	defer ctrl.Finish()

	status := brokerObj.HealthCheck(context.Background())
	assert.Equal(t, HealthStatusHealthy, status.Status)
	assert.Empty(t, status.Error)

	// the probe key must not be left behind
	assert.Empty(t, srv.Keys())
}

func TestHealthCheckUnhealthy(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, srv, brokerObj, _, _, _ := GetBrokerWithMiniredis(t, false, false, false)
	defer ctrl.Finish()

	srv.Close()

	status := brokerObj.HealthCheck(context.Background())
	assert.Equal(t, HealthStatusUnhealthy, status.Status)
	assert.NotEmpty(t, status.Error)
}

func TestParseInfoFields(t *testing.T) {
	info := "# Server\r\nredis_version:7.2.4\r\nredis_mode:standalone\r\n\r\n# Clients\r\nconnected_clients:3\r\n\r\n# Memory\r\nused_memory_human:1.04M\r\n"

	fields := parseInfoFields(info)

	assert.Equal(t, "7.2.4", fields["redis_version"])
	assert.Equal(t, "3", fields["connected_clients"])
	assert.Equal(t, "1.04M", fields["used_memory_human"])

	_, hasHeader := fields["# Server"]
	assert.False(t, hasHeader)
}
