package broker

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emma-alert/emma-broker/pkg/common"
)

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
)

// HealthStatus is the result of one round-trip probe against the backing
// store. The diagnostic fields are filled in when the backend exposes them.
type HealthStatus struct {
	Status           string `json:"status"`
	ConnectedClients int64  `json:"connected_clients,omitempty"`
	UsedMemory       string `json:"used_memory,omitempty"`
	RedisVersion     string `json:"redis_version,omitempty"`
	Error            string `json:"error,omitempty"`
}

func healthLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameBrokerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryHealth))
}

// HealthCheck writes, reads back and deletes an ephemeral probe key. The
// probe carries its own short expiry so a crash between write and delete
// cannot leak it. Diagnostics are attached best effort; not every backend
// build answers INFO.
func (b *Broker) HealthCheck(ctx context.Context) HealthStatus {
	logger := healthLogger()

	probeKey := "health_check_" + uuid.NewString()

	if err := b.Rdb.Set(ctx, probeKey, "probe", healthProbeTTL).Err(); err != nil {
		logger.Error("Health probe write failed", zap.Error(err))
		return HealthStatus{Status: HealthStatusUnhealthy, Error: err.Error()}
	}

	value, err := b.Rdb.Get(ctx, probeKey).Result()
	if err != nil {
		logger.Error("Health probe read failed", zap.Error(err))
		return HealthStatus{Status: HealthStatusUnhealthy, Error: err.Error()}
	}

	if err := b.Rdb.Del(ctx, probeKey).Err(); err != nil {
		logger.Error("Health probe delete failed", zap.Error(err))
		return HealthStatus{Status: HealthStatusUnhealthy, Error: err.Error()}
	}

	status := HealthStatus{Status: HealthStatusHealthy}
	if value != "probe" {
		logger.Error("Health probe read back the wrong value", zap.String("value", value))
		status.Status = HealthStatusUnhealthy
		status.Error = "probe value mismatch"
	}

	if info, err := b.Rdb.Info(ctx).Result(); err == nil {
		fields := parseInfoFields(info)
		status.ConnectedClients, _ = strconv.ParseInt(fields["connected_clients"], 10, 64)
		status.UsedMemory = fields["used_memory_human"]
		status.RedisVersion = fields["redis_version"]
	}

	if status.Status == HealthStatusHealthy {
		logger.Info("Health check passed")
	}
	return status
}

// parseInfoFields flattens an INFO reply into a key/value map, dropping
// section headers and blank lines.
func parseInfoFields(info string) map[string]string {
	return common.Reducer(strings.Split(info, "\n"), func(fields map[string]string, line string) map[string]string {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			return fields
		}
		if key, value, found := strings.Cut(line, ":"); found {
			fields[key] = value
		}
		return fields
	}, map[string]string{})
}
