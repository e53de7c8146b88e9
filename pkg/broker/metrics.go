package broker

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/emma-alert/emma-broker/pkg/common"
	"github.com/emma-alert/emma-broker/pkg/models"
)

func metricsLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameBrokerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMetrics))
}

// storeMetrics keeps the snapshot under its timestamp, prunes everything
// older than the retention window and announces the snapshot on the metrics
// channel. Snapshots sharing a timestamp overwrite each other; producers are
// expected to sample well below the timestamp resolution of one second.
func (b *Broker) storeMetrics(ctx context.Context, snapshot *models.MetricsSnapshot) bool {
	logger := metricsLogger()

	if snapshot == nil {
		logger.Error("Refusing to store nil metrics snapshot")
		return false
	}

	if snapshot.Timestamp == "" {
		snapshot.Timestamp = models.FormatTimestamp(time.Now())
	} else if _, err := models.ParseTimestamp(snapshot.Timestamp); err != nil {
		logger.Error("Rejecting metrics snapshot with unsortable timestamp",
			zap.String("timestamp", snapshot.Timestamp), zap.Error(err))
		return false
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to marshal metrics snapshot", zap.Error(err))
		return false
	}

	if err := b.Rdb.HSet(ctx, keyMetricsStore, snapshot.Timestamp, data).Err(); err != nil {
		logger.Error("Failed to store metrics snapshot",
			zap.String("timestamp", snapshot.Timestamp), zap.Error(err))
		return false
	}

	if !b.pruneMetrics(ctx) {
		return false
	}

	b.Channels.Publish(ctx, ChannelMetrics, snapshot)

	logger.Info("Stored metrics snapshot", zap.String("timestamp", snapshot.Timestamp))
	return true
}

// pruneMetrics drops every snapshot older than the retention window. The
// fixed-width timestamp layout makes the cutoff a plain string comparison,
// and retention keeps the collection small enough for a full scan per write.
func (b *Broker) pruneMetrics(ctx context.Context) bool {
	logger := metricsLogger()

	cutoff := models.FormatTimestamp(time.Now().Add(-metricsRetention))

	timestamps, err := b.Rdb.HKeys(ctx, keyMetricsStore).Result()
	if err != nil {
		logger.Error("Failed to scan metrics store for pruning", zap.Error(err))
		return false
	}

	stale := make([]string, 0)
	for _, ts := range timestamps {
		if ts < cutoff {
			stale = append(stale, ts)
		}
	}
	if len(stale) == 0 {
		return true
	}

	if err := b.Rdb.HDel(ctx, keyMetricsStore, stale...).Err(); err != nil {
		logger.Error("Failed to prune stale metrics snapshots", zap.Error(err))
		return false
	}

	logger.Info("Pruned stale metrics snapshots", zap.Int("count", len(stale)))
	return true
}

// getLatestMetrics returns the snapshot with the lexicographically largest
// timestamp, which the fixed-width layout makes the chronologically newest.
func (b *Broker) getLatestMetrics(ctx context.Context) *models.MetricsSnapshot {
	logger := metricsLogger()

	entries, err := b.Rdb.HGetAll(ctx, keyMetricsStore).Result()
	if err != nil {
		logger.Error("Failed to retrieve metrics snapshots", zap.Error(err))
		return nil
	}
	if len(entries) == 0 {
		return nil
	}

	var latest string
	for ts := range entries {
		if ts > latest {
			latest = ts
		}
	}

	var snapshot models.MetricsSnapshot
	if err := json.Unmarshal([]byte(entries[latest]), &snapshot); err != nil {
		logger.Error("Failed to decode stored metrics snapshot",
			zap.String("timestamp", latest), zap.Error(err))
		return nil
	}
	return &snapshot
}

type IMetricsImpl struct {
	broker *Broker
}

func (im *IMetricsImpl) StoreMetrics(ctx context.Context, snapshot *models.MetricsSnapshot) bool {
	return im.broker.storeMetrics(ctx, snapshot)
}

func (im *IMetricsImpl) GetLatestMetrics(ctx context.Context) *models.MetricsSnapshot {
	return im.broker.getLatestMetrics(ctx)
}

func (b *Broker) GetIMetrics() IMetrics {
	return &IMetricsImpl{broker: b}
}
