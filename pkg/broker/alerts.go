package broker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/emma-alert/emma-broker/pkg/common"
	"github.com/emma-alert/emma-broker/pkg/models"
)

func alertsLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameBrokerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlerts))
}

// storeAlert upserts one alert under its identifier and refreshes the expiry
// of the whole collection. The TTL is collection-wide, not per record: any
// write extends the lifetime of every stored alert by another 24h.
func (b *Broker) storeAlert(ctx context.Context, alertID string, alert *models.AlertRecord) bool {
	logger := alertsLogger()

	if alertID == "" || alert == nil {
		logger.Error("Refusing to store alert without identifier")
		return false
	}

	alert.ApplyDefaults()

	data, err := json.Marshal(alert)
	if err != nil {
		logger.Error("Failed to marshal alert", zap.String("alert_id", alertID), zap.Error(err))
		return false
	}

	if err := b.Rdb.HSet(ctx, keyAlertStore, alertID, data).Err(); err != nil {
		logger.Error("Failed to store alert", zap.String("alert_id", alertID), zap.Error(err))
		return false
	}
	if err := b.Rdb.Expire(ctx, keyAlertStore, alertStoreTTL).Err(); err != nil {
		logger.Error("Failed to refresh alert store expiry", zap.String("alert_id", alertID), zap.Error(err))
		return false
	}

	logger.Info("Stored alert", zap.String("alert_id", alertID))
	return true
}

func (b *Broker) getAlert(ctx context.Context, alertID string) *models.AlertRecord {
	logger := alertsLogger()

	data, err := b.Rdb.HGet(ctx, keyAlertStore, alertID).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error("Failed to retrieve alert", zap.String("alert_id", alertID), zap.Error(err))
		}
		return nil
	}

	var alert models.AlertRecord
	if err := json.Unmarshal([]byte(data), &alert); err != nil {
		logger.Error("Failed to decode stored alert", zap.String("alert_id", alertID), zap.Error(err))
		return nil
	}
	return &alert
}

func (b *Broker) getAllAlerts(ctx context.Context) []models.AlertRecord {
	logger := alertsLogger()

	entries, err := b.Rdb.HGetAll(ctx, keyAlertStore).Result()
	if err != nil {
		logger.Error("Failed to retrieve alerts", zap.Error(err))
		return []models.AlertRecord{}
	}

	alerts := make([]models.AlertRecord, 0, len(entries))
	for alertID, data := range entries {
		var alert models.AlertRecord
		if err := json.Unmarshal([]byte(data), &alert); err != nil {
			logger.Error("Failed to decode stored alert", zap.String("alert_id", alertID), zap.Error(err))
			return []models.AlertRecord{}
		}
		alerts = append(alerts, alert)
	}
	return alerts
}

// publishAlert stores the alert and then announces it on the alerts channel.
// Delivery is fire-and-forget: true means at least one subscriber was
// listening at publish time, never that any of them processed the alert.
func (b *Broker) publishAlert(ctx context.Context, alert *models.AlertRecord) bool {
	logger := alertsLogger()

	if alert == nil || alert.Identifier == "" {
		logger.Error("Refusing to publish alert without identifier")
		return false
	}

	if !b.Alerts.StoreAlert(ctx, alert.Identifier, alert) {
		return false
	}
	return b.Channels.Publish(ctx, ChannelAlerts, alert)
}

type IAlertStoreImpl struct {
	broker *Broker
}

func (ia *IAlertStoreImpl) StoreAlert(ctx context.Context, alertID string, alert *models.AlertRecord) bool {
	return ia.broker.storeAlert(ctx, alertID, alert)
}

func (ia *IAlertStoreImpl) GetAlert(ctx context.Context, alertID string) *models.AlertRecord {
	return ia.broker.getAlert(ctx, alertID)
}

func (ia *IAlertStoreImpl) GetAllAlerts(ctx context.Context) []models.AlertRecord {
	return ia.broker.getAllAlerts(ctx)
}

func (ia *IAlertStoreImpl) PublishAlert(ctx context.Context, alert *models.AlertRecord) bool {
	return ia.broker.publishAlert(ctx, alert)
}

func (b *Broker) GetIAlertStore() IAlertStore {
	return &IAlertStoreImpl{broker: b}
}
