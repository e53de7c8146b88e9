package broker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/emma-alert/emma-broker/pkg/common"
	"github.com/emma-alert/emma-broker/pkg/models"
)

func presenceLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameBrokerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryPresence))
}

// registerUE upserts the UE's presence record, adds it to the active set and
// announces the registration on the ue-status channel. Re-registration is a
// plain overwrite, so a reconnecting UE needs no special casing.
func (b *Broker) registerUE(ctx context.Context, status *models.UEPresenceRecord) bool {
	logger := presenceLogger()

	if status == nil || status.UEID == "" {
		logger.Error("Refusing to register UE without id")
		return false
	}

	status.ConnectionStatus = models.ConnectionConnected
	status.LastSeen = models.FormatTimestamp(time.Now())

	data, err := json.Marshal(status)
	if err != nil {
		logger.Error("Failed to marshal UE status", zap.String("ue_id", status.UEID), zap.Error(err))
		return false
	}

	if err := b.Rdb.HSet(ctx, keyUEStore, status.UEID, data).Err(); err != nil {
		logger.Error("Failed to store UE status", zap.String("ue_id", status.UEID), zap.Error(err))
		return false
	}
	if err := b.Rdb.SAdd(ctx, keyActiveUEs, status.UEID).Err(); err != nil {
		logger.Error("Failed to mark UE active", zap.String("ue_id", status.UEID), zap.Error(err))
		return false
	}

	b.Channels.Publish(ctx, ChannelUEStatus, PresenceEvent{
		Action: PresenceActionRegister,
		UEID:   status.UEID,
		Data:   status,
	})

	logger.Info("Registered UE", zap.String("ue_id", status.UEID))
	return true
}

// unregisterUE removes the UE from the active set and flips its stored record
// to disconnected. The record itself is kept for status lookups after the UE
// is gone. Unregistering an unknown UE is a no-op that still emits the event.
func (b *Broker) unregisterUE(ctx context.Context, ueID string) bool {
	logger := presenceLogger()

	if ueID == "" {
		logger.Error("Refusing to unregister UE without id")
		return false
	}

	if err := b.Rdb.SRem(ctx, keyActiveUEs, ueID).Err(); err != nil {
		logger.Error("Failed to remove UE from active set", zap.String("ue_id", ueID), zap.Error(err))
		return false
	}

	data, err := b.Rdb.HGet(ctx, keyUEStore, ueID).Result()
	switch {
	case err == nil:
		var status models.UEPresenceRecord
		if err := json.Unmarshal([]byte(data), &status); err != nil {
			logger.Error("Failed to decode stored UE status", zap.String("ue_id", ueID), zap.Error(err))
			return false
		}
		status.ConnectionStatus = models.ConnectionDisconnected
		status.LastSeen = models.FormatTimestamp(time.Now())
		updated, err := json.Marshal(&status)
		if err != nil {
			logger.Error("Failed to marshal UE status", zap.String("ue_id", ueID), zap.Error(err))
			return false
		}
		if err := b.Rdb.HSet(ctx, keyUEStore, ueID, updated).Err(); err != nil {
			logger.Error("Failed to store UE status", zap.String("ue_id", ueID), zap.Error(err))
			return false
		}
	case !errors.Is(err, redis.Nil):
		logger.Error("Failed to retrieve UE status", zap.String("ue_id", ueID), zap.Error(err))
		return false
	}

	b.Channels.Publish(ctx, ChannelUEStatus, PresenceEvent{
		Action: PresenceActionUnregister,
		UEID:   ueID,
	})

	logger.Info("Unregistered UE", zap.String("ue_id", ueID))
	return true
}

func (b *Broker) getActiveUEs(ctx context.Context) []string {
	logger := presenceLogger()

	ueIDs, err := b.Rdb.SMembers(ctx, keyActiveUEs).Result()
	if err != nil {
		logger.Error("Failed to retrieve active UEs", zap.Error(err))
		return []string{}
	}
	return ueIDs
}

func (b *Broker) getUEStatus(ctx context.Context, ueID string) *models.UEPresenceRecord {
	logger := presenceLogger()

	data, err := b.Rdb.HGet(ctx, keyUEStore, ueID).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error("Failed to retrieve UE status", zap.String("ue_id", ueID), zap.Error(err))
		}
		return nil
	}

	var status models.UEPresenceRecord
	if err := json.Unmarshal([]byte(data), &status); err != nil {
		logger.Error("Failed to decode stored UE status", zap.String("ue_id", ueID), zap.Error(err))
		return nil
	}
	return &status
}

// markAlertReceived bumps the UE's delivery counter and refreshes last_seen.
// False for UEs that never registered.
func (b *Broker) markAlertReceived(ctx context.Context, ueID string) bool {
	logger := presenceLogger()

	data, err := b.Rdb.HGet(ctx, keyUEStore, ueID).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Error("Failed to retrieve UE status", zap.String("ue_id", ueID), zap.Error(err))
		}
		return false
	}

	var status models.UEPresenceRecord
	if err := json.Unmarshal([]byte(data), &status); err != nil {
		logger.Error("Failed to decode stored UE status", zap.String("ue_id", ueID), zap.Error(err))
		return false
	}

	status.AlertsReceived++
	status.LastSeen = models.FormatTimestamp(time.Now())

	updated, err := json.Marshal(&status)
	if err != nil {
		logger.Error("Failed to marshal UE status", zap.String("ue_id", ueID), zap.Error(err))
		return false
	}
	if err := b.Rdb.HSet(ctx, keyUEStore, ueID, updated).Err(); err != nil {
		logger.Error("Failed to store UE status", zap.String("ue_id", ueID), zap.Error(err))
		return false
	}
	return true
}

type IPresenceImpl struct {
	broker *Broker
}

func (ip *IPresenceImpl) RegisterUE(ctx context.Context, status *models.UEPresenceRecord) bool {
	return ip.broker.registerUE(ctx, status)
}

func (ip *IPresenceImpl) UnregisterUE(ctx context.Context, ueID string) bool {
	return ip.broker.unregisterUE(ctx, ueID)
}

func (ip *IPresenceImpl) GetActiveUEs(ctx context.Context) []string {
	return ip.broker.getActiveUEs(ctx)
}

func (ip *IPresenceImpl) GetUEStatus(ctx context.Context, ueID string) *models.UEPresenceRecord {
	return ip.broker.getUEStatus(ctx, ueID)
}

func (ip *IPresenceImpl) MarkAlertReceived(ctx context.Context, ueID string) bool {
	return ip.broker.markAlertReceived(ctx, ueID)
}

func (b *Broker) GetIPresence() IPresence {
	return &IPresenceImpl{broker: b}
}
