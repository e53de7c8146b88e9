package broker

import (
	"encoding/json"
	"fmt"

	z "github.com/Oudwins/zog"

	"github.com/emma-alert/emma-broker/pkg/models"
)

// Presence event actions carried on the ue-status channel.
const (
	PresenceActionRegister   = "register"
	PresenceActionUnregister = "unregister"
)

// PresenceEvent announces a UE joining or leaving. Data carries the full
// presence record on register and is omitted on unregister.
type PresenceEvent struct {
	Action string                   `json:"action"`
	UEID   string                   `json:"ue_id"`
	Data   *models.UEPresenceRecord `json:"data,omitempty"`
}

var presenceEventSchema = z.Struct(z.Shape{
	"Action": z.String().OneOf([]string{PresenceActionRegister, PresenceActionUnregister}).Required(),
	"UEID":   z.String().Min(1).Required(),
})

var alertMessageSchema = z.Struct(z.Shape{
	"Identifier": z.String().Min(1).Required(),
})

// DecodeAlertMessage decodes a message from the alerts or network-alerts
// channels. Only the identifier is validated; alert content is the sender's
// business.
func DecodeAlertMessage(data []byte) (*models.AlertRecord, error) {
	var alert models.AlertRecord
	if err := json.Unmarshal(data, &alert); err != nil {
		return nil, fmt.Errorf("decode alert message: %w", err)
	}
	if issues := alertMessageSchema.Validate(&alert); issues != nil {
		return nil, fmt.Errorf("invalid alert message: %v", issues)
	}
	return &alert, nil
}

// DecodePresenceEvent decodes a message from the ue-status channel.
func DecodePresenceEvent(data []byte) (*PresenceEvent, error) {
	var event PresenceEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("decode presence event: %w", err)
	}
	if issues := presenceEventSchema.Validate(&event); issues != nil {
		return nil, fmt.Errorf("invalid presence event: %v", issues)
	}
	return &event, nil
}

// DecodeMetricsMessage decodes a message from the metrics channel.
func DecodeMetricsMessage(data []byte) (*models.MetricsSnapshot, error) {
	var snapshot models.MetricsSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("decode metrics message: %w", err)
	}
	if _, err := models.ParseTimestamp(snapshot.Timestamp); err != nil {
		return nil, fmt.Errorf("invalid metrics message timestamp: %w", err)
	}
	return &snapshot, nil
}
