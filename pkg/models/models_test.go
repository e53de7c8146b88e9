package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestampIsSortable(t *testing.T) {
	earlier := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	later := earlier.Add(90 * time.Minute)

	a := FormatTimestamp(earlier)
	b := FormatTimestamp(later)

	assert.Len(t, a, len(TimestampLayout))
	assert.Len(t, b, len(TimestampLayout))
	assert.Less(t, a, b)
}

func TestParseTimestampRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	parsed, err := ParseTimestamp(FormatTimestamp(now))
	require.NoError(t, err)
	assert.True(t, parsed.Equal(now))

	_, err = ParseTimestamp("2025-01-02 03:04:05")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	rec := AlertRecord{
		Identifier: "EMMA-TEST-0001",
		Sender:     "emma-test",
	}

	rec.ApplyDefaults()

	assert.NotEmpty(t, rec.CreatedAt)
	_, err := ParseTimestamp(rec.CreatedAt)
	assert.NoError(t, err)
	assert.NotNil(t, rec.Areas)
	assert.NotNil(t, rec.MediaAttachments)
	assert.Len(t, rec.Areas, 0)
	assert.Len(t, rec.MediaAttachments, 0)
}

func TestApplyDefaultsKeepsExistingCreatedAt(t *testing.T) {
	createdAt := FormatTimestamp(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	rec := AlertRecord{
		Identifier: "EMMA-TEST-0002",
		CreatedAt:  createdAt,
	}

	rec.ApplyDefaults()

	assert.Equal(t, createdAt, rec.CreatedAt)
}

func TestIsHighPriority(t *testing.T) {
	cases := []struct {
		name     string
		severity AlertSeverity
		urgency  AlertUrgency
		want     bool
	}{
		{"extreme immediate", SeverityExtreme, UrgencyImmediate, true},
		{"severe immediate", SeveritySevere, UrgencyImmediate, true},
		{"minor immediate", SeverityMinor, UrgencyImmediate, false},
		{"extreme expected", SeverityExtreme, UrgencyExpected, false},
		{"moderate past", SeverityModerate, UrgencyPast, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := AlertRecord{Severity: tc.severity, Urgency: tc.urgency}
			assert.Equal(t, tc.want, rec.IsHighPriority())
		})
	}
}

func TestHasMedia(t *testing.T) {
	rec := AlertRecord{}
	assert.False(t, rec.HasMedia())

	rec.MediaAttachments = []MediaAttachment{
		{Filename: "map.png", ContentType: "image/png", Size: 2048, Checksum: "abc123"},
	}
	assert.True(t, rec.HasMedia())
}

func TestAlertRecordWireFormat(t *testing.T) {
	rec := AlertRecord{
		Identifier:  "EMMA-20250601-0001",
		Sender:      "emma-cap-generator",
		Sent:        FormatTimestamp(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		Status:      StatusActual,
		MsgType:     MsgTypeAlert,
		Scope:       ScopePublic,
		Category:    "Met",
		Event:       "Flash Flood Warning",
		Urgency:     UrgencyImmediate,
		Severity:    SeverityExtreme,
		Certainty:   CertaintyObserved,
		Headline:    "Flash flooding in progress",
		Description: "Move to higher ground immediately.",
		Areas: []AlertArea{
			{AreaDesc: "Downtown", Geocode: map[string]string{"FIPS6": "006085"}},
		},
	}
	rec.ApplyDefaults()

	raw, err := json.Marshal(&rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// field names are shared with every other process on the bus
	assert.Contains(t, decoded, "identifier")
	assert.Contains(t, decoded, "msg_type")
	assert.Contains(t, decoded, "media_attachments")
	assert.Contains(t, decoded, "created_at")
	assert.NotContains(t, decoded, "instruction")

	var back AlertRecord
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, rec, back)
}
