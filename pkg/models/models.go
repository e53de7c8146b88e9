package models

import "time"

// TimestampLayout is the one sanctioned wire format for every timestamp the
// broker writes: fixed width, UTC, lexicographically sortable. Latest-metrics
// selection and retention pruning compare these strings byte-wise, so all
// producers must emit exactly this layout.
const TimestampLayout = "2006-01-02T15:04:05Z"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}

type AlertSeverity string

const (
	SeverityMinor    AlertSeverity = "Minor"
	SeverityModerate AlertSeverity = "Moderate"
	SeveritySevere   AlertSeverity = "Severe"
	SeverityExtreme  AlertSeverity = "Extreme"
)

type AlertUrgency string

const (
	UrgencyImmediate AlertUrgency = "Immediate"
	UrgencyExpected  AlertUrgency = "Expected"
	UrgencyFuture    AlertUrgency = "Future"
	UrgencyPast      AlertUrgency = "Past"
)

type AlertCertainty string

const (
	CertaintyObserved AlertCertainty = "Observed"
	CertaintyLikely   AlertCertainty = "Likely"
	CertaintyPossible AlertCertainty = "Possible"
	CertaintyUnlikely AlertCertainty = "Unlikely"
)

type AlertStatus string

const (
	StatusActual   AlertStatus = "Actual"
	StatusExercise AlertStatus = "Exercise"
	StatusSystem   AlertStatus = "System"
	StatusTest     AlertStatus = "Test"
)

type AlertMsgType string

const (
	MsgTypeAlert  AlertMsgType = "Alert"
	MsgTypeUpdate AlertMsgType = "Update"
	MsgTypeCancel AlertMsgType = "Cancel"
)

type AlertScope string

const (
	ScopePublic     AlertScope = "Public"
	ScopeRestricted AlertScope = "Restricted"
	ScopePrivate    AlertScope = "Private"
)

// MediaAttachment describes one signed media file carried by an alert.
// Immutable once attached to a record.
type MediaAttachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Checksum    string `json:"checksum"`
	Signature   string `json:"signature,omitempty"`
	URL         string `json:"url,omitempty"`
}

// AlertArea describes the geographical region an alert applies to.
type AlertArea struct {
	AreaDesc string            `json:"area_desc"`
	Polygon  string            `json:"polygon,omitempty"`
	Circle   string            `json:"circle,omitempty"`
	Geocode  map[string]string `json:"geocode,omitempty"`
}

// AlertRecord is the canonical emergency-alert unit exchanged between
// producers, the broker and distributors.
type AlertRecord struct {
	Identifier string       `json:"identifier"`
	Sender     string       `json:"sender"`
	Sent       string       `json:"sent"`
	Status     AlertStatus  `json:"status"`
	MsgType    AlertMsgType `json:"msg_type"`
	Scope      AlertScope   `json:"scope"`

	Category    string         `json:"category"`
	Event       string         `json:"event"`
	Urgency     AlertUrgency   `json:"urgency"`
	Severity    AlertSeverity  `json:"severity"`
	Certainty   AlertCertainty `json:"certainty"`
	Headline    string         `json:"headline"`
	Description string         `json:"description"`
	Instruction string         `json:"instruction,omitempty"`
	Web         string         `json:"web,omitempty"`
	Contact     string         `json:"contact,omitempty"`

	Areas            []AlertArea       `json:"areas"`
	MediaAttachments []MediaAttachment `json:"media_attachments"`

	CreatedAt   string `json:"created_at,omitempty"`
	ProcessedAt string `json:"processed_at,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// ApplyDefaults stamps created_at on first observation and replaces nil
// collections with empty ones. Areas and media are never absent on the wire.
func (a *AlertRecord) ApplyDefaults() {
	if a.CreatedAt == "" {
		a.CreatedAt = FormatTimestamp(time.Now())
	}
	if a.Areas == nil {
		a.Areas = []AlertArea{}
	}
	if a.MediaAttachments == nil {
		a.MediaAttachments = []MediaAttachment{}
	}
}

func (a *AlertRecord) HasMedia() bool {
	return len(a.MediaAttachments) > 0
}

// IsHighPriority reports whether the alert warrants expedited distribution:
// severity Severe or Extreme combined with Immediate urgency.
func (a *AlertRecord) IsHighPriority() bool {
	return (a.Severity == SeveritySevere || a.Severity == SeverityExtreme) &&
		a.Urgency == UrgencyImmediate
}

type ConnectionStatus string

const (
	ConnectionConnected    ConnectionStatus = "connected"
	ConnectionDisconnected ConnectionStatus = "disconnected"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// UEPresenceRecord tracks one receiving device. Records are never deleted;
// disconnection flips the status and keeps the history.
type UEPresenceRecord struct {
	UEID             string           `json:"ue_id"`
	Location         *GeoPoint        `json:"location,omitempty"`
	ConnectionStatus ConnectionStatus `json:"connection_status"`
	LastSeen         string           `json:"last_seen,omitempty"`
	AlertsReceived   int64            `json:"alerts_received"`
}

// MetricsSnapshot is one immutable point-in-time view of system health,
// keyed in storage by its Timestamp.
type MetricsSnapshot struct {
	Timestamp              string            `json:"timestamp"`
	TotalAlertsGenerated   int64             `json:"total_alerts_generated"`
	TotalAlertsDistributed int64             `json:"total_alerts_distributed"`
	ActiveUEConnections    int64             `json:"active_ue_connections"`
	AverageDeliveryTime    float64           `json:"average_delivery_time"`
	SystemStatus           string            `json:"system_status"`
	ComponentStatus        map[string]string `json:"component_status"`
}
