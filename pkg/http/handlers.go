package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/emma-alert/emma-broker/pkg/broker"
	"github.com/emma-alert/emma-broker/pkg/models"
)

func (ms *MonitorServer) HealthCheck(c *gin.Context) {
	status := ms.Broker.HealthCheck(c.Request.Context())
	if status.Status != broker.HealthStatusHealthy {
		c.JSON(http.StatusServiceUnavailable, status)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (ms *MonitorServer) ListAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, ms.Broker.Alerts.GetAllAlerts(c.Request.Context()))
}

func (ms *MonitorServer) GetAlert(c *gin.Context) {
	alertID := c.Param("alert_id")

	alert := ms.Broker.Alerts.GetAlert(c.Request.Context(), alertID)
	if alert == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, alert)
}

var ingestAlertSchema = z.Struct(z.Shape{
	"Identifier": z.String().Min(1).Required(),
	"Sender":     z.String().Min(1).Required(),
	"Headline":   z.String().Min(1).Required(),
})

// IngestAlert performs the producer contract on behalf of HTTP clients:
// store the record, then announce it on the alerts channel. The two outcomes
// are reported separately since a publish with no subscribers is not an
// ingest failure.
func (ms *MonitorServer) IngestAlert(c *gin.Context) {
	var alert models.AlertRecord
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ingestAlertSchema.Validate(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !ms.RateLimiterStore.Allow(alert.Sender) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	ctx := c.Request.Context()

	if !ms.Broker.Alerts.StoreAlert(ctx, alert.Identifier, &alert) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "alert was not stored"})
		return
	}
	delivered := ms.Broker.Channels.Publish(ctx, broker.ChannelAlerts, &alert)

	c.JSON(http.StatusAccepted, gin.H{"stored": true, "delivered": delivered})
}

func (ms *MonitorServer) ListActiveUEs(c *gin.Context) {
	c.JSON(http.StatusOK, ms.Broker.Presence.GetActiveUEs(c.Request.Context()))
}

func (ms *MonitorServer) GetUEStatus(c *gin.Context) {
	ueID := c.Param("ue_id")

	status := ms.Broker.Presence.GetUEStatus(c.Request.Context(), ueID)
	if status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ue not found"})
		return
	}
	c.JSON(http.StatusOK, status)
}

func (ms *MonitorServer) GetLatestMetrics(c *gin.Context) {
	snapshot := ms.Broker.Metrics.GetLatestMetrics(c.Request.Context())
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no metrics stored"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (ms *MonitorServer) PostLimiter(c *gin.Context) {
	sender := c.Param("sender")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	ms.SetLimiter(sender, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
