package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/emma-alert/emma-broker/pkg/broker"
)

// MonitorServer exposes the broker over HTTP: health and store reads for
// operators, plus one write path for alert ingest. Ingest is rate limited per
// sender when a RateLimiterStore is attached.
type MonitorServer struct {
	Server           *gin.Engine
	Broker           *broker.Broker
	RateLimiterStore *broker.RateLimiterStore
}

func (ms *MonitorServer) SetLimiter(sender string, senderRate float64, senderBurst int) {
	if ms.RateLimiterStore == nil {
		return
	}
	ms.RateLimiterStore.SetLimiter(sender, rate.Limit(senderRate), senderBurst)
}

func (ms *MonitorServer) Setup() {
	ms.Server.GET("/healthz", ms.HealthCheck)

	alerts := ms.Server.Group("/alerts")
	{
		alerts.GET("", ms.ListAlerts)
		alerts.GET("/:alert_id", ms.GetAlert)
		alerts.POST("", ms.IngestAlert)
	}

	ues := ms.Server.Group("/ues")
	{
		ues.GET("", ms.ListActiveUEs)
		ues.GET("/:ue_id", ms.GetUEStatus)
	}

	ms.Server.GET("/metrics/latest", ms.GetLatestMetrics)

	ms.Server.POST("/senders/:sender/limiter", ms.PostLimiter)
}
