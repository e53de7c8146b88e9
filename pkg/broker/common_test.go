package broker

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/emma-alert/emma-broker/pkg/broker/mocks"
)

func GetBrokerWithMiniredis(t *testing.T, useMockAlerts, useMockPresence, useMockMetrics bool) (
	*gomock.Controller,
	*miniredis.Miniredis,
	*Broker,
	*mocks.MockIAlertStore,
	*mocks.MockIPresence,
	*mocks.MockIMetrics,
) {
	ctrl := gomock.NewController(t)

	mockAlerts := mocks.NewMockIAlertStore(ctrl)
	mockPresence := mocks.NewMockIPresence(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)

	srv := miniredis.RunT(t)

	brokerInstance, err := New(context.Background(), Options{Addr: srv.Addr()})
	require.NoError(t, err)
	t.Cleanup(brokerInstance.Cleanup)

	alertService := brokerInstance.Alerts
	if useMockAlerts {
		alertService = mockAlerts
	}

	presenceService := brokerInstance.Presence
	if useMockPresence {
		presenceService = mockPresence
	}

	metricsService := brokerInstance.Metrics
	if useMockMetrics {
		metricsService = mockMetrics
	}

	brokerInstance.WithServices(ServiceOpts{
		Alerts:   alertService,
		Presence: presenceService,
		Metrics:  metricsService,
	})

	return ctrl, srv, brokerInstance, mockAlerts, mockPresence, mockMetrics
}

func WaitForMessage(t *testing.T, sub *Subscription) ChannelMessage {
	t.Helper()

	select {
	case msg, ok := <-sub.Messages():
		if !ok {
			t.Fatal("subscription closed before a message arrived")
		}
		return msg
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for a channel message")
	}
	return ChannelMessage{}
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
