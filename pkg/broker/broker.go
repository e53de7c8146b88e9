package broker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/emma-alert/emma-broker/pkg/common"
	"github.com/emma-alert/emma-broker/pkg/models"
)

// Channel names shared by every process on the bus.
const (
	ChannelAlerts        = "alerts"
	ChannelNetworkAlerts = "network-alerts"
	ChannelUEStatus      = "ue-status"
	ChannelMetrics       = "metrics"
)

// Storage keys in the shared backing store.
const (
	keyAlertStore   = "alerts:store"
	keyUEStore      = "ues:store"
	keyActiveUEs    = "ues:active"
	keyMetricsStore = "metrics:store"
)

const (
	alertStoreTTL    = 24 * time.Hour
	metricsRetention = 24 * time.Hour
	healthProbeTTL   = 10 * time.Second

	defaultAddr    = "localhost:6379"
	defaultTimeout = 5 * time.Second
)

type IAlertStore interface {
	StoreAlert(ctx context.Context, alertID string, alert *models.AlertRecord) bool
	GetAlert(ctx context.Context, alertID string) *models.AlertRecord
	GetAllAlerts(ctx context.Context) []models.AlertRecord
	PublishAlert(ctx context.Context, alert *models.AlertRecord) bool
}

type IPresence interface {
	RegisterUE(ctx context.Context, status *models.UEPresenceRecord) bool
	UnregisterUE(ctx context.Context, ueID string) bool
	GetActiveUEs(ctx context.Context) []string
	GetUEStatus(ctx context.Context, ueID string) *models.UEPresenceRecord
	MarkAlertReceived(ctx context.Context, ueID string) bool
}

type IMetrics interface {
	StoreMetrics(ctx context.Context, snapshot *models.MetricsSnapshot) bool
	GetLatestMetrics(ctx context.Context) *models.MetricsSnapshot
}

type IChannels interface {
	Publish(ctx context.Context, channel string, payload any) bool
	PublishNetworkAlert(ctx context.Context, payload any) bool
	Subscribe(ctx context.Context, channel string) *Subscription
	SubscribeAlerts(ctx context.Context) *Subscription
	SubscribeNetworkAlerts(ctx context.Context) *Subscription
	SubscribeUEStatus(ctx context.Context) *Subscription
	SubscribeMetrics(ctx context.Context) *Subscription
}

// Options carries the connection parameters for the shared backing store.
type Options struct {
	Addr     string
	Password string
	DB       int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func (o *Options) applyDefaults() {
	if o.Addr == "" {
		o.Addr = defaultAddr
	}
	if o.DialTimeout == 0 {
		o.DialTimeout = defaultTimeout
	}
	if o.ReadTimeout == 0 {
		o.ReadTimeout = defaultTimeout
	}
	if o.WriteTimeout == 0 {
		o.WriteTimeout = defaultTimeout
	}
}

// Broker is the process-wide handle to the coordination backbone. Construct
// one per process with New and pass it by reference; there is deliberately no
// package-level singleton accessor.
type Broker struct {
	Rdb *redis.Client

	Alerts   IAlertStore
	Presence IPresence
	Metrics  IMetrics
	Channels IChannels

	mu   sync.Mutex
	subs []*Subscription
}

type ServiceOpts struct {
	Alerts   IAlertStore
	Presence IPresence
	Metrics  IMetrics
	Channels IChannels
}

func (b *Broker) WithServices(opts ServiceOpts) *Broker {
	if opts.Alerts != nil {
		b.Alerts = opts.Alerts
	}
	if opts.Presence != nil {
		b.Presence = opts.Presence
	}
	if opts.Metrics != nil {
		b.Metrics = opts.Metrics
	}
	if opts.Channels != nil {
		b.Channels = opts.Channels
	}
	return b
}

// New connects to the backing store and probes it eagerly. A connection
// failure here is the only error this package surfaces as an error; every
// later operation failure is logged and reported through its return value.
func New(ctx context.Context, opts Options) (*Broker, error) {
	logger := common.GetLoggerWith(common.LoggerNameBrokerCore)

	opts.applyDefaults()

	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", opts.Addr, err)
	}

	logger.Info("Connected to redis", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))

	b := &Broker{Rdb: rdb}
	b.WithServices(ServiceOpts{
		Alerts:   b.GetIAlertStore(),
		Presence: b.GetIPresence(),
		Metrics:  b.GetIMetrics(),
		Channels: b.GetIChannels(),
	})
	return b, nil
}

func (b *Broker) track(sub *Subscription) {
	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()
}

// Cleanup closes every open subscription handle and then the backing
// connection. The broker must not be used afterwards.
func (b *Broker) Cleanup() {
	logger := common.GetLoggerWith(common.LoggerNameBrokerCore)

	b.mu.Lock()
	subs := b.subs
	b.subs = nil
	b.mu.Unlock()

	for _, sub := range subs {
		if err := sub.Close(); err != nil {
			logger.Error("Failed to close subscription", zap.Error(err))
		}
	}

	if err := b.Rdb.Close(); err != nil {
		logger.Error("Failed to close redis connection", zap.Error(err))
		return
	}
	logger.Info("Cleaned up redis connections")
}
