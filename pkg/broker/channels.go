package broker

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/emma-alert/emma-broker/pkg/common"
)

// subscriptionBuffer bounds how far a slow consumer may fall behind before
// delivery starts blocking the pump goroutine.
const subscriptionBuffer = 100

func channelsLogger() *zap.Logger {
	return common.GetLoggerWith(common.LoggerNameBrokerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryChannels))
}

// ChannelMessage is one raw message as delivered on a channel. Decode the
// Data with the payload helpers matching the channel's contract.
type ChannelMessage struct {
	Channel string
	Data    []byte
}

// Subscription is an open handle on one channel. Read deliveries from
// Messages and Close when done; Cleanup on the owning broker closes every
// handle that is still open.
type Subscription struct {
	channel string
	pubsub  *redis.PubSub
	out     chan ChannelMessage
	done    chan struct{}
	once    sync.Once
}

func newSubscription(channel string, pubsub *redis.PubSub) *Subscription {
	sub := &Subscription{
		channel: channel,
		pubsub:  pubsub,
		out:     make(chan ChannelMessage, subscriptionBuffer),
		done:    make(chan struct{}),
	}
	go sub.pump()
	return sub
}

func (s *Subscription) pump() {
	defer close(s.out)
	for msg := range s.pubsub.Channel() {
		select {
		case s.out <- ChannelMessage{Channel: msg.Channel, Data: []byte(msg.Payload)}:
		case <-s.done:
			return
		}
	}
}

// Messages returns the delivery stream. The channel is closed once the
// subscription is closed and the remaining buffered messages are drained.
func (s *Subscription) Messages() <-chan ChannelMessage {
	return s.out
}

func (s *Subscription) Channel() string {
	return s.channel
}

// Close is idempotent.
func (s *Subscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})
	return err
}

// publish delivers the payload as JSON to whoever is subscribed right now.
// True means at least one subscriber received it; false covers both failures
// and the nobody-listening case, so callers treat it as advisory only.
func (b *Broker) publish(ctx context.Context, channel string, payload any) bool {
	logger := channelsLogger()

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal channel payload",
			zap.String("channel", channel), zap.Error(err))
		return false
	}

	receivers, err := b.Rdb.Publish(ctx, channel, data).Result()
	if err != nil {
		logger.Error("Failed to publish message",
			zap.String("channel", channel), zap.Error(err))
		return false
	}

	logger.Info("Published message",
		zap.String("channel", channel), zap.Int64("receivers", receivers))
	return receivers > 0
}

// subscribe opens a handle on one channel. It waits for the subscription
// acknowledgement before returning, so a publish issued right after this
// returns already counts the new subscriber. Nil on failure.
func (b *Broker) subscribe(ctx context.Context, channel string) *Subscription {
	logger := channelsLogger()

	pubsub := b.Rdb.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		logger.Error("Failed to subscribe to channel",
			zap.String("channel", channel), zap.Error(err))
		_ = pubsub.Close()
		return nil
	}

	sub := newSubscription(channel, pubsub)
	b.track(sub)

	logger.Info("Subscribed to channel", zap.String("channel", channel))
	return sub
}

type IChannelsImpl struct {
	broker *Broker
}

func (ic *IChannelsImpl) Publish(ctx context.Context, channel string, payload any) bool {
	return ic.broker.publish(ctx, channel, payload)
}

func (ic *IChannelsImpl) PublishNetworkAlert(ctx context.Context, payload any) bool {
	return ic.broker.publish(ctx, ChannelNetworkAlerts, payload)
}

func (ic *IChannelsImpl) Subscribe(ctx context.Context, channel string) *Subscription {
	return ic.broker.subscribe(ctx, channel)
}

func (ic *IChannelsImpl) SubscribeAlerts(ctx context.Context) *Subscription {
	return ic.broker.subscribe(ctx, ChannelAlerts)
}

func (ic *IChannelsImpl) SubscribeNetworkAlerts(ctx context.Context) *Subscription {
	return ic.broker.subscribe(ctx, ChannelNetworkAlerts)
}

func (ic *IChannelsImpl) SubscribeUEStatus(ctx context.Context) *Subscription {
	return ic.broker.subscribe(ctx, ChannelUEStatus)
}

func (ic *IChannelsImpl) SubscribeMetrics(ctx context.Context) *Subscription {
	return ic.broker.subscribe(ctx, ChannelMetrics)
}

func (b *Broker) GetIChannels() IChannels {
	return &IChannelsImpl{broker: b}
}
