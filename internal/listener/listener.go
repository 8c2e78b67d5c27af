// Package listener drops cached catalog records when upstream services
// announce changes on Kafka.
package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Nomet5/cake-app-sub003/pkg/cache"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

// Reader is satisfied by *broker.KafkaConsumer.
type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Invalidator is satisfied by *cache.RedisClient.
type Invalidator interface {
	DeletePattern(ctx context.Context, pattern string) (int, error)
}

type CacheListener struct {
	consumer Reader
	cache    Invalidator
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewCacheListener(consumer Reader, c Invalidator, log logger.ZapLogger) *CacheListener {
	return &CacheListener{
		consumer: consumer,
		cache:    c,
		logger:   log,
		backoff:  time.Second,
	}
}

// Start blocks until ctx is cancelled.
func (l *CacheListener) Start(ctx context.Context) {
	l.logger.Info("Starting catalog cache listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping catalog cache listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				// Don't log context canceled error as error
				if ctx.Err() != nil {
					l.logger.Info("Stopping catalog cache listener")
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *CacheListener) processMessage(ctx context.Context, value []byte) {
	var event CatalogEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	entities, ok := affected[event.EventType]
	if !ok {
		l.logger.Debug("Ignoring event", zap.String("event_type", event.EventType))
		return
	}

	for _, entity := range entities {
		n, err := l.cache.DeletePattern(ctx, cache.EntityPattern(entity))
		if err != nil {
			l.logger.Error("Failed to invalidate cache",
				zap.String("event_id", event.EventID),
				zap.String("entity", entity),
				zap.Error(err),
			)
			continue
		}
		l.logger.Debug("Invalidated cache",
			zap.String("event_type", event.EventType),
			zap.String("entity", entity),
			zap.Int("keys", n),
		)
	}
}
