package listener

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

type result struct {
	msg kafka.Message
	err error
}

// chanReader replays results in order and blocks when none are queued.
type chanReader struct {
	results chan result
}

func newChanReader() *chanReader {
	return &chanReader{results: make(chan result, 8)}
}

func (r *chanReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case res := <-r.results:
		return res.msg, res.err
	}
}

func (r *chanReader) push(m kafka.Message) { r.results <- result{msg: m} }
func (r *chanReader) fail(err error)      { r.results <- result{err: err} }

type recordingCache struct {
	mu       sync.Mutex
	patterns []string
	fail     bool
	done     chan struct{}
	want     int
}

func (c *recordingCache) DeletePattern(_ context.Context, pattern string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.patterns = append(c.patterns, pattern)
	if len(c.patterns) == c.want {
		close(c.done)
	}
	if c.fail {
		return 0, errors.New("redis down")
	}
	return 1, nil
}

func (c *recordingCache) seen() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.patterns...)
}

func event(t *testing.T, eventType string) kafka.Message {
	t.Helper()
	ev, err := NewEvent(eventType, map[string]string{"id": "p1"})
	require.NoError(t, err)
	data, err := json.Marshal(ev)
	require.NoError(t, err)
	return kafka.Message{Value: data}
}

func run(t *testing.T, l *CacheListener) (cancel func()) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()
	return func() {
		stop()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("listener did not stop")
		}
	}
}

func TestCacheListener_InvalidatesAffectedEntities(t *testing.T) {
	defer goleak.VerifyNone(t)

	reader := newChanReader()
	c := &recordingCache{done: make(chan struct{}), want: 3}
	l := NewCacheListener(reader, c, logger.NewNop())
	stop := run(t, l)

	reader.push(kafka.Message{Value: []byte("not json")})
	reader.push(event(t, "InventoryAdjusted"))
	reader.push(event(t, CategoryChanged))
	reader.push(event(t, OrderCreated))

	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("cache was not invalidated")
	}
	stop()

	assert.Equal(t, []string{"catalog:categories:*", "catalog:products:*", "catalog:products:*"}, c.seen())
}

func TestCacheListener_ReadErrorsBackOff(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.ErrorLevel)
	reader := newChanReader()
	c := &recordingCache{done: make(chan struct{}), want: 2, fail: true}
	l := NewCacheListener(reader, c, logger.FromZap(zap.New(core)))
	l.backoff = time.Millisecond
	stop := run(t, l)

	reader.fail(errors.New("broker gone"))
	reader.push(event(t, ChefChanged))

	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener stopped consuming after a read error")
	}
	stop()

	assert.Equal(t, 1, logs.FilterMessage("Failed to read kafka message").Len())
	assert.Equal(t, 2, logs.FilterMessage("Failed to invalidate cache").Len())
}

func TestCacheListener_StopsWhileBlocked(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewCacheListener(newChanReader(), &recordingCache{}, logger.NewNop())
	stop := run(t, l)
	stop()
}

func TestEventTypesAreMapped(t *testing.T) {
	for _, et := range EventTypes() {
		assert.NotEmpty(t, affected[et], et)
	}
}
