package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/cfg"
	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	mu   sync.Mutex
	errs []error
	sent []*usecase.WriteRawMessageReq
	hits int
}

func (p *fakeProducer) WriteRawMessage(_ context.Context, req *usecase.WriteRawMessageReq) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.hits++
	if len(p.errs) > 0 {
		err := p.errs[0]
		p.errs = p.errs[1:]
		return err
	}
	p.sent = append(p.sent, req)
	return nil
}

func (p *fakeProducer) snapshot() ([]*usecase.WriteRawMessageReq, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*usecase.WriteRawMessageReq(nil), p.sent...), p.hits
}

func testOutboxCfg(size int) *cfg.OutboxCfg {
	return &cfg.OutboxCfg{
		BufferSize:  size,
		MaxRetries:  3,
		BaseBackoff: time.Millisecond,
		MaxBackoff:  5 * time.Millisecond,
	}
}

func productEvent(t *testing.T, id string) *usecase.OutboxEvent {
	t.Helper()
	ev, err := usecase.NewProductEvent(usecase.ProductUpdated, domain.Product{ID: id, Name: "Pen"})
	require.NoError(t, err)
	return ev
}

func TestOutboxWorker_DrainsOnStop(t *testing.T) {
	producer := &fakeProducer{}
	w := NewOutboxWorker(logger.NewNopLogger(), producer, testOutboxCfg(8))

	events := []*usecase.OutboxEvent{productEvent(t, "1"), productEvent(t, "2"), productEvent(t, "3")}
	for _, ev := range events {
		require.NoError(t, w.Enqueue(ev))
	}

	w.Start(context.Background())
	require.NoError(t, w.Stop(context.Background()))

	sent, _ := producer.snapshot()
	require.Len(t, sent, 3)
	for i, ev := range events {
		assert.Equal(t, ev.Key, sent[i].Key)
		assert.Equal(t, ev.EventID, sent[i].EventID)
		assert.Equal(t, usecase.Processed, ev.Status)
	}
}

func TestOutboxWorker_RetriesTemporaryErrors(t *testing.T) {
	producer := &fakeProducer{errs: []error{
		errors.New("dial tcp: connection refused"),
		kafka.LeaderNotAvailable,
	}}
	w := NewOutboxWorker(logger.NewNopLogger(), producer, testOutboxCfg(1))
	ev := productEvent(t, "1")
	require.NoError(t, w.Enqueue(ev))

	w.Start(context.Background())
	require.NoError(t, w.Stop(context.Background()))

	sent, hits := producer.snapshot()
	assert.Len(t, sent, 1)
	assert.Equal(t, 3, hits)
	assert.Equal(t, 3, ev.Attempts)
	assert.Equal(t, usecase.Processed, ev.Status)
}

func TestOutboxWorker_PermanentErrorDropsEvent(t *testing.T) {
	producer := &fakeProducer{errs: []error{errors.New("message too large")}}
	w := NewOutboxWorker(logger.NewNopLogger(), producer, testOutboxCfg(2))
	failed, ok := productEvent(t, "1"), productEvent(t, "2")
	require.NoError(t, w.Enqueue(failed))
	require.NoError(t, w.Enqueue(ok))

	w.Start(context.Background())
	require.NoError(t, w.Stop(context.Background()))

	sent, _ := producer.snapshot()
	require.Len(t, sent, 1)
	assert.Equal(t, "2", sent[0].Key)
	assert.Equal(t, usecase.Failed, failed.Status)
	assert.Equal(t, 1, failed.Attempts)
}

func TestOutboxWorker_GivesUpAfterMaxRetries(t *testing.T) {
	temp := fmt.Errorf("write: %w", errors.New("i/o timeout"))
	producer := &fakeProducer{errs: []error{temp, temp, temp}}
	w := NewOutboxWorker(logger.NewNopLogger(), producer, testOutboxCfg(1))
	ev := productEvent(t, "1")
	require.NoError(t, w.Enqueue(ev))

	w.Start(context.Background())
	require.NoError(t, w.Stop(context.Background()))

	sent, hits := producer.snapshot()
	assert.Empty(t, sent)
	assert.Equal(t, 3, hits)
	assert.Equal(t, usecase.Failed, ev.Status)
}

func TestOutboxWorker_EnqueueFullAndClosed(t *testing.T) {
	w := NewOutboxWorker(logger.NewNopLogger(), &fakeProducer{}, testOutboxCfg(1))

	require.NoError(t, w.Enqueue(productEvent(t, "1")))
	assert.ErrorIs(t, w.Enqueue(productEvent(t, "2")), e.ErrOutboxFull)

	w.Start(context.Background())
	require.NoError(t, w.Stop(context.Background()))
	assert.ErrorIs(t, w.Enqueue(productEvent(t, "3")), e.ErrOutboxClosed)

	// повторный Stop безопасен
	require.NoError(t, w.Stop(context.Background()))
}

func TestIsRetryableError(t *testing.T) {
	assert.False(t, isRetryableError(nil))
	assert.True(t, isRetryableError(errors.New("Broken pipe")))
	assert.True(t, isRetryableError(context.DeadlineExceeded))
	assert.True(t, isRetryableError(kafka.LeaderNotAvailable))
	assert.False(t, isRetryableError(kafka.MessageSizeTooLarge))
	assert.False(t, isRetryableError(errors.New("invalid payload")))
}

func TestToKafkaMessage(t *testing.T) {
	msg := toKafkaMessage(&usecase.WriteRawMessageReq{
		Key:       "SAVE10",
		EventID:   "ev-1",
		EventType: usecase.CouponAdded,
		Payload:   []byte(`{}`),
	})

	assert.Equal(t, []byte("SAVE10"), msg.Key)
	assert.Equal(t, []byte(`{}`), msg.Value)
	assert.Equal(t, []kafka.Header{
		{Key: headerEventID, Value: []byte("ev-1")},
		{Key: headerEventType, Value: []byte("coupon.added")},
	}, msg.Headers)
}

func TestNewProducer_RequiresBrokers(t *testing.T) {
	_, err := NewProducer(logger.NewNopLogger(), &cfg.KafkaCfg{Topic: "t"})
	assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)

	p, err := NewProducer(logger.NewNopLogger(), &cfg.KafkaCfg{Topic: "t", Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestLogProducer(t *testing.T) {
	p := NewLogProducer(logger.NewNopLogger())
	assert.NoError(t, p.WriteRawMessage(context.Background(), &usecase.WriteRawMessageReq{Key: "1"}))
}
