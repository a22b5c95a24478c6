package kafka

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/cfg"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/jitter"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// OutboxWorker — in-memory outbox: события складываются в ограниченную очередь
// и публикуются одной горутиной с повторами.
type OutboxWorker struct {
	logger     logger.Logger
	producer   usecase.MessageProducer
	backoff    *jitter.Backoff
	maxRetries int

	mu     sync.RWMutex
	closed bool
	queue  chan *usecase.OutboxEvent

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOutboxWorker(logger logger.Logger, producer usecase.MessageProducer, cfg *cfg.OutboxCfg) *OutboxWorker {
	return &OutboxWorker{
		logger:     logger,
		producer:   producer,
		backoff:    jitter.NewBackoff(cfg.BaseBackoff, cfg.MaxBackoff),
		maxRetries: cfg.MaxRetries,
		queue:      make(chan *usecase.OutboxEvent, cfg.BufferSize),
		cancel:     func() {},
	}
}

// Enqueue кладёт событие в очередь, не блокируясь.
func (w *OutboxWorker) Enqueue(event *usecase.OutboxEvent) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.closed {
		return e.ErrOutboxClosed
	}

	select {
	case w.queue <- event:
		return nil
	default:
		return e.ErrOutboxFull
	}
}

func (w *OutboxWorker) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

// Stop закрывает очередь и ждёт, пока воркер опубликует оставшиеся события.
// Если ctx истекает раньше, публикация прерывается.
func (w *OutboxWorker) Stop(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.cancel()
		return nil
	case <-ctx.Done():
		w.cancel()
		<-done
		w.logger.Warnf("outbox stopped with %d undelivered events", len(w.queue))
		return ctx.Err()
	}
}

func (w *OutboxWorker) run(ctx context.Context) {
	w.logger.Infof("Outbox worker started")
	for event := range w.queue {
		if ctx.Err() != nil {
			return
		}
		w.processEvent(ctx, event)
	}
	w.logger.Infof("Outbox drained, worker stopped")
}

func (w *OutboxWorker) processEvent(ctx context.Context, event *usecase.OutboxEvent) {
	event.Status = usecase.Processing
	req := usecase.NewWriteRawMessageReq(event)

	for attempt := 0; attempt < w.maxRetries; attempt++ {
		event.Attempts++

		err := w.producer.WriteRawMessage(ctx, req)
		if err == nil {
			event.Status = usecase.Processed
			w.logger.Debugf("event %s (%s) published", event.EventID, event.EventType)
			return
		}

		if !isRetryableError(err) {
			event.Status = usecase.Failed
			w.logger.Errorf(e.Wrap("Permanent Kafka failure", err), "event %s dropped", event.EventID)
			return
		}

		delay := w.backoff.Next(attempt)
		w.logger.Warnf("Temporary Kafka failure, retry in %v: %v", delay, err)

		if !sleep(ctx, delay) {
			break
		}
	}

	event.Status = usecase.Failed
	w.logger.Warnf("event %s dropped after %d attempts", event.EventID, event.Attempts)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var kErr kafka.Error
	if errors.As(err, &kErr) {
		return kErr.Temporary()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	retryablePhrases := []string{
		"connection refused",
		"i/o timeout",
		"network is unreachable",
		"broker not available",
		"connection reset",
		"broken pipe",
		"no such host",
	}
	for _, phrase := range retryablePhrases {
		if strings.Contains(errStr, phrase) {
			return true
		}
	}
	return false
}

// sleep ждёт d или отмены ctx. Возвращает false, если ctx отменён.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
