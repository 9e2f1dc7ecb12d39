package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// BaseWorker - общая часть воркеров, читающих стрим через consumer group
type BaseWorker struct {
	name          string
	consumerGroup string
	logger        *zap.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewBaseWorker(name, consumerGroup string, logger *zap.Logger) *BaseWorker {
	return &BaseWorker{
		name:          name,
		consumerGroup: consumerGroup,
		logger:        logger.With(zap.String("worker", name)),
		stopCh:        make(chan struct{}),
	}
}

func (w *BaseWorker) Name() string {
	return w.name
}

// Stop сигнализирует циклу воркера завершиться. Повторный вызов ничего не делает
func (w *BaseWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.logger.Info("Stop requested")
		close(w.stopCh)
	})
	return nil
}

func (w *BaseWorker) IsStopped() bool {
	select {
	case <-w.stopCh:
		return true
	default:
		return false
	}
}

func (w *BaseWorker) StopChan() <-chan struct{} {
	return w.stopCh
}

// Wait ждёт d, прерываясь на остановке воркера или отмене ctx.
// Возвращает false, если ожидание прервано
func (w *BaseWorker) Wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-w.stopCh:
		return false
	case <-ctx.Done():
		return false
	}
}

func (w *BaseWorker) ConsumerGroup() string {
	return w.consumerGroup
}

// Logger - логгер с полем worker
func (w *BaseWorker) Logger() *zap.Logger {
	return w.logger
}
