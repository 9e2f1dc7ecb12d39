package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Worker - фоновый процесс, управляемый Manager
type Worker interface {
	// Start блокируется до остановки воркера или отмены ctx
	Start(ctx context.Context) error
	Stop() error
	Name() string
}

// Manager запускает воркеры в отдельных горутинах и останавливает их вместе
type Manager struct {
	logger *zap.Logger

	mu      sync.Mutex
	workers []Worker
	wg      sync.WaitGroup
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

func (m *Manager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workers)
}

func (m *Manager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Worker(nil), m.workers...)
}

// Start не блокируется. Паника воркера логируется и не роняет процесс
func (m *Manager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return errors.New("no workers registered")
	}

	for _, w := range workers {
		m.wg.Add(1)
		go m.run(ctx, w)
	}

	m.logger.Info("Workers started", zap.Int("count", len(workers)))
	return nil
}

func (m *Manager) run(ctx context.Context, w Worker) {
	defer m.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Worker panicked", zap.String("name", w.Name()), zap.Any("panic", r))
		}
	}()

	if err := w.Start(ctx); err != nil {
		m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))
	}
}

// Stop останавливает все воркеры и ждёт их завершения, пока не истечёт ctx
func (m *Manager) Stop(ctx context.Context) error {
	var errs []error
	for _, w := range m.snapshot() {
		if err := w.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", w.Name(), err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped")
	case <-ctx.Done():
		errs = append(errs, fmt.Errorf("waiting for workers: %w", ctx.Err()))
	}

	return errors.Join(errs...)
}
