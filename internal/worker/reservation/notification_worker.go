package reservation

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/domain/repository"
	"github.com/venue-reservation-service/internal/infrastructure/mailer"
	"github.com/venue-reservation-service/internal/pkg/errors"
	"github.com/venue-reservation-service/internal/worker"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// ReservationReader - источник бронирования с развёрнутым салоном
type ReservationReader interface {
	GetByID(ctx context.Context, id string) (*domain.ReservationDetail, error)
}

// VenueReader - источник салона с развёрнутым контактом
type VenueReader interface {
	GetByID(ctx context.Context, id string) (*domain.VenueDetail, error)
}

// NotificationWorker рассылает письма о новых бронированиях
type NotificationWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	reservations ReservationReader
	venues       VenueReader
	mailer       repository.Mailer
	consumerName string
	maxRetries   int
	retryBackoff time.Duration
}

// NewNotificationWorker создает новый NotificationWorker
func NewNotificationWorker(
	streamRepo repository.StreamRepository,
	reservations ReservationReader,
	venues VenueReader,
	mailer repository.Mailer,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *NotificationWorker {
	hostname, _ := os.Hostname()
	// суффикс уникален для каждого процесса, даже при одинаковом hostname
	consumerName := fmt.Sprintf("%s-%s", hostname, uuid.NewString()[:8])

	if maxRetries < 1 {
		maxRetries = 1
	}

	return &NotificationWorker{
		BaseWorker:   worker.NewBaseWorker("reservation-notification", consumerGroup, logger),
		streamRepo:   streamRepo,
		reservations: reservations,
		venues:       venues,
		mailer:       mailer,
		consumerName: consumerName,
		maxRetries:   maxRetries,
		retryBackoff: 500 * time.Millisecond,
	}
}

// Start запускает воркер
func (w *NotificationWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting NotificationWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamReservationCreated, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.Wait(ctx, time.Second)
				continue
			}

			if processed == 0 {
				w.Wait(ctx, emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает batch сообщений.
// Возвращает количество прочитанных сообщений
func (w *NotificationWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamReservationCreated,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	messageIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		// битые сообщения тоже подтверждаем, чтобы не застревали
		messageIDs = append(messageIDs, msg.ID)

		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}

		if err := w.notify(ctx, event); err != nil {
			logger.Error("Failed to send reservation notifications",
				zap.String("message_id", msg.ID),
				zap.String("reservation_id", event.ReservationID),
				zap.Error(err))
		}
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamReservationCreated, w.ConsumerGroup(), messageIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed", zap.Int("messages", len(messages)))
	return len(messages), nil
}

// notify sends the venue contact and the client one mail each. Lookups and
// sends share the bounded retry; a reservation deleted before the event is
// handled is skipped.
func (w *NotificationWorker) notify(ctx context.Context, event *domain.ReservationCreatedEvent) error {
	var res *domain.ReservationDetail
	err := w.retry(ctx, "load reservation", func() error {
		var err error
		res, err = w.reservations.GetByID(ctx, event.ReservationID)
		return err
	})
	if err != nil {
		if stderrors.Is(err, errors.ErrReservationNotFound) {
			w.Logger().Warn("Reservation no longer exists",
				zap.String("reservation_id", event.ReservationID))
			return nil
		}
		return err
	}

	var venue *domain.VenueDetail
	err = w.retry(ctx, "load venue", func() error {
		var err error
		venue, err = w.venues.GetByID(ctx, event.VenueID)
		return err
	})
	if err != nil {
		return err
	}

	data := mailer.ReservationData{Reservation: res, Venue: venue}

	var errs []error
	if venue.Contact != nil && venue.Contact.Email != "" {
		errs = append(errs, w.send(ctx, repository.Mail{
			To:       venue.Contact.Email,
			Template: mailer.ReservationVenueTemplate,
			Data:     data,
		}))
	}
	errs = append(errs, w.send(ctx, repository.Mail{
		To:       res.ClientEmail,
		Template: mailer.ReservationClientTemplate,
		Data:     data,
	}))

	return stderrors.Join(errs...)
}

func (w *NotificationWorker) send(ctx context.Context, mail repository.Mail) error {
	err := w.retry(ctx, "send "+mail.Template, func() error {
		return w.mailer.Send(ctx, mail)
	})
	if err != nil {
		return fmt.Errorf("%s to %s: %w", mail.Template, mail.To, err)
	}
	return nil
}

// retry вызывает fn до maxRetries раз с линейной паузой. NotFound не
// повторяется: запись уже не появится
func (w *NotificationWorker) retry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if stderrors.Is(err, errors.ErrReservationNotFound) || stderrors.Is(err, errors.ErrVenueNotFound) {
			return err
		}

		w.Logger().Warn("Attempt failed",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Error(err))

		if attempt == w.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.retryBackoff * time.Duration(attempt)):
		}
	}
	return err
}

// parseMessage парсит сообщение из стрима в ReservationCreatedEvent
func parseMessage(msg domain.StreamMessage) (*domain.ReservationCreatedEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing 'data' field")
	}

	var event domain.ReservationCreatedEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.ReservationID == "" {
		return nil, fmt.Errorf("event has no reservation_id")
	}

	return &event, nil
}
