package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/domain/repository"
	"github.com/venue-reservation-service/internal/pkg/errors"
	"github.com/venue-reservation-service/internal/usecase/dto"
)

// ReservationUseCase - use case для бронирований
type ReservationUseCase struct {
	reservationRepo repository.ReservationRepository
	venueRepo       repository.VenueRepository
	streamRepo      repository.StreamRepository
	logger          *zap.Logger
}

// NewReservationUseCase - создание нового ReservationUseCase
func NewReservationUseCase(
	reservationRepo repository.ReservationRepository,
	venueRepo repository.VenueRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ReservationUseCase {
	return &ReservationUseCase{
		reservationRepo: reservationRepo,
		venueRepo:       venueRepo,
		streamRepo:      streamRepo,
		logger:          logger,
	}
}

// Create stores the reservation and announces it on the reservation stream.
// A failed publish is logged; the reservation itself is already stored.
func (uc *ReservationUseCase) Create(ctx context.Context, req dto.ReservationRequest) (*domain.ReservationDetail, error) {
	res, err := req.ToDomain("")
	if err != nil {
		return nil, errors.ErrValidationFailed.WithMessage(err.Error())
	}

	if _, err := uc.venueRepo.GetByID(ctx, res.VenueID); err != nil {
		return nil, err
	}

	if err := uc.reservationRepo.Create(ctx, res); err != nil {
		return nil, err
	}

	event := domain.ReservationCreatedEvent{
		ReservationID: res.ID,
		VenueID:       res.VenueID,
		CreatedAt:     res.CreatedAt,
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamReservationCreated, event); err != nil {
		uc.logger.Error("Failed to publish reservation created event",
			zap.String("reservation_id", res.ID),
			zap.Error(err))
	}

	return uc.expandOne(ctx, res)
}

func (uc *ReservationUseCase) GetByID(ctx context.Context, id string) (*domain.ReservationDetail, error) {
	res, err := uc.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.expandOne(ctx, res)
}

func (uc *ReservationUseCase) List(ctx context.Context) ([]*domain.ReservationDetail, error) {
	list, err := uc.reservationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.reservationRepo.ExpandReservations(ctx, list)
}

// ListByClientName - бронирования клиента (точное совпадение имени)
func (uc *ReservationUseCase) ListByClientName(ctx context.Context, name string) ([]*domain.ReservationDetail, error) {
	list, err := uc.reservationRepo.ListByClientName(ctx, name)
	if err != nil {
		return nil, err
	}
	return uc.reservationRepo.ExpandReservations(ctx, list)
}

// Update - полная замена полей бронирования
func (uc *ReservationUseCase) Update(ctx context.Context, id string, req dto.ReservationRequest) (*domain.ReservationDetail, error) {
	res, err := req.ToDomain(id)
	if err != nil {
		return nil, errors.ErrValidationFailed.WithMessage(err.Error())
	}

	if err := uc.reservationRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	return uc.expandOne(ctx, res)
}

func (uc *ReservationUseCase) SetActive(ctx context.Context, id string, active bool) (*domain.ReservationDetail, error) {
	res, err := uc.reservationRepo.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	return uc.expandOne(ctx, res)
}

func (uc *ReservationUseCase) expandOne(ctx context.Context, res *domain.Reservation) (*domain.ReservationDetail, error) {
	details, err := uc.reservationRepo.ExpandReservations(ctx, []*domain.Reservation{res})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}
