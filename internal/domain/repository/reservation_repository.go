package repository

import (
	"context"

	"github.com/venue-reservation-service/internal/domain"
)

// ReservationRepository определяет методы для работы с бронированиями
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error

	// GetByID возвращает бронирование или ErrReservationNotFound
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)

	List(ctx context.Context) ([]*domain.Reservation, error)

	// ListByClientName - точное совпадение по nombre_cliente
	ListByClientName(ctx context.Context, name string) ([]*domain.Reservation, error)

	Update(ctx context.Context, reservation *domain.Reservation) error

	SetActive(ctx context.Context, id string, active bool) (*domain.Reservation, error)

	// ExpandReservations встраивает салон в каждое бронирование
	ExpandReservations(ctx context.Context, reservations []*domain.Reservation) ([]*domain.ReservationDetail, error)
}
