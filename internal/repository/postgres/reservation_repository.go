package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/domain/repository"
	"github.com/venue-reservation-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type reservationRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewReservationRepository создает новый экземпляр reservation repository
func NewReservationRepository(db *DB) repository.ReservationRepository {
	return &reservationRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	res.ID = uuid.NewString()

	query := `
		INSERT INTO reservas (
			id, nombre_cliente, correo_cliente, telefono_cliente,
			cant_pers_res, fecha_res, mensaje_res, venue_id, estado
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		res.ID,
		res.ClientName,
		res.ClientEmail,
		res.ClientPhone,
		res.PartySize,
		res.Date,
		res.Message,
		res.VenueID,
		res.Active,
	).Scan(&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if _, ok := foreignKeyViolation(err); ok {
			return errors.ErrVenueNotFound
		}
		r.logger.Error("failed to create reservation", zap.Error(err))
		return errors.ErrDatabaseError
	}

	r.logger.Info("reservation created",
		zap.String("reservation_id", res.ID),
		zap.String("venue_id", res.VenueID))
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservas WHERE id::text = $1`

	var res domain.Reservation
	if err := r.db.GetContext(ctx, &res, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrReservationNotFound
		}
		r.logger.Error("failed to get reservation", zap.String("reservation_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &res, nil
}

func (r *reservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservas ORDER BY fecha_res, id`
	return r.selectReservations(ctx, "list reservations", query)
}

func (r *reservationRepository) ListByClientName(ctx context.Context, name string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservas WHERE nombre_cliente = $1 ORDER BY fecha_res, id`
	return r.selectReservations(ctx, "list reservations by client", query, name)
}

// Update replaces the reservation fields except estado and refreshes res from
// the stored row. estado only changes through SetActive.
func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `
		UPDATE reservas SET
			nombre_cliente = $2,
			correo_cliente = $3,
			telefono_cliente = $4,
			cant_pers_res = $5,
			fecha_res = $6,
			mensaje_res = $7,
			venue_id = $8,
			updated_at = NOW()
		WHERE id::text = $1
		RETURNING ` + reservationColumns

	var stored domain.Reservation
	err := r.db.GetContext(ctx, &stored, query,
		res.ID,
		res.ClientName,
		res.ClientEmail,
		res.ClientPhone,
		res.PartySize,
		res.Date,
		res.Message,
		res.VenueID,
	)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.ErrReservationNotFound
		}
		if _, ok := foreignKeyViolation(err); ok {
			return errors.ErrVenueNotFound
		}
		r.logger.Error("failed to update reservation", zap.String("reservation_id", res.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	*res = stored
	return nil
}

func (r *reservationRepository) SetActive(ctx context.Context, id string, active bool) (*domain.Reservation, error) {
	query := `UPDATE reservas SET estado = $2, updated_at = NOW() WHERE id::text = $1 RETURNING ` + reservationColumns

	var res domain.Reservation
	if err := r.db.GetContext(ctx, &res, query, id, active); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrReservationNotFound
		}
		r.logger.Error("failed to set reservation state",
			zap.String("reservation_id", id),
			zap.Bool("estado", active),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &res, nil
}

// ExpandReservations fetches every referenced venue in one query.
func (r *reservationRepository) ExpandReservations(ctx context.Context, reservations []*domain.Reservation) ([]*domain.ReservationDetail, error) {
	details := make([]*domain.ReservationDetail, 0, len(reservations))
	if len(reservations) == 0 {
		return details, nil
	}

	ids := make([]string, 0, len(reservations))
	for _, res := range reservations {
		ids = append(ids, res.VenueID)
	}

	query := `SELECT ` + venueColumns + ` FROM venues WHERE id::text = ANY($1::text[])`
	var rows []venueRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		r.logger.Error("failed to expand reservation venues", zap.Int("count", len(ids)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	venues := make(map[string]*domain.Venue, len(rows))
	for _, v := range venuesFromRows(rows) {
		venues[v.ID] = v
	}

	for _, res := range reservations {
		details = append(details, &domain.ReservationDetail{
			ID:                    res.ID,
			ReservationAttributes: res.ReservationAttributes,
			Venue:                 venues[res.VenueID],
			CreatedAt:             res.CreatedAt,
			UpdatedAt:             res.UpdatedAt,
		})
	}
	return details, nil
}

func (r *reservationRepository) selectReservations(ctx context.Context, op, query string, args ...interface{}) ([]*domain.Reservation, error) {
	var rows []*domain.Reservation
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("failed to "+op, zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if rows == nil {
		rows = []*domain.Reservation{}
	}
	return rows, nil
}
