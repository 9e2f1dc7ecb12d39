package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/domain/repository"
	"github.com/venue-reservation-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type venueRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewVenueRepository создает новый экземпляр venue repository
func NewVenueRepository(db *DB) repository.VenueRepository {
	return &venueRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *venueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	venue.ID = uuid.NewString()

	query := `
		INSERT INTO venues (
			id, nombre_sal, descripcion_sal, galeria_sal, tipo_sal,
			capacidad_min, capacidad_max, direccion_sal, precio_sal,
			longitud, latitud, video360, video_sal,
			city_id, contact_id,
			ambiente_ids, espacios_ids, servicios_ids, tipo_ids, ubicacion_ids,
			posicion_banner, posicion_banner_ubicacion, estado
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		)
		RETURNING created_at, updated_at
	`

	args := append([]interface{}{venue.ID}, venueWriteArgs(venue)...)
	args = append(args, venue.Active)
	err := r.db.QueryRowxContext(ctx, query, args...).Scan(&venue.CreatedAt, &venue.UpdatedAt)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			return r.bannerConflict(ctx, venue, constraint)
		}
		if constraint, ok := foreignKeyViolation(err); ok {
			return unknownReference(constraint)
		}
		r.logger.Error("failed to create venue", zap.Error(err))
		return errors.ErrDatabaseError
	}

	r.logger.Info("venue created", zap.String("venue_id", venue.ID))
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id::text = $1`

	var row venueRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrVenueNotFound
		}
		r.logger.Error("failed to get venue", zap.String("venue_id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return row.toDomain(), nil
}

func (r *venueRepository) List(ctx context.Context) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY nombre_sal, id`
	return r.selectVenues(ctx, "list venues", query)
}

func (r *venueRepository) ListByCity(ctx context.Context, cityID string) ([]*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE city_id::text = $1 ORDER BY nombre_sal, id`
	return r.selectVenues(ctx, "list venues by city", query, cityID)
}

func (r *venueRepository) ListByCityIDs(ctx context.Context, cityIDs []string) ([]*domain.Venue, error) {
	if len(cityIDs) == 0 {
		return []*domain.Venue{}, nil
	}
	query := `SELECT ` + venueColumns + ` FROM venues WHERE city_id::text = ANY($1::text[]) ORDER BY nombre_sal, id`
	return r.selectVenues(ctx, "list venues by cities", query, pq.Array(cityIDs))
}

func (r *venueRepository) Search(ctx context.Context, filter domain.VenueFilter) ([]*domain.Venue, error) {
	query, args := buildVenueQuery(filter)
	r.logger.Debug("venue search", zap.String("query", query), zap.Int("args", len(args)))
	return r.selectVenues(ctx, "search venues", query, args...)
}

func (r *venueRepository) ListFeatured(ctx context.Context, scope domain.FeaturedScope) ([]*domain.Venue, error) {
	col := scope.Column()
	query := fmt.Sprintf(
		`SELECT %s FROM venues WHERE %s IS NOT NULL ORDER BY %s ASC, id`,
		venueColumns, col, col,
	)
	return r.selectVenues(ctx, "list featured venues", query)
}

// Update replaces every field except estado in one conditional statement and
// refreshes venue from the stored row. The NOT EXISTS guards reject a banner
// position held by another venue; the partial unique indexes catch writers
// racing past the guard. estado only changes through SetActive.
func (r *venueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	query := `
		UPDATE venues SET
			nombre_sal = $2,
			descripcion_sal = $3,
			galeria_sal = $4,
			tipo_sal = $5,
			capacidad_min = $6,
			capacidad_max = $7,
			direccion_sal = $8,
			precio_sal = $9,
			longitud = $10,
			latitud = $11,
			video360 = $12,
			video_sal = $13,
			city_id = $14,
			contact_id = $15,
			ambiente_ids = $16,
			espacios_ids = $17,
			servicios_ids = $18,
			tipo_ids = $19,
			ubicacion_ids = $20,
			posicion_banner = $21,
			posicion_banner_ubicacion = $22,
			updated_at = NOW()
		WHERE id::text = $1
			AND ($21::int IS NULL OR NOT EXISTS (
				SELECT 1 FROM venues o WHERE o.posicion_banner = $21 AND o.id::text <> $1))
			AND ($22::int IS NULL OR NOT EXISTS (
				SELECT 1 FROM venues o WHERE o.posicion_banner_ubicacion = $22 AND o.id::text <> $1))
		RETURNING ` + venueColumns

	args := append([]interface{}{venue.ID}, venueWriteArgs(venue)...)
	var row venueRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if err == nil {
		*venue = *row.toDomain()
		r.logger.Info("venue updated", zap.String("venue_id", venue.ID))
		return nil
	}

	if constraint, ok := uniqueViolation(err); ok {
		return r.bannerConflict(ctx, venue, constraint)
	}
	if constraint, ok := foreignKeyViolation(err); ok {
		return unknownReference(constraint)
	}
	if !stderrors.Is(err, sql.ErrNoRows) {
		r.logger.Error("failed to update venue", zap.String("venue_id", venue.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	// Nothing updated: either a guard rejected the banner position or the
	// venue does not exist. Conflicts are reported first.
	if conflict := r.bannerConflict(ctx, venue, ""); !stderrors.Is(conflict, errors.ErrVenueNotFound) {
		return conflict
	}
	return errors.ErrVenueNotFound
}

func (r *venueRepository) SetActive(ctx context.Context, id string, active bool) (*domain.Venue, error) {
	query := `UPDATE venues SET estado = $2, updated_at = NOW() WHERE id::text = $1 RETURNING ` + venueColumns

	var row venueRow
	if err := r.db.GetContext(ctx, &row, query, id, active); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrVenueNotFound
		}
		r.logger.Error("failed to set venue state",
			zap.String("venue_id", id),
			zap.Bool("estado", active),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return row.toDomain(), nil
}

// bannerConflict looks up which other venue holds one of venue's banner
// positions. constraint narrows the lookup to the column named by a unique
// index violation; empty checks both. Returns ErrVenueNotFound when no other
// venue holds either position.
func (r *venueRepository) bannerConflict(ctx context.Context, venue *domain.Venue, constraint string) error {
	checks := []struct {
		constraint string
		column     string
		position   *int
	}{
		{constraintBanner, "posicion_banner", venue.BannerPosition},
		{constraintLocationBanner, "posicion_banner_ubicacion", venue.LocationBannerPosition},
	}

	for _, c := range checks {
		if c.position == nil || (constraint != "" && constraint != c.constraint) {
			continue
		}

		var holder struct {
			ID   string `db:"id"`
			Name string `db:"nombre_sal"`
		}
		query := fmt.Sprintf(
			`SELECT id::text AS id, nombre_sal FROM venues WHERE %s = $1 AND id::text <> $2 LIMIT 1`,
			c.column,
		)
		err := r.db.GetContext(ctx, &holder, query, *c.position, venue.ID)
		if stderrors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			r.logger.Error("failed to look up banner holder", zap.String("column", c.column), zap.Error(err))
			return errors.ErrDatabaseError
		}

		r.logger.Info("banner position taken",
			zap.String("venue_id", venue.ID),
			zap.String("holder_id", holder.ID),
			zap.String("column", c.column),
			zap.Int("position", *c.position))

		return errors.ErrBannerPositionTaken.
			WithMessage(fmt.Sprintf("venue '%s' already holds %s %d", holder.Name, c.column, *c.position)).
			WithDetails(map[string]interface{}{
				"venue_id":   holder.ID,
				"venue_name": holder.Name,
				"position":   *c.position,
				"field":      c.column,
			})
	}

	if constraint != "" {
		// the holder changed between the write and the lookup
		return errors.ErrBannerPositionTaken
	}
	return errors.ErrVenueNotFound
}

func (r *venueRepository) selectVenues(ctx context.Context, op, query string, args ...interface{}) ([]*domain.Venue, error) {
	var rows []venueRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.logger.Error("failed to "+op, zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return venuesFromRows(rows), nil
}

// venueWriteArgs returns the $2..$22 arguments shared by insert and update.
// estado is appended by Create only.
func venueWriteArgs(v *domain.Venue) []interface{} {
	return []interface{}{
		v.Name,
		v.Description,
		pq.Array(nonNil(v.Gallery)),
		v.Kind,
		v.CapacityMin,
		v.CapacityMax,
		v.Address,
		v.Price,
		v.Longitude,
		v.Latitude,
		v.Video360,
		v.Video,
		v.CityID,
		v.ContactID,
		pq.Array(nonNil(v.AmbienteIDs)),
		pq.Array(nonNil(v.EspaciosIDs)),
		pq.Array(nonNil(v.ServiciosIDs)),
		pq.Array(nonNil(v.TipoIDs)),
		pq.Array(nonNil(v.UbicacionIDs)),
		v.BannerPosition,
		v.LocationBannerPosition,
	}
}
