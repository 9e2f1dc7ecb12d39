package postgres

import (
	stderrors "errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/pkg/errors"
)

const (
	// pgUniqueViolation - SQLSTATE нарушения уникального индекса
	pgUniqueViolation = "23505"
	// pgForeignKeyViolation - ссылка на несуществующую запись
	pgForeignKeyViolation = "23503"

	constraintBanner         = "uq_venues_posicion_banner"
	constraintLocationBanner = "uq_venues_posicion_banner_ubicacion"
)

// venueColumns - колонки салона. Идентификаторы и массивы приводятся к text,
// чтобы сканироваться в string/pq.StringArray любым драйвером.
const venueColumns = `
	id::text AS id,
	nombre_sal,
	descripcion_sal,
	galeria_sal::text AS galeria_sal,
	tipo_sal,
	capacidad_min,
	capacidad_max,
	direccion_sal,
	precio_sal,
	longitud,
	latitud,
	video360,
	video_sal,
	city_id::text AS city_id,
	contact_id::text AS contact_id,
	ambiente_ids::text AS ambiente_ids,
	espacios_ids::text AS espacios_ids,
	servicios_ids::text AS servicios_ids,
	tipo_ids::text AS tipo_ids,
	ubicacion_ids::text AS ubicacion_ids,
	posicion_banner,
	posicion_banner_ubicacion,
	estado,
	created_at,
	updated_at`

const reservationColumns = `
	id::text AS id,
	nombre_cliente,
	correo_cliente,
	telefono_cliente,
	cant_pers_res,
	fecha_res,
	mensaje_res,
	venue_id::text AS venue_id,
	estado,
	created_at,
	updated_at`

// venueRow - строка таблицы venues
type venueRow struct {
	ID string `db:"id"`
	domain.VenueAttributes
	Gallery      pq.StringArray `db:"galeria_sal"`
	CityID       *string        `db:"city_id"`
	ContactID    *string        `db:"contact_id"`
	AmbienteIDs  pq.StringArray `db:"ambiente_ids"`
	EspaciosIDs  pq.StringArray `db:"espacios_ids"`
	ServiciosIDs pq.StringArray `db:"servicios_ids"`
	TipoIDs      pq.StringArray `db:"tipo_ids"`
	UbicacionIDs pq.StringArray `db:"ubicacion_ids"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *venueRow) toDomain() *domain.Venue {
	v := &domain.Venue{
		ID:              r.ID,
		VenueAttributes: r.VenueAttributes,
		CityID:          r.CityID,
		ContactID:       r.ContactID,
		AmbienteIDs:     nonNil(r.AmbienteIDs),
		EspaciosIDs:     nonNil(r.EspaciosIDs),
		ServiciosIDs:    nonNil(r.ServiciosIDs),
		TipoIDs:         nonNil(r.TipoIDs),
		UbicacionIDs:    nonNil(r.UbicacionIDs),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	v.Gallery = nonNil(r.Gallery)
	return v
}

func venuesFromRows(rows []venueRow) []*domain.Venue {
	venues := make([]*domain.Venue, 0, len(rows))
	for i := range rows {
		venues = append(venues, rows[i].toDomain())
	}
	return venues
}

func nonNil(a []string) []string {
	if a == nil {
		return []string{}
	}
	return a
}

// uniqueViolation возвращает имя нарушенного ограничения, если err - 23505
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// foreignKeyViolation возвращает имя нарушенного внешнего ключа, если err - 23503
func foreignKeyViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return pgErr.ConstraintName, true
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// unknownReference - ошибка записи с несуществующим городом или контактом
func unknownReference(constraint string) error {
	return errors.ErrInvalidRequest.
		WithMessage("Referenced document does not exist").
		WithDetails(map[string]interface{}{"constraint": constraint})
}
