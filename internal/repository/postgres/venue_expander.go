package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/domain/repository"
	"github.com/venue-reservation-service/internal/pkg/errors"
	"go.uber.org/zap"
)

type venueExpander struct {
	db     *DB
	logger *zap.Logger
}

// NewVenueExpander создает развёртку ссылок салонов. Каждая коллекция
// читается одним запросом на весь список салонов.
func NewVenueExpander(db *DB) repository.VenueExpander {
	return &venueExpander{
		db:     db,
		logger: db.logger,
	}
}

type cityRow struct {
	ID             string  `db:"id"`
	Name           string  `db:"nombre_ciud"`
	DepartmentID   *string `db:"department_id"`
	DepartmentName *string `db:"nombre_depart"`
}

func (e *venueExpander) ExpandVenues(ctx context.Context, venues []*domain.Venue) ([]*domain.VenueDetail, error) {
	details := make([]*domain.VenueDetail, 0, len(venues))
	if len(venues) == 0 {
		return details, nil
	}

	var cityIDs, contactIDs []string
	tagIDs := make(map[domain.TagCategory][]string, len(domain.TagCategories))
	for _, v := range venues {
		if v.CityID != nil {
			cityIDs = append(cityIDs, *v.CityID)
		}
		if v.ContactID != nil {
			contactIDs = append(contactIDs, *v.ContactID)
		}
		for _, c := range domain.TagCategories {
			tagIDs[c] = append(tagIDs[c], v.TagIDs(c)...)
		}
	}

	cities, err := e.fetchCities(ctx, cityIDs)
	if err != nil {
		return nil, err
	}
	contacts, err := e.fetchContacts(ctx, contactIDs)
	if err != nil {
		return nil, err
	}
	tags := make(map[domain.TagCategory]map[string]domain.Tag, len(domain.TagCategories))
	for _, c := range domain.TagCategories {
		if tags[c], err = e.fetchTags(ctx, c, tagIDs[c]); err != nil {
			return nil, err
		}
	}

	for _, v := range venues {
		d := &domain.VenueDetail{
			ID:              v.ID,
			VenueAttributes: v.VenueAttributes,
			Ambientes:       pickTags(tags[domain.TagAmbiente], v.AmbienteIDs),
			Espacios:        pickTags(tags[domain.TagEspacios], v.EspaciosIDs),
			Servicios:       pickTags(tags[domain.TagServicios], v.ServiciosIDs),
			Tipos:           pickTags(tags[domain.TagTipo], v.TipoIDs),
			Ubicaciones:     pickTags(tags[domain.TagUbicacion], v.UbicacionIDs),
			CreatedAt:       v.CreatedAt,
			UpdatedAt:       v.UpdatedAt,
		}
		if v.CityID != nil {
			d.City = cities[*v.CityID]
		}
		if v.ContactID != nil {
			if contact, ok := contacts[*v.ContactID]; ok {
				d.Contact = &contact
			}
		}
		details = append(details, d)
	}

	return details, nil
}

func (e *venueExpander) fetchCities(ctx context.Context, ids []string) (map[string]*domain.CityDetail, error) {
	out := make(map[string]*domain.CityDetail, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `
		SELECT c.id::text AS id, c.nombre_ciud,
			d.id::text AS department_id, d.nombre_depart
		FROM cities c
		LEFT JOIN departments d ON d.id = c.department_id
		WHERE c.id::text = ANY($1::text[])
	`

	var rows []cityRow
	if err := e.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		e.logger.Error("failed to expand cities", zap.Int("count", len(ids)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, row := range rows {
		city := &domain.CityDetail{ID: row.ID, Name: row.Name}
		if row.DepartmentID != nil {
			city.Department = &domain.Department{ID: *row.DepartmentID}
			if row.DepartmentName != nil {
				city.Department.Name = *row.DepartmentName
			}
		}
		out[row.ID] = city
	}
	return out, nil
}

func (e *venueExpander) fetchContacts(ctx context.Context, ids []string) (map[string]domain.Contact, error) {
	out := make(map[string]domain.Contact, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `
		SELECT id::text AS id, nombre_contacto, correo_contacto, telefono_contacto, whatsapp_contacto
		FROM contacts
		WHERE id::text = ANY($1::text[])
	`

	var rows []domain.Contact
	if err := e.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		e.logger.Error("failed to expand contacts", zap.Int("count", len(ids)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}

func (e *venueExpander) fetchTags(ctx context.Context, category domain.TagCategory, ids []string) (map[string]domain.Tag, error) {
	out := make(map[string]domain.Tag, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	// category is one of the fixed table names in domain.TagCategories
	query := fmt.Sprintf(
		`SELECT id::text AS id, nombre FROM %s WHERE id::text = ANY($1::text[])`,
		string(category),
	)

	var rows []domain.Tag
	if err := e.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		e.logger.Error("failed to expand tags", zap.String("category", string(category)), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}

// pickTags keeps the venue's order and drops identifiers with no document.
func pickTags(byID map[string]domain.Tag, ids []string) []domain.Tag {
	out := make([]domain.Tag, 0, len(ids))
	for _, id := range ids {
		if tag, ok := byID[id]; ok {
			out = append(out, tag)
		}
	}
	return out
}
