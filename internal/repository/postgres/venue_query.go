package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/venue-reservation-service/internal/domain"
)

// queryBuilder собирает условия WHERE с позиционными параметрами
type queryBuilder struct {
	conds []string
	args  []interface{}
}

// arg регистрирует параметр и возвращает его placeholder
func (b *queryBuilder) arg(v interface{}) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *queryBuilder) where(cond string) {
	b.conds = append(b.conds, cond)
}

func (b *queryBuilder) build(base, orderBy string) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(base)
	if len(b.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conds, " AND "))
	}
	if orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(orderBy)
	}
	return sb.String(), b.args
}

// buildVenueQuery translates a filter into a single SELECT. Present
// constraints are ANDed; identifiers are compared as text so that a
// malformed identifier never matches instead of failing the cast.
func buildVenueQuery(f domain.VenueFilter) (string, []interface{}) {
	b := &queryBuilder{}

	if f.Location != nil {
		p := b.arg(f.Location.ID)
		switch f.Location.Kind {
		case domain.LocationKindCity:
			b.where(fmt.Sprintf("city_id::text = %s", p))
		case domain.LocationKindDepartment:
			b.where(fmt.Sprintf("city_id IN (SELECT id FROM cities WHERE department_id::text = %s)", p))
		default:
			b.where(fmt.Sprintf("city_id IN (SELECT id FROM cities WHERE id::text = %s OR department_id::text = %s)", p, p))
		}
	}

	containsAll := []struct {
		column string
		ids    []string
	}{
		{"ambiente_ids", f.AmbienteIDs},
		{"espacios_ids", f.EspaciosIDs},
		{"servicios_ids", f.ServiciosIDs},
	}
	for _, c := range containsAll {
		if c.ids != nil {
			b.where(fmt.Sprintf("%s::text[] @> %s::text[]", c.column, b.arg(pq.Array(c.ids))))
		}
	}

	containsAny := []struct {
		column string
		ids    []string
	}{
		{"tipo_ids", f.TipoIDs},
		{"ubicacion_ids", f.UbicacionIDs},
	}
	for _, c := range containsAny {
		if c.ids != nil {
			b.where(fmt.Sprintf("%s::text[] && %s::text[]", c.column, b.arg(pq.Array(c.ids))))
		}
	}

	if f.MaxPrice != nil {
		b.where(fmt.Sprintf("precio_sal <= %s", b.arg(*f.MaxPrice)))
	}

	if f.Capacity != nil {
		if f.Capacity.Valid() {
			// overlap: [capacidad_min, capacidad_max] ∩ [lo, hi] != ∅
			b.where(fmt.Sprintf("capacidad_max >= %s", b.arg(f.Capacity.Min)))
			b.where(fmt.Sprintf("capacidad_min <= %s", b.arg(f.Capacity.Max)))
		} else {
			b.where("FALSE")
		}
	}

	return b.build("SELECT "+venueColumns+" FROM venues", "nombre_sal, id")
}
