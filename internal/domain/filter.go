package domain

import "math"

// LocationKind says how a location identifier in a venue filter is read.
type LocationKind string

const (
	// LocationKindAny matches the identifier against both the city id and the
	// city's department id.
	LocationKindAny        LocationKind = ""
	LocationKindCity       LocationKind = "ciudad"
	LocationKindDepartment LocationKind = "departamento"
)

type LocationRef struct {
	Kind LocationKind
	ID   string
}

// CapacityRange is a requested [Min, Max] guest range. A NaN bound comes from
// an unparseable range and matches no venue.
type CapacityRange struct {
	Min float64
	Max float64
}

func (r CapacityRange) Valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max)
}

// VenueFilter - набор необязательных условий поиска салонов. Nil-поля не
// ограничивают выборку; заданные объединяются через AND.
type VenueFilter struct {
	Location *LocationRef

	// contains all
	AmbienteIDs  []string
	EspaciosIDs  []string
	ServiciosIDs []string

	// contains any
	TipoIDs      []string
	UbicacionIDs []string

	MaxPrice *float64
	Capacity *CapacityRange
}

// FeaturedScope selects which banner position a featured listing ranks by.
type FeaturedScope string

const (
	FeaturedGlobal   FeaturedScope = "global"
	FeaturedLocation FeaturedScope = "location"
)

// Column returns the venues column holding the scope's banner position.
func (s FeaturedScope) Column() string {
	if s == FeaturedLocation {
		return "posicion_banner_ubicacion"
	}
	return "posicion_banner"
}
