package dto

import (
	"github.com/venue-reservation-service/internal/domain"
	"github.com/venue-reservation-service/internal/pkg/validator"
)

// VenueRequest - тело POST /registro и PUT /editar/:id для салона.
// Обновление заменяет все поля, включая позиции баннера.
type VenueRequest struct {
	Name                   string   `json:"nombre_sal" validate:"required"`
	Description            string   `json:"descripcion_sal" validate:"required"`
	Gallery                []string `json:"galeria_sal" validate:"omitempty,dive,required"`
	Kind                   string   `json:"tipo_sal"`
	CapacityMin            int      `json:"capacidad_min" validate:"required,min=1"`
	CapacityMax            int      `json:"capacidad_max" validate:"required,min=1,gtefield=CapacityMin"`
	Address                string   `json:"direccion_sal" validate:"required"`
	Price                  *float64 `json:"precio_sal" validate:"required,gte=0"`
	Longitude              *float64 `json:"longitud" validate:"required,longitude"`
	Latitude               *float64 `json:"latitud" validate:"required,latitude"`
	Video360               string   `json:"video360"`
	Video                  string   `json:"video_sal"`
	CityID                 *string  `json:"idCiudSalonEvento" validate:"omitempty,uuid"`
	ContactID              *string  `json:"idContactoSalon" validate:"omitempty,uuid"`
	AmbienteIDs            []string `json:"idAmbienteSalon" validate:"omitempty,dive,uuid"`
	EspaciosIDs            []string `json:"idEspaciosSalon" validate:"omitempty,dive,uuid"`
	ServiciosIDs           []string `json:"idServiciosSalon" validate:"omitempty,dive,uuid"`
	TipoIDs                []string `json:"idTipoSalon" validate:"omitempty,dive,uuid"`
	UbicacionIDs           []string `json:"idUbicacionSalon" validate:"omitempty,dive,uuid"`
	BannerPosition         *int     `json:"posicion_banner" validate:"omitempty,min=1"`
	LocationBannerPosition *int     `json:"posicion_banner_ubicacion" validate:"omitempty,min=1"`
	// Active учитывается только при регистрации, editar не меняет estado
	Active *bool `json:"estado"`
}

// ToDomain builds the venue to store. A missing estado means active; the
// repository ignores estado on update.
func (r *VenueRequest) ToDomain(id string) *domain.Venue {
	v := &domain.Venue{
		ID: id,
		VenueAttributes: domain.VenueAttributes{
			Name:                   r.Name,
			Description:            r.Description,
			Gallery:                r.Gallery,
			Kind:                   r.Kind,
			CapacityMin:            r.CapacityMin,
			CapacityMax:            r.CapacityMax,
			Address:                r.Address,
			Video360:               r.Video360,
			Video:                  r.Video,
			BannerPosition:         r.BannerPosition,
			LocationBannerPosition: r.LocationBannerPosition,
			Active:                 true,
		},
		CityID:       r.CityID,
		ContactID:    r.ContactID,
		AmbienteIDs:  r.AmbienteIDs,
		EspaciosIDs:  r.EspaciosIDs,
		ServiciosIDs: r.ServiciosIDs,
		TipoIDs:      r.TipoIDs,
		UbicacionIDs: r.UbicacionIDs,
	}
	if r.Price != nil {
		v.Price = *r.Price
	}
	if r.Longitude != nil {
		v.Longitude = *r.Longitude
	}
	if r.Latitude != nil {
		v.Latitude = *r.Latitude
	}
	if r.Active != nil {
		v.Active = *r.Active
	}
	return v
}

// VenueFilterRequest - параметры GET /salones. Nil означает, что параметр
// отсутствует в запросе.
type VenueFilterRequest struct {
	Location     *string `json:"idCiudSalonEvento"`
	LocationKind string  `json:"tipo_ubicacion" validate:"omitempty,oneof=ciudad departamento"`
	Ambiente     *string `json:"idAmbienteSalon"`
	Espacios     *string `json:"idEspaciosSalon"`
	Servicios    *string `json:"idServiciosSalon"`
	Tipo         *string `json:"idTipoSalon"`
	Ubicacion    *string `json:"idUbicacionSalon"`
	MaxPrice     *string `json:"precio_sal"`
	Capacity     *string `json:"capacidad_sal"`
}

// ReservationRequest - тело POST /registro и PUT /editar/:id для бронирования
type ReservationRequest struct {
	ClientName  string `json:"nombre_cliente" validate:"required"`
	ClientEmail string `json:"correo_cliente" validate:"required,email"`
	ClientPhone string `json:"telefono_cliente" validate:"required,mobilephone"`
	PartySize   int    `json:"cant_pers_res" validate:"required,min=1"`
	Date        string `json:"fecha_res" validate:"required,iso8601"`
	Message     string `json:"mensaje_res" validate:"max=2000"`
	VenueID     string `json:"idSalonEvento" validate:"required,uuid"`
	// Active учитывается только при регистрации
	Active *bool `json:"estado"`
}

// ToDomain builds the reservation to store. The request must be validated.
func (r *ReservationRequest) ToDomain(id string) (*domain.Reservation, error) {
	date, err := validator.ParseISO8601(r.Date)
	if err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		ID: id,
		ReservationAttributes: domain.ReservationAttributes{
			ClientName:  r.ClientName,
			ClientEmail: r.ClientEmail,
			ClientPhone: r.ClientPhone,
			PartySize:   r.PartySize,
			Date:        date,
			Message:     r.Message,
			Active:      true,
		},
		VenueID: r.VenueID,
	}
	if r.Active != nil {
		res.Active = *r.Active
	}
	return res, nil
}
