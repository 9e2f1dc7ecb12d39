package domain

import "time"

// VenueAttributes holds the scalar fields shared by Venue and VenueDetail.
type VenueAttributes struct {
	Name                   string   `json:"nombre_sal" db:"nombre_sal"`
	Description            string   `json:"descripcion_sal" db:"descripcion_sal"`
	Gallery                []string `json:"galeria_sal" db:"-"`
	Kind                   string   `json:"tipo_sal" db:"tipo_sal"`
	CapacityMin            int      `json:"capacidad_min" db:"capacidad_min"`
	CapacityMax            int      `json:"capacidad_max" db:"capacidad_max"`
	Address                string   `json:"direccion_sal" db:"direccion_sal"`
	Price                  float64  `json:"precio_sal" db:"precio_sal"`
	Longitude              float64  `json:"longitud" db:"longitud"`
	Latitude               float64  `json:"latitud" db:"latitud"`
	Video360               string   `json:"video360" db:"video360"`
	Video                  string   `json:"video_sal" db:"video_sal"`
	BannerPosition         *int     `json:"posicion_banner" db:"posicion_banner"`
	LocationBannerPosition *int     `json:"posicion_banner_ubicacion" db:"posicion_banner_ubicacion"`
	Active                 bool     `json:"estado" db:"estado"`
}

// Venue - салон как он хранится: ссылки только идентификаторами.
type Venue struct {
	ID string `json:"_id"`
	VenueAttributes
	CityID       *string   `json:"idCiudSalonEvento"`
	ContactID    *string   `json:"idContactoSalon"`
	AmbienteIDs  []string  `json:"idAmbienteSalon"`
	EspaciosIDs  []string  `json:"idEspaciosSalon"`
	ServiciosIDs []string  `json:"idServiciosSalon"`
	TipoIDs      []string  `json:"idTipoSalon"`
	UbicacionIDs []string  `json:"idUbicacionSalon"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VenueDetail is a Venue with every reference expanded into the referenced
// document.
type VenueDetail struct {
	ID string `json:"_id"`
	VenueAttributes
	City        *CityDetail `json:"idCiudSalonEvento"`
	Contact     *Contact    `json:"idContactoSalon"`
	Ambientes   []Tag       `json:"idAmbienteSalon"`
	Espacios    []Tag       `json:"idEspaciosSalon"`
	Servicios   []Tag       `json:"idServiciosSalon"`
	Tipos       []Tag       `json:"idTipoSalon"`
	Ubicaciones []Tag       `json:"idUbicacionSalon"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type Department struct {
	ID   string `json:"_id" db:"id"`
	Name string `json:"nombre_depart" db:"nombre_depart"`
}

type City struct {
	ID           string `json:"_id" db:"id"`
	Name         string `json:"nombre_ciud" db:"nombre_ciud"`
	DepartmentID string `json:"idDepart" db:"department_id"`
}

// CityDetail - город с развёрнутым департаментом
type CityDetail struct {
	ID         string      `json:"_id"`
	Name       string      `json:"nombre_ciud"`
	Department *Department `json:"idDepart"`
}

type Contact struct {
	ID       string `json:"_id" db:"id"`
	Name     string `json:"nombre_contacto" db:"nombre_contacto"`
	Email    string `json:"correo_contacto" db:"correo_contacto"`
	Phone    string `json:"telefono_contacto" db:"telefono_contacto"`
	WhatsApp string `json:"whatsapp_contacto" db:"whatsapp_contacto"`
}

type Tag struct {
	ID   string `json:"_id" db:"id"`
	Name string `json:"nombre" db:"nombre"`
}

// TagCategory names one of the tag collections a venue references. The
// value is the backing table name.
type TagCategory string

const (
	TagAmbiente  TagCategory = "ambientes"
	TagEspacios  TagCategory = "espacios"
	TagServicios TagCategory = "servicios"
	TagTipo      TagCategory = "tipos"
	TagUbicacion TagCategory = "ubicaciones"
)

// TagCategories lists every category in expansion order.
var TagCategories = []TagCategory{TagAmbiente, TagEspacios, TagServicios, TagTipo, TagUbicacion}

// TagIDs returns the venue's identifiers for the given category.
func (v *Venue) TagIDs(c TagCategory) []string {
	switch c {
	case TagAmbiente:
		return v.AmbienteIDs
	case TagEspacios:
		return v.EspaciosIDs
	case TagServicios:
		return v.ServiciosIDs
	case TagTipo:
		return v.TipoIDs
	case TagUbicacion:
		return v.UbicacionIDs
	}
	return nil
}
