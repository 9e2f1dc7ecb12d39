package domain

import "time"

// ReservationAttributes holds the scalar fields shared by Reservation and
// ReservationDetail.
type ReservationAttributes struct {
	ClientName  string    `json:"nombre_cliente" db:"nombre_cliente"`
	ClientEmail string    `json:"correo_cliente" db:"correo_cliente"`
	ClientPhone string    `json:"telefono_cliente" db:"telefono_cliente"`
	PartySize   int       `json:"cant_pers_res" db:"cant_pers_res"`
	Date        time.Time `json:"fecha_res" db:"fecha_res"`
	Message     string    `json:"mensaje_res" db:"mensaje_res"`
	Active      bool      `json:"estado" db:"estado"`
}

type Reservation struct {
	ID string `json:"_id" db:"id"`
	ReservationAttributes
	VenueID   string    `json:"idSalonEvento" db:"venue_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ReservationDetail embeds the reserved venue in place of its identifier.
type ReservationDetail struct {
	ID string `json:"_id"`
	ReservationAttributes
	Venue     *Venue    `json:"idSalonEvento"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
