package domain

import "time"

const (
	StreamReservationCreated = "stream:reservation:created"
)

// ReservationCreatedEvent is published after a reservation is stored.
type ReservationCreatedEvent struct {
	ReservationID string    `json:"reservation_id"`
	VenueID       string    `json:"venue_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
