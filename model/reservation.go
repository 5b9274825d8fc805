// model/reservation.go
package model

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationLent      ReservationStatus = "lent"
	ReservationReturned  ReservationStatus = "returned"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Live reports whether the reservation still occupies its time window.
func (s ReservationStatus) Live() bool {
	return s == ReservationPending || s == ReservationLent
}

// Terminal reports whether the status admits no further transitions.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationReturned || s == ReservationCancelled
}

// Reservation is a half-open booking window [StartTime, EndTime) for one item.
// Rows are never deleted; cancelled and returned reservations are kept for
// audit and excluded from conflict checks by status.
type Reservation struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	ItemName  string            `json:"item_name"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}
