package booking

import (
	"time"
)

// Time format at the boundary. Requests carry human-readable timestamps,
// interpreted as UTC; the core only ever sees time.Time values.
const timeLayout = "2006-01-02 15:04:05"

func parseBoundaryTime(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.UTC)
}

type ReserveReq struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Item      string `json:"item" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// ReservationReq covers cancel / lend / return: credentials plus target id.
type ReservationReq struct {
	Username      string `json:"username" validate:"required"`
	Password      string `json:"password" validate:"required"`
	ReservationID string `json:"reservation_id" validate:"required"`
}

// AdminReq carries just credentials, for the admin report endpoints.
type AdminReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
