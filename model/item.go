// model/item.go
package model

type ItemStatus string

const (
	ItemAvailable   ItemStatus = "available"
	ItemUnavailable ItemStatus = "unavailable"
)

// Item is a shared, indivisible piece of equipment. Status is inventory
// metadata set by admins; whether an item can be booked for a window is
// always derived from its live reservations, never from this field.
type Item struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description string     `db:"description" json:"description"`
	Status      ItemStatus `db:"status" json:"status"`
}
