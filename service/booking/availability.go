// service/booking/availability.go
package booking

import (
	"context"
	"time"

	"equiploan/model"
)

// AvailabilityEngine decides whether a candidate window can be admitted for
// an item. Checks run in a fixed order and stop at the first failure; callers
// and tests depend on that precedence when several conditions fail at once:
// item existence, interval validity, start-not-past, end-not-past, conflict.
type AvailabilityEngine struct {
	items ItemSource
	store *IntervalStore
}

func NewAvailabilityEngine(items ItemSource, store *IntervalStore) *AvailabilityEngine {
	return &AvailabilityEngine{items: items, store: store}
}

func (e *AvailabilityEngine) CheckAvailable(ctx context.Context, item string, start, end, now time.Time) error {
	it, err := e.items.ByName(ctx, item)
	if err != nil {
		return err
	}
	if it == nil {
		return makeErr(ErrItemNotFound)
	}
	if !start.Before(end) {
		return makeErr(ErrInvalidInterval)
	}
	if start.Before(now) {
		return makeErr(ErrStartInPast)
	}
	if end.Before(now) {
		return makeErr(ErrEndInPast)
	}
	if e.store.Overlaps(item, start, end) {
		return makeErr(ErrConflict)
	}
	return nil
}

// FreeOverRange lists the items free for [start, end). Browsing applies only
// the conflict test; the past-time checks belong to booking, not listing.
func (e *AvailabilityEngine) FreeOverRange(items []model.Item, start, end time.Time) []model.Item {
	return e.store.FreeItems(items, start, end)
}
