// service/booking/lifecycle.go
package booking

import "equiploan/model"

// Actor is the authenticated caller of a lifecycle transition.
type Actor struct {
	Username string
	Admin    bool
}

// Transition rules. Authorization is always checked before the current state,
// so an unauthorized caller never learns what state a reservation is in.
// Returned and cancelled are terminal; nothing re-enters pending.

// transitionLend: pending -> lent, admin only.
func transitionLend(actor Actor, r *model.Reservation) (model.ReservationStatus, error) {
	if !actor.Admin {
		return "", makeErr(ErrNotAllowed)
	}
	if r.Status != model.ReservationPending {
		return "", makeErr(ErrBadTransition)
	}
	return model.ReservationLent, nil
}

// transitionReturn: lent -> returned, admin only.
func transitionReturn(actor Actor, r *model.Reservation) (model.ReservationStatus, error) {
	if !actor.Admin {
		return "", makeErr(ErrNotAllowed)
	}
	if r.Status != model.ReservationLent {
		return "", makeErr(ErrBadTransition)
	}
	return model.ReservationReturned, nil
}

// transitionCancel: pending -> cancelled, owner only.
func transitionCancel(actor Actor, r *model.Reservation) (model.ReservationStatus, error) {
	if actor.Username != r.Username {
		return "", makeErr(ErrNotAllowed)
	}
	if r.Status != model.ReservationPending {
		return "", makeErr(ErrBadTransition)
	}
	return model.ReservationCancelled, nil
}
