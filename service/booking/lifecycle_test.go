package booking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"equiploan/model"
)

func pendingRes(owner string) *model.Reservation {
	return &model.Reservation{
		ID:       "r1",
		Username: owner,
		ItemName: "drill",
		Status:   model.ReservationPending,
	}
}

func TestTransitionLend(t *testing.T) {
	admin := Actor{Username: "root", Admin: true}
	user := Actor{Username: "alice"}

	r := pendingRes("alice")

	// authorization is checked before state: a non-admin probing a returned
	// reservation sees NOT_ALLOWED, not BAD_TRANSITION
	r.Status = model.ReservationReturned
	_, err := transitionLend(user, r)
	require.Equal(t, ErrNotAllowed, Code(err))

	_, err = transitionLend(admin, r)
	require.Equal(t, ErrBadTransition, Code(err))

	r.Status = model.ReservationPending
	next, err := transitionLend(admin, r)
	require.NoError(t, err)
	require.Equal(t, model.ReservationLent, next)
}

func TestTransitionReturn(t *testing.T) {
	admin := Actor{Username: "root", Admin: true}

	r := pendingRes("alice")
	_, err := transitionReturn(admin, r)
	require.Equal(t, ErrBadTransition, Code(err))

	r.Status = model.ReservationLent
	next, err := transitionReturn(admin, r)
	require.NoError(t, err)
	require.Equal(t, model.ReservationReturned, next)

	_, err = transitionReturn(Actor{Username: "alice"}, r)
	require.Equal(t, ErrNotAllowed, Code(err))
}

func TestTransitionCancel(t *testing.T) {
	r := pendingRes("alice")

	// only the owner may cancel, and ownership is checked before state
	rTerminal := pendingRes("alice")
	rTerminal.Status = model.ReservationCancelled
	_, err := transitionCancel(Actor{Username: "bob"}, rTerminal)
	require.Equal(t, ErrNotAllowed, Code(err))

	next, err := transitionCancel(Actor{Username: "alice"}, r)
	require.NoError(t, err)
	require.Equal(t, model.ReservationCancelled, next)

	// lent reservations cannot be cancelled
	r.Status = model.ReservationLent
	_, err = transitionCancel(Actor{Username: "alice"}, r)
	require.Equal(t, ErrBadTransition, Code(err))

	// nothing leaves a terminal state
	for _, st := range []model.ReservationStatus{model.ReservationReturned, model.ReservationCancelled} {
		r.Status = st
		_, err = transitionCancel(Actor{Username: "alice"}, r)
		require.Equal(t, ErrBadTransition, Code(err))
	}
}
