// service/booking/bookingService.go
package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"equiploan/model"
	"equiploan/util/clock"
)

type Authenticator interface {
	Verify(ctx context.Context, username, password string) (bool, error)
	IsAdmin(ctx context.Context, username string) (bool, error)
}

type Repo interface {
	Insert(ctx context.Context, res *model.Reservation) error
	ByID(ctx context.Context, id string) (*model.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error
	LiveByItem(ctx context.Context, itemName string) ([]model.Reservation, error)
	Overdue(ctx context.Context, now time.Time) ([]model.Reservation, error)
	PendingUpcoming(ctx context.Context, now time.Time) ([]model.Reservation, error)
	List(ctx context.Context) ([]model.Reservation, error)
}

type ItemSource interface {
	ByName(ctx context.Context, name string) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
}

type Service interface {
	// Reserve admits a new booking for [start, end) and creates it pending.
	Reserve(ctx context.Context, username, password, item string, start, end time.Time) (*model.Reservation, error)

	// Cancel moves a pending reservation to cancelled; owner only.
	Cancel(ctx context.Context, username, password, reservationID string) (*model.Reservation, error)

	// Lend moves a pending reservation to lent; admin only.
	Lend(ctx context.Context, username, password, reservationID string) (*model.Reservation, error)

	// Return moves a lent reservation to returned; admin only.
	Return(ctx context.Context, username, password, reservationID string) (*model.Reservation, error)

	// ListAvailable lists items with no live reservation overlapping [start, end).
	ListAvailable(ctx context.Context, start, end time.Time) ([]model.Item, error)

	// ListOverdue lists lent reservations past their end time; admin only.
	ListOverdue(ctx context.Context, username, password string) ([]model.Reservation, error)

	// ListPending lists pending reservations still inside their window; admin only.
	ListPending(ctx context.Context, username, password string) ([]model.Reservation, error)

	ListAll(ctx context.Context) ([]model.Reservation, error)

	// Warm rebuilds the interval index from stored live reservations.
	Warm(ctx context.Context) error
}

type service struct {
	auth   Authenticator
	res    Repo
	items  ItemSource
	store  *IntervalStore
	engine *AvailabilityEngine
	locks  *itemLocks
	clk    clock.Clock
}

func New(auth Authenticator, res Repo, items ItemSource, clk clock.Clock) Service {
	store := NewIntervalStore()
	return &service{
		auth:   auth,
		res:    res,
		items:  items,
		store:  store,
		engine: NewAvailabilityEngine(items, store),
		locks:  newItemLocks(),
		clk:    clk,
	}
}

func (s *service) Warm(ctx context.Context) error {
	items, err := s.items.List(ctx)
	if err != nil {
		return err
	}
	for _, it := range items {
		live, err := s.res.LiveByItem(ctx, it.Name)
		if err != nil {
			return err
		}
		for _, r := range live {
			s.store.Add(r.ItemName, r.StartTime, r.EndTime, r.ID)
		}
	}
	return nil
}

func (s *service) Reserve(ctx context.Context, username, password, item string, start, end time.Time) (*model.Reservation, error) {
	if err := s.authenticate(ctx, username, password); err != nil {
		return nil, err
	}

	// Admission and commit must be atomic per item, otherwise two overlapping
	// requests can both pass the conflict check before either registers.
	mu := s.locks.get(item)
	mu.Lock()
	defer mu.Unlock()

	now := s.clk.Now()
	if err := s.engine.CheckAvailable(ctx, item, start, end, now); err != nil {
		return nil, err
	}

	r := &model.Reservation{
		ID:        uuid.NewString(),
		Username:  username,
		ItemName:  item,
		StartTime: start,
		EndTime:   end,
		Status:    model.ReservationPending,
		CreatedAt: now,
	}
	if err := s.res.Insert(ctx, r); err != nil {
		return nil, err
	}
	s.store.Add(item, start, end, r.ID)
	return r, nil
}

func (s *service) Cancel(ctx context.Context, username, password, reservationID string) (*model.Reservation, error) {
	if err := s.authenticate(ctx, username, password); err != nil {
		return nil, err
	}
	actor := Actor{Username: username}
	return s.transition(ctx, actor, reservationID, transitionCancel)
}

func (s *service) Lend(ctx context.Context, username, password, reservationID string) (*model.Reservation, error) {
	actor, err := s.adminActor(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, reservationID, transitionLend)
}

func (s *service) Return(ctx context.Context, username, password, reservationID string) (*model.Reservation, error) {
	actor, err := s.adminActor(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, reservationID, transitionReturn)
}

// transition applies one lifecycle step under the item's lock. The status row
// is updated first; the interval is freed only when the new state is terminal.
func (s *service) transition(
	ctx context.Context,
	actor Actor,
	reservationID string,
	apply func(Actor, *model.Reservation) (model.ReservationStatus, error),
) (*model.Reservation, error) {
	// the first load only resolves which item lock to take
	r, err := s.res.ByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, makeErr(ErrReservationNotFound)
	}

	mu := s.locks.get(r.ItemName)
	mu.Lock()
	defer mu.Unlock()

	// re-read under the lock: a concurrent transition may have committed
	// between the first load and lock acquisition, and the state check must
	// run against the current row, not a stale snapshot
	r, err = s.res.ByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, makeErr(ErrReservationNotFound)
	}

	next, err := apply(actor, r)
	if err != nil {
		return nil, err
	}
	if err := s.res.UpdateStatus(ctx, r.ID, next); err != nil {
		return nil, err
	}
	r.Status = next
	if next.Terminal() {
		s.store.Remove(r.ID)
	}
	return r, nil
}

func (s *service) ListAvailable(ctx context.Context, start, end time.Time) ([]model.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.engine.FreeOverRange(items, start, end), nil
}

func (s *service) ListOverdue(ctx context.Context, username, password string) ([]model.Reservation, error) {
	if _, err := s.adminActor(ctx, username, password); err != nil {
		return nil, err
	}
	return s.res.Overdue(ctx, s.clk.Now())
}

func (s *service) ListPending(ctx context.Context, username, password string) ([]model.Reservation, error) {
	if _, err := s.adminActor(ctx, username, password); err != nil {
		return nil, err
	}
	return s.res.PendingUpcoming(ctx, s.clk.Now())
}

func (s *service) ListAll(ctx context.Context) ([]model.Reservation, error) {
	return s.res.List(ctx)
}

func (s *service) authenticate(ctx context.Context, username, password string) error {
	ok, err := s.auth.Verify(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		return makeErr(ErrAuthFailed)
	}
	return nil
}

// adminActor authenticates and requires admin permissions. The admin gate
// runs before the reservation is even loaded, so a non-admin caller learns
// nothing about it.
func (s *service) adminActor(ctx context.Context, username, password string) (Actor, error) {
	if err := s.authenticate(ctx, username, password); err != nil {
		return Actor{}, err
	}
	admin, err := s.auth.IsAdmin(ctx, username)
	if err != nil {
		return Actor{}, err
	}
	if !admin {
		return Actor{}, makeErr(ErrNotAllowed)
	}
	return Actor{Username: username, Admin: true}, nil
}
