// repository/reservation/reservationRepository.go
package reservationrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"equiploan/model"
)

type Repo interface {
	Insert(ctx context.Context, res *model.Reservation) error
	ByID(ctx context.Context, id string) (*model.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error
	LiveByItem(ctx context.Context, itemName string) ([]model.Reservation, error)
	Overdue(ctx context.Context, now time.Time) ([]model.Reservation, error)
	PendingUpcoming(ctx context.Context, now time.Time) ([]model.Reservation, error)
	List(ctx context.Context) ([]model.Reservation, error)
}

type repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) Repo { return &repo{db: db} }

// Times are stored as epoch seconds so the schema is driver-neutral.
type row struct {
	ID        string `db:"id"`
	Username  string `db:"username"`
	ItemName  string `db:"item_name"`
	StartTs   int64  `db:"start_ts"`
	EndTs     int64  `db:"end_ts"`
	Status    string `db:"status"`
	CreatedAt int64  `db:"created_at"`
}

func (r row) toModel() model.Reservation {
	return model.Reservation{
		ID:        r.ID,
		Username:  r.Username,
		ItemName:  r.ItemName,
		StartTime: time.Unix(r.StartTs, 0).UTC(),
		EndTime:   time.Unix(r.EndTs, 0).UTC(),
		Status:    model.ReservationStatus(r.Status),
		CreatedAt: time.Unix(r.CreatedAt, 0).UTC(),
	}
}

const selectCols = `id, username, item_name, start_ts, end_ts, status, created_at`

func (r *repo) Insert(ctx context.Context, res *model.Reservation) error {
	const q = `
		INSERT INTO reservations (id, username, item_name, start_ts, end_ts, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.db.Rebind(q),
		res.ID, res.Username, res.ItemName,
		res.StartTime.Unix(), res.EndTime.Unix(),
		res.Status, res.CreatedAt.Unix(),
	)
	return err
}

func (r *repo) ByID(ctx context.Context, id string) (*model.Reservation, error) {
	q := `SELECT ` + selectCols + ` FROM reservations WHERE id = ?`
	var rw row
	err := r.db.GetContext(ctx, &rw, r.db.Rebind(q), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	m := rw.toModel()
	return &m, nil
}

func (r *repo) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus) error {
	const q = `UPDATE reservations SET status = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, r.db.Rebind(q), status, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) LiveByItem(ctx context.Context, itemName string) ([]model.Reservation, error) {
	q := `
		SELECT ` + selectCols + `
		FROM reservations
		WHERE item_name = ? AND status IN ('pending', 'lent')
		ORDER BY start_ts`
	return r.selectMany(ctx, q, itemName)
}

// Overdue lists lent reservations whose window has already ended.
func (r *repo) Overdue(ctx context.Context, now time.Time) ([]model.Reservation, error) {
	q := `
		SELECT ` + selectCols + `
		FROM reservations
		WHERE status = 'lent' AND end_ts < ?
		ORDER BY end_ts`
	return r.selectMany(ctx, q, now.Unix())
}

// PendingUpcoming lists pending reservations that are still actionable,
// i.e. their window has not fully elapsed.
func (r *repo) PendingUpcoming(ctx context.Context, now time.Time) ([]model.Reservation, error) {
	q := `
		SELECT ` + selectCols + `
		FROM reservations
		WHERE status = 'pending' AND end_ts > ?
		ORDER BY start_ts`
	return r.selectMany(ctx, q, now.Unix())
}

func (r *repo) List(ctx context.Context) ([]model.Reservation, error) {
	q := `
		SELECT ` + selectCols + `
		FROM reservations
		ORDER BY created_at DESC, id DESC`
	return r.selectMany(ctx, q)
}

func (r *repo) selectMany(ctx context.Context, q string, args ...any) ([]model.Reservation, error) {
	var rows []row
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(q), args...); err != nil {
		return nil, err
	}
	out := make([]model.Reservation, 0, len(rows))
	for _, rw := range rows {
		out = append(out, rw.toModel())
	}
	return out, nil
}
