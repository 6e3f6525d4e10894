package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kaitozaw/tennislot/internal/model"
)

// CourtRepo provides court persistence scoped to a booking page.
type CourtRepo struct {
	db *sql.DB
}

func NewCourtRepo(db *sql.DB) *CourtRepo { return &CourtRepo{db: db} }

// ListByPage returns all courts of a page ordered by name, matching
// the rendered list order.
func (r *CourtRepo) ListByPage(ctx context.Context, pageID uint64) ([]*model.Court, error) {
	const q = `SELECT id, booking_page_id, name, created_at
	           FROM courts WHERE booking_page_id = ? ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, q, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Court
	for rows.Next() {
		c := new(model.Court)
		if err := rows.Scan(&c.ID, &c.BookingPageID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDAndPage fetches a court only if it belongs to the page.
func (r *CourtRepo) GetByIDAndPage(ctx context.Context, id, pageID uint64) (*model.Court, error) {
	const q = `SELECT id, booking_page_id, name, created_at
	           FROM courts WHERE id = ? AND booking_page_id = ?`
	var c model.Court
	err := r.db.QueryRowContext(ctx, q, id, pageID).Scan(&c.ID, &c.BookingPageID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a court and reads the row back so timestamps are
// populated.
func (r *CourtRepo) Create(ctx context.Context, pageID uint64, name string) (*model.Court, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO courts (booking_page_id, name) VALUES (?, ?)`, pageID, name)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByIDAndPage(ctx, uint64(id), pageID)
}

// DeleteByIDAndPage removes a court, its special exceptions and its
// bookings, scoped to the owning page. ErrItemNotFound is returned
// when the court does not resolve within that page.
func (r *CourtRepo) DeleteByIDAndPage(ctx context.Context, id, pageID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var n int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM courts WHERE id = ? AND booking_page_id = ?`, id, pageID).Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		err = ErrItemNotFound
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE beo FROM booking_equipment_options beo
		 JOIN bookings b ON b.id = beo.booking_id
		 WHERE b.court_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM bookings WHERE court_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM special_exceptions WHERE court_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM courts WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
