package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kaitozaw/tennislot/internal/model"
)

// HolidayExceptionRepo persists page-wide closure windows.
type HolidayExceptionRepo struct {
	db *sql.DB
}

func NewHolidayExceptionRepo(db *sql.DB) *HolidayExceptionRepo { return &HolidayExceptionRepo{db: db} }

func scanHoliday(scan func(dest ...any) error) (*model.HolidayException, error) {
	var (
		he   model.HolidayException
		date time.Time
	)
	if err := scan(&he.ID, &he.BookingPageID, &date, &he.StartTime, &he.EndTime, &he.Note, &he.CreatedAt); err != nil {
		return nil, err
	}
	he.Date = dateString(date)
	he.StartTime = shortClock(he.StartTime)
	he.EndTime = shortClock(he.EndTime)
	return &he, nil
}

// ListByPage returns a page's holiday exceptions ordered by date then
// start time, matching the rendered list order.
func (r *HolidayExceptionRepo) ListByPage(ctx context.Context, pageID uint64) ([]*model.HolidayException, error) {
	const q = `SELECT id, booking_page_id, date, start_time, end_time, note, created_at
	           FROM holiday_exceptions WHERE booking_page_id = ? ORDER BY date, start_time, id`
	rows, err := r.db.QueryContext(ctx, q, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.HolidayException
	for rows.Next() {
		he, err := scanHoliday(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, he)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a holiday exception and reads the row back.
func (r *HolidayExceptionRepo) Create(ctx context.Context, pageID uint64, date, start, end, note string) (*model.HolidayException, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO holiday_exceptions (booking_page_id, date, start_time, end_time, note)
		 VALUES (?, ?, ?, ?, ?)`,
		pageID, date, start, end, note)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	const q = `SELECT id, booking_page_id, date, start_time, end_time, note, created_at
	           FROM holiday_exceptions WHERE id = ?`
	return scanHoliday(r.db.QueryRowContext(ctx, q, id).Scan)
}

// DeleteByIDAndPage removes one holiday exception scoped to its page.
// Ids belonging to a different page do not resolve and return
// ErrItemNotFound.
func (r *HolidayExceptionRepo) DeleteByIDAndPage(ctx context.Context, id, pageID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM holiday_exceptions WHERE id = ? AND booking_page_id = ?`, id, pageID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrItemNotFound
	}
	return nil
}
