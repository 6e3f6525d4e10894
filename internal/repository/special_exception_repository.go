package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kaitozaw/tennislot/internal/model"
)

// SpecialExceptionRepo persists court-scoped override windows. List
// and delete operations are scoped through the owning page via a join
// on courts, since the client addresses sections at page level.
type SpecialExceptionRepo struct {
	db *sql.DB
}

func NewSpecialExceptionRepo(db *sql.DB) *SpecialExceptionRepo { return &SpecialExceptionRepo{db: db} }

func scanSpecial(scan func(dest ...any) error) (*model.SpecialException, error) {
	var (
		se   model.SpecialException
		date time.Time
	)
	if err := scan(&se.ID, &se.CourtID, &se.CourtName, &date, &se.StartTime, &se.EndTime, &se.Note, &se.CreatedAt); err != nil {
		return nil, err
	}
	se.Date = dateString(date)
	se.StartTime = shortClock(se.StartTime)
	se.EndTime = shortClock(se.EndTime)
	return &se, nil
}

// ListByPage returns all special exceptions across a page's courts.
func (r *SpecialExceptionRepo) ListByPage(ctx context.Context, pageID uint64) ([]*model.SpecialException, error) {
	const q = `SELECT se.id, se.court_id, c.name, se.date, se.start_time, se.end_time, se.note, se.created_at
	           FROM special_exceptions se
	           JOIN courts c ON c.id = se.court_id
	           WHERE c.booking_page_id = ?
	           ORDER BY se.date, se.start_time, se.id`
	rows, err := r.db.QueryContext(ctx, q, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.SpecialException
	for rows.Next() {
		se, err := scanSpecial(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, se)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a special exception for a court and reads it back
// with the court name joined in.
func (r *SpecialExceptionRepo) Create(ctx context.Context, courtID uint64, date, start, end, note string) (*model.SpecialException, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO special_exceptions (court_id, date, start_time, end_time, note)
		 VALUES (?, ?, ?, ?, ?)`,
		courtID, date, start, end, note)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	const q = `SELECT se.id, se.court_id, c.name, se.date, se.start_time, se.end_time, se.note, se.created_at
	           FROM special_exceptions se
	           JOIN courts c ON c.id = se.court_id
	           WHERE se.id = ?`
	return scanSpecial(r.db.QueryRowContext(ctx, q, id).Scan)
}

// DeleteByIDAndPage removes one special exception provided its court
// belongs to the page. Ids under foreign pages do not resolve and
// return ErrItemNotFound.
func (r *SpecialExceptionRepo) DeleteByIDAndPage(ctx context.Context, id, pageID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE se FROM special_exceptions se
		 JOIN courts c ON c.id = se.court_id
		 WHERE se.id = ? AND c.booking_page_id = ?`, id, pageID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrItemNotFound
	}
	return nil
}
