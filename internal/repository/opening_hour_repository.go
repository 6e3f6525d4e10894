package repository

import (
	"context"
	"database/sql"

	"github.com/kaitozaw/tennislot/internal/model"
)

// OpeningHourRuleRepo persists the per-weekday opening windows of a
// booking page. The table has a unique key on (booking_page_id,
// weekday) so at most 7 rules exist per page.
type OpeningHourRuleRepo struct {
	db *sql.DB
}

func NewOpeningHourRuleRepo(db *sql.DB) *OpeningHourRuleRepo { return &OpeningHourRuleRepo{db: db} }

// ListByPage returns a page's rules ordered by weekday.
func (r *OpeningHourRuleRepo) ListByPage(ctx context.Context, pageID uint64) ([]*model.OpeningHourRule, error) {
	const q = `SELECT id, booking_page_id, weekday, start_time, end_time, created_at
	           FROM opening_hour_rules WHERE booking_page_id = ? ORDER BY weekday`
	rows, err := r.db.QueryContext(ctx, q, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.OpeningHourRule
	for rows.Next() {
		rule := new(model.OpeningHourRule)
		if err := rows.Scan(&rule.ID, &rule.BookingPageID, &rule.Weekday, &rule.StartTime, &rule.EndTime, &rule.CreatedAt); err != nil {
			return nil, err
		}
		rule.StartTime = shortClock(rule.StartTime)
		rule.EndTime = shortClock(rule.EndTime)
		out = append(out, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert creates the rule for (page, weekday) or overwrites its times
// when one already exists. Submitting the same weekday twice leaves
// exactly one rule.
func (r *OpeningHourRuleRepo) Upsert(ctx context.Context, pageID uint64, weekday int, start, end string) error {
	const q = `INSERT INTO opening_hour_rules (booking_page_id, weekday, start_time, end_time)
	           VALUES (?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE start_time = VALUES(start_time), end_time = VALUES(end_time)`
	_, err := r.db.ExecContext(ctx, q, pageID, weekday, start, end)
	return err
}

// DeleteByWeekday removes the rule for one weekday. Blank rows in the
// step submission never delete implicitly; this is the explicit path
// for clearing a weekday.
func (r *OpeningHourRuleRepo) DeleteByWeekday(ctx context.Context, pageID uint64, weekday int) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM opening_hour_rules WHERE booking_page_id = ? AND weekday = ?`, pageID, weekday)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrItemNotFound
	}
	return nil
}
