package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kaitozaw/tennislot/internal/model"
)

// BookingPageRepo encapsulates all queries on booking pages, including
// the finalize transaction that turns a completed wizard draft into a
// page with all of its children.
type BookingPageRepo struct {
	db *sql.DB
}

func NewBookingPageRepo(db *sql.DB) *BookingPageRepo { return &BookingPageRepo{db: db} }

func scanPage(row *sql.Row) (*model.BookingPage, error) {
	var p model.BookingPage
	err := row.Scan(&p.ID, &p.OrganiserID, &p.Name, &p.Location, &p.PublicURL, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetByID fetches a page regardless of owner.
func (r *BookingPageRepo) GetByID(ctx context.Context, id uint64) (*model.BookingPage, error) {
	const q = `SELECT id, organiser_id, name, location, public_url, is_active, created_at
	           FROM booking_pages WHERE id = ?`
	return scanPage(r.db.QueryRowContext(ctx, q, id))
}

// GetByIDAndOrganiser fetches a page only if it belongs to the given
// organiser; anything else is ErrPageNotFound so handlers can't leak
// which pages exist.
func (r *BookingPageRepo) GetByIDAndOrganiser(ctx context.Context, id, organiserID uint64) (*model.BookingPage, error) {
	const q = `SELECT id, organiser_id, name, location, public_url, is_active, created_at
	           FROM booking_pages WHERE id = ? AND organiser_id = ?`
	return scanPage(r.db.QueryRowContext(ctx, q, id, organiserID))
}

// GetActiveBySlug resolves a public slug to an active page. Inactive
// pages are invisible to players.
func (r *BookingPageRepo) GetActiveBySlug(ctx context.Context, slug string) (*model.BookingPage, error) {
	const q = `SELECT id, organiser_id, name, location, public_url, is_active, created_at
	           FROM booking_pages WHERE public_url = ? AND is_active = 1`
	return scanPage(r.db.QueryRowContext(ctx, q, slug))
}

// ListByOrganiser returns all pages of one organiser ordered by id.
func (r *BookingPageRepo) ListByOrganiser(ctx context.Context, organiserID uint64) ([]*model.BookingPage, error) {
	const q = `SELECT id, organiser_id, name, location, public_url, is_active, created_at
	           FROM booking_pages WHERE organiser_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, organiserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.BookingPage
	for rows.Next() {
		p := new(model.BookingPage)
		if err := rows.Scan(&p.ID, &p.OrganiserID, &p.Name, &p.Location, &p.PublicURL, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateInfo replaces the name and location of a page.
func (r *BookingPageRepo) UpdateInfo(ctx context.Context, id uint64, name, location string) error {
	const q = `UPDATE booking_pages SET name = ?, location = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, location, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// RowsAffected is also 0 for a no-change update, so confirm the
		// row really is missing before reporting not found.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// SetActive toggles page visibility, scoped to the owning organiser.
func (r *BookingPageRepo) SetActive(ctx context.Context, id, organiserID uint64, active bool) error {
	const q = `UPDATE booking_pages SET is_active = ? WHERE id = ? AND organiser_id = ?`
	res, err := r.db.ExecContext(ctx, q, active, id, organiserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByIDAndOrganiser(ctx, id, organiserID); err != nil {
			return err
		}
	}
	return nil
}

// SlugExists reports whether a public slug is already taken.
func (r *BookingPageRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM booking_pages WHERE public_url = ?", slug).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateFromDraft creates a booking page and every child entity of a
// completed draft in one transaction. A failure anywhere rolls the
// whole attempt back so no partial page ever becomes visible. The page
// starts inactive; the organiser activates it from the dashboard.
// Draft special exceptions reference courts by list position and are
// resolved against the court ids created in this same transaction.
func (r *BookingPageRepo) CreateFromDraft(ctx context.Context, organiserID uint64, slug string, d *model.Draft) (*model.BookingPage, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var res sql.Result
	res, err = tx.ExecContext(ctx,
		`INSERT INTO booking_pages (organiser_id, name, location, public_url, is_active)
		 VALUES (?, ?, ?, ?, 0)`,
		organiserID, d.Name, d.Location, slug)
	if err != nil {
		return nil, err
	}
	pageID64, err2 := res.LastInsertId()
	if err2 != nil {
		err = err2
		return nil, err
	}
	pageID := uint64(pageID64)

	courtIDs := make([]uint64, 0, len(d.Courts))
	for _, court := range d.Courts {
		res, err = tx.ExecContext(ctx,
			`INSERT INTO courts (booking_page_id, name) VALUES (?, ?)`, pageID, court.Name)
		if err != nil {
			return nil, err
		}
		id, err2 := res.LastInsertId()
		if err2 != nil {
			err = err2
			return nil, err
		}
		courtIDs = append(courtIDs, uint64(id))
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO slot_definitions (booking_page_id, slot_size, price) VALUES (?, ?, ?)`,
		pageID, d.SlotDefinition.SlotSize, d.SlotDefinition.Price)
	if err != nil {
		return nil, err
	}

	for _, opt := range d.EquipmentOptions {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO equipment_options (booking_page_id, name, price) VALUES (?, ?, ?)`,
			pageID, opt.Name, opt.Price)
		if err != nil {
			return nil, err
		}
	}

	for _, rule := range d.OpeningHourRules {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO opening_hour_rules (booking_page_id, weekday, start_time, end_time)
			 VALUES (?, ?, ?, ?)`,
			pageID, rule.Weekday, rule.StartTime, rule.EndTime)
		if err != nil {
			return nil, err
		}
	}

	for _, he := range d.HolidayExceptions {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO holiday_exceptions (booking_page_id, date, start_time, end_time, note)
			 VALUES (?, ?, ?, ?, ?)`,
			pageID, he.Date, he.StartTime, he.EndTime, he.Note)
		if err != nil {
			return nil, err
		}
	}

	for _, se := range d.SpecialExceptions {
		if se.CourtIndex < 0 || se.CourtIndex >= len(courtIDs) {
			continue // exception for a court deleted from the draft
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO special_exceptions (court_id, date, start_time, end_time, note)
			 VALUES (?, ?, ?, ?, ?)`,
			courtIDs[se.CourtIndex], se.Date, se.StartTime, se.EndTime, se.Note)
		if err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, pageID)
}

// DeleteByIDAndOrganiser removes a page and all dependent records
// (courts, slot definition, equipment, rules, exceptions, bookings and
// their equipment lines) provided it belongs to the organiser. The
// deletion runs inside a transaction. ErrPageNotFound is returned for
// a missing page, ErrForbidden when it is owned by someone else.
func (r *BookingPageRepo) DeleteByIDAndOrganiser(ctx context.Context, id, organiserID uint64) error {
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

	var dbOrganiserID uint64
	if err = tx.QueryRowContext(ctx,
		`SELECT organiser_id FROM booking_pages WHERE id = ?`, id).Scan(&dbOrganiserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrPageNotFound
		}
		return err
	}
	if dbOrganiserID != organiserID {
		err = ErrForbidden
		return err
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE beo FROM booking_equipment_options beo
		 JOIN bookings b ON b.id = beo.booking_id
		 JOIN courts c ON c.id = b.court_id
		 WHERE c.booking_page_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE b FROM bookings b
		 JOIN courts c ON c.id = b.court_id
		 WHERE c.booking_page_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`DELETE se FROM special_exceptions se
		 JOIN courts c ON c.id = se.court_id
		 WHERE c.booking_page_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM holiday_exceptions WHERE booking_page_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM opening_hour_rules WHERE booking_page_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM equipment_options WHERE booking_page_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM slot_definitions WHERE booking_page_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM courts WHERE booking_page_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM booking_pages WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
