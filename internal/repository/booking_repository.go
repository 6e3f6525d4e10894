package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/kaitozaw/tennislot/internal/model"
)

// BookingRepo surfaces player bookings to organisers. Bookings are
// created by the availability service; this side only lists them and
// moves their payment status.
type BookingRepo struct {
	db *sql.DB
}

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// ListByPage returns all bookings across a page's courts, newest date
// first, with equipment line items attached.
func (r *BookingRepo) ListByPage(ctx context.Context, pageID uint64) ([]*model.Booking, error) {
	const q = `SELECT b.id, b.court_id, c.name, b.date, b.start_time, b.end_time,
	                  b.player_email, b.player_phone, b.payment_status, b.created_at
	           FROM bookings b
	           JOIN courts c ON c.id = b.court_id
	           WHERE c.booking_page_id = ?
	           ORDER BY b.date DESC, b.start_time DESC, b.id DESC`
	rows, err := r.db.QueryContext(ctx, q, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		out  []*model.Booking
		ids  []uint64
		byID = map[uint64]*model.Booking{}
	)
	for rows.Next() {
		var (
			b    model.Booking
			date time.Time
		)
		if err := rows.Scan(&b.ID, &b.CourtID, &b.CourtName, &date, &b.StartTime, &b.EndTime,
			&b.PlayerEmail, &b.PlayerPhone, &b.PaymentStatus, &b.CreatedAt); err != nil {
			return nil, err
		}
		b.Date = dateString(date)
		b.StartTime = shortClock(b.StartTime)
		b.EndTime = shortClock(b.EndTime)
		out = append(out, &b)
		ids = append(ids, b.ID)
		byID[b.ID] = &b
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}
	if err := r.attachEquipment(ctx, ids, byID); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingRepo) attachEquipment(ctx context.Context, ids []uint64, byID map[uint64]*model.Booking) error {
	q := `SELECT beo.id, beo.booking_id, beo.equipment_option_id, eo.name, beo.quantity
	      FROM booking_equipment_options beo
	      JOIN equipment_options eo ON eo.id = beo.equipment_option_id
	      WHERE beo.booking_id IN (`
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		if i > 0 {
			q += ","
		}
		q += "?"
		args = append(args, id)
	}
	q += `) ORDER BY eo.name, beo.id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var line model.BookingEquipmentOption
		if err := rows.Scan(&line.ID, &line.BookingID, &line.EquipmentOptionID, &line.EquipmentName, &line.Quantity); err != nil {
			return err
		}
		if b, ok := byID[line.BookingID]; ok {
			b.Equipment = append(b.Equipment, line)
		}
	}
	return rows.Err()
}

// UpdatePaymentStatusForOrganiser moves one booking's payment status,
// provided the booking's court belongs to a page the organiser owns.
// Bookings under foreign pages do not resolve.
func (r *BookingRepo) UpdatePaymentStatusForOrganiser(ctx context.Context, bookingID, organiserID uint64, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings b
		 JOIN courts c ON c.id = b.court_id
		 JOIN booking_pages bp ON bp.id = c.booking_page_id
		 SET b.payment_status = ?
		 WHERE b.id = ? AND bp.organiser_id = ?`,
		status, bookingID, organiserID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish a no-op status write from a missing booking.
		var exists int
		err := r.db.QueryRowContext(ctx,
			`SELECT 1 FROM bookings b
			 JOIN courts c ON c.id = b.court_id
			 JOIN booking_pages bp ON bp.id = c.booking_page_id
			 WHERE b.id = ? AND bp.organiser_id = ?`,
			bookingID, organiserID).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrBookingNotFound
		}
		return err
	}
	return nil
}
