package repository

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/kaitozaw/tennislot/internal/model"
)

// EquipmentOptionRepo persists the rentable add-ons of a booking page.
type EquipmentOptionRepo struct {
	db *sql.DB
}

func NewEquipmentOptionRepo(db *sql.DB) *EquipmentOptionRepo { return &EquipmentOptionRepo{db: db} }

// ListByPage returns all equipment options of a page ordered by name.
func (r *EquipmentOptionRepo) ListByPage(ctx context.Context, pageID uint64) ([]*model.EquipmentOption, error) {
	const q = `SELECT id, booking_page_id, name, price, created_at
	           FROM equipment_options WHERE booking_page_id = ? ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, q, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.EquipmentOption
	for rows.Next() {
		o := new(model.EquipmentOption)
		if err := rows.Scan(&o.ID, &o.BookingPageID, &o.Name, &o.Price, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts an equipment option and reads the row back.
func (r *EquipmentOptionRepo) Create(ctx context.Context, pageID uint64, name string, price decimal.Decimal) (*model.EquipmentOption, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO equipment_options (booking_page_id, name, price) VALUES (?, ?, ?)`,
		pageID, name, price)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	const q = `SELECT id, booking_page_id, name, price, created_at FROM equipment_options WHERE id = ?`
	var o model.EquipmentOption
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&o.ID, &o.BookingPageID, &o.Name, &o.Price, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteByIDAndPage removes one equipment option scoped to its page.
func (r *EquipmentOptionRepo) DeleteByIDAndPage(ctx context.Context, id, pageID uint64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM equipment_options WHERE id = ? AND booking_page_id = ?`, id, pageID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrItemNotFound
	}
	return nil
}
