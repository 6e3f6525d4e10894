package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/kaitozaw/tennislot/internal/model"
)

// SlotDefinitionRepo manages the single slot definition row of each
// booking page. The table carries a unique key on booking_page_id so a
// second definition can never be created.
type SlotDefinitionRepo struct {
	db *sql.DB
}

func NewSlotDefinitionRepo(db *sql.DB) *SlotDefinitionRepo { return &SlotDefinitionRepo{db: db} }

// GetByPage returns the page's slot definition, or (nil, nil) when the
// page has none yet.
func (r *SlotDefinitionRepo) GetByPage(ctx context.Context, pageID uint64) (*model.SlotDefinition, error) {
	const q = `SELECT id, booking_page_id, slot_size, price, created_at
	           FROM slot_definitions WHERE booking_page_id = ?`
	var sd model.SlotDefinition
	err := r.db.QueryRowContext(ctx, q, pageID).Scan(&sd.ID, &sd.BookingPageID, &sd.SlotSize, &sd.Price, &sd.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sd, nil
}

// Upsert creates the page's slot definition or fully replaces the
// existing row's size and price.
func (r *SlotDefinitionRepo) Upsert(ctx context.Context, pageID uint64, slotSize int, price decimal.Decimal) error {
	const q = `INSERT INTO slot_definitions (booking_page_id, slot_size, price)
	           VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE slot_size = VALUES(slot_size), price = VALUES(price)`
	_, err := r.db.ExecContext(ctx, q, pageID, slotSize, price)
	return err
}
