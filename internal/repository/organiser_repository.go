package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/kaitozaw/tennislot/internal/model"
	"github.com/kaitozaw/tennislot/internal/utils"
)

// OrganiserRepo persists organiser accounts.
type OrganiserRepo struct{ DB *sql.DB }

func NewOrganiserRepo(db *sql.DB) *OrganiserRepo { return &OrganiserRepo{DB: db} }

// Create inserts an organiser with a bcrypt password hash and returns
// the new ID. Duplicate emails map to ErrEmailExists.
func (r *OrganiserRepo) Create(ctx context.Context, email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO organisers (email, password_hash) VALUES (?,?)",
		email, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches an organiser by normalized email.
func (r *OrganiserRepo) GetByEmail(ctx context.Context, email string) (model.Organiser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var o model.Organiser
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,is_active,is_staff,created_at FROM organisers WHERE email=? LIMIT 1",
		email).Scan(&o.ID, &o.Email, &o.PasswordHash, &o.IsActive, &o.IsStaff, &o.CreatedAt)
	return o, err
}

// GetByID fetches an organiser by id.
func (r *OrganiserRepo) GetByID(ctx context.Context, id uint64) (model.Organiser, error) {
	var o model.Organiser
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,is_active,is_staff,created_at FROM organisers WHERE id=? LIMIT 1",
		id).Scan(&o.ID, &o.Email, &o.PasswordHash, &o.IsActive, &o.IsStaff, &o.CreatedAt)
	return o, err
}
