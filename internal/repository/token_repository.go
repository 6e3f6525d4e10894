package repository

import (
	"context"
	"database/sql"
	"time"
)

// TokenRepo persists and validates refresh token hashes.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// StoreRefresh inserts a refresh token hash row for an organiser.
func (r *TokenRepo) StoreRefresh(ctx context.Context, organiserID uint64, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (organiser_id, token_hash, expires_at) VALUES (?,?,?)",
		organiserID, tokenHash, exp)
	return err
}

// ValidateRefresh returns the organiser ID when a non-revoked,
// non-expired token exists for the hash.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
	var (
		organiserID uint64
		expiresAt   time.Time
		revokedAt   sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT organiser_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&organiserID, &expiresAt, &revokedAt)
	if err != nil {
		return 0, err
	}
	if revokedAt.Valid {
		return 0, sql.ErrNoRows
	}
	if time.Now().UTC().After(expiresAt) {
		return 0, sql.ErrNoRows
	}
	return organiserID, nil
}

// RevokeByHash marks one token as revoked.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// RevokeAllForOrganiser revokes every active token of one organiser.
func (r *TokenRepo) RevokeAllForOrganiser(ctx context.Context, organiserID uint64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE organiser_id=? AND revoked_at IS NULL",
		organiserID)
	return err
}
