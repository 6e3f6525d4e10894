package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kaitozaw/tennislot/internal/model"
)

// DraftRepo stores wizard drafts in Redis, keyed by organiser and
// wizard session so concurrent create flows never collide. Drafts are
// whole values: every request loads the full draft, mutates it in
// memory and stores it back. The TTL is refreshed on every store, so
// an abandoned wizard expires on its own.
type DraftRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDraftRepo(rdb *redis.Client, ttl time.Duration) *DraftRepo {
	return &DraftRepo{rdb: rdb, ttl: ttl}
}

func draftKey(organiserID uint64, sessionID string) string {
	return fmt.Sprintf("draft:%d:%s", organiserID, sessionID)
}

// Load returns the draft for one wizard session, or ErrDraftNotFound
// when the session never existed or has expired.
func (r *DraftRepo) Load(ctx context.Context, organiserID uint64, sessionID string) (*model.Draft, error) {
	b, err := r.rdb.Get(ctx, draftKey(organiserID, sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	d := new(model.Draft)
	if err := d.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return d, nil
}

// Save writes the draft back and refreshes its expiry.
func (r *DraftRepo) Save(ctx context.Context, organiserID uint64, sessionID string, d *model.Draft) error {
	return r.rdb.Set(ctx, draftKey(organiserID, sessionID), d, r.ttl).Err()
}

// Delete discards a draft. Deleting an already-expired draft is not an
// error; the outcome is the same.
func (r *DraftRepo) Delete(ctx context.Context, organiserID uint64, sessionID string) error {
	return r.rdb.Del(ctx, draftKey(organiserID, sessionID)).Err()
}
