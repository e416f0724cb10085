package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"pathwise/internal/models/db_models"
)

// MemoryTripSessionRepository keeps sessions in process. Entries expire after
// ttl and are swept every cleanup interval.
type MemoryTripSessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewMemoryTripSessionRepository(ttl, cleanup time.Duration) TripSessionRepositoryInterface {
	return &MemoryTripSessionRepository{
		cache: cache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

func (r *MemoryTripSessionRepository) Get(_ context.Context, id uuid.UUID) (*db_models.TripSession, error) {
	v, ok := r.cache.Get(id.String())
	if !ok {
		return nil, nil
	}
	stored := v.(db_models.TripSession)
	if stored.Expired(time.Now()) {
		r.cache.Delete(id.String())
		return nil, nil
	}
	return &stored, nil
}

// Save stores a copy, so later changes to session are not visible until the
// next Save.
func (r *MemoryTripSessionRepository) Save(_ context.Context, session *db_models.TripSession) error {
	now := time.Now()
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.CreatedAt == 0 {
		session.CreatedAt = now.Unix()
	}
	session.UpdatedAt = now.Unix()
	session.ExpiresAt = now.Add(r.ttl).Unix()

	r.cache.Set(session.ID.String(), *session, r.ttl)
	return nil
}

func (r *MemoryTripSessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}

func (r *MemoryTripSessionRepository) DeleteExpired(_ context.Context) (int64, error) {
	before := r.cache.ItemCount()
	r.cache.DeleteExpired()
	return int64(before - r.cache.ItemCount()), nil
}
