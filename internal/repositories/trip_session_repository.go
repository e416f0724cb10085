package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pathwise/internal/models/db_models"
)

// TripSessionRepositoryInterface stores planning sessions. Get returns
// (nil, nil) when the session does not exist or has expired.
type TripSessionRepositoryInterface interface {
	Get(ctx context.Context, id uuid.UUID) (*db_models.TripSession, error)
	Save(ctx context.Context, session *db_models.TripSession) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

func NewTripSessionRepository(db *gorm.DB, ttl time.Duration) TripSessionRepositoryInterface {
	return &TripSessionRepository{db: db, ttl: ttl, now: time.Now}
}

type TripSessionRepository struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func (r *TripSessionRepository) Get(ctx context.Context, id uuid.UUID) (*db_models.TripSession, error) {
	var session db_models.TripSession
	err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, r.now().Unix()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// Save inserts or overwrites the session and pushes its expiry forward.
func (r *TripSessionRepository) Save(ctx context.Context, session *db_models.TripSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.ExpiresAt = r.now().Add(r.ttl).Unix()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(session).Error
}

func (r *TripSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&db_models.TripSession{}).Error
}

func (r *TripSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now().Unix()).
		Delete(&db_models.TripSession{})
	return res.RowsAffected, res.Error
}
