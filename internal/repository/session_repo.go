package repository

import (
	"context"
	"errors"
	"time"

	"fitsync/internal/domain"
	"fitsync/internal/modules/schedule"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionRow struct {
	ID          string    `gorm:"column:id;primaryKey"`
	LocationID  string    `gorm:"column:location_id;index"`
	TrainerID   string    `gorm:"column:trainer_id;index"`
	Title       string    `gorm:"column:title"`
	StartTime   time.Time `gorm:"column:start_time"`
	DurationMin int       `gorm:"column:duration_min"`
	Capacity    int       `gorm:"column:capacity"`
	BookedCount int       `gorm:"column:booked_count"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (sessionRow) TableName() string { return "class_sessions" }

func toDomainSession(m sessionRow) *domain.ClassSession {
	return &domain.ClassSession{
		ID:          m.ID,
		LocationID:  m.LocationID,
		TrainerID:   m.TrainerID,
		Title:       m.Title,
		Start:       m.StartTime,
		Duration:    time.Duration(m.DurationMin) * time.Minute,
		Capacity:    m.Capacity,
		BookedCount: m.BookedCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toSessionRow(s *domain.ClassSession) sessionRow {
	return sessionRow{
		ID:          s.ID,
		LocationID:  s.LocationID,
		TrainerID:   s.TrainerID,
		Title:       s.Title,
		StartTime:   s.Start,
		DurationMin: int(s.Duration / time.Minute),
		Capacity:    s.Capacity,
		BookedCount: s.BookedCount,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.ClassSession, error) {
	var m sessionRow
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainSession(m), nil
}

func (r *SessionRepository) Upsert(ctx context.Context, s *domain.ClassSession) error {
	m := toSessionRow(s)
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&m)
	if tx.Error != nil {
		return upsertConflict(tx.Error)
	}
	return nil
}

// upsertConflict maps a postgres exclusion-constraint violation over
// (trainer_id, session interval) to the engine's conflict error, so a racing
// writer outside this process surfaces the same way. Other errors pass
// through unchanged.
func upsertConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.ConstraintName == "idx_no_trainer_overlap") {
		return schedule.ErrTrainerDoubleBooked
	}
	return err
}

func (r *SessionRepository) Remove(ctx context.Context, id string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&sessionRow{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *SessionRepository) ForTrainer(ctx context.Context, trainerID string) ([]*domain.ClassSession, error) {
	var rows []sessionRow
	tx := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("start_time").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.ClassSession, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSession(m))
	}
	return out, nil
}

func (r *SessionRepository) ForLocation(ctx context.Context, locationID string, from, to time.Time) ([]*domain.ClassSession, error) {
	// start_time < to narrows in SQL; the end-side of the half-open
	// overlap needs the duration, so it is applied after mapping. Keeps
	// the query portable between sqlite and postgres.
	var rows []sessionRow
	tx := r.db.WithContext(ctx).
		Where("location_id = ? AND start_time < ?", locationID, to).
		Order("start_time").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.ClassSession, 0, len(rows))
	for _, m := range rows {
		s := toDomainSession(m)
		if s.Overlaps(from, to) {
			out = append(out, s)
		}
	}
	return out, nil
}
