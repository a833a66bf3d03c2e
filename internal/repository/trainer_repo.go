package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fitsync/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) *TrainerRepository {
	return &TrainerRepository{db: db}
}

type trainerRow struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Qualifications []byte    `gorm:"column:qualifications"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (trainerRow) TableName() string { return "trainers" }

func toDomainTrainer(m trainerRow) (*domain.Trainer, error) {
	var quals []string
	if len(m.Qualifications) > 0 {
		if err := json.Unmarshal(m.Qualifications, &quals); err != nil {
			return nil, err
		}
	}

	return &domain.Trainer{
		ID:             m.ID,
		Name:           m.Name,
		Qualifications: quals,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

func toTrainerRow(t *domain.Trainer) (trainerRow, error) {
	var quals []byte
	if len(t.Qualifications) > 0 {
		var err error
		quals, err = json.Marshal(t.Qualifications)
		if err != nil {
			return trainerRow{}, err
		}
	}

	return trainerRow{
		ID:             t.ID,
		Name:           t.Name,
		Qualifications: quals,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}, nil
}

func (r *TrainerRepository) Get(ctx context.Context, id string) (*domain.Trainer, error) {
	var m trainerRow
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainTrainer(m)
}

func (r *TrainerRepository) Upsert(ctx context.Context, t *domain.Trainer) error {
	m, err := toTrainerRow(t)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&m).Error
}

func (r *TrainerRepository) List(ctx context.Context) ([]*domain.Trainer, error) {
	var rows []trainerRow
	tx := r.db.WithContext(ctx).Order("created_at").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Trainer, 0, len(rows))
	for _, m := range rows {
		t, err := toDomainTrainer(m)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
