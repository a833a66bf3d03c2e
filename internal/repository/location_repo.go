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

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

type locationRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Address   *string   `gorm:"column:address"`
	Hours     []byte    `gorm:"column:hours"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (locationRow) TableName() string { return "locations" }

func toDomainLocation(m locationRow) (*domain.Location, error) {
	var address string
	if m.Address != nil {
		address = *m.Address
	}

	hours := domain.OperatingHours{}
	if len(m.Hours) > 0 {
		if err := json.Unmarshal(m.Hours, &hours); err != nil {
			return nil, err
		}
	}

	return &domain.Location{
		ID:        m.ID,
		Name:      m.Name,
		Address:   address,
		Hours:     hours,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func toLocationRow(l *domain.Location) (locationRow, error) {
	var address *string
	if l.Address != "" {
		v := l.Address
		address = &v
	}

	hours, err := json.Marshal(l.Hours)
	if err != nil {
		return locationRow{}, err
	}

	return locationRow{
		ID:        l.ID,
		Name:      l.Name,
		Address:   address,
		Hours:     hours,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}, nil
}

func (r *LocationRepository) Get(ctx context.Context, id string) (*domain.Location, error) {
	var m locationRow
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainLocation(m)
}

func (r *LocationRepository) Upsert(ctx context.Context, l *domain.Location) error {
	m, err := toLocationRow(l)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&m).Error
}

func (r *LocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	var rows []locationRow
	tx := r.db.WithContext(ctx).Order("created_at").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]*domain.Location, 0, len(rows))
	for _, m := range rows {
		l, err := toDomainLocation(m)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
