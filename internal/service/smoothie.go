package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tharwin-carr/smoothie-me-api2/internal/model"
)

// SmoothieService handles smoothie persistence. It issues single
// statements against the store and performs no validation; required
// fields are checked at the handler boundary.
type SmoothieService struct {
	db *gorm.DB
}

// NewSmoothieService creates a new SmoothieService instance
func NewSmoothieService(db *gorm.DB) *SmoothieService {
	return &SmoothieService{db: db}
}

// ListSmoothies returns every smoothie row in storage order.
func (s *SmoothieService) ListSmoothies(ctx context.Context) ([]model.Smoothie, error) {
	var smoothies []model.Smoothie
	if err := s.db.WithContext(ctx).Find(&smoothies).Error; err != nil {
		return nil, err
	}
	return smoothies, nil
}

// CreateSmoothie inserts the given smoothie and fills in its generated ID.
func (s *SmoothieService) CreateSmoothie(ctx context.Context, smoothie *model.Smoothie) (*model.Smoothie, error) {
	if err := s.db.WithContext(ctx).Create(smoothie).Error; err != nil {
		return nil, err
	}
	return smoothie, nil
}

// GetSmoothie retrieves a smoothie by ID. A missing row is not an
// error: it returns (nil, nil).
func (s *SmoothieService) GetSmoothie(ctx context.Context, id uuid.UUID) (*model.Smoothie, error) {
	var smoothie model.Smoothie
	if err := s.db.WithContext(ctx).First(&smoothie, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &smoothie, nil
}

// UpdateSmoothie applies the given partial column mapping to the row
// matching id and returns the number of rows affected.
func (s *SmoothieService) UpdateSmoothie(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Smoothie{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

// DeleteSmoothie removes the row matching id and returns the number of
// rows affected.
func (s *SmoothieService) DeleteSmoothie(ctx context.Context, id uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.Smoothie{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
